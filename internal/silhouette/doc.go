// Package silhouette builds collision polygons from ingredient images.
//
// An ingredient image is expected to hold a single opaque shape on a
// transparent background. The package turns it into a convex, corner-softened
// polygon that a physics engine can use as a body outline.
//
// # Pipeline
//
// Extraction is a single synchronous pass:
//
//  1. Buffer: the image's alpha channel is copied into a [Buffer] rebased
//     to origin (0,0).
//  2. Boundary sampling: [ExtractBoundaryPoints] marches inward from the
//     four corners and the four edge midpoints until an opaque pixel
//     (alpha > [OpacityThreshold]) is found. At most eight points result,
//     in march order (NW, N, NE, E, SE, S, SW, W), with exact duplicates
//     removed.
//  3. Hull: [ComputeHull] wraps the points with Andrew's monotone chain.
//  4. Chamfer: [Chamfer] cuts every hull corner at [ChamferRadius].
//
// [Extractor] runs the whole pipeline and applies the degenerate-hull policy
// selected by its [Fallback] field.
//
// # Sampling Precision
//
// Marching advances [Stride] pixels per step and inspects a Stride×Stride
// block at each stop. Opaque features thinner than the stride can be missed
// entirely, and a found point may sit up to one stride inside the true edge.
// This is the intended trade between precision and speed.
//
// # Coordinate System
//
// Points and polygons are in the image's pixel space: origin at top-left,
// X rightward, Y downward. No scaling is applied.
//
// # Thread Safety
//
// All functions are pure. A Buffer is read-only after construction and may
// be shared between goroutines.
package silhouette
