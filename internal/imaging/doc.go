// Package imaging loads ingredient images and renders the game's visual
// outputs.
//
// It covers decoding and caching of ingredient files, preparing them for
// silhouette extraction (alpha masks, canvas clipping), and producing PNG
// renderings: the extraction overlay used to inspect a collision polygon and
// the end-of-game score card. All operations accept standard Go image.Image
// values and use a coordinate system where (0,0) is the top-left corner, X
// increases rightward, and Y increases downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual image operations
// are stateless and can be called concurrently on different images.
//
// # Image Output
//
// Rendered images are returned as base64-encoded PNG along with their
// dimensions and MIME type, so they can be embedded directly in a JSON tool
// response.
//
// # Colors
//
// Colors are given as hex strings, "#RRGGBB" or "#RRGGBBAA". Parsing is
// delegated to go-colorful; the optional trailing byte is the alpha.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Non-positive canvas sizes
//   - Malformed color strings
//   - File I/O errors during image loading
//   - Encoding errors during image output
package imaging
