package silhouette

// Stride is the marching step in pixels and the side of the square block
// inspected at each stop.
const Stride = 10

// Direction names one of the eight marches used by [ExtractBoundaryPoints].
type Direction int

// Marches in the order they are sampled: clockwise from the top-left corner.
const (
	NorthWest Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
)

var directionNames = [...]string{"nw", "n", "ne", "e", "se", "s", "sw", "w"}

func (d Direction) String() string {
	if d < NorthWest || d > West {
		return "unknown"
	}
	return directionNames[d]
}

// MarshalText encodes the direction by its short compass name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// march is a start position and unit step for one boundary search.
type march struct {
	dir          Direction
	x, y         int
	stepX, stepY int
}

// marches returns the eight searches for a w×h buffer. Each starts on an
// edge or corner and heads into the image.
func marches(w, h int) [8]march {
	return [8]march{
		{NorthWest, 0, 0, 1, 1},
		{North, w / 2, 0, 0, 1},
		{NorthEast, w - 1, 0, -1, 1},
		{East, w - 1, h / 2, -1, 0},
		{SouthEast, w - 1, h - 1, -1, -1},
		{South, w / 2, h - 1, 0, -1},
		{SouthWest, 0, h - 1, 1, -1},
		{West, 0, h / 2, 1, 0},
	}
}

// Sample is the outcome of one boundary march.
type Sample struct {
	Direction Direction `json:"direction"`
	Point     Point     `json:"point"`
	Found     bool      `json:"found"`
}

// FindBoundary marches from (startX, startY) in steps of [Stride] along
// (stepX, stepY) and returns the first opaque pixel it meets.
//
// At every stop, including the start, a Stride×Stride block anchored at the
// current position and extending right and down is scanned row by row; the
// first pixel with alpha above [OpacityThreshold] is returned. Block pixels
// outside the buffer are treated as transparent. The search reports false
// once the position leaves the buffer. A zero step inspects the starting
// block only.
func FindBoundary(buf *Buffer, startX, startY, stepX, stepY int) (Point, bool) {
	x, y := startX, startY
	for buf.In(x, y) {
		if p, ok := scanBlock(buf, x, y); ok {
			return p, true
		}
		if stepX == 0 && stepY == 0 {
			break
		}
		x += stepX * Stride
		y += stepY * Stride
	}
	return Point{}, false
}

// scanBlock returns the first opaque pixel of the Stride×Stride block at
// (x0, y0) in row-major order.
func scanBlock(buf *Buffer, x0, y0 int) (Point, bool) {
	x1 := min(x0+Stride, buf.Width())
	y1 := min(y0+Stride, buf.Height())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if buf.Opaque(x, y) {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// SampleBoundary runs all eight marches and reports each outcome, found or
// not, in march order.
func SampleBoundary(buf *Buffer) []Sample {
	ms := marches(buf.Width(), buf.Height())
	samples := make([]Sample, 0, len(ms))
	for _, m := range ms {
		p, ok := FindBoundary(buf, m.x, m.y, m.stepX, m.stepY)
		samples = append(samples, Sample{Direction: m.dir, Point: p, Found: ok})
	}
	return samples
}

// ExtractBoundaryPoints returns up to eight silhouette points in march order
// (NW, N, NE, E, SE, S, SW, W). Marches that find nothing are skipped and a
// point equal to one already collected is dropped.
func ExtractBoundaryPoints(buf *Buffer) []Point {
	return uniquePoints(SampleBoundary(buf))
}

func uniquePoints(samples []Sample) []Point {
	points := make([]Point, 0, len(samples))
	for _, s := range samples {
		if !s.Found || containsPoint(points, s.Point) {
			continue
		}
		points = append(points, s.Point)
	}
	return points
}

func containsPoint(points []Point, p Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}
