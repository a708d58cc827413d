package impulse

import "math"

const CIRCLE_SEGMENTS = 20

func NewCircle(radius float64) *Shape {
	shape := newShape(SHAPE_CIRCLE)
	shape.r = radius
	return shape
}

func (s *Shape) Radius() float64 {
	return s.r
}

func circleMassInfo(radius, density float64) ShapeMassInfo {
	mass := math.Pi * radius * radius * density
	return ShapeMassInfo{
		Mass:    mass,
		Inertia: mass * radius * radius,
		Area:    math.Pi * radius * radius,
	}
}

// Center vertex followed by CIRCLE_SEGMENTS points on the rim, starting one increment
// past the body orientation.
func (s *Shape) circleDraw(orient float64) {
	if len(s.vertices) != 3*(CIRCLE_SEGMENTS+1) {
		s.vertices = make([]float32, 3*(CIRCLE_SEGMENTS+1))
	}
	s.vertices[0], s.vertices[1], s.vertices[2] = 0, 0, 0

	theta := orient
	increment := math.Pi * 2.0 / CIRCLE_SEGMENTS
	for i := 0; i < CIRCLE_SEGMENTS; i++ {
		theta += increment
		point := ForAngle(theta).Mult(s.r)

		s.vertices[i*3+3] = float32(point.X)
		s.vertices[i*3+4] = float32(point.Y)
		s.vertices[i*3+5] = 0
	}
}

var circleIndices = [60]uint32{
	0, 1, 2, 2, 3, 0,
	0, 3, 4, 4, 5, 0,
	0, 5, 6, 6, 7, 0,
	0, 7, 8, 8, 9, 0,
	0, 9, 10, 10, 11, 0,
	0, 11, 12, 12, 13, 0,
	0, 13, 14, 14, 15, 0,
	0, 15, 16, 16, 17, 0,
	0, 17, 18, 18, 19, 0,
	0, 19, 20, 20, 1, 0,
}
