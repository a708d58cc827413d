package impulse

import (
	"github.com/go-gl/mathgl/mgl64"
)

type ShapeType int

func (t ShapeType) String() string {
	switch t {
	case SHAPE_CIRCLE:
		return "circle"
	case SHAPE_POLY:
		return "polygon"
	}
	return "unknown"
}

// Shape is a closed variant over circles and convex polygons. The kind decides which
// of the geometry fields are meaningful.
//
// A Shape is owned by exactly one Body. It refers back to that body by ID only.
type Shape struct {
	kind ShapeType
	body BodyID

	// circle
	r float64

	// polygon. normals[i] is the outward normal of the edge verts[i] -> verts[i+1].
	verts   []Vector
	normals []Vector
	u       mgl64.Mat2

	// render buffer, x y z per vertex, rotated but not translated
	vertices []float32
}

type ShapeMassInfo struct {
	Mass, Inertia, Area float64
	// Centroid of the geometry before recentering.
	Centroid Vector
}

func newShape(kind ShapeType) *Shape {
	return &Shape{
		kind: kind,
		body: NoBody,
		u:    mgl64.Ident2(),
	}
}

func (s *Shape) Type() ShapeType {
	return s.kind
}

// Body returns the ID of the owning body, NoBody for a prototype.
func (s *Shape) Body() BodyID {
	return s.body
}

// Clone deep copies the geometry. The copy is not attached to any body.
func (s *Shape) Clone() *Shape {
	c := newShape(s.kind)
	c.r = s.r
	c.u = s.u
	c.verts = append([]Vector(nil), s.verts...)
	c.normals = append([]Vector(nil), s.normals...)
	return c
}

// Initialize computes the body's mass with unit density and prepares the render buffer.
func (s *Shape) Initialize(body *Body) {
	s.body = body.id
	info := s.ComputeMass(1.0)
	body.setMass(info.Mass, info.Inertia)
	s.Draw(body.a)
}

// ComputeMass returns the mass properties for the given density.
//
// For polygons this recenters the stored vertices on the centroid as a side effect.
// The inertia is accumulated about the local origin before recentering, so it is only
// exact for geometry that is already centered (SetBox, or a second call after Set).
func (s *Shape) ComputeMass(density float64) ShapeMassInfo {
	switch s.kind {
	case SHAPE_CIRCLE:
		return circleMassInfo(s.r, density)
	case SHAPE_POLY:
		return s.polyComputeMass(density)
	}
	panic("Unknown shape type")
}

// SetOrientation refreshes the cached rotation matrix. Circles are rotation invariant.
func (s *Shape) SetOrientation(radians float64) {
	if s.kind == SHAPE_POLY {
		s.u = mgl64.Rotate2D(radians)
	}
}

// Rotation returns the cached world orientation matrix.
func (s *Shape) Rotation() mgl64.Mat2 {
	return s.u
}

// Draw regenerates the render buffer for the given orientation and returns it.
func (s *Shape) Draw(orient float64) []float32 {
	switch s.kind {
	case SHAPE_CIRCLE:
		s.circleDraw(orient)
	case SHAPE_POLY:
		s.polyDraw()
	}
	return s.vertices
}

// Vertices returns the render buffer produced by the last Draw.
func (s *Shape) Vertices() []float32 {
	return s.vertices
}

// Indices returns the triangle index pattern for the render buffer. Polygons get a
// single quad, so only 4 vertex polygons draw correctly through this path.
func (s *Shape) Indices() []uint32 {
	if s.kind == SHAPE_CIRCLE {
		return circleIndices[:]
	}
	return quadIndices[:]
}

var quadIndices = [6]uint32{0, 1, 2, 2, 3, 0}
