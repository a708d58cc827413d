package impulse

import (
	"errors"
	"io"
	"math"
	"testing"
)

func init() {
	Logger.SetOutput(io.Discard)
}

func near(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestShapeCircleMass(t *testing.T) {
	circle := NewCircle(2)
	info := circle.ComputeMass(1)

	if !near(info.Mass, 4*math.Pi, 1e-12) {
		t.Errorf("Expected mass 4pi, got %v", info.Mass)
	}
	if !near(info.Inertia, 16*math.Pi, 1e-12) {
		t.Errorf("Expected inertia 16pi, got %v", info.Inertia)
	}
	if !near(info.Area, 4*math.Pi, 1e-12) {
		t.Errorf("Expected area 4pi, got %v", info.Area)
	}
}

func TestShapeBoxMass(t *testing.T) {
	box := NewBox(1, 1)
	info := box.ComputeMass(1)

	if !near(info.Mass, 4, 1e-12) {
		t.Errorf("Expected mass 4, got %v", info.Mass)
	}
	if !near(info.Inertia, 8.0/3.0, 1e-12) {
		t.Errorf("Expected inertia 8/3, got %v", info.Inertia)
	}

	info = box.ComputeMass(2)
	if !near(info.Mass, 8, 1e-12) {
		t.Errorf("Expected mass to scale with density, got %v", info.Mass)
	}
}

func TestShapeMassPositive(t *testing.T) {
	shapes := [][]Vector{
		{{0, 0}, {3, 0}, {0, 3}},
		{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}},
		{{2, 0}, {1, 1.7}, {-1, 1.7}, {-2, 0}, {-1, -1.7}, {1, -1.7}},
	}
	for _, verts := range shapes {
		poly, err := NewPolygon(verts)
		if err != nil {
			t.Fatal(err)
		}
		info := poly.ComputeMass(1)
		if info.Area <= 0 || info.Inertia <= 0 {
			t.Errorf("Expected positive area and inertia for %v, got %+v", verts, info)
		}
	}
}

func TestShapeDegenerateMass(t *testing.T) {
	flat := NewBox(2, 0)
	body := NewBody(0, flat, Vector{})
	if body.InverseMass() != 0 {
		t.Errorf("Expected zero area polygon to be immovable, got inverse mass %v", body.InverseMass())
	}

	info := NewCircle(1).ComputeMass(0)
	if info.Mass != 0 {
		t.Errorf("Expected zero density to give zero mass, got %v", info.Mass)
	}
}

func TestShapePolygonRecenter(t *testing.T) {
	poly, err := NewPolygon([]Vector{{0, 0}, {3, 0}, {0, 3}})
	if err != nil {
		t.Fatal(err)
	}

	info := poly.ComputeMass(1)
	if !info.Centroid.Near(Vector{1, 1}, 1e-9) {
		t.Errorf("Expected centroid (1,1), got %v", info.Centroid)
	}

	var sum Vector
	for _, v := range poly.Verts() {
		sum = sum.Add(v)
	}
	if !sum.Near(Vector{}, 1e-9) {
		t.Errorf("Expected vertices centered on the centroid, got sum %v", sum)
	}

	// Already centered, so a second pass changes nothing
	again := poly.ComputeMass(1)
	if !again.Centroid.Near(Vector{}, 1e-9) {
		t.Errorf("Expected second pass to find a zero centroid, got %v", again.Centroid)
	}
}

func TestShapePolygonHull(t *testing.T) {
	poly, err := NewPolygon([]Vector{{-1, -1}, {1, 1}, {0, 0}, {1, -1}, {-1, 1}})
	if err != nil {
		t.Fatal(err)
	}

	expected := []Vector{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
	if poly.Count() != len(expected) {
		t.Fatalf("Expected %d hull vertices, got %v", len(expected), poly.Verts())
	}
	for i, v := range expected {
		if !poly.Verts()[i].Equal(v) {
			t.Errorf("Vertex %d: expected %v, got %v", i, v, poly.Verts()[i])
		}
	}

	for i, n := range poly.Normals() {
		edge := poly.Verts()[(i+1)%poly.Count()].Sub(poly.Verts()[i])
		if !near(n.Length(), 1, 1e-12) {
			t.Errorf("Normal %d is not unit length: %v", i, n)
		}
		if !near(n.Dot(edge), 0, 1e-12) {
			t.Errorf("Normal %d is not perpendicular to its edge", i)
		}
		if edge.Cross(n) >= 0 {
			t.Errorf("Normal %d points inward: %v", i, n)
		}
	}
}

func TestShapePolygonInvalid(t *testing.T) {
	tests := map[string]struct {
		verts []Vector
		err   error
	}{
		"too few":    {[]Vector{{0, 0}, {1, 0}}, ErrVertexCount},
		"too many":   {make([]Vector, MAX_POLY_VERTEX_COUNT+1), ErrVertexCount},
		"collinear":  {[]Vector{{0, 0}, {1, 0}, {2, 0}}, ErrDegenerateHull},
		"duplicates": {[]Vector{{1, 1}, {1, 1}, {1, 1}}, ErrDegenerateHull},
		"tiny edge":  {[]Vector{{0, 0}, {1, 0}, {1, 0.00001}, {0, 1}}, ErrDegenerateEdge},
	}

	for name, test := range tests {
		_, err := NewPolygon(test.verts)
		if !errors.Is(err, test.err) {
			t.Errorf("%s: expected %v, got %v", name, test.err, err)
		}
		if !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("%s: expected error to wrap ErrInvalidGeometry, got %v", name, err)
		}
	}
}

func TestShapeClone(t *testing.T) {
	box := NewBox(1, 2)
	body := NewBody(3, box.Clone(), Vector{})
	body.SetOrientation(1)

	if box.Body() != NoBody {
		t.Errorf("Expected prototype to stay detached, got %v", box.Body())
	}
	if body.Shape().Body() != 3 {
		t.Errorf("Expected clone to refer to body 3, got %v", body.Shape().Body())
	}

	body.Shape().Verts()[0] = Vector{100, 100}
	if box.Verts()[0].Equal(Vector{100, 100}) {
		t.Error("Clone shares vertices with the prototype")
	}
}

func TestShapeDraw(t *testing.T) {
	circle := NewCircle(2)
	vertices := circle.Draw(0)
	if len(vertices) != 3*(CIRCLE_SEGMENTS+1) {
		t.Fatalf("Expected %d floats, got %d", 3*(CIRCLE_SEGMENTS+1), len(vertices))
	}
	if vertices[0] != 0 || vertices[1] != 0 || vertices[2] != 0 {
		t.Errorf("Expected the fan to start at the center, got %v", vertices[:3])
	}

	theta := 2 * math.Pi / CIRCLE_SEGMENTS
	if !near(float64(vertices[3]), 2*math.Cos(theta), 1e-5) || !near(float64(vertices[4]), 2*math.Sin(theta), 1e-5) {
		t.Errorf("Unexpected first rim point %v", vertices[3:6])
	}
	if len(circle.Indices()) != 60 {
		t.Errorf("Expected 60 circle indices, got %d", len(circle.Indices()))
	}

	box := NewBox(1, 1)
	box.SetOrientation(math.Pi / 2)
	vertices = box.Draw(math.Pi / 2)
	if len(vertices) != 12 {
		t.Fatalf("Expected 12 floats, got %d", len(vertices))
	}
	// (-1,-1) rotated a quarter turn
	if !near(float64(vertices[0]), 1, 1e-6) || !near(float64(vertices[1]), -1, 1e-6) {
		t.Errorf("Unexpected first vertex %v", vertices[:3])
	}
	if len(box.Indices()) != 6 {
		t.Errorf("Expected 6 polygon indices, got %d", len(box.Indices()))
	}
}

func TestShapeSupport(t *testing.T) {
	box := NewBox(2, 1)
	if s := box.GetSupport(Vector{1, 1}); !s.Equal(Vector{2, 1}) {
		t.Errorf("Expected (2,1), got %v", s)
	}
	if s := box.GetSupport(Vector{-1, -0.1}); !s.Equal(Vector{-2, -1}) {
		t.Errorf("Expected (-2,-1), got %v", s)
	}
}
