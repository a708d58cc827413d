package impulse

import (
	"fmt"
	"math"
)

// NewPolygon builds a convex polygon from the hull of verts.
func NewPolygon(verts []Vector) (*Shape, error) {
	poly := newShape(SHAPE_POLY)
	if err := poly.Set(verts); err != nil {
		return nil, err
	}
	return poly, nil
}

// NewBox returns an axis aligned box with the given half extents.
func NewBox(hw, hh float64) *Shape {
	poly := newShape(SHAPE_POLY)
	poly.SetBox(hw, hh)
	return poly
}

func (s *Shape) SetBox(hw, hh float64) {
	s.kind = SHAPE_POLY
	s.verts = []Vector{
		{-hw, -hh},
		{hw, -hh},
		{hw, hh},
		{-hw, hh},
	}
	s.normals = []Vector{
		{0, -1},
		{1, 0},
		{0, 1},
		{-1, 0},
	}
}

// Set replaces the polygon with the convex hull of verts, wound counter clockwise and
// starting at the rightmost (then lowest) point. Interior points are dropped.
func (s *Shape) Set(verts []Vector) error {
	count := len(verts)
	if count <= 2 || count > MAX_POLY_VERTEX_COUNT {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidGeometry, ErrVertexCount, count)
	}

	rightMost := 0
	highestX := verts[0].X
	for i := 1; i < count; i++ {
		x := verts[i].X
		if x > highestX {
			highestX = x
			rightMost = i
		} else if x == highestX && verts[i].Y < verts[rightMost].Y {
			rightMost = i
		}
	}

	// Gift wrapping: from each hull point take the most clockwise candidate, the
	// farthest one when candidates are collinear.
	hull := make([]int, 0, count)
	indexHull := rightMost
	for {
		if len(hull) == count {
			// only happens when duplicate points keep the wrap from closing
			return fmt.Errorf("%w: %w", ErrInvalidGeometry, ErrDegenerateEdge)
		}
		hull = append(hull, indexHull)

		nextHullIndex := 0
		for i := 1; i < count; i++ {
			if nextHullIndex == indexHull {
				nextHullIndex = i
				continue
			}

			e1 := verts[nextHullIndex].Sub(verts[indexHull])
			e2 := verts[i].Sub(verts[indexHull])
			c := e1.Cross(e2)
			if c < 0 {
				nextHullIndex = i
			}
			if c == 0 && e2.LengthSq() > e1.LengthSq() {
				nextHullIndex = i
			}
		}

		indexHull = nextHullIndex
		if nextHullIndex == rightMost {
			break
		}
	}

	if len(hull) < 3 {
		return fmt.Errorf("%w: %w: got %d", ErrInvalidGeometry, ErrDegenerateHull, len(hull))
	}
	if len(hull) < count {
		Logger.Printf("polygon hull dropped %d of %d vertices", count-len(hull), count)
	}

	hullVerts := make([]Vector, len(hull))
	for i, index := range hull {
		hullVerts[i] = verts[index]
	}

	normals := make([]Vector, len(hullVerts))
	for i1 := range hullVerts {
		i2 := (i1 + 1) % len(hullVerts)
		face := hullVerts[i2].Sub(hullVerts[i1])
		if face.LengthSq() <= EPSILON*EPSILON {
			return fmt.Errorf("%w: %w: edge %d", ErrInvalidGeometry, ErrDegenerateEdge, i1)
		}
		normals[i1] = face.ReversePerp().Normalize()
	}

	s.kind = SHAPE_POLY
	s.verts = hullVerts
	s.normals = normals
	return nil
}

// Verts returns the local space vertices. The slice is owned by the shape.
func (s *Shape) Verts() []Vector {
	return s.verts
}

// Normals returns the outward edge normals, index aligned with Verts.
func (s *Shape) Normals() []Vector {
	return s.normals
}

func (s *Shape) Count() int {
	return len(s.verts)
}

// GetSupport returns the local vertex farthest along dir.
func (s *Shape) GetSupport(dir Vector) Vector {
	bestProjection := -INFINITY
	var bestVertex Vector

	for _, v := range s.verts {
		projection := v.Dot(dir)
		if projection > bestProjection {
			bestVertex = v
			bestProjection = projection
		}
	}

	return bestVertex
}

func (s *Shape) polyComputeMass(density float64) ShapeMassInfo {
	const inv3 = 1.0 / 3.0

	var centroid Vector
	var area, inertia float64

	count := len(s.verts)
	for i1 := 0; i1 < count; i1++ {
		// Triangle fan from the local origin
		p1 := s.verts[i1]
		p2 := s.verts[(i1+1)%count]

		D := p1.Cross(p2)
		triangleArea := 0.5 * D
		area += triangleArea

		centroid = centroid.Add(p1.Add(p2).Mult(triangleArea * inv3))

		intx2 := p1.X*p1.X + p2.X*p1.X + p2.X*p2.X
		inty2 := p1.Y*p1.Y + p2.Y*p1.Y + p2.Y*p2.Y
		inertia += (0.25 * inv3 * D) * (intx2 + inty2)
	}

	if math.Abs(area) < EPSILON*EPSILON {
		return ShapeMassInfo{}
	}

	centroid = centroid.Mult(1.0 / area)
	if !centroid.Equal(Vector{}) {
		for i := range s.verts {
			s.verts[i] = s.verts[i].Sub(centroid)
		}
	}

	return ShapeMassInfo{
		Mass:     density * area,
		Inertia:  density * inertia,
		Area:     area,
		Centroid: centroid,
	}
}

func (s *Shape) polyDraw() {
	if len(s.vertices) != 3*len(s.verts) {
		s.vertices = make([]float32, 3*len(s.verts))
	}
	for i, v := range s.verts {
		point := v.Rotate(s.u)
		s.vertices[i*3] = float32(point.X)
		s.vertices[i*3+1] = float32(point.Y)
		s.vertices[i*3+2] = 0
	}
}
