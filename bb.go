package impulse

import "math"

// BB is an axis aligned bounding box.
type BB struct {
	L, B, R, T float64
}

func NewBBForExtents(c Vector, hw, hh float64) BB {
	return BB{
		L: c.X - hw,
		B: c.Y - hh,
		R: c.X + hw,
		T: c.Y + hh,
	}
}

func NewBBForCircle(p Vector, r float64) BB {
	return NewBBForExtents(p, r, r)
}

// NewBBForVerts returns the smallest box holding every point of verts.
func NewBBForVerts(verts []Vector) BB {
	bb := BB{INFINITY, INFINITY, -INFINITY, -INFINITY}
	for _, v := range verts {
		bb = bb.Expand(v)
	}
	return bb
}

func (a BB) Intersects(b BB) bool {
	return a.L <= b.R && b.L <= a.R && a.B <= b.T && b.B <= a.T
}

func (bb BB) Contains(other BB) bool {
	return bb.L <= other.L && bb.R >= other.R && bb.B <= other.B && bb.T >= other.T
}

func (bb BB) ContainsVect(v Vector) bool {
	return bb.L <= v.X && bb.R >= v.X && bb.B <= v.Y && bb.T >= v.Y
}

func (a BB) Merge(b BB) BB {
	return BB{
		math.Min(a.L, b.L),
		math.Min(a.B, b.B),
		math.Max(a.R, b.R),
		math.Max(a.T, b.T),
	}
}

func (bb BB) Expand(v Vector) BB {
	return BB{
		math.Min(bb.L, v.X),
		math.Min(bb.B, v.Y),
		math.Max(bb.R, v.X),
		math.Max(bb.T, v.Y),
	}
}

func (bb BB) Center() Vector {
	return Vector{bb.L, bb.B}.Lerp(Vector{bb.R, bb.T}, 0.5)
}

func (bb BB) Area() float64 {
	return (bb.R - bb.L) * (bb.T - bb.B)
}

// BB returns the world space bounds of the body at its current pose.
func (body *Body) BB() BB {
	if body.shape.kind == SHAPE_CIRCLE {
		return NewBBForCircle(body.p, body.shape.r)
	}
	return NewBBForVerts(body.WorldVerts())
}

// ContainsPoint reports whether the world point p is inside the body's shape.
func (body *Body) ContainsPoint(p Vector) bool {
	shape := body.shape
	if shape.kind == SHAPE_CIRCLE {
		return p.DistanceSq(body.p) <= shape.r*shape.r
	}

	local := body.WorldToLocal(p)
	for i, n := range shape.normals {
		if n.Dot(local.Sub(shape.verts[i])) > 0 {
			return false
		}
	}
	return true
}

// PointQuery returns the last added body containing p, nil when p is in empty space.
func (scene *Scene) PointQuery(p Vector) *Body {
	for i := len(scene.bodies) - 1; i >= 0; i-- {
		body := scene.bodies[i]
		if body.BB().ContainsVect(p) && body.ContainsPoint(p) {
			return body
		}
	}
	return nil
}
