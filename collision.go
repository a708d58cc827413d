package impulse

import (
	"math"
)

// CollisionFunc fills in the contact geometry of m for the bodies a and b. The normal
// always points from a toward b.
type CollisionFunc func(m *Manifold, a, b *Body)

// CollisionFuncs is indexed by [a.Shape().Type()][b.Shape().Type()].
var CollisionFuncs = [SHAPE_NUM][SHAPE_NUM]CollisionFunc{
	{CircleToCircle, CircleToPolygon},
	{PolygonToCircle, PolygonToPolygon},
}

func CircleToCircle(m *Manifold, a, b *Body) {
	A := a.shape
	B := b.shape

	normal := b.p.Sub(a.p)
	distSqr := normal.LengthSq()
	radius := A.r + B.r

	if distSqr >= radius*radius {
		m.Count = 0
		return
	}

	distance := math.Sqrt(distSqr)
	m.Count = 1

	if distance == 0 {
		m.Penetration = A.r
		m.Normal = Vector{1, 0}
		m.Contacts[0] = a.p
	} else {
		m.Penetration = radius - distance
		m.Normal = normal.Mult(1 / distance)
		m.Contacts[0] = m.Normal.Mult(A.r).Add(a.p)
	}
}

func CircleToPolygon(m *Manifold, a, b *Body) {
	A := a.shape
	B := b.shape

	m.Count = 0

	// Circle center in polygon space
	center := a.p.Sub(b.p).Unrotate(B.u)

	// Face of least penetration
	separation := -INFINITY
	faceNormal := 0
	for i, n := range B.normals {
		s := n.Dot(center.Sub(B.verts[i]))
		if s > A.r {
			return
		}

		if s > separation {
			separation = s
			faceNormal = i
		}
	}

	v1 := B.verts[faceNormal]
	v2 := B.verts[(faceNormal+1)%len(B.verts)]

	// Center inside the polygon
	if separation < EPSILON {
		m.Count = 1
		m.Normal = B.normals[faceNormal].Rotate(B.u).Neg()
		m.Contacts[0] = m.Normal.Mult(A.r).Add(a.p)
		m.Penetration = A.r
		return
	}

	dot1 := center.Sub(v1).Dot(v2.Sub(v1))
	dot2 := center.Sub(v2).Dot(v1.Sub(v2))
	m.Penetration = A.r - separation

	switch {
	case dot1 <= 0:
		// Closest to v1
		if center.DistanceSq(v1) > A.r*A.r {
			return
		}

		m.Count = 1
		m.Normal = v1.Sub(center).Rotate(B.u).Normalize()
		m.Contacts[0] = v1.Rotate(B.u).Add(b.p)
	case dot2 <= 0:
		// Closest to v2
		if center.DistanceSq(v2) > A.r*A.r {
			return
		}

		m.Count = 1
		m.Normal = v2.Sub(center).Rotate(B.u).Normalize()
		m.Contacts[0] = v2.Rotate(B.u).Add(b.p)
	default:
		// Closest to the face
		n := B.normals[faceNormal]
		if center.Sub(v1).Dot(n) > A.r {
			return
		}

		m.Normal = n.Rotate(B.u).Neg()
		m.Contacts[0] = m.Normal.Mult(A.r).Add(a.p)
		m.Count = 1
	}
}

func PolygonToCircle(m *Manifold, a, b *Body) {
	CircleToPolygon(m, b, a)
	m.Normal = m.Normal.Neg()
}

// FindAxisLeastPenetration returns the largest separation between a face of a and the
// deepest point of b against it, and the index of that face. A non negative result is a
// separating axis.
func FindAxisLeastPenetration(a, b *Body) (float64, int) {
	A := a.shape
	B := b.shape

	bestDistance := -INFINITY
	bestIndex := 0

	for i, n := range A.normals {
		// Face normal in b's space
		nw := n.Rotate(A.u)
		n = nw.Unrotate(B.u)

		s := B.GetSupport(n.Neg())

		// Face vertex in b's space
		v := A.verts[i].Rotate(A.u).Add(a.p)
		v = v.Sub(b.p).Unrotate(B.u)

		d := n.Dot(s.Sub(v))
		if d > bestDistance {
			bestDistance = d
			bestIndex = i
		}
	}

	return bestDistance, bestIndex
}

// FindIncidentFace returns the world space edge of inc most anti parallel to the
// reference face of ref.
func FindIncidentFace(ref, inc *Body, referenceIndex int) [2]Vector {
	RefPoly := ref.shape
	IncPoly := inc.shape

	// Reference normal in the incident polygon's space
	referenceNormal := RefPoly.normals[referenceIndex].Rotate(RefPoly.u).Unrotate(IncPoly.u)

	incidentFace := 0
	minDot := INFINITY
	for i, n := range IncPoly.normals {
		dot := referenceNormal.Dot(n)
		if dot < minDot {
			minDot = dot
			incidentFace = i
		}
	}

	next := (incidentFace + 1) % len(IncPoly.verts)
	return [2]Vector{
		IncPoly.verts[incidentFace].Rotate(IncPoly.u).Add(inc.p),
		IncPoly.verts[next].Rotate(IncPoly.u).Add(inc.p),
	}
}

// Clip keeps the part of face with n.x <= c, replacing face in place, and returns the
// number of points left.
func Clip(n Vector, c float64, face *[2]Vector) int {
	sp := 0
	out := *face

	// Distance from each endpoint to the line
	d1 := n.Dot(face[0]) - c
	d2 := n.Dot(face[1]) - c

	if d1 <= 0 {
		out[sp] = face[0]
		sp++
	}
	if d2 <= 0 {
		out[sp] = face[1]
		sp++
	}

	// Endpoints on opposite sides, push the intersection
	if d1*d2 < 0 {
		alpha := d1 / (d1 - d2)
		out[sp] = face[0].Add(face[1].Sub(face[0]).Mult(alpha))
		sp++
	}

	*face = out
	assert(sp != 3, "Clip produced 3 points")
	return sp
}

func PolygonToPolygon(m *Manifold, a, b *Body) {
	m.Count = 0

	penetrationA, faceA := FindAxisLeastPenetration(a, b)
	if penetrationA >= 0 {
		return
	}

	penetrationB, faceB := FindAxisLeastPenetration(b, a)
	if penetrationB >= 0 {
		return
	}

	var ref, inc *Body
	var referenceIndex int
	var flip bool

	// Prefer a, unless b is clearly better, so the normal doesn't flicker
	if penetrationA >= penetrationB*BIAS_RELATIVE+penetrationA*BIAS_ABSOLUTE {
		ref, inc = a, b
		referenceIndex = faceA
		flip = false
	} else {
		ref, inc = b, a
		referenceIndex = faceB
		flip = true
	}

	incidentFace := FindIncidentFace(ref, inc, referenceIndex)

	//        y
	//        ^  ->n       ^
	//      +---c ------posPlane--
	//  x < | i |\
	//      +---+ c-----negPlane--
	//             \       v
	//              r
	//
	//  r : reference face
	//  i : incident poly
	//  c : clipped point
	//  n : incident normal

	RefPoly := ref.shape
	v1 := RefPoly.verts[referenceIndex].Rotate(RefPoly.u).Add(ref.p)
	v2 := RefPoly.verts[(referenceIndex+1)%len(RefPoly.verts)].Rotate(RefPoly.u).Add(ref.p)

	sidePlaneNormal := v2.Sub(v1).Normalize()
	refFaceNormal := sidePlaneNormal.ReversePerp()

	// ax + by = c, c is the distance from the origin
	refC := refFaceNormal.Dot(v1)
	negSide := -sidePlaneNormal.Dot(v1)
	posSide := sidePlaneNormal.Dot(v2)

	// Floating point error can leave fewer than 2 points
	if Clip(sidePlaneNormal.Neg(), negSide, &incidentFace) < 2 {
		return
	}
	if Clip(sidePlaneNormal, posSide, &incidentFace) < 2 {
		return
	}

	if flip {
		m.Normal = refFaceNormal.Neg()
	} else {
		m.Normal = refFaceNormal
	}

	// Keep the points behind the reference face
	cp := 0
	m.Penetration = 0
	for _, point := range incidentFace {
		separation := refFaceNormal.Dot(point) - refC
		if separation <= 0 {
			m.Contacts[cp] = point
			m.Penetration += -separation
			cp++
		}
	}
	if cp > 0 {
		m.Penetration /= float64(cp)
	}

	m.Count = cp
}
