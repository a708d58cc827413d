package impulse

import (
	"fmt"
	"math"
)

// FrictionRule decides how the friction coefficients of two touching bodies combine.
type FrictionRule int

const (
	// FrictionBodyA uses the first body's coefficients and ignores the second's.
	FrictionBodyA FrictionRule = iota
	// FrictionGeometricMean uses sqrt(a*b) of both bodies' coefficients.
	FrictionGeometricMean
)

func (r FrictionRule) String() string {
	switch r {
	case FrictionBodyA:
		return "body-a"
	case FrictionGeometricMean:
		return "geometric-mean"
	}
	return "unknown"
}

// Manifold is the contact between two bodies for a single step. The normal points
// from A toward B and Penetration is never negative.
type Manifold struct {
	A, B *Body

	Penetration float64
	Normal      Vector
	Contacts    [2]Vector
	Count       int

	// mixed restitution, static and dynamic friction
	e, sf, df float64
}

func NewManifold(a, b *Body) *Manifold {
	return &Manifold{A: a, B: b}
}

func (m *Manifold) String() string {
	return fmt.Sprintf("Manifold{%v, %v, count: %d, normal: %v, penetration: %v}", m.A, m.B, m.Count, m.Normal, m.Penetration)
}

// Solve fills in the contact geometry through CollisionFuncs.
func (m *Manifold) Solve() {
	CollisionFuncs[m.A.shape.kind][m.B.shape.kind](m, m.A, m.B)
	assert(m.Count >= 0 && m.Count <= 2, "Manifold has more than 2 contacts")
}

// Restitution, StaticFriction and DynamicFriction are the mixed values from the last
// Initialize.
func (m *Manifold) Restitution() float64 {
	return m.e
}

func (m *Manifold) StaticFriction() float64 {
	return m.sf
}

func (m *Manifold) DynamicFriction() float64 {
	return m.df
}

// relativeVelocity is the velocity of B relative to A at the contact offsets ra and rb.
func relativeVelocity(a, b *Body, ra, rb Vector) Vector {
	va := a.v.Add(ra.Perp().Mult(a.w))
	vb := b.v.Add(rb.Perp().Mult(b.w))
	return vb.Sub(va)
}

// Initialize mixes the material of both bodies. Restitution is dropped for contacts
// slower than what gravity adds in one step, so resting bodies don't bounce.
func (m *Manifold) Initialize(dt float64, gravity Vector, rule FrictionRule) {
	a, b := m.A, m.B

	m.e = math.Min(a.Restitution, b.Restitution)

	switch rule {
	case FrictionGeometricMean:
		m.sf = math.Sqrt(a.StaticFriction * b.StaticFriction)
		m.df = math.Sqrt(a.DynamicFriction * b.DynamicFriction)
	default:
		m.sf = math.Sqrt(a.StaticFriction * a.StaticFriction)
		m.df = math.Sqrt(a.DynamicFriction * a.DynamicFriction)
	}

	resting := gravity.Mult(dt).LengthSq() + EPSILON
	for i := 0; i < m.Count; i++ {
		ra := m.Contacts[i].Sub(a.p)
		rb := m.Contacts[i].Sub(b.p)

		rv := relativeVelocity(a, b, ra, rb)
		if rv.LengthSq() < resting {
			m.e = 0
		}
	}
}

// ApplyImpulse runs one sequential impulse pass over the contacts. A separating contact
// ends the pass for the whole manifold. Friction is skipped for a contact with no
// tangential motion left after the normal impulse.
func (m *Manifold) ApplyImpulse() {
	a, b := m.A, m.B

	if math.Abs(a.m_inv+b.m_inv) <= EPSILON {
		m.InfiniteMassCorrection()
		return
	}

	count := float64(m.Count)
	for i := 0; i < m.Count; i++ {
		ra := m.Contacts[i].Sub(a.p)
		rb := m.Contacts[i].Sub(b.p)

		rv := relativeVelocity(a, b, ra, rb)

		contactVel := rv.Dot(m.Normal)
		if contactVel > 0 {
			return
		}

		raCrossN := ra.Cross(m.Normal)
		rbCrossN := rb.Cross(m.Normal)
		invMassSum := a.m_inv + b.m_inv + raCrossN*raCrossN*a.i_inv + rbCrossN*rbCrossN*b.i_inv

		j := -(1 + m.e) * contactVel
		j /= invMassSum
		j /= count

		impulse := m.Normal.Mult(j)
		a.ApplyImpulse(impulse.Neg(), ra)
		b.ApplyImpulse(impulse, rb)

		// Friction
		rv = relativeVelocity(a, b, ra, rb)
		tangent := rv.Sub(m.Normal.Mult(rv.Dot(m.Normal)))
		// rounding residue, normalizing it would point along the normal
		if tangent.LengthSq() <= EPSILON {
			continue
		}
		t := tangent.Normalize()

		jt := -rv.Dot(t)
		jt /= invMassSum
		jt /= count

		if math.Abs(jt) <= EPSILON {
			continue
		}

		// Coulomb's law
		var tangentImpulse Vector
		if math.Abs(jt) < j*m.sf {
			tangentImpulse = t.Mult(jt)
		} else {
			tangentImpulse = t.Mult(-j * m.df)
		}

		a.ApplyImpulse(tangentImpulse.Neg(), ra)
		b.ApplyImpulse(tangentImpulse, rb)
	}
}

// PositionalCorrection pushes the bodies apart by PERCENT of the penetration beyond SLOP,
// split by inverse mass.
func (m *Manifold) PositionalCorrection() {
	a, b := m.A, m.B

	invMassSum := a.m_inv + b.m_inv
	if invMassSum == 0 {
		return
	}

	correction := m.Normal.Mult(math.Max(m.Penetration-SLOP, 0) / invMassSum * PERCENT)
	a.p = a.p.Sub(correction.Mult(a.m_inv))
	b.p = b.p.Add(correction.Mult(b.m_inv))
}

func (m *Manifold) InfiniteMassCorrection() {
	m.A.v = Vector{}
	m.B.v = Vector{}
}

// ApproachSpeed is the closing speed along the normal at the first contact, zero when
// the bodies are separating.
func (m *Manifold) ApproachSpeed() float64 {
	if m.Count == 0 {
		return 0
	}
	ra := m.Contacts[0].Sub(m.A.p)
	rb := m.Contacts[0].Sub(m.B.p)
	return math.Max(-relativeVelocity(m.A, m.B, ra, rb).Dot(m.Normal), 0)
}
