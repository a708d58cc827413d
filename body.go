package impulse

import (
	"fmt"
)

// BodyID indexes a body in its Scene.
type BodyID int

const NoBody BodyID = -1

type Body struct {
	id    BodyID
	shape *Shape

	// mass and it's inverse
	m     float64
	m_inv float64

	// moment of inertia and it's inverse
	i     float64
	i_inv float64

	// position, velocity, force
	p Vector
	v Vector
	f Vector

	// Angle, angular velocity, torque (radians)
	a float64
	w float64
	t float64

	StaticFriction  float64
	DynamicFriction float64
	Restitution     float64

	// Cosmetic, picked at creation.
	Color FColor

	UserData interface{}
}

func (b Body) String() string {
	return fmt.Sprint("Body ", b.id)
}

// NewBody attaches shape to a new body at position and computes its mass. The shape is
// used as is; Scene.Add clones a prototype first.
func NewBody(id BodyID, shape *Shape, position Vector) *Body {
	body := &Body{
		id:              id,
		shape:           shape,
		p:               position,
		StaticFriction:  DEFAULT_STATIC_FRICTION,
		DynamicFriction: DEFAULT_DYNAMIC_FRICTION,
		Restitution:     DEFAULT_RESTITUTION,
		Color:           FColor{1, 1, 1, 1},
	}
	shape.Initialize(body)
	return body
}

func (body *Body) ID() BodyID {
	return body.id
}

func (body *Body) Shape() *Shape {
	return body.shape
}

func (body *Body) Mass() float64 {
	return body.m
}

func (body *Body) InverseMass() float64 {
	return body.m_inv
}

func (body *Body) Moment() float64 {
	return body.i
}

func (body *Body) InverseMoment() float64 {
	return body.i_inv
}

// A zero mass or moment leaves the inverse at zero, which reads as immovable.
func (body *Body) setMass(mass, moment float64) {
	body.m = mass
	body.m_inv = 0
	if mass > 0 {
		body.m_inv = 1 / mass
	}

	body.i = moment
	body.i_inv = 0
	if moment > 0 {
		body.i_inv = 1 / moment
	}
}

// SetStatic gives the body infinite mass. There is no way back.
func (body *Body) SetStatic() {
	body.i = 0
	body.i_inv = 0
	body.m = 0
	body.m_inv = 0
}

func (body *Body) IsStatic() bool {
	return body.m_inv == 0
}

func (body *Body) Angle() float64 {
	return body.a
}

// SetOrientation is the only way to change the angle so the shape's rotation stays in sync.
func (body *Body) SetOrientation(radians float64) {
	body.a = radians
	body.shape.SetOrientation(radians)
}

func (body *Body) Position() Vector {
	return body.p
}

func (body *Body) SetPosition(position Vector) {
	body.p = position
}

func (body *Body) Velocity() Vector {
	return body.v
}

func (body *Body) SetVelocity(x, y float64) {
	body.v = Vector{x, y}
}

func (body *Body) SetVelocityVector(v Vector) {
	body.v = v
}

func (body *Body) AngularVelocity() float64 {
	return body.w
}

func (body *Body) SetAngularVelocity(angularVelocity float64) {
	body.w = angularVelocity
}

func (body *Body) Force() Vector {
	return body.f
}

func (body *Body) Torque() float64 {
	return body.t
}

func (body *Body) ApplyForce(force Vector) {
	body.f = body.f.Add(force)
}

func (body *Body) ApplyTorque(torque float64) {
	body.t += torque
}

// ApplyImpulse changes the velocities for an impulse applied at r, the offset of the
// contact from the center of mass.
func (body *Body) ApplyImpulse(impulse, r Vector) {
	body.v = body.v.Add(impulse.Mult(body.m_inv))
	body.w += body.i_inv * r.Cross(impulse)
}

// VelocityAtWorldPoint is v + w x r for the world point at offset r from the center.
func (body *Body) VelocityAtWorldPoint(point Vector) Vector {
	r := point.Sub(body.p)
	return body.v.Add(r.Perp().Mult(body.w))
}

func (body *Body) LocalToWorld(point Vector) Vector {
	return point.Rotate(body.shape.u).Add(body.p)
}

func (body *Body) WorldToLocal(point Vector) Vector {
	return point.Sub(body.p).Unrotate(body.shape.u)
}

// WorldVerts returns the polygon vertices in world space, nil for circles.
func (body *Body) WorldVerts() []Vector {
	if body.shape.kind != SHAPE_POLY {
		return nil
	}
	verts := make([]Vector, len(body.shape.verts))
	for i, v := range body.shape.verts {
		verts[i] = body.LocalToWorld(v)
	}
	return verts
}

// Draw regenerates the shape's render buffer for the current orientation.
func (body *Body) Draw() []float32 {
	return body.shape.Draw(body.a)
}

func (body *Body) KineticEnergy() float64 {
	// Need to do some fudging to avoid NaNs
	vsq := body.v.Dot(body.v)
	wsq := body.w * body.w
	var a, b float64
	if vsq != 0 {
		a = vsq * body.m
	}
	if wsq != 0 {
		b = wsq * body.i
	}
	return a + b
}

// BodyIntegrateForces advances the velocity by half a step of force and gravity.
func BodyIntegrateForces(body *Body, gravity Vector, dt float64) {
	if body.m_inv == 0 {
		return
	}

	body.v = body.v.Add(body.f.Mult(body.m_inv).Add(gravity).Mult(dt / 2))
	body.w += body.t * body.i_inv * (dt / 2)
}

// BodyIntegrateVelocity moves the body by its velocity and then applies the second
// half step of forces.
func BodyIntegrateVelocity(body *Body, gravity Vector, dt float64) {
	if body.m_inv == 0 {
		return
	}

	body.p = body.p.Add(body.v.Mult(dt))
	body.SetOrientation(body.a + body.w*dt)
	BodyIntegrateForces(body, gravity, dt)
}
