package impulse

import (
	"math"
	"math/rand"
	"time"
)

type PostStepCallback func(scene *Scene)

// Scene owns the bodies and steps them with a fixed time step.
type Scene struct {
	Iterations int // solver passes per step, must be non-zero
	Gravity    Vector

	// Jitter gives new bodies a small initial velocity, spin and a random orientation.
	Jitter bool
	Rand   *rand.Rand

	Friction FrictionRule

	// OnContact is called for every manifold of a step after its material is mixed,
	// with the closing speed along the normal.
	OnContact func(m *Manifold, speed float64)

	dt float64

	bodies   []*Body
	contacts []*Manifold

	locked            int
	postStepCallbacks []PostStepCallback
}

func NewScene(dt float64, iterations int) *Scene {
	return &Scene{
		Iterations: iterations,
		Gravity:    DefaultGravity,
		Jitter:     true,
		Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		Friction:   FrictionBodyA,
		dt:         dt,
		bodies:     []*Body{},
		contacts:   []*Manifold{},
	}
}

// Dt is the fixed time step of every Step.
func (scene *Scene) Dt() float64 {
	return scene.dt
}

func (scene *Scene) randRange(low, high float64) float64 {
	return low + scene.Rand.Float64()*(high-low)
}

// Add clones the prototype shape into a new body at (x, y). The prototype is not
// modified and can be reused.
func (scene *Scene) Add(shape *Shape, x, y float64) *Body {
	if shape == nil {
		panic("impulse: cannot add a nil shape")
	}
	assert(scene.locked == 0, "Cannot add a body while the scene is stepping. Use AddPostStepCallback")

	body := NewBody(BodyID(len(scene.bodies)), shape.Clone(), Vector{x, y})

	var orient float64
	if scene.Jitter {
		body.v = Vector{0.01, 0.01}
		body.w = 0.01
		orient = scene.randRange(-math.Pi, math.Pi)
	}
	body.SetOrientation(orient)

	body.Color = FColor{
		R: float32(scene.randRange(0.2, 1)),
		G: float32(scene.randRange(0.2, 1)),
		B: float32(scene.randRange(0.2, 1)),
		A: 1,
	}

	scene.bodies = append(scene.bodies, body)
	return body
}

// Clear removes every body. Handles from before the call are no longer valid.
func (scene *Scene) Clear() {
	assert(scene.locked == 0, "Cannot clear the scene while it is stepping")
	scene.bodies = scene.bodies[:0]
	scene.contacts = scene.contacts[:0]
}

func (scene *Scene) Bodies() []*Body {
	return scene.bodies
}

// Body looks up a body by handle, nil when the handle is stale.
func (scene *Scene) Body(id BodyID) *Body {
	if id < 0 || int(id) >= len(scene.bodies) {
		return nil
	}
	return scene.bodies[id]
}

func (scene *Scene) EachBody(f func(*Body)) {
	for _, body := range scene.bodies {
		f(body)
	}
}

// Contacts returns the manifolds found by the last Step.
func (scene *Scene) Contacts() []*Manifold {
	return scene.contacts
}

func (scene *Scene) Lock() {
	scene.locked++
}

func (scene *Scene) Unlock(runPostStep bool) {
	scene.locked--
	assert(scene.locked >= 0, "Scene lock underflow")

	if scene.locked == 0 && runPostStep {
		callbacks := scene.postStepCallbacks
		scene.postStepCallbacks = nil
		for _, f := range callbacks {
			f(scene)
		}
	}
}

func (scene *Scene) IsLocked() bool {
	return scene.locked > 0
}

// AddPostStepCallback defers f until the current Step is done, or runs it right away
// when the scene is not stepping.
func (scene *Scene) AddPostStepCallback(f PostStepCallback) {
	if scene.locked == 0 {
		f(scene)
		return
	}
	scene.postStepCallbacks = append(scene.postStepCallbacks, f)
}

// Step advances the scene by Dt.
func (scene *Scene) Step() {
	scene.Lock()
	defer scene.Unlock(true)

	dt := scene.dt
	gravity := scene.Gravity

	// Narrow phase on every pair that can move
	scene.contacts = scene.contacts[:0]
	for i, a := range scene.bodies {
		for _, b := range scene.bodies[i+1:] {
			if a.m_inv == 0 && b.m_inv == 0 {
				continue
			}
			m := NewManifold(a, b)
			m.Solve()
			if m.Count > 0 {
				scene.contacts = append(scene.contacts, m)
			}
		}
	}

	for _, body := range scene.bodies {
		BodyIntegrateForces(body, gravity, dt)
	}

	for _, m := range scene.contacts {
		m.Initialize(dt, gravity, scene.Friction)
		if scene.OnContact != nil {
			scene.OnContact(m, m.ApproachSpeed())
		}
	}

	for i := 0; i < scene.Iterations; i++ {
		for _, m := range scene.contacts {
			m.ApplyImpulse()
		}
	}

	for _, body := range scene.bodies {
		BodyIntegrateVelocity(body, gravity, dt)
	}

	for _, m := range scene.contacts {
		m.PositionalCorrection()
	}

	for _, body := range scene.bodies {
		body.f = Vector{}
		body.t = 0
	}
}
