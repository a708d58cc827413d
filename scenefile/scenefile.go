// Package scenefile loads scenes described as JSON.
package scenefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/jakecoffman/impulse"
)

var (
	ErrUnknownShape    = errors.New("unknown shape type")
	ErrUnknownFriction = errors.New("unknown friction rule")
)

type File struct {
	Dt         float64         `json:"dt,omitempty"`
	Iterations int             `json:"iterations,omitempty"`
	Gravity    *impulse.Vector `json:"gravity,omitempty"`
	Friction   string          `json:"friction,omitempty"`
	// Jitter defaults to on, like impulse.NewScene.
	Jitter *bool `json:"jitter,omitempty"`
	// Seed for the scene's random source, 0 keeps the time seeded default.
	Seed int64 `json:"seed,omitempty"`
	// Duration in seconds for headless runs.
	Duration float64 `json:"duration,omitempty"`

	Bodies []BodyDef `json:"bodies"`
}

type BodyDef struct {
	Shape           ShapeDef       `json:"shape"`
	Position        impulse.Vector `json:"position"`
	Velocity        impulse.Vector `json:"velocity"`
	AngularVelocity float64        `json:"angularVelocity,omitempty"`
	Orientation     *float64       `json:"orientation,omitempty"`
	Static          bool           `json:"static,omitempty"`

	Restitution     *float64 `json:"restitution,omitempty"`
	StaticFriction  *float64 `json:"staticFriction,omitempty"`
	DynamicFriction *float64 `json:"dynamicFriction,omitempty"`

	Color *[3]float32 `json:"color,omitempty"`
}

type ShapeDef struct {
	Type string `json:"type"`

	Radius     float64          `json:"radius,omitempty"`
	HalfWidth  float64          `json:"halfWidth,omitempty"`
	HalfHeight float64          `json:"halfHeight,omitempty"`
	Vertices   []impulse.Vector `json:"vertices,omitempty"`
}

func Load(filename string) (*File, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	return &f, nil
}

// NewShape builds the prototype shape a body is cloned from.
func (def ShapeDef) NewShape() (*impulse.Shape, error) {
	switch strings.ToLower(def.Type) {
	case "circle":
		return impulse.NewCircle(def.Radius), nil
	case "box":
		return impulse.NewBox(def.HalfWidth, def.HalfHeight), nil
	case "polygon":
		return impulse.NewPolygon(def.Vertices)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, def.Type)
}

func parseFriction(name string) (impulse.FrictionRule, error) {
	switch strings.ToLower(name) {
	case "", impulse.FrictionBodyA.String():
		return impulse.FrictionBodyA, nil
	case impulse.FrictionGeometricMean.String():
		return impulse.FrictionGeometricMean, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFriction, name)
}

// Build creates a scene and adds every body in file order, so body IDs match indexes
// into Bodies.
func (f *File) Build() (*impulse.Scene, error) {
	dt := f.Dt
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	iterations := f.Iterations
	if iterations <= 0 {
		iterations = impulse.DefaultIterations
	}

	scene := impulse.NewScene(dt, iterations)
	if f.Gravity != nil {
		scene.Gravity = *f.Gravity
	}
	if f.Jitter != nil {
		scene.Jitter = *f.Jitter
	}
	if f.Seed != 0 {
		scene.Rand = rand.New(rand.NewSource(f.Seed))
	}

	rule, err := parseFriction(f.Friction)
	if err != nil {
		return nil, err
	}
	scene.Friction = rule

	for i, def := range f.Bodies {
		shape, err := def.Shape.NewShape()
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}

		body := scene.Add(shape, def.Position.X, def.Position.Y)
		if def.Static {
			body.SetStatic()
		}
		if def.Orientation != nil {
			body.SetOrientation(*def.Orientation)
		}
		if def.Velocity != (impulse.Vector{}) {
			body.SetVelocityVector(def.Velocity)
		}
		if def.AngularVelocity != 0 {
			body.SetAngularVelocity(def.AngularVelocity)
		}
		if def.Restitution != nil {
			body.Restitution = *def.Restitution
		}
		if def.StaticFriction != nil {
			body.StaticFriction = *def.StaticFriction
		}
		if def.DynamicFriction != nil {
			body.DynamicFriction = *def.DynamicFriction
		}
		if def.Color != nil {
			body.Color = impulse.FColor{R: def.Color[0], G: def.Color[1], B: def.Color[2], A: 1}
		}
	}

	return scene, nil
}

// Steps is the number of fixed steps covering Duration.
func (f *File) Steps(scene *impulse.Scene) int {
	return int(f.Duration/scene.Dt() + 0.5)
}
