package impulse

import (
	"errors"
	"log"
	"math"
	"os"
)

const INFINITY = math.MaxFloat64

// Tolerance used in place of exact zero comparisons.
const EPSILON = 0.0001

const MAX_POLY_VERTEX_COUNT = 64

// Shape types, used to index the collision dispatch table.
const (
	SHAPE_CIRCLE ShapeType = iota
	SHAPE_POLY
	SHAPE_NUM
)

// Positional correction and reference face selection tuning.
const (
	// Penetration allowance
	SLOP = 0.05
	// Fraction of the remaining penetration corrected per step
	PERCENT = 0.4

	BIAS_RELATIVE = 0.95
	BIAS_ABSOLUTE = 0.01
)

// Defaults used by NewScene.
var (
	DefaultGravity    = Vector{0, 10 * -5.0}
	DefaultIterations = 10
)

// Default material of a freshly added body.
const (
	DEFAULT_STATIC_FRICTION  = 0.5
	DEFAULT_DYNAMIC_FRICTION = 0.3
	DEFAULT_RESTITUTION      = 0.2
)

var (
	// ErrInvalidGeometry is wrapped by every geometry validation failure.
	ErrInvalidGeometry = errors.New("invalid geometry")
	ErrVertexCount     = errors.New("polygon vertex count must be in (2, 64]")
	ErrDegenerateEdge  = errors.New("polygon edge has zero length")
	ErrDegenerateHull  = errors.New("polygon hull has fewer than 3 vertices")
)

// Logger receives the rare warnings the library emits. Replace or silence it with
// Logger.SetOutput(io.Discard).
var Logger = log.New(os.Stderr, "impulse: ", log.LstdFlags)
