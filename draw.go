package impulse

//Draw flags
const (
	DRAW_SHAPES           = 1 << 0
	DRAW_COLLISION_POINTS = 1 << 1
)

// 16 bytes
type FColor struct {
	R, G, B, A float32
}

type Drawer interface {
	DrawCircle(pos Vector, angle, radius float64, outline, fill FColor, data interface{})
	DrawSegment(a, b Vector, fill FColor, data interface{})
	DrawPolygon(verts []Vector, outline, fill FColor, data interface{})
	DrawDot(size float64, pos Vector, fill FColor, data interface{})

	Flags() int
	OutlineColor() FColor
	BodyColor(body *Body, data interface{}) FColor
	CollisionPointColor() FColor
	Data() interface{}
}

func DrawBody(body *Body, options Drawer) {
	data := options.Data()

	outline := options.OutlineColor()
	fill := options.BodyColor(body, data)

	switch body.shape.kind {
	case SHAPE_CIRCLE:
		options.DrawCircle(body.p, body.a, body.shape.r, outline, fill, data)
	case SHAPE_POLY:
		options.DrawPolygon(body.WorldVerts(), outline, fill, data)
	default:
		panic("Unknown shape type")
	}
}

// DrawScene draws the bodies and, with DRAW_COLLISION_POINTS, the contacts of the last
// step as a dot and a short segment along the normal.
func DrawScene(scene *Scene, options Drawer) {
	if options.Flags()&DRAW_SHAPES != 0 {
		for _, body := range scene.bodies {
			DrawBody(body, options)
		}
	}

	if options.Flags()&DRAW_COLLISION_POINTS != 0 {
		data := options.Data()
		color := options.CollisionPointColor()

		for _, m := range scene.contacts {
			for j := 0; j < m.Count; j++ {
				c := m.Contacts[j]
				options.DrawDot(4, c, color, data)
				options.DrawSegment(c, c.Add(m.Normal.Mult(0.75)), color, data)
			}
		}
	}
}
