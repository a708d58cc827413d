package impulse

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func collide(a, b *Body) *Manifold {
	m := NewManifold(a, b)
	m.Solve()
	return m
}

func TestCollisionCircleCircle(t *testing.T) {
	a := NewBody(0, NewCircle(1), Vector{0, 0})
	b := NewBody(1, NewCircle(1), Vector{1.5, 0})

	m := collide(a, b)
	if m.Count != 1 || !m.Normal.Near(Vector{1, 0}, 1e-12) || !near(m.Penetration, 0.5, 1e-12) || !m.Contacts[0].Near(Vector{1, 0}, 1e-12) {
		t.Errorf("Unexpected manifold %s", spew.Sdump(m.Count, m.Normal, m.Penetration, m.Contacts))
	}

	b.SetPosition(Vector{2, 0})
	if m := collide(a, b); m.Count != 0 {
		t.Errorf("Expected touching circles not to collide, got %d contacts", m.Count)
	}

	b.SetPosition(Vector{})
	m = collide(a, b)
	if m.Count != 1 || !m.Normal.Equal(Vector{1, 0}) || m.Penetration != 1 || !m.Contacts[0].Equal(a.Position()) {
		t.Errorf("Unexpected manifold for coincident centers %s", spew.Sdump(m.Count, m.Normal, m.Penetration, m.Contacts))
	}
}

func TestCollisionCirclePolygonFace(t *testing.T) {
	circle := NewBody(0, NewCircle(1), Vector{0, 1.5})
	box := NewBody(1, NewBox(2, 1), Vector{})

	m := collide(circle, box)
	if m.Count != 1 || !m.Normal.Near(Vector{0, -1}, 1e-12) || !near(m.Penetration, 0.5, 1e-12) || !m.Contacts[0].Near(Vector{0, 0.5}, 1e-12) {
		t.Errorf("Unexpected manifold %s", spew.Sdump(m.Count, m.Normal, m.Penetration, m.Contacts))
	}

	// Swapped order flips the normal
	m = collide(box, circle)
	if m.Count != 1 || !m.Normal.Near(Vector{0, 1}, 1e-12) {
		t.Errorf("Expected normal from box toward circle, got %s", spew.Sdump(m.Count, m.Normal))
	}
}

func TestCollisionCirclePolygonVertex(t *testing.T) {
	circle := NewBody(0, NewCircle(1), Vector{2.5, 1.5})
	box := NewBody(1, NewBox(2, 1), Vector{})

	m := collide(circle, box)
	if m.Count != 1 {
		t.Fatalf("Expected 1 contact, got %d", m.Count)
	}
	if !m.Contacts[0].Near(Vector{2, 1}, 1e-12) {
		t.Errorf("Expected contact at the corner, got %v", m.Contacts[0])
	}
	if !m.Normal.Near(Vector{-0.5, -0.5}.Normalize(), 1e-9) {
		t.Errorf("Expected diagonal normal, got %v", m.Normal)
	}

	circle.SetPosition(Vector{3, 2})
	if m := collide(circle, box); m.Count != 0 {
		t.Errorf("Expected no contact outside the corner radius, got %s", spew.Sdump(m.Contacts))
	}
}

func TestCollisionCircleInsidePolygon(t *testing.T) {
	circle := NewBody(0, NewCircle(0.25), Vector{0, 0.5})
	box := NewBody(1, NewBox(2, 1), Vector{})

	m := collide(circle, box)
	if m.Count != 1 || !m.Normal.Near(Vector{0, -1}, 1e-12) || m.Penetration != 0.25 {
		t.Errorf("Unexpected manifold %s", spew.Sdump(m.Count, m.Normal, m.Penetration))
	}
}

func TestCollisionCircleRotatedPolygon(t *testing.T) {
	box := NewBody(1, NewBox(2, 1), Vector{})
	box.SetOrientation(math.Pi / 2)
	// Long side now vertical, so the circle is beside the short face
	circle := NewBody(0, NewCircle(1), Vector{1.5, 0})

	m := collide(circle, box)
	if m.Count != 1 || !m.Normal.Near(Vector{-1, 0}, 1e-9) || !near(m.Penetration, 0.5, 1e-9) {
		t.Errorf("Unexpected manifold %s", spew.Sdump(m.Count, m.Normal, m.Penetration))
	}
}

func TestCollisionPolygonPolygon(t *testing.T) {
	a := NewBody(0, NewBox(2, 1), Vector{})
	b := NewBody(1, NewBox(1, 1), Vector{0, 1.9})

	m := collide(a, b)
	if m.Count != 2 {
		t.Fatalf("Expected 2 contacts, got %s", spew.Sdump(m))
	}
	if !m.Normal.Near(Vector{0, 1}, 1e-12) {
		t.Errorf("Expected normal (0,1), got %v", m.Normal)
	}
	if !near(m.Penetration, 0.1, 1e-9) {
		t.Errorf("Expected penetration 0.1, got %v", m.Penetration)
	}
	if !m.Contacts[0].Near(Vector{-1, 1}, 1e-9) || !m.Contacts[1].Near(Vector{1, 1}, 1e-9) {
		t.Errorf("Unexpected contacts %v", m.Contacts)
	}

	// Same pair the other way around
	m = collide(b, a)
	if m.Count != 2 || !m.Normal.Near(Vector{0, -1}, 1e-12) || !near(m.Penetration, 0.1, 1e-9) {
		t.Errorf("Unexpected reversed manifold %s", spew.Sdump(m.Count, m.Normal, m.Penetration))
	}

	b.SetPosition(Vector{0, 2.5})
	if m := collide(a, b); m.Count != 0 {
		t.Errorf("Expected separated boxes not to collide, got %d contacts", m.Count)
	}
}

func TestCollisionPolygonCorner(t *testing.T) {
	a := NewBody(0, NewBox(1, 1), Vector{})
	b := NewBody(1, NewBox(1, 1), Vector{2, 2})

	if m := collide(a, b); m.Count != 0 {
		t.Errorf("Expected corner touch to give no contact, got %s", spew.Sdump(m))
	}

	b.SetPosition(Vector{1.99, 1.99})
	m := collide(a, b)
	if m.Count < 0 || m.Count > 2 || m.Normal.IsNaN() || m.Penetration < 0 {
		t.Errorf("Bad corner manifold %s", spew.Sdump(m.Count, m.Normal, m.Penetration))
	}
	for i := 0; i < m.Count; i++ {
		if m.Contacts[i].IsNaN() {
			t.Errorf("NaN contact %d", i)
		}
	}
}

func TestCollisionClip(t *testing.T) {
	face := [2]Vector{{2, 1}, {-2, 1}}

	if sp := Clip(Vector{-1, 0}, 1, &face); sp != 2 {
		t.Fatalf("Expected 2 points, got %d", sp)
	}
	if !face[0].Equal(Vector{2, 1}) || !face[1].Near(Vector{-1, 1}, 1e-12) {
		t.Errorf("Unexpected clipped face %v", face)
	}

	face = [2]Vector{{2, 1}, {3, 1}}
	if sp := Clip(Vector{1, 0}, 1, &face); sp != 0 {
		t.Errorf("Expected both points clipped, got %d", sp)
	}
}

func TestCollisionAxisLeastPenetration(t *testing.T) {
	a := NewBody(0, NewBox(2, 1), Vector{})
	b := NewBody(1, NewBox(1, 1), Vector{0, 1.9})

	d, i := FindAxisLeastPenetration(a, b)
	if !near(d, -0.1, 1e-9) || i != 2 {
		t.Errorf("Expected face 2 at -0.1, got face %d at %v", i, d)
	}

	face := FindIncidentFace(b, a, 0)
	if !face[0].Equal(Vector{2, 1}) || !face[1].Equal(Vector{-2, 1}) {
		t.Errorf("Expected the top face of a, got %v", face)
	}
}
