package overlay

import (
	"testing"

	"github.com/cueview/cueview/internal/cue"
)

// fakeClock is a settable playback position.
type fakeClock struct {
	now float64
}

func (c *fakeClock) CurrentTime() float64 { return c.now }

// fakeNode records its children and styles.
type fakeNode struct {
	text     string
	styles   map[string]string
	children []*fakeNode
}

func newFakeNode() *fakeNode {
	return &fakeNode{styles: map[string]string{}}
}

func (n *fakeNode) AppendChild(child Node) {
	n.children = append(n.children, child.(*fakeNode))
}

func (n *fakeNode) RemoveChild(child Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (n *fakeNode) SetText(text string) { n.text = text }

func (n *fakeNode) SetStyle(property, value string) { n.styles[property] = value }

type fakeSurface struct {
	root *fakeNode
}

func newFakeSurface() *fakeSurface { return &fakeSurface{root: newFakeNode()} }

func (s *fakeSurface) Root() Node { return s.root }

func (s *fakeSurface) NewNode() Node { return newFakeNode() }

// newTestOverlay builds an overlay without starting its ticker so tests
// can drive ticks by hand.
func newTestOverlay(clk *fakeClock, surface *fakeSurface) *Overlay {
	return newOverlay(clk, surface, nil)
}

func (s *fakeSurface) container() *fakeNode {
	if len(s.root.children) == 0 {
		return nil
	}
	return s.root.children[0]
}

func TestTickShowsAndHidesCues(t *testing.T) {
	clk := &fakeClock{}
	surface := newFakeSurface()
	o := newTestOverlay(clk, surface)

	a := cue.New(1, 3, "first")
	b := cue.New(2, 4, "second")
	o.Append([]*cue.Cue{a, b})

	container := surface.container()
	if container == nil {
		t.Fatal("overlay did not attach a container to the surface root")
	}

	clk.now = 1.5
	o.tick()
	if len(container.children) != 1 || container.children[0].text != "first" {
		t.Fatalf("at t=1.5: expected one node for %q", "first")
	}

	clk.now = 2.5
	o.tick()
	if len(container.children) != 2 {
		t.Fatalf("at t=2.5: expected two nodes, got %d", len(container.children))
	}

	clk.now = 3.5
	o.tick()
	if len(container.children) != 1 || container.children[0].text != "second" {
		t.Fatalf("at t=3.5: expected only %q to remain", "second")
	}

	clk.now = 5
	o.tick()
	if len(container.children) != 0 {
		t.Fatalf("at t=5: expected empty overlay, got %d nodes", len(container.children))
	}
}

func TestTickAppliesStyles(t *testing.T) {
	clk := &fakeClock{now: 1}
	surface := newFakeSurface()
	o := newTestOverlay(clk, surface)

	c := cue.New(0, 2, "styled")
	c.Color = "#ff0000"
	c.DisplayAlign = cue.DisplayAlignAfter
	o.Append([]*cue.Cue{c})
	o.tick()

	container := surface.container()
	if container.styles["justify-content"] != "flex-end" {
		t.Errorf("container justify-content=%q", container.styles["justify-content"])
	}
	node := container.children[0]
	if node.styles["color"] != "#ff0000" {
		t.Errorf("node color=%q", node.styles["color"])
	}
}

func TestAtMostOneNodePerCue(t *testing.T) {
	clk := &fakeClock{now: 1}
	surface := newFakeSurface()
	o := newTestOverlay(clk, surface)

	o.Append([]*cue.Cue{cue.New(0, 10, "x")})
	o.tick()
	o.tick()
	o.tick()

	if n := len(surface.container().children); n != 1 {
		t.Fatalf("repeated ticks created %d nodes for one cue", n)
	}
}

func TestRemoveReleasesShownNode(t *testing.T) {
	clk := &fakeClock{now: 5}
	surface := newFakeSurface()
	o := newTestOverlay(clk, surface)

	o.Append([]*cue.Cue{cue.New(4, 6, "doomed"), cue.New(0, 20, "kept")})
	o.tick()
	if n := len(surface.container().children); n != 2 {
		t.Fatalf("expected 2 shown cues, got %d", n)
	}

	if ok := o.Remove(3, 7); !ok {
		t.Fatal("Remove returned false on a live overlay")
	}

	children := surface.container().children
	if len(children) != 1 || children[0].text != "kept" {
		t.Fatal("removed cue left a node on the surface")
	}
	if len(o.shown) != 1 {
		t.Fatalf("active map has %d entries, want 1", len(o.shown))
	}
}

func TestRemoveBoundaryCueStaysShown(t *testing.T) {
	clk := &fakeClock{now: 7}
	surface := newFakeSurface()
	o := newTestOverlay(clk, surface)

	o.Append([]*cue.Cue{cue.New(5, 10, "boundary")})
	o.tick()

	// exact interval is not strictly enclosing, nothing is removed
	if ok := o.Remove(5, 10); !ok {
		t.Fatal("Remove returned false on a live overlay")
	}
	if n := len(surface.container().children); n != 1 {
		t.Fatalf("boundary cue was removed, %d nodes left", n)
	}
}

func TestVisibilityIsAFlagOnly(t *testing.T) {
	clk := &fakeClock{now: 1}
	surface := newFakeSurface()
	o := newTestOverlay(clk, surface)

	if !o.IsTextVisible() {
		t.Fatal("overlay must start visible")
	}

	o.Append([]*cue.Cue{cue.New(0, 10, "x")})
	o.tick()

	o.SetTextVisibility(false)
	if o.IsTextVisible() {
		t.Error("visibility flag not cleared")
	}
	if n := len(surface.container().children); n != 1 {
		t.Errorf("hiding text changed the node tree: %d nodes", n)
	}

	o.SetTextVisibility(true)
	if !o.IsTextVisible() {
		t.Error("visibility flag not restored")
	}
}

func TestDestroyFinality(t *testing.T) {
	clk := &fakeClock{now: 1}
	surface := newFakeSurface()
	o := newTestOverlay(clk, surface)

	o.Append([]*cue.Cue{cue.New(0, 10, "x")})
	o.tick()
	o.Destroy()

	if len(surface.root.children) != 0 {
		t.Error("container still attached to the surface root after destroy")
	}
	if o.Remove(0, 100) {
		t.Error("Remove must report false after destroy")
	}
	if o.timeline.Len() != 0 {
		t.Error("timeline not cleared on destroy")
	}

	// a tick already queued when destroy ran must be a no-op
	clk.now = 2
	o.tick()
	if len(o.shown) != 0 {
		t.Error("tick after destroy mutated the active set")
	}

	o.Destroy() // second call is a guarded no-op
}

func TestAppendAfterDestroyIgnored(t *testing.T) {
	clk := &fakeClock{}
	surface := newFakeSurface()
	o := newTestOverlay(clk, surface)

	o.Destroy()
	o.Append([]*cue.Cue{cue.New(0, 1, "late")})
	if o.timeline.Len() != 0 {
		t.Error("append after destroy reached the timeline")
	}
}

func TestNewStartsTicker(t *testing.T) {
	clk := &fakeClock{now: 1}
	surface := newFakeSurface()

	o := New(clk, surface, nil)
	defer o.Destroy()

	if surface.container() == nil {
		t.Fatal("constructor did not attach the container")
	}
}
