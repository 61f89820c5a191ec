package term

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/cueview/cueview/internal/overlay"
)

// Surface is a terminal-backed rendering surface. The overlay mutates it
// from its tick goroutine while the player goroutine snapshots frames, so
// one surface-wide mutex guards the whole node tree.
type Surface struct {
	mu   sync.Mutex
	root *Node
}

func NewSurface() *Surface {
	s := &Surface{}
	s.root = &Node{surface: s}
	return s
}

func (s *Surface) Root() overlay.Node {
	return s.root
}

func (s *Surface) NewNode() overlay.Node {
	return &Node{surface: s}
}

// Node is a styled box in the surface tree.
type Node struct {
	surface  *Surface
	text     string
	styles   map[string]string
	children []*Node
}

func (n *Node) AppendChild(child overlay.Node) {
	n.surface.mu.Lock()
	defer n.surface.mu.Unlock()
	n.children = append(n.children, child.(*Node))
}

func (n *Node) RemoveChild(child overlay.Node) {
	n.surface.mu.Lock()
	defer n.surface.mu.Unlock()
	for i, c := range n.children {
		if overlay.Node(c) == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (n *Node) SetText(text string) {
	n.surface.mu.Lock()
	defer n.surface.mu.Unlock()
	n.text = text
}

func (n *Node) SetStyle(property, value string) {
	n.surface.mu.Lock()
	defer n.surface.mu.Unlock()
	if n.styles == nil {
		n.styles = map[string]string{}
	}
	n.styles[property] = value
}

// Render draws every overlay container attached to the surface into a
// width x height frame.
func (s *Surface) Render(width, height int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var frames []string
	for _, container := range s.root.children {
		frames = append(frames, container.renderContainer(width, height))
	}
	if len(frames) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, "")
	}
	// containers stack; in practice there is exactly one
	return strings.Join(frames, "\n")
}

func (n *Node) renderContainer(width, height int) string {
	blockWidth := width
	if w, ok := percentValue(n.styles["width"]); ok {
		blockWidth = int(float64(width) * w / 100)
	}
	if blockWidth < 1 {
		blockWidth = 1
	}

	var lines []string
	for _, child := range n.children {
		lines = append(lines, child.renderCue(blockWidth))
	}
	content := strings.Join(lines, "\n")

	return lipgloss.Place(
		width, height,
		n.horizontalPosition(), n.verticalPosition(),
		content,
	)
}

// renderCue styles one cue's text from its mapped directives.
func (n *Node) renderCue(width int) string {
	style := lipgloss.NewStyle().Width(width)

	if v := n.styles["color"]; v != "" {
		style = style.Foreground(terminalColor(v))
	}
	if v := n.styles["background-color"]; v != "" {
		style = style.Background(terminalColor(v))
	}
	if v := n.styles["font-weight"]; v == "bold" || v == "bolder" {
		style = style.Bold(true)
	}
	if v := n.styles["font-style"]; v == "italic" || v == "oblique" {
		style = style.Italic(true)
	}
	if v := n.styles["text-decoration"]; v != "" {
		if strings.Contains(v, "underline") {
			style = style.Underline(true)
		}
		if strings.Contains(v, "line-through") {
			style = style.Strikethrough(true)
		}
	}
	switch n.styles["text-align"] {
	case "left", "start":
		style = style.Align(lipgloss.Left)
	case "right", "end":
		style = style.Align(lipgloss.Right)
	default:
		style = style.Align(lipgloss.Center)
	}

	return style.Render(n.text)
}

// horizontalPosition picks the placement from float/margin/inset
// directives: floats pin to an edge, auto margins center, a left inset
// becomes a fractional position.
func (n *Node) horizontalPosition() lipgloss.Position {
	switch n.styles["float"] {
	case "left":
		return lipgloss.Left
	case "right":
		return lipgloss.Right
	}
	if v, ok := percentValue(n.styles["left"]); ok {
		return clampPosition(v / 100)
	}
	if v, ok := percentValue(n.styles["right"]); ok {
		return clampPosition(1 - v/100)
	}
	return lipgloss.Center
}

// verticalPosition prefers an explicit inset over the flex alignment.
func (n *Node) verticalPosition() lipgloss.Position {
	if v, ok := percentValue(n.styles["top"]); ok {
		return clampPosition(v / 100)
	}
	if v, ok := percentValue(n.styles["bottom"]); ok {
		return clampPosition(1 - v/100)
	}
	if n.styles["justify-content"] == "flex-start" {
		return lipgloss.Top
	}
	return lipgloss.Bottom
}

func clampPosition(v float64) lipgloss.Position {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return lipgloss.Position(v)
}
