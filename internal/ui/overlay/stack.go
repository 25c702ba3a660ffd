package overlay

import tea "github.com/charmbracelet/bubbletea"

// Stack holds the open overlays, topmost last. It is rarely deeper than
// one here (a confirm raised over the detail form is the exception), but
// input always goes to the top.
type Stack struct {
	overlays []Overlay
}

// NewStack returns an empty stack
func NewStack() *Stack {
	return &Stack{
		overlays: make([]Overlay, 0),
	}
}

// Push opens an overlay on top and starts it
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.overlays = append(s.overlays, o)
	return o.Init()
}

// Pop closes and returns the top overlay, nil when nothing is open
func (s *Stack) Pop() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}

	top := s.overlays[len(s.overlays)-1]
	s.overlays = s.overlays[:len(s.overlays)-1]
	return top
}

// Current returns the top overlay without closing it, nil when empty
func (s *Stack) Current() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}
	return s.overlays[len(s.overlays)-1]
}

// IsEmpty reports whether no overlay is open
func (s *Stack) IsEmpty() bool {
	return len(s.overlays) == 0
}

// Clear closes every open overlay
func (s *Stack) Clear() {
	s.overlays = make([]Overlay, 0)
}

// Update routes a message to the top overlay. A CloseOverlayMsg pops it
// instead of being forwarded.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	if s.IsEmpty() {
		return nil
	}

	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}

	current := s.Current()
	newModel, cmd := current.Update(msg)

	// Overlays with value receivers return a fresh copy
	if len(s.overlays) > 0 {
		if newOverlay, ok := newModel.(Overlay); ok {
			s.overlays[len(s.overlays)-1] = newOverlay
		}
	}

	return cmd
}
