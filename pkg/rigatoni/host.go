package rigatoni

import "sync"

// ScreenHost owns the visible navigation stack: an ordered sequence of
// screens plus at most one modally presented screen. The engine mutates it
// only through this interface, one operation at a time, from its
// serialization domain (or from the HostRunner if one is configured).
type ScreenHost interface {
	// Push appends a screen to the top of the stack.
	Push(screen Screen, animated bool)

	// Present shows a screen modally over the stack.
	Present(screen Screen, animated bool, config PresentConfig)

	// DismissPresented removes the presented screen, if any.
	DismissPresented(animated bool)

	// RemoveAll removes every screen in the stack matching the predicate,
	// preserving the relative order of the remaining screens.
	RemoveAll(match func(Screen) bool)

	// CurrentStack returns a snapshot of the stack, bottom to top.
	CurrentStack() []Screen

	// TopScreen returns the top of the stack, or false if the stack is empty.
	TopScreen() (Screen, bool)
}

// StackHost is an in-memory ScreenHost. It is the host used throughout the
// tests, and works as-is for applications whose screens need no UI-thread
// affinity; hosts wrapping a real window system implement ScreenHost
// themselves and pair the engine with a HostRunner.
//
// All methods are safe for concurrent use, and snapshots are consistent:
// a reader never observes a half-applied mutation.
type StackHost struct {
	mu        sync.RWMutex
	screens   []Screen
	presented Screen
	hasModal  bool
}

// NewStackHost creates an empty stack host.
func NewStackHost() *StackHost {
	return &StackHost{
		screens: make([]Screen, 0),
	}
}

// Push appends a screen to the top of the stack. StackHost has no animation
// machinery; the flag is accepted to satisfy ScreenHost.
func (h *StackHost) Push(screen Screen, animated bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.screens = append(h.screens, screen)
}

// Present shows a screen modally. Presenting while another screen is already
// presented replaces it; the host holds at most one modal.
func (h *StackHost) Present(screen Screen, animated bool, config PresentConfig) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.presented = screen
	h.hasModal = true
}

// DismissPresented removes the presented screen. No-op when nothing is
// presented.
func (h *StackHost) DismissPresented(animated bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.presented = nil
	h.hasModal = false
}

// RemoveAll removes every screen matching the predicate, in place,
// preserving the relative order of the remaining screens.
func (h *StackHost) RemoveAll(match func(Screen) bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	kept := h.screens[:0]
	for _, screen := range h.screens {
		if !match(screen) {
			kept = append(kept, screen)
		}
	}
	for i := len(kept); i < len(h.screens); i++ {
		h.screens[i] = nil
	}
	h.screens = kept
}

// CurrentStack returns a copy of the stack, bottom to top.
func (h *StackHost) CurrentStack() []Screen {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Screen, len(h.screens))
	copy(out, h.screens)
	return out
}

// TopScreen returns the top of the stack, or false if the stack is empty.
func (h *StackHost) TopScreen() (Screen, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.screens) == 0 {
		return nil, false
	}
	return h.screens[len(h.screens)-1], true
}

// PresentedScreen returns the modally presented screen, or false if none.
func (h *StackHost) PresentedScreen() (Screen, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if !h.hasModal {
		return nil, false
	}
	return h.presented, true
}

// Len returns the number of screens on the stack, excluding any presented
// modal.
func (h *StackHost) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.screens)
}
