package window

import (
	"fmt"
	"sort"
	"sync"

	"floatdock/internal/overlay"
)

// Role names a managed window
type Role string

const (
	RoleMain    Role = "main"
	RoleLogin   Role = "login"
	RoleOverlay Role = "overlay"
	RoleAbout   Role = "about"
)

// Registry holds the application's managed windows by role. Command handlers
// are given the registry explicitly instead of looking windows up globally.
type Registry struct {
	mu      sync.RWMutex
	windows map[Role]overlay.Window
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{windows: make(map[Role]overlay.Window)}
}

// Set registers w under role, replacing any previous window
func (r *Registry) Set(role Role, w overlay.Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[role] = w
}

// Get returns the window registered under role
func (r *Registry) Get(role Role) (overlay.Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.windows[role]
	return w, ok
}

// Delete forgets the window registered under role
func (r *Registry) Delete(role Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.windows, role)
}

// Roles returns the registered roles in sorted order
func (r *Registry) Roles() []Role {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roles := make([]Role, 0, len(r.windows))
	for role := range r.windows {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// ShowAndFocus shows the window registered under role and gives it focus
func (r *Registry) ShowAndFocus(role Role) error {
	w, ok := r.Get(role)
	if !ok {
		return fmt.Errorf("no %s window", role)
	}
	if err := w.Show(); err != nil {
		return fmt.Errorf("show %s window: %w", role, err)
	}
	if err := w.Focus(); err != nil {
		return fmt.Errorf("focus %s window: %w", role, err)
	}
	return nil
}

// WindowCreated tracks a new overlay window under RoleOverlay
func (r *Registry) WindowCreated(w overlay.Window) {
	r.Set(RoleOverlay, w)
}

// WindowClosed drops the overlay entry if it still refers to w
func (r *Registry) WindowClosed(w overlay.Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.windows[RoleOverlay] == w {
		delete(r.windows, RoleOverlay)
	}
}

var _ overlay.Observer = (*Registry)(nil)
