package surface

import (
	"strings"
	"sync"

	"github.com/fchimpan/seg7/internal/display"
)

// Registry resolves container selectors such as "#display" to containers.
type Registry struct {
	mu         sync.RWMutex
	containers map[string]display.Container
}

func NewRegistry() *Registry {
	return &Registry{containers: map[string]display.Container{}}
}

func normalizeSelector(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "#")
}

// Register makes c reachable as selector. A nil c removes the entry.
func (r *Registry) Register(selector string, c display.Container) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := normalizeSelector(selector)
	if c == nil {
		delete(r.containers, key)
		return
	}
	r.containers[key] = c
}

// Lookup returns the container registered as selector or a
// *display.ContainerNotFoundError.
func (r *Registry) Lookup(selector string) (display.Container, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.containers[normalizeSelector(selector)]
	if !ok {
		return nil, &display.ContainerNotFoundError{Selector: selector}
	}
	return c, nil
}

// Mount resolves selector and builds a display in it.
func (r *Registry) Mount(selector string, cfg display.Config, opts ...display.Option) (*display.Display, error) {
	c, err := r.Lookup(selector)
	if err != nil {
		return nil, err
	}
	return display.New(c, cfg, opts...)
}
