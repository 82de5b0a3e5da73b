package collectors

import (
	"context"
	"fmt"
	"sync"

	"github.com/venture-tools/plan-atlas/pkg/models/domain"
)

// Result is the union of everything a single collector can observe. Each
// collector fills only the slices its source knows about.
type Result struct {
	AccessPoints []domain.AccessPoint
	Devices      []domain.Device
	UPnPDevices  []domain.UPnPDevice
	Interfaces   []domain.Interface
}

// Collector probes one discovery source for a site.
type Collector interface {
	Source() string
	Collect(ctx context.Context) (*Result, error)
}

// Factory builds a collector bound to a site profile.
type Factory func(profile domain.SiteProfile) (Collector, error)

// Registry manages collector factories per discovery source.
type Registry interface {
	// Register adds a new source factory
	Register(source string, factory Factory) error
	// Create instantiates a collector for the source, bound to the profile
	Create(source string, profile domain.SiteProfile) (Collector, error)
	// ListSources returns the registered sources
	ListSources() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty collector registry.
func NewRegistry() Registry {
	return &registry{factories: make(map[string]Factory)}
}

// NewDefaultRegistry registers every collector this package ships.
func NewDefaultRegistry() (Registry, error) {
	r := NewRegistry()
	defaults := map[string]Factory{
		SourceWLAN:       NewWLANCollector,
		SourceNmap:       NewNmapCollector,
		SourceSSDP:       NewSSDPCollector,
		SourceInterfaces: NewInterfaceCollector,
	}
	for source, factory := range defaults {
		if err := r.Register(source, factory); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *registry) Register(source string, factory Factory) error {
	if source == "" {
		return fmt.Errorf("source name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[source]; exists {
		return fmt.Errorf("source %q is already registered", source)
	}

	r.factories[source] = factory
	return nil
}

func (r *registry) Create(source string, profile domain.SiteProfile) (Collector, error) {
	r.mu.RLock()
	factory, exists := r.factories[source]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("source %q is not registered", source)
	}

	return factory(profile)
}

func (r *registry) ListSources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sources := make([]string, 0, len(r.factories))
	for source := range r.factories {
		sources = append(sources, source)
	}
	return sources
}
