package viz

import (
	"fmt"
	"sync"
)

// Provider creates and owns the backend adapters for front-end entities.
//
// A provider is the factory side of the binding layer: for every bindable
// entity type it produces an adapter satisfying that entity's backend
// protocol. Backend creation is deferred — adapters are created when an
// entity is attached, not when it is constructed, so the same model tree
// can run headless or be realized by any registered provider.
//
// Providers are registered by name via RegisterProvider, typically from
// an init function in their own package, and selected with OpenProvider
// or DefaultProvider.
type Provider interface {
	// Name returns the provider identifier (e.g. "software", "ebitengine").
	Name() string

	// Init initializes the provider. It must be called before any
	// adapter is created.
	Init() error

	// Close releases all provider resources. The provider and its
	// adapters should not be used after Close.
	Close()

	// NewNodeBackend creates the adapter mirroring a Node.
	NewNodeBackend(n *Node) (NodeBackend, error)

	// NewSceneBackend creates the adapter mirroring a Scene root.
	NewSceneBackend(s *Scene) (SceneBackend, error)

	// NewCameraBackend creates the adapter mirroring a Camera.
	NewCameraBackend(c *Camera) (CameraBackend, error)

	// NewViewBackend creates the adapter mirroring a View.
	NewViewBackend(v *View) (ViewBackend, error)

	// NewCanvasBackend creates the adapter mirroring a Canvas.
	NewCanvasBackend(c *Canvas) (CanvasBackend, error)
}

// ProviderFactory creates a new provider instance.
type ProviderFactory func() Provider

// registry holds registered providers.
var (
	registryMu sync.RWMutex
	providers  = make(map[string]ProviderFactory)
	// Priority order for default selection (first available wins).
	// The windowed provider is preferred; software is the fallback.
	providerPriority = []string{"ebitengine", "software"}
)

// RegisterProvider registers a provider factory with the given name.
// This is typically called from init() functions in provider packages.
// If a provider with the same name is already registered, it is replaced.
func RegisterProvider(name string, factory ProviderFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	providers[name] = factory
}

// UnregisterProvider removes a provider from the registry.
// This is useful for testing.
func UnregisterProvider(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(providers, name)
}

// Providers returns the names of all registered providers.
func Providers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	return names
}

// ProviderRegistered checks whether a provider with the given name is
// registered.
func ProviderRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := providers[name]
	return ok
}

// OpenProvider returns a new provider instance by name.
// It returns an error wrapping ErrProviderUnknown when no provider with
// that name is registered (its package may not have been imported).
func OpenProvider(name string) (Provider, error) {
	registryMu.RLock()
	factory, ok := providers[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (is its backend package imported?)", ErrProviderUnknown, name)
	}
	return factory(), nil
}

// DefaultProvider returns the best available provider based on priority
// order, falling back to any registered provider. It returns
// ErrNoProvider when the registry is empty.
func DefaultProvider() (Provider, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range providerPriority {
		if factory, ok := providers[name]; ok {
			if p := factory(); p != nil {
				return p, nil
			}
		}
	}

	// Fallback: first available.
	for _, factory := range providers {
		if p := factory(); p != nil {
			return p, nil
		}
	}

	return nil, ErrNoProvider
}
