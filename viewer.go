package viz

// Viewer is the convenience entry point: a canvas with a default view at
// cell (0, 0), optionally attached to a backend provider.
//
// A viewer without a provider is headless: the full model remains usable
// and Show is a no-op. Providers are supplied directly (WithProvider) or
// resolved from the registry by name (WithBackendName,
// WithDefaultBackend).
type Viewer struct {
	canvas   *Canvas
	view     *View
	provider Provider
}

// NewViewer creates a viewer from the given options.
//
// When a provider is configured it is initialized and the canvas (with
// its default view) is attached before NewViewer returns, so every later
// field mutation is mirrored onto the backend.
func NewViewer(opts ...Option) (*Viewer, error) {
	o := defaultViewerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	canvas := NewCanvas()
	if err := canvas.SetTitle(o.title); err != nil {
		return nil, err
	}
	if err := canvas.SetSize(o.width, o.height); err != nil {
		return nil, err
	}
	if err := canvas.SetBackground(o.background); err != nil {
		return nil, err
	}
	if o.backgroundName != "" {
		if err := canvas.SetBackgroundName(o.backgroundName); err != nil {
			return nil, err
		}
	}
	// The default view exists before attachment so headless and attached
	// viewers expose the same shape.
	view, err := canvas.View(0, 0)
	if err != nil {
		return nil, err
	}

	provider, err := resolveProvider(o)
	if err != nil {
		return nil, err
	}
	v := &Viewer{canvas: canvas, view: view, provider: provider}
	if provider != nil {
		if err := provider.Init(); err != nil {
			return nil, err
		}
		Logger().Info("viz: provider initialized", "provider", provider.Name())
		if err := canvas.Attach(provider); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func resolveProvider(o viewerOptions) (Provider, error) {
	switch {
	case o.provider != nil:
		return o.provider, nil
	case o.backendName != "":
		return OpenProvider(o.backendName)
	case o.useDefault:
		return DefaultProvider()
	default:
		return nil, nil
	}
}

// Canvas returns the viewer's canvas.
func (v *Viewer) Canvas() *Canvas { return v.canvas }

// Provider returns the attached provider, or nil for a headless viewer.
func (v *Viewer) Provider() Provider { return v.provider }

// View returns the view at the given cell, creating it on first access.
func (v *Viewer) View(row, col int) (*View, error) {
	return v.canvas.View(row, col)
}

// DefaultView returns the view at cell (0, 0), created by NewViewer.
func (v *Viewer) DefaultView() *View {
	return v.view
}

// Show makes the canvas visible. With a windowed provider this may block
// inside the provider's event loop until the canvas is closed.
func (v *Viewer) Show() error {
	return v.canvas.Show()
}

// Close closes the canvas and shuts the provider down.
func (v *Viewer) Close() error {
	err := v.canvas.Close()
	if v.provider != nil {
		v.provider.Close()
		Logger().Info("viz: provider closed", "provider", v.provider.Name())
	}
	return err
}
