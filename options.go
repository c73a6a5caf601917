package viz

import "image/color"

// Option configures a Viewer during creation.
// Use functional options to customize Viewer behavior.
//
// Example:
//
//	// Default headless viewer
//	viewer, err := viz.NewViewer()
//
//	// Windowed viewer on a named backend
//	viewer, err := viz.NewViewer(
//	    viz.WithTitle("demo"),
//	    viz.WithSize(800, 600),
//	    viz.WithBackendName("ebitengine"),
//	)
type Option func(*viewerOptions)

// viewerOptions holds optional configuration for Viewer creation.
type viewerOptions struct {
	title          string
	width, height  int
	background     color.RGBA
	backgroundName string
	provider       Provider
	backendName    string
	useDefault     bool
}

// defaultViewerOptions returns the default viewer configuration:
// 600x600, black background, headless.
func defaultViewerOptions() viewerOptions {
	return viewerOptions{
		title:      "viz",
		width:      600,
		height:     600,
		background: color.RGBA{A: 0xff},
	}
}

// WithTitle sets the canvas title.
func WithTitle(title string) Option {
	return func(o *viewerOptions) {
		o.title = title
	}
}

// WithSize sets the canvas size in pixels.
func WithSize(width, height int) Option {
	return func(o *viewerOptions) {
		o.width, o.height = width, height
	}
}

// WithBackground sets the canvas background color.
func WithBackground(background color.RGBA) Option {
	return func(o *viewerOptions) {
		o.background = background
	}
}

// WithBackgroundName sets the canvas background to a named color
// ("white", "black", "slategray", ...).
func WithBackgroundName(name string) Option {
	return func(o *viewerOptions) {
		o.backgroundName = name
	}
}

// WithProvider attaches the viewer to an explicit backend provider
// (dependency injection). The provider is initialized by NewViewer.
func WithProvider(p Provider) Option {
	return func(o *viewerOptions) {
		o.provider = p
	}
}

// WithBackendName attaches the viewer to the registered provider with
// the given name. The provider's package must be imported so its init
// function has registered it:
//
//	import _ "github.com/gogpu/viz/backend/software"
func WithBackendName(name string) Option {
	return func(o *viewerOptions) {
		o.backendName = name
	}
}

// WithDefaultBackend attaches the viewer to the best registered provider
// in priority order (ebitengine before software).
func WithDefaultBackend() Option {
	return func(o *viewerOptions) {
		o.useDefault = true
	}
}
