// Package viz provides a declarative, backend-agnostic scene model for Go.
//
// # Overview
//
// viz separates "what the scene looks like" from "how it is drawn".
// Application code builds a tree of validated model objects (Node, Scene,
// Camera, View, Canvas) and mutates their fields through setters; a
// pluggable backend provider mirrors every committed change onto adapter
// objects that drive an actual drawing engine. Without a provider the same
// model is fully functional in headless mode.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/viz"
//
//	    _ "github.com/gogpu/viz/backend/software"
//	)
//
//	viewer, err := viz.NewViewer(
//	    viz.WithSize(600, 600),
//	    viz.WithBackendName("software"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	node := viz.NewNode("box")
//	node.SetOpacity(0.5)
//	viewer.DefaultView().Scene().AddChild(node)
//	viewer.Show()
//
// # Architecture
//
// The library is organized into:
//   - Model core: Model, FrontEnd, Node, Scene, Camera, View, Canvas
//   - Transform engine: Transform and the elementary matrix builders
//   - Providers: backend/software, backend/ebitengine, backend/recorder
//
// Backend providers register themselves on import and are selected by
// name through the provider registry, or injected directly with
// WithProvider.
//
// # Synchronization Model
//
// Every setter validates its value first; invalid values leave the field
// untouched. A valid value is committed to the model and then forwarded
// to the bound backend adapter. Backend failures propagate to the caller,
// but the committed model value is not rolled back.
//
// # Coordinate System
//
// Transforms are 4x4 homogeneous matrices in row-vector convention:
// coordinates are rows, mapping is v * M, and the translation components
// occupy the last row. Angles are in degrees.
package viz

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
