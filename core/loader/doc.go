// Package loader provides the feature loading system for the HTTP API.
//
// Each feature implements the Feature interface and registers its routes when
// loaded:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps registration order and skips disabled features.
package loader
