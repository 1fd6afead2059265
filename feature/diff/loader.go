package diff

import (
	"ics-diff/core/reconcile"
	"ics-diff/core/report"
	"ics-diff/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the diff feature. store may be nil.
func NewFeature(loader *source.Loader, store *report.Store, cfg reconcile.Config, fileRefs bool, logger *zap.Logger) *Feature {
	svc := NewService(loader, store, cfg, fileRefs, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "diff"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
