package reconcileapi

import (
	"dataset-reconciler/core/history"
	"dataset-reconciler/core/profile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the reconciliation API feature.
func NewFeature(custom []profile.Profile, defaultProfile string, logger *zap.Logger, recorder *history.Recorder) *Feature {
	svc := NewService(custom, defaultProfile, logger, recorder)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "reconcile"
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
