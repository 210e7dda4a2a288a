package catalog

import (
	"catalog-manager/feature/catalog/assets"
	"catalog-manager/feature/catalog/store"
	"catalog-manager/feature/catalog/walker"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Catalog feature.
func NewFeature(cfg walker.Config, st store.Store, registrar assets.Registrar, logger *zap.Logger) *Feature {
	svc := NewService(cfg, st, registrar, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
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
