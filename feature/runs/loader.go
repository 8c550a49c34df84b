package runs

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the runs feature around an existing service.
func NewFeature(svc *Service) *Feature {
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "runs"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load migrates the history tables when present and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	if repo := f.service.repo; repo != nil {
		if err := repo.Migrate(); err != nil {
			return err
		}
		if missing, err := repo.MissingColumns(); err == nil && len(missing) > 0 {
			f.service.logger.Warn("Run history schema is missing columns", zap.Strings("columns", missing))
		}
	}
	f.handler.RegisterRoutes(app)
	return nil
}
