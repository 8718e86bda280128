package core

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Interface defines a common interface for all services
type Interface interface {
	Start(ctx context.Context) error
	Stop()
}

// Registry manages all services
type Registry struct {
	services []Interface
	logger   *zap.Logger
}

// NewRegistry creates a new core registry
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		services: make([]Interface, 0),
		logger:   logger.Named("registry"),
	}
}

// Register adds a service to the registry
func (sr *Registry) Register(service Interface) {
	sr.services = append(sr.services, service)
}

// StartAll starts services in registration order and stops at the first failure
func (sr *Registry) StartAll(ctx context.Context) error {
	for _, service := range sr.services {
		name := serviceName(service)
		if err := service.Start(ctx); err != nil {
			return errors.Wrapf(err, "start %s", name)
		}
		sr.logger.Debug("service started", zap.String("service", name))
	}
	return nil
}

// StopAll stops all registered services
func (sr *Registry) StopAll() {
	// Stop in reverse order
	for i := len(sr.services) - 1; i >= 0; i-- {
		sr.services[i].Stop()
		sr.logger.Debug("service stopped", zap.String("service", serviceName(sr.services[i])))
	}
}

func serviceName(service Interface) string {
	return fmt.Sprintf("%T", service)
}
