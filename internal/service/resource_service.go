package service

import (
	"context"
	"time"

	"weup-connect/internal/domain"
	"weup-connect/internal/store"

	"go.uber.org/zap"
)

// ResourceSource read side of the resource directory. Satisfied by
// catalog.Catalog; an interface so the engine and tests can substitute
// failing or mutable sources.
type ResourceSource interface {
	Resources(ctx context.Context, category string) ([]domain.Resource, error)
}

// ResourceService exposes the resource directory and the best-effort
// access-analytics side channel.
type ResourceService struct {
	source ResourceSource
	events store.EventLog
	stream string
	logger *zap.Logger
}

func NewResourceService(source ResourceSource, events store.EventLog, stream string, logger *zap.Logger) *ResourceService {
	return &ResourceService{source: source, events: events, stream: stream, logger: logger}
}

// Resources returns the resources for a category; unknown categories yield an
// empty list.
func (s *ResourceService) Resources(ctx context.Context, category string) ([]domain.Resource, error) {
	return s.source.Resources(ctx, category)
}

// TrackAccess appends a resource-access event to the analytics log.
// Strictly best-effort: a failing event store must never break the primary
// user action (placing a call, opening a map), so errors are logged and
// swallowed here.
func (s *ResourceService) TrackAccess(ctx context.Context, userID, resourceID, resourceName, category string) {
	err := s.events.Append(ctx, s.stream, map[string]interface{}{
		"resource_id":   resourceID,
		"resource_name": resourceName,
		"category":      category,
		"user_id":       userID,
		"timestamp":     time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("Failed to track resource access",
			zap.String("resource_id", resourceID),
			zap.String("category", category),
			zap.Error(err),
		)
	}
}
