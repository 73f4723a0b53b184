// Package truck implements the resource service for the truck entity.
// It orchestrates validation, the query construction in the storage layer,
// and the translation of storage outcomes into typed results. The service
// holds no long-lived state; every call is an independent unit of work.
package truck

import (
	"context"
	"log/slog"

	"github.com/phrazzld/camiones-api/internal/domain"
	"github.com/phrazzld/camiones-api/internal/platform/logger"
	"github.com/phrazzld/camiones-api/internal/store"
)

// Service provides CRUD operations over the truck entity.
type Service struct {
	trucks store.TruckStore
	logger *slog.Logger
}

// NewService creates a truck service backed by the given store.
// If log is nil, a default logger will be used.
func NewService(trucks store.TruckStore, log *slog.Logger) *Service {
	if trucks == nil {
		panic("trucks store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		trucks: trucks,
		logger: log.With(slog.String("component", "truck_service")),
	}
}

// ListAll returns every truck. An empty result set is a distinguished
// outcome, not an error: callers get an empty slice and decide how to
// present it.
func (s *Service) ListAll(ctx context.Context) ([]domain.Truck, error) {
	return s.trucks.List(ctx)
}

// GetByID returns the truck with the given primary key.
// Returns store.ErrTruckNotFound when no row matches; absence is a normal
// outcome, never a panic or a zero-value entity.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Truck, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return s.trucks.GetByID(ctx, id)
}

// Create inserts a new truck. All eight fields are mandatory; validation
// fails fast with domain.ErrIncompleteFields before any store interaction.
// Returns the server-generated ID on success.
func (s *Service) Create(ctx context.Context, fields domain.TruckFields) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := fields.Validate(); err != nil {
		log.Debug("create rejected", slog.String("error", err.Error()))
		return 0, err
	}

	return s.trucks.Create(ctx, fields)
}

// PartialUpdate applies the present fields of the update to the truck with
// the given ID. The field set must be nonempty (store.ErrNoFieldsProvided
// otherwise, checked before any store call). Returns true when a row was
// affected; zero affected rows is the soft not-affected outcome, not an
// error.
func (s *Service) PartialUpdate(ctx context.Context, id int64, update domain.TruckUpdate) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if id <= 0 {
		return false, ErrInvalidID
	}

	fields := update.Fields()
	if len(fields) == 0 {
		log.Debug("partial update rejected: empty field set", slog.Int64("truck_id", id))
		return false, store.ErrNoFieldsProvided
	}

	affected, err := s.trucks.UpdatePartial(ctx, id, fields)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// FullReplace overwrites all eight mutable columns of the truck with the
// given ID. Mirrors Create's validation: every field is mandatory.
// Returns true when a row was affected.
func (s *Service) FullReplace(ctx context.Context, id int64, fields domain.TruckFields) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if id <= 0 {
		return false, ErrInvalidID
	}
	if err := fields.Validate(); err != nil {
		log.Debug("full replace rejected",
			slog.Int64("truck_id", id),
			slog.String("error", err.Error()))
		return false, err
	}

	affected, err := s.trucks.UpdateFull(ctx, id, fields)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Delete removes the truck with the given ID. Returns true when a row was
// deleted; zero affected rows is the soft not-affected outcome.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, ErrMissingID
	}

	affected, err := s.trucks.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
