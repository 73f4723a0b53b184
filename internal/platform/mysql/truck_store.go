package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/camiones-api/internal/domain"
	"github.com/phrazzld/camiones-api/internal/platform/logger"
	"github.com/phrazzld/camiones-api/internal/store"
)

// MySQLTruckStore implements the store.TruckStore interface using a MySQL
// database as the storage backend. It owns no state beyond the borrowed
// connection handle; every call is an independent, transaction-free unit
// of work.
type MySQLTruckStore struct {
	db      store.DBTX
	builder *QueryBuilder
	logger  *slog.Logger
}

// NewTruckStore creates a new MySQL implementation of the TruckStore
// interface. It accepts a database handle that should be initialized and
// managed by the caller. If logger is nil, a default logger will be used.
func NewTruckStore(db store.DBTX, builder *QueryBuilder, logger *slog.Logger) *MySQLTruckStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if builder == nil {
		panic("builder cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MySQLTruckStore{
		db:      db,
		builder: builder,
		logger:  logger.With(slog.String("component", "truck_store")),
	}
}

// Ensure MySQLTruckStore implements store.TruckStore interface
var _ store.TruckStore = (*MySQLTruckStore)(nil)

// List implements store.TruckStore.List
func (s *MySQLTruckStore) List(ctx context.Context) ([]domain.Truck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, params := s.builder.SelectAll()
	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		log.Error("failed to list trucks", slog.String("error", err.Error()))
		return nil, MapError("list", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	trucks := make([]domain.Truck, 0)
	for rows.Next() {
		var t domain.Truck
		if err := scanTruck(rows, &t); err != nil {
			log.Error("failed to scan truck row", slog.String("error", err.Error()))
			return nil, MapError("list", err)
		}
		trucks = append(trucks, t)
	}
	if err := rows.Err(); err != nil {
		log.Error("row iteration failed", slog.String("error", err.Error()))
		return nil, MapError("list", err)
	}

	log.Debug("trucks listed", slog.Int("count", len(trucks)))
	return trucks, nil
}

// GetByID implements store.TruckStore.GetByID
// Returns store.ErrTruckNotFound when no row matches the id.
func (s *MySQLTruckStore) GetByID(ctx context.Context, id int64) (*domain.Truck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, params := s.builder.SelectByID(id)

	var t domain.Truck
	err := scanTruck(s.db.QueryRowContext(ctx, query, params...), &t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("truck not found", slog.Int64("truck_id", id))
			return nil, store.ErrTruckNotFound
		}
		log.Error("failed to get truck by ID",
			slog.String("error", err.Error()),
			slog.Int64("truck_id", id))
		return nil, MapError("get", err)
	}

	return &t, nil
}

// Create implements store.TruckStore.Create
// A successful insert must affect exactly one row; any other count signals
// a storage-layer anomaly and surfaces as a PersistenceError.
func (s *MySQLTruckStore) Create(ctx context.Context, fields domain.TruckFields) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, params := s.builder.Insert(fields)
	result, err := s.db.ExecContext(ctx, query, params...)
	if err != nil {
		log.Error("failed to create truck", slog.String("error", err.Error()))
		return 0, MapError("create", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, MapError("create", err)
	}
	if affected != 1 {
		log.Error("unexpected affected row count on insert",
			slog.Int64("affected", affected))
		return 0, &store.PersistenceError{
			Op:      "create",
			Message: fmt.Sprintf("insert affected %d rows, expected 1", affected),
		}
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, MapError("create", err)
	}

	log.Info("truck created", slog.Int64("truck_id", id))
	return id, nil
}

// UpdatePartial implements store.TruckStore.UpdatePartial
// Returns store.ErrNoFieldsProvided before touching the database when the
// field set is empty.
func (s *MySQLTruckStore) UpdatePartial(ctx context.Context, id int64, fields []domain.FieldValue) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, params, err := s.builder.PartialUpdate(id, fields)
	if err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, query, params...)
	if err != nil {
		log.Error("failed to update truck",
			slog.String("error", err.Error()),
			slog.Int64("truck_id", id))
		return 0, MapError("update", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, MapError("update", err)
	}

	log.Debug("partial update executed",
		slog.Int64("truck_id", id),
		slog.Int("fields", len(fields)),
		slog.Int64("affected", affected))
	return affected, nil
}

// UpdateFull implements store.TruckStore.UpdateFull
func (s *MySQLTruckStore) UpdateFull(ctx context.Context, id int64, fields domain.TruckFields) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, params := s.builder.FullUpdate(id, fields)
	result, err := s.db.ExecContext(ctx, query, params...)
	if err != nil {
		log.Error("failed to replace truck",
			slog.String("error", err.Error()),
			slog.Int64("truck_id", id))
		return 0, MapError("replace", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, MapError("replace", err)
	}

	log.Debug("full update executed",
		slog.Int64("truck_id", id),
		slog.Int64("affected", affected))
	return affected, nil
}

// Delete implements store.TruckStore.Delete
// Zero affected rows is not an error here; the service layer decides how
// to report it.
func (s *MySQLTruckStore) Delete(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, params := s.builder.Delete(id)
	result, err := s.db.ExecContext(ctx, query, params...)
	if err != nil {
		log.Error("failed to delete truck",
			slog.String("error", err.Error()),
			slog.Int64("truck_id", id))
		return 0, MapError("delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, MapError("delete", err)
	}

	log.Debug("delete executed",
		slog.Int64("truck_id", id),
		slog.Int64("affected", affected))
	return affected, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTruck reads one row in the column order produced by the builder's
// SELECT statements: id first, then the eight mutable columns.
func scanTruck(row rowScanner, t *domain.Truck) error {
	return row.Scan(
		&t.ID,
		&t.Color,
		&t.Matricula,
		&t.Conductor,
		&t.YearOperative,
		&t.Marca,
		&t.Modelo,
		&t.Dimension,
		&t.Tipo,
	)
}
