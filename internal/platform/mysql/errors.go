package mysql

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/phrazzld/camiones-api/internal/store"
)

// MySQL error numbers this layer cares about. The full catalogue lives in
// the server documentation; anything else is carried through verbatim in
// the PersistenceError code field.
const (
	// duplicateEntryCode is the MySQL error number for unique key violations.
	duplicateEntryCode = 1062

	// noSuchTableCode is the MySQL error number for a missing target table.
	noSuchTableCode = 1146
)

// MapError maps a database error to an appropriate store error.
// Row-absence becomes the not-found sentinel; everything else becomes a
// PersistenceError carrying the driver's message and diagnostic code, so
// driver fault types never leak past this layer.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrTruckNotFound, err)
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return &store.PersistenceError{
			Op:      op,
			Message: mysqlErr.Message,
			Code:    mysqlErr.Number,
			Err:     err,
		}
	}

	// Connectivity faults and anything else the driver surfaces without
	// a server error number.
	return &store.PersistenceError{
		Op:      op,
		Message: err.Error(),
		Err:     err,
	}
}

// IsDuplicateEntry checks if the given error is a MySQL unique key violation.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == duplicateEntryCode
}

// IsNoSuchTable checks if the given error reports a missing target table,
// which in this service points at a deployment problem rather than bad input.
func IsNoSuchTable(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == noSuchTableCode
}
