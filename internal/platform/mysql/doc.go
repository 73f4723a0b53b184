// Package mysql provides MySQL-specific implementations for the data
// storage interfaces defined in the internal/store package. It handles
// SQL statement construction, query execution, and the mapping between
// domain entities and database records.
package mysql
