package mysql

import (
	"fmt"
	"strings"

	"github.com/phrazzld/camiones-api/internal/domain"
	"github.com/phrazzld/camiones-api/internal/store"
)

// QueryBuilder constructs parameterized SQL statements for the truck table.
//
// The table name is the single trusted identifier substituted into SQL text.
// It comes from configuration, is validated at startup, and is fixed for the
// lifetime of the builder. Every other piece of request-derived data flows
// through `?` bind parameters; the API shape makes it impossible to pass a
// request string as anything but a parameter value. Column names are drawn
// exclusively from the fixed allowlist in the domain package.
type QueryBuilder struct {
	table string
}

// NewQueryBuilder creates a builder bound to the given table name.
func NewQueryBuilder(table string) *QueryBuilder {
	return &QueryBuilder{table: table}
}

// allowedColumns is the fixed set of columns a partial update may touch.
var allowedColumns = func() map[string]bool {
	m := make(map[string]bool, len(domain.TruckColumns))
	for _, c := range domain.TruckColumns {
		m[c] = true
	}
	return m
}()

// SelectAll builds the statement listing every row.
func (b *QueryBuilder) SelectAll() (string, []any) {
	return fmt.Sprintf("SELECT id, %s FROM %s", strings.Join(domain.TruckColumns, ", "), b.table), nil
}

// SelectByID builds the primary-key lookup; the id is bound, never interpolated.
func (b *QueryBuilder) SelectByID(id int64) (string, []any) {
	query := fmt.Sprintf("SELECT id, %s FROM %s WHERE id = ?", strings.Join(domain.TruckColumns, ", "), b.table)
	return query, []any{id}
}

// Insert builds the INSERT naming exactly the eight fixed columns in
// canonical order, with all values bound positionally.
func (b *QueryBuilder) Insert(fields domain.TruckFields) (string, []any) {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(domain.TruckColumns)), ", ")
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		b.table,
		strings.Join(domain.TruckColumns, ", "),
		placeholders,
	)
	return query, fields.Values()
}

// PartialUpdate builds an UPDATE listing only the columns present in the
// input, in the order they were supplied, with the id parameter bound last.
// Columns outside the fixed allowlist are silently ignored.
// Returns store.ErrNoFieldsProvided when no allowed field remains; this is
// checked before any SQL text is assembled.
func (b *QueryBuilder) PartialUpdate(id int64, fields []domain.FieldValue) (string, []any, error) {
	assignments := make([]string, 0, len(fields))
	params := make([]any, 0, len(fields)+1)
	for _, f := range fields {
		if !allowedColumns[f.Column] {
			continue
		}
		assignments = append(assignments, f.Column+" = ?")
		params = append(params, f.Value)
	}
	if len(assignments) == 0 {
		return "", nil, store.ErrNoFieldsProvided
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", b.table, strings.Join(assignments, ", "))
	params = append(params, id)
	return query, params, nil
}

// FullUpdate builds the fixed-shape UPDATE covering all eight columns,
// same contract as Insert but with a WHERE id = ? tail.
func (b *QueryBuilder) FullUpdate(id int64, fields domain.TruckFields) (string, []any) {
	assignments := make([]string, 0, len(domain.TruckColumns))
	for _, c := range domain.TruckColumns {
		assignments = append(assignments, c+" = ?")
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", b.table, strings.Join(assignments, ", "))
	params := append(fields.Values(), id)
	return query, params
}

// Delete builds the primary-key delete; the id is bound, never interpolated.
func (b *QueryBuilder) Delete(id int64) (string, []any) {
	return fmt.Sprintf("DELETE FROM %s WHERE id = ?", b.table), []any{id}
}
