package domain

import "fmt"

// Column names of the truck table, excluding the server-generated id.
// This is the fixed allowlist for partial updates: field names outside it
// never reach SQL text.
const (
	ColumnColor         = "color"
	ColumnMatricula     = "matricula"
	ColumnConductor     = "conductor"
	ColumnYearOperative = "yearOperative"
	ColumnMarca         = "marca"
	ColumnModelo        = "modelo"
	ColumnDimension     = "dimension"
	ColumnTipo          = "tipo"
)

// TruckColumns lists the eight mutable columns in their canonical order.
var TruckColumns = []string{
	ColumnColor,
	ColumnMatricula,
	ColumnConductor,
	ColumnYearOperative,
	ColumnMarca,
	ColumnModelo,
	ColumnDimension,
	ColumnTipo,
}

// Truck is the persisted fleet entity. The ID is assigned by the database
// on insert and never mutated afterwards.
type Truck struct {
	ID            int64  `json:"id"`
	Color         string `json:"color"`
	Matricula     string `json:"matricula"`
	Conductor     string `json:"conductor"`
	YearOperative int    `json:"yearOperative"`
	Marca         string `json:"marca"`
	Modelo        string `json:"modelo"`
	Dimension     string `json:"dimension"`
	Tipo          string `json:"tipo"`
}

// TruckFields is the complete set of mutable truck attributes, used by the
// all-or-nothing operations (create and full replace).
type TruckFields struct {
	Color         string
	Matricula     string
	Conductor     string
	YearOperative int
	Marca         string
	Modelo        string
	Dimension     string
	Tipo          string
}

// Validate checks that every mandatory field is present. Empty strings and
// a zero year count as absent.
func (f TruckFields) Validate() error {
	missing := ""
	switch {
	case f.Color == "":
		missing = ColumnColor
	case f.Matricula == "":
		missing = ColumnMatricula
	case f.Conductor == "":
		missing = ColumnConductor
	case f.YearOperative == 0:
		missing = ColumnYearOperative
	case f.Marca == "":
		missing = ColumnMarca
	case f.Modelo == "":
		missing = ColumnModelo
	case f.Dimension == "":
		missing = ColumnDimension
	case f.Tipo == "":
		missing = ColumnTipo
	}
	if missing != "" {
		return fmt.Errorf("%w: missing %s", ErrIncompleteFields, missing)
	}
	return nil
}

// Values returns the field values in canonical column order, matching
// TruckColumns.
func (f TruckFields) Values() []any {
	return []any{
		f.Color,
		f.Matricula,
		f.Conductor,
		f.YearOperative,
		f.Marca,
		f.Modelo,
		f.Dimension,
		f.Tipo,
	}
}

// FieldValue is one column/value pair of a partial update. The order of a
// []FieldValue slice is preserved all the way into the generated SET clause.
type FieldValue struct {
	Column string
	Value  any
}

// TruckUpdate is the optional field set submitted with a partial update.
// A zero value means the field is absent: the empty string and the unset
// field are deliberately indistinguishable, so an empty string can never
// overwrite a stored value.
type TruckUpdate struct {
	Color         string
	Matricula     string
	Conductor     string
	YearOperative int
	Marca         string
	Modelo        string
	Dimension     string
	Tipo          string
}

// Fields returns the present fields as ordered column/value pairs. The
// result may be empty; callers must treat an empty set as a validation
// failure before any storage interaction.
func (u TruckUpdate) Fields() []FieldValue {
	fields := make([]FieldValue, 0, len(TruckColumns))
	if u.Color != "" {
		fields = append(fields, FieldValue{ColumnColor, u.Color})
	}
	if u.Matricula != "" {
		fields = append(fields, FieldValue{ColumnMatricula, u.Matricula})
	}
	if u.Conductor != "" {
		fields = append(fields, FieldValue{ColumnConductor, u.Conductor})
	}
	if u.YearOperative != 0 {
		fields = append(fields, FieldValue{ColumnYearOperative, u.YearOperative})
	}
	if u.Marca != "" {
		fields = append(fields, FieldValue{ColumnMarca, u.Marca})
	}
	if u.Modelo != "" {
		fields = append(fields, FieldValue{ColumnModelo, u.Modelo})
	}
	if u.Dimension != "" {
		fields = append(fields, FieldValue{ColumnDimension, u.Dimension})
	}
	if u.Tipo != "" {
		fields = append(fields, FieldValue{ColumnTipo, u.Tipo})
	}
	return fields
}
