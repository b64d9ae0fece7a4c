package fields

import (
	"database/sql"
	"encoding/json"

	"projecttracker/app/database"
	"projecttracker/app/models"
)

func scanField(scanner interface{ Scan(...interface{}) error }) (*models.DynamicField, error) {
	f := &models.DynamicField{}
	var options []byte
	err := scanner.Scan(&f.ID, &f.Name, &f.Label, &f.FieldType, &f.PageType, &options,
		&f.Formula, &f.IsRequired, &f.DisplayOrder, &f.DefaultValue, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(options) > 0 {
		if err := json.Unmarshal(options, &f.Options); err != nil {
			return nil, err
		}
	}
	return f, nil
}

const fieldColumns = `id, name, label, field_type, page_type, options, formula,
			  is_required, display_order, default_value, created_at, updated_at`

// ListFields returns the field definitions for a page type in display
// order.
func ListFields(db *sql.DB, pageType string) ([]*models.DynamicField, error) {
	query := `SELECT ` + fieldColumns + `
			  FROM dynamic_fields
			  WHERE ($1 = '' OR page_type = $1)
			  ORDER BY display_order ASC, name ASC`

	rows, err := db.Query(query, pageType)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	fields := []*models.DynamicField{}
	for rows.Next() {
		f, err := scanField(rows)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, rows.Err()
}

func GetFieldByID(db *sql.DB, id string) (*models.DynamicField, error) {
	query := `SELECT ` + fieldColumns + ` FROM dynamic_fields WHERE id = $1`
	f, err := scanField(db.QueryRow(query, id))
	if err != nil {
		return nil, database.Classify(err)
	}
	return f, nil
}

// ValidateField enforces the definition rules: a recognized type, and
// non-empty options for select fields. Name uniqueness within the page
// type is left to the unique index.
func ValidateField(f *models.DynamicField) error {
	if f.Name == "" {
		return database.NewValidationError("name", "is required")
	}
	if f.Label == "" {
		return database.NewValidationError("label", "is required")
	}
	if f.PageType == "" {
		return database.NewValidationError("page_type", "is required")
	}
	if !models.ValidFieldType(f.FieldType) {
		return database.NewValidationError("field_type",
			"must be one of text, number, date, select, calculated, url, phone")
	}
	if f.FieldType == models.FieldSelect && len(f.Options) == 0 {
		return database.NewValidationError("options", "select fields need at least one option")
	}
	if f.FieldType == models.FieldCalculated && (f.Formula == nil || *f.Formula == "") {
		return database.NewValidationError("formula", "calculated fields need a formula")
	}
	return nil
}

func CreateField(db *sql.DB, f *models.DynamicField) error {
	if err := ValidateField(f); err != nil {
		return err
	}

	options, err := marshalOptions(f.Options)
	if err != nil {
		return err
	}

	query := `INSERT INTO dynamic_fields (name, label, field_type, page_type, options, formula,
			  is_required, display_order, default_value, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err = db.QueryRow(query, f.Name, f.Label, f.FieldType, f.PageType, options, f.Formula,
		f.IsRequired, f.DisplayOrder, f.DefaultValue).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	return database.Classify(err)
}

func UpdateField(db *sql.DB, id string, patch database.Patch) (*models.DynamicField, error) {
	f, err := GetFieldByID(db, id)
	if err != nil {
		return nil, err
	}
	if err := applyFieldPatch(f, patch); err != nil {
		return nil, err
	}
	if err := ValidateField(f); err != nil {
		return nil, err
	}

	options, err := marshalOptions(f.Options)
	if err != nil {
		return nil, err
	}

	query := `UPDATE dynamic_fields
			  SET name = $1, label = $2, field_type = $3, page_type = $4, options = $5, formula = $6,
				  is_required = $7, display_order = $8, default_value = $9, updated_at = NOW()
			  WHERE id = $10
			  RETURNING updated_at`

	err = db.QueryRow(query, f.Name, f.Label, f.FieldType, f.PageType, options, f.Formula,
		f.IsRequired, f.DisplayOrder, f.DefaultValue, id).Scan(&f.UpdatedAt)
	if err != nil {
		return nil, database.Classify(err)
	}
	return f, nil
}

func applyFieldPatch(f *models.DynamicField, patch database.Patch) error {
	for key := range patch {
		var err error
		switch key {
		case "name":
			f.Name, err = patch.RequireString("name")
		case "label":
			f.Label, err = patch.RequireString("label")
		case "field_type":
			var s string
			s, err = patch.RequireString("field_type")
			if err == nil {
				f.FieldType = models.FieldType(s)
			}
		case "page_type":
			f.PageType, err = patch.RequireString("page_type")
		case "options":
			f.Options, err = patch.StringSlice("options")
		case "formula":
			f.Formula, err = patch.String("formula")
		case "is_required":
			var v *bool
			v, err = patch.Bool("is_required")
			if err == nil && v != nil {
				f.IsRequired = *v
			}
		case "display_order":
			var v *int
			v, err = patch.Int("display_order")
			if err == nil && v != nil {
				f.DisplayOrder = *v
			}
		case "default_value":
			f.DefaultValue, err = patch.String("default_value")
		default:
			err = database.UnknownKey(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteField removes the definition and every stored value for it.
func DeleteField(db *sql.DB, id string) error {
	f, err := GetFieldByID(db, id)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return database.Classify(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM dynamic_field_values WHERE page_type = $1 AND field_name = $2`,
		f.PageType, f.Name); err != nil {
		return database.Classify(err)
	}
	if _, err := tx.Exec(`DELETE FROM dynamic_fields WHERE id = $1`, id); err != nil {
		return database.Classify(err)
	}
	return tx.Commit()
}

func marshalOptions(options []string) (interface{}, error) {
	if options == nil {
		return nil, nil
	}
	b, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetValues returns every stored value for a record as field name -> raw
// value.
func GetValues(db *sql.DB, pageType, recordID string) (map[string]string, error) {
	query := `SELECT field_name, value FROM dynamic_field_values
			  WHERE page_type = $1 AND record_id = $2`

	rows, err := db.Query(query, pageType, recordID)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	values := map[string]string{}
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		values[name] = value
	}
	return values, rows.Err()
}

// SetValue upserts one value. Last write wins; no type coercion happens
// at write time.
func SetValue(db *sql.DB, pageType, recordID, fieldName, value string) error {
	query := `INSERT INTO dynamic_field_values (record_id, page_type, field_name, value, updated_at)
			  VALUES ($1, $2, $3, $4, NOW())
			  ON CONFLICT (record_id, page_type, field_name)
			  DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	_, err := db.Exec(query, recordID, pageType, fieldName, value)
	return database.Classify(err)
}

// SetValues bulk-upserts values for one record in a single transaction.
func SetValues(db *sql.DB, pageType, recordID string, values map[string]string) error {
	tx, err := db.Begin()
	if err != nil {
		return database.Classify(err)
	}
	defer tx.Rollback()

	query := `INSERT INTO dynamic_field_values (record_id, page_type, field_name, value, updated_at)
			  VALUES ($1, $2, $3, $4, NOW())
			  ON CONFLICT (record_id, page_type, field_name)
			  DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	for name, value := range values {
		if _, err := tx.Exec(query, recordID, pageType, name, value); err != nil {
			return database.Classify(err)
		}
	}
	return tx.Commit()
}
