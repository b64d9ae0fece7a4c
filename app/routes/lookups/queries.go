package lookups

import (
	"database/sql"
	"time"

	"projecttracker/app/database"
)

// Lookup is the shared row shape of the units and payment_methods
// tables. The two tables are structurally identical, so the queries are
// written once against a fixed table name.
type Lookup struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      *string   `json:"code,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	tableUnits          = "units"
	tablePaymentMethods = "payment_methods"
)

func getAllLookups(db *sql.DB, table string) ([]*Lookup, error) {
	query := `SELECT id, name, code, is_active, created_at, updated_at
			  FROM ` + table + `
			  WHERE is_active = true
			  ORDER BY name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	lookups := []*Lookup{}
	for rows.Next() {
		l := &Lookup{}
		err := rows.Scan(&l.ID, &l.Name, &l.Code, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}

// getLookupByID returns the row regardless of its active flag, so a
// soft-deleted lookup is still resolvable by id.
func getLookupByID(db *sql.DB, table, id string) (*Lookup, error) {
	query := `SELECT id, name, code, is_active, created_at, updated_at
			  FROM ` + table + ` WHERE id = $1`

	l := &Lookup{}
	err := db.QueryRow(query, id).Scan(&l.ID, &l.Name, &l.Code, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, database.Classify(err)
	}
	return l, nil
}

func createLookup(db *sql.DB, table string, l *Lookup) error {
	if l.Name == "" {
		return database.NewValidationError("name", "is required")
	}

	query := `INSERT INTO ` + table + ` (name, code, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, l.Name, l.Code, l.IsActive).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	return database.Classify(err)
}

func updateLookup(db *sql.DB, table, id string, patch database.Patch) (*Lookup, error) {
	l, err := getLookupByID(db, table, id)
	if err != nil {
		return nil, err
	}
	if err := applyLookupPatch(l, patch); err != nil {
		return nil, err
	}

	query := `UPDATE ` + table + `
			  SET name = $1, code = $2, is_active = $3, updated_at = NOW()
			  WHERE id = $4
			  RETURNING updated_at`

	err = db.QueryRow(query, l.Name, l.Code, l.IsActive, id).Scan(&l.UpdatedAt)
	if err != nil {
		return nil, database.Classify(err)
	}
	return l, nil
}

func applyLookupPatch(l *Lookup, patch database.Patch) error {
	for key := range patch {
		var err error
		switch key {
		case "name":
			l.Name, err = patch.RequireString("name")
			if err == nil && l.Name == "" {
				err = database.NewValidationError("name", "is required")
			}
		case "code":
			l.Code, err = patch.String("code")
		case "is_active":
			var v *bool
			v, err = patch.Bool("is_active")
			if err == nil && v != nil {
				l.IsActive = *v
			}
		default:
			err = database.UnknownKey(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// deleteLookup flips the active flag; lookup rows are never removed so
// historical expenses keep their references.
func deleteLookup(db *sql.DB, table, id string) error {
	result, err := db.Exec(`UPDATE `+table+` SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return database.Classify(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return database.ErrNotFound
	}
	return nil
}
