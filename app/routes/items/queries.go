package items

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"projecttracker/app/database"
	"projecttracker/app/models"
)

const itemColumns = `i.id, i.name, i.unit_id, i.project_id, i.budget, i.sort_order, i.is_active,
			  i.created_at, i.updated_at, u.id, u.name, u.code, p.id, p.name`

func scanItem(scanner interface{ Scan(...interface{}) error }) (*models.ProjectItem, error) {
	item := &models.ProjectItem{}
	var unitID, unitName, unitCode, projectID, projectName sql.NullString
	err := scanner.Scan(
		&item.ID, &item.Name, &item.UnitID, &item.ProjectID, &item.Budget, &item.SortOrder,
		&item.IsActive, &item.CreatedAt, &item.UpdatedAt,
		&unitID, &unitName, &unitCode, &projectID, &projectName,
	)
	if err != nil {
		return nil, err
	}

	if unitID.Valid {
		item.Unit = &models.Unit{ID: unitID.String, Name: unitName.String, IsActive: true}
		if unitCode.Valid {
			item.Unit.Code = &unitCode.String
		}
	}
	if projectID.Valid {
		item.Project = &models.Project{ID: projectID.String, Name: projectName.String}
	}
	return item, nil
}

// GetAllItems lists active items, optionally restricted to one project.
// Items with a nil project are library items and are always included.
func GetAllItems(db *sql.DB, projectID string) ([]*models.ProjectItem, error) {
	query := `SELECT ` + itemColumns + `
			  FROM project_items i
			  LEFT JOIN units u ON i.unit_id = u.id
			  LEFT JOIN projects p ON i.project_id = p.id
			  WHERE i.is_active = true
			  AND ($1 = '' OR i.project_id IS NULL OR i.project_id::text = $1)
			  ORDER BY i.sort_order ASC, i.name ASC`

	rows, err := db.Query(query, projectID)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	itemList := []*models.ProjectItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		itemList = append(itemList, item)
	}
	return itemList, rows.Err()
}

// GetItemByID returns the item regardless of its active flag, so
// soft-deleted items remain resolvable from historical expenses.
func GetItemByID(db *sql.DB, id string) (*models.ProjectItem, error) {
	query := `SELECT ` + itemColumns + `
			  FROM project_items i
			  LEFT JOIN units u ON i.unit_id = u.id
			  LEFT JOIN projects p ON i.project_id = p.id
			  WHERE i.id = $1`

	item, err := scanItem(db.QueryRow(query, id))
	if err != nil {
		return nil, database.Classify(err)
	}
	return item, nil
}

func CreateItem(db *sql.DB, item *models.ProjectItem) error {
	if item.Name == "" {
		return database.NewValidationError("name", "is required")
	}

	query := `INSERT INTO project_items (name, unit_id, project_id, budget, sort_order, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, item.Name, item.UnitID, item.ProjectID, item.Budget,
		item.SortOrder, item.IsActive).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	return database.Classify(err)
}

func UpdateItem(db *sql.DB, id string, patch database.Patch) (*models.ProjectItem, error) {
	item, err := GetItemByID(db, id)
	if err != nil {
		return nil, err
	}
	if err := applyItemPatch(item, patch); err != nil {
		return nil, err
	}

	query := `UPDATE project_items
			  SET name = $1, unit_id = $2, project_id = $3, budget = $4, sort_order = $5,
				  is_active = $6, updated_at = NOW()
			  WHERE id = $7
			  RETURNING updated_at`

	err = db.QueryRow(query, item.Name, item.UnitID, item.ProjectID, item.Budget,
		item.SortOrder, item.IsActive, id).Scan(&item.UpdatedAt)
	if err != nil {
		return nil, database.Classify(err)
	}
	return GetItemByID(db, id)
}

func applyItemPatch(item *models.ProjectItem, patch database.Patch) error {
	for key := range patch {
		var err error
		switch key {
		case "name":
			item.Name, err = patch.RequireString("name")
			if err == nil && item.Name == "" {
				err = database.NewValidationError("name", "is required")
			}
		case "unit_id":
			item.UnitID, err = patch.String("unit_id")
		case "project_id":
			item.ProjectID, err = patch.String("project_id")
		case "budget":
			var d *decimal.Decimal
			d, err = patch.Decimal("budget")
			if err == nil {
				if d == nil {
					item.Budget = decimal.NullDecimal{}
				} else {
					item.Budget = decimal.NullDecimal{Decimal: *d, Valid: true}
				}
			}
		case "sort_order":
			var v *int
			v, err = patch.Int("sort_order")
			if err == nil && v != nil {
				item.SortOrder = *v
			}
		case "is_active":
			var v *bool
			v, err = patch.Bool("is_active")
			if err == nil && v != nil {
				item.IsActive = *v
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

// DeleteItem soft-deletes: the row stays for historical expenses, it just
// stops appearing in listings.
func DeleteItem(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE project_items SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
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
