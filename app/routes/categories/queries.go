package categories

import (
	"database/sql"

	"projecttracker/app/database"
	"projecttracker/app/models"
)

func GetAllCategories(db *sql.DB) ([]*models.Category, error) {
	query := `SELECT id, name, code, color, icon, description, created_at, updated_at
			  FROM categories
			  ORDER BY name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	categories := []*models.Category{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		cat := &models.Category{}
		err := rows.Scan(&cat.ID, &cat.Name, &cat.Code, &cat.Color, &cat.Icon,
			&cat.Description, &cat.CreatedAt, &cat.UpdatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func GetCategoryByID(db *sql.DB, id string) (*models.Category, error) {
	query := `SELECT id, name, code, color, icon, description, created_at, updated_at
			  FROM categories WHERE id = $1`

	cat := &models.Category{}
	err := db.QueryRow(query, id).Scan(&cat.ID, &cat.Name, &cat.Code, &cat.Color,
		&cat.Icon, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		return nil, database.Classify(err)
	}
	return cat, nil
}

func CreateCategory(db *sql.DB, cat *models.Category) error {
	if cat.Name == "" {
		return database.NewValidationError("name", "is required")
	}

	query := `INSERT INTO categories (name, code, color, icon, description, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, cat.Name, cat.Code, cat.Color, cat.Icon, cat.Description).
		Scan(&cat.ID, &cat.CreatedAt, &cat.UpdatedAt)
	return database.Classify(err)
}

func UpdateCategory(db *sql.DB, id string, patch database.Patch) (*models.Category, error) {
	cat, err := GetCategoryByID(db, id)
	if err != nil {
		return nil, err
	}
	if err := applyCategoryPatch(cat, patch); err != nil {
		return nil, err
	}

	query := `UPDATE categories
			  SET name = $1, code = $2, color = $3, icon = $4, description = $5, updated_at = NOW()
			  WHERE id = $6
			  RETURNING updated_at`

	err = db.QueryRow(query, cat.Name, cat.Code, cat.Color, cat.Icon, cat.Description, id).
		Scan(&cat.UpdatedAt)
	if err != nil {
		return nil, database.Classify(err)
	}
	return cat, nil
}

// applyCategoryPatch merges a partial update onto the current row. Absent
// keys are untouched; explicit nulls clear nullable columns.
func applyCategoryPatch(cat *models.Category, patch database.Patch) error {
	for key := range patch {
		var err error
		switch key {
		case "name":
			cat.Name, err = patch.RequireString("name")
			if err == nil && cat.Name == "" {
				err = database.NewValidationError("name", "is required")
			}
		case "code":
			cat.Code, err = patch.String("code")
		case "color":
			cat.Color, err = patch.String("color")
		case "icon":
			cat.Icon, err = patch.String("icon")
		case "description":
			cat.Description, err = patch.String("description")
		default:
			err = database.UnknownKey(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteCategory hard-deletes a category. Categories still referenced by
// expenses are protected by the FK restrict policy and surface as a
// constraint violation.
func DeleteCategory(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM categories WHERE id = $1`, id)
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
