package projects

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"projecttracker/app/database"
	"projecttracker/app/models"
)

// ProjectFilters represents filtering options for projects
type ProjectFilters struct {
	Status   string
	ClientID string
}

const projectColumns = `p.id, p.name, p.code, p.client_id, p.budget, p.expected_total, p.actual_total,
			  p.status, p.notes, p.created_at, p.updated_at, c.id, c.name, c.contact_person, c.phone, c.email`

func scanProject(scanner interface{ Scan(...interface{}) error }) (*models.Project, error) {
	p := &models.Project{}
	var clientID, clientName, contactPerson, phone, email sql.NullString
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Code, &p.ClientID, &p.Budget, &p.ExpectedTotal, &p.ActualTotal,
		&p.Status, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		&clientID, &clientName, &contactPerson, &phone, &email,
	)
	if err != nil {
		return nil, err
	}

	if clientID.Valid {
		p.Client = &models.Client{
			ID:   clientID.String,
			Name: clientName.String,
		}
		if contactPerson.Valid {
			p.Client.ContactPerson = &contactPerson.String
		}
		if phone.Valid {
			p.Client.Phone = &phone.String
		}
		if email.Valid {
			p.Client.Email = &email.String
		}
	}
	return p, nil
}

func GetAllProjects(db *sql.DB, filters ProjectFilters) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + `
			  FROM projects p
			  LEFT JOIN clients c ON p.client_id = c.id
			  WHERE ($1 = '' OR p.status = $1)
			  AND ($2 = '' OR p.client_id::text = $2)
			  ORDER BY p.created_at DESC`

	rows, err := db.Query(query, filters.Status, filters.ClientID)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func GetProjectByID(db *sql.DB, id string) (*models.Project, error) {
	query := `SELECT ` + projectColumns + `
			  FROM projects p
			  LEFT JOIN clients c ON p.client_id = c.id
			  WHERE p.id = $1`

	p, err := scanProject(db.QueryRow(query, id))
	if err != nil {
		return nil, database.Classify(err)
	}
	return p, nil
}

func CreateProject(db *sql.DB, p *models.Project) error {
	if p.Name == "" {
		return database.NewValidationError("name", "is required")
	}
	if p.Status == "" {
		p.Status = models.ProjectActive
	}
	if !models.ValidProjectStatus(p.Status) {
		return database.NewValidationError("status", "must be one of active, completed, on_hold, cancelled")
	}

	query := `INSERT INTO projects (name, code, client_id, budget, status, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, expected_total, actual_total, created_at, updated_at`

	err := db.QueryRow(query, p.Name, p.Code, p.ClientID, p.Budget, p.Status, p.Notes).
		Scan(&p.ID, &p.ExpectedTotal, &p.ActualTotal, &p.CreatedAt, &p.UpdatedAt)
	return database.Classify(err)
}

func UpdateProject(db *sql.DB, id string, patch database.Patch) (*models.Project, error) {
	p, err := GetProjectByID(db, id)
	if err != nil {
		return nil, err
	}
	if err := applyProjectPatch(p, patch); err != nil {
		return nil, err
	}

	query := `UPDATE projects
			  SET name = $1, code = $2, client_id = $3, budget = $4, status = $5, notes = $6, updated_at = NOW()
			  WHERE id = $7
			  RETURNING updated_at`

	err = db.QueryRow(query, p.Name, p.Code, p.ClientID, p.Budget, p.Status, p.Notes, id).
		Scan(&p.UpdatedAt)
	if err != nil {
		return nil, database.Classify(err)
	}
	return GetProjectByID(db, id)
}

func applyProjectPatch(p *models.Project, patch database.Patch) error {
	for key := range patch {
		var err error
		switch key {
		case "name":
			p.Name, err = patch.RequireString("name")
			if err == nil && p.Name == "" {
				err = database.NewValidationError("name", "is required")
			}
		case "code":
			p.Code, err = patch.String("code")
		case "client_id":
			p.ClientID, err = patch.String("client_id")
		case "budget":
			var d *decimal.Decimal
			d, err = patch.Decimal("budget")
			if err == nil {
				if d == nil {
					p.Budget = decimal.NullDecimal{}
				} else {
					p.Budget = decimal.NullDecimal{Decimal: *d, Valid: true}
				}
			}
		case "status":
			var s string
			s, err = patch.RequireString("status")
			if err == nil {
				p.Status = models.ProjectStatus(s)
				if !models.ValidProjectStatus(p.Status) {
					err = database.NewValidationError("status", "must be one of active, completed, on_hold, cancelled")
				}
			}
		case "notes":
			p.Notes, err = patch.String("notes")
		default:
			err = database.UnknownKey(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteProject hard-deletes a project. Expenses that referenced it keep
// their rows with the project reference nulled by the FK policy.
func DeleteProject(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM projects WHERE id = $1`, id)
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

// RefreshProjectTotals recomputes the denormalized expected/actual totals
// from the expense tables. Called by the expense layer after any write
// that touches a project reference.
func RefreshProjectTotals(db *sql.DB, projectID string) error {
	query := `UPDATE projects SET
			  actual_total = COALESCE((SELECT SUM(total_amount) FROM expenses WHERE project_id = $1), 0),
			  expected_total = COALESCE((SELECT SUM(total_amount) FROM expected_expenses WHERE project_id = $1), 0),
			  updated_at = NOW()
			  WHERE id = $1`

	_, err := db.Exec(query, projectID)
	return database.Classify(err)
}
