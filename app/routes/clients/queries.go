package clients

import (
	"database/sql"

	"projecttracker/app/database"
	"projecttracker/app/models"
)

func GetAllClients(db *sql.DB) ([]*models.Client, error) {
	query := `SELECT id, name, contact_person, phone, email, address, notes, is_active, created_at, updated_at
			  FROM clients
			  ORDER BY name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	clients := []*models.Client{}
	for rows.Next() {
		cl := &models.Client{}
		err := rows.Scan(&cl.ID, &cl.Name, &cl.ContactPerson, &cl.Phone, &cl.Email,
			&cl.Address, &cl.Notes, &cl.IsActive, &cl.CreatedAt, &cl.UpdatedAt)
		if err != nil {
			return nil, err
		}
		clients = append(clients, cl)
	}
	return clients, rows.Err()
}

func GetClientByID(db *sql.DB, id string) (*models.Client, error) {
	query := `SELECT id, name, contact_person, phone, email, address, notes, is_active, created_at, updated_at
			  FROM clients WHERE id = $1`

	cl := &models.Client{}
	err := db.QueryRow(query, id).Scan(&cl.ID, &cl.Name, &cl.ContactPerson, &cl.Phone,
		&cl.Email, &cl.Address, &cl.Notes, &cl.IsActive, &cl.CreatedAt, &cl.UpdatedAt)
	if err != nil {
		return nil, database.Classify(err)
	}
	return cl, nil
}

func CreateClient(db *sql.DB, cl *models.Client) error {
	if cl.Name == "" {
		return database.NewValidationError("name", "is required")
	}

	query := `INSERT INTO clients (name, contact_person, phone, email, address, notes, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, cl.Name, cl.ContactPerson, cl.Phone, cl.Email, cl.Address, cl.Notes, cl.IsActive).
		Scan(&cl.ID, &cl.CreatedAt, &cl.UpdatedAt)
	return database.Classify(err)
}

func UpdateClient(db *sql.DB, id string, patch database.Patch) (*models.Client, error) {
	cl, err := GetClientByID(db, id)
	if err != nil {
		return nil, err
	}
	if err := applyClientPatch(cl, patch); err != nil {
		return nil, err
	}

	query := `UPDATE clients
			  SET name = $1, contact_person = $2, phone = $3, email = $4, address = $5,
				  notes = $6, is_active = $7, updated_at = NOW()
			  WHERE id = $8
			  RETURNING updated_at`

	err = db.QueryRow(query, cl.Name, cl.ContactPerson, cl.Phone, cl.Email, cl.Address,
		cl.Notes, cl.IsActive, id).Scan(&cl.UpdatedAt)
	if err != nil {
		return nil, database.Classify(err)
	}
	return cl, nil
}

func applyClientPatch(cl *models.Client, patch database.Patch) error {
	for key := range patch {
		var err error
		switch key {
		case "name":
			cl.Name, err = patch.RequireString("name")
			if err == nil && cl.Name == "" {
				err = database.NewValidationError("name", "is required")
			}
		case "contact_person":
			cl.ContactPerson, err = patch.String("contact_person")
		case "phone":
			cl.Phone, err = patch.String("phone")
		case "email":
			cl.Email, err = patch.String("email")
		case "address":
			cl.Address, err = patch.String("address")
		case "notes":
			cl.Notes, err = patch.String("notes")
		case "is_active":
			var v *bool
			v, err = patch.Bool("is_active")
			if err == nil && v != nil {
				cl.IsActive = *v
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

// DeleteClient hard-deletes a client; projects that reference it keep
// running with their client_id nulled by the FK policy.
func DeleteClient(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM clients WHERE id = $1`, id)
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
