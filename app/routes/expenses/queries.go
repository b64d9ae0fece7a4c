package expenses

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"projecttracker/app/database"
	"projecttracker/app/models"
	"projecttracker/app/routes/projects"
)

const (
	tableExpenses         = "expenses"
	tableExpectedExpenses = "expected_expenses"
)

// ExpenseFilters represents filtering options for expense listings
type ExpenseFilters struct {
	CategoryID string
	ProjectID  string
	Status     string
	DateFrom   string
	DateTo     string
}

func checkTable(table string) error {
	if table != tableExpenses && table != tableExpectedExpenses {
		return fmt.Errorf("unknown expense table %q", table)
	}
	return nil
}

const expenseColumns = `e.id, e.category_id, e.project_id, e.project_item_id, e.unit_id, e.payment_method_id,
			  e.quantity, e.unit_price, e.amount, e.tax_rate, e.tax_amount, e.total_amount,
			  e.expense_date, e.description, e.details, e.notes, e.status, e.created_at, e.updated_at,
			  c.name, c.color, c.icon, p.name, i.name, u.name, u.code, pm.name, pm.code`

const expenseJoins = `
			  LEFT JOIN categories c ON e.category_id = c.id
			  LEFT JOIN projects p ON e.project_id = p.id
			  LEFT JOIN project_items i ON e.project_item_id = i.id
			  LEFT JOIN units u ON e.unit_id = u.id
			  LEFT JOIN payment_methods pm ON e.payment_method_id = pm.id`

func scanExpense(scanner interface{ Scan(...interface{}) error }) (*models.Expense, error) {
	e := &models.Expense{}
	var catName, catColor, catIcon sql.NullString
	var projectName, itemName sql.NullString
	var unitName, unitCode, methodName, methodCode sql.NullString

	err := scanner.Scan(
		&e.ID, &e.CategoryID, &e.ProjectID, &e.ProjectItemID, &e.UnitID, &e.PaymentMethodID,
		&e.Quantity, &e.UnitPrice, &e.Amount, &e.TaxRate, &e.TaxAmount, &e.TotalAmount,
		&e.ExpenseDate, &e.Description, &e.Details, &e.Notes, &e.Status, &e.CreatedAt, &e.UpdatedAt,
		&catName, &catColor, &catIcon, &projectName, &itemName,
		&unitName, &unitCode, &methodName, &methodCode,
	)
	if err != nil {
		return nil, err
	}

	if catName.Valid {
		e.Category = &models.Category{ID: e.CategoryID, Name: catName.String}
		if catColor.Valid {
			e.Category.Color = &catColor.String
		}
		if catIcon.Valid {
			e.Category.Icon = &catIcon.String
		}
	}
	if e.ProjectID != nil && projectName.Valid {
		e.Project = &models.Project{ID: *e.ProjectID, Name: projectName.String}
	}
	if e.ProjectItemID != nil && itemName.Valid {
		e.ProjectItem = &models.ProjectItem{ID: *e.ProjectItemID, Name: itemName.String}
	}
	if e.UnitID != nil && unitName.Valid {
		e.Unit = &models.Unit{ID: *e.UnitID, Name: unitName.String}
		if unitCode.Valid {
			e.Unit.Code = &unitCode.String
		}
	}
	if e.PaymentMethodID != nil && methodName.Valid {
		e.PaymentMethod = &models.PaymentMethod{ID: *e.PaymentMethodID, Name: methodName.String}
		if methodCode.Valid {
			e.PaymentMethod.Code = &methodCode.String
		}
	}
	return e, nil
}

// GetAllExpenses lists expenses newest first with every relation joined
// in, so callers never need follow-up queries.
func GetAllExpenses(db *sql.DB, table string, filters ExpenseFilters) ([]*models.Expense, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	query := `SELECT ` + expenseColumns + `
			  FROM ` + table + ` e` + expenseJoins + `
			  WHERE ($1 = '' OR e.category_id::text = $1)
			  AND ($2 = '' OR e.project_id::text = $2)
			  AND ($3 = '' OR e.status = $3)
			  AND ($4 = '' OR e.expense_date >= $4::date)
			  AND ($5 = '' OR e.expense_date <= $5::date)
			  ORDER BY e.expense_date DESC NULLS LAST, e.created_at DESC`

	rows, err := db.Query(query, filters.CategoryID, filters.ProjectID, filters.Status,
		filters.DateFrom, filters.DateTo)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func GetExpenseByID(db *sql.DB, table, id string) (*models.Expense, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	query := `SELECT ` + expenseColumns + `
			  FROM ` + table + ` e` + expenseJoins + `
			  WHERE e.id = $1`

	e, err := scanExpense(db.QueryRow(query, id))
	if err != nil {
		return nil, database.Classify(err)
	}
	return e, nil
}

func CreateExpense(db *sql.DB, table string, e *models.Expense) error {
	if err := checkTable(table); err != nil {
		return err
	}
	if e.CategoryID == "" {
		return database.NewValidationError("category_id", "is required")
	}
	if e.Status == "" {
		e.Status = models.ExpensePending
	}

	// Totals are always recomputed server-side.
	e.Recalculate()

	query := `INSERT INTO ` + table + ` (category_id, project_id, project_item_id, unit_id, payment_method_id,
			  quantity, unit_price, amount, tax_rate, tax_amount, total_amount,
			  expense_date, description, details, notes, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, e.CategoryID, e.ProjectID, e.ProjectItemID, e.UnitID, e.PaymentMethodID,
		e.Quantity, e.UnitPrice, e.Amount, e.TaxRate, e.TaxAmount, e.TotalAmount,
		e.ExpenseDate, e.Description, e.Details, e.Notes, e.Status).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return database.Classify(err)
	}

	if e.ProjectID != nil {
		if err := projects.RefreshProjectTotals(db, *e.ProjectID); err != nil {
			return err
		}
	}
	return nil
}

func UpdateExpense(db *sql.DB, table, id string, patch database.Patch) (*models.Expense, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	e, err := GetExpenseByID(db, table, id)
	if err != nil {
		return nil, err
	}
	oldProjectID := e.ProjectID

	if err := applyExpensePatch(e, patch); err != nil {
		return nil, err
	}
	e.Recalculate()

	query := `UPDATE ` + table + `
			  SET category_id = $1, project_id = $2, project_item_id = $3, unit_id = $4, payment_method_id = $5,
				  quantity = $6, unit_price = $7, amount = $8, tax_rate = $9, tax_amount = $10, total_amount = $11,
				  expense_date = $12, description = $13, details = $14, notes = $15, status = $16, updated_at = NOW()
			  WHERE id = $17
			  RETURNING updated_at`

	err = db.QueryRow(query, e.CategoryID, e.ProjectID, e.ProjectItemID, e.UnitID, e.PaymentMethodID,
		e.Quantity, e.UnitPrice, e.Amount, e.TaxRate, e.TaxAmount, e.TotalAmount,
		e.ExpenseDate, e.Description, e.Details, e.Notes, e.Status, id).Scan(&e.UpdatedAt)
	if err != nil {
		return nil, database.Classify(err)
	}

	// Refresh totals on both sides when the expense moved between projects.
	if oldProjectID != nil {
		if err := projects.RefreshProjectTotals(db, *oldProjectID); err != nil {
			return nil, err
		}
	}
	if e.ProjectID != nil && (oldProjectID == nil || *oldProjectID != *e.ProjectID) {
		if err := projects.RefreshProjectTotals(db, *e.ProjectID); err != nil {
			return nil, err
		}
	}

	return GetExpenseByID(db, table, id)
}

func applyExpensePatch(e *models.Expense, patch database.Patch) error {
	for key := range patch {
		var err error
		switch key {
		case "category_id":
			e.CategoryID, err = patch.RequireString("category_id")
		case "project_id":
			e.ProjectID, err = patch.String("project_id")
		case "project_item_id":
			e.ProjectItemID, err = patch.String("project_item_id")
		case "unit_id":
			e.UnitID, err = patch.String("unit_id")
		case "payment_method_id":
			e.PaymentMethodID, err = patch.String("payment_method_id")
		case "quantity":
			err = patchDecimal(patch, "quantity", &e.Quantity)
		case "unit_price":
			err = patchDecimal(patch, "unit_price", &e.UnitPrice)
		case "tax_rate":
			err = patchDecimal(patch, "tax_rate", &e.TaxRate)
		case "expense_date":
			var d *models.DateOnly
			d, err = patch.Date("expense_date")
			if err == nil {
				if d == nil {
					e.ExpenseDate = models.DateOnly{}
				} else {
					e.ExpenseDate = *d
				}
			}
		case "description":
			e.Description, err = patch.String("description")
		case "details":
			e.Details, err = patch.String("details")
		case "notes":
			e.Notes, err = patch.String("notes")
		case "status":
			var s string
			s, err = patch.RequireString("status")
			if err == nil {
				e.Status = models.ExpenseStatus(s)
			}
		case "amount", "tax_amount", "total_amount":
			// Derived columns; client-supplied values are ignored.
		default:
			err = database.UnknownKey(key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func patchDecimal(patch database.Patch, key string, dst *decimal.Decimal) error {
	d, err := patch.Decimal(key)
	if err != nil {
		return err
	}
	if d == nil {
		return database.NewValidationError(key, "must not be null")
	}
	*dst = *d
	return nil
}

// DeleteExpense hard-deletes the row; expenses are transactional records,
// not lookups.
func DeleteExpense(db *sql.DB, table, id string) error {
	if err := checkTable(table); err != nil {
		return err
	}

	var projectID *string
	err := db.QueryRow(`SELECT project_id FROM `+table+` WHERE id = $1`, id).Scan(&projectID)
	if err != nil {
		return database.Classify(err)
	}

	if _, err := db.Exec(`DELETE FROM `+table+` WHERE id = $1`, id); err != nil {
		return database.Classify(err)
	}

	if projectID != nil {
		return projects.RefreshProjectTotals(db, *projectID)
	}
	return nil
}
