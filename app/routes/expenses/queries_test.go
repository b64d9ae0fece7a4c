package expenses

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"projecttracker/app/database"
	"projecttracker/app/models"
	"projecttracker/app/routes/categories"
	"projecttracker/app/routes/projects"
)

func TestCreateExpenseRequiresCategory(t *testing.T) {
	// Validation runs before any storage access.
	e := &models.Expense{UnitPrice: decimal.NewFromInt(10)}
	err := CreateExpense(nil, tableExpenses, e)

	var ve *database.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if ve.Field != "category_id" {
		t.Errorf("field = %q, want category_id", ve.Field)
	}
}

func TestExpenseLifecycle(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	cat := testCategory(t, db)
	project := testProject(t, db)
	defer cleanupExpenses(db, cat.ID, project.ID)

	e := &models.Expense{
		CategoryID:  cat.ID,
		ProjectID:   &project.ID,
		Quantity:    decimal.NewFromInt(4),
		UnitPrice:   decimal.RequireFromString("12.50"),
		TaxRate:     decimal.RequireFromString("0.15"),
		ExpenseDate: models.NewDate(2026, time.March, 10),
	}
	if err := CreateExpense(db, tableExpenses, e); err != nil {
		t.Fatalf("create: %v", err)
	}
	if e.ID == "" {
		t.Fatal("create did not assign an id")
	}

	// Totals are recomputed server-side: 4 * 12.50 = 50, tax 7.5, total 57.5.
	if !e.TotalAmount.Equal(decimal.RequireFromString("57.5")) {
		t.Errorf("total_amount = %s, want 57.5", e.TotalAmount)
	}

	got, err := GetExpenseByID(db, tableExpenses, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Quantity.Equal(e.Quantity) || !got.TotalAmount.Equal(e.TotalAmount) {
		t.Errorf("round-trip mismatch: qty %s total %s", got.Quantity, got.TotalAmount)
	}
	if got.Status != models.ExpensePending {
		t.Errorf("status = %q, want pending default", got.Status)
	}
	if got.Category == nil || got.Category.Name != cat.Name {
		t.Errorf("category relation not joined in: %+v", got.Category)
	}

	// Denormalized project total tracks the expense.
	p, err := projects.GetProjectByID(db, project.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if !p.ActualTotal.Equal(decimal.RequireFromString("57.5")) {
		t.Errorf("project actual_total = %s, want 57.5", p.ActualTotal)
	}

	// Patching an input recomputes the derived columns.
	patch, err := database.ParsePatch([]byte(`{"quantity":"2","status":"approved"}`))
	if err != nil {
		t.Fatalf("parse patch: %v", err)
	}
	updated, err := UpdateExpense(db, tableExpenses, e.ID, patch)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.TotalAmount.Equal(decimal.RequireFromString("28.75")) {
		t.Errorf("updated total_amount = %s, want 28.75", updated.TotalAmount)
	}
	if updated.Status != models.ExpenseApproved {
		t.Errorf("updated status = %q, want approved", updated.Status)
	}

	p, err = projects.GetProjectByID(db, project.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if !p.ActualTotal.Equal(decimal.RequireFromString("28.75")) {
		t.Errorf("project actual_total after update = %s, want 28.75", p.ActualTotal)
	}

	if err := DeleteExpense(db, tableExpenses, e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := GetExpenseByID(db, tableExpenses, e.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("get after delete: %v, want ErrNotFound", err)
	}

	p, err = projects.GetProjectByID(db, project.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if !p.ActualTotal.IsZero() {
		t.Errorf("project actual_total after delete = %s, want 0", p.ActualTotal)
	}
}

func TestUpdateExpenseRejectsUnknownKey(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	cat := testCategory(t, db)
	defer cleanupExpenses(db, cat.ID, "")

	e := &models.Expense{CategoryID: cat.ID, Quantity: decimal.NewFromInt(1)}
	if err := CreateExpense(db, tableExpectedExpenses, e); err != nil {
		t.Fatalf("create: %v", err)
	}

	patch, _ := database.ParsePatch([]byte(`{"bogus":1}`))
	_, err := UpdateExpense(db, tableExpectedExpenses, e.ID, patch)

	var ve *database.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func testCategory(t *testing.T, db *sql.DB) *models.Category {
	t.Helper()
	cat := &models.Category{Name: fmt.Sprintf("test-cat-%d", time.Now().UnixNano())}
	if err := categories.CreateCategory(db, cat); err != nil {
		t.Fatalf("create category: %v", err)
	}
	return cat
}

func testProject(t *testing.T, db *sql.DB) *models.Project {
	t.Helper()
	p := &models.Project{Name: fmt.Sprintf("test-project-%d", time.Now().UnixNano())}
	if err := projects.CreateProject(db, p); err != nil {
		t.Fatalf("create project: %v", err)
	}
	return p
}

func cleanupExpenses(db *sql.DB, categoryID, projectID string) {
	db.Exec(`DELETE FROM expenses WHERE category_id = $1`, categoryID)
	db.Exec(`DELETE FROM expected_expenses WHERE category_id = $1`, categoryID)
	db.Exec(`DELETE FROM categories WHERE id = $1`, categoryID)
	if projectID != "" {
		db.Exec(`DELETE FROM projects WHERE id = $1`, projectID)
	}
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("test database unreachable: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	return db
}
