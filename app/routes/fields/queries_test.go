package fields

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"projecttracker/app/database"
	"projecttracker/app/models"
)

func TestFieldNameUniquePerPageType(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	name := fmt.Sprintf("test-field-%d", time.Now().UnixNano())
	first := &models.DynamicField{
		Name: name, Label: "First", FieldType: models.FieldText, PageType: "expenses",
	}
	if err := CreateField(db, first); err != nil {
		t.Fatalf("create: %v", err)
	}
	defer DeleteField(db, first.ID)

	// Same name on the same page type is rejected.
	dup := &models.DynamicField{
		Name: name, Label: "Dup", FieldType: models.FieldText, PageType: "expenses",
	}
	err := CreateField(db, dup)
	var ce *database.ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("duplicate create err = %v, want ConstraintError", err)
	}

	// Same name on a different page type is fine.
	other := &models.DynamicField{
		Name: name, Label: "Other", FieldType: models.FieldText, PageType: "projects",
	}
	if err := CreateField(db, other); err != nil {
		t.Fatalf("create on other page type: %v", err)
	}
	DeleteField(db, other.ID)
}

func TestSetValueLastWriteWins(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	recordID := uuid.NewString()
	defer db.Exec(`DELETE FROM dynamic_field_values WHERE record_id = $1`, recordID)

	if err := SetValue(db, "expenses", recordID, "supplier", "first"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := SetValue(db, "expenses", recordID, "supplier", "second"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	values, err := GetValues(db, "expenses", recordID)
	if err != nil {
		t.Fatalf("get values: %v", err)
	}
	if values["supplier"] != "second" {
		t.Errorf("supplier = %q, want second", values["supplier"])
	}
	if len(values) != 1 {
		t.Errorf("value count = %d, want 1 after upsert", len(values))
	}
}

func TestDeleteFieldRemovesValues(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	name := fmt.Sprintf("test-field-%d", time.Now().UnixNano())
	f := &models.DynamicField{
		Name: name, Label: "Temp", FieldType: models.FieldText, PageType: "clients",
	}
	if err := CreateField(db, f); err != nil {
		t.Fatalf("create: %v", err)
	}

	recordID := uuid.NewString()
	if err := SetValue(db, "clients", recordID, name, "orphan"); err != nil {
		t.Fatalf("set value: %v", err)
	}

	if err := DeleteField(db, f.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := GetFieldByID(db, f.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("get after delete: %v, want ErrNotFound", err)
	}
	values, err := GetValues(db, "clients", recordID)
	if err != nil {
		t.Fatalf("get values: %v", err)
	}
	if _, ok := values[name]; ok {
		t.Error("stored value survived field deletion")
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
