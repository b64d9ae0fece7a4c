package lookups

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"projecttracker/app/database"
)

func TestLookupSoftDelete(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	name := fmt.Sprintf("test-unit-%d", time.Now().UnixNano())
	l := &Lookup{Name: name, IsActive: true}
	if err := createLookup(db, tableUnits, l); err != nil {
		t.Fatalf("create: %v", err)
	}
	defer db.Exec(`DELETE FROM units WHERE id = $1`, l.ID)

	if err := deleteLookup(db, tableUnits, l.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// Soft-deleted rows drop out of the listing.
	all, err := getAllLookups(db, tableUnits)
	if err != nil {
		t.Fatalf("getAll: %v", err)
	}
	for _, got := range all {
		if got.ID == l.ID {
			t.Errorf("deleted lookup %s still listed", l.ID)
		}
	}

	// But stay resolvable by id for historical references.
	got, err := getLookupByID(db, tableUnits, l.ID)
	if err != nil {
		t.Fatalf("getByID: %v", err)
	}
	if got.IsActive {
		t.Error("is_active = true after delete")
	}
}

func TestDeleteLookupMissingRow(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	err := deleteLookup(db, tablePaymentMethods, "00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateLookupPatch(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	name := fmt.Sprintf("test-pm-%d", time.Now().UnixNano())
	code := "tst"
	l := &Lookup{Name: name, Code: &code, IsActive: true}
	if err := createLookup(db, tablePaymentMethods, l); err != nil {
		t.Fatalf("create: %v", err)
	}
	defer db.Exec(`DELETE FROM payment_methods WHERE id = $1`, l.ID)

	// Null clears the optional code; untouched keys keep their values.
	patch, err := database.ParsePatch([]byte(`{"code":null}`))
	if err != nil {
		t.Fatalf("parse patch: %v", err)
	}
	got, err := updateLookup(db, tablePaymentMethods, l.ID, patch)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Code != nil {
		t.Errorf("code = %q, want cleared", *got.Code)
	}
	if got.Name != name {
		t.Errorf("name = %q, want %q", got.Name, name)
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
