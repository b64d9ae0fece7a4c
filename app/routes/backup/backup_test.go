package backup

import (
	"database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"projecttracker/app/database"
)

func TestDocumentFormat(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Name:      "backup-20260301-120000",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Type:      "full",
		Tables: map[string]TableDump{
			"categories": {Count: 1, Data: []map[string]interface{}{{"id": "x", "name": "Materials"}}},
		},
		RecordsCount: 1,
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, key := range []string{"name", "timestamp", "size", "type", "recordsCount", "tables"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("document missing key %q", key)
		}
	}
	if decoded["type"] != "full" {
		t.Errorf("type = %v, want full", decoded["type"])
	}

	tables := decoded["tables"].(map[string]interface{})
	cat := tables["categories"].(map[string]interface{})
	if cat["count"].(float64) != 1 {
		t.Errorf("categories count = %v", cat["count"])
	}
}

func TestRestoreOrderParentsFirst(t *testing.T) {
	t.Parallel()

	pos := map[string]int{}
	for i, table := range backupTables {
		pos[table] = i
	}

	wantSet := []string{"projects", "expenses", "expected_expenses", "categories",
		"clients", "units", "payment_methods", "project_items"}
	if len(backupTables) != len(wantSet) {
		t.Fatalf("backup covers %d tables, want %d", len(backupTables), len(wantSet))
	}
	for _, table := range wantSet {
		if _, ok := pos[table]; !ok {
			t.Fatalf("table %q missing from backup set", table)
		}
	}

	// Referenced tables must restore before the tables referencing them.
	deps := map[string][]string{
		"projects":          {"clients"},
		"project_items":     {"units", "projects"},
		"expenses":          {"categories", "projects", "project_items", "units", "payment_methods"},
		"expected_expenses": {"categories", "projects", "project_items", "units", "payment_methods"},
	}
	for child, parents := range deps {
		for _, parent := range parents {
			if pos[parent] > pos[child] {
				t.Errorf("%s restores after %s", parent, child)
			}
		}
	}
}

func TestBackupRestoreIdempotent(t *testing.T) {
	db := openTestDB(t)
	defer db.Close()

	doc, err := CreateBackup(db)
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}

	before := map[string]int{}
	for _, table := range backupTables {
		before[table] = doc.Tables[table].Count
	}

	restored, err := Restore(db, doc)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored != doc.RecordsCount {
		t.Fatalf("restored %d rows, want %d", restored, doc.RecordsCount)
	}

	// Restoring a backup over its own source store must not change row
	// counts: every row upserts onto itself.
	after, err := CreateBackup(db)
	if err != nil {
		t.Fatalf("second backup: %v", err)
	}
	for _, table := range backupTables {
		if after.Tables[table].Count != before[table] {
			t.Errorf("%s count changed: %d -> %d", table, before[table], after.Tables[table].Count)
		}
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
