package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"

	"projecttracker/app/database"
)

// backupTables is the fixed table set, in restore order: parents before
// the expense tables that reference them.
var backupTables = []string{
	"categories",
	"clients",
	"units",
	"payment_methods",
	"projects",
	"project_items",
	"expenses",
	"expected_expenses",
}

// Document is the portable backup format.
type Document struct {
	Name         string                `json:"name"`
	Timestamp    time.Time             `json:"timestamp"`
	Size         int                   `json:"size"`
	Type         string                `json:"type"`
	RecordsCount int                   `json:"recordsCount"`
	Tables       map[string]TableDump `json:"tables"`
}

type TableDump struct {
	Count int                      `json:"count"`
	Data  []map[string]interface{} `json:"data"`
}

// CreateBackup serializes every table into one document.
func CreateBackup(db *sql.DB) (*Document, error) {
	doc := &Document{
		Timestamp: time.Now().UTC(),
		Type:      "full",
		Tables:    make(map[string]TableDump, len(backupTables)),
	}
	doc.Name = "backup-" + doc.Timestamp.Format("20060102-150405")

	for _, table := range backupTables {
		data, err := dumpTable(db, table)
		if err != nil {
			return nil, fmt.Errorf("dump %s: %w", table, err)
		}
		doc.Tables[table] = TableDump{Count: len(data), Data: data}
		doc.RecordsCount += len(data)
	}

	payload, err := json.Marshal(doc.Tables)
	if err != nil {
		return nil, err
	}
	doc.Size = len(payload)
	return doc, nil
}

func dumpTable(db *sql.DB, table string) ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT * FROM ` + pq.QuoteIdentifier(table))
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	data := []map[string]interface{}{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i])
		}
		data = append(data, row)
	}
	return data, rows.Err()
}

// normalizeValue converts driver types into JSON-friendly values.
func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return v
	}
}

// Restore upserts every row of the document back, table by table in
// parent-first order, inside one transaction.
func Restore(db *sql.DB, doc *Document) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, database.Classify(err)
	}
	defer tx.Rollback()

	restored := 0
	for _, table := range backupTables {
		dump, ok := doc.Tables[table]
		if !ok {
			continue
		}

		columns, err := tableColumns(tx, table)
		if err != nil {
			return 0, err
		}

		for _, row := range dump.Data {
			if err := upsertRow(tx, table, columns, row); err != nil {
				return 0, fmt.Errorf("restore %s: %w", table, err)
			}
			restored++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, database.Classify(err)
	}
	return restored, nil
}

// tableColumns returns the live column set so stale keys in an old
// backup are ignored instead of breaking the restore.
func tableColumns(tx *sql.Tx, table string) (map[string]bool, error) {
	rows, err := tx.Query(`SELECT column_name FROM information_schema.columns
			  WHERE table_schema = 'public' AND table_name = $1`, table)
	if err != nil {
		return nil, database.Classify(err)
	}
	defer rows.Close()

	columns := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns[name] = true
	}
	return columns, rows.Err()
}

func upsertRow(tx *sql.Tx, table string, liveColumns map[string]bool, row map[string]interface{}) error {
	if _, ok := row["id"]; !ok {
		return database.NewValidationError("id", "backup row has no id")
	}

	cols := make([]string, 0, len(row))
	for col := range row {
		if liveColumns[col] {
			cols = append(cols, col)
		}
	}
	// Stable order so the statement text is deterministic.
	sort.Strings(cols)

	quoted := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	updates := make([]string, 0, len(cols))
	args := make([]interface{}, len(cols))
	for i, col := range cols {
		quoted[i] = pq.QuoteIdentifier(col)
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row[col]
		if col != "id" {
			updates = append(updates, quoted[i]+" = EXCLUDED."+quoted[i])
		}
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (id) DO UPDATE SET %s`,
		pq.QuoteIdentifier(table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "))

	_, err := tx.Exec(query, args...)
	return database.Classify(err)
}
