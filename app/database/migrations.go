package database

import (
	"database/sql"
	"fmt"
	"log"
)

type migration struct {
	version    int
	name       string
	statements []string
}

// Ordered, applied at most once each. Never edit an applied migration;
// append a new one instead.
var migrations = []migration{
	{
		version: 1,
		name:    "create core tables",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS categories (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(255) UNIQUE NOT NULL,
				code VARCHAR(50),
				color VARCHAR(20),
				icon VARCHAR(50),
				description TEXT,
				created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
				updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS clients (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(255) NOT NULL,
				contact_person VARCHAR(255),
				phone VARCHAR(20),
				email VARCHAR(255),
				address TEXT,
				notes TEXT,
				is_active BOOLEAN NOT NULL DEFAULT true,
				created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
				updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS units (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(255) NOT NULL,
				code VARCHAR(20),
				is_active BOOLEAN NOT NULL DEFAULT true,
				created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
				updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS payment_methods (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(255) NOT NULL,
				code VARCHAR(20),
				is_active BOOLEAN NOT NULL DEFAULT true,
				created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
				updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS projects (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(255) NOT NULL,
				code VARCHAR(50),
				client_id UUID REFERENCES clients(id) ON DELETE SET NULL,
				budget NUMERIC,
				expected_total NUMERIC NOT NULL DEFAULT 0,
				actual_total NUMERIC NOT NULL DEFAULT 0,
				status VARCHAR(20) NOT NULL DEFAULT 'active'
					CHECK (status IN ('active', 'completed', 'on_hold', 'cancelled')),
				notes TEXT,
				created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
				updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS project_items (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(255) NOT NULL,
				unit_id UUID REFERENCES units(id) ON DELETE SET NULL,
				project_id UUID REFERENCES projects(id) ON DELETE SET NULL,
				budget NUMERIC,
				sort_order INTEGER NOT NULL DEFAULT 0,
				is_active BOOLEAN NOT NULL DEFAULT true,
				created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
				updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			)`,
			`CREATE INDEX IF NOT EXISTS idx_projects_client_id ON projects(client_id)`,
			`CREATE INDEX IF NOT EXISTS idx_project_items_project_id ON project_items(project_id)`,
		},
	},
	{
		version: 2,
		name:    "create expense tables",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS expenses (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				category_id UUID NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
				project_id UUID REFERENCES projects(id) ON DELETE SET NULL,
				project_item_id UUID REFERENCES project_items(id) ON DELETE SET NULL,
				unit_id UUID REFERENCES units(id) ON DELETE SET NULL,
				payment_method_id UUID REFERENCES payment_methods(id) ON DELETE SET NULL,
				quantity NUMERIC NOT NULL DEFAULT 1,
				unit_price NUMERIC NOT NULL DEFAULT 0,
				amount NUMERIC NOT NULL DEFAULT 0,
				tax_rate NUMERIC NOT NULL DEFAULT 0,
				tax_amount NUMERIC NOT NULL DEFAULT 0,
				total_amount NUMERIC NOT NULL DEFAULT 0,
				expense_date DATE,
				description TEXT,
				details TEXT,
				notes TEXT,
				status VARCHAR(20) NOT NULL DEFAULT 'pending',
				created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
				updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			)`,
			`CREATE TABLE IF NOT EXISTS expected_expenses (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				category_id UUID NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
				project_id UUID REFERENCES projects(id) ON DELETE SET NULL,
				project_item_id UUID REFERENCES project_items(id) ON DELETE SET NULL,
				unit_id UUID REFERENCES units(id) ON DELETE SET NULL,
				payment_method_id UUID REFERENCES payment_methods(id) ON DELETE SET NULL,
				quantity NUMERIC NOT NULL DEFAULT 1,
				unit_price NUMERIC NOT NULL DEFAULT 0,
				amount NUMERIC NOT NULL DEFAULT 0,
				tax_rate NUMERIC NOT NULL DEFAULT 0,
				tax_amount NUMERIC NOT NULL DEFAULT 0,
				total_amount NUMERIC NOT NULL DEFAULT 0,
				expense_date DATE,
				description TEXT,
				details TEXT,
				notes TEXT,
				status VARCHAR(20) NOT NULL DEFAULT 'pending',
				created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
				updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
			)`,
			`CREATE INDEX IF NOT EXISTS idx_expenses_category_id ON expenses(category_id)`,
			`CREATE INDEX IF NOT EXISTS idx_expenses_project_id ON expenses(project_id)`,
			`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(expense_date)`,
			`CREATE INDEX IF NOT EXISTS idx_expected_expenses_category_id ON expected_expenses(category_id)`,
			`CREATE INDEX IF NOT EXISTS idx_expected_expenses_project_id ON expected_expenses(project_id)`,
			`CREATE INDEX IF NOT EXISTS idx_expected_expenses_date ON expected_expenses(expense_date)`,
		},
	},
	{
		version: 3,
		name:    "create dynamic field tables",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS dynamic_fields (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				name VARCHAR(100) NOT NULL,
				label VARCHAR(255) NOT NULL,
				field_type VARCHAR(20) NOT NULL
					CHECK (field_type IN ('text', 'number', 'date', 'select', 'calculated', 'url', 'phone')),
				page_type VARCHAR(100) NOT NULL,
				options JSONB,
				formula TEXT,
				is_required BOOLEAN NOT NULL DEFAULT false,
				display_order INTEGER NOT NULL DEFAULT 0,
				default_value TEXT,
				created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
				updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
				UNIQUE (page_type, name)
			)`,
			`CREATE TABLE IF NOT EXISTS dynamic_field_values (
				record_id UUID NOT NULL,
				page_type VARCHAR(100) NOT NULL,
				field_name VARCHAR(100) NOT NULL,
				value TEXT NOT NULL DEFAULT '',
				updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
				UNIQUE (record_id, page_type, field_name)
			)`,
			`CREATE INDEX IF NOT EXISTS idx_dynamic_fields_page_type ON dynamic_fields(page_type)`,
			`CREATE INDEX IF NOT EXISTS idx_dynamic_field_values_record ON dynamic_field_values(record_id, page_type)`,
		},
	},
	{
		version: 4,
		name:    "seed default lookups",
		statements: []string{
			`INSERT INTO units (name, code) VALUES
				('Piece', 'pc'), ('Meter', 'm'), ('Hour', 'hr'), ('Day', 'day')
				ON CONFLICT DO NOTHING`,
			`INSERT INTO payment_methods (name, code) VALUES
				('Cash', 'cash'), ('Bank Transfer', 'transfer'), ('Card', 'card')
				ON CONFLICT DO NOTHING`,
		},
	},
}

// RunMigrations applies every pending migration in order, recording each
// in schema_migrations so a restart never re-applies one.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`)
	if err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		applied, err := migrationApplied(db, m.version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}
		if err := applyMigration(db, m); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		log.Printf("Applied migration %d: %s", m.version, m.name)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func migrationApplied(db *sql.DB, version int) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check migration %d: %w", version, err)
	}
	return exists, nil
}

func applyMigration(db *sql.DB, m migration) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range m.statements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.version, m.name); err != nil {
		return err
	}
	return tx.Commit()
}
