package storage

import (
	"database/sql"
	"fmt"
	"log"
)

// schemaDelta is one additive change to the clientes table: a catalog check
// paired with the statement that applies it, plus a backfill that always runs.
type schemaDelta struct {
	column   string
	apply    string
	backfill string
}

// Additive deltas in application order. Each one must stay safe to re-run:
// the catalog check guards the ALTER and the backfill is a plain idempotent
// UPDATE over NULL rows.
var clienteDeltas = []schemaDelta{
	{
		column:   "contactos",
		apply:    `ALTER TABLE clientes ADD COLUMN contactos JSONB DEFAULT '[]'`,
		backfill: `UPDATE clientes SET contactos = '[]' WHERE contactos IS NULL`,
	},
	{
		column:   "emails",
		apply:    `ALTER TABLE clientes ADD COLUMN emails JSONB DEFAULT '[]'`,
		backfill: `UPDATE clientes SET emails = '[]' WHERE emails IS NULL`,
	},
}

// ApplyMigrations evolves an already-deployed clientes table to the current
// column set. Running it any number of times converges to the same state.
// The first error aborts the whole routine; the caller decides whether that
// is fatal (it is at startup).
func ApplyMigrations(db *sql.DB) error {
	log.Println("Iniciando migración de base de datos...")

	for _, delta := range clienteDeltas {
		exists, err := columnExists(db, "clientes", delta.column)
		if err != nil {
			return fmt.Errorf("failed to check column %q: %w", delta.column, err)
		}

		if exists {
			log.Printf("Columna %q ya existe", delta.column)
		} else {
			log.Printf("Agregando columna %q...", delta.column)
			if _, err := db.Exec(delta.apply); err != nil {
				return fmt.Errorf("failed to add column %q: %w", delta.column, err)
			}
		}

		// The backfill runs regardless of whether the column pre-existed:
		// it covers rows inserted with an explicit null as well as rows
		// that predate the column.
		if _, err := db.Exec(delta.backfill); err != nil {
			return fmt.Errorf("failed to backfill column %q: %w", delta.column, err)
		}
	}

	log.Println("Migración completada exitosamente")
	return nil
}

// columnExists consults the catalog instead of attempting a blind ALTER,
// which would fail on re-runs.
func columnExists(db *sql.DB, table, column string) (bool, error) {
	var name string
	err := db.QueryRow(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = $1 AND column_name = $2`, table, column).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
