package storage

import (
	"context"
	"database/sql"
	"fmt"

	"backend/models"
)

// ImportLegacyData moves a snapshot of the legacy localStorage cache into
// the server store as a single all-or-nothing transaction. Rows that
// collide with existing data are skipped, never overwritten: the import
// backfills, first write wins. Any non-conflict error rolls back the whole
// batch.
//
// The returned counts are presented counts — a skipped duplicate still
// counts, so re-running the same import reports the same numbers.
func ImportLegacyData(ctx context.Context, db *sql.DB, clientes []models.Cliente, cotizaciones []models.Cotizacion) (int, int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin import transaction: %w", err)
	}
	// Rollback after a successful commit is a no-op; this guarantees the
	// connection is released on every error path.
	defer tx.Rollback()

	for _, c := range clientes {
		if err := importCliente(ctx, tx, &c); err != nil {
			return 0, 0, fmt.Errorf("failed to import cliente %d: %w", c.ID, err)
		}
	}

	for _, q := range cotizaciones {
		if err := importCotizacion(ctx, tx, &q); err != nil {
			return 0, 0, fmt.Errorf("failed to import cotización %q: %w", q.Numero, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit import transaction: %w", err)
	}
	return len(clientes), len(cotizaciones), nil
}

func importCliente(ctx context.Context, tx *sql.Tx, c *models.Cliente) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO clientes (id, nombre, direccion, atencion, telefono, email, contactos, emails, fecha_modificacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (id) DO NOTHING`,
		c.ID, c.Nombre, c.Direccion, c.Atencion, c.Telefono, c.Email,
		emptyIfNil(c.Contactos), emptyIfNil(c.Emails))
	return err
}

func importCotizacion(ctx context.Context, tx *sql.Tx, q *models.Cotizacion) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO cotizaciones (
			id, numero, revision, fecha, cliente_id, cliente_nombre, cliente_direccion,
			cliente_atencion, cliente_telefono, cliente_email, proyecto_titulo, proyecto_subtitulo,
			descripcion_parrafo1, justificacion, alcances, conceptos, tiempo_entrega,
			garantia_meses, incluye, no_incluye, anticipo, pago_final, pago_final_condicion,
			terminos_condiciones, fecha_modificacion
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, NOW())
		ON CONFLICT (numero) DO NOTHING`,
		q.ID, q.Numero, q.Revision, q.Fecha, nullableID(q.ClienteID), q.ClienteNombre,
		q.ClienteDireccion, q.ClienteAtencion, q.ClienteTelefono, q.ClienteEmail,
		q.ProyectoTitulo, q.ProyectoSubtitulo, q.DescripcionParrafo1, q.Justificacion,
		emptyIfNil(q.Alcances), emptyIfNil(q.Conceptos), q.TiempoEntrega, q.GarantiaMeses,
		emptyIfNil(q.Incluye), emptyIfNil(q.NoIncluye), q.Anticipo, q.PagoFinal,
		q.PagoFinalCondicion, q.TerminosCondiciones)
	return err
}

// Legacy snapshots predate the contactos/emails columns, so list fields may
// be absent entirely.
func emptyIfNil(l models.JSONList) models.JSONList {
	if l == nil {
		return models.JSONList{}
	}
	return l
}
