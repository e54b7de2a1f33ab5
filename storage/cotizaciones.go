package storage

import (
	"database/sql"
	"fmt"

	"backend/models"
)

const cotizacionColumns = `id, numero, revision, fecha, cliente_id, cliente_nombre, cliente_direccion,
	cliente_atencion, cliente_telefono, cliente_email, proyecto_titulo, proyecto_subtitulo,
	descripcion_parrafo1, justificacion, alcances, conceptos, tiempo_entrega, garantia_meses,
	incluye, no_incluye, anticipo, pago_final, pago_final_condicion, terminos_condiciones,
	fecha_creacion, fecha_modificacion`

func scanCotizacion(row interface{ Scan(...interface{}) error }) (*models.Cotizacion, error) {
	var q models.Cotizacion
	var clienteID sql.NullInt64
	var revision, fecha, clienteNombre, clienteDireccion, clienteAtencion,
		clienteTelefono, clienteEmail, proyectoTitulo, proyectoSubtitulo,
		descripcion, justificacion, tiempoEntrega, garantiaMeses, anticipo,
		pagoFinal, pagoFinalCondicion, terminos sql.NullString
	var modificacion sql.NullTime

	err := row.Scan(&q.ID, &q.Numero, &revision, &fecha, &clienteID, &clienteNombre,
		&clienteDireccion, &clienteAtencion, &clienteTelefono, &clienteEmail,
		&proyectoTitulo, &proyectoSubtitulo, &descripcion, &justificacion,
		&q.Alcances, &q.Conceptos, &tiempoEntrega, &garantiaMeses,
		&q.Incluye, &q.NoIncluye, &anticipo, &pagoFinal, &pagoFinalCondicion,
		&terminos, &q.FechaCreacion, &modificacion)
	if err != nil {
		return nil, err
	}

	q.Revision = revision.String
	q.Fecha = fecha.String
	q.ClienteID = clienteID.Int64
	q.ClienteNombre = clienteNombre.String
	q.ClienteDireccion = clienteDireccion.String
	q.ClienteAtencion = clienteAtencion.String
	q.ClienteTelefono = clienteTelefono.String
	q.ClienteEmail = clienteEmail.String
	q.ProyectoTitulo = proyectoTitulo.String
	q.ProyectoSubtitulo = proyectoSubtitulo.String
	q.DescripcionParrafo1 = descripcion.String
	q.Justificacion = justificacion.String
	q.TiempoEntrega = tiempoEntrega.String
	q.GarantiaMeses = garantiaMeses.String
	q.Anticipo = anticipo.String
	q.PagoFinal = pagoFinal.String
	q.PagoFinalCondicion = pagoFinalCondicion.String
	q.TerminosCondiciones = terminos.String
	if modificacion.Valid {
		q.FechaModificacion = &modificacion.Time
	}
	return &q, nil
}

// ListCotizaciones returns every cotización, newest first.
func ListCotizaciones(db *sql.DB) ([]models.Cotizacion, error) {
	rows, err := db.Query(`SELECT ` + cotizacionColumns + ` FROM cotizaciones ORDER BY fecha_creacion DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cotizaciones: %w", err)
	}
	defer rows.Close()

	cotizaciones := []models.Cotizacion{}
	for rows.Next() {
		q, err := scanCotizacion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cotización: %w", err)
		}
		cotizaciones = append(cotizaciones, *q)
	}
	return cotizaciones, rows.Err()
}

// GetCotizacion returns one cotización by id, or ErrNotFound.
func GetCotizacion(db *sql.DB, id int64) (*models.Cotizacion, error) {
	row := db.QueryRow(`SELECT `+cotizacionColumns+` FROM cotizaciones WHERE id = $1`, id)
	q, err := scanCotizacion(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cotización %d: %w", id, err)
	}
	return q, nil
}

// CreateCotizacion inserts a cotización. The numero pre-check is advisory:
// it turns the common duplicate case into a specific error before the
// insert, but the unique constraint on numero remains the source of truth,
// so a racing insert that slips past the check is classified the same way.
func CreateCotizacion(db *sql.DB, q *models.Cotizacion) (*models.Cotizacion, error) {
	var existing int64
	err := db.QueryRow(`SELECT id FROM cotizaciones WHERE numero = $1`, q.Numero).Scan(&existing)
	if err == nil {
		return nil, &DuplicateNumeroError{Numero: q.Numero}
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to check numero %q: %w", q.Numero, err)
	}

	row := db.QueryRow(`
		INSERT INTO cotizaciones (
			id, numero, revision, fecha, cliente_id, cliente_nombre, cliente_direccion,
			cliente_atencion, cliente_telefono, cliente_email, proyecto_titulo, proyecto_subtitulo,
			descripcion_parrafo1, justificacion, alcances, conceptos, tiempo_entrega,
			garantia_meses, incluye, no_incluye, anticipo, pago_final, pago_final_condicion,
			terminos_condiciones, fecha_modificacion
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, NOW())
		RETURNING `+cotizacionColumns,
		q.ID, q.Numero, q.Revision, q.Fecha, nullableID(q.ClienteID), q.ClienteNombre,
		q.ClienteDireccion, q.ClienteAtencion, q.ClienteTelefono, q.ClienteEmail,
		q.ProyectoTitulo, q.ProyectoSubtitulo, q.DescripcionParrafo1, q.Justificacion,
		q.Alcances, q.Conceptos, q.TiempoEntrega, q.GarantiaMeses, q.Incluye, q.NoIncluye,
		q.Anticipo, q.PagoFinal, q.PagoFinalCondicion, q.TerminosCondiciones)

	created, err := scanCotizacion(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &DuplicateNumeroError{Numero: q.Numero}
		}
		return nil, fmt.Errorf("failed to create cotización: %w", err)
	}
	return created, nil
}

// UpdateCotizacion replaces every mutable field and refreshes
// fecha_modificacion. Returns ErrNotFound when no row matches.
func UpdateCotizacion(db *sql.DB, id int64, q *models.Cotizacion) (*models.Cotizacion, error) {
	row := db.QueryRow(`
		UPDATE cotizaciones SET
			numero = $2, revision = $3, fecha = $4, cliente_id = $5, cliente_nombre = $6,
			cliente_direccion = $7, cliente_atencion = $8, cliente_telefono = $9,
			cliente_email = $10, proyecto_titulo = $11, proyecto_subtitulo = $12,
			descripcion_parrafo1 = $13, justificacion = $14, alcances = $15, conceptos = $16,
			tiempo_entrega = $17, garantia_meses = $18, incluye = $19, no_incluye = $20,
			anticipo = $21, pago_final = $22, pago_final_condicion = $23,
			terminos_condiciones = $24, fecha_modificacion = NOW()
		WHERE id = $1
		RETURNING `+cotizacionColumns,
		id, q.Numero, q.Revision, q.Fecha, nullableID(q.ClienteID), q.ClienteNombre,
		q.ClienteDireccion, q.ClienteAtencion, q.ClienteTelefono, q.ClienteEmail,
		q.ProyectoTitulo, q.ProyectoSubtitulo, q.DescripcionParrafo1, q.Justificacion,
		q.Alcances, q.Conceptos, q.TiempoEntrega, q.GarantiaMeses, q.Incluye, q.NoIncluye,
		q.Anticipo, q.PagoFinal, q.PagoFinalCondicion, q.TerminosCondiciones)

	updated, err := scanCotizacion(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &DuplicateNumeroError{Numero: q.Numero}
		}
		return nil, fmt.Errorf("failed to update cotización %d: %w", id, err)
	}
	return updated, nil
}

// DeleteCotizacion removes the row, or returns ErrNotFound.
func DeleteCotizacion(db *sql.DB, id int64) error {
	var deleted int64
	err := db.QueryRow(`DELETE FROM cotizaciones WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete cotización %d: %w", id, err)
	}
	return nil
}

// nullableID maps the zero id to NULL so the cliente_id foreign key accepts
// cotizaciones whose cliente was never registered server-side.
func nullableID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}
