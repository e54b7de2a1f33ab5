package storage

import (
	"database/sql"
	"fmt"

	"backend/models"
)

const clienteColumns = `id, nombre, direccion, atencion, telefono, email, contactos, emails, fecha_creacion, fecha_modificacion`

func scanCliente(row interface{ Scan(...interface{}) error }) (*models.Cliente, error) {
	var c models.Cliente
	var direccion, atencion, telefono, email sql.NullString
	var modificacion sql.NullTime

	err := row.Scan(&c.ID, &c.Nombre, &direccion, &atencion, &telefono, &email,
		&c.Contactos, &c.Emails, &c.FechaCreacion, &modificacion)
	if err != nil {
		return nil, err
	}

	c.Direccion = direccion.String
	c.Atencion = atencion.String
	c.Telefono = telefono.String
	c.Email = email.String
	if modificacion.Valid {
		c.FechaModificacion = &modificacion.Time
	}
	return &c, nil
}

// ListClientes returns every cliente, newest first. Descending creation
// order keeps the listing deterministic for the frontend.
func ListClientes(db *sql.DB) ([]models.Cliente, error) {
	rows, err := db.Query(`SELECT ` + clienteColumns + ` FROM clientes ORDER BY fecha_creacion DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list clientes: %w", err)
	}
	defer rows.Close()

	clientes := []models.Cliente{}
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cliente: %w", err)
		}
		clientes = append(clientes, *c)
	}
	return clientes, rows.Err()
}

// CreateCliente inserts a cliente with its caller-assigned id and returns
// the persisted row including server-side timestamps.
func CreateCliente(db *sql.DB, c *models.Cliente) (*models.Cliente, error) {
	row := db.QueryRow(`
		INSERT INTO clientes (id, nombre, direccion, atencion, telefono, email, contactos, emails, fecha_modificacion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING `+clienteColumns,
		c.ID, c.Nombre, c.Direccion, c.Atencion, c.Telefono, c.Email, c.Contactos, c.Emails)

	created, err := scanCliente(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("cliente %d ya existe: %w", c.ID, err)
		}
		return nil, fmt.Errorf("failed to create cliente: %w", err)
	}
	return created, nil
}

// UpdateCliente replaces every mutable field and refreshes
// fecha_modificacion. Returns ErrNotFound when no row matches.
func UpdateCliente(db *sql.DB, id int64, c *models.Cliente) (*models.Cliente, error) {
	row := db.QueryRow(`
		UPDATE clientes
		SET nombre = $2, direccion = $3, atencion = $4, telefono = $5, email = $6,
		    contactos = $7, emails = $8, fecha_modificacion = NOW()
		WHERE id = $1
		RETURNING `+clienteColumns,
		id, c.Nombre, c.Direccion, c.Atencion, c.Telefono, c.Email, c.Contactos, c.Emails)

	updated, err := scanCliente(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update cliente %d: %w", id, err)
	}
	return updated, nil
}

// DeleteCliente removes the row. Cotizaciones are untouched: they carry a
// snapshot of the cliente taken at quotation time.
func DeleteCliente(db *sql.DB, id int64) error {
	var deleted int64
	err := db.QueryRow(`DELETE FROM clientes WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete cliente %d: %w", id, err)
	}
	return nil
}
