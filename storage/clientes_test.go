package storage

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"backend/models"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func clienteRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "nombre", "direccion", "atencion", "telefono", "email",
		"contactos", "emails", "fecha_creacion", "fecha_modificacion",
	})
}

func TestListClientes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM clientes ORDER BY fecha_creacion DESC").
		WillReturnRows(clienteRows().
			AddRow(2, "Beta", "Calle 2", "", "", "b@beta.mx", []byte(`[{"nombre":"Ana"}]`), []byte(`[]`), now, nil).
			AddRow(1, "Acme", nil, nil, nil, nil, nil, nil, now.Add(-time.Hour), nil))

	clientes, err := ListClientes(db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(clientes) != 2 {
		t.Fatalf("expected 2 clientes got %d", len(clientes))
	}
	if clientes[0].Nombre != "Beta" {
		t.Fatalf("expected newest first, got %q", clientes[0].Nombre)
	}
	if len(clientes[0].Contactos) != 1 {
		t.Fatalf("expected 1 contacto got %d", len(clientes[0].Contactos))
	}
	// NULL columns must come back as zero values, never crash the scan.
	if clientes[1].Direccion != "" || clientes[1].Contactos == nil {
		t.Fatalf("expected empty defaults for NULL columns, got %+v", clientes[1])
	}
}

func TestListClientesEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM clientes").WillReturnRows(clienteRows())

	clientes, err := ListClientes(db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	// The handler serializes this directly; it must be [] in JSON, not null.
	if clientes == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestCreateClienteReturnsPersistedRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO clientes").
		WithArgs(int64(5), "Acme", "Calle 1", "Ing. Juan", "555", "a@acme.mx",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(clienteRows().
			AddRow(5, "Acme", "Calle 1", "Ing. Juan", "555", "a@acme.mx", []byte(`[]`), []byte(`[]`), now, now))

	created, err := CreateCliente(db, &models.Cliente{
		ID: 5, Nombre: "Acme", Direccion: "Calle 1", Atencion: "Ing. Juan",
		Telefono: "555", Email: "a@acme.mx",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 5 || created.FechaCreacion.IsZero() {
		t.Fatalf("expected persisted row with timestamps, got %+v", created)
	}
	if created.FechaModificacion == nil {
		t.Fatal("expected fecha_modificacion set on create")
	}
}

func TestUpdateClienteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("UPDATE clientes").WillReturnError(sql.ErrNoRows)

	_, err = UpdateCliente(db, 99, &models.Cliente{Nombre: "Nadie"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestDeleteClienteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("DELETE FROM clientes").WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	if err := DeleteCliente(db, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}
