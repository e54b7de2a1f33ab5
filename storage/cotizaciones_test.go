package storage

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"backend/models"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func cotizacionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "numero", "revision", "fecha", "cliente_id", "cliente_nombre",
		"cliente_direccion", "cliente_atencion", "cliente_telefono", "cliente_email",
		"proyecto_titulo", "proyecto_subtitulo", "descripcion_parrafo1", "justificacion",
		"alcances", "conceptos", "tiempo_entrega", "garantia_meses",
		"incluye", "no_incluye", "anticipo", "pago_final", "pago_final_condicion",
		"terminos_condiciones", "fecha_creacion", "fecha_modificacion",
	})
}

func addCotizacionRow(rows *sqlmock.Rows, id int64, numero string) *sqlmock.Rows {
	return rows.AddRow(id, numero, "A", "2024-01-15", 1, "Acme",
		"Calle 1", "Ing. Juan", "555", "a@acme.mx",
		"Nave industrial", "", "", "",
		[]byte(`["trazo y nivelación"]`), []byte(`[]`), "4 semanas", "12",
		[]byte(`[]`), []byte(`[]`), "50", "50", "contra entrega",
		"", time.Now(), nil)
}

func TestGetCotizacionNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM cotizaciones WHERE id").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err = GetCotizacion(db, 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestCreateCotizacionDuplicateNumeroPreCheck(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	// The advisory check finds an existing row, so the INSERT never runs.
	mock.ExpectQuery("SELECT id FROM cotizaciones WHERE numero").
		WithArgs("COT-001").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	_, err = CreateCotizacion(db, &models.Cotizacion{Numero: "COT-001"})

	var dup *DuplicateNumeroError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateNumeroError got %v", err)
	}
	if dup.Numero != "COT-001" {
		t.Fatalf("expected numero COT-001 got %q", dup.Numero)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateCotizacionDuplicateNumeroConstraint(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	// The pre-check misses the racing insert; the unique constraint is the
	// source of truth and its violation classifies the same way.
	mock.ExpectQuery("SELECT id FROM cotizaciones WHERE numero").
		WithArgs("COT-002").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO cotizaciones").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "cotizaciones_numero_key"})

	_, err = CreateCotizacion(db, &models.Cotizacion{Numero: "COT-002"})

	var dup *DuplicateNumeroError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateNumeroError got %v", err)
	}
}

func TestCreateCotizacionSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id FROM cotizaciones WHERE numero").
		WithArgs("COT-003").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO cotizaciones").
		WillReturnRows(addCotizacionRow(cotizacionRows(), 9, "COT-003"))

	created, err := CreateCotizacion(db, &models.Cotizacion{ID: 9, Numero: "COT-003", ClienteID: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 9 || created.Numero != "COT-003" {
		t.Fatalf("unexpected row %+v", created)
	}
	if len(created.Alcances) != 1 {
		t.Fatalf("expected 1 alcance got %d", len(created.Alcances))
	}
}

func TestUpdateCotizacionNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("UPDATE cotizaciones SET").WillReturnError(sql.ErrNoRows)

	_, err = UpdateCotizacion(db, 99, &models.Cotizacion{Numero: "COT-004"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}
}

func TestUpdateCotizacionDuplicateNumero(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("UPDATE cotizaciones SET").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err = UpdateCotizacion(db, 7, &models.Cotizacion{Numero: "COT-001"})

	var dup *DuplicateNumeroError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateNumeroError got %v", err)
	}
}

func TestNullableID(t *testing.T) {
	if v := nullableID(0); v.Valid {
		t.Fatal("expected zero id to map to NULL")
	}
	if v := nullableID(42); !v.Valid || v.Int64 != 42 {
		t.Fatalf("expected valid 42, got %+v", v)
	}
}
