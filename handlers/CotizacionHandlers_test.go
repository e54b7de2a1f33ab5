package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func cotizacionTestRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "numero", "revision", "fecha", "cliente_id", "cliente_nombre",
		"cliente_direccion", "cliente_atencion", "cliente_telefono", "cliente_email",
		"proyecto_titulo", "proyecto_subtitulo", "descripcion_parrafo1", "justificacion",
		"alcances", "conceptos", "tiempo_entrega", "garantia_meses",
		"incluye", "no_incluye", "anticipo", "pago_final", "pago_final_condicion",
		"terminos_condiciones", "fecha_creacion", "fecha_modificacion",
	})
}

func addCotizacionTestRow(rows *sqlmock.Rows, id int64, numero string) *sqlmock.Rows {
	return rows.AddRow(id, numero, "A", "2024-01-15", 1, "Acme",
		"Calle 1", "Ing. Juan", "555", "a@acme.mx",
		"Nave industrial", "Planta Norte", "Descripción.", "Justificación.",
		[]byte(`["trazo y nivelación", {"concepto": "cimentación", "cantidad": 4}]`),
		[]byte(`[]`), "4 semanas", "12",
		[]byte(`["materiales"]`), []byte(`["permisos"]`), "50", "50", "contra entrega",
		"Precios en MXN.", time.Now(), nil)
}

func TestCreateCotizacionDuplicateNumero(t *testing.T) {
	db, mock := newMockDB(t)
	// Advisory pre-check hits an existing numero.
	mock.ExpectQuery("SELECT id FROM cotizaciones WHERE numero").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	r := gin.New()
	r.POST("/api/cotizaciones", CreateCotizacion(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cotizaciones",
		strings.NewReader(`{"id": 10, "numero": "COT-001"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["code"] != "DUPLICATE_NUMERO" {
		t.Fatalf("expected code DUPLICATE_NUMERO got %v", body["code"])
	}
	if body["numero"] != "COT-001" {
		t.Fatalf("expected numero COT-001 got %v", body["numero"])
	}
}

func TestCreateCotizacionCreated(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT id FROM cotizaciones WHERE numero").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO cotizaciones").
		WillReturnRows(addCotizacionTestRow(cotizacionTestRows(), 10, "COT-002"))

	r := gin.New()
	r.POST("/api/cotizaciones", CreateCotizacion(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cotizaciones",
		strings.NewReader(`{"id": 10, "numero": "COT-002", "clienteId": 1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateCotizacionMissingNumero(t *testing.T) {
	db, _ := newMockDB(t)

	r := gin.New()
	r.POST("/api/cotizaciones", CreateCotizacion(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cotizaciones",
		strings.NewReader(`{"id": 10}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestUpdateCotizacionNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("UPDATE cotizaciones SET").WillReturnError(sql.ErrNoRows)

	r := gin.New()
	r.PUT("/api/cotizaciones/:id", UpdateCotizacion(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/cotizaciones/99",
		strings.NewReader(`{"numero": "COT-001"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d: %s", w.Code, w.Body.String())
	}
}

func TestDeleteCotizacionNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("DELETE FROM cotizaciones").WillReturnError(sql.ErrNoRows)

	r := gin.New()
	r.DELETE("/api/cotizaciones/:id", DeleteCotizacion(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/cotizaciones/99", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestGetCotizacionesReturnsArray(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM cotizaciones").
		WillReturnRows(addCotizacionTestRow(cotizacionTestRows(), 10, "COT-001"))

	r := gin.New()
	r.GET("/api/cotizaciones", GetCotizaciones(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cotizaciones", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	var list []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 || list[0]["numero"] != "COT-001" {
		t.Fatalf("unexpected list %s", w.Body.String())
	}
}
