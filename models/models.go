package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// JSONList is an ordered list of free-form entries stored in a JSONB column.
// The contents are opaque to the server; only the frontend interprets the
// entry shape (contactos, alcances, conceptos, ...).
type JSONList []interface{}

// Scan implements sql.Scanner. A NULL column scans to an empty list so
// callers never see nil for rows created before the migration ran.
func (l *JSONList) Scan(value interface{}) error {
	if value == nil {
		*l = JSONList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			*l = JSONList{}
			return nil
		}
		return json.Unmarshal(v, l)
	case string:
		if v == "" {
			*l = JSONList{}
			return nil
		}
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan type %T into JSONList", v)
	}
}

// Value implements driver.Valuer for database/sql
func (l JSONList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

type Cliente struct {
	ID                int64      `json:"id" example:"1718300000000"`
	Nombre            string     `json:"nombre" binding:"required" example:"Acme S.A. de C.V."`
	Direccion         string     `json:"direccion" example:"Av. Reforma 123, CDMX"`
	Atencion          string     `json:"atencion" example:"Ing. Juan Perez"`
	Telefono          string     `json:"telefono" example:"55 1234 5678"`
	Email             string     `json:"email" example:"contacto@acme.mx"`
	Contactos         JSONList   `json:"contactos"`
	Emails            JSONList   `json:"emails"`
	FechaCreacion     time.Time  `json:"fecha_creacion" example:"2024-01-15T10:30:00Z"`
	FechaModificacion *time.Time `json:"fecha_modificacion,omitempty" example:"2024-01-15T10:30:00Z"`
}

type Cotizacion struct {
	ID                  int64      `json:"id" example:"1718300000001"`
	Numero              string     `json:"numero" binding:"required" example:"COT-2024-001"`
	Revision            string     `json:"revision" example:"A"`
	Fecha               string     `json:"fecha" example:"2024-01-15"`
	ClienteID           int64      `json:"clienteId" example:"1718300000000"`
	ClienteNombre       string     `json:"clienteNombre" example:"Acme S.A. de C.V."`
	ClienteDireccion    string     `json:"clienteDireccion" example:"Av. Reforma 123, CDMX"`
	ClienteAtencion     string     `json:"clienteAtencion" example:"Ing. Juan Perez"`
	ClienteTelefono     string     `json:"clienteTelefono" example:"55 1234 5678"`
	ClienteEmail        string     `json:"clienteEmail" example:"contacto@acme.mx"`
	ProyectoTitulo      string     `json:"proyectoTitulo" example:"Instalacion de sistema CCTV"`
	ProyectoSubtitulo   string     `json:"proyectoSubtitulo" example:"Planta Norte"`
	DescripcionParrafo1 string     `json:"descripcionParrafo1"`
	Justificacion       string     `json:"justificacion"`
	Alcances            JSONList   `json:"alcances"`
	Conceptos           JSONList   `json:"conceptos"`
	TiempoEntrega       string     `json:"tiempoEntrega" example:"4 semanas"`
	GarantiaMeses       string     `json:"garantiaMeses" example:"12"`
	Incluye             JSONList   `json:"incluye"`
	NoIncluye           JSONList   `json:"noIncluye"`
	Anticipo            string     `json:"anticipo" example:"50"`
	PagoFinal           string     `json:"pagoFinal" example:"50"`
	PagoFinalCondicion  string     `json:"pagoFinalCondicion" example:"contra entrega"`
	TerminosCondiciones string     `json:"terminosCondiciones"`
	FechaCreacion       time.Time  `json:"fecha_creacion" example:"2024-01-15T10:30:00Z"`
	FechaModificacion   *time.Time `json:"fecha_modificacion,omitempty" example:"2024-01-15T10:30:00Z"`
}
