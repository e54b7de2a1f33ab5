package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"backend/models"
	"backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GenerateCotizacionPDF godoc
// @Summary      Generate cotización PDF
// @Tags         cotizaciones
// @Param        id   path  int  true  "Cotización ID"
// @Success      200  "PDF file"
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/cotizaciones/{id}/pdf [get]
func GenerateCotizacionPDF(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de cotización inválido"})
			return
		}

		q, err := storage.GetCotizacion(db, id)
		if err == storage.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cotización no encontrada"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		titleCaser := cases.Title(language.Spanish)

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetMargins(10, 10, 10)
		pdf.SetFont("Arial", "", 10)
		tr := pdf.UnicodeTranslatorFromDescriptor("")

		// --- Header ---
		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(150, 10, tr(fmt.Sprintf("COTIZACIÓN %s", q.Numero)))

		// QR of the numero, top-right corner
		if png, err := qrcode.Encode(q.Numero, qrcode.Medium, 256); err == nil {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("numero-qr", opts, bytes.NewReader(png))
			pdf.ImageOptions("numero-qr", 172, 8, 28, 28, false, opts, 0, "")
		}
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		pdf.Cell(95, 6, tr(fmt.Sprintf("Revisión: %s", q.Revision)))
		pdf.Ln(6)
		pdf.Cell(95, 6, tr(fmt.Sprintf("Fecha: %s", q.Fecha)))
		pdf.Ln(12)

		// --- Cliente (snapshot taken at quotation time) ---
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(190, 8, "Cliente")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(180, 6, tr(fmt.Sprintf("%s\n%s\nAt'n: %s\nTel: %s\n%s",
			titleCaser.String(q.ClienteNombre), q.ClienteDireccion, q.ClienteAtencion,
			q.ClienteTelefono, q.ClienteEmail)), "", "L", false)
		pdf.Ln(6)

		// --- Proyecto ---
		pdf.SetFont("Arial", "B", 14)
		pdf.MultiCell(190, 8, tr(q.ProyectoTitulo), "", "L", false)
		if q.ProyectoSubtitulo != "" {
			pdf.SetFont("Arial", "I", 11)
			pdf.MultiCell(190, 6, tr(q.ProyectoSubtitulo), "", "L", false)
		}
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 10)
		if q.DescripcionParrafo1 != "" {
			pdf.MultiCell(190, 6, tr(q.DescripcionParrafo1), "", "L", false)
			pdf.Ln(2)
		}
		if q.Justificacion != "" {
			pdf.MultiCell(190, 6, tr(q.Justificacion), "", "L", false)
			pdf.Ln(2)
		}

		writePdfList(pdf, tr, "Alcances", q.Alcances)
		writePdfList(pdf, tr, "Conceptos", q.Conceptos)
		writePdfList(pdf, tr, "Incluye", q.Incluye)
		writePdfList(pdf, tr, "No incluye", q.NoIncluye)

		// --- Condiciones ---
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(190, 8, "Condiciones")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(190, 6, tr(fmt.Sprintf("Tiempo de entrega: %s", q.TiempoEntrega)))
		pdf.Ln(6)
		pdf.Cell(190, 6, tr(fmt.Sprintf("Garantía: %s meses", q.GarantiaMeses)))
		pdf.Ln(6)
		pdf.Cell(190, 6, tr(fmt.Sprintf("Anticipo: %s%%  |  Pago final: %s%% %s",
			q.Anticipo, q.PagoFinal, q.PagoFinalCondicion)))
		pdf.Ln(8)
		if q.TerminosCondiciones != "" {
			pdf.SetFont("Arial", "", 8)
			pdf.MultiCell(190, 4, tr(q.TerminosCondiciones), "", "L", false)
		}

		// --- Footer ---
		pdf.SetY(-20)
		pdf.SetFont("Arial", "I", 8)
		pdf.Cell(190, 6, tr("Documento generado por el sistema de cotizaciones."))
		pdf.Ln(5)
		pdf.Cell(190, 6, "Generado: "+time.Now().Format("2006-01-02 15:04:05"))

		// --- Output PDF ---
		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=cotizacion_%s.pdf", q.Numero))
		if err := pdf.Output(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}
	}
}

func writePdfList(pdf *gofpdf.Fpdf, tr func(string) string, title string, list models.JSONList) {
	if len(list) == 0 {
		return
	}
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(190, 8, tr(title))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, entry := range list {
		pdf.MultiCell(185, 6, tr("- "+entryText(entry)), "", "L", false)
	}
}

// entryText flattens one opaque list entry for display. Entries are either
// plain strings or objects from the frontend editor; for objects the
// descriptive field wins, with quantity and price appended when present.
func entryText(entry interface{}) string {
	switch v := entry.(type) {
	case string:
		return v
	case map[string]interface{}:
		text := ""
		for _, key := range []string{"descripcion", "texto", "nombre", "concepto"} {
			if s, ok := v[key].(string); ok && s != "" {
				text = s
				break
			}
		}
		if cantidad, ok := v["cantidad"].(float64); ok {
			text = fmt.Sprintf("%s (cantidad: %g)", text, cantidad)
		}
		if precio, ok := v["precio"].(float64); ok {
			text = fmt.Sprintf("%s $%.2f", text, precio)
		}
		if text != "" {
			return text
		}
	}
	b, _ := json.Marshal(entry)
	return string(b)
}
