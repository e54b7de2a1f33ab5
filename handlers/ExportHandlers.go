package handlers

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportCSVClientes godoc
// @Summary      Export clientes as CSV
// @Tags         export
// @Produce      text/csv
// @Success      200  {file}  file  "CSV file"
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/export_csv_clientes [get]
func ExportCSVClientes(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientes, err := storage.ListClientes(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener clientes"})
			return
		}

		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", "attachment;filename=clientes_export.csv")

		writer := csv.NewWriter(c.Writer)
		defer writer.Flush()

		header := []string{"ID", "Nombre", "Direccion", "Atencion", "Telefono", "Email", "FechaCreacion"}
		if err := writer.Write(header); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing CSV header"})
			return
		}

		for _, cliente := range clientes {
			row := []string{
				strconv.FormatInt(cliente.ID, 10),
				cliente.Nombre,
				cliente.Direccion,
				cliente.Atencion,
				cliente.Telefono,
				cliente.Email,
				cliente.FechaCreacion.Format("2006-01-02"),
			}
			if err := writer.Write(row); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing CSV row"})
				return
			}
		}
	}
}

// ExportExcelCotizaciones godoc
// @Summary      Export cotizaciones as Excel
// @Description  Workbook with a summary sheet and one row per cotización
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file  "XLSX file"
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/export_excel_cotizaciones [get]
func ExportExcelCotizaciones(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cotizaciones, err := storage.ListCotizaciones(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener cotizaciones"})
			return
		}

		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error closing Excel file"})
			}
		}()

		summarySheet := "Resumen"
		index, err := f.NewSheet(summarySheet)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating summary sheet"})
			return
		}
		f.SetActiveSheet(index)

		f.SetCellValue(summarySheet, "A1", "Exportación de cotizaciones")
		f.SetCellValue(summarySheet, "A2", "Total de cotizaciones")
		f.SetCellValue(summarySheet, "B2", len(cotizaciones))
		f.SetCellValue(summarySheet, "A3", "Generado")
		f.SetCellValue(summarySheet, "B3", time.Now().Format("2006-01-02 15:04:05"))

		dataSheet := "Cotizaciones"
		if _, err := f.NewSheet(dataSheet); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating data sheet"})
			return
		}
		f.DeleteSheet("Sheet1")

		headers := []string{"ID", "Numero", "Revision", "Fecha", "Cliente", "Proyecto",
			"Tiempo de entrega", "Garantia (meses)", "Anticipo %", "Pago final %", "Creada"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(dataSheet, cell, h)
		}

		for rowIdx, q := range cotizaciones {
			values := []interface{}{
				q.ID, q.Numero, q.Revision, q.Fecha, q.ClienteNombre, q.ProyectoTitulo,
				q.TiempoEntrega, q.GarantiaMeses, q.Anticipo, q.PagoFinal,
				q.FechaCreacion.Format("2006-01-02"),
			}
			for colIdx, v := range values {
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
				f.SetCellValue(dataSheet, cell, v)
			}
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=cotizaciones_%s.xlsx", time.Now().Format("20060102")))
		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing Excel file"})
			return
		}
	}
}
