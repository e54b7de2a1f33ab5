package handlers

import (
	"bytes"
	"database/sql"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"net/http"
	"strconv"

	"backend/storage"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// addLabel draws regular text on the image at the given position
func addLabel(img *image.RGBA, x, y int, label string) {
	drawText(img, x, y, label, inconsolata.Regular8x16, color.RGBA{0, 0, 0, 255})
}

// addLabelBold draws a bold field label
func addLabelBold(img *image.RGBA, x, y int, label string) {
	drawText(img, x, y, label, inconsolata.Bold8x16, color.RGBA{30, 30, 30, 255})
}

func drawText(img *image.RGBA, x, y int, label string, face font.Face, col color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	d.DrawString(label)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// GenerateCotizacionQR godoc
// @Summary      Generate cotización QR as JPEG
// @Description  QR of the numero with a printable label block underneath
// @Tags         cotizaciones
// @Param        id   path      int  true  "Cotización ID"
// @Success      200  {file}    file  "JPEG image"
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/cotizaciones/{id}/qr [get]
func GenerateCotizacionQR(db *sql.DB) gin.HandlerFunc {
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

		qr, err := qrcode.New(q.Numero, qrcode.Medium)
		if err != nil {
			c.String(http.StatusInternalServerError, "QR code generation failed")
			return
		}
		qrImg := qr.Image(512)

		qrSize := qrImg.Bounds().Dy()
		padding := 30
		lineHeight := 28
		textAreaHeight := 3*lineHeight + padding
		totalHeight := qrSize + padding + textAreaHeight

		combinedImg := image.NewRGBA(image.Rect(0, 0, qrSize, totalHeight))
		draw.Draw(combinedImg, combinedImg.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
		draw.Draw(combinedImg, image.Rect(0, 0, qrSize, qrSize), qrImg, image.Point{}, draw.Src)

		separatorY := qrSize + padding/2
		for x := 0; x < qrSize; x++ {
			combinedImg.Set(x, separatorY, color.RGBA{200, 200, 200, 255})
		}

		startY := qrSize + padding + lineHeight
		xPos := 20

		addLabelBold(combinedImg, xPos, startY, "Numero:")
		addLabel(combinedImg, xPos+120, startY, q.Numero)

		addLabelBold(combinedImg, xPos, startY+lineHeight, "Cliente:")
		addLabel(combinedImg, xPos+120, startY+lineHeight, truncate(q.ClienteNombre, 40))

		addLabelBold(combinedImg, xPos, startY+2*lineHeight, "Proyecto:")
		addLabel(combinedImg, xPos+120, startY+2*lineHeight, truncate(q.ProyectoTitulo, 40))

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, combinedImg, nil); err != nil {
			c.String(http.StatusInternalServerError, "JPEG encoding failed")
			return
		}

		c.Data(http.StatusOK, "image/jpeg", buf.Bytes())
	}
}
