package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"backend/models"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

// GetCotizaciones godoc
// @Summary      List cotizaciones
// @Description  Returns every cotización, newest first
// @Tags         cotizaciones
// @Produce      json
// @Success      200  {array}   models.Cotizacion
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/cotizaciones [get]
func GetCotizaciones(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cotizaciones, err := storage.ListCotizaciones(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener cotizaciones", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cotizaciones)
	}
}

// CreateCotizacion godoc
// @Summary      Create cotización
// @Description  Rejects duplicate numeros with code DUPLICATE_NUMERO before touching the unique constraint
// @Tags         cotizaciones
// @Accept       json
// @Produce      json
// @Param        body  body      models.Cotizacion  true  "Cotización"
// @Success      201   {object}  models.Cotizacion
// @Failure      400   {object}  models.ErrorResponse
// @Failure      409   {object}  models.ErrorResponse
// @Router       /api/cotizaciones [post]
func CreateCotizacion(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cotizacion models.Cotizacion
		if err := c.ShouldBindJSON(&cotizacion); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := storage.CreateCotizacion(db, &cotizacion)
		var dup *storage.DuplicateNumeroError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, gin.H{
				"error":  "Ya existe una cotización con ese número",
				"code":   "DUPLICATE_NUMERO",
				"numero": dup.Numero,
			})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear cotización", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateCotizacion godoc
// @Summary      Update cotización
// @Description  Full replace of mutable fields; refreshes fecha_modificacion
// @Tags         cotizaciones
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Cotización ID"
// @Param        body  body      models.Cotizacion  true  "Cotización"
// @Success      200   {object}  models.Cotizacion
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Failure      409   {object}  models.ErrorResponse
// @Router       /api/cotizaciones/{id} [put]
func UpdateCotizacion(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de cotización inválido"})
			return
		}

		var cotizacion models.Cotizacion
		if err := c.ShouldBindJSON(&cotizacion); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := storage.UpdateCotizacion(db, id, &cotizacion)
		if err == storage.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cotización no encontrada"})
			return
		}
		var dup *storage.DuplicateNumeroError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, gin.H{
				"error":  "Ya existe una cotización con ese número",
				"code":   "DUPLICATE_NUMERO",
				"numero": dup.Numero,
			})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar cotización", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteCotizacion godoc
// @Summary      Delete cotización
// @Tags         cotizaciones
// @Produce      json
// @Param        id   path      int  true  "Cotización ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/cotizaciones/{id} [delete]
func DeleteCotizacion(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de cotización inválido"})
			return
		}

		err = storage.DeleteCotizacion(db, id)
		if err == storage.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cotización no encontrada"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar cotización", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cotización eliminada correctamente"})
	}
}
