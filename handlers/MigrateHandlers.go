package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"backend/models"
	"backend/storage"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MigrateData godoc
// @Summary      Import legacy data
// @Description  Imports a localStorage snapshot of clientes and cotizaciones in one transaction. Rows that collide with existing data are skipped; any other error rolls back the whole batch.
// @Tags         migración
// @Accept       json
// @Produce      json
// @Param        body  body      models.MigrateRequest  true  "Legacy snapshot"
// @Success      200   {object}  models.MigrateResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /api/migrate [post]
func MigrateData(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.MigrateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Batch id ties the response to the server logs when an import of
		// hundreds of rows needs auditing.
		batchID := uuid.NewString()
		log.Printf("Import batch %s: %d clientes, %d cotizaciones presented",
			batchID, len(req.Clientes), len(req.Cotizaciones))

		ctx, cancel := utils.GetSlowQueryContext(c.Request.Context())
		defer cancel()

		clientes, cotizaciones, err := storage.ImportLegacyData(ctx, db, req.Clientes, req.Cotizaciones)
		if err != nil {
			log.Printf("Import batch %s failed: %v", batchID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al migrar datos", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, models.MigrateResponse{
			Message:              "Migración completada exitosamente",
			ClientesMigrados:     clientes,
			CotizacionesMigradas: cotizaciones,
			BatchID:              batchID,
		})
	}
}

// MigrateSchema godoc
// @Summary      Run schema migrations
// @Description  Applies the additive clientes migrations on demand. Idempotent; re-running converges to the same state.
// @Tags         migración
// @Produce      json
// @Success      200  {object}  models.MessageResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/migrate-schema [post]
func MigrateSchema(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := storage.ApplyMigrations(db); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error en la migración", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Migración completada exitosamente"})
	}
}
