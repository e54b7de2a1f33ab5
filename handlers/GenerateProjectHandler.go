package handlers

import (
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// GenerateProjectComplete godoc
// @Summary      Draft quotation content
// @Description  Forwards a free-text project description to the generative API and relays the structured draft
// @Tags         generación
// @Accept       json
// @Produce      json
// @Param        body  body      models.GenerateProjectRequest  true  "Descripción del proyecto"
// @Success      200   {object}  models.GeneratedProject
// @Failure      400   {object}  models.ErrorResponse
// @Failure      502   {object}  models.ErrorResponse
// @Failure      503   {object}  models.ErrorResponse
// @Router       /api/generar-proyecto-completo [post]
func GenerateProjectComplete(gen *services.GenerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.GenerateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if !gen.Configured() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "El servicio de generación no está configurado",
				"code":  "GENERADOR_NO_CONFIGURADO",
			})
			return
		}

		project, err := gen.GenerateProject(c.Request.Context(), req.Descripcion)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Error al generar el proyecto", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, project)
	}
}
