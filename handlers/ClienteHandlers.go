package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"backend/models"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

// GetClientes godoc
// @Summary      List clientes
// @Description  Returns every cliente, newest first
// @Tags         clientes
// @Produce      json
// @Success      200  {array}   models.Cliente
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/clientes [get]
func GetClientes(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientes, err := storage.ListClientes(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener clientes", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, clientes)
	}
}

// CreateCliente godoc
// @Summary      Create cliente
// @Description  Inserts a cliente with its caller-assigned id
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body      models.Cliente  true  "Cliente"
// @Success      201   {object}  models.Cliente
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /api/clientes [post]
func CreateCliente(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cliente models.Cliente
		if err := c.ShouldBindJSON(&cliente); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		created, err := storage.CreateCliente(db, &cliente)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear cliente", "details": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateCliente godoc
// @Summary      Update cliente
// @Description  Full replace of mutable fields; refreshes fecha_modificacion
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Cliente ID"
// @Param        body  body      models.Cliente  true  "Cliente"
// @Success      200   {object}  models.Cliente
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/clientes/{id} [put]
func UpdateCliente(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de cliente inválido"})
			return
		}

		var cliente models.Cliente
		if err := c.ShouldBindJSON(&cliente); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updated, err := storage.UpdateCliente(db, id, &cliente)
		if err == storage.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar cliente", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteCliente godoc
// @Summary      Delete cliente
// @Description  Hard delete; existing cotizaciones keep their snapshot of the cliente
// @Tags         clientes
// @Produce      json
// @Param        id   path      int  true  "Cliente ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func DeleteCliente(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de cliente inválido"})
			return
		}

		err = storage.DeleteCliente(db, id)
		if err == storage.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar cliente", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cliente eliminado correctamente"})
	}
}
