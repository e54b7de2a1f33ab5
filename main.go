// @title           Cotizador API
// @version         1.0
// @description     Backend del generador de cotizaciones - clientes, cotizaciones y migración de datos.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	_ "backend/docs"
	"backend/handlers"
	"backend/services"
	"backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()

	// The frontend is a static SPA that may be served from anywhere, so the
	// default is wide open; ALLOWED_ORIGINS narrows it in production.
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}

	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization", "Cache-Control",
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

// HealthCheck godoc
// @Summary      Health probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  models.HealthResponse
// @Router       /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "API funcionando correctamente"})
}

func main() {
	db := storage.InitDB()
	defer db.Close()

	// The service cannot run against a partial schema, so both failures are
	// fatal rather than retried.
	if err := storage.EnsureSchema(db); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	if err := storage.ApplyMigrations(db); err != nil {
		log.Fatal("Failed to apply migrations:", err)
	}

	generation := services.NewGenerationService()
	if !generation.Configured() {
		log.Println("GENERATION_API_KEY not set; /api/generar-proyecto-completo will return 503")
	}

	r := gin.Default()
	r.Use(cors.New(CORSConfig()))

	r.GET("/health", HealthCheck)

	// Clientes
	r.GET("/api/clientes", handlers.GetClientes(db))
	r.POST("/api/clientes", handlers.CreateCliente(db))
	r.PUT("/api/clientes/:id", handlers.UpdateCliente(db))
	r.DELETE("/api/clientes/:id", handlers.DeleteCliente(db))
	r.GET("/api/export_csv_clientes", handlers.ExportCSVClientes(db))

	// Cotizaciones
	r.GET("/api/cotizaciones", handlers.GetCotizaciones(db))
	r.POST("/api/cotizaciones", handlers.CreateCotizacion(db))
	r.PUT("/api/cotizaciones/:id", handlers.UpdateCotizacion(db))
	r.DELETE("/api/cotizaciones/:id", handlers.DeleteCotizacion(db))
	r.GET("/api/cotizaciones/:id/pdf", handlers.GenerateCotizacionPDF(db))
	r.GET("/api/cotizaciones/:id/qr", handlers.GenerateCotizacionQR(db))
	r.GET("/api/export_excel_cotizaciones", handlers.ExportExcelCotizaciones(db))

	// Migración
	r.POST("/api/migrate", handlers.MigrateData(db))
	r.POST("/api/migrate-schema", handlers.MigrateSchema(db))

	// Generación de contenido
	r.POST("/api/generar-proyecto-completo", handlers.GenerateProjectComplete(generation))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	if _, err := strconv.Atoi(port); err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Servidor corriendo en puerto %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
