package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var db *sql.DB

func InitDB() *sql.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Railway-style deployments inject a single DATABASE_URL; local setups
	// use the discrete DB_* variables.
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		user := os.Getenv("DB_USER")
		password := os.Getenv("DB_PASSWORD")
		dbname := os.Getenv("DB_NAME")
		host := os.Getenv("DB_HOST")
		port := os.Getenv("DB_PORT")

		connStr = fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
			user, password, dbname, host, port)
	}

	var err error
	db, err = sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Set connection pool settings optimized for light server load
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	return db
}

func GetDB() *sql.DB {
	return db
}

// EnsureSchema creates the clientes and cotizaciones tables when they are
// missing. It never alters existing tables; additive changes belong to
// ApplyMigrations. Safe to call on every start.
func EnsureSchema(db *sql.DB) error {
	createClientes := `
		CREATE TABLE IF NOT EXISTS clientes (
			id BIGINT PRIMARY KEY,
			nombre VARCHAR(255) NOT NULL,
			direccion TEXT,
			atencion VARCHAR(255),
			telefono VARCHAR(50),
			email VARCHAR(255),
			contactos JSONB DEFAULT '[]',
			emails JSONB DEFAULT '[]',
			fecha_creacion TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			fecha_modificacion TIMESTAMP
		)`
	if _, err := db.Exec(createClientes); err != nil {
		return fmt.Errorf("failed to create clientes table: %w", err)
	}

	createCotizaciones := `
		CREATE TABLE IF NOT EXISTS cotizaciones (
			id BIGINT PRIMARY KEY,
			numero VARCHAR(50) NOT NULL UNIQUE,
			revision VARCHAR(20),
			fecha VARCHAR(20),
			cliente_id BIGINT REFERENCES clientes(id),
			cliente_nombre VARCHAR(255),
			cliente_direccion TEXT,
			cliente_atencion VARCHAR(255),
			cliente_telefono VARCHAR(50),
			cliente_email VARCHAR(255),
			proyecto_titulo TEXT,
			proyecto_subtitulo TEXT,
			descripcion_parrafo1 TEXT,
			justificacion TEXT,
			alcances JSONB,
			conceptos JSONB,
			tiempo_entrega TEXT,
			garantia_meses VARCHAR(10),
			incluye JSONB,
			no_incluye JSONB,
			anticipo VARCHAR(10),
			pago_final VARCHAR(10),
			pago_final_condicion TEXT,
			terminos_condiciones TEXT,
			fecha_creacion TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			fecha_modificacion TIMESTAMP
		)`
	if _, err := db.Exec(createCotizaciones); err != nil {
		return fmt.Errorf("failed to create cotizaciones table: %w", err)
	}

	return nil
}
