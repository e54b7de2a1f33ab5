package models

// Swagger / API docs: common request and response models referenced by handler annotations

// ErrorResponse is used in @Failure for error responses
type ErrorResponse struct {
	Error   string `json:"error" example:"Cliente no encontrado"`
	Code    string `json:"code,omitempty" example:""`
	Details string `json:"details,omitempty" example:""`
}

// MessageResponse is generic response for APIs that return only {"message": "..."}
type MessageResponse struct {
	Message string `json:"message" example:"Cliente eliminado correctamente"`
}

// HealthResponse is used in @Success for the health probe
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"API funcionando correctamente"`
}

// MigrateRequest is the body for the legacy data import API
type MigrateRequest struct {
	Clientes     []Cliente    `json:"clientes"`
	Cotizaciones []Cotizacion `json:"cotizaciones"`
}

// MigrateResponse reports presented counts; rows skipped on conflict still count
type MigrateResponse struct {
	Message              string `json:"message" example:"Migración completada exitosamente"`
	ClientesMigrados     int    `json:"clientesMigrados" example:"3"`
	CotizacionesMigradas int    `json:"cotizacionesMigradas" example:"5"`
	BatchID              string `json:"batchId" example:"0b5e9c3e-8f67-4a7c-9a2d-2f4f4f9a2d11"`
}

// GenerateProjectRequest is the body for the generative draft API
type GenerateProjectRequest struct {
	Descripcion string `json:"descripcion" binding:"required" example:"Suministro e instalacion de 12 camaras IP en bodega"`
}

// GeneratedProject is the structured draft relayed from the generative API
type GeneratedProject struct {
	Titulo        string   `json:"titulo" example:"Instalacion de sistema CCTV"`
	Subtitulo     string   `json:"subtitulo" example:"Bodega principal"`
	Descripcion   string   `json:"descripcion"`
	Justificacion string   `json:"justificacion"`
	Alcances      []string `json:"alcances"`
}
