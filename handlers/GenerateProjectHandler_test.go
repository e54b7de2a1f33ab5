package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func TestGenerateProjectUnconfigured(t *testing.T) {
	t.Setenv("GENERATION_API_KEY", "")
	gen := services.NewGenerationService()

	r := gin.New()
	r.POST("/api/generar-proyecto-completo", GenerateProjectComplete(gen))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generar-proyecto-completo",
		strings.NewReader(`{"descripcion": "Nave industrial de 500 m2"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["code"] != "GENERADOR_NO_CONFIGURADO" {
		t.Fatalf("expected code GENERADOR_NO_CONFIGURADO got %v", body["code"])
	}
}

func TestGenerateProjectMissingDescripcion(t *testing.T) {
	t.Setenv("GENERATION_API_KEY", "test-key")
	gen := services.NewGenerationService()

	r := gin.New()
	r.POST("/api/generar-proyecto-completo", GenerateProjectComplete(gen))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generar-proyecto-completo",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestGenerateProjectRelaysDraft(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"content": "{\"titulo\": \"Nave industrial\", \"alcances\": [\"cimentación\"]}"}}]}`))
	}))
	defer upstream.Close()

	t.Setenv("GENERATION_API_URL", upstream.URL)
	t.Setenv("GENERATION_API_KEY", "test-key")
	gen := services.NewGenerationService()

	r := gin.New()
	r.POST("/api/generar-proyecto-completo", GenerateProjectComplete(gen))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generar-proyecto-completo",
		strings.NewReader(`{"descripcion": "Nave industrial de 500 m2"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["titulo"] != "Nave industrial" {
		t.Fatalf("unexpected draft %s", w.Body.String())
	}
}

func TestGenerateProjectUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer upstream.Close()

	t.Setenv("GENERATION_API_URL", upstream.URL)
	t.Setenv("GENERATION_API_KEY", "test-key")
	gen := services.NewGenerationService()

	r := gin.New()
	r.POST("/api/generar-proyecto-completo", GenerateProjectComplete(gen))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generar-proyecto-completo",
		strings.NewReader(`{"descripcion": "Nave industrial"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 got %d: %s", w.Code, w.Body.String())
	}
}
