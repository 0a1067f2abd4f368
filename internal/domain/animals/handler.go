package animals

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"adopet-backend/internal/middleware"
	"adopet-backend/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// maxUploadBytes limita el multipart completo de la creación (fotos incluidas).
const maxUploadBytes = 32 << 20

func RegisterRoutes(r chi.Router, svc *Service, m *metrics.Metrics) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc, m))

		// Listado "para adoptar": excluye los animales del solicitante.
		ar.Get("/available", listAvailableHandler(svc))

		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Patch("/{animalID}/status", updateStatusHandler(svc, m))
	})

	// Mis animales (cualquier status)
	r.Get("/me/animals", listMyAnimalsHandler(svc))
}

// animalResponse representa un animal devuelto por la API.
type animalResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Gender      string    `json:"gender"`
	Race        string    `json:"race"`
	Description string    `json:"description"`
	Pictures    []string  `json:"pictures"`
	Status      Status    `json:"status" enums:"available,pending,adopted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type updateStatusRequest struct {
	Status string `json:"status" enums:"available,pending,adopted"`
}

type failureResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind" enums:"validation,not_found,forbidden,invalid_status"`
}

// createAnimalHandler godoc
// @Summary Registrar un animal para adopción
// @Description Crea el registro con status inicial `available`. Las fotos van como archivos multipart bajo el campo `pictures` y se guardan en el media store en el mismo orden. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags animals
// @Accept mpfd
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param name formData string true "Nombre del animal"
// @Param type formData string true "Tipo (dog, cat, ...)"
// @Param gender formData string true "Género"
// @Param race formData string true "Raza"
// @Param description formData string false "Descripción libre"
// @Param pictures formData file false "Fotos (0 o más)"
// @Success 201 {object} animalResponse
// @Failure 400 {object} failureResponse "Campo requerido faltante"
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /animals [post]
func createAnimalHandler(svc *Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}

		pictures, err := readPictures(r)
		if err != nil {
			http.Error(w, "could not read pictures", http.StatusBadRequest)
			return
		}

		result, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:        r.FormValue("name"),
			Type:        r.FormValue("type"),
			Gender:      r.FormValue("gender"),
			Race:        r.FormValue("race"),
			Description: r.FormValue("description"),
			Pictures:    pictures,
		})
		if err != nil {
			// Error de dependencia (media store / repo). No filtramos el
			// mensaje interno al cliente.
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if result.IsFailure() {
			writeFailure(w, result.Failure())
			return
		}

		m.AnimalsCreated.Inc()
		writeJSON(w, http.StatusCreated, toAnimalResponse(result.Value()))
	}
}

// updateStatusHandler godoc
// @Summary Cambiar el status de adopción de un animal
// @Description Solo el owner puede mutar el status. Fallas distinguibles: 404 si el animal no existe, 400 si el status no es parte del enum, 403 si el solicitante no es el owner. Reaplicar el mismo status es idempotente.
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param animalID path string true "ID del animal"
// @Param body body updateStatusRequest true "Nuevo status"
// @Success 200 {object} animalResponse
// @Failure 400 {object} failureResponse "Status inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {object} failureResponse "No es el owner"
// @Failure 404 {object} failureResponse "Animal no encontrado"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID}/status [patch]
func updateStatusHandler(svc *Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		animalID := chi.URLParam(r, "animalID")
		result, err := svc.UpdateStatus(r.Context(), animalID, claims.UserID, req.Status)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if result.IsFailure() {
			writeFailure(w, result.Failure())
			return
		}

		updated := result.Value()
		m.StatusUpdates.Inc()
		if updated.Status == StatusAdopted {
			m.AdoptionsCompleted.Inc()
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(updated))
	}
}

// listAvailableHandler godoc
// @Summary Listar animales disponibles para adoptar
// @Description Devuelve animales con status `available`, excluyendo los del propio solicitante. Filtros AND opcionales: `type` y `gender` igualdad case-insensitive, `name` substring case-insensitive. Orden estable por fecha de creación ascendente.
// @Tags animals
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param gender query string false "Filtro por género"
// @Param type query string false "Filtro por tipo (ej: dog)"
// @Param name query string false "Substring del nombre"
// @Success 200 {array} animalResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /animals/available [get]
func listAvailableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		q := r.URL.Query()
		result, err := svc.GetAvailable(r.Context(), claims.UserID, Filter{
			Gender: q.Get("gender"),
			Type:   q.Get("type"),
			Name:   q.Get("name"),
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if result.IsFailure() {
			writeFailure(w, result.Failure())
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponses(result.Value()))
	}
}

// listMyAnimalsHandler godoc
// @Summary Listar mis animales
// @Description Devuelve todos los animales del solicitante, cualquier status (incluye pending y adopted).
// @Tags animals
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} animalResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /me/animals [get]
func listMyAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		result, err := svc.GetUserAnimals(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if result.IsFailure() {
			writeFailure(w, result.Failure())
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponses(result.Value()))
	}
}

// getAnimalHandler godoc
// @Summary Ver el detalle de un animal
// @Description Vista de detalle pública dentro de la plataforma (no exige ownership).
// @Tags animals
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {object} failureResponse "Animal no encontrado"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		result, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if result.IsFailure() {
			writeFailure(w, result.Failure())
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(result.Value()))
	}
}

// readPictures junta los payloads de los archivos `pictures` en orden.
func readPictures(r *http.Request) ([][]byte, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	files := r.MultipartForm.File["pictures"]
	out := make([][]byte, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		payload, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, payload)
	}
	return out, nil
}

func toAnimalResponse(a Animal) animalResponse {
	pics := a.Pictures
	if pics == nil {
		pics = []string{}
	}
	return animalResponse{
		ID:          a.ID,
		OwnerID:     a.OwnerID,
		Name:        a.Name,
		Type:        a.Type,
		Gender:      a.Gender,
		Race:        a.Race,
		Description: a.Description,
		Pictures:    pics,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toAnimalResponses(items []Animal) []animalResponse {
	out := make([]animalResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAnimalResponse(a))
	}
	return out
}

// writeFailure mapea cada kind de falla de dominio a su status HTTP.
// Antes todo caía en 400; el mapeo distinguible evita que el caller
// tenga que parsear texto libre.
func writeFailure(w http.ResponseWriter, f Failure) {
	status := http.StatusBadRequest
	switch f.Kind {
	case FailureNotFound:
		status = http.StatusNotFound
	case FailureForbidden:
		status = http.StatusForbidden
	}
	writeJSON(w, status, failureResponse{Error: f.Reason, Kind: string(f.Kind)})
}

// writeJSON está duplicado a propósito respecto de otros módulos:
// no vale la pena un helper compartido hasta que haya más de un dominio.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
