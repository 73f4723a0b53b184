package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/camiones-api/internal/api/shared"
	"github.com/phrazzld/camiones-api/internal/domain"
)

// TruckService is the resource-service contract the handler depends on.
// Implemented by *truck.Service.
type TruckService interface {
	ListAll(ctx context.Context) ([]domain.Truck, error)
	GetByID(ctx context.Context, id int64) (*domain.Truck, error)
	Create(ctx context.Context, fields domain.TruckFields) (int64, error)
	PartialUpdate(ctx context.Context, id int64, update domain.TruckUpdate) (bool, error)
	FullReplace(ctx context.Context, id int64, fields domain.TruckFields) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// TruckHandler handles truck CRUD API requests.
type TruckHandler struct {
	trucks TruckService
	logger *slog.Logger
}

// NewTruckHandler creates a new TruckHandler with the given dependencies.
func NewTruckHandler(trucks TruckService, logger *slog.Logger) *TruckHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TruckHandler{
		trucks: trucks,
		logger: logger,
	}
}

// List handles GET /camiones/.
// An empty table is a success with an explanatory mensaje, not an error.
func (h *TruckHandler) List(w http.ResponseWriter, r *http.Request) {
	trucks, err := h.trucks.ListAll(r.Context())
	if err != nil {
		HandleServiceError(w, r, err, "")
		return
	}

	if len(trucks) == 0 {
		shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Mensaje: "La lista está vacía"})
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, trucks)
}

// Get handles GET /camion/{id}.
// An unparseable id behaves like a lookup miss: the original passed the raw
// value to the store and answered the resulting empty set with 404.
func (h *TruckHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Camion no encontrado")
		return
	}

	t, err := h.trucks.GetByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, t)
}

// Create handles POST /camion/ (token-guarded).
func (h *TruckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TruckPayload
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Formato de solicitud no válido")
		return
	}

	id, err := h.trucks.Create(r.Context(), domain.TruckFields{
		Color:         req.Color,
		Matricula:     req.Matricula,
		Conductor:     req.Conductor,
		YearOperative: req.YearOperative,
		Marca:         req.Marca,
		Modelo:        req.Modelo,
		Dimension:     req.Dimension,
		Tipo:          req.Tipo,
	})
	if err != nil {
		HandleServiceError(w, r, err, createErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{
		Mensaje: "Camion creado exitosamente",
		ID:      id,
	})
}

// Update handles PUT /camion/{id}: the partial update. Only the submitted
// nonempty fields change; everything else is left untouched in storage.
func (h *TruckHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "ID de camión no válido")
		return
	}

	var req TruckUpdatePayload
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Formato de solicitud no válido")
		return
	}

	updated, err := h.trucks.PartialUpdate(r.Context(), id, domain.TruckUpdate{
		Color:         req.Color,
		Matricula:     req.Matricula,
		Conductor:     req.Conductor,
		YearOperative: req.YearOperative,
		Marca:         req.Marca,
		Modelo:        req.Modelo,
		Dimension:     req.Dimension,
		Tipo:          req.Tipo,
	})
	if err != nil {
		HandleServiceError(w, r, err, "")
		return
	}

	respondUpdateOutcome(w, r, updated)
}

// Replace handles PATCH /camion/{id}: the full replace. Mirrors Create's
// validation; all eight fields are mandatory. (The original service wired
// PUT and PATCH this way around; the asymmetry is part of the contract.)
func (h *TruckHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "ID de camión no válido")
		return
	}

	var req TruckPayload
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Formato de solicitud no válido")
		return
	}

	updated, err := h.trucks.FullReplace(r.Context(), id, domain.TruckFields{
		Color:         req.Color,
		Matricula:     req.Matricula,
		Conductor:     req.Conductor,
		YearOperative: req.YearOperative,
		Marca:         req.Marca,
		Modelo:        req.Modelo,
		Dimension:     req.Dimension,
		Tipo:          req.Tipo,
	})
	if err != nil {
		HandleServiceError(w, r, err, "")
		return
	}

	respondUpdateOutcome(w, r, updated)
}

// Delete handles DELETE /camion/{id}.
// Zero affected rows is reported as success with an explanatory mensaje.
func (h *TruckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "El parámetro id es obligatorio en la consulta")
		return
	}

	deleted, err := h.trucks.Delete(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err, "")
		return
	}

	if deleted {
		shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Mensaje: "Registro eliminado"})
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Mensaje: "Registro no encontrado"})
}

// respondUpdateOutcome writes the shared success shape of both update
// endpoints: zero affected rows stays a 200, deliberately not escalated.
func respondUpdateOutcome(w http.ResponseWriter, r *http.Request, updated bool) {
	if updated {
		shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Mensaje: "Camión actualizado exitosamente"})
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Mensaje: "Ningún camión actualizado"})
}

// createErrorMessage keeps the create endpoint's original wording for the
// incomplete-fields case.
func createErrorMessage(err error) string {
	if MapErrorToStatusCode(err) == http.StatusBadRequest {
		return "Dejaste campos sin llenar"
	}
	return ""
}
