package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jaehyun-dev/stockfolio-be/internal/http/respond"
	"github.com/jaehyun-dev/stockfolio-be/internal/middleware"
	"github.com/jaehyun-dev/stockfolio-be/internal/models/dto"
	"github.com/jaehyun-dev/stockfolio-be/internal/service"
)

// HistoryHandler exposes the average-cost calculator and its audit log.
type HistoryHandler struct {
	calculations *service.CalculationService
	log          *logrus.Logger
}

func NewHistoryHandler(calculations *service.CalculationService, log *logrus.Logger) *HistoryHandler {
	return &HistoryHandler{calculations: calculations, log: log}
}

func (h *HistoryHandler) Register(r *mux.Router) {
	r.HandleFunc("/calculations", h.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/calculations", h.handleList).Methods(http.MethodGet)
	r.HandleFunc("/calculations/{id}", h.handleDelete).Methods(http.MethodDelete)
}

func (h *HistoryHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	var req dto.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	record, err := h.calculations.Create(r.Context(), identity.ID, req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "calculation saved", record)
}

func (h *HistoryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	records, err := h.calculations.List(r.Context(), identity.ID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "calculation history", records)
}

func (h *HistoryHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.calculations.Delete(r.Context(), id, identity); err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "calculation deleted", nil)
}
