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

// PortfolioHandler exposes the holdings tracker.
type PortfolioHandler struct {
	portfolios *service.PortfolioService
	log        *logrus.Logger
}

func NewPortfolioHandler(portfolios *service.PortfolioService, log *logrus.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolios: portfolios, log: log}
}

func (h *PortfolioHandler) Register(r *mux.Router) {
	r.HandleFunc("/portfolio", h.handleList).Methods(http.MethodGet)
	r.HandleFunc("/portfolio", h.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/portfolio/{id}", h.handleDelete).Methods(http.MethodDelete)
}

func (h *PortfolioHandler) handleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	list, err := h.portfolios.List(r.Context(), identity.ID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "portfolio", list)
}

func (h *PortfolioHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	var req dto.PortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	created, err := h.portfolios.Create(r.Context(), identity.ID, req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "position created", created)
}

func (h *PortfolioHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.portfolios.Delete(r.Context(), id, identity); err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "position deleted", nil)
}
