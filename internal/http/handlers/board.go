package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jaehyun-dev/stockfolio-be/internal/http/respond"
	"github.com/jaehyun-dev/stockfolio-be/internal/middleware"
	"github.com/jaehyun-dev/stockfolio-be/internal/models/dto"
	"github.com/jaehyun-dev/stockfolio-be/internal/service"
)

// BoardHandler exposes the discussion board.
type BoardHandler struct {
	board *service.BoardService
	log   *logrus.Logger
}

func NewBoardHandler(board *service.BoardService, log *logrus.Logger) *BoardHandler {
	return &BoardHandler{board: board, log: log}
}

func (h *BoardHandler) Register(r *mux.Router) {
	r.HandleFunc("/board", h.handleList).Methods(http.MethodGet)
	r.HandleFunc("/board", h.handleCreate).Methods(http.MethodPost)
	r.HandleFunc("/board/{id}", h.handleView).Methods(http.MethodGet)
	r.HandleFunc("/board/{id}", h.handleUpdate).Methods(http.MethodPut)
	r.HandleFunc("/board/{id}", h.handleDelete).Methods(http.MethodDelete)
}

func (h *BoardHandler) handleList(w http.ResponseWriter, r *http.Request) {
	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}
	result, err := h.board.List(r.Context(), page)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "posts", result)
}

func (h *BoardHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}
	var req dto.BoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	post, err := h.board.Create(r.Context(), identity, req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "post created", post)
}

// handleView returns one post and counts the view.
func (h *BoardHandler) handleView(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	post, err := h.board.View(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "post", post)
}

func (h *BoardHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
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
	var req dto.BoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	post, err := h.board.Update(r.Context(), id, req, identity)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "post updated", post)
}

func (h *BoardHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.board.Delete(r.Context(), id, identity); err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "post deleted", nil)
}
