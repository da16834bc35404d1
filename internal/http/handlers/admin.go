package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jaehyun-dev/stockfolio-be/internal/http/respond"
	"github.com/jaehyun-dev/stockfolio-be/internal/models/dto"
	"github.com/jaehyun-dev/stockfolio-be/internal/service"
)

// AdminHandler exposes the user, role, and menu management screens. Routes
// are registered on a subrouter already gated by the admin middleware.
type AdminHandler struct {
	admin *service.AdminService
	log   *logrus.Logger
}

func NewAdminHandler(admin *service.AdminService, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, log: log}
}

func (h *AdminHandler) Register(r *mux.Router) {
	r.HandleFunc("/users", h.handleListUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}/toggle", h.handleToggleUser).Methods(http.MethodPut)
	r.HandleFunc("/users/{id}", h.handleDeleteUser).Methods(http.MethodDelete)

	r.HandleFunc("/roles", h.handleListRoles).Methods(http.MethodGet)
	r.HandleFunc("/roles", h.handleCreateRole).Methods(http.MethodPost)
	r.HandleFunc("/roles/{id}", h.handleDeleteRole).Methods(http.MethodDelete)

	r.HandleFunc("/menus", h.handleListMenus).Methods(http.MethodGet)
	r.HandleFunc("/menus", h.handleCreateMenu).Methods(http.MethodPost)
	r.HandleFunc("/menus/{id}/toggle", h.handleToggleMenu).Methods(http.MethodPut)
	r.HandleFunc("/menus/{id}", h.handleDeleteMenu).Methods(http.MethodDelete)
}

func (h *AdminHandler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.ListUsers(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "users", users)
}

func (h *AdminHandler) handleToggleUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	user, err := h.admin.ToggleUserEnabled(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "user updated", user)
}

func (h *AdminHandler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.admin.DeleteUser(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "user deleted", nil)
}

func (h *AdminHandler) handleListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.admin.ListRoles(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "roles", roles)
}

func (h *AdminHandler) handleCreateRole(w http.ResponseWriter, r *http.Request) {
	var req dto.RoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	role, err := h.admin.CreateRole(r.Context(), req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "role created", role)
}

func (h *AdminHandler) handleDeleteRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.admin.DeleteRole(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "role deleted", nil)
}

func (h *AdminHandler) handleListMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.admin.ListMenus(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "menus", menus)
}

func (h *AdminHandler) handleCreateMenu(w http.ResponseWriter, r *http.Request) {
	var req dto.MenuRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	created, err := h.admin.CreateMenu(r.Context(), req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusCreated, "menu created", created)
}

func (h *AdminHandler) handleToggleMenu(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	updated, err := h.admin.ToggleMenuVisible(r.Context(), id)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "menu updated", updated)
}

func (h *AdminHandler) handleDeleteMenu(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.admin.DeleteMenu(r.Context(), id); err != nil {
		writeError(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, "menu deleted", nil)
}
