package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jaehyun-dev/stockfolio-be/internal/http/respond"
	"github.com/jaehyun-dev/stockfolio-be/internal/menu"
	"github.com/jaehyun-dev/stockfolio-be/internal/middleware"
	"github.com/jaehyun-dev/stockfolio-be/internal/models/dto"
	"github.com/jaehyun-dev/stockfolio-be/internal/storage"
)

// DashboardHandler serves the landing-page payload: the caller's account
// plus the navigation menus their roles can see.
type DashboardHandler struct {
	users storage.UserStore
	menus *menu.Resolver
	log   *logrus.Logger
}

func NewDashboardHandler(users storage.UserStore, menus *menu.Resolver, log *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{users: users, menus: menus, log: log}
}

func (h *DashboardHandler) Register(r *mux.Router) {
	r.HandleFunc("/dashboard", h.handleDashboard).Methods(http.MethodGet)
}

func (h *DashboardHandler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	user, err := h.users.FindByID(r.Context(), identity.ID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	menus, err := h.menus.MenusFor(r.Context(), user.Roles)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	respond.JSON(w, http.StatusOK, "dashboard", dto.DashboardResponse{
		User:    user,
		Menus:   menus,
		IsAdmin: user.IsAdmin(),
	})
}
