package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/jaehyun-dev/stockfolio-be/internal/apperr"
	"github.com/jaehyun-dev/stockfolio-be/internal/http/respond"
)

// writeError maps the shared error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is logged and reported as a 500 without leaking
// internals.
func writeError(w http.ResponseWriter, log *logrus.Logger, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidArgument):
		respond.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrAccessDenied):
		respond.Error(w, http.StatusForbidden, "access denied")
	case errors.Is(err, apperr.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrAlreadyExists):
		respond.Error(w, http.StatusConflict, "already exists")
	case errors.Is(err, apperr.ErrStorageUnavailable):
		log.WithError(err).Error("storage unavailable")
		respond.Error(w, http.StatusServiceUnavailable, "storage unavailable")
	default:
		log.WithError(err).Error("unhandled error")
		respond.Error(w, http.StatusInternalServerError, "internal error")
	}
}

// pathID parses the {id} route variable.
func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Invalidf("invalid id %q", raw)
	}
	return id, nil
}
