package match_contact_post

import (
	"net/http"

	"loadhive/internal/handlers/rest/reply"
	"loadhive/internal/pkg/middlewares/auth"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		reply.Error(w, h.log, http.StatusUnauthorized, "Unauthorized")
		return
	}

	match, err := h.service.MarkContacted(r.Context(), caller, mux.Vars(r)["id"])
	if err != nil {
		reply.ServiceError(w, h.log, err)
		return
	}

	res, err := reply.Match(*match)
	if err != nil {
		reply.ServiceError(w, h.log, err)
		return
	}

	reply.JSON(w, h.log, http.StatusOK, res)
}
