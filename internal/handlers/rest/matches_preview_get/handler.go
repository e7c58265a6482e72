package matches_preview_get

import (
	"net/http"

	"loadhive/internal/generated/dto"
	"loadhive/internal/handlers/rest/reply"

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
	matches, err := h.service.PreviewMatches(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		reply.ServiceError(w, h.log, err)
		return
	}

	res, err := reply.Matches(matches)
	if err != nil {
		reply.ServiceError(w, h.log, err)
		return
	}

	reply.JSON(w, h.log, http.StatusOK, dto.MatchesResponse{Matches: res})
}
