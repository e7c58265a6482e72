package ping_get

import (
	"net/http"

	"loadhive/internal/generated/dto"
	"loadhive/internal/handlers/rest/reply"
)

var pong = "pong"

// Handler answers liveness probes. It never touches dependencies, see healthcheck_head for readiness.
type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	reply.JSON(w, h.log, http.StatusOK, dto.PingResponse{Message: &pong})
}
