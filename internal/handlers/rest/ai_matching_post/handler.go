package ai_matching_post

import (
	"encoding/json"
	"fmt"
	"net/http"

	"loadhive/internal/entities"
	"loadhive/internal/generated/dto"
	"loadhive/internal/handlers/rest/reply"
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
	var req dto.AiMatchingRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		reply.Error(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	var matches []entities.Match
	switch req.Action {
	case dto.FindMatches:
		matches, err = h.service.FindMatches(r.Context(), req.ShipmentId)
	case dto.GetMatches:
		matches, err = h.service.GetMatches(r.Context(), req.ShipmentId)
	case dto.PreviewMatches:
		matches, err = h.service.PreviewMatches(r.Context(), req.ShipmentId)
	default:
		reply.Error(w, h.log, http.StatusBadRequest, fmt.Sprintf("Unknown action: %s", req.Action))
		return
	}
	if err != nil {
		reply.ServiceError(w, h.log, err)
		return
	}

	res, err := reply.Matches(matches)
	if err != nil {
		reply.ServiceError(w, h.log, err)
		return
	}

	if req.Action == dto.FindMatches {
		reply.JSON(w, h.log, http.StatusOK, dto.FindMatchesResponse{
			Matches: res,
			Count:   len(res),
		})
		return
	}

	reply.JSON(w, h.log, http.StatusOK, dto.MatchesResponse{Matches: res})
}
