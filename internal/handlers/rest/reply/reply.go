package reply

import (
	"encoding/json"
	"errors"
	"net/http"

	"loadhive/internal/generated/dto"
	"loadhive/internal/service/matching"
	"loadhive/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func Error(w http.ResponseWriter, log errorLogger, status int, message string) {
	JSON(w, log, status, dto.ErrorResponse{Error: message})
}

// ServiceError maps matching errors to a status code. Unknown errors are 500 with
// the underlying message.
func ServiceError(w http.ResponseWriter, log errorLogger, err error) {
	switch {
	case errors.Is(err, matching.ErrShipmentNotFound),
		errors.Is(err, matching.ErrInvalidShipmentID):
		Error(w, log, http.StatusNotFound, "Shipment not found")
	case errors.Is(err, matching.ErrMatchNotFound),
		errors.Is(err, matching.ErrInvalidMatchID):
		Error(w, log, http.StatusNotFound, "Match not found")
	case errors.Is(err, matching.ErrInvalidShipment),
		errors.Is(err, matching.ErrOriginUnresolved):
		Error(w, log, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, matching.ErrForbidden):
		Error(w, log, http.StatusForbidden, "Forbidden")
	case errors.Is(err, matching.ErrInvalidTransition):
		Error(w, log, http.StatusConflict, err.Error())
	default:
		log.Error("request failed", logger.NewField("error", err))
		Error(w, log, http.StatusInternalServerError, err.Error())
	}
}
