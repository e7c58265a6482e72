package shipment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"loadhive/internal/entities"
	"loadhive/internal/service/matching"
	shipmentservice "loadhive/internal/service/shipment"
	"loadhive/pkg/logger"

	"github.com/IBM/sarama"
)

type Handler struct {
	shipmentService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, shipmentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		shipmentService:          shipmentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("shipment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance or consumer group shutdown
			h.log.Info("shipment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message. It returns true when ConsumeClaim must stop
// without committing the message, so it is redelivered.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("shipment.status.changed handler received bad message")
		EventsTotal.WithLabelValues(resultBadMessage).Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("shipment.status.changed processing")

	shipment, err := h.shipmentService.ProcessStatusChange(ctx, entities.ShipmentStatusEvent{
		ShipmentID: event.ShipmentID,
		Status:     entities.ShipmentStatusType(event.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler context cancelled, message will be reprocessed")
			EventsTotal.WithLabelValues(resultRedelivered).Inc()
			return true

		case errors.Is(err, shipmentservice.ErrInvalidEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler invalid event")
			EventsTotal.WithLabelValues(resultInvalid).Inc()

		case errors.Is(err, matching.ErrShipmentNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler unknown shipment")
			EventsTotal.WithLabelValues(resultNotFound).Inc()

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler failed to process shipment")
			EventsTotal.WithLabelValues(resultFailed).Inc()
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("shipment", shipment.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", shipment.Status.String()),
		logger.NewField("offset", message.Offset),
	).Info("shipment.status.changed: processed")
	EventsTotal.WithLabelValues(resultProcessed).Inc()

	sess.MarkMessage(message, "")
	return false
}
