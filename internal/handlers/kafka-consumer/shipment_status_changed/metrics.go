package shipment_status_changed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "loadhive",
		Subsystem: "kafka",
		Name:      "shipment_status_events_total",
		Help:      "shipment.status.changed messages by outcome",
	},
	[]string{"result"},
)

const (
	resultProcessed   = "processed"
	resultBadMessage  = "bad_message"
	resultInvalid     = "invalid"
	resultNotFound    = "not_found"
	resultFailed      = "failed"
	resultRedelivered = "redelivered"
)
