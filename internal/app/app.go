package app

import (
	"time"

	"loadhive/internal/handlers/rest/ai_matching_post"
	"loadhive/internal/handlers/rest/match_contact_post"
	"loadhive/internal/handlers/rest/match_view_post"
	"loadhive/internal/handlers/rest/matches_get"
	"loadhive/internal/handlers/rest/matches_post"
	"loadhive/internal/handlers/rest/matches_preview_get"
	shipmentService "loadhive/internal/service/shipment"
	"loadhive/pkg/background"
)

type (
	ExpiryInterval time.Duration
)

type Application struct {
	ServiceMatching   ServiceMatching
	BackgroundWorkers *background.Worker
}

type ServiceMatching interface {
	ai_matching_post.Service
	matches_post.Service
	matches_get.Service
	matches_preview_get.Service
	match_view_post.Service
	match_contact_post.Service
}

type KafkaWorkerApp struct {
	ShipmentService *shipmentService.Service
}
