package routes

import (
	_ "github.com/oggyb/twilio-bridge/internal/docs" // swagger docs
	"github.com/oggyb/twilio-bridge/internal/response"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerHandler "github.com/swaggo/http-swagger"
	"net/http"
)

type AppDeps struct {
	Home    HomeHandler
	Message MessageHandler
	Webhook WebhookHandler
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type MessageHandler interface {
	SendMessage(w http.ResponseWriter, r *http.Request)
	LookupNumber(w http.ResponseWriter, r *http.Request)
	LookupNumbers(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	InboundMessage(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	mux.HandleFunc("POST /messages", d.Message.SendMessage)
	mux.HandleFunc("GET /lookups/{number}", d.Message.LookupNumber)
	mux.HandleFunc("POST /lookups", d.Message.LookupNumbers)

	mux.HandleFunc("POST /webhooks/sms", d.Webhook.InboundMessage)

	mux.Handle("GET /metrics", promhttp.Handler())

	//Swagger
	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}
