package api

import (
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/mux"
	"github.com/muzaffarov/splitbill/internal/config"
	"github.com/muzaffarov/splitbill/internal/session"
	"github.com/rs/cors"
)

// API is the HTTP surface the webapp talks to: it normalizes bill payloads
// into settlement text and posts finished settlements back into channels.
type API struct {
	router  *mux.Router
	manager *session.Manager
	sender  channelSender
	config  *config.Config
}

// Minimal session interface for posting channel messages.
type channelSender interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

func New(cfg *config.Config, manager *session.Manager, sender channelSender) *API {
	api := &API{
		router:  mux.NewRouter(),
		manager: manager,
		sender:  sender,
		config:  cfg,
	}

	api.setupRoutes()
	return api
}

func (a *API) setupRoutes() {
	a.router.HandleFunc("/api/health", a.handleHealth).Methods("GET")
	a.router.HandleFunc("/api/calc", a.handleCalc).Methods("POST")
	a.router.HandleFunc("/api/webapp/{token}/send", a.handleWebAppSend).Methods("POST")
}

func (a *API) Start() error {
	// The webapp page is served from a separate static origin, so CORS stays
	// wide open. With a wildcard origin, credentials must remain disabled.
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
	}

	handler := cors.New(corsOptions).Handler(a.router)

	log.Printf("API server listening on http://%s", a.config.WebBind)
	return http.ListenAndServe(a.config.WebBind, handler)
}
