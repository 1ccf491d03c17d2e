package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/muzaffarov/splitbill/internal/payload"
)

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// handleCalc renders a webapp payload into settlement text without touching
// any session. The id in the response is for client-side correlation only.
func (a *API) handleCalc(w http.ResponseWriter, r *http.Request) {
	text, ok := a.renderPayload(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"id":   uuid.NewString(),
		"text": text,
	})
}

// handleWebAppSend resolves a capability token issued by the webapp command
// and posts the rendered settlement into the channel the token was bound to.
func (a *API) handleWebAppSend(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	channelID, ok := a.manager.ResolveWebToken(vars["token"])
	if !ok {
		http.Error(w, "unknown token", http.StatusNotFound)
		return
	}

	text, ok := a.renderPayload(w, r)
	if !ok {
		return
	}

	if _, err := a.sender.ChannelMessageSend(channelID, text); err != nil {
		http.Error(w, "failed to post to channel", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "sent",
	})
}

// Helper functions
func (a *API) renderPayload(w http.ResponseWriter, r *http.Request) (string, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return "", false
	}

	p, err := payload.Decode(body)
	if err != nil {
		http.Error(w, err.Error(), payloadStatus(err))
		return "", false
	}

	text, err := p.Render()
	if err != nil {
		http.Error(w, err.Error(), payloadStatus(err))
		return "", false
	}

	return text, true
}

// payloadStatus maps undecodable bodies to 400 and bodies that decoded but
// miss required fields to 422.
func payloadStatus(err error) int {
	if errors.Is(err, payload.ErrMalformedPayload) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}
