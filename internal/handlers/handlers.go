// Package handlers is the HTTP front-end: a single fastglue route that
// decodes an inbound turn and hands it to the engine. The engine itself
// never depends on this package; any telephony or chat gateway can drive
// Controller.Navigate directly.
package handlers

import (
	"errors"

	"github.com/valyala/fasthttp"
	"github.com/zerodha/fastglue"
	"github.com/zerodha/logf"

	"github.com/shridarpatil/dialogengine/internal/engine"
	"github.com/shridarpatil/dialogengine/internal/models"
)

// errEnvelopeSent marks that the handler already wrote a fastglue error
// envelope; callers just need to stop processing.
var errEnvelopeSent = errors.New("envelope already sent")

// App holds the dependencies the /navigate route needs.
type App struct {
	Controller *engine.Controller
	Log        logf.Logger
}

// NavigateRequest is the inbound turn.
type NavigateRequest struct {
	MSISDN     string `json:"msisdn" validate:"required"`
	SessionID  string `json:"session_id" validate:"required"`
	USSDString string `json:"ussd_string"`
	Channel    string `json:"channel"`
}

func (a *App) decodeRequest(r *fastglue.Request, v interface{}) error {
	if err := r.Decode(v, "json"); err != nil {
		_ = r.SendErrorEnvelope(fasthttp.StatusBadRequest, "invalid request body", nil, "")
		return errEnvelopeSent
	}
	return nil
}

// Navigate handles POST /navigate: decode the turn, run it through the
// engine, and return the rendered response body.
func (a *App) Navigate(r *fastglue.Request) error {
	var req NavigateRequest
	if err := a.decodeRequest(r, &req); err != nil {
		return nil
	}
	if req.MSISDN == "" || req.SessionID == "" {
		return r.SendErrorEnvelope(fasthttp.StatusBadRequest, "msisdn and session_id are required", nil, "")
	}

	channel := models.Channel(req.Channel)
	if channel == "" {
		channel = models.ChannelUSSD
	}

	resp, err := a.Controller.Navigate(r.RequestCtx, models.Turn{
		MSISDN:     req.MSISDN,
		SessionID:  req.SessionID,
		USSDString: req.USSDString,
		Channel:    channel,
	})
	if err != nil {
		a.Log.Error("navigate failed", "msisdn", req.MSISDN, "session_id", req.SessionID, "error", err)
		return r.SendErrorEnvelope(fasthttp.StatusInternalServerError, "navigate failed", nil, "")
	}

	return r.SendEnvelope(map[string]interface{}{
		"response": resp,
	})
}
