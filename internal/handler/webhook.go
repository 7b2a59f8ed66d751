package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/oggyb/twilio-bridge/internal/service"
	"github.com/oggyb/twilio-bridge/internal/sms"
)

// WebhookHandler answers Twilio's inbound-message callbacks.
type WebhookHandler struct {
	msgSvc service.MessagingService
}

// NewWebhookHandler constructs a new WebhookHandler.
func NewWebhookHandler(msgSvc service.MessagingService) *WebhookHandler {
	return &WebhookHandler{msgSvc: msgSvc}
}

// InboundMessage godoc
// @Summary     Inbound SMS webhook
// @Description Twilio posts inbound messages here; the reply is TwiML.
// @Tags        webhooks
// @Accept      x-www-form-urlencoded
// @Produce     xml
// @Param       From formData string true  "Sender"
// @Param       To   formData string true  "Recipient"
// @Param       Body formData string false "Message text"
// @Success     200 {string} string "TwiML document"
// @Failure     400 {string} string
// @Router      /webhooks/sms [post]
func (h *WebhookHandler) InboundMessage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "400 Bad Request: Parsing form failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	in := service.InboundMessage{
		From:      r.PostForm.Get("From"),
		To:        r.PostForm.Get("To"),
		Body:      r.PostForm.Get("Body"),
		MediaURLs: getMediaURLs(r.PostForm),
	}

	h.msgSvc.Reply(r.Context(), in).ServeHTTP(w, r)
}

func getMediaURLs(form url.Values) []string {
	numMedia, err := strconv.Atoi(form.Get("NumMedia"))
	if err != nil || numMedia <= 0 {
		return nil
	}
	if numMedia > sms.MaxMediaURLs {
		numMedia = sms.MaxMediaURLs
	}

	mediaURLs := make([]string, numMedia)
	for i := range mediaURLs {
		mediaURLs[i] = form.Get("MediaUrl" + strconv.Itoa(i))
	}
	return mediaURLs
}
