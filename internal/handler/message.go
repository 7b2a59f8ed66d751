package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/oggyb/twilio-bridge/internal/request"
	"github.com/oggyb/twilio-bridge/internal/response"
	"github.com/oggyb/twilio-bridge/internal/service"
	"github.com/oggyb/twilio-bridge/internal/sms"
)

// MessageHandler wires HTTP endpoints to the messaging service.
type MessageHandler struct {
	msgSvc   service.MessagingService
	validate *validator.Validate
}

// NewMessageHandler constructs a new MessageHandler with its dependencies.
func NewMessageHandler(msgSvc service.MessagingService, validate *validator.Validate) *MessageHandler {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}
	return &MessageHandler{
		msgSvc:   msgSvc,
		validate: validate,
	}
}

// SendMessage godoc
// @Summary     Send an SMS
// @Description Hands the message to Twilio and reports how Twilio answered.
// @Tags        messages
// @Accept      json
// @Produce     json
// @Param       request body request.SendMessageRequest true "Message to send"
// @Success     200 {object} response.SendMessageResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     502 {object} response.JSONResponse
// @Router      /messages [post]
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req request.SendMessageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.RespondValidationError(w, err)
		return
	}

	msg, err := sms.NewOutgoingSMS(req.From, req.To, req.Body, req.MediaURLs...)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	msg.StatusCallback = req.StatusCallback

	res, err := h.msgSvc.Send(r.Context(), msg)
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	payload := response.SendMessagePayload{
		Accepted:       res.Accepted,
		SID:            res.SID,
		ProviderStatus: res.StatusCode,
		Raw:            res.Raw,
	}

	status := http.StatusOK
	if !res.Accepted {
		status = http.StatusBadGateway
	}
	response.RespondJSON(w, status, payload)
}

// LookupNumber godoc
// @Summary     Carrier lookup
// @Description Returns carrier metadata for a phone number.
// @Tags        lookups
// @Produce     json
// @Param       number path string true "Phone number (E.164)"
// @Success     200 {object} response.LookupResponse
// @Failure     404 {object} response.JSONResponse
// @Failure     502 {object} response.JSONResponse
// @Router      /lookups/{number} [get]
func (h *MessageHandler) LookupNumber(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")
	if sms.NormalizeNumber(number) == "" {
		response.RespondError(w, http.StatusBadRequest, "number is required")
		return
	}

	res, err := h.msgSvc.Lookup(r.Context(), number)
	if err != nil {
		var nf *sms.NotFoundError
		if errors.As(err, &nf) {
			response.RespondError(w, http.StatusNotFound, nf.Error())
			return
		}
		response.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, response.FromLookup(res))
}

// LookupNumbers godoc
// @Summary     Batch carrier lookup
// @Description Looks up several numbers concurrently. Failures are reported per item.
// @Tags        lookups
// @Accept      json
// @Produce     json
// @Param       request body request.LookupBatchRequest true "Numbers to look up"
// @Success     200 {object} response.LookupBatchResponse
// @Failure     400 {object} response.JSONResponse
// @Router      /lookups [post]
func (h *MessageHandler) LookupNumbers(w http.ResponseWriter, r *http.Request) {
	var req request.LookupBatchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.RespondValidationError(w, err)
		return
	}

	results, err := h.msgSvc.LookupMany(r.Context(), req.Numbers)
	if err != nil {
		response.RespondError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	payload := response.LookupBatchPayload{
		Items: response.FromLookupResults(results),
	}
	response.RespondJSON(w, http.StatusOK, payload)
}
