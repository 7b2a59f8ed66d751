package request

// SendMessageRequest is the JSON body for POST /messages.
type SendMessageRequest struct {
	From      string   `json:"from" validate:"required,e164"`
	To        string   `json:"to" validate:"required,e164"`
	Body      string   `json:"body" validate:"required_without=MediaURLs,max=1600"`
	MediaURLs []string `json:"mediaUrls,omitempty" validate:"max=10,dive,url"`
	// StatusCallback is an optional URL Twilio posts delivery updates to.
	StatusCallback string `json:"statusCallback,omitempty" validate:"omitempty,url"`
}

// LookupBatchRequest is the JSON body for POST /lookups.
type LookupBatchRequest struct {
	Numbers []string `json:"numbers" validate:"required,min=1,max=100,dive,required"`
}
