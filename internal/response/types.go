package response

import (
	"github.com/oggyb/twilio-bridge/internal/service"
	"github.com/oggyb/twilio-bridge/internal/sms"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status string `json:"status"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

// SendMessagePayload reports how Twilio answered a send.
type SendMessagePayload struct {
	Accepted       bool   `json:"accepted"`
	SID            string `json:"sid,omitempty"`
	ProviderStatus int    `json:"providerStatus"`
	Raw            string `json:"raw"`
}

type SendMessageResponse struct {
	Success   bool               `json:"success"`
	Data      SendMessagePayload `json:"data"`
	Timestamp string             `json:"timestamp"`
}

// CarrierDTO is the public-facing carrier block.
type CarrierDTO struct {
	Name              string `json:"name"`
	Type              string `json:"type"`
	MobileCountryCode string `json:"mobileCountryCode,omitempty"`
	MobileNetworkCode string `json:"mobileNetworkCode,omitempty"`
}

// LookupDTO is a public-facing representation of a lookup result. It
// decouples our API from Twilio's snake_case wire format.
type LookupDTO struct {
	PhoneNumber    string     `json:"phoneNumber"`
	CountryCode    string     `json:"countryCode"`
	NationalFormat string     `json:"nationalFormat"`
	Carrier        CarrierDTO `json:"carrier"`
}

type LookupResponse struct {
	Success   bool      `json:"success"`
	Data      LookupDTO `json:"data"`
	Timestamp string    `json:"timestamp"`
}

// LookupItemDTO is one entry of a batch lookup.
type LookupItemDTO struct {
	Number string     `json:"number"`
	Found  bool       `json:"found"`
	Result *LookupDTO `json:"result,omitempty"`
	Error  string     `json:"error,omitempty"`
}

type LookupBatchPayload struct {
	Items []LookupItemDTO `json:"items"`
}

type LookupBatchResponse struct {
	Success   bool               `json:"success"`
	Data      LookupBatchPayload `json:"data"`
	Timestamp string             `json:"timestamp"`
}

// FromLookup converts a provider lookup reply into its DTO.
func FromLookup(r *sms.LookupResponse) LookupDTO {
	dto := LookupDTO{
		PhoneNumber:    r.PhoneNumber,
		CountryCode:    r.CountryCode,
		NationalFormat: r.NationalFormat,
	}
	if r.Carrier != nil {
		dto.Carrier = CarrierDTO{
			Name:              r.Carrier.Name,
			Type:              string(r.Carrier.Type),
			MobileCountryCode: r.Carrier.MobileCountryCode,
			MobileNetworkCode: r.Carrier.MobileNetworkCode,
		}
	}
	return dto
}

// FromLookupResults converts batch results for use in HTTP responses.
func FromLookupResults(results []service.LookupResult) []LookupItemDTO {
	out := make([]LookupItemDTO, len(results))
	for i, r := range results {
		out[i] = LookupItemDTO{Number: r.Number}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
			continue
		}
		dto := FromLookup(r.Result)
		out[i].Found = true
		out[i].Result = &dto
	}
	return out
}
