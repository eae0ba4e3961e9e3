package category

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Input is a per-category input value. Implemented by Text, LinkedInInput,
// PayPalInput, EventInput, WiFiInput and GeoInput only.
type Input interface {
	fields() []field
}

type field struct {
	name  string
	value string
}

// Text is the input of single-value categories
type Text string

// LinkedInInput is the input of the linkedin category
type LinkedInInput struct {
	Username string `json:"username"`
	Type     string `json:"type"` // "profile" or "company"
}

// PayPalInput is the input of the paypal category
type PayPalInput struct {
	Username string `json:"username"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// EventInput is the input of the calendar event category, start and end are ISO-8601 timestamps
type EventInput struct {
	Title    string `json:"title"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location"`
}

// WiFiInput is the input of the wifi category
type WiFiInput struct {
	SSID     string `json:"ssid"`
	Type     string `json:"type"`
	Password string `json:"password"`
}

// GeoInput is the input of the geo location category
type GeoInput struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// linkedin profile types
const (
	LinkedInProfile = "profile"
	LinkedInCompany = "company"
)

// DefaultCurrency is preselected for paypal inputs
const DefaultCurrency = "GBP"

func (t Text) fields() []field { return []field{{name: "", value: string(t)}} }

func (in LinkedInInput) fields() []field {
	return []field{{"username", in.Username}, {"type", in.Type}}
}

func (in PayPalInput) fields() []field {
	return []field{{"username", in.Username}, {"amount", in.Amount}, {"currency", in.Currency}}
}

func (in EventInput) fields() []field {
	return []field{{"title", in.Title}, {"start", in.Start}, {"end", in.End}, {"location", in.Location}}
}

func (in WiFiInput) fields() []field {
	return []field{{"ssid", in.SSID}, {"type", in.Type}, {"password", in.Password}}
}

func (in GeoInput) fields() []field {
	return []field{{"lat", in.Lat}, {"lon", in.Lon}}
}

// Default returns the blank input of the category, nil for unknown ids
func Default(id ID) Input {
	switch id {
	case URL, Email, Phone, XProfile, Instagram, TikTok, Telegram, Bitcoin:
		return Text("")
	case LinkedIn:
		return LinkedInInput{Type: LinkedInProfile}
	case PayPal:
		return PayPalInput{Currency: DefaultCurrency}
	case Event:
		return EventInput{}
	case WiFi:
		return WiFiInput{}
	case Geo:
		return GeoInput{}
	default:
		return nil
	}
}

// IsBlank reports whether the input has no non-blank value.
// A record is blank only when all of its fields are blank.
func IsBlank(in Input) bool {
	if in == nil {
		return true
	}
	for _, f := range in.fields() {
		if strings.TrimSpace(f.value) != "" {
			return false
		}
	}
	return true
}

// DecodeInput decodes JSON input for the category. Records are decoded on top of
// the category default, so omitted fields keep their default values.
func DecodeInput(id ID, data []byte) (Input, error) {
	def := Default(id)
	if def == nil {
		return nil, fmt.Errorf("decode %q: %w", id, ErrUnknownCategory)
	}
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return def, nil
	}

	var err error
	switch v := def.(type) {
	case Text:
		err = json.Unmarshal(data, &v)
		def = v
	case LinkedInInput:
		err = json.Unmarshal(data, &v)
		def = v
	case PayPalInput:
		err = json.Unmarshal(data, &v)
		def = v
	case EventInput:
		err = json.Unmarshal(data, &v)
		def = v
	case WiFiInput:
		err = json.Unmarshal(data, &v)
		def = v
	case GeoInput:
		err = json.Unmarshal(data, &v)
		def = v
	}
	if err != nil {
		return nil, fmt.Errorf("decode %q input: %w", id, err)
	}
	return def, nil
}

// Matches reports whether the input variant is the one the category expects
func Matches(id ID, in Input) bool {
	var ok bool
	switch Default(id).(type) {
	case Text:
		_, ok = in.(Text)
	case LinkedInInput:
		_, ok = in.(LinkedInInput)
	case PayPalInput:
		_, ok = in.(PayPalInput)
	case EventInput:
		_, ok = in.(EventInput)
	case WiFiInput:
		_, ok = in.(WiFiInput)
	case GeoInput:
		_, ok = in.(GeoInput)
	}
	return ok
}
