// Package validate checks category inputs before a QR payload is generated.
// Validation is the only gatekeeper, formatting assumes valid input.
package validate

import (
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/umputun/quickqr/pkg/btcaddr"
	"github.com/umputun/quickqr/pkg/category"
)

//go:generate moq -out mocks/address_checker.go -pkg mocks -skip-ensure -fmt goimports . AddressChecker

// Verdict is the result of validating one input against one category's rules
type Verdict struct {
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// AddressChecker validates bitcoin addresses and reports their network
type AddressChecker interface {
	Check(addr string) btcaddr.Result
}

// Validator applies per-category rules
type Validator struct {
	addresses AddressChecker
}

// error and info messages
const (
	errEmpty      = "Input cannot be empty"
	errShape      = "Input does not match category"
	errURL        = "Invalid URL (e.g., example.com or https://example.com)"
	errEmail      = "Invalid email address"
	errPhoneEmpty = "Phone number is required"
	errPhone      = "Invalid phone number (e.g., +1234567890)"
	errUsername   = "Invalid username (3+ characters, letters, numbers, underscores, hyphens only)"
	errPayPalUser = "Invalid PayPal username"
	errAmount     = "Invalid amount (e.g., 10.99)"
	errCurrency   = "Invalid currency"
	errBitcoin    = "Invalid Bitcoin address"
	errTitle      = "Title is required, max 100 characters"
	errStart      = "Invalid start date-time"
	errEnd        = "Invalid end date-time"
	errLocation   = "Location max 200 characters"
	errSSID       = "Invalid SSID (max 32 characters, no semicolons)"
	errWiFiType   = "Invalid type (WPA, WEP, or none)"
	errWiFiPass   = "Password required for WPA/WEP"
	errWiFiLen    = "Password max 64 characters"
	errLatitude   = "Invalid latitude (-90 to 90)"
	errLongitude  = "Invalid longitude (-180 to 180)"

	msgPhone  = "Phone dial link will be generated"
	msgPayPal = "PayPal payment link will be generated"
	msgEvent  = "Calendar event will be generated"
	msgWiFi   = "WiFi connection link will be generated"
	msgGeo    = "Geo location link will be generated"
)

// limits
const (
	maxTitleLen    = 100
	maxLocationLen = 200
	maxSSIDLen     = 32
	maxPasswordLen = 64
)

// Currencies accepted for paypal payment links
var Currencies = []string{"USD", "EUR", "GBP", "AUD", "CAD", "JPY"}

// WiFiTypes accepted as wifi security type, empty means open network
var WiFiTypes = []string{"WPA", "WEP"}

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	handleRe   = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,}$`)
	paypalRe   = regexp.MustCompile(`^[a-zA-Z0-9_]{1,50}$`)
	amountRe   = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	btcShapeRe = regexp.MustCompile(`^[13][a-km-zA-HJ-NP-Z1-9]{25,34}$|^bc1[a-zA-HJ-NP-Z0-9]{39,59}$`)
	isoTimeRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}.*Z$`)
	coordRe    = regexp.MustCompile(`^-?\d{1,3}\.\d+$`)
)

// New makes a validator with the given bitcoin address checker
func New(addresses AddressChecker) *Validator {
	return &Validator{addresses: addresses}
}

// Validate checks input against the rules of the category. With enabled=false every input
// is valid and no message is reported. Unknown categories are always valid.
func (v *Validator) Validate(in category.Input, id category.ID, enabled bool) Verdict {
	if !enabled {
		return valid("")
	}
	if category.IsBlank(in) {
		return invalid(errEmpty)
	}
	if _, known := category.Get(id); known && !category.Matches(id, in) {
		return invalid(errShape)
	}

	switch in := in.(type) {
	case category.Text:
		return v.validateText(id, string(in))
	case category.LinkedInInput:
		return validateHandle(in.Username)
	case category.PayPalInput:
		return validatePayPal(in)
	case category.EventInput:
		return validateEvent(in)
	case category.WiFiInput:
		return validateWiFi(in)
	case category.GeoInput:
		return validateGeo(in)
	}
	return valid("")
}

func (v *Validator) validateText(id category.ID, s string) Verdict {
	switch id {
	case category.URL:
		return validateURL(s)
	case category.Email:
		if !emailRe.MatchString(s) {
			return invalid(errEmail)
		}
		return valid("")
	case category.Phone:
		if s == "" {
			return invalid(errPhoneEmpty)
		}
		if !phoneRe.MatchString(s) {
			return invalid(errPhone)
		}
		return valid(msgPhone)
	case category.Bitcoin:
		return v.validateBitcoin(s)
	}
	if category.IsSocial(id) {
		return validateHandle(s)
	}
	return valid("")
}

// hierarchical schemes must have a host
var hostSchemes = []string{"http", "https", "ftp", "ws", "wss"}

func validateURL(s string) Verdict {
	u, err := url.Parse(category.WithScheme(s))
	if err != nil || u.Scheme == "" {
		return invalid(errURL)
	}
	if slices.Contains(hostSchemes, strings.ToLower(u.Scheme)) && u.Host == "" {
		return invalid(errURL)
	}
	return valid("")
}

func validateHandle(s string) Verdict {
	if !handleRe.MatchString(category.Handle(s)) {
		return invalid(errUsername)
	}
	return valid("")
}

func validatePayPal(in category.PayPalInput) Verdict {
	if in.Username == "" || !paypalRe.MatchString(category.Handle(in.Username)) {
		return invalid(errPayPalUser)
	}
	if in.Amount == "" || !amountRe.MatchString(in.Amount) {
		return invalid(errAmount)
	}
	if amount, err := strconv.ParseFloat(in.Amount, 64); err != nil || amount <= 0 {
		return invalid(errAmount)
	}
	if !slices.Contains(Currencies, in.Currency) {
		return invalid(errCurrency)
	}
	return valid(msgPayPal)
}

func validateEvent(in category.EventInput) Verdict {
	if in.Title == "" || utf8.RuneCountInString(in.Title) > maxTitleLen {
		return invalid(errTitle)
	}
	if !isoTimeRe.MatchString(in.Start) {
		return invalid(errStart)
	}
	if !isoTimeRe.MatchString(in.End) {
		return invalid(errEnd)
	}
	if utf8.RuneCountInString(in.Location) > maxLocationLen {
		return invalid(errLocation)
	}
	return valid(msgEvent)
}

func validateWiFi(in category.WiFiInput) Verdict {
	if in.SSID == "" || utf8.RuneCountInString(in.SSID) > maxSSIDLen || strings.Contains(in.SSID, ";") {
		return invalid(errSSID)
	}
	if in.Type != "" && !slices.Contains(WiFiTypes, in.Type) {
		return invalid(errWiFiType)
	}
	if in.Type != "" && in.Password == "" {
		return invalid(errWiFiPass)
	}
	if utf8.RuneCountInString(in.Password) > maxPasswordLen {
		return invalid(errWiFiLen)
	}
	return valid(msgWiFi)
}

func validateGeo(in category.GeoInput) Verdict {
	if !inRange(in.Lat, 90) {
		return invalid(errLatitude)
	}
	if !inRange(in.Lon, 180) {
		return invalid(errLongitude)
	}
	return valid(msgGeo)
}

// inRange checks decimal coordinate is within [-limit, limit]
func inRange(s string, limit float64) bool {
	if !coordRe.MatchString(s) {
		return false
	}
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && f >= -limit && f <= limit
}

func valid(msg string) Verdict {
	return Verdict{IsValid: true, Message: msg}
}

func invalid(reason string) Verdict {
	return Verdict{IsValid: false, Error: reason}
}
