// Package category defines the static registry of QR content categories,
// their input shapes and the payload formatting rules.
package category

import (
	"errors"
)

// ID is a stable category key
type ID string

// category identifiers, in registry order
const (
	URL       ID = "url"
	Email     ID = "email"
	Phone     ID = "phone"
	XProfile  ID = "x_profile"
	Instagram ID = "instagram"
	TikTok    ID = "tiktok"
	Telegram  ID = "telegram"
	LinkedIn  ID = "linkedin"
	PayPal    ID = "paypal"
	Bitcoin   ID = "bitcoin"
	Event     ID = "event"
	WiFi      ID = "wifi"
	Geo       ID = "geo"
)

// Shape describes the form of a category input
type Shape string

// input shapes
const (
	ShapeText   Shape = "text"
	ShapeRecord Shape = "record"
)

var (
	// ErrUnknownCategory returned for ids not in the registry
	ErrUnknownCategory = errors.New("unknown category")
	// ErrInputShapeMismatch returned when an input variant doesn't match the category
	ErrInputShapeMismatch = errors.New("input shape mismatch")
)

// Category is a content type with its own input shape and payload rule
type Category struct {
	ID     ID       `json:"id"`
	Name   string   `json:"name"`
	Shape  Shape    `json:"shape"`
	Fields []string `json:"fields,omitempty"`
	suffix string   // download filename suffix
}

var registry = []Category{
	{ID: URL, Name: "URL", Shape: ShapeText, suffix: "qr-code"},
	{ID: Email, Name: "Email Address", Shape: ShapeText, suffix: "email-qr-code"},
	{ID: Phone, Name: "Phone Number", Shape: ShapeText, suffix: "phone-qr-code"},
	{ID: XProfile, Name: "X Profile", Shape: ShapeText, suffix: "x-account-qr-code"},
	{ID: Instagram, Name: "Instagram Profile", Shape: ShapeText, suffix: "instagram-account-qr-code"},
	{ID: TikTok, Name: "TikTok Profile", Shape: ShapeText, suffix: "tiktok-account-qr-code"},
	{ID: Telegram, Name: "Telegram Profile", Shape: ShapeText, suffix: "telegram-account-qr-code"},
	{ID: LinkedIn, Name: "LinkedIn Profile", Shape: ShapeRecord, Fields: []string{"username", "type"},
		suffix: "linkedin-account-qr-code"},
	{ID: PayPal, Name: "PayPal Wallet", Shape: ShapeRecord, Fields: []string{"username", "amount", "currency"},
		suffix: "paypal-qr-code"},
	{ID: Bitcoin, Name: "Bitcoin Wallet", Shape: ShapeText, suffix: "bitcoin-address-qr-code"},
	{ID: Event, Name: "Calendar Event", Shape: ShapeRecord, Fields: []string{"title", "start", "end", "location"},
		suffix: "event-qr-code"},
	{ID: WiFi, Name: "WiFi Network", Shape: ShapeRecord, Fields: []string{"ssid", "type", "password"},
		suffix: "wifi-qr-code"},
	{ID: Geo, Name: "Geo Location", Shape: ShapeRecord, Fields: []string{"lat", "lon"}, suffix: "geo-qr-code"},
}

// List returns all categories in fixed registry order
func List() []Category {
	res := make([]Category, len(registry))
	copy(res, registry)
	return res
}

// Get returns category by id
func Get(id ID) (Category, bool) {
	for _, c := range registry {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// First returns the default selected category
func First() Category {
	return registry[0]
}

// IsSocial reports whether the category is a social profile handle
func IsSocial(id ID) bool {
	switch id {
	case XProfile, Instagram, TikTok, Telegram, LinkedIn:
		return true
	default:
		return false
	}
}
