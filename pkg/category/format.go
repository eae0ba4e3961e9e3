package category

import (
	"fmt"
	"regexp"
	"strings"
)

var schemeRe = regexp.MustCompile(`^[a-zA-Z]+://`)

// socialDomains maps single-handle categories to their profile url prefix
var socialDomains = map[ID]string{
	XProfile:  "https://x.com/",
	Instagram: "https://instagram.com/",
	TikTok:    "https://tiktok.com/@",
	Telegram:  "https://t.me/",
}

// Format builds the QR payload for the input. Input is expected to be validated
// already, the only failures are unknown category and wrong input variant.
func Format(id ID, in Input) (string, error) {
	if _, ok := Get(id); !ok {
		return "", fmt.Errorf("format %q: %w", id, ErrUnknownCategory)
	}
	if !Matches(id, in) {
		return "", fmt.Errorf("format %q with %T: %w", id, in, ErrInputShapeMismatch)
	}

	switch v := in.(type) {
	case Text:
		return formatText(id, string(v)), nil
	case LinkedInInput:
		if v.Type == LinkedInCompany {
			return "https://linkedin.com/company/" + Handle(v.Username), nil
		}
		return "https://linkedin.com/in/" + Handle(v.Username), nil
	case PayPalInput:
		return fmt.Sprintf("https://www.paypal.com/paypalme/%s/%s?currency=%s", Handle(v.Username), v.Amount, v.Currency), nil
	case EventInput:
		return fmt.Sprintf("BEGIN:VEVENT\nSUMMARY:%s\nDTSTART:%s\nDTEND:%s\nLOCATION:%s\nEND:VEVENT",
			v.Title, ICalTime(v.Start), ICalTime(v.End), v.Location), nil
	case WiFiInput:
		return fmt.Sprintf("WIFI:S:%s;T:%s;P:%s;;", v.SSID, v.Type, v.Password), nil
	case GeoInput:
		return fmt.Sprintf("geo:%s,%s", v.Lat, v.Lon), nil
	}
	return "", fmt.Errorf("format %q with %T: %w", id, in, ErrInputShapeMismatch)
}

func formatText(id ID, s string) string {
	switch id {
	case URL:
		return WithScheme(s)
	case Email:
		return "mailto:" + s
	case Phone:
		return "tel:" + s
	case Bitcoin:
		return "bitcoin:" + s
	}
	return socialDomains[id] + Handle(s)
}

// WithScheme prepends https:// to non-blank urls without a scheme
func WithScheme(s string) string {
	if strings.TrimSpace(s) != "" && !schemeRe.MatchString(s) {
		return "https://" + s
	}
	return s
}

// Handle strips the leading @ from a social handle
func Handle(s string) string {
	return strings.TrimPrefix(s, "@")
}

// ICalTime converts ISO-8601 timestamp to the compact iCalendar UTC form,
// i.e. 2025-01-02T10:30:00.000Z becomes 20250102T103000Z
func ICalTime(iso string) string {
	s := strings.NewReplacer("-", "", ":", "").Replace(iso)
	if len(s) > 15 {
		s = s[:15]
	}
	return s + "Z"
}
