package category

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const maxFileNameBase = 100

var (
	strictPolicy = bluemonday.StrictPolicy()

	spacesRe    = regexp.MustCompile(`\s+`)
	fileCharsRe = regexp.MustCompile(`[^a-z0-9-]`)
	dashesRe    = regexp.MustCompile(`-+`)
)

// Describe returns a one-line human summary of the input, used by history listings.
// The result is plain text stripped of any markup, passwords are never included.
func Describe(id ID, in Input) string {
	var res string
	switch v := in.(type) {
	case Text:
		res = string(v)
	case LinkedInInput:
		kind := "Personal Profile"
		if v.Type == LinkedInCompany {
			kind = "Company Page"
		}
		res = fmt.Sprintf("%s (%s)", v.Username, kind)
	case PayPalInput:
		res = fmt.Sprintf("%s, %s %s", v.Username, v.Amount, v.Currency)
	case EventInput:
		res = fmt.Sprintf("%s, %s - %s", v.Title, humanTime(v.Start), humanTime(v.End))
		if v.Location != "" {
			res += ", " + v.Location
		}
	case WiFiInput:
		res = v.SSID
		if v.Type != "" {
			res += ", " + v.Type
		}
		if v.Password != "" {
			res += ", [password]"
		}
	case GeoInput:
		res = fmt.Sprintf("%s, %s", v.Lat, v.Lon)
	default:
		return ""
	}
	// strict policy escapes entities, summaries are plain text
	return html.UnescapeString(strictPolicy.Sanitize(res))
}

func humanTime(iso string) string {
	t, err := time.Parse(time.RFC3339Nano, iso)
	if err != nil {
		return iso
	}
	return t.UTC().Format("2006-01-02 15:04")
}

// FileName makes a download file name for the QR image of the input,
// e.g. example-dot-com-slash-docs-qr-code.png for url "example.com/docs"
func FileName(id ID, in Input) string {
	c, ok := Get(id)
	if !ok {
		return "qr-code.png"
	}

	var primary string
	switch v := in.(type) {
	case Text:
		primary = string(v)
	case LinkedInInput:
		primary = v.Username
	case PayPalInput:
		primary = v.Username
	case EventInput:
		primary = v.Title
	case WiFiInput:
		primary = v.SSID
	case GeoInput:
		primary = v.Lat + "-" + v.Lon
	}

	base := sanitizeFileName(primary, id == URL)
	if base == "" || base == "-" {
		base = string(id)
	}
	return fmt.Sprintf("%s-%s.png", base, c.suffix)
}

func sanitizeFileName(s string, isURL bool) string {
	cleaned := s
	if isURL {
		raw := s
		if !strings.HasPrefix(s, "http") {
			raw = "https://" + s
		}
		if u, err := url.Parse(raw); err == nil && u.Host != "" {
			cleaned = strings.TrimPrefix(u.Hostname(), "www.") + strings.TrimRight(u.Path, "/")
			if u.RawQuery != "" {
				cleaned += "-query-" + u.RawQuery
			}
		}
	}

	cleaned = strings.ToLower(cleaned)
	cleaned = strings.NewReplacer(".", "-dot-", "@", "-at-", ":", "-colon-", "/", "-slash-").Replace(cleaned)
	cleaned = spacesRe.ReplaceAllString(cleaned, "-")
	cleaned = fileCharsRe.ReplaceAllString(cleaned, "")
	cleaned = dashesRe.ReplaceAllString(cleaned, "-")
	if len(cleaned) > maxFileNameBase {
		cleaned = cleaned[:maxFileNameBase]
	}
	return cleaned
}
