package validate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/umputun/quickqr/pkg/btcaddr"
)

// validateBitcoin accepts addresses passing the checksum check or, failing that, looking like
// mainnet legacy or bech32 addresses. The message reports the detected address type.
func (v *Validator) validateBitcoin(s string) Verdict {
	addr := strings.TrimSpace(s)

	var res btcaddr.Result
	if v.addresses != nil {
		res = v.addresses.Check(addr)
	}
	looksMainnet := btcShapeRe.MatchString(addr)
	if !res.Valid && !looksMainnet {
		return invalid(errBitcoin)
	}

	if res.Valid && res.Network != "" && res.Network != btcaddr.Mainnet && !looksMainnet {
		return valid(capitalize(res.Network) + " address detected")
	}

	switch {
	case strings.HasPrefix(addr, "1"):
		return valid("Legacy address detected")
	case strings.HasPrefix(addr, "3"), strings.HasPrefix(addr, "bc1q"):
		return valid("SegWit address detected")
	case strings.HasPrefix(addr, "bc1p"):
		return valid("Taproot address detected")
	default:
		return valid("Bitcoin address detected")
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
