package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// IsPayoutAccount reports whether a creator's bank account string looks
// payable: digits only, sane length, and a valid Luhn check digit for
// 16-digit card-style numbers.
func IsPayoutAccount(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	if len(s) == 16 {
		return goluhn.Validate(s) == nil
	}
	return len(s) >= 6 && len(s) <= 20
}
