package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn reports whether s passes the Luhn checksum. Payout card numbers are
// checked with it before a withdrawal snapshot is taken.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
