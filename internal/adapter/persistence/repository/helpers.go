package repository

import (
	"os"

	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Money attributes are stored as decimal strings. A corrupt attribute decodes
// to zero rather than failing the whole read.
func decimalFromString(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}
	}
	return d
}
