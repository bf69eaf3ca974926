package importer

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rollstock-api/internal/infrastructure/csvimport"
)

// quantity celda vacía = 0; se aceptan separadores de miles con coma.
func quantity(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, true
	}
	return csvimport.ParseDecimal(strings.ReplaceAll(s, ",", ""))
}
