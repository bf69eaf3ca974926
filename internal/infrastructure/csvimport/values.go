package csvimport

import (
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ParseNumber número de la celda; false si está vacía o no es numérica.
func ParseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NumberOrZero como ParseNumber pero 0 cuando no hay valor.
func NumberOrZero(s string) float64 {
	v, _ := ParseNumber(s)
	return v
}

// ParseDecimal cantidad exacta; cero si la celda está vacía o es inválida.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

var dayFirst = regexp.MustCompile(`^(\d{1,2})[./](\d{1,2})[./](\d{4})$`)

// ParseDate acepta dd/mm/yyyy y dd.mm.yyyy; si no, ISO (2006-01-02 o RFC3339). Resultado en UTC.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if m := dayFirst.FindStringSubmatch(s); m != nil {
		d, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		t := time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC)
		// fechas como 31/02 se normalizan en time.Date; se rechazan
		if t.Day() != d || int(t.Month()) != mo {
			return nil
		}
		return &t
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
