package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vector de referencia: d0=100, d1=80, w0=500, gsm=80, ancho=150
//
//	NuevoPeso  = 500 × (6400 − 100) / (10000 − 100) ≈ 318.18
//	Consumido  ≈ 181.82
//	NuevoLargo = 318.18 / (0.08 × 1.5) ≈ 2651.5
// ──────────────────────────────────────────────────────────────────────────────

func TestCalculateReturn_VectorReferencia(t *testing.T) {
	res, err := ledger.CalculateReturn(ledger.ReturnParams{
		InitialDiameter: 100,
		ReturnDiameter:  80,
		InitialWeight:   500,
		GSM:             80,
		Width:           150,
	})
	require.NoError(t, err)

	assert.InDelta(t, 318.18, res.NewWeight, 0.01)
	assert.InDelta(t, 181.82, res.ConsumedWeight, 0.01)
	assert.InDelta(t, 2651.5, res.NewLength, 0.1)
	assert.InDelta(t, 500.0, res.NewWeight+res.ConsumedWeight, 1e-9, "el peso se conserva")
}

func TestCalculateReturn_Rechazos(t *testing.T) {
	cases := []struct {
		name string
		p    ledger.ReturnParams
		want error
	}{
		{"d1 igual a d0", ledger.ReturnParams{InitialDiameter: 100, ReturnDiameter: 100, InitialWeight: 500, GSM: 80, Width: 150}, domain.ErrReturnExceedsInitial},
		{"d1 mayor que d0", ledger.ReturnParams{InitialDiameter: 100, ReturnDiameter: 120, InitialWeight: 500, GSM: 80, Width: 150}, domain.ErrReturnExceedsInitial},
		{"d0 igual al núcleo", ledger.ReturnParams{InitialDiameter: 10, ReturnDiameter: 5, InitialWeight: 500, GSM: 80, Width: 150}, domain.ErrInvalidGeometry},
		{"d0 menor que el núcleo", ledger.ReturnParams{InitialDiameter: 8, ReturnDiameter: 5, InitialWeight: 500, GSM: 80, Width: 150}, domain.ErrInvalidGeometry},
		{"gsm cero", ledger.ReturnParams{InitialDiameter: 100, ReturnDiameter: 80, InitialWeight: 500, GSM: 0, Width: 150}, domain.ErrInvalidGeometry},
		{"ancho negativo", ledger.ReturnParams{InitialDiameter: 100, ReturnDiameter: 80, InitialWeight: 500, GSM: 80, Width: -1}, domain.ErrInvalidGeometry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ledger.CalculateReturn(tc.p)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCalculateReturn_RetornoAlNucleo(t *testing.T) {
	res, err := ledger.CalculateReturn(ledger.ReturnParams{
		InitialDiameter: 100, ReturnDiameter: ledger.CoreDiameter, InitialWeight: 500, GSM: 80, Width: 150,
	})
	require.NoError(t, err)
	assert.Zero(t, res.NewWeight)
	assert.Equal(t, 500.0, res.ConsumedWeight)
}

// La fracción se evalúa antes de multiplicar por w0; el orden cambia el redondeo.
func TestCalculateReturn_OrdenDeEvaluacionExacto(t *testing.T) {
	d0, d1, w0 := 20.0, 11.0, 987.65
	res, err := ledger.CalculateReturn(ledger.ReturnParams{
		InitialDiameter: d0, ReturnDiameter: d1, InitialWeight: w0, GSM: 80, Width: 150,
	})
	require.NoError(t, err)

	c2 := ledger.CoreDiameter * ledger.CoreDiameter
	want := ((d1*d1 - c2) / (d0*d0 - c2)) * w0
	assert.Equal(t, want, res.NewWeight)
	assert.Equal(t, 69.13550000000001, res.NewWeight)
	assert.NotEqual(t, w0*(d1*d1-c2)/(d0*d0-c2), res.NewWeight)
	assert.Equal(t, w0-want, res.ConsumedWeight)
	assert.Equal(t, want/((80.0/1000)*(150.0/100)), res.NewLength)
}
