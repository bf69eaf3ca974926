package ledger

import "github.com/jhoicas/Rollstock-api/internal/domain"

// CoreDiameter diámetro del tubo central (cm), constante para todos los rollos.
const CoreDiameter = 10.0

// ReturnParams entrada del cálculo de retorno de un rollo parcialmente consumido.
type ReturnParams struct {
	InitialDiameter float64 // d0, cm
	ReturnDiameter  float64 // d1, cm
	InitialWeight   float64 // w0, kg
	GSM             float64 // g/m²
	Width           float64 // cm
}

// ReturnResult peso y largo que quedan en el rollo devuelto.
type ReturnResult struct {
	NewWeight      float64
	ConsumedWeight float64
	NewLength      float64
}

// CalculateReturn aplica la fórmula de desenrollado (servicio de dominio).
// NuevoPeso = ((d1² - c²) / (d0² - c²)) * w0, en ese orden; NuevoLargo = NuevoPeso / ((gsm/1000) * (ancho/100)).
// Sin redondeo.
func CalculateReturn(p ReturnParams) (ReturnResult, error) {
	if p.ReturnDiameter >= p.InitialDiameter {
		return ReturnResult{}, domain.ErrReturnExceedsInitial
	}
	c2 := CoreDiameter * CoreDiameter
	denom := p.InitialDiameter*p.InitialDiameter - c2
	if denom <= 0 {
		return ReturnResult{}, domain.ErrInvalidGeometry
	}
	if p.GSM <= 0 || p.Width <= 0 {
		return ReturnResult{}, domain.ErrInvalidGeometry
	}

	newWeight := ((p.ReturnDiameter*p.ReturnDiameter - c2) / denom) * p.InitialWeight
	return ReturnResult{
		NewWeight:      newWeight,
		ConsumedWeight: p.InitialWeight - newWeight,
		NewLength:      newWeight / ((p.GSM / 1000) * (p.Width / 100)),
	}, nil
}
