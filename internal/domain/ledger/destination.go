package ledger

import (
	"slices"
	"strings"

	"github.com/jhoicas/Rollstock-api/internal/domain"
)

// Valores válidos del destino de producción.
var (
	Machines = []string{"C1", "C2"}
	Units    = []string{"CL", "CM", "BL", "BM", "DB"}
	Groups   = []string{"A", "B", "C", "D"}
)

// TruckLoadingPrefix prefijo de destino para despachos de producto terminado.
const TruckLoadingPrefix = "TRUCK_LOADING"

// ProductionDestination arma "<máquina> - <unidad> - <grupo>", p.ej. "C1 - CL - A".
func ProductionDestination(machine, unit, group string) (string, error) {
	machine = strings.ToUpper(strings.TrimSpace(machine))
	unit = strings.ToUpper(strings.TrimSpace(unit))
	group = strings.ToUpper(strings.TrimSpace(group))
	if !slices.Contains(Machines, machine) {
		return "", domain.Invalid("machine", "desconocida")
	}
	if !slices.Contains(Units, unit) {
		return "", domain.Invalid("unit", "desconocida")
	}
	if !slices.Contains(Groups, group) {
		return "", domain.Invalid("group", "desconocido")
	}
	return machine + " - " + unit + " - " + group, nil
}

// TruckLoadingDestination arma "TRUCK_LOADING - <cliente>".
func TruckLoadingDestination(shipTo string) (string, error) {
	shipTo = strings.TrimSpace(shipTo)
	if shipTo == "" {
		return "", domain.Invalid("ship_to_party", "vacío")
	}
	return TruckLoadingPrefix + " - " + shipTo, nil
}
