package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeliverySchedule línea de pedido programada para despacho de producto terminado.
type DeliverySchedule struct {
	ID           string
	Plant        string
	SalesNo      string
	SalesItem    string
	CustomerName string
	ShipToParty  string
	PrintDesign  string
	RDD          *time.Time
	GrossWeight  decimal.Decimal
	OrderQty     decimal.Decimal
	ScheduleDate time.Time
	CreatedAt    time.Time
}

// Destination devuelve el cliente de entrega; si no hay ship-to se usa el cliente.
func (d *DeliverySchedule) Destination() string {
	if d.ShipToParty != "" {
		return d.ShipToParty
	}
	return d.CustomerName
}
