package entity

import "time"

// MovementType código de movimiento del libro mayor.
type MovementType string

const (
	MovementReceipt    MovementType = "101"
	MovementIssue      MovementType = "201"
	MovementReturn     MovementType = "202"
	MovementRelocation MovementType = "999"
)

// Valid indica si el código es conocido.
func (t MovementType) Valid() bool {
	switch t {
	case MovementReceipt, MovementIssue, MovementReturn, MovementRelocation:
		return true
	}
	return false
}

// ReceiveSource origen de los movimientos 101.
const ReceiveSource = "RECEIVE"

// MovementEvent registro inmutable de un cambio sobre un StockItem.
// Weight, Diameter y Length son deltas con signo.
type MovementEvent struct {
	ID             string
	Class          ItemClass
	ItemCode       string
	Plant          string
	Type           MovementType
	InitialLoc     string
	DestinationLoc string
	Weight         float64
	Diameter       float64
	Length         float64
	Batch          string // lote que tenía el ítem antes del movimiento
	ProdOrderNo    string
	SalesNo        string
	SalesItem      string
	UserID         string
	Timestamp      time.Time
}
