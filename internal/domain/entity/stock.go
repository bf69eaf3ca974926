package entity

import (
	"strings"
	"time"
)

// ItemClass distingue rollos de papel (PR) de pallets de producto terminado (FG).
type ItemClass string

const (
	ClassPaperRoll    ItemClass = "PR"
	ClassFinishedGood ItemClass = "FG"
)

// Valid indica si la clase es conocida.
func (c ItemClass) Valid() bool {
	return c == ClassPaperRoll || c == ClassFinishedGood
}

// ParseItemClass acepta "pr"/"fg" sin distinguir mayúsculas.
func ParseItemClass(s string) (ItemClass, bool) {
	switch ItemClass(strings.ToUpper(strings.TrimSpace(s))) {
	case ClassPaperRoll:
		return ClassPaperRoll, true
	case ClassFinishedGood:
		return ClassFinishedGood, true
	}
	return "", false
}

// Lotes que marcan la salida del ítem del almacén.
const (
	BatchProduction = "PRODUCTION"
	BatchShipping   = "SHIPPING"
)

// StockItem es un rollo o pallet que está físicamente en el almacén.
// Hay como máximo un StockItem por (Code, Plant) dentro de cada clase.
type StockItem struct {
	ID               string
	Class            ItemClass
	Code             string // roll id o número LMG
	Plant            string
	BinLocation      string
	Weight           float64
	Diameter         float64
	Length           float64
	Kind             string
	GSM              float64 // 0 = desconocido
	Width            float64 // 0 = desconocido
	Batch            string
	ProdOrderNo      string
	GoodsReceiveDate *time.Time
	UserID           string
	UpdatedAt        time.Time
}

// InProduction indica si el ítem fue emitido a producción y aún no vuelve.
func (s *StockItem) InProduction() bool {
	return s.Batch == BatchProduction
}
