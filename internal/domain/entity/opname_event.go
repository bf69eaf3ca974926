package entity

import "time"

// OpnameEvent lectura de inventario físico en una ubicación.
// ItemCode es nil cuando el id escaneado no existe en el stock.
type OpnameEvent struct {
	ID          string
	Class       ItemClass
	ScannedID   string
	Plant       string
	BinLocation string
	OpnameAt    time.Time
	UserID      string
	ItemCode    *string
}
