package dto

import "time"

// ReceiveRequest body de recepción. Class y plant vienen de la ruta.
type ReceiveRequest struct {
	Code        string  `json:"code" validate:"required,max=64"`
	BinLocation string  `json:"bin_location" validate:"required,max=64"`
	Weight      float64 `json:"weight" validate:"gt=0"`
	Diameter    float64 `json:"diameter" validate:"gte=0"`
	Length      float64 `json:"length" validate:"gte=0"`
	Kind        string  `json:"kind,omitempty" validate:"max=32"`
	GSM         float64 `json:"gsm,omitempty" validate:"gte=0"`
	Width       float64 `json:"width,omitempty" validate:"gte=0"`
	Batch       string  `json:"batch,omitempty" validate:"max=64"`
	ProdOrderNo string  `json:"prod_order_no,omitempty" validate:"max=64"`
}

// IssueRequest emisión a producción (machine/unit/group) o a despacho (sales_no/sales_item).
type IssueRequest struct {
	Code        string `json:"code" validate:"required"`
	Machine     string `json:"machine,omitempty"`
	Unit        string `json:"unit,omitempty"`
	Group       string `json:"group,omitempty"`
	ProdOrderNo string `json:"prod_order_no,omitempty" validate:"max=64"`
	SalesNo     string `json:"sales_no,omitempty"`
	SalesItem   string `json:"sales_item,omitempty"`
}

// RelocateRequest nueva ubicación.
type RelocateRequest struct {
	Code        string `json:"code" validate:"required"`
	NewLocation string `json:"new_location" validate:"required,max=64"`
}

// ReturnRequest retorno desde producción con el diámetro medido.
type ReturnRequest struct {
	Code           string  `json:"code" validate:"required"`
	ReturnDiameter float64 `json:"return_diameter" validate:"gt=0"`
	BinLocation    string  `json:"bin_location" validate:"required,max=64"`
}

// ItemCodeRequest operaciones que solo identifican el ítem (anulaciones, baja).
type ItemCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// StockItemResponse ítem de stock.
type StockItemResponse struct {
	ID               string     `json:"id"`
	Class            string     `json:"class"`
	Code             string     `json:"code"`
	Plant            string     `json:"plant"`
	BinLocation      string     `json:"bin_location"`
	Weight           float64    `json:"weight"`
	Diameter         float64    `json:"diameter"`
	Length           float64    `json:"length"`
	Kind             string     `json:"kind,omitempty"`
	GSM              float64    `json:"gsm,omitempty"`
	Width            float64    `json:"width,omitempty"`
	Batch            string     `json:"batch,omitempty"`
	ProdOrderNo      string     `json:"prod_order_no,omitempty"`
	GoodsReceiveDate *time.Time `json:"goods_receive_date,omitempty"`
	AgingDays        *int       `json:"aging_days,omitempty"`
	UserID           string     `json:"user_id,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// MovementEventResponse movimiento del libro.
type MovementEventResponse struct {
	ID             string    `json:"id"`
	ItemCode       string    `json:"item_code"`
	Plant          string    `json:"plant"`
	Type           string    `json:"movement_type"`
	InitialLoc     string    `json:"initial_bin_location,omitempty"`
	DestinationLoc string    `json:"destination_bin_location"`
	Weight         float64   `json:"weight"`
	Diameter       float64   `json:"diameter"`
	Length         float64   `json:"length"`
	Batch          string    `json:"batch,omitempty"`
	ProdOrderNo    string    `json:"prod_order_no,omitempty"`
	SalesNo        string    `json:"sales_no,omitempty"`
	SalesItem      string    `json:"sales_item,omitempty"`
	UserID         string    `json:"user_id,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// MovementResultResponse resultado de un flujo: estado del ítem y movimiento escrito.
type MovementResultResponse struct {
	Item  *StockItemResponse     `json:"item,omitempty"`
	Event *MovementEventResponse `json:"event,omitempty"`
}

// ReturnPreviewRequest cálculo del retorno sin escribir.
type ReturnPreviewRequest struct {
	Code           string  `query:"code" validate:"required"`
	ReturnDiameter float64 `query:"return_diameter" validate:"gt=0"`
}

// ReturnPreviewResponse valores que quedarían tras el retorno.
type ReturnPreviewResponse struct {
	NewWeight      float64 `json:"new_weight"`
	ConsumedWeight float64 `json:"consumed_weight"`
	NewLength      float64 `json:"new_length"`
}
