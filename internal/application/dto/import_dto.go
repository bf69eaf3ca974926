package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RowErrorResponse error de una fila del CSV (Row cuenta la cabecera como fila 1).
type RowErrorResponse struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportSummaryResponse resultado de una carga.
type ImportSummaryResponse struct {
	Processed int                `json:"processed"`
	Upserted  int                `json:"upserted"`
	Deleted   int64              `json:"deleted"`
	Errors    []RowErrorResponse `json:"errors"`
	Archive   string             `json:"archive,omitempty"`
}

// DeliveryScheduleResponse línea del programa de despachos.
type DeliveryScheduleResponse struct {
	ID           string          `json:"id"`
	Plant        string          `json:"plant"`
	SalesNo      string          `json:"sales_no"`
	SalesItem    string          `json:"sales_item"`
	CustomerName string          `json:"customer_name"`
	ShipToParty  string          `json:"ship_to_party,omitempty"`
	PrintDesign  string          `json:"print_design,omitempty"`
	RDD          *time.Time      `json:"rdd,omitempty"`
	GrossWeight  decimal.Decimal `json:"gross_weight"`
	OrderQty     decimal.Decimal `json:"order_qty"`
	ScheduleDate time.Time       `json:"schedule_date"`
	Destination  string          `json:"destination"`
}

// DeliveryScheduleListRequest fecha del programa.
type DeliveryScheduleListRequest struct {
	Date string `query:"date" validate:"required,datetime=2006-01-02"`
}
