package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockListRequest filtros del listado de stock.
type StockListRequest struct {
	KindGSM string `query:"kind_gsm" validate:"max=64"`
	Width   string `query:"width" validate:"max=16"`
	Batch   string `query:"batch" validate:"max=64"`
	Sort    string `query:"sort"`
	Order   string `query:"order" validate:"omitempty,oneof=asc desc"`
	Page    int    `query:"page" validate:"gte=0"`
}

// StockListResponse página del listado.
type StockListResponse struct {
	Items      []StockItemResponse `json:"items"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalRows  int                 `json:"total_rows"`
	TotalPages int                 `json:"total_pages"`
}

// MovementHistoryRequest filtros del historial. Fechas en formato 2006-01-02.
type MovementHistoryRequest struct {
	From   string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	User   string `query:"user" validate:"max=100"`
	Type   string `query:"type" validate:"omitempty,oneof=101 201 202 999"`
	Sort   string `query:"sort"`
	Order  string `query:"order" validate:"omitempty,oneof=asc desc"`
	Limit  int    `query:"limit" validate:"gte=0,lte=5000"`
	Offset int    `query:"offset" validate:"gte=0"`
}

// TallyResponse cantidad y peso.
type TallyResponse struct {
	Rolls  int             `json:"rolls"`
	Weight decimal.Decimal `json:"weight"`
}

// WidthStatResponse nivel ancho del tablero.
type WidthStatResponse struct {
	Width string `json:"width"`
	TallyResponse
}

// GSMStatResponse nivel gramaje del tablero.
type GSMStatResponse struct {
	GSM string `json:"gsm"`
	TallyResponse
	Widths []WidthStatResponse `json:"widths"`
}

// KindStatResponse nivel tipo del tablero.
type KindStatResponse struct {
	Kind string `json:"kind"`
	TallyResponse
	GSMs []GSMStatResponse `json:"gsms"`
}

// AgingBucketResponse tramo de antigüedad.
type AgingBucketResponse struct {
	Bucket string `json:"bucket"`
	TallyResponse
	Kinds []KindStatResponse `json:"kinds"`
}

// AgingDashboardResponse tablero de antigüedad.
type AgingDashboardResponse struct {
	Class       string                `json:"class"`
	Plant       string                `json:"plant"`
	GeneratedAt string                `json:"generated_at"`
	Total       TallyResponse         `json:"total"`
	Buckets     []AgingBucketResponse `json:"buckets"`
}

// OpnameReportRequest día (UTC) y filtro opcional de ubicación.
type OpnameReportRequest struct {
	Date string `query:"date" validate:"required,datetime=2006-01-02"`
	Bin  string `query:"bin" validate:"max=64"`
}

// OpnameRowResponse lectura con datos maestros; Item ausente si el id no está en stock.
type OpnameRowResponse struct {
	ID                 string             `json:"id"`
	ScannedID          string             `json:"scanned_id"`
	ScannedBinLocation string             `json:"scanned_bin_location"`
	OpnameAt           time.Time          `json:"opname_at"`
	UserID             string             `json:"user_id"`
	Linked             bool               `json:"linked"`
	Item               *StockItemResponse `json:"item,omitempty"`
	AgingDays          *int               `json:"aging_days,omitempty"`
}
