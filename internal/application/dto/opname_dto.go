package dto

// OpnameScanRequest lectura de un id en una ubicación.
type OpnameScanRequest struct {
	ScannedID   string `json:"scanned_id" validate:"required,max=64"`
	BinLocation string `json:"bin_location" validate:"required,max=64"`
}
