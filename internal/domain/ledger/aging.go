package ledger

import (
	"math"
	"time"
)

var epoch = time.Unix(0, 0).UTC()

// ReceiveDateOrEpoch trata la fecha de recepción ausente como 1970-01-01.
func ReceiveDateOrEpoch(t *time.Time) time.Time {
	if t == nil {
		return epoch
	}
	return *t
}

// AgingDays días completos desde la recepción (piso, no redondeo).
func AgingDays(received *time.Time, now time.Time) int {
	return int(math.Floor(AgingDaysFraction(received, now)))
}

// AgingDaysFraction días fraccionarios desde la recepción, usados por el tablero.
func AgingDaysFraction(received *time.Time, now time.Time) float64 {
	return now.Sub(ReceiveDateOrEpoch(received)).Hours() / 24
}

// Tramos de antigüedad del tablero.
const (
	BucketUnder90  = "<90"
	BucketUnder180 = "90-179"
	BucketUnder365 = "180-364"
	BucketOver365  = ">=365"
)

// AgingBuckets tramos en orden ascendente.
var AgingBuckets = []string{BucketUnder90, BucketUnder180, BucketUnder365, BucketOver365}

// AgingBucket clasifica días fraccionarios en su tramo.
func AgingBucket(days float64) string {
	switch {
	case days < 90:
		return BucketUnder90
	case days < 180:
		return BucketUnder180
	case days < 365:
		return BucketUnder365
	default:
		return BucketOver365
	}
}
