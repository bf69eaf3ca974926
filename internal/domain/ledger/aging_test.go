package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Rollstock-api/internal/domain/ledger"
)

func TestAgingDays_Piso(t *testing.T) {
	received := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	now := received.Add(10*24*time.Hour + 3*time.Hour)

	assert.Equal(t, 10, ledger.AgingDays(&received, now))
	assert.InDelta(t, 10.125, ledger.AgingDaysFraction(&received, now), 1e-9)
}

func TestAgingDays_SinFechaEsEpoch(t *testing.T) {
	now := time.Unix(0, 0).UTC().Add(48 * time.Hour)
	assert.Equal(t, 2, ledger.AgingDays(nil, now))
}

func TestAgingBucket(t *testing.T) {
	assert.Equal(t, ledger.BucketUnder90, ledger.AgingBucket(0))
	assert.Equal(t, ledger.BucketUnder90, ledger.AgingBucket(89.99))
	assert.Equal(t, ledger.BucketUnder180, ledger.AgingBucket(90))
	assert.Equal(t, ledger.BucketUnder365, ledger.AgingBucket(180))
	assert.Equal(t, ledger.BucketOver365, ledger.AgingBucket(365))
}
