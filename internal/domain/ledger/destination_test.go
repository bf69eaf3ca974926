package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/ledger"
)

func TestProductionDestination(t *testing.T) {
	dest, err := ledger.ProductionDestination("c1", " cl", "a")
	require.NoError(t, err)
	assert.Equal(t, "C1 - CL - A", dest)

	_, err = ledger.ProductionDestination("C3", "CL", "A")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ledger.ProductionDestination("C2", "XX", "A")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ledger.ProductionDestination("C2", "DB", "E")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTruckLoadingDestination(t *testing.T) {
	dest, err := ledger.TruckLoadingDestination("PT Sinar Jaya")
	require.NoError(t, err)
	assert.Equal(t, "TRUCK_LOADING - PT Sinar Jaya", dest)

	_, err = ledger.TruckLoadingDestination("  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
