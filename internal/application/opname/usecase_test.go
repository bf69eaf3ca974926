package opname_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rollstock-api/internal/application/opname"
	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/infrastructure/memory"
)

func sess() *entity.Session {
	return &entity.Session{ID: "s", Email: "conteo@planta.test", Plants: []string{"P1"}}
}

func TestScan_VinculaItemExistente(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Items().Create(ctx, &entity.StockItem{Class: entity.ClassPaperRoll, Plant: "P1", Code: "R1", BinLocation: "A-01"}))
	uc := opname.NewOpnameUseCase(store.Items(), store.Opname(), nil)
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	uc.SetClock(func() time.Time { return at })

	res, err := uc.Scan(ctx, sess(), opname.ScanInput{Class: entity.ClassPaperRoll, Plant: "P1", ScannedID: " R1 ", BinLocation: "A-02"})
	require.NoError(t, err)
	require.NotNil(t, res.Item)
	require.NotNil(t, res.Event.ItemCode)
	assert.Equal(t, "R1", *res.Event.ItemCode)
	assert.Equal(t, "A-02", res.Event.BinLocation)
	assert.Equal(t, "conteo@planta.test", res.Event.UserID)
	assert.Equal(t, at, res.Event.OpnameAt)

	res, err = uc.Scan(ctx, sess(), opname.ScanInput{Class: entity.ClassPaperRoll, Plant: "P1", ScannedID: "ZZ", BinLocation: "A-02"})
	require.NoError(t, err)
	assert.Nil(t, res.Item)
	assert.Nil(t, res.Event.ItemCode)

	list, err := store.Opname().ListBetween(ctx, entity.ClassPaperRoll, "P1", at.Add(-time.Hour), at.Add(time.Hour), "")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestScan_ExigeUbicacion(t *testing.T) {
	store := memory.NewStore()
	uc := opname.NewOpnameUseCase(store.Items(), store.Opname(), nil)

	_, err := uc.Scan(context.Background(), sess(), opname.ScanInput{Class: entity.ClassPaperRoll, Plant: "P1", ScannedID: "R1"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "bin_location", ve.Field)

	_, err = uc.Scan(context.Background(), sess(), opname.ScanInput{Class: entity.ClassPaperRoll, Plant: "P2", ScannedID: "R1", BinLocation: "A"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteScan(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	uc := opname.NewOpnameUseCase(store.Items(), store.Opname(), nil)
	res, err := uc.Scan(ctx, sess(), opname.ScanInput{Class: entity.ClassFinishedGood, Plant: "P1", ScannedID: "LMG-1", BinLocation: "F-1"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteScan(ctx, sess(), entity.ClassPaperRoll, "P1", res.Event.ID), domain.ErrNotFound, "otra clase")
	require.NoError(t, uc.DeleteScan(ctx, sess(), entity.ClassFinishedGood, "P1", res.Event.ID))
	assert.ErrorIs(t, uc.DeleteScan(ctx, sess(), entity.ClassFinishedGood, "P1", res.Event.ID), domain.ErrNotFound)
}
