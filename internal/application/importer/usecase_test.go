package importer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rollstock-api/internal/application/importer"
	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/infrastructure/memory"
)

var now = time.Date(2024, 7, 1, 8, 30, 0, 0, time.UTC)

func sess() *entity.Session {
	return &entity.Session{ID: "s", Email: "carga@planta.test", DisplayName: "Carga", Plants: []string{"P1"}}
}

type fakeArchiver struct {
	keys []string
	err  error
}

func (f *fakeArchiver) Archive(_ context.Context, key, _ string, _ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	return "s3://bucket/" + key, nil
}

func newUseCase(store *memory.Store, arch importer.Archiver) *importer.ImportUseCase {
	uc := importer.NewImportUseCase(store.TxRunner(), store.Schedules(), arch, nil)
	uc.SetClock(func() time.Time { return now })
	return uc
}

// ─── SyncStock ───────────────────────────────────────────────────────────────

func TestSyncStock_BorraAusentesYActualiza(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	items := store.Items()
	require.NoError(t, items.Create(ctx, &entity.StockItem{Class: entity.ClassPaperRoll, Plant: "P1", Code: "OLD", Weight: 1}))
	require.NoError(t, items.Create(ctx, &entity.StockItem{Class: entity.ClassPaperRoll, Plant: "P1", Code: "R1", Weight: 1, BinLocation: "X"}))
	require.NoError(t, items.Create(ctx, &entity.StockItem{Class: entity.ClassPaperRoll, Plant: "P2", Code: "OTRA", Weight: 1}))
	require.NoError(t, items.Create(ctx, &entity.StockItem{Class: entity.ClassPaperRoll, Plant: "P1", Code: "R3", Weight: 9}))
	before, _ := items.Get(ctx, entity.ClassPaperRoll, "P1", "R1")

	arch := &fakeArchiver{}
	csv := "roll_id,weight,gsm,width,bin_location,goods_receive_date,kind,batch\n" +
		"R1,1200.5,150,1100,A-01,05/03/2024,KL,\n" +
		"R2,900,,,B-02,,WT,\n" +
		",500,,,,,,\n" +
		"R3,abc,,,,,,\n"
	sum, err := newUseCase(store, arch).SyncStock(ctx, sess(), entity.ClassPaperRoll, "P1",
		importer.Upload{Filename: "C:\\descargas\\stock.csv", Body: []byte(csv)})
	require.NoError(t, err)

	assert.Equal(t, 4, sum.Processed)
	assert.Equal(t, 2, sum.Upserted)
	assert.Equal(t, int64(1), sum.Deleted)
	require.Len(t, sum.Errors, 2)
	assert.Equal(t, 4, sum.Errors[0].Row)
	assert.Equal(t, 5, sum.Errors[1].Row)
	assert.Equal(t, "s3://bucket/P1/stock-pr/20240701T083000-stock.csv", sum.Archive)

	r1, _ := items.Get(ctx, entity.ClassPaperRoll, "P1", "R1")
	require.NotNil(t, r1)
	assert.Equal(t, before.ID, r1.ID, "el upsert conserva el id")
	assert.Equal(t, 1200.5, r1.Weight)
	assert.Equal(t, "A-01", r1.BinLocation)
	require.NotNil(t, r1.GoodsReceiveDate)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *r1.GoodsReceiveDate)
	assert.Equal(t, "Carga", r1.UserID)

	old, _ := items.Get(ctx, entity.ClassPaperRoll, "P1", "OLD")
	assert.Nil(t, old)
	r3, _ := items.Get(ctx, entity.ClassPaperRoll, "P1", "R3")
	require.NotNil(t, r3, "una fila con peso inválido no borra el ítem")
	assert.Equal(t, 9.0, r3.Weight)
	otra, _ := items.Get(ctx, entity.ClassPaperRoll, "P2", "OTRA")
	assert.NotNil(t, otra)
}

func TestSyncStock_FalloRevierteTodo(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Items().Create(ctx, &entity.StockItem{Class: entity.ClassFinishedGood, Plant: "P1", Code: "OLD", Weight: 1}))
	store.FailOn["items.upsert"] = errors.New("conexión perdida")

	_, err := newUseCase(store, nil).SyncStock(ctx, sess(), entity.ClassFinishedGood, "P1",
		importer.Upload{Filename: "fg.csv", Body: []byte("item_code,weight\nLMG-1,10\n")})
	var se *domain.StoreError
	require.ErrorAs(t, err, &se)

	old, _ := store.Items().Get(ctx, entity.ClassFinishedGood, "P1", "OLD")
	assert.NotNil(t, old, "el borrado se revierte con la transacción")
}

func TestSyncStock_Rechazos(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store, nil)
	ctx := context.Background()

	_, err := uc.SyncStock(ctx, sess(), entity.ClassPaperRoll, "P1", importer.Upload{Body: []byte("code,weight\nR1,1\n")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin columna de código")

	_, err = uc.SyncStock(ctx, sess(), entity.ClassPaperRoll, "P1", importer.Upload{Body: []byte("roll_id,weight\n")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin filas no se vacía la planta")

	_, err = uc.SyncStock(ctx, sess(), entity.ClassPaperRoll, "P1", importer.Upload{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.SyncStock(ctx, sess(), entity.ClassPaperRoll, "P9", importer.Upload{Body: []byte("roll_id,weight\nR1,1\n")})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSyncStock_ArchivoFallidoNoInterrumpe(t *testing.T) {
	store := memory.NewStore()
	sum, err := newUseCase(store, &fakeArchiver{err: errors.New("s3 caído")}).SyncStock(context.Background(), sess(),
		entity.ClassPaperRoll, "P1", importer.Upload{Filename: "s.csv", Body: []byte("roll_id,weight\nR1,1\n")})
	require.NoError(t, err)
	assert.Empty(t, sum.Archive)
	assert.Equal(t, 1, sum.Upserted)
}

// ─── Programa de despachos ───────────────────────────────────────────────────

func TestImportSchedule_InsertaFilasValidas(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	uc := newUseCase(store, nil)
	day := time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)

	csv := "Sales No,Sales Item,Customer Name,Print Design,RDD,Gross Weight,Order Qty,Ship To Party\n" +
		"SO-1,10,ACME,Caja A,03.07.2024,\"1,250.5\",100,Bodega Norte\n" +
		"SO-1,,ACME,Caja B,,,,\n" +
		"SO-2,20,Beta,Caja C,2024-07-04,x,5,\n"
	sum, err := uc.ImportSchedule(ctx, sess(), "P1", day, importer.Upload{Filename: "ds.csv", Body: []byte(csv)})
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Upserted)
	require.Len(t, sum.Errors, 2)
	assert.Equal(t, 3, sum.Errors[0].Row)
	assert.Equal(t, 4, sum.Errors[1].Row)

	list, err := uc.ListSchedule(ctx, sess(), "P1", day)
	require.NoError(t, err)
	require.Len(t, list, 1)
	line := list[0]
	assert.Equal(t, "SO-1", line.SalesNo)
	assert.True(t, decimal.RequireFromString("1250.5").Equal(line.GrossWeight))
	assert.True(t, decimal.NewFromInt(100).Equal(line.OrderQty))
	require.NotNil(t, line.RDD)
	assert.Equal(t, time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC), *line.RDD)
	assert.Equal(t, "Bodega Norte", line.Destination())
}

func TestImportSchedule_ExigeColumnasYFecha(t *testing.T) {
	uc := newUseCase(memory.NewStore(), nil)
	ctx := context.Background()

	_, err := uc.ImportSchedule(ctx, sess(), "P1", time.Time{}, importer.Upload{Body: []byte("Sales No,Sales Item\n1,1\n")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ImportSchedule(ctx, sess(), "P1", now, importer.Upload{Body: []byte("Sales No,RDD\n1,2\n")})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Reason, "Sales Item")
}
