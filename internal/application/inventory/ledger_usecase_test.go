package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rollstock-api/internal/application/inventory"
	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
	"github.com/jhoicas/Rollstock-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testPlant = "P1"

type observed struct {
	op  string
	err error
}

type recordingObserver struct{ calls []observed }

func (o *recordingObserver) ObserveWorkflow(op string, _ entity.ItemClass, err error) {
	o.calls = append(o.calls, observed{op: op, err: err})
}

type fixture struct {
	store *memory.Store
	uc    *inventory.LedgerUseCase
	obs   *recordingObserver
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	obs := &recordingObserver{}
	uc := inventory.NewLedgerUseCase(store.TxRunner(), store.Items(), store.Events(), store.Schedules(), obs, nil)
	f := &fixture{store: store, uc: uc, obs: obs, now: time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)}
	// Cada llamada avanza un segundo para que los eventos tengan orden estricto.
	uc.SetClock(func() time.Time {
		f.now = f.now.Add(time.Second)
		return f.now
	})
	return f
}

func session() *entity.Session {
	return &entity.Session{ID: "s1", AccountID: "a1", Email: "op@planta.test", DisplayName: "Operador", Plants: []string{testPlant}}
}

func prRef(code string) inventory.ItemRef {
	return inventory.ItemRef{Class: entity.ClassPaperRoll, Plant: testPlant, Code: code}
}

func receiveRoll(t *testing.T, f *fixture, code string) *inventory.MovementResult {
	t.Helper()
	res, err := f.uc.Receive(context.Background(), session(), inventory.ReceiveInput{
		ItemRef:     prRef(code),
		BinLocation: "A-01",
		Weight:      500,
		Diameter:    100,
		Length:      4000,
		Kind:        "KL",
		GSM:         80,
		Width:       150,
		Batch:       "B-7",
	})
	require.NoError(t, err)
	return res
}

func issueRoll(t *testing.T, f *fixture, code string) *inventory.MovementResult {
	t.Helper()
	res, err := f.uc.Issue(context.Background(), session(), inventory.IssueInput{
		ItemRef: prRef(code), Machine: "C1", Unit: "CL", Group: "A", ProdOrderNo: "PO-9",
	})
	require.NoError(t, err)
	return res
}

func repoFilter(code string) repository.MovementFilter {
	return repository.MovementFilter{Class: entity.ClassPaperRoll, Plant: testPlant, ItemCode: code}
}

func eventsFor(t *testing.T, f *fixture, code string) []*entity.MovementEvent {
	t.Helper()
	evs, err := f.store.Events().List(context.Background(), repoFilter(code))
	require.NoError(t, err)
	return evs
}

// ──────────────────────────────────────────────────────────────────────────────
// Recepción
// ──────────────────────────────────────────────────────────────────────────────

func TestReceive_CreaItemYEvento(t *testing.T) {
	f := newFixture(t)
	res := receiveRoll(t, f, "R-001")

	item, err := f.store.Items().Get(context.Background(), entity.ClassPaperRoll, testPlant, "R-001")
	require.NoError(t, err)
	require.NotNil(t, item)

	evs := eventsFor(t, f, "R-001")
	require.Len(t, evs, 1, "exactamente un evento por recepción")
	assert.Equal(t, entity.MovementReceipt, evs[0].Type)
	assert.Equal(t, entity.ReceiveSource, evs[0].InitialLoc)
	assert.Equal(t, item.BinLocation, evs[0].DestinationLoc, "la ubicación del ítem es el destino del evento")
	assert.Equal(t, 500.0, evs[0].Weight)
	assert.Equal(t, "Operador", evs[0].UserID)
	assert.NotNil(t, res.Item.GoodsReceiveDate)
}

func TestReceive_Duplicado(t *testing.T) {
	f := newFixture(t)
	receiveRoll(t, f, "R-001")

	_, err := f.uc.Receive(context.Background(), session(), inventory.ReceiveInput{
		ItemRef: prRef("R-001"), BinLocation: "B-02", Weight: 10,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateItem)
	assert.Len(t, eventsFor(t, f, "R-001"), 1, "el duplicado no escribe eventos")
}

func TestReceive_ValidacionAntesDeEscribir(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Receive(context.Background(), session(), inventory.ReceiveInput{
		ItemRef: prRef("R-002"), BinLocation: "", Weight: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "bin_location", ve.Field)
	assert.Empty(t, eventsFor(t, f, "R-002"))
}

func TestReceive_SinSesionOPlantaAjena(t *testing.T) {
	f := newFixture(t)
	in := inventory.ReceiveInput{ItemRef: prRef("R-003"), BinLocation: "A", Weight: 1}

	_, err := f.uc.Receive(context.Background(), nil, in)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	other := session()
	other.Plants = []string{"P2"}
	_, err = f.uc.Receive(context.Background(), other, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReceive_FalloEnEventoRevierteItem(t *testing.T) {
	f := newFixture(t)
	f.store.FailOn["events.create"] = errors.New("connection reset by peer")

	_, err := f.uc.Receive(context.Background(), session(), inventory.ReceiveInput{
		ItemRef: prRef("R-004"), BinLocation: "A", Weight: 1,
	})
	require.Error(t, err)
	var se *domain.StoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "connection reset by peer", err.Error(), "el mensaje del almacén se expone tal cual")

	item, _ := f.store.Items().Get(context.Background(), entity.ClassPaperRoll, testPlant, "R-004")
	assert.Nil(t, item, "la transacción no deja el ítem sin su evento")
}

func TestReceive_FalloEnCommitRequiereCorreccionManual(t *testing.T) {
	f := newFixture(t)
	f.store.CommitErr = errors.New("conn closed")

	_, err := f.uc.Receive(context.Background(), session(), inventory.ReceiveInput{
		ItemRef: prRef("R-005"), BinLocation: "A", Weight: 1,
	})
	assert.ErrorIs(t, err, domain.ErrManualCorrection)
	require.NotEmpty(t, f.obs.calls)
	assert.ErrorIs(t, f.obs.calls[len(f.obs.calls)-1].err, domain.ErrManualCorrection)
}

func TestCancelReceive(t *testing.T) {
	f := newFixture(t)
	receiveRoll(t, f, "R-010")

	_, err := f.uc.CancelReceive(context.Background(), session(), prRef("R-010"))
	require.NoError(t, err)

	item, _ := f.store.Items().Get(context.Background(), entity.ClassPaperRoll, testPlant, "R-010")
	assert.Nil(t, item)
	assert.Empty(t, eventsFor(t, f, "R-010"))
}

func TestCancelReceive_ItemReubicadoEsObsoleto(t *testing.T) {
	f := newFixture(t)
	receiveRoll(t, f, "R-011")
	_, err := f.uc.Relocate(context.Background(), session(), inventory.RelocateInput{ItemRef: prRef("R-011"), NewLocation: "Z-9"})
	require.NoError(t, err)

	_, err = f.uc.CancelReceive(context.Background(), session(), prRef("R-011"))
	assert.ErrorIs(t, err, domain.ErrStaleCancellation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Emisión y anulación
// ──────────────────────────────────────────────────────────────────────────────

func TestIssue_PR(t *testing.T) {
	f := newFixture(t)
	receiveRoll(t, f, "R-020")
	res := issueRoll(t, f, "R-020")

	assert.Equal(t, "C1 - CL - A", res.Item.BinLocation)
	assert.Equal(t, entity.BatchProduction, res.Item.Batch)
	assert.Equal(t, entity.MovementIssue, res.Event.Type)
	assert.Equal(t, "A-01", res.Event.InitialLoc)
	assert.Equal(t, "B-7", res.Event.Batch, "el evento guarda el lote previo")
	assert.Equal(t, "PO-9", res.Event.ProdOrderNo)
	assert.Equal(t, -500.0, res.Event.Weight)
	assert.Equal(t, -100.0, res.Event.Diameter)
}

func TestIssue_DestinoInvalido(t *testing.T) {
	f := newFixture(t)
	receiveRoll(t, f, "R-021")
	_, err := f.uc.Issue(context.Background(), session(), inventory.IssueInput{ItemRef: prRef("R-021"), Machine: "C9", Unit: "CL", Group: "A"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIssue_ItemInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Issue(context.Background(), session(), inventory.IssueInput{ItemRef: prRef("NOPE"), Machine: "C1", Unit: "CL", Group: "A"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIssue_DobleEmisionRechazada(t *testing.T) {
	f := newFixture(t)
	receiveRoll(t, f, "R-022")
	issueRoll(t, f, "R-022")

	_, err := f.uc.Issue(context.Background(), session(), inventory.IssueInput{ItemRef: prRef("R-022"), Machine: "C2", Unit: "DB", Group: "D"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIssueCancel_RestauraEstado(t *testing.T) {
	f := newFixture(t)
	before := receiveRoll(t, f, "R-030").Item
	issueRoll(t, f, "R-030")

	_, err := f.uc.CancelIssue(context.Background(), session(), prRef("R-030"))
	require.NoError(t, err)

	item, err := f.store.Items().Get(context.Background(), entity.ClassPaperRoll, testPlant, "R-030")
	require.NoError(t, err)
	assert.Equal(t, before.BinLocation, item.BinLocation)
	assert.Equal(t, before.Batch, item.Batch)

	for _, ev := range eventsFor(t, f, "R-030") {
		assert.NotEqual(t, entity.MovementIssue, ev.Type, "el evento de emisión ya no existe")
	}
}

func TestCancelIssue_SinEmisionEsObsoleto(t *testing.T) {
	f := newFixture(t)
	receiveRoll(t, f, "R-031")
	_, err := f.uc.CancelIssue(context.Background(), session(), prRef("R-031"))
	assert.ErrorIs(t, err, domain.ErrStaleCancellation)
}

func TestIssue_FG_DesdeProgramaDeDespacho(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Schedules().CreateBatch(context.Background(), []*entity.DeliverySchedule{{
		Plant: testPlant, SalesNo: "SO-1", SalesItem: "10", CustomerName: "PT Maju", ShipToParty: "Gudang Timur",
		OrderQty: decimal.NewFromInt(20), ScheduleDate: f.now,
	}}))
	fgRef := inventory.ItemRef{Class: entity.ClassFinishedGood, Plant: testPlant, Code: "LMG-1"}
	_, err := f.uc.Receive(context.Background(), session(), inventory.ReceiveInput{ItemRef: fgRef, BinLocation: "FG-1", Weight: 800})
	require.NoError(t, err)

	res, err := f.uc.Issue(context.Background(), session(), inventory.IssueInput{ItemRef: fgRef, SalesNo: "SO-1", SalesItem: "10"})
	require.NoError(t, err)
	assert.Equal(t, "TRUCK_LOADING - Gudang Timur", res.Item.BinLocation)
	assert.Equal(t, entity.BatchShipping, res.Item.Batch)
	assert.Equal(t, "SO-1", res.Event.SalesNo)

	issued, err := f.uc.ListIssuedForSchedule(context.Background(), session(), testPlant, "SO-1", "10")
	require.NoError(t, err)
	require.Len(t, issued, 1)
	assert.Equal(t, "LMG-1", issued[0].ItemCode)

	_, err = f.uc.CancelIssue(context.Background(), session(), fgRef)
	require.NoError(t, err)
	item, _ := f.store.Items().Get(context.Background(), entity.ClassFinishedGood, testPlant, "LMG-1")
	assert.Equal(t, "FG-1", item.BinLocation)
}

func TestIssue_FG_LineaInexistente(t *testing.T) {
	f := newFixture(t)
	fgRef := inventory.ItemRef{Class: entity.ClassFinishedGood, Plant: testPlant, Code: "LMG-2"}
	_, err := f.uc.Issue(context.Background(), session(), inventory.IssueInput{ItemRef: fgRef, SalesNo: "SO-X", SalesItem: "1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reubicación
// ──────────────────────────────────────────────────────────────────────────────

func TestRelocate_YCancelar(t *testing.T) {
	f := newFixture(t)
	receiveRoll(t, f, "R-040")

	res, err := f.uc.Relocate(context.Background(), session(), inventory.RelocateInput{ItemRef: prRef("R-040"), NewLocation: "C-03"})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementRelocation, res.Event.Type)
	assert.Equal(t, 500.0, res.Event.Weight, "reubicación registra los valores actuales en positivo")

	_, err = f.uc.Relocate(context.Background(), session(), inventory.RelocateInput{ItemRef: prRef("R-040"), NewLocation: "C-03"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "misma ubicación")

	_, err = f.uc.CancelRelocation(context.Background(), session(), prRef("R-040"))
	require.NoError(t, err)
	item, _ := f.store.Items().Get(context.Background(), entity.ClassPaperRoll, testPlant, "R-040")
	assert.Equal(t, "A-01", item.BinLocation)
}

func TestCancelRelocation_UsaElMasReciente(t *testing.T) {
	f := newFixture(t)
	receiveRoll(t, f, "R-041")
	ctx := context.Background()
	_, err := f.uc.Relocate(ctx, session(), inventory.RelocateInput{ItemRef: prRef("R-041"), NewLocation: "X"})
	require.NoError(t, err)
	_, err = f.uc.Relocate(ctx, session(), inventory.RelocateInput{ItemRef: prRef("R-041"), NewLocation: "Y"})
	require.NoError(t, err)

	_, err = f.uc.CancelRelocation(ctx, session(), prRef("R-041"))
	require.NoError(t, err)
	item, _ := f.store.Items().Get(ctx, entity.ClassPaperRoll, testPlant, "R-041")
	assert.Equal(t, "X", item.BinLocation)
}

// ──────────────────────────────────────────────────────────────────────────────
// Retorno
// ──────────────────────────────────────────────────────────────────────────────

func TestReturn_RecalculaPesoYLargo(t *testing.T) {
	f := newFixture(t)
	receiveRoll(t, f, "R-050")
	issueRoll(t, f, "R-050")

	res, err := f.uc.Return(context.Background(), session(), inventory.ReturnInput{
		Plant: testPlant, Code: "R-050", ReturnDiameter: 80, BinLocation: "RET-1",
	})
	require.NoError(t, err)

	assert.InDelta(t, 318.18, res.Item.Weight, 0.01)
	assert.InDelta(t, 2651.5, res.Item.Length, 0.1)
	assert.Equal(t, 80.0, res.Item.Diameter)
	assert.Equal(t, "RET-1", res.Item.BinLocation)
	assert.Equal(t, "B-7", res.Item.Batch, "recupera el lote previo a la emisión")

	assert.Equal(t, entity.MovementReturn, res.Event.Type)
	assert.InDelta(t, -181.82, res.Event.Weight, 0.01)
	assert.Equal(t, 80.0, res.Event.Diameter)
	assert.Equal(t, "C1 - CL - A", res.Event.InitialLoc)
}

func TestReturn_DiametroIgualAlInicial(t *testing.T) {
	f := newFixture(t)
	receiveRoll(t, f, "R-051")

	_, err := f.uc.Return(context.Background(), session(), inventory.ReturnInput{
		Plant: testPlant, Code: "R-051", ReturnDiameter: 100, BinLocation: "RET-1",
	})
	assert.ErrorIs(t, err, domain.ErrReturnExceedsInitial)
	assert.Len(t, eventsFor(t, f, "R-051"), 1, "sin evento de retorno")
}

func TestReturn_SinGramaje(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Receive(context.Background(), session(), inventory.ReceiveInput{
		ItemRef: prRef("R-052"), BinLocation: "A", Weight: 100, Diameter: 90,
	})
	require.NoError(t, err)

	_, err = f.uc.Return(context.Background(), session(), inventory.ReturnInput{
		Plant: testPlant, Code: "R-052", ReturnDiameter: 50, BinLocation: "RET-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidGeometry)
}

// ──────────────────────────────────────────────────────────────────────────────
// Baja (used up)
// ──────────────────────────────────────────────────────────────────────────────

func TestUseUp(t *testing.T) {
	f := newFixture(t)
	receiveRoll(t, f, "R-060")

	require.NoError(t, f.uc.UseUp(context.Background(), session(), prRef("R-060")))
	item, _ := f.store.Items().Get(context.Background(), entity.ClassPaperRoll, testPlant, "R-060")
	assert.Nil(t, item)

	err := f.uc.UseUp(context.Background(), session(), prRef("R-060"))
	assert.ErrorIs(t, err, domain.ErrNotFound, "dar de baja un ítem inexistente no es un no-op")
}

func TestCodigoConEspacios_SeRecortaEnTodosLosFlujos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	receiveRoll(t, f, " R-080 ")

	item, err := f.uc.GetItem(ctx, session(), prRef("R-080 "))
	require.NoError(t, err)
	assert.Equal(t, "R-080", item.Code)

	issueRoll(t, f, "\tR-080")
	_, err = f.uc.CancelIssue(ctx, session(), prRef(" R-080"))
	require.NoError(t, err)

	_, err = f.uc.PreviewReturn(ctx, session(), testPlant, " R-080 ", 90)
	require.NoError(t, err)

	require.NoError(t, f.uc.UseUp(ctx, session(), prRef("R-080 ")))
	gone, _ := f.store.Items().Get(ctx, entity.ClassPaperRoll, testPlant, "R-080")
	assert.Nil(t, gone)
}

func TestListInProduction(t *testing.T) {
	f := newFixture(t)
	receiveRoll(t, f, "R-070")
	receiveRoll(t, f, "R-071")
	issueRoll(t, f, "R-071")

	items, err := f.uc.ListInProduction(context.Background(), session(), testPlant)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "R-071", items[0].Code)
}

func TestPreviewReturn_NoEscribe(t *testing.T) {
	f := newFixture(t)
	receiveRoll(t, f, "R-080")

	calc, err := f.uc.PreviewReturn(context.Background(), session(), testPlant, "R-080", 80)
	require.NoError(t, err)
	assert.InDelta(t, 318.18, calc.NewWeight, 0.01)
	assert.InDelta(t, 181.82, calc.ConsumedWeight, 0.01)

	item, err := f.uc.GetItem(context.Background(), session(), prRef("R-080"))
	require.NoError(t, err)
	assert.Equal(t, 500.0, item.Weight)
	assert.Len(t, eventsFor(t, f, "R-080"), 1)

	_, err = f.uc.PreviewReturn(context.Background(), session(), testPlant, "R-404", 80)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.uc.PreviewReturn(context.Background(), session(), testPlant, "R-080", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
