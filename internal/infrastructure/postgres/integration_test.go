//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/jhoicas/Rollstock-api/internal/application/importer"
	"github.com/jhoicas/Rollstock-api/internal/application/inventory"
	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
	"github.com/jhoicas/Rollstock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Rollstock-api/migrations"
	"github.com/jhoicas/Rollstock-api/pkg/config"
	"github.com/jhoicas/Rollstock-api/pkg/migrator"
)

// ─── Setup ───────────────────────────────────────────────────────────────────

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcPostgres.WithDatabase("rollstock_test"),
		tcPostgres.WithUsername("rollstock"),
		tcPostgres.WithPassword("rollstock"),
		testcontainers.WithWaitStrategy(tcPostgres.BasicWaitStrategies()...),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, migrator.Up(dsn, migrations.FS))

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func sess() *entity.Session {
	return &entity.Session{ID: "s", Email: "it@planta.test", Plants: []string{"P1"}}
}

// ─── Tests ───────────────────────────────────────────────────────────────────

func TestIntegration(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()

	items := postgres.NewStockItemRepository(pool)
	events := postgres.NewMovementEventRepository(pool)
	schedules := postgres.NewDeliveryScheduleRepository(pool)
	tx := postgres.NewTxRunner(pool)
	ledgerUC := inventory.NewLedgerUseCase(tx, items, events, schedules, nil, nil)

	t.Run("recepción, emisión y anulación", func(t *testing.T) {
		ref := inventory.ItemRef{Class: entity.ClassPaperRoll, Plant: "P1", Code: "R-1"}
		_, err := ledgerUC.Receive(ctx, sess(), inventory.ReceiveInput{
			ItemRef: ref, BinLocation: "A-01", Weight: 500, Diameter: 100, Length: 4000,
			Kind: "KL", GSM: 80, Width: 150, Batch: "B-7",
		})
		require.NoError(t, err)

		_, err = ledgerUC.Receive(ctx, sess(), inventory.ReceiveInput{ItemRef: ref, BinLocation: "A-02", Weight: 1})
		assert.ErrorIs(t, err, domain.ErrDuplicateItem)

		_, err = ledgerUC.Issue(ctx, sess(), inventory.IssueInput{ItemRef: ref, Machine: "C1", Unit: "CL", Group: "A"})
		require.NoError(t, err)
		inProd, err := ledgerUC.ListInProduction(ctx, sess(), "P1")
		require.NoError(t, err)
		require.Len(t, inProd, 1)

		_, err = ledgerUC.CancelIssue(ctx, sess(), ref)
		require.NoError(t, err)
		item, err := items.Get(ctx, entity.ClassPaperRoll, "P1", "R-1")
		require.NoError(t, err)
		assert.Equal(t, "A-01", item.BinLocation)
		assert.Equal(t, "B-7", item.Batch)

		list, err := events.List(ctx, repository.MovementFilter{Class: entity.ClassPaperRoll, Plant: "P1", SortKey: "timestamp"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, entity.MovementReceipt, list[0].Type)
	})

	t.Run("sincronización de stock", func(t *testing.T) {
		uc := importer.NewImportUseCase(tx, schedules, nil, nil)
		sum, err := uc.SyncStock(ctx, sess(), entity.ClassPaperRoll, "P1", importer.Upload{
			Filename: "stock.csv",
			Body:     []byte("roll_id,weight,goods_receive_date\nR-2,750,01/02/2024\n"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), sum.Deleted)

		gone, err := items.Get(ctx, entity.ClassPaperRoll, "P1", "R-1")
		require.NoError(t, err)
		assert.Nil(t, gone)
		r2, err := items.Get(ctx, entity.ClassPaperRoll, "P1", "R-2")
		require.NoError(t, err)
		require.NotNil(t, r2.GoodsReceiveDate)
		assert.Equal(t, 0.0, r2.GSM, "NULL numérico se lee como 0")
	})

	t.Run("programa de despachos con decimales", func(t *testing.T) {
		day := time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)
		require.NoError(t, schedules.CreateBatch(ctx, []*entity.DeliverySchedule{{
			Plant: "P1", SalesNo: "SO-1", SalesItem: "10", CustomerName: "ACME",
			GrossWeight: decimal.RequireFromString("1250.125"), OrderQty: decimal.NewFromInt(4),
			ScheduleDate: day, CreatedAt: day,
		}}))
		list, err := schedules.ListByDate(ctx, "P1", day)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.True(t, decimal.RequireFromString("1250.125").Equal(list[0].GrossWeight))

		line, err := schedules.GetLine(ctx, "P1", "SO-1", "10")
		require.NoError(t, err)
		require.NotNil(t, line)
		missing, err := schedules.GetLine(ctx, "P1", "SO-1", "99")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("cuentas con email sin distinguir mayúsculas", func(t *testing.T) {
		accounts := postgres.NewAccountRepository(pool)
		now := time.Now().UTC()
		acc := &entity.Account{
			Email: "Ana@Planta.test", PasswordHash: "x", DisplayName: "Ana",
			Plants: []string{"P1"}, Status: entity.AccountActive, CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, accounts.Create(ctx, acc))
		assert.ErrorIs(t, accounts.Create(ctx, &entity.Account{Email: "ana@planta.TEST", PasswordHash: "y", Status: entity.AccountActive}),
			domain.ErrEmailAlreadyExists)

		got, err := accounts.GetByEmail(ctx, "ANA@planta.test")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, []string{"P1"}, got.Plants)
		assert.Empty(t, got.Permissions)
	})

	t.Run("lecturas de inventario físico", func(t *testing.T) {
		opname := postgres.NewOpnameRepository(pool)
		at := time.Date(2024, 7, 3, 10, 0, 0, 0, time.UTC)
		code := "R-2"
		ev := &entity.OpnameEvent{Class: entity.ClassPaperRoll, ScannedID: code, Plant: "P1", BinLocation: "Z-09", OpnameAt: at, UserID: "it", ItemCode: &code}
		require.NoError(t, opname.Create(ctx, ev))

		list, err := opname.ListBetween(ctx, entity.ClassPaperRoll, "P1", at.Add(-time.Hour), at.Add(time.Hour), "z-0")
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.NotNil(t, list[0].ItemCode)

		ok, err := opname.Delete(ctx, entity.ClassPaperRoll, "P1", ev.ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
