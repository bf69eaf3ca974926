package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rollstock-api/internal/application/report"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "0 kg", formatWeight(decimal.Zero))
	assert.Equal(t, "950 kg", formatWeight(decimal.RequireFromString("949.6")))
	assert.Equal(t, "1.234.568 kg", formatWeight(decimal.RequireFromString("1234567.8")))
	assert.Equal(t, "-1.500 kg", formatWeight(decimal.NewFromInt(-1500)))
}

func TestAgingDashboardPDF(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	old := now.AddDate(0, 0, -400)
	items := []*entity.StockItem{
		{Code: "R1", Kind: "KL", GSM: 150, Width: 1100, Weight: 1200, GoodsReceiveDate: &now},
		{Code: "R2", Kind: "WT", Weight: 800, GoodsReceiveDate: &old},
		{Code: "R3", Weight: 500},
	}
	dash := report.BuildAgingDashboard(items, now)
	dash.Class = entity.ClassPaperRoll
	dash.Plant = "P1"
	dash.GeneratedAt = now.Format("2006-01-02 15:04")

	out, err := NewMarotoPDFGenerator().AgingDashboardPDF(context.Background(), dash)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestItemLabelPDF(t *testing.T) {
	out, err := NewMarotoPDFGenerator().ItemLabelPDF(context.Background(), &entity.StockItem{
		Class: entity.ClassFinishedGood, Code: "LMG-000123", Plant: "P1", BinLocation: "F-01", Weight: 640.5,
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
