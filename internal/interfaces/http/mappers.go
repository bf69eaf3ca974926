package http

import (
	"time"

	"github.com/jhoicas/Rollstock-api/internal/application/dto"
	"github.com/jhoicas/Rollstock-api/internal/application/importer"
	"github.com/jhoicas/Rollstock-api/internal/application/report"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/ledger"
)

func toStockItemResponse(it *entity.StockItem, agingDays *int) dto.StockItemResponse {
	return dto.StockItemResponse{
		ID:               it.ID,
		Class:            string(it.Class),
		Code:             it.Code,
		Plant:            it.Plant,
		BinLocation:      it.BinLocation,
		Weight:           it.Weight,
		Diameter:         it.Diameter,
		Length:           it.Length,
		Kind:             it.Kind,
		GSM:              it.GSM,
		Width:            it.Width,
		Batch:            it.Batch,
		ProdOrderNo:      it.ProdOrderNo,
		GoodsReceiveDate: it.GoodsReceiveDate,
		AgingDays:        agingDays,
		UserID:           it.UserID,
		UpdatedAt:        it.UpdatedAt,
	}
}

// agingOf antigüedad en días; nil sin fecha de recepción.
func agingOf(it *entity.StockItem, now time.Time) *int {
	if it.GoodsReceiveDate == nil {
		return nil
	}
	d := ledger.AgingDays(it.GoodsReceiveDate, now)
	return &d
}

func toMovementResponse(ev *entity.MovementEvent) dto.MovementEventResponse {
	return dto.MovementEventResponse{
		ID:             ev.ID,
		ItemCode:       ev.ItemCode,
		Plant:          ev.Plant,
		Type:           string(ev.Type),
		InitialLoc:     ev.InitialLoc,
		DestinationLoc: ev.DestinationLoc,
		Weight:         ev.Weight,
		Diameter:       ev.Diameter,
		Length:         ev.Length,
		Batch:          ev.Batch,
		ProdOrderNo:    ev.ProdOrderNo,
		SalesNo:        ev.SalesNo,
		SalesItem:      ev.SalesItem,
		UserID:         ev.UserID,
		Timestamp:      ev.Timestamp,
	}
}

func toMovementList(evs []*entity.MovementEvent) []dto.MovementEventResponse {
	out := make([]dto.MovementEventResponse, 0, len(evs))
	for _, ev := range evs {
		out = append(out, toMovementResponse(ev))
	}
	return out
}

func toStockList(items []*entity.StockItem, now time.Time) []dto.StockItemResponse {
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toStockItemResponse(it, agingOf(it, now)))
	}
	return out
}

func toOpnameRows(rows []report.OpnameRow) []dto.OpnameRowResponse {
	out := make([]dto.OpnameRowResponse, 0, len(rows))
	for _, r := range rows {
		resp := dto.OpnameRowResponse{
			ID:                 r.Event.ID,
			ScannedID:          r.Event.ScannedID,
			ScannedBinLocation: r.Event.BinLocation,
			OpnameAt:           r.Event.OpnameAt,
			UserID:             r.Event.UserID,
			Linked:             r.Event.ItemCode != nil,
			AgingDays:          r.AgingDays,
		}
		if r.Item != nil {
			item := toStockItemResponse(r.Item, r.AgingDays)
			resp.Item = &item
		}
		out = append(out, resp)
	}
	return out
}

func toTally(t report.Tally) dto.TallyResponse {
	return dto.TallyResponse{Rolls: t.Rolls, Weight: t.Weight}
}

func toDashboardResponse(d *report.AgingDashboard) dto.AgingDashboardResponse {
	resp := dto.AgingDashboardResponse{
		Class:       string(d.Class),
		Plant:       d.Plant,
		GeneratedAt: d.GeneratedAt,
		Total:       toTally(d.Total),
		Buckets:     make([]dto.AgingBucketResponse, 0, len(d.Buckets)),
	}
	for _, b := range d.Buckets {
		br := dto.AgingBucketResponse{Bucket: b.Bucket, TallyResponse: toTally(b.Tally), Kinds: []dto.KindStatResponse{}}
		for _, k := range b.Kinds {
			kr := dto.KindStatResponse{Kind: k.Kind, TallyResponse: toTally(k.Tally), GSMs: []dto.GSMStatResponse{}}
			for _, g := range k.GSMs {
				gr := dto.GSMStatResponse{GSM: g.GSM, TallyResponse: toTally(g.Tally), Widths: []dto.WidthStatResponse{}}
				for _, w := range g.Widths {
					gr.Widths = append(gr.Widths, dto.WidthStatResponse{Width: w.Width, TallyResponse: toTally(w.Tally)})
				}
				kr.GSMs = append(kr.GSMs, gr)
			}
			br.Kinds = append(br.Kinds, kr)
		}
		resp.Buckets = append(resp.Buckets, br)
	}
	return resp
}

func toImportSummary(s *importer.Summary) dto.ImportSummaryResponse {
	resp := dto.ImportSummaryResponse{
		Processed: s.Processed,
		Upserted:  s.Upserted,
		Deleted:   s.Deleted,
		Errors:    make([]dto.RowErrorResponse, 0, len(s.Errors)),
		Archive:   s.Archive,
	}
	for _, e := range s.Errors {
		resp.Errors = append(resp.Errors, dto.RowErrorResponse{Row: e.Row, Message: e.Message})
	}
	return resp
}

func toScheduleList(rows []*entity.DeliverySchedule) []dto.DeliveryScheduleResponse {
	out := make([]dto.DeliveryScheduleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DeliveryScheduleResponse{
			ID:           r.ID,
			Plant:        r.Plant,
			SalesNo:      r.SalesNo,
			SalesItem:    r.SalesItem,
			CustomerName: r.CustomerName,
			ShipToParty:  r.ShipToParty,
			PrintDesign:  r.PrintDesign,
			RDD:          r.RDD,
			GrossWeight:  r.GrossWeight,
			OrderQty:     r.OrderQty,
			ScheduleDate: r.ScheduleDate,
			Destination:  r.Destination(),
		})
	}
	return out
}
