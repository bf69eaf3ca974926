// Package xmlexport exporta el historial de movimientos como XML para sistemas externos.
package xmlexport

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

// MovementHistoryMeta datos de cabecera del documento.
type MovementHistoryMeta struct {
	Class       entity.ItemClass
	Plant       string
	GeneratedAt time.Time
	From        *time.Time
	To          *time.Time
}

// MovementHistory documento <movementHistory> con un <movement> por evento, en el orden recibido.
// Los campos vacíos se omiten.
func MovementHistory(meta MovementHistoryMeta, events []*entity.MovementEvent) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("movementHistory")
	root.CreateAttr("class", string(meta.Class))
	root.CreateAttr("plant", meta.Plant)
	root.CreateAttr("generatedAt", meta.GeneratedAt.UTC().Format(time.RFC3339))
	if meta.From != nil {
		root.CreateAttr("from", meta.From.Format("2006-01-02"))
	}
	if meta.To != nil {
		root.CreateAttr("to", meta.To.Format("2006-01-02"))
	}
	root.CreateAttr("count", strconv.Itoa(len(events)))

	for _, ev := range events {
		m := root.CreateElement("movement")
		m.CreateAttr("id", ev.ID)
		m.CreateAttr("type", string(ev.Type))
		child(m, "itemCode", ev.ItemCode)
		child(m, "timestamp", ev.Timestamp.UTC().Format(time.RFC3339))
		child(m, "user", ev.UserID)
		child(m, "initialBinLocation", ev.InitialLoc)
		child(m, "destinationBinLocation", ev.DestinationLoc)
		q := m.CreateElement("quantities")
		q.CreateAttr("weight", number(ev.Weight))
		q.CreateAttr("diameter", number(ev.Diameter))
		q.CreateAttr("length", number(ev.Length))
		child(m, "batch", ev.Batch)
		child(m, "prodOrderNo", ev.ProdOrderNo)
		if ev.SalesNo != "" || ev.SalesItem != "" {
			s := m.CreateElement("salesOrder")
			s.CreateAttr("no", ev.SalesNo)
			s.CreateAttr("item", ev.SalesItem)
		}
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmlexport: serializar historial: %w", err)
	}
	return out.Bytes(), nil
}

func child(parent *etree.Element, tag, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(tag).SetText(value)
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
