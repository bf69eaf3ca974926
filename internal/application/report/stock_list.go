package report

import (
	"context"
	"slices"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/ledger"
)

// StockSortKeys columnas por las que se puede ordenar el listado.
var StockSortKeys = []string{
	"goods_receive_date", "item_code", "bin_location", "weight", "diameter", "length",
	"kind", "gsm", "width", "batch",
}

// StockListQuery filtros del listado. KindGSM combina tipo y gramaje ("KL125"): las letras
// filtran el tipo y los dígitos el gramaje.
type StockListQuery struct {
	Class   entity.ItemClass
	Plant   string
	KindGSM string
	Width   string
	Batch   string
	SortKey string
	Desc    bool
	Page    int // desde 1
}

// StockRow ítem con su antigüedad; AgingDays nil si no tiene fecha de recepción.
type StockRow struct {
	Item      *entity.StockItem
	AgingDays *int
}

// StockListPage una página del listado filtrado.
type StockListPage struct {
	Rows       []StockRow
	Page       int
	PageSize   int
	TotalRows  int
	TotalPages int
}

// StockList lista el stock de la planta con filtros, orden y paginación en memoria.
func (uc *ReportUseCase) StockList(ctx context.Context, sess *entity.Session, q StockListQuery) (*StockListPage, error) {
	if err := checkAccess(sess, q.Class, q.Plant); err != nil {
		return nil, err
	}
	if q.SortKey == "" {
		q.SortKey = "goods_receive_date"
	}
	if !slices.Contains(StockSortKeys, q.SortKey) {
		return nil, domain.Invalid("sort", "columna de orden no permitida")
	}
	if q.Page < 1 {
		q.Page = 1
	}

	items, err := uc.fetchAll(ctx, q.Class, q.Plant)
	if err != nil {
		return nil, err
	}

	match := newStockMatcher(q)
	now := uc.now()
	rows := make([]StockRow, 0, len(items))
	for _, it := range items {
		if !match(it) {
			continue
		}
		row := StockRow{Item: it}
		if it.GoodsReceiveDate != nil {
			d := ledger.AgingDays(it.GoodsReceiveDate, now)
			row.AgingDays = &d
		}
		rows = append(rows, row)
	}
	sortStockRows(rows, q.SortKey, q.Desc)

	total := len(rows)
	pages := (total + uc.listSize - 1) / uc.listSize
	start := (q.Page - 1) * uc.listSize
	if start > total {
		start = total
	}
	end := min(start+uc.listSize, total)
	return &StockListPage{
		Rows:       rows[start:end],
		Page:       q.Page,
		PageSize:   uc.listSize,
		TotalRows:  total,
		TotalPages: pages,
	}, nil
}

func newStockMatcher(q StockListQuery) func(*entity.StockItem) bool {
	fold := cases.Fold()
	var kindTerm, gsmTerm strings.Builder
	for _, r := range q.KindGSM {
		switch {
		case unicode.IsLetter(r):
			kindTerm.WriteRune(r)
		case unicode.IsDigit(r):
			gsmTerm.WriteRune(r)
		}
	}
	kind := fold.String(kindTerm.String())
	gsm := gsmTerm.String()
	width := fold.String(q.Width)
	batch := fold.String(q.Batch)

	return func(it *entity.StockItem) bool {
		return strings.Contains(fold.String(it.Kind), kind) &&
			strings.Contains(numberText(it.GSM), gsm) &&
			strings.Contains(numberText(it.Width), width) &&
			strings.Contains(fold.String(it.Batch), batch)
	}
}

// numberText 0 (desconocido) se muestra vacío.
func numberText(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// sortStockRows la fecha ausente cuenta como 1970-01-01; en el resto de columnas los
// valores ausentes van al final en ambas direcciones.
func sortStockRows(rows []StockRow, key string, desc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Item, rows[j].Item
		if key == "goods_receive_date" {
			ta, tb := ledger.ReceiveDateOrEpoch(a.GoodsReceiveDate), ledger.ReceiveDateOrEpoch(b.GoodsReceiveDate)
			if desc {
				return ta.After(tb)
			}
			return ta.Before(tb)
		}
		va, vb := sortValue(a, key), sortValue(b, key)
		if va == nil || vb == nil {
			return va != nil && vb == nil
		}
		c := compareValues(va, vb)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func sortValue(it *entity.StockItem, key string) any {
	str := func(s string) any {
		if s == "" {
			return nil
		}
		return s
	}
	num := func(f float64) any {
		if f == 0 {
			return nil
		}
		return f
	}
	switch key {
	case "item_code":
		return it.Code
	case "bin_location":
		return str(it.BinLocation)
	case "weight":
		return it.Weight
	case "diameter":
		return it.Diameter
	case "length":
		return it.Length
	case "kind":
		return str(it.Kind)
	case "gsm":
		return num(it.GSM)
	case "width":
		return num(it.Width)
	case "batch":
		return str(it.Batch)
	}
	return nil
}

func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		return strings.Compare(av, b.(string))
	case float64:
		bv := b.(float64)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}
	return 0
}
