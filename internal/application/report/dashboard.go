package report

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/domain/ledger"
)

// Etiquetas para atributos ausentes en el tablero.
const (
	UnknownKind  = "Unknown"
	NotAvailable = "N/A"
)

// Tally cantidad de ítems y peso acumulado.
type Tally struct {
	Rolls  int
	Weight decimal.Decimal
}

func (t *Tally) add(w decimal.Decimal) {
	t.Rolls++
	t.Weight = t.Weight.Add(w)
}

// WidthStat hoja del árbol tipo → gramaje → ancho.
type WidthStat struct {
	Width string
	Tally
}

// GSMStat gramaje con sus anchos.
type GSMStat struct {
	GSM string
	Tally
	Widths []*WidthStat
}

// KindStat tipo de papel con sus gramajes.
type KindStat struct {
	Kind string
	Tally
	GSMs []*GSMStat
}

// BucketStat tramo de antigüedad.
type BucketStat struct {
	Bucket string
	Tally
	Kinds []*KindStat
}

// AgingDashboard tablero de antigüedad de una planta.
type AgingDashboard struct {
	Class       entity.ItemClass
	Plant       string
	GeneratedAt string
	Buckets     []*BucketStat
	Total       Tally
}

// AgingDashboard agrupa todo el stock de la planta por tramo de antigüedad y luego por
// tipo, gramaje y ancho. Sin fecha de recepción cuenta desde 1970.
func (uc *ReportUseCase) AgingDashboard(ctx context.Context, sess *entity.Session, class entity.ItemClass, plant string) (*AgingDashboard, error) {
	if err := checkAccess(sess, class, plant); err != nil {
		return nil, err
	}
	items, err := uc.fetchAll(ctx, class, plant)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	dash := BuildAgingDashboard(items, now)
	dash.Class = class
	dash.Plant = plant
	dash.GeneratedAt = now.Format("2006-01-02 15:04")
	uc.log.Debug().Str("plant", plant).Str("class", string(class)).Int("items", len(items)).Msg("tablero de antigüedad")
	return dash, nil
}

type gsmNode struct {
	stat   *GSMStat
	widths map[string]*WidthStat
}

type kindNode struct {
	stat *KindStat
	gsms map[string]*gsmNode
}

// BuildAgingDashboard agregación pura; los tramos salen siempre en orden ascendente.
func BuildAgingDashboard(items []*entity.StockItem, now time.Time) *AgingDashboard {
	dash := &AgingDashboard{}
	buckets := make(map[string]*BucketStat, len(ledger.AgingBuckets))
	kinds := make(map[string]map[string]*kindNode, len(ledger.AgingBuckets))
	for _, name := range ledger.AgingBuckets {
		b := &BucketStat{Bucket: name}
		buckets[name] = b
		kinds[name] = map[string]*kindNode{}
		dash.Buckets = append(dash.Buckets, b)
	}

	for _, it := range items {
		bucket := ledger.AgingBucket(ledger.AgingDaysFraction(it.GoodsReceiveDate, now))
		w := decimal.NewFromFloat(it.Weight)

		dash.Total.add(w)
		buckets[bucket].add(w)

		kindName := it.Kind
		if kindName == "" {
			kindName = UnknownKind
		}
		kn, ok := kinds[bucket][kindName]
		if !ok {
			kn = &kindNode{stat: &KindStat{Kind: kindName}, gsms: map[string]*gsmNode{}}
			kinds[bucket][kindName] = kn
			buckets[bucket].Kinds = append(buckets[bucket].Kinds, kn.stat)
		}
		kn.stat.add(w)

		gsmName := labelOrNA(it.GSM)
		gn, ok := kn.gsms[gsmName]
		if !ok {
			gn = &gsmNode{stat: &GSMStat{GSM: gsmName}, widths: map[string]*WidthStat{}}
			kn.gsms[gsmName] = gn
			kn.stat.GSMs = append(kn.stat.GSMs, gn.stat)
		}
		gn.stat.add(w)

		widthName := labelOrNA(it.Width)
		ws, ok := gn.widths[widthName]
		if !ok {
			ws = &WidthStat{Width: widthName}
			gn.widths[widthName] = ws
			gn.stat.Widths = append(gn.stat.Widths, ws)
		}
		ws.add(w)
	}

	for _, b := range dash.Buckets {
		sort.SliceStable(b.Kinds, func(i, j int) bool {
			return b.Kinds[i].Weight.GreaterThan(b.Kinds[j].Weight)
		})
		for _, k := range b.Kinds {
			sort.SliceStable(k.GSMs, func(i, j int) bool { return numericDesc(k.GSMs[i].GSM, k.GSMs[j].GSM) })
			for _, g := range k.GSMs {
				sort.SliceStable(g.Widths, func(i, j int) bool { return numericDesc(g.Widths[i].Width, g.Widths[j].Width) })
			}
		}
	}
	return dash
}

func labelOrNA(f float64) string {
	if f == 0 {
		return NotAvailable
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// numericDesc orden numérico descendente; N/A al final.
func numericDesc(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA != nil:
		return false
	case errB != nil:
		return true
	}
	return fa > fb
}
