package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rollstock-api/internal/application/dto"
	"github.com/jhoicas/Rollstock-api/internal/application/report"
	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/internal/infrastructure/xmlexport"
)

const dateLayout = "2006-01-02"

// DashboardRenderer genera el PDF del tablero. Lo implementa *pdf.MarotoPDFGenerator.
type DashboardRenderer interface {
	AgingDashboardPDF(ctx context.Context, dash *report.AgingDashboard) ([]byte, error)
}

// ReportHandler listados, tablero de antigüedad e historial (permiso reports).
type ReportHandler struct {
	uc  *report.ReportUseCase
	pdf DashboardRenderer
	now func() time.Time
}

// NewReportHandler construye el handler. pdf puede ser nil.
func NewReportHandler(uc *report.ReportUseCase, pdf DashboardRenderer) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf, now: time.Now}
}

// StockList godoc
// @Summary      Listado de stock
// @Description  kind_gsm combina tipo y gramaje (p.ej. KL125). Orden por defecto goods_receive_date.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        plant     path   string  true   "Planta"
// @Param        class     path   string  true   "pr | fg"
// @Param        kind_gsm  query  string  false  "Tipo y/o gramaje"
// @Param        width     query  string  false  "Ancho"
// @Param        batch     query  string  false  "Lote"
// @Param        sort      query  string  false  "Columna de orden"
// @Param        order     query  string  false  "asc | desc"
// @Param        page      query  int     false  "Página desde 1"
// @Success      200  {object}  dto.StockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/stock [get]
func (h *ReportHandler) StockList(c *fiber.Ctx) error {
	var in dto.StockListRequest
	if ok, err := parseQuery(c, &in); !ok {
		return err
	}
	page, err := h.uc.StockList(c.UserContext(), GetSession(c), report.StockListQuery{
		Class:   GetClass(c),
		Plant:   c.Params("plant"),
		KindGSM: in.KindGSM,
		Width:   in.Width,
		Batch:   in.Batch,
		SortKey: in.Sort,
		Desc:    in.Order == "desc",
		Page:    in.Page,
	})
	if err != nil {
		return writeError(c, err)
	}
	out := dto.StockListResponse{
		Items:      make([]dto.StockItemResponse, 0, len(page.Rows)),
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalRows:  page.TotalRows,
		TotalPages: page.TotalPages,
	}
	for _, r := range page.Rows {
		out.Items = append(out.Items, toStockItemResponse(r.Item, r.AgingDays))
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Tablero de antigüedad
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        plant  path  string  true  "Planta"
// @Param        class  path  string  true  "pr | fg"
// @Success      200  {object}  dto.AgingDashboardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	dash, err := h.uc.AgingDashboard(c.UserContext(), GetSession(c), GetClass(c), c.Params("plant"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toDashboardResponse(dash))
}

// DashboardPDF godoc
// @Summary      Tablero de antigüedad en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        plant  path  string  true  "Planta"
// @Param        class  path  string  true  "pr | fg"
// @Success      200  {file}  binary
// @Router       /api/plants/{plant}/{class}/dashboard.pdf [get]
func (h *ReportHandler) DashboardPDF(c *fiber.Ctx) error {
	if h.pdf == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_AVAILABLE", Message: "PDF deshabilitado"})
	}
	dash, err := h.uc.AgingDashboard(c.UserContext(), GetSession(c), GetClass(c), c.Params("plant"))
	if err != nil {
		return writeError(c, err)
	}
	body, err := h.pdf.AgingDashboardPDF(c.UserContext(), dash)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="aging-`+dash.Plant+`.pdf"`)
	return c.Send(body)
}

// Movements godoc
// @Summary      Historial de movimientos
// @Description  from/to son días UTC inclusive. type: 101, 201, 202 o 999.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        plant   path   string  true   "Planta"
// @Param        class   path   string  true   "pr | fg"
// @Param        from    query  string  false  "Desde (2006-01-02)"
// @Param        to      query  string  false  "Hasta (2006-01-02)"
// @Param        user    query  string  false  "Usuario (contiene)"
// @Param        type    query  string  false  "Tipo de movimiento"
// @Param        sort    query  string  false  "Columna de orden"
// @Param        order   query  string  false  "asc | desc"
// @Param        limit   query  int     false  "Límite (0 = todos, leídos en páginas)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}   dto.MovementEventResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	q, ok, err := h.historyQuery(c)
	if !ok {
		return err
	}
	events, err := h.uc.MovementHistory(c.UserContext(), GetSession(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toMovementList(events))
}

// MovementsXML godoc
// @Summary      Historial de movimientos en XML
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Param        plant  path   string  true   "Planta"
// @Param        class  path   string  true   "pr | fg"
// @Param        from   query  string  false  "Desde (2006-01-02)"
// @Param        to     query  string  false  "Hasta (2006-01-02)"
// @Success      200  {file}  binary
// @Router       /api/plants/{plant}/{class}/movements.xml [get]
func (h *ReportHandler) MovementsXML(c *fiber.Ctx) error {
	q, ok, err := h.historyQuery(c)
	if !ok {
		return err
	}
	events, err := h.uc.MovementHistory(c.UserContext(), GetSession(c), q)
	if err != nil {
		return writeError(c, err)
	}
	body, err := xmlexport.MovementHistory(xmlexport.MovementHistoryMeta{
		Class:       q.Class,
		Plant:       q.Plant,
		GeneratedAt: h.now(),
		From:        q.From,
		To:          q.To,
	}, events)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(body)
}

func (h *ReportHandler) historyQuery(c *fiber.Ctx) (report.HistoryQuery, bool, error) {
	var in dto.MovementHistoryRequest
	if ok, err := parseQuery(c, &in); !ok {
		return report.HistoryQuery{}, false, err
	}
	q := report.HistoryQuery{
		Class:   GetClass(c),
		Plant:   c.Params("plant"),
		User:    in.User,
		Type:    entity.MovementType(in.Type),
		SortKey: in.Sort,
		Desc:    in.Order == "desc",
		Limit:   in.Limit,
		Offset:  in.Offset,
	}
	var err error
	if q.From, err = optionalDate(in.From); err != nil {
		return q, false, writeError(c, domain.Invalid("from", "fecha inválida"))
	}
	if q.To, err = optionalDate(in.To); err != nil {
		return q, false, writeError(c, domain.Invalid("to", "fecha inválida"))
	}
	return q, true, nil
}

// OpnameReport godoc
// @Summary      Lecturas de inventario físico del día
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        plant  path   string  true   "Planta"
// @Param        class  path   string  true   "pr | fg"
// @Param        date   query  string  true   "Día UTC (2006-01-02)"
// @Param        bin    query  string  false  "Ubicación (contiene)"
// @Success      200  {array}   dto.OpnameRowResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/plants/{plant}/{class}/opname-report [get]
func (h *ReportHandler) OpnameReport(c *fiber.Ctx) error {
	var in dto.OpnameReportRequest
	if ok, err := parseQuery(c, &in); !ok {
		return err
	}
	day, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return writeError(c, domain.Invalid("date", "fecha inválida"))
	}
	rows, err := h.uc.OpnameReport(c.UserContext(), GetSession(c), GetClass(c), c.Params("plant"), day, in.Bin)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toOpnameRows(rows))
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
