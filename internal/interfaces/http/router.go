package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rollstock-api/internal/application/account"
	"github.com/jhoicas/Rollstock-api/internal/application/auth"
	"github.com/jhoicas/Rollstock-api/internal/application/importer"
	"github.com/jhoicas/Rollstock-api/internal/application/inventory"
	"github.com/jhoicas/Rollstock-api/internal/application/opname"
	"github.com/jhoicas/Rollstock-api/internal/application/report"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
	"github.com/jhoicas/Rollstock-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	AccountUC *account.AccountUseCase
	LedgerUC  *inventory.LedgerUseCase
	ReportUC  *report.ReportUseCase
	OpnameUC  *opname.OpnameUseCase
	ImportUC  *importer.ImportUseCase
	Labels    LabelRenderer     // opcional
	Dashboard DashboardRenderer // opcional
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.AuthUC)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/signin", authHandler.SignIn)
	authGroup.Post("/password-reset", authHandler.RequestPasswordReset)
	authGroup.Post("/password-reset/confirm", authHandler.ConfirmPasswordReset)
	authGroup.Post("/signout", requireAuth, authHandler.SignOut)
	authGroup.Get("/session", requireAuth, authHandler.Session)
	authGroup.Patch("/profile", requireAuth, authHandler.UpdateProfile)
	authGroup.Get("/events", requireAuth, authHandler.Events)

	// Gestor de usuarios
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts := api.Group("/accounts", requireAuth, RequirePermission(entity.PermissionUserManager))
	accounts.Get("/", accountHandler.List)
	accounts.Get("/:id", accountHandler.Get)
	accounts.Put("/:id", accountHandler.Update)

	// Operaciones por planta (Bearer + acceso a la planta)
	plant := api.Group("/plants/:plant", requireAuth, RequirePlantAccess())

	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.Labels)
	reportHandler := NewReportHandler(deps.ReportUC, deps.Dashboard)
	opnameHandler := NewOpnameHandler(deps.OpnameUC)
	importHandler := NewImportHandler(deps.ImportUC, deps.LedgerUC)

	for _, class := range []entity.ItemClass{entity.ClassPaperRoll, entity.ClassFinishedGood} {
		g := plant.Group("/"+classSegment(class), WithClass(class))
		stock := RequirePermission(classPermission(class))

		g.Post("/receive", stock, ledgerHandler.Receive)
		g.Post("/receive/cancel", stock, ledgerHandler.CancelReceive)
		g.Post("/issue", stock, ledgerHandler.Issue)
		g.Post("/issue/cancel", stock, ledgerHandler.CancelIssue)
		g.Post("/relocate", stock, ledgerHandler.Relocate)
		g.Post("/relocate/cancel", stock, ledgerHandler.CancelRelocation)
		g.Get("/items/:code", stock, ledgerHandler.GetItem)
		g.Get("/items/:code/label.pdf", stock, ledgerHandler.ItemLabel)
		if class == entity.ClassPaperRoll {
			g.Post("/return", stock, ledgerHandler.Return)
			g.Get("/return/preview", stock, ledgerHandler.PreviewReturn)
			g.Post("/used-up", stock, ledgerHandler.UseUp)
			g.Get("/in-production", stock, ledgerHandler.InProduction)
		}

		reports := RequirePermission(entity.PermissionReports)
		g.Get("/stock", reports, reportHandler.StockList)
		g.Get("/dashboard", reports, reportHandler.Dashboard)
		g.Get("/dashboard.pdf", reports, reportHandler.DashboardPDF)
		g.Get("/movements", reports, reportHandler.Movements)
		g.Get("/movements.xml", reports, reportHandler.MovementsXML)
		g.Get("/opname-report", reports, reportHandler.OpnameReport)

		count := RequirePermission(entity.PermissionOpname)
		g.Post("/opname", count, opnameHandler.Scan)
		g.Delete("/opname/:id", count, opnameHandler.Delete)

		g.Post("/stock/import", RequirePermission(entity.PermissionUploads), importHandler.SyncStock)
	}

	schedules := plant.Group("/delivery-schedules")
	schedules.Get("/", RequirePermission(entity.PermissionFGStock), importHandler.ListSchedule)
	schedules.Post("/", RequirePermission(entity.PermissionUploads), importHandler.ImportSchedule)
	schedules.Get("/:sales_no/:sales_item/issued", RequirePermission(entity.PermissionFGStock), importHandler.IssuedForLine)
}

func classSegment(class entity.ItemClass) string {
	if class == entity.ClassFinishedGood {
		return "fg"
	}
	return "pr"
}
