package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Rollstock-api/docs"
	"github.com/jhoicas/Rollstock-api/internal/application/account"
	"github.com/jhoicas/Rollstock-api/internal/application/auth"
	"github.com/jhoicas/Rollstock-api/internal/application/importer"
	"github.com/jhoicas/Rollstock-api/internal/application/inventory"
	"github.com/jhoicas/Rollstock-api/internal/application/opname"
	"github.com/jhoicas/Rollstock-api/internal/application/report"
	"github.com/jhoicas/Rollstock-api/internal/domain/repository"
	"github.com/jhoicas/Rollstock-api/internal/infrastructure/memory"
	"github.com/jhoicas/Rollstock-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/Rollstock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Rollstock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Rollstock-api/internal/infrastructure/redisstore"
	"github.com/jhoicas/Rollstock-api/internal/infrastructure/s3archive"
	httpRouter "github.com/jhoicas/Rollstock-api/internal/interfaces/http"
	"github.com/jhoicas/Rollstock-api/pkg/config"
	"github.com/jhoicas/Rollstock-api/pkg/logger"
)

// @title                       Rollstock API
// @version                     1.0
// @description                 Libro de stock de rollos de papel y producto terminado por planta.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Sesiones revocadas, tokens de recuperación y eventos: Redis si hay REDIS_URL, si no en memoria
	// (solo válido con una única instancia).
	var (
		sessions repository.SessionStore
		notifier auth.SessionNotifier
	)
	if cfg.Redis.URL != "" {
		rdb, err := redisstore.NewClient(cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		sessions = redisstore.NewSessionStore(rdb)
		notifier = redisstore.NewNotifier(rdb, log.Named("notifier"))
	} else {
		log.Warn().Msg("REDIS_URL vacío: sesiones y eventos en memoria")
		sessions = memory.NewSessionStore()
		notifier = memory.NewNotifier()
	}

	var archiver importer.Archiver
	if cfg.S3.Enabled() {
		a, err := s3archive.New(ctx, cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente S3")
		}
		archiver = a
		log.Info().Str("bucket", cfg.S3.Bucket).Msg("archivo de cargas en S3 habilitado")
	}

	reg := metrics.New("rollstock")

	accountRepo := postgres.NewAccountRepository(pool)
	itemRepo := postgres.NewStockItemRepository(pool)
	eventRepo := postgres.NewMovementEventRepository(pool)
	opnameRepo := postgres.NewOpnameRepository(pool)
	scheduleRepo := postgres.NewDeliveryScheduleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(accountRepo, sessions, notifier, auth.LogMailer{Log: log.Named("mailer")}, auth.Config{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
		ResetTTL:   time.Duration(cfg.Redis.ResetTTLMinutes) * time.Minute,
	}, log.Named("auth"))
	accountUC := account.NewAccountUseCase(accountRepo, authUC, log.Named("accounts"))
	ledgerUC := inventory.NewLedgerUseCase(txRunner, itemRepo, eventRepo, scheduleRepo, reg, log.Named("ledger"))
	reportUC := report.NewReportUseCase(itemRepo, eventRepo, opnameRepo, report.Options{
		FetchPageSize: cfg.Report.FetchPageSize,
		ListPageSize:  cfg.Report.ListPageSize,
	}, log.Named("reports"))
	opnameUC := opname.NewOpnameUseCase(itemRepo, opnameRepo, log.Named("opname"))
	importUC := importer.NewImportUseCase(txRunner, scheduleRepo, archiver, log.Named("imports"))

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 30,
		IdleTimeout: time.Second * 60,
		BodyLimit:   32 << 20,
		// Sin WriteTimeout: /api/auth/events mantiene la respuesta abierta.
	})
	app.Use(recover.New())
	app.Use(reg.Middleware())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Rollstock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(reg.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		AccountUC: accountUC,
		LedgerUC:  ledgerUC,
		ReportUC:  reportUC,
		OpnameUC:  opnameUC,
		ImportUC:  importUC,
		Labels:    pdfGenerator,
		Dashboard: pdfGenerator,
		Log:       log.Named("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
