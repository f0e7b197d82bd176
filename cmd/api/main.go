package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/ipda-secretaria/secretaria-api/internal/application/analytics"
	"github.com/ipda-secretaria/secretaria-api/internal/application/document"
	"github.com/ipda-secretaria/secretaria-api/internal/application/ledger"
	"github.com/ipda-secretaria/secretaria-api/internal/application/report"
	"github.com/ipda-secretaria/secretaria-api/internal/application/usecase"
	"github.com/ipda-secretaria/secretaria-api/internal/infrastructure/cache"
	"github.com/ipda-secretaria/secretaria-api/internal/infrastructure/cep"
	"github.com/ipda-secretaria/secretaria-api/internal/infrastructure/notify"
	infrapdf "github.com/ipda-secretaria/secretaria-api/internal/infrastructure/pdf"
	"github.com/ipda-secretaria/secretaria-api/internal/infrastructure/postgres"
	httpRouter "github.com/ipda-secretaria/secretaria-api/internal/interfaces/http"
	"github.com/ipda-secretaria/secretaria-api/pkg/config"
	"github.com/ipda-secretaria/secretaria-api/pkg/logger"
)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// run devuelve el error en vez de terminar el proceso, así sus defer cierran pool y notificadores.
	if err := run(context.Background(), cfg, log, quit); err != nil {
		log.Fatal().Err(err).Msg("aplicación finalizada con error")
	}
	log.Info().Msg("aplicación detenida")
}

// run arma las dependencias, sirve HTTP y bloquea hasta recibir en quit.
func run(ctx context.Context, cfg *config.Config, log *logger.Logger, quit <-chan os.Signal) error {
	if cfg.JWT.Secret == "" {
		return errors.New("JWT_SECRET requerido")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		return fmt.Errorf("migraciones: %w", err)
	}
	if len(applied) > 0 {
		log.Info().Strs("migrations", applied).Msg("migraciones aplicadas")
	}

	// Las listas de ítems, igrejas y membros se leen de una instantánea que se descarta tras cada escritura.
	itemRepo := cache.NewItemRepository(postgres.NewInventoryItemRepository(pool))
	memberRepo := cache.NewMemberRepository(postgres.NewMemberRepository(pool))
	churchRepo := cache.NewChurchRepository(postgres.NewChurchRepository(pool), memberRepo)
	movementRepo := postgres.NewMovementRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)

	notifier, notifyCloser, err := notify.FromConfig(cfg.Notify, auditRepo)
	if err != nil {
		return fmt.Errorf("notificaciones: %w", err)
	}
	defer func() {
		if err := notifyCloser.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar notificaciones")
		}
	}()

	stockLedger, err := ledger.New(
		postgres.NewTxRunner(pool, cfg.DB.LockTimeout),
		itemRepo, movementRepo, transferRepo, churchRepo,
		ledger.Config{
			TransferInitialStatus: cfg.Inventory.TransferInitialStatus,
			Notifier:              notifier,
			Cache:                 itemRepo,
			Logger:                log,
		},
	)
	if err != nil {
		return fmt.Errorf("libro de stock: %w", err)
	}

	pageSize := cfg.Inventory.PageSize
	itemUC := usecase.NewItemUseCase(itemRepo, notifier, log, pageSize)
	churchUC := usecase.NewChurchUseCase(churchRepo, notifier, log, pageSize)
	memberUC := usecase.NewMemberUseCase(memberRepo, churchRepo, notifier, log, pageSize)
	dashboardUC := appanalytics.NewDashboardUseCase(memberRepo, churchRepo, stockLedger)

	// PDF: cartas, remanejamentos y relatórios con el encabezado de la organización
	renderer := infrapdf.NewMarotoRenderer(infrapdf.Header{
		Organization: cfg.Letter.OrganizationName,
		Address:      cfg.Letter.Address,
		Phone:        cfg.Letter.Phone,
		Email:        cfg.Letter.Email,
	})
	reportUC := report.NewUseCase(memberRepo, churchRepo, itemRepo, renderer)
	documentUC := document.NewUseCase(memberRepo, churchRepo, renderer, cfg.Letter.OrganizationName)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Secretaria IPDA API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:      itemUC,
		ChurchUC:    churchUC,
		MemberUC:    memberUC,
		Ledger:      stockLedger,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		DocumentUC:  documentUC,
		CEP:         cep.NewViaCEPClient(cfg.CEP.BaseURL, cfg.CEP.Timeout),
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	return nil
}
