package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ecopad/ecopad-manager/internal/application/session"
	"github.com/ecopad/ecopad-manager/internal/application/usecase"
	infrapdf "github.com/ecopad/ecopad-manager/internal/infrastructure/pdf"
	"github.com/ecopad/ecopad-manager/internal/infrastructure/workbook"
	httpRouter "github.com/ecopad/ecopad-manager/internal/interfaces/http"
	"github.com/ecopad/ecopad-manager/pkg/config"
	"github.com/ecopad/ecopad-manager/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	store := workbook.NewStore(cfg.Store.WorkbookPath, cfg.Store.IncrementalPath, log)
	sess := session.New(store, log)

	// Carga inicial do livro. Sem a pasta de trabalho histórica não há o
	// que servir; a incremental ausente é tolerada na carga.
	if err := sess.Reload(context.Background()); err != nil {
		log.Fatal().Err(err).Str("workbook", cfg.Store.WorkbookPath).Msg("carga inicial do livro")
	}

	dashboardUC := usecase.NewDashboardUseCase(sess)
	salesUC := usecase.NewSalesUseCase(store, sess)

	pdfGenerator := infrapdf.NewMarotoSummaryGenerator()
	reportUC := usecase.NewReportUseCase(dashboardUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC: dashboardUC,
		SalesUC:     salesUC,
		ReportUC:    reportUC,
		Session:     sess,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação detida")
}
