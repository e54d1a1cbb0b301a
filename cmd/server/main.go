package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/knightandthey/knightshade-email-service/internal/api"
	"github.com/knightandthey/knightshade-email-service/internal/service"
	"github.com/knightandthey/knightshade-email-service/internal/store"
	"github.com/knightandthey/knightshade-email-service/pkg/config"
	"github.com/knightandthey/knightshade-email-service/pkg/httpserver"
	"github.com/knightandthey/knightshade-email-service/pkg/logger"
	"github.com/knightandthey/knightshade-email-service/pkg/mailer"
	"github.com/knightandthey/knightshade-email-service/pkg/mongo"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"email-composer"`
}

func main() {
	var (
		appCfg    appConfig
		httpCfg   httpserver.Config
		mongoCfg  mongo.Config
		mailerCfg mailer.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&mailerCfg)

	log := logger.New(logger.WithEnvironment(appCfg.Environment, appCfg.ServiceName))
	logger.SetAsDefault(log)

	ctx := context.Background()

	db, err := mongo.NewWithDatabase(ctx, mongoCfg)
	if err != nil {
		log.Error("failed to connect to mongo", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	// A real provider is used only when Postmark is fully configured;
	// otherwise emails land in the dev output directory.
	var sender mailer.Sender
	if mailerCfg.PostmarkServerToken != "" && mailerCfg.PostmarkAccountToken != "" {
		sender = mailer.MustNewPostmarkSender(mailerCfg)
		log.Info("mailer configured", slog.String("provider", "postmark"))
	} else {
		sender = mailer.NewDevSender(mailerCfg.DevOutputDir)
		log.Warn("postmark tokens missing, using filesystem dev sender",
			slog.String("dir", mailerCfg.DevOutputDir))
	}

	logs := store.NewLogRepository(db)
	customTemplates := store.NewTemplateRepository(db)
	unsubscribes := store.NewUnsubscribeRepository(db)

	router := api.Router(api.Dependencies{
		Send:        service.NewSendService(logs, unsubscribes, sender, mailerCfg.SenderEmail, log),
		Preview:     service.NewPreviewService(),
		Templates:   service.NewTemplateService(customTemplates),
		Transfer:    service.NewTransferService(customTemplates),
		Unsubscribe: service.NewUnsubscribeService(unsubscribes),
		Health:      httpserver.HealthCheckHandler(ctx, log, mongo.Healthcheck(db.Client())),
		Logger:      log,
	})

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("http server listening", slog.String("addr", httpCfg.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("http server stopped")
		}),
	)

	if err := srv.Run(ctx, router); err != nil {
		log.Error("http server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
