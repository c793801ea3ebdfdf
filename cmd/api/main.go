package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	dbadapter "rtodo/internal/adapter/db"
	httpadapter "rtodo/internal/adapter/http"
	"rtodo/internal/adapter/http/handlers"
	httpmiddleware "rtodo/internal/adapter/http/middleware"
	mailadapter "rtodo/internal/adapter/mail"
	"rtodo/internal/app/reminder"
	appservice "rtodo/internal/app/service"
	"rtodo/internal/config"
	"rtodo/pkg/nonce"
	"rtodo/pkg/translator"
)

// Nonces stay valid for the window they were minted in plus the previous
// one, so the effective lifetime is up to twice this value.
const nonceWindow = 12 * time.Hour

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	if cfg.AuthSecret == "" || cfg.NonceSecret == "" {
		logger.Fatal("AUTH_SECRET and NONCE_SECRET must be set")
	}

	if err := dbadapter.Migrate(cfg); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			zap.L().Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal("invalid timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	taskRepository := dbadapter.NewTaskRepository(db)
	taskService := appservice.NewTaskService(taskRepository)
	nonces := nonce.New(cfg.NonceSecret, nonceWindow)

	scheduler := cron.New(cron.WithLocation(location))
	if cfg.SmtpHost == "" {
		logger.Warn("SMTP_HOST not set, reminder digests disabled")
	} else {
		mailer, err := mailadapter.NewSMTPMailer(cfg)
		if err != nil {
			logger.Fatal("failed to create smtp mailer", zap.Error(err))
		}

		job := reminder.NewJob(taskRepository, mailer, location, cfg.SiteURL)
		if _, err := scheduler.AddFunc(cfg.ReminderCron, func() {
			if err := job.Run(context.Background()); err != nil {
				zap.L().Error("reminder run failed", zap.Error(err))
			}
		}); err != nil {
			logger.Fatal("invalid reminder schedule", zap.String("spec", cfg.ReminderCron), zap.Error(err))
		}

		scheduler.Start()
		defer scheduler.Stop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(taskService)
	nonceHandler := handlers.NewNonceHandler(nonces)
	httpadapter.RegisterRoutes(r, cfg.AuthSecret, nonces, healthHandler, taskHandler, nonceHandler)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
