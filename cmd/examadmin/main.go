package main

import (
	"context"
	"errors"
	"examadmin/internal/config"
	"examadmin/internal/database/driver"
	"examadmin/internal/database/migrations"
	"examadmin/internal/database/repository/pgsql"
	"examadmin/internal/http-server/handler/banner"
	bannerCreate "examadmin/internal/http-server/handler/banner/create"
	bannerDelete "examadmin/internal/http-server/handler/banner/delete"
	bannerGet "examadmin/internal/http-server/handler/banner/get"
	bannerStatus "examadmin/internal/http-server/handler/banner/status"
	bannerUpdate "examadmin/internal/http-server/handler/banner/update"
	"examadmin/internal/http-server/handler/banner/upload"
	"examadmin/internal/http-server/handler/notice"
	"examadmin/internal/http-server/handler/notice/active"
	noticeCreate "examadmin/internal/http-server/handler/notice/create"
	noticeDelete "examadmin/internal/http-server/handler/notice/delete"
	noticeGet "examadmin/internal/http-server/handler/notice/get"
	"examadmin/internal/http-server/handler/notice/latest"
	noticeStatus "examadmin/internal/http-server/handler/notice/status"
	noticeUpdate "examadmin/internal/http-server/handler/notice/update"
	"examadmin/internal/http-server/middleware/logger"
	"examadmin/internal/http-server/middleware/validator"
	"examadmin/internal/objectstorage"
	bannerService "examadmin/internal/service/banner"
	noticeService "examadmin/internal/service/notice"
	"examadmin/pkg/lib/logger/slogpretty"
	"examadmin/pkg/lib/sl"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg, scr := config.MustLoad()
	log := setupLogger(cfg.Env)

	log.Info("starting app", slog.String("env", cfg.Env))

	log.Debug("debug messages are enabled")

	sqlxConfig := &driver.SQLXConfig{
		DriverName:     cfg.DriverName,
		DataSourceName: driver.PostgresDSN(cfg.Host, cfg.Port, cfg.Username, scr.PostgresPassword, cfg.DBname, cfg.SSLmode),
		MaxOpenConns:   cfg.MaxOpenConns,
		MaxIdleConns:   cfg.MaxIdleConns,
		MaxLifetime:    cfg.MaxLifetime,
	}

	db, err := sqlxConfig.Connect(context.Background(), log)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if cfg.Migrate {
		if err := migrations.Up(context.Background(), log, db); err != nil {
			log.Error("failed to apply migrations", sl.Err(err))
			os.Exit(1)
		}
	}

	store, err := objectstorage.New(log, objectstorage.Config{
		Endpoint:  cfg.Minio.Endpoint,
		AccessKey: scr.MinioAccessKey,
		SecretKey: scr.MinioSecretKey,
		Bucket:    cfg.Minio.Bucket,
		Region:    cfg.Minio.Region,
		UseSSL:    cfg.Minio.UseSSL,
		PublicURL: cfg.Minio.PublicURL,
	})
	if err != nil {
		log.Error("failed to init object storage", sl.Err(err))
		os.Exit(1)
	}

	if err := store.EnsureBucket(context.Background(), cfg.Minio.Region); err != nil {
		log.Error("failed to prepare bucket", sl.Err(err))
		os.Exit(1)
	}

	txManager := driver.NewTxManager(db)

	banners := bannerService.New(log, pgsql.NewBannerRepository(db), store, txManager, bannerService.UploadPolicy{
		MaxSize:        cfg.Upload.MaxSize,
		AllowedTypes:   cfg.Upload.AllowedTypes,
		DangerousTypes: cfg.Upload.DangerousTypes,
	})
	notices := noticeService.New(log, pgsql.NewNoticeRepository(db), txManager)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(logger.New(log))

	router.Route("/api", func(r chi.Router) {
		r.Route("/banners", func(r chi.Router) {
			r.Get("/", banner.New(log, banners))
			r.With(validator.Body[validator.CreateBannerRequest](log)).Post("/", bannerCreate.New(log, banners))
			r.Post("/upload", upload.New(log, banners))

			r.Route("/{id}", func(r chi.Router) {
				r.Use(validator.ID(log))
				r.Get("/", bannerGet.New(log, banners))
				r.With(validator.Body[validator.UpdateBannerRequest](log)).Put("/", bannerUpdate.New(log, banners))
				r.Patch("/status", bannerStatus.New(log, banners))
				r.Delete("/", bannerDelete.New(log, banners))
			})
		})

		r.Route("/notices", func(r chi.Router) {
			r.Get("/", notice.New(log, notices))
			r.Get("/active", active.New(log, notices))
			r.Get("/latest", latest.New(log, notices))
			r.With(validator.Body[validator.CreateNoticeRequest](log)).Post("/", noticeCreate.New(log, notices))

			r.Route("/{id}", func(r chi.Router) {
				r.Use(validator.ID(log))
				r.Get("/", noticeGet.New(log, notices))
				r.With(validator.Body[validator.UpdateNoticeRequest](log)).Put("/", noticeUpdate.New(log, notices))
				r.Patch("/status", noticeStatus.New(log, notices))
				r.Delete("/", noticeDelete.New(log, notices))
			})
		})
	})
	//TODO: auth middleware for the admin routes

	log.Info("starting server", slog.String("address", cfg.Address))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Info("shutting server", sl.Err(err))
				return
			}
			log.Error("failed to start server", sl.Err(err))
		}
	}()

	log.Info("server started")
	sign := <-done
	log.Info("stopping server", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to stop server", sl.Err(err))
		return
	}

	if err := db.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
		return
	}

	log.Info("server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = setupPrettyLogger()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}

func setupPrettyLogger() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
