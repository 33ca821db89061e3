package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ITECH-Group8/WellLog/config"
	"github.com/ITECH-Group8/WellLog/controllers"
	"github.com/ITECH-Group8/WellLog/logger"
	"github.com/ITECH-Group8/WellLog/routes"
	"github.com/ITECH-Group8/WellLog/services"
	"github.com/ITECH-Group8/WellLog/storage"
	"github.com/ITECH-Group8/WellLog/utils"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFile)

	db, err := cfg.OpenDB()
	if err != nil {
		slog.Error("database init failed", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// The local store always exists; it doubles as the fallback when S3
	// uploads fail.
	local, err := storage.NewLocalStorage(cfg.MediaDir, cfg.MediaBaseURL)
	if err != nil {
		slog.Error("media dir init failed", "err", err)
		os.Exit(1)
	}

	var primary storage.BlobStorage = local
	var fallback storage.BlobStorage
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Storage(ctx, cfg.S3Region, cfg.S3Bucket, cfg.S3BaseURL)
		if err != nil {
			slog.Error("S3 init failed", "err", err)
			os.Exit(1)
		}
		primary = s3Store
		fallback = local
	}

	var mailer *utils.Mailer
	if cfg.SESEmail != "" {
		mailer, err = utils.NewMailer(ctx, cfg.S3Region, cfg.SESEmail)
		if err != nil {
			slog.Warn("SES init failed, email features disabled", "err", err)
			mailer = nil
		}
	}

	users := services.NewUserService(db)
	records := services.NewRecordService(db)
	advice := services.NewAdviceService(db, records, cfg.AI)
	export := services.NewExportService(db, records)
	feed := services.NewFeedHub()
	images := services.NewImageService(primary, fallback)
	community := services.NewCommunityService(db, images, feed)

	ctrl := routes.Controllers{
		Auth:      controllers.NewAuthController(users, mailer, cfg.JWTSecret),
		User:      controllers.NewUserController(users),
		Record:    controllers.NewRecordController(records),
		Goal:      controllers.NewGoalController(records),
		Advice:    controllers.NewAdviceController(advice),
		Dashboard: controllers.NewDashboardController(records, advice),
		Export:    controllers.NewExportController(export),
		Community: controllers.NewCommunityController(community),
		Feed:      controllers.NewFeedController(feed),
	}

	r := routes.SetupRouter(cfg, db, ctrl)

	slog.Info("starting server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}
