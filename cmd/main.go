package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arzan03/musicland/internal/app"
	"github.com/arzan03/musicland/internal/config"
	"github.com/arzan03/musicland/internal/db"
	"github.com/arzan03/musicland/internal/handlers"
	"github.com/arzan03/musicland/internal/logger"
	"github.com/arzan03/musicland/internal/middleware"
	"github.com/arzan03/musicland/internal/services"
	"github.com/arzan03/musicland/internal/storage"
	"github.com/arzan03/musicland/internal/utils"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, database, err := db.ConnectMongoDB(ctx, cfg.MongoURI, cfg.DBName, log)
	if err != nil {
		log.Fatal("MongoDB connection failed", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}()

	deps := handlers.Deps{
		Users:   db.NewUserStore(database),
		Classes: db.NewClassStore(database),
		Carts:   db.NewCartStore(database),
		Timeout: cfg.RequestTimeout,
	}

	required := []utils.Task{{
		Name: "indexes",
		Run: func(ctx context.Context) error {
			return db.EnsureIndexes(ctx, database)
		},
	}}
	var optional []utils.Task

	if cfg.MinioEndpoint != "" {
		images, err := storage.NewMinioImageStore(storage.MinioOptions{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			UseSSL:    cfg.MinioUseSSL,
			Bucket:    cfg.MinioBucket,
		})
		if err != nil {
			log.Warn("Class image storage disabled", zap.Error(err))
		} else {
			deps.Images = images
			optional = append(optional, utils.Task{Name: "image bucket", Run: images.EnsureBucket})
		}
	} else {
		log.Info("MINIO_ENDPOINT not set, class image uploads disabled")
	}

	if cfg.PaymentSecretKey != "" {
		deps.Payments = services.NewStripePaymentService(cfg.PaymentSecretKey)
	} else {
		log.Warn("PAYMENT_SECRET_KEY not set, payment intents disabled")
	}

	var tokens *services.TokenService
	if cfg.JWTSecret != "" {
		tokens = services.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL)
		deps.Tokens = tokens
	}
	switch {
	case cfg.IdentityJWKSURL != "":
		identity, err := services.NewJWKSIdentityVerifier(cfg.IdentityJWKSURL, cfg.IdentityTokenIssuer, cfg.IdentityAudience)
		if err != nil {
			log.Fatal("Identity key set unavailable", zap.Error(err))
		}
		defer identity.Close()
		deps.Identity = identity
	case cfg.IdentityTokenSecret != "":
		deps.Identity = services.NewIdentityVerifier(cfg.IdentityTokenSecret, cfg.IdentityTokenIssuer)
	case cfg.AuthEnforce:
		log.Warn("No identity provider configured, issued access tokens carry no role")
	}
	deps.Auth = middleware.NewAuthorizer(tokens, cfg.AuthEnforce)

	setupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	err = app.RunStartup(setupCtx, log, required, optional)
	cancel()
	if err != nil {
		log.Fatal("Start-up tasks failed", zap.Error(err))
	}

	server := app.NewServer(deps, log)

	go func() {
		<-ctx.Done()
		log.Info("Shutting down")
		if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error("Shutdown failed", zap.Error(err))
		}
	}()

	log.Info("music land is running", zap.String("port", cfg.Port), zap.Bool("auth_enforced", cfg.AuthEnforce))
	if err := server.Listen(":" + cfg.Port); err != nil {
		log.Error("Server stopped", zap.Error(err))
	}
}
