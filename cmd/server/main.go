package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/muthomi-ke/land-platform/internal/adapter/httpapi"
	"github.com/muthomi-ke/land-platform/internal/adapter/messaging/nats"
	"github.com/muthomi-ke/land-platform/internal/adapter/repository/cache"
	"github.com/muthomi-ke/land-platform/internal/adapter/repository/mongodb"
	"github.com/muthomi-ke/land-platform/internal/adapter/storage/s3"
	"github.com/muthomi-ke/land-platform/internal/auth"
	"github.com/muthomi-ke/land-platform/internal/config"
	"github.com/muthomi-ke/land-platform/internal/geo"
	"github.com/muthomi-ke/land-platform/internal/mailer"
	"github.com/muthomi-ke/land-platform/internal/platform/logger"
	"github.com/muthomi-ke/land-platform/internal/platform/tracer"
	"github.com/muthomi-ke/land-platform/internal/plot/domain"
	"github.com/muthomi-ke/land-platform/internal/plot/usecase"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("Failed to load configuration", "error", err.Error())
		os.Exit(1)
	}

	if tp := tracer.Init(); tp != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				log.Warn("Tracer shutdown failed", "error", err.Error())
			}
		}()
	}

	// Every backing service is optional except the JWT secret. A missing
	// service leaves its interface nil and the affected endpoints degrade
	// with an explicit "not configured" response instead of crashing.
	var (
		plotRepo     domain.PlotRepository
		leadRepo     domain.LeadRepository
		userRepo     domain.UserRepository
		plotCache    usecase.Cache
		sessionStore auth.SessionStore
		mediaStore   usecase.Storage
		publisher    usecase.Publisher
		sender       usecase.SubmissionMailer
	)

	if cfg.DataGatewayConfigured() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err == nil {
			err = client.Ping(ctx, readpref.Primary())
		}
		cancel()
		if err != nil {
			log.Error("Failed to connect to MongoDB", "error", err.Error())
			os.Exit(1)
		}
		defer client.Disconnect(context.Background())

		db := client.Database(cfg.MongoDB)
		plotRepo = mongodb.NewPlotRepository(db)
		leadRepo = mongodb.NewLeadRepository(db)
		userRepo = mongodb.NewUserRepository(db)
		log.Info("Connected to MongoDB", "database", cfg.MongoDB)
	} else {
		log.Warn("MONGO_URI not set, data endpoints will report not configured")
	}

	if cfg.RedisAddress != "" {
		pc, err := cache.NewPlotCache(cfg.RedisAddress)
		if err != nil {
			log.Warn("Redis unavailable, running without cache or session revocation", "error", err.Error())
		} else {
			plotCache = pc
			sessionStore = cache.NewSessionStore(pc.Client())
			log.Info("Connected to Redis", "address", cfg.RedisAddress)
		}
	}

	if cfg.NATSURL != "" {
		pub, err := nats.NewPublisher(cfg.NATSURL)
		if err != nil {
			log.Warn("NATS unavailable, running without event publishing", "error", err.Error())
		} else {
			defer pub.Close()
			publisher = pub
			log.Info("Connected to NATS", "url", cfg.NATSURL)
		}
	}

	if cfg.MediaStoreConfigured() {
		store, err := s3.NewMediaStore(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, cfg.MinIOUseSSL, log)
		if err != nil {
			log.Error("Failed to initialize media store", "error", err.Error())
			os.Exit(1)
		}
		mediaStore = store
	} else {
		log.Warn("MINIO_ENDPOINT not set, media uploads will report not configured")
	}

	if cfg.MailConfigured() {
		sender = mailer.New(cfg.SMTPEmail, cfg.SMTPPassword)
	}

	var distance *geo.DistanceClient
	if cfg.MapsConfigured() {
		distance = geo.NewDistanceClient(cfg.MapsAPIKey)
	} else {
		log.Warn("MAPS_API_KEY not set, fare estimates will report not configured")
	}

	searchUC := usecase.NewSearchUsecase(plotRepo, log)
	plotUC := usecase.NewPlotUsecase(plotRepo, plotCache, log)
	submissionUC := usecase.NewSubmissionUsecase(plotRepo, mediaStore, publisher, sender, log)
	adminUC := usecase.NewAdminUsecase(plotRepo, log)
	leadUC := usecase.NewLeadUsecase(leadRepo, publisher, log)
	authSvc := auth.NewService(userRepo, sessionStore, cfg.JWTSecret, log)

	handler := httpapi.NewHandler(searchUC, plotUC, submissionUC, adminUC, leadUC, authSvc, distance, log)

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      handler.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 70 * time.Second, // submissions upload media inline
	}

	go func() {
		log.Info("HTTP server listening", "port", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server failed", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Graceful shutdown failed", "error", err.Error())
	}
	log.Info("Server stopped")
}
