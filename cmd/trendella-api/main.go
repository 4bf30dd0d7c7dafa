package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"trendella-backend/internal/auth"
	"trendella-backend/internal/config"
	"trendella-backend/internal/fetch"
	"trendella-backend/internal/gemini"
	"trendella-backend/internal/httpapi"
	"trendella-backend/internal/kstream"
	"trendella-backend/internal/recommend"
	"trendella-backend/internal/session"
	"trendella-backend/internal/specbuilder"
	"trendella-backend/internal/trending"
	"trendella-backend/internal/wishlist"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Generative assistant is optional: without a key the spec builder and
	// phrase expansion run their deterministic paths.
	var suggester specbuilder.SpecSuggester
	var expander recommend.PhraseExpander
	if client, err := gemini.NewClient(ctx, cfg, logger); err == nil {
		suggester = client
		expander = client
	} else if !errors.Is(err, gemini.ErrNotConfigured) {
		logger.Error("gemini client init failed, continuing without it", slog.Any("error", err))
	}

	var sessions session.Store
	if cfg.RedisAddr != "" {
		sessions = session.NewRedisStore(cfg.RedisAddr)
	} else {
		logger.Info("REDIS_ADDR not set, using in-memory session store")
		sessions = session.NewMemoryStore()
	}

	var userWishlists wishlist.Store
	if cfg.RedisAddr != "" {
		userWishlists = wishlist.NewRedisStore(cfg.RedisAddr)
	} else {
		userWishlists = wishlist.NewGuestStore()
	}
	wishlists := wishlist.NewService(wishlist.NewGuestStore(), userWishlists, logger)

	var events *kstream.Producer
	if cfg.KafkaBroker != "" {
		events = kstream.NewProducer(cfg.KafkaBroker, logger)
		defer events.Close()
	}

	// Trending read models fold the served-event stream back into the API.
	// Without a broker the in-memory store just stays empty.
	var trends trending.Store
	if cfg.RedisAddr != "" {
		trends = trending.NewRedisStore(cfg.RedisAddr)
	} else {
		trends = trending.NewMemoryStore()
	}
	if cfg.KafkaBroker != "" {
		reader := kstream.NewReader(cfg.KafkaBroker, kstream.TopicServed, "trending-group")
		defer reader.Close()
		consumer := trending.NewConsumer(reader, trends, logger)
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("trending consumer stopped", slog.Any("error", err))
			}
		}()
	}

	var verifier auth.TokenVerifier
	if cfg.FirebaseProjectID != "" {
		fb, err := auth.NewFirebaseVerifier(ctx, cfg.FirebaseProjectID)
		if err != nil {
			logger.Error("firebase init failed, sign-in disabled", slog.Any("error", err))
		} else {
			verifier = fb
		}
	}

	recommender := recommend.NewService(
		specbuilder.NewBuilder(suggester, logger),
		fetch.BuildRegistry(cfg, logger),
		expander,
		sessions,
		events,
		logger,
	)

	api := httpapi.NewServer(recommender, wishlists, sessions, trends, verifier, logger)
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.Router(),
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info("shutting down")
		cancel()
		_ = server.Shutdown(context.Background())
	}()

	logger.Info("trendella api listening", slog.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
}
