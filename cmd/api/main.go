package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/merapruthvi/greenpulse/backend/internal/adapters/cache"
	"github.com/merapruthvi/greenpulse/backend/internal/adapters/database"
	"github.com/merapruthvi/greenpulse/backend/internal/adapters/providers/ai"
	"github.com/merapruthvi/greenpulse/backend/internal/adapters/providers/directions"
	"github.com/merapruthvi/greenpulse/backend/internal/adapters/providers/weather"
	"github.com/merapruthvi/greenpulse/backend/internal/api/handlers"
	"github.com/merapruthvi/greenpulse/backend/internal/api/routes"
	"github.com/merapruthvi/greenpulse/backend/internal/application/services"
	"github.com/merapruthvi/greenpulse/backend/internal/credits"
	"github.com/merapruthvi/greenpulse/backend/internal/domain/providers"
	"github.com/merapruthvi/greenpulse/backend/internal/infrastructure/clients/postgres"
	"github.com/merapruthvi/greenpulse/backend/internal/infrastructure/clients/redis"
	"github.com/merapruthvi/greenpulse/backend/internal/infrastructure/observability"
	"github.com/merapruthvi/greenpulse/backend/internal/jobs"
	"github.com/merapruthvi/greenpulse/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("greenpulse-api", cfg.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized")

	// Initialize Redis client. The application works without caching,
	// so a missing Redis only costs performance.
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize Redis client, continuing without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Info().Msg("Redis client initialized")
	}

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize adapters
	userAdapter := database.NewUserAdapter(pgClient)
	resourceAdapter := database.NewResourceAdapter(pgClient)
	routeAdapter := database.NewRouteAdapter(pgClient)
	wasteAdapter := database.NewWasteAdapter(pgClient)
	irrigationAdapter := database.NewIrrigationAdapter(pgClient)
	issueAdapter := database.NewIssueAdapter(pgClient)

	// Initialize external providers. Each falls back to its mock when
	// the API key is not configured, so local development works offline.
	var aiProvider providers.AIProvider
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set; using mock AI provider")
		aiProvider = ai.NewMockAIProvider()
	} else {
		aiProvider, err = ai.NewGeminiProvider(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize Gemini client; using mock AI provider")
			aiProvider = ai.NewMockAIProvider()
		}
	}

	var directionsProvider providers.DirectionsProvider
	if cfg.Directions.APIKey == "" {
		log.Warn().Msg("GOOGLE_MAPS_API_KEY is not set; using mock directions provider")
		directionsProvider = directions.NewMockDirectionsProvider()
	} else {
		directionsProvider = directions.NewGoogleDirectionsProvider(cfg.Directions.APIKey)
	}

	var weatherProvider providers.WeatherProvider
	if cfg.Weather.APIKey == "" {
		log.Warn().Msg("WEATHER_API_KEY is not set; using mock weather provider")
		weatherProvider = weather.NewMockWeatherProvider()
	} else {
		weatherProvider = weather.NewGoogleWeatherProvider(cfg.Weather.APIKey, cacheProvider)
	}

	// Initialize services
	creditService := services.NewCreditService(userAdapter)
	analyticsService := services.NewAnalyticsService(
		resourceAdapter,
		routeAdapter,
		wasteAdapter,
		irrigationAdapter,
		cacheProvider,
	)
	userService := services.NewUserService(userAdapter, resourceAdapter, routeAdapter, issueAdapter)
	resourceService := services.NewResourceService(
		resourceAdapter,
		creditService,
		analyticsService,
		aiProvider,
		credits.NewSource(time.Now().UnixNano()),
	)
	navigationService := services.NewNavigationService(routeAdapter, directionsProvider, creditService, analyticsService)
	wasteService := services.NewWasteService(wasteAdapter, aiProvider, creditService, analyticsService)
	irrigationService := services.NewIrrigationService(irrigationAdapter, aiProvider, analyticsService)
	issueService := services.NewIssueService(issueAdapter, creditService, analyticsService)
	chatService := services.NewChatService(aiProvider)

	if err := userService.EnsureDemoUser(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure demo user")
	}

	// Warm the analytics cache periodically when a cache is available.
	if cacheProvider != nil {
		scheduler := jobs.NewScheduler(userAdapter, analyticsService)
		if err := scheduler.Start(); err != nil {
			log.Warn().Err(err).Msg("failed to start job scheduler")
		} else {
			defer scheduler.Stop()
		}
	}

	// Initialize handlers and routes
	router := routes.NewRouter(
		handlers.NewUserHandler(userService),
		handlers.NewResourceHandler(resourceService),
		handlers.NewNavigationHandler(navigationService),
		handlers.NewIssueHandler(issueService),
		handlers.NewWasteHandler(wasteService),
		handlers.NewIrrigationHandler(irrigationService),
		handlers.NewWeatherHandler(weatherProvider),
		handlers.NewChatHandler(chatService),
		handlers.NewAnalyticsHandler(analyticsService),
	)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
