package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	"strikeboard/internal/bot"
	"strikeboard/internal/cache"
	"strikeboard/internal/config"
	"strikeboard/internal/handler"
	"strikeboard/internal/provider"
	"strikeboard/internal/service"
	"strikeboard/pkg/tracing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
)

var (
	loadEnvFunc        = godotenv.Load
	loadConfigFunc     = config.Load
	initTracerFunc     = tracing.InitTracer
	newBoardClientFunc = func(tracer trace.Tracer, cfg *config.Config) *provider.BoardClient {
		return provider.NewBoardClient(tracer, cfg.BoardAPIKey, cfg.BoardAPIURL, time.Duration(cfg.BoardRequestSecs)*time.Second)
	}
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	startTelegramBotFunc   = bot.StartTelegramBot
	setupSignalNotify      = ossignal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Strikeboard API
// @version         1.0
// @description     Crypto derivatives board proxy with OpenTelemetry tracing.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()
	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	board := newBoardClientFunc(tracer, cfg)
	boardCache := cache.NewOptionsCache(time.Duration(cfg.OptionsCacheTTLSecs) * time.Second)
	facade := service.NewFacade(
		service.NewPriceService(tracer, board),
		service.NewOptionsService(tracer, board, boardCache),
		service.NewPerpsService(tracer, board),
		service.NewSignalService(tracer, board, cfg.SignalPollAttempts, time.Duration(cfg.SignalPollDelaySecs)*time.Second),
	)

	startTelegramBotFunc(facade, facade)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("strikeboard"))
	r.Use(cors.Default())
	newHandlerFunc(tracer, facade).RegisterRoutes(r)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Printf("http server failed: %v", err)
		}
	}()
	log.Printf("HTTP server listening on :%d", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Printf("http server shutdown error: %v", err)
	}
}
