package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/mishap29/Lifestyle-Coach/internal"
	"github.com/mishap29/Lifestyle-Coach/internal/advice"
	"github.com/mishap29/Lifestyle-Coach/internal/api"
	"github.com/mishap29/Lifestyle-Coach/internal/auth"
	"github.com/mishap29/Lifestyle-Coach/internal/config"
	"github.com/mishap29/Lifestyle-Coach/internal/metrics"
	"github.com/mishap29/Lifestyle-Coach/internal/service"
	"github.com/mishap29/Lifestyle-Coach/internal/storage"
)

func main() {
	cfg := config.Load()

	zl := buildLogger(cfg)
	defer zl.Sync()
	logger := internal.NewZapLogger(zl)

	metrics.Register()

	sleepStore, exerciseStore, err := buildStores(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	generator := advice.NewOpenAIGenerator(cfg.OpenAIKey, cfg.OpenAIModel,
		time.Duration(cfg.OpenAITimeout)*time.Second, logger)

	app := api.NewApp(logger,
		service.NewSleepCoach(sleepStore, logger),
		service.NewExercisePlanner(exerciseStore, logger),
		advice.NewComposer(generator, logger),
	)

	var provider auth.Provider
	if cfg.Env == "development" {
		provider = auth.NewLocalAuthProvider(cfg.AuthToken, logger)
	} else {
		provider = auth.NewRemoteAuthProvider(cfg.AuthServiceURL, logger)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(api.RequestIDMiddleware())
	r.Use(metrics.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	protected := r.Group("/", auth.AuthMiddleware(provider, cfg))
	protected.POST("/sleep", api.PostSleep(app))
	protected.GET("/sleep", api.GetSleep(app))
	protected.GET("/sleep/report", api.GetSleepReport(app))
	protected.POST("/goals", api.PostGoal(app))
	protected.GET("/goals/status", api.GetGoalStatus(app))
	protected.POST("/exercise", api.PostExercise(app))
	protected.GET("/exercise/summary", api.GetExerciseSummary(app))
	protected.GET("/exercise/intervals", api.GetExerciseIntervals(app))
	protected.POST("/advice/general", api.PostGeneralAdvice(app))
	protected.POST("/advice/coaching", api.PostCoaching(app))

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		logger.Infof("server running on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("forced shutdown: %v", err)
	}
}

func buildStores(cfg *config.Config, logger internal.Logger) (storage.SleepStore, storage.ExerciseStore, error) {
	if cfg.DBType == "postgres" {
		return storage.NewPostgresStores(cfg.DBDSN, logger)
	}
	return storage.NewFileStores(cfg.DataDir, logger)
}

func buildLogger(cfg *config.Config) *zap.SugaredLogger {
	if cfg.LogFile != "" {
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50, // MB
			MaxBackups: 7,
			MaxAge:     14, // days
			Compress:   true,
		})
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "ts"
		core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), writer, parseLevel(cfg.LogLevel))
		return zap.New(core, zap.AddCaller()).Sugar()
	}
	if cfg.Env == "development" {
		l, _ := zap.NewDevelopment()
		return l.Sugar()
	}
	l, _ := zap.NewProduction()
	return l.Sugar()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
