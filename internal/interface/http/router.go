package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/depression-screener/internal/infra/config"
	"github.com/yanqian/depression-screener/internal/interface/http/web"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) (*http.Server, error) {
	gin.SetMode(gin.ReleaseMode)

	pages, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(pages)
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.StaticFS("/static", http.FS(web.Static()))
	router.GET("/healthz", handler.Health)

	limit := rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger)
	limited := router.Group("/", limit)
	{
		limited.GET("/", handler.IndexPage)
		limited.POST("/predict", handler.SubmitPage)
		limited.POST("/reset", handler.ResetPage)
	}

	api := router.Group("/api/v1", limit)
	{
		api.GET("/survey", handler.Survey)
		api.GET("/model", handler.Model)
		api.POST("/predictions", handler.CreatePrediction)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}, nil
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds(), "request_id", requestIDFrom(c))
	}
}
