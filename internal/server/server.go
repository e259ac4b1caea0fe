package server

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/gofiber/storage/redis/v3"
	"github.com/google/uuid"

	"launchdash/internal/config"
	"launchdash/internal/logging"
	"launchdash/web"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config
	log *slog.Logger
}

// New creates a new server with middleware configured.
func New(cfg *config.Config) *Server {
	log := logging.New("server")

	// Initialize Fiber
	app := fiber.New(fiber.Config{
		Views:       web.NewEngine(),
		ViewsLayout: "layouts/main",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			} else {
				log.Error("request failed", "path", c.Path(), "error", err)
			}

			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(code).JSON(fiber.Map{
					"status": "error",
					"error":  message,
				})
			}

			return c.Status(code).Render("error", fiber.Map{
				"Title":     "Error",
				"Message":   message,
				"SiteTitle": cfg.SiteTitle,
			})
		},
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())

	// CORS middleware
	corsOrigins := cfg.BaseURL
	if cfg.CORSOrigins != "" {
		corsOrigins = cfg.CORSOrigins
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(corsOrigins, ","),
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "HX-Request", "HX-Current-URL", "HX-Target", "HX-Trigger"},
		MaxAge:       86400,
	}))

	// Rate limiting middleware, per IP
	limiterCfg := limiter.Config{
		Max:        cfg.RateLimit,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
			})
		},
		Next: func(c fiber.Ctx) bool {
			// Probes and scrapes are not user traffic.
			switch c.Path() {
			case "/healthz", "/readyz", "/metrics":
				return true
			}
			return false
		},
	}
	if cfg.RedisURL != "" {
		limiterCfg.Storage = redis.New(redis.Config{URL: cfg.RedisURL})
		log.Info("rate limiter using redis storage")
	}
	app.Use(limiter.New(limiterCfg))

	// Static files
	app.Get("/static/*", static.New("", static.Config{FS: web.Static()}))

	return &Server{
		App: app,
		Cfg: cfg,
		log: log,
	}
}

// Start starts the server with the configured address and TLS settings.
func (s *Server) Start() error {
	if s.Cfg.TLSEnabled {
		tlsConfig, err := buildTLSConfig(s.Cfg)
		if err != nil {
			return err
		}
		listenConfig := fiber.ListenConfig{
			CertFile:      s.Cfg.TLSCertFile,
			CertKeyFile:   s.Cfg.TLSKeyFile,
			TLSConfigFunc: func(tc *tls.Config) { *tc = *tlsConfig },
		}
		if s.Cfg.IsMTLSEnabled() {
			s.log.Info("starting server with mTLS", "addr", s.Cfg.ServerAddr)
		} else {
			s.log.Info("starting server with TLS", "addr", s.Cfg.ServerAddr)
		}
		return s.App.Listen(s.Cfg.ServerAddr, listenConfig)
	}
	s.log.Info("starting server", "addr", s.Cfg.ServerAddr)
	return s.App.Listen(s.Cfg.ServerAddr, fiber.ListenConfig{DisableStartupMessage: !s.Cfg.IsDev()})
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

// buildTLSConfig creates a TLS config for mTLS if CA file is provided.
func buildTLSConfig(cfg *config.Config) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	if cfg.TLSCAFile != "" {
		caCert, err := os.ReadFile(cfg.TLSCAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA file: %w", err)
		}

		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("failed to parse CA certificate %s", cfg.TLSCAFile)
		}

		tlsConfig.ClientCAs = caCertPool
		tlsConfig.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return tlsConfig, nil
}
