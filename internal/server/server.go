// Package server contains the HTTP handlers for the application's API.
package server

import (
	"context"
	"log"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"soulshub/internal/ai"
	"soulshub/internal/config"
	"soulshub/internal/middleware"
	"soulshub/internal/models"
	"soulshub/internal/repository"
	"soulshub/internal/service"
	"soulshub/internal/store"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	store          store.Store
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	adminRepo repository.AdminRepository

	feedService      service.FeedService
	prayerService    service.PrayerService
	verseService     service.VerseService
	meetingService   service.MeetingService
	quickResources   service.QuickResourceService
	circleService    service.CircleService
	libraryService   service.LibraryService
	assistantService service.AssistantService
	adminService     service.AdminService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	st, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}

	gateway := ai.NewGateway(
		ai.NewClient(cfg.AIAPIKey, cfg.AIBaseURL, 60*time.Second),
		cfg.AIModel,
	)

	return NewServerWithDeps(cfg, st, gateway), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the store.
func NewServerWithDeps(cfg *config.Config, st store.Store, gateway ai.Gateway) *Server {
	postRepo := repository.NewPostRepository(st)
	prayerRepo := repository.NewPrayerRepository(st)
	ledgerRepo := repository.NewLedgerRepository(st)
	verseRepo := repository.NewVerseRepository(st)
	meetingRepo := repository.NewMeetingRepository(st)
	resourceRepo := repository.NewResourceRepository(st)
	circleRepo := repository.NewCircleRepository(st)
	libraryRepo := repository.NewLibraryRepository(st)
	adminRepo := repository.NewAdminRepository(st)

	prom := middleware.InitMetrics("soulshub-api")

	return &Server{
		config:           cfg,
		store:            st,
		promMiddleware:   prom,
		adminRepo:        adminRepo,
		feedService:      service.NewFeedService(postRepo, prayerRepo, ledgerRepo, gateway),
		prayerService:    service.NewPrayerService(prayerRepo, ledgerRepo),
		verseService:     service.NewVerseService(verseRepo, gateway),
		meetingService:   service.NewMeetingService(meetingRepo),
		quickResources:   service.NewQuickResourceService(resourceRepo),
		circleService:    service.NewCircleService(circleRepo),
		libraryService:   service.NewLibraryService(libraryRepo, cfg.MaxUploadBytes),
		assistantService: service.NewAssistantService(gateway),
		adminService:     service.NewAdminService(adminRepo, cfg.AdminPassword, cfg.JWTSecret),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Tracing before the context middleware so the trace id lands in locals.
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Context middleware to propagate request ID and admin flag
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS before middlewares that can short-circuit, so browser clients
	// still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Souls Hub Metrics Dashboard",
	}))

	adminOnly := s.AdminOnly()

	// Home: daily verse
	home := api.Group("/home")
	home.Get("/verse", s.GetVerse)
	home.Delete("/verse/custom", adminOnly, s.ClearCustomVerse)
	verseEdit := home.Group("/verse/edit", adminOnly)
	verseEdit.Post("/", s.BeginVerseEdit)
	verseEdit.Put("/", s.UpdateVerseDraft)
	verseEdit.Post("/save", s.SaveVerseEdit)
	verseEdit.Post("/cancel", s.CancelVerseEdit)

	// Home: meeting section
	home.Get("/meeting", s.GetMeeting)
	meetingEdit := home.Group("/meeting/edit", adminOnly)
	meetingEdit.Post("/", s.BeginMeetingEdit)
	meetingEdit.Put("/", s.UpdateMeetingDraft)
	meetingEdit.Post("/save", s.SaveMeetingEdit)
	meetingEdit.Post("/cancel", s.CancelMeetingEdit)

	// Home: quick resources list
	home.Get("/resources", s.GetQuickResources)
	resourcesEdit := home.Group("/resources/edit", adminOnly)
	resourcesEdit.Post("/", s.BeginQuickResourcesEdit)
	resourcesEdit.Post("/rows", s.AddQuickResourceRow)
	resourcesEdit.Put("/rows/:id", s.UpdateQuickResourceRow)
	resourcesEdit.Delete("/rows/:id", s.RemoveQuickResourceRow)
	resourcesEdit.Post("/save", s.SaveQuickResourcesEdit)
	resourcesEdit.Post("/cancel", s.CancelQuickResourcesEdit)

	// Community feed
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", s.CreatePost)
	posts.Post("/:id/reactions/:kind", s.ToggleReaction)
	posts.Post("/:id/comments", s.AddComment)
	posts.Post("/:id/share", s.SharePost)
	posts.Get("/:id", s.GetPost)
	posts.Delete("/:id", adminOnly, s.DeletePost)

	// Prayer wall
	prayers := api.Group("/prayers")
	prayers.Get("/", s.GetPrayers)
	prayers.Post("/", s.CreatePrayer)
	prayers.Post("/:id/pray", s.Pray)
	prayers.Delete("/:id", adminOnly, s.DeletePrayer)

	// Circles
	api.Get("/circles", s.GetCircles)
	circlesEdit := api.Group("/circles/edit", adminOnly)
	circlesEdit.Post("/", s.BeginCirclesEdit)
	circlesEdit.Post("/rows", s.AddCircleRow)
	circlesEdit.Put("/rows/:id", s.UpdateCircleRow)
	circlesEdit.Delete("/rows/:id", s.RemoveCircleRow)
	circlesEdit.Post("/save", s.SaveCirclesEdit)
	circlesEdit.Post("/cancel", s.CancelCirclesEdit)

	// Resource library
	library := api.Group("/library")
	library.Get("/", s.GetLibrary)
	library.Get("/files/:id/download", s.DownloadLibraryFile)
	libraryEdit := library.Group("/edit", adminOnly)
	libraryEdit.Post("/", s.BeginLibraryEdit)
	libraryEdit.Post("/files", s.AddLibraryFile)
	libraryEdit.Post("/upload", s.UploadLibraryFile)
	libraryEdit.Put("/files/:id", s.UpdateLibraryFile)
	libraryEdit.Delete("/files/:id", s.RemoveLibraryFile)
	libraryEdit.Put("/categories/:id", s.UpdateLibraryCategory)
	libraryEdit.Post("/save", s.SaveLibraryEdit)
	libraryEdit.Post("/cancel", s.CancelLibraryEdit)

	// Study planner and question box
	api.Post("/plans", s.GeneratePlan)
	api.Post("/ask", s.Ask)

	// Admin gate
	admin := api.Group("/admin")
	admin.Post("/login", s.AdminLogin)
	admin.Get("/session", adminOnly, s.AdminSession)
	admin.Post("/reset", adminOnly, s.AdminReset)
}

// AdminOnly gates content-editing routes behind a valid admin session.
func (s *Server) AdminOnly() fiber.Handler {
	return middleware.AdminRequired(s.config.JWTSecret, s.adminRepo)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	storeStatus := "healthy"
	if err := s.store.Ping(ctx); err != nil {
		storeStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overall := "healthy"
	if storeStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":  overall,
		"version": "1.0.0",
		"checks": fiber.Map{
			"store": storeStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName:   "Souls Hub API",
		BodyLimit: int(s.config.MaxUploadBytes) + 1024*1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if err := s.store.Close(); err != nil {
		log.Printf("error closing store: %v", err)
	}

	log.Println("Server shutdown complete")
	return nil
}
