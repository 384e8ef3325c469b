package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "companion-backend/internal/auth"
	"companion-backend/internal/docs"
	"companion-backend/internal/generation"
	"companion-backend/internal/llm"
	"companion-backend/internal/llm/openai"
	"companion-backend/internal/profile"
	"companion-backend/internal/ratings"
	"companion-backend/internal/shared/config"
	"companion-backend/internal/shared/metrics"
	"companion-backend/internal/shared/server/middleware"
	"companion-backend/internal/shared/server/respond"
	"companion-backend/internal/shared/storage/db"
	"companion-backend/internal/shared/storage/object"
	localstore "companion-backend/internal/shared/storage/object/local"
	s3store "companion-backend/internal/shared/storage/object/s3"
	"companion-backend/internal/wizard"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
	)

	store := newObjectStore(cfg)
	if local, ok := store.(*localstore.Store); ok {
		r.Static("/files", local.BaseDir())
	}

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), conn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				conn = nil
			}
		}
		sqlDB = conn
	}

	var profileRepo profile.Repo
	var docRepo docs.Repo
	var wizardRepo wizard.Repo
	var ratingsRepo ratings.RatingsRepo
	var mentorsRepo ratings.MentorsRepo
	if sqlDB != nil {
		profileRepo = &profile.PGRepo{DB: sqlDB}
		docRepo = &docs.PGRepo{DB: sqlDB}
		wizardRepo = &wizard.PGRepo{DB: sqlDB}
		ratingsRepo = &ratings.PGRatingsRepo{DB: sqlDB}
		mentorsRepo = &ratings.PGMentorsRepo{DB: sqlDB}
	} else {
		profileRepo = profile.NewMemoryRepo()
		docRepo = docs.NewMemoryRepo()
		wizardRepo = wizard.NewMemoryRepo()
		ratingsRepo = ratings.NewMemoryRatingsRepo()
		memMentors, err := ratings.NewMemoryMentorsRepo()
		if err != nil {
			log.Printf("failed to load mentor seed: %v", err)
			memMentors = &ratings.MemoryMentorsRepo{}
		}
		mentorsRepo = memMentors
	}

	var aiClient llm.Client = openai.NewClient(cfg.AIGatewayURL, cfg.AIAPIKey, cfg.LLMModel)

	docSvc := &docs.Service{
		Repo:     docRepo,
		Profiles: profileRepo,
		Store:    store,
		LLM:      aiClient,
		Model:    cfg.LLMModel,
	}
	orch := generation.NewOrchestrator(docSvc, profileRepo, cfg.PollInterval, cfg.PollMaxAttempts)
	wizardSvc := &wizard.Service{
		Repo:     wizardRepo,
		Profiles: profileRepo,
		Starter:  orch,
	}
	ratingsSvc := &ratings.Service{
		Ratings:  ratingsRepo,
		Mentors:  mentorsRepo,
		Profiles: profileRepo,
	}
	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"GENERATE": {Rate: 0.5, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost &&
				(strings.HasSuffix(c.FullPath(), "/generate") || strings.HasSuffix(c.FullPath(), "/generation/start")) {
				return "GENERATE"
			}
			return ""
		},
	}))
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())
	googleAuthSvc.RegisterRoutes(api)
	registerMeRoutes(api)
	docs.NewHandler(docSvc, store).RegisterRoutes(api)
	generation.NewHandler(orch).RegisterRoutes(api)
	wizard.NewHandler(wizardSvc).RegisterRoutes(api)
	ratings.NewHandler(ratingsSvc).RegisterRoutes(api)

	return r
}

func newObjectStore(cfg config.Config) object.Store {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err != nil {
			log.Printf("failed to init s3 store, falling back to local: %v", err)
		} else {
			return store
		}
	}
	return localstore.New(cfg.LocalStoreDir, "/files")
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
