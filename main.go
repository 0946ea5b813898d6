package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gracechapel/gracechapel/handlers"
	"github.com/gracechapel/gracechapel/internal/config"
	"github.com/gracechapel/gracechapel/internal/database"
	"github.com/gracechapel/gracechapel/internal/events"
	"github.com/gracechapel/gracechapel/internal/giving"
	"github.com/gracechapel/gracechapel/internal/messages"
	"github.com/gracechapel/gracechapel/internal/models"
	"github.com/gracechapel/gracechapel/internal/oidc"
	"github.com/gracechapel/gracechapel/internal/sermons"
	"github.com/gracechapel/gracechapel/internal/sessions"
	"github.com/gracechapel/gracechapel/internal/storage"
	"github.com/gracechapel/gracechapel/internal/tokens"
	"github.com/gracechapel/gracechapel/internal/users"
	"github.com/gracechapel/gracechapel/pkg/logger"
	"github.com/gracechapel/gracechapel/pkg/metrics"
	"github.com/gracechapel/gracechapel/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: oidc=%v mongo=%v redis=%v", cfg.OIDC.IssuerURL != "", cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	r.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()

	// Connect to Redis early so the rate limiter, sessions, and the access
	// token blacklist can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(ctx).Err(); err == nil {
			sessions.SetBlacklistClient(redisClient)
			logger.Infof("connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		} else {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Connect to MongoDB when configured, with retry/backoff to tolerate
	// startup races against the database container
	var mongoClient *mongo.Client
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			mongoClient, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
			mongoClient = nil
		} else {
			defer func() { _ = mongoClient.Disconnect(ctx) }()
		}
	}

	// Collection repositories: MongoDB when available, otherwise the key-value
	// collection store (Redis when connected, in-process memory as last resort)
	var (
		sermonsRepo  sermons.Repository
		eventsRepo   events.Repository
		messagesRepo messages.Repository
		givingRepo   giving.Repository
	)
	if mongoClient != nil {
		db := mongoClient.Database(cfg.MongoDB.Database)
		sermonsRepo = sermons.NewMongoRepository(db.Collection("sermons"))
		eventsRepo = events.NewMongoRepository(db.Collection("events"))
		messagesRepo = messages.NewMongoRepository(db.Collection("messages"))
		givingRepo = giving.NewMongoRepository(db.Collection("donations"))
		logger.Infof("using MongoDB for collection storage (db=%s)", cfg.MongoDB.Database)
	} else {
		var kv storage.KV
		if redisClient != nil {
			kv = storage.NewRedisKV(redisClient, "")
			logger.Infof("using Redis key-value collection storage")
		} else {
			kv = storage.NewMemoryKV()
			logger.Warnf("no MongoDB or Redis configured, collection data will not survive restarts")
		}
		sermonsRepo = sermons.NewKVRepository(kv)
		eventsRepo = events.NewKVRepository(kv)
		messagesRepo = messages.NewKVRepository(kv)
		givingRepo = giving.NewKVRepository(kv)
	}

	sermonsSvc := sermons.NewService(sermonsRepo)
	eventsSvc := events.NewService(eventsRepo)
	messagesSvc := messages.NewService(messagesRepo)
	givingSvc := giving.NewService(givingRepo, giving.NewSimulatedGateway(cfg.Gateway.Delay))

	// Seed the sermon archive and event calendar on first run
	if err := sermonsSvc.EnsureSeed(ctx); err != nil {
		logger.Warnf("failed to seed sermons: %v", err)
	}
	if err := eventsSvc.EnsureSeed(ctx); err != nil {
		logger.Warnf("failed to seed events: %v", err)
	}

	// Sessions: prefer Redis when connected, MongoDB next, process memory in
	// demo mode so login still works without any backing store
	var sessionsSvc *sessions.Service
	if redisClient != nil {
		sessionsSvc = sessions.NewService(sessions.NewRedisRepository(redisClient, "session:"))
		logger.Infof("using Redis for session storage")
	} else if mongoClient != nil {
		col := mongoClient.Database(cfg.MongoDB.Database).Collection("sessions")
		sessionsSvc = sessions.NewService(sessions.NewMongoRepository(col))
		logger.Infof("using MongoDB for session storage")
	} else {
		sessionsSvc = sessions.NewService(sessions.NewMemoryRepository())
		logger.Warnf("using in-memory session storage, logins will not survive restarts")
	}

	// Users: persistent only with MongoDB; demo mode otherwise
	var usersSvc *users.Service
	if mongoClient != nil {
		col := mongoClient.Database(cfg.MongoDB.Database).Collection("users")
		usersSvc = users.NewService(users.NewMongoUserRepository(col))
	} else {
		usersSvc = users.NewService(nil)
	}

	// Access token verification: an external OIDC provider when configured,
	// the local HMAC verifier otherwise. ALLOW_INSECURE_TOKEN skips signature
	// checks entirely and exists for integration tests only.
	var verifier middleware.Verifier
	if cfg.OIDC.IssuerURL != "" && cfg.OIDC.ClientID != "" {
		ver, err := oidc.NewVerifier(ctx, strings.TrimRight(cfg.OIDC.IssuerURL, "/"), cfg.OIDC.ClientID)
		if err != nil {
			logger.Warnf("failed to initialize OIDC verifier: %v", err)
		} else {
			verifier = ver
		}
	}
	if verifier == nil {
		if strings.EqualFold(strings.TrimSpace(os.Getenv("ALLOW_INSECURE_TOKEN")), "true") {
			logger.Warn("enabling insecure token verifier (integration mode)")
			verifier = oidc.NewInsecureVerifier()
		} else {
			verifier = tokens.NewVerifier(cfg.JWT.Secret)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["storage"] = sermonsRepo != nil
		deps["sessions"] = sessionsSvc != nil
		if sessionsSvc == nil {
			ready = false
		}
		if cfg.MongoDB.URI != "" {
			deps["mongodb"] = mongoClient != nil
			if mongoClient == nil {
				ready = false
			}
		}
		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil
			if redisClient == nil {
				ready = false
			}
		}

		status := http.StatusOK
		name := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			name = "not_ready"
		}
		c.JSON(status, gin.H{"status": name, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Public site API
	api := r.Group("/api")
	sermonsH := handlers.NewSermonsHandler(sermonsSvc)
	eventsH := handlers.NewEventsHandler(eventsSvc)
	messagesH := handlers.NewMessagesHandler(messagesSvc)
	givingH := handlers.NewGivingHandler(givingSvc)
	sermonsH.RegisterPublic(api)
	eventsH.RegisterPublic(api)
	messagesH.RegisterPublic(api)
	givingH.RegisterPublic(api)

	authH := handlers.NewAuthHandler(cfg, usersSvc, sessionsSvc)
	authH.Register(api)
	api.GET("/auth/me", middleware.AuthMiddleware(verifier), authH.Me)

	// Admin back office: token + admin role enforced server-side
	admin := api.Group("/admin", middleware.AuthMiddleware(verifier), middleware.RequireRole(models.RoleAdmin))
	sermonsH.RegisterAdmin(admin)
	eventsH.RegisterAdmin(admin)
	messagesH.RegisterAdmin(admin)
	givingH.RegisterAdmin(admin)

	// Media uploads go to object storage when an endpoint is configured
	if os.Getenv("MINIO_ENDPOINT") != "" {
		store, err := storage.NewMinIOStorage(storage.LoadMinIOConfig())
		if err != nil {
			logger.Warnf("failed to initialize object storage: %v", err)
		} else {
			handlers.NewMediaHandler(store).RegisterAdmin(admin)
		}
	}

	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("config summary: mongo=%v redis=%v jwt_secret_set=%v rate_limit=%v", mongoClient != nil, redisClient != nil, cfg.JWT.Secret != "", cfg.RateLimit.Enabled)
	logger.Infof("starting gracechapel API on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
