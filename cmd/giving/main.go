package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gracechapel/gracechapel/handlers"
	"github.com/gracechapel/gracechapel/internal/database"
	"github.com/gracechapel/gracechapel/internal/giving"
	"github.com/gracechapel/gracechapel/internal/models"
	"github.com/gracechapel/gracechapel/internal/storage"
	"github.com/gracechapel/gracechapel/internal/tokens"
	"github.com/gracechapel/gracechapel/pkg/middleware"
)

// setupRouter wires the giving API: donating is public, the donation list
// requires an admin token signed with the shared JWT secret.
func setupRouter(svc *giving.Service, ver middleware.Verifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	h := handlers.NewGivingHandler(svc)
	api := r.Group("/api")
	h.RegisterPublic(api)
	admin := api.Group("/admin", middleware.AuthMiddleware(ver), middleware.RequireRole(models.RoleAdmin))
	h.RegisterAdmin(admin)
	return r
}

// Standalone donations service. Runs the giving API on its own port so the
// payment flow can be deployed and scaled apart from the main site backend.
func main() {
	port := os.Getenv("GIVING_SERVICE_PORT")
	if port == "" {
		port = "5011"
	}

	// Prefer a Mongo-backed repository when MONGODB_URI is provided.
	var repo giving.Repository
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI != "" {
		client, err := database.ConnectMongo(context.Background(), mongoURI, 10*time.Second)
		if err != nil {
			log.Printf("warning: cannot connect to MongoDB (%v) — using memory-backed repo", err)
			repo = giving.NewKVRepository(storage.NewMemoryKV())
		} else {
			col := client.Database(os.Getenv("MONGODB_DATABASE")).Collection("donations")
			repo = giving.NewMongoRepository(col)
		}
	} else {
		repo = giving.NewKVRepository(storage.NewMemoryKV())
	}

	delay := 1500 * time.Millisecond
	if v := os.Getenv("GATEWAY_DELAY_MS"); v != "" {
		if d, err := time.ParseDuration(v + "ms"); err == nil {
			delay = d
		}
	}
	svc := giving.NewService(repo, giving.NewSimulatedGateway(delay))

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Printf("warning: JWT_SECRET not set, admin tokens cannot be verified")
	}
	r := setupRouter(svc, tokens.NewVerifier(secret))

	log.Printf("giving service listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
