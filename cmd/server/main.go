package main // Entry point package

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-market/internal/config"
	"github.com/iliyamo/online-market/internal/database"
	"github.com/iliyamo/online-market/internal/handler"
	"github.com/iliyamo/online-market/internal/middleware"
	"github.com/iliyamo/online-market/internal/queue"
	"github.com/iliyamo/online-market/internal/repository"
	"github.com/iliyamo/online-market/internal/router"
	"github.com/iliyamo/online-market/internal/session"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongo connect failed: %v", err)
	}

	users := repository.NewUserRepo(db)
	products := repository.NewProductRepo(db)

	idxCtx, idxCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := users.EnsureIndexes(idxCtx); err != nil {
		idxCancel()
		log.Fatalf("ensure indexes failed: %v", err)
	}
	idxCancel()

	// Sessions live in Redis; without it nobody can log in.
	rdb, err := config.NewRedisClient()
	if err != nil {
		log.Fatalf("redis connect failed: %v", err)
	}
	sessions := session.NewRedisStore(rdb, time.Duration(cfg.SessionTTLHours)*time.Hour)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload dir failed: %v", err)
	}

	e := echo.New()
	e.Use(middleware.ResolveSession(cfg.SessionSecret, sessions))
	e.Static("/static/uploads", cfg.UploadDir)

	auth := handler.NewAuthHandler(cfg, users, sessions)
	catalog := handler.NewCatalogHandler(products)
	listings := handler.NewProductHandler(products, cfg.UploadDir)
	carts := handler.NewCartHandler(products, sessions)
	profile := handler.NewProfileHandler(users, cfg.UploadDir)
	admin := handler.NewAdminHandler(users, products)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, rdb)
	router.RegisterShop(e, catalog, listings, carts, profile)
	router.RegisterAdmin(e, admin)

	// Registration events are consumed in the background; the consumer
	// reconnects on its own if the broker is down.
	go func() {
		if err := queue.StartRegistrationConsumer(); err != nil {
			log.Printf("registration consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
