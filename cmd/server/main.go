package main // Entry point package

import (
	"context"
	"log" // Logging library

	"github.com/joho/godotenv"    // Optional .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/meal-battle-arena/internal/battle"     // Battle arena engine
	"github.com/iliyamo/meal-battle-arena/internal/config"     // Internal config loader
	"github.com/iliyamo/meal-battle-arena/internal/database"   // MySQL pool and schema
	"github.com/iliyamo/meal-battle-arena/internal/handler"    // HTTP handlers
	"github.com/iliyamo/meal-battle-arena/internal/middleware" // Rate limiting middleware
	"github.com/iliyamo/meal-battle-arena/internal/queue"      // Battle event consumer
	"github.com/iliyamo/meal-battle-arena/internal/random"     // random.org client
	"github.com/iliyamo/meal-battle-arena/internal/repository" // Meal data access
	"github.com/iliyamo/meal-battle-arena/internal/router"     // Internal router setup
	queue_publisher "github.com/iliyamo/meal-battle-arena/internal/service"
)

func main() {
	// A .env file is optional; deployments configure the process
	// environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()
	if err := database.CreateSchema(context.Background(), db); err != nil {
		log.Fatalf("database: %v", err)
	}

	// One repository and one shared arena serve every request; battle
	// draws come from random.org.
	meals := repository.NewMealRepo(db)
	source := random.NewClient(cfg.RandomURL, cfg.RandomTimeout)
	arena := battle.NewArena(source, meals)

	// The consumer keeps reconnecting in the background. Battles publish
	// regardless; a broker outage only costs the audit log lines.
	go func() {
		if err := queue.StartBattleConsumer(); err != nil {
			log.Printf("battle-consumer: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), config.NewRedisClient()))

	router.RegisterRoutes(e) // Health check
	router.RegisterMeals(e, handler.NewMealHandler(meals), handler.NewLeaderboardHandler(meals))
	router.RegisterBattle(e, handler.NewBattleHandler(arena, meals, queue_publisher.PublishBattleCompleted))

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
