package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/muzaffarov/splitbill/internal/api"
	"github.com/muzaffarov/splitbill/internal/bot"
	"github.com/muzaffarov/splitbill/internal/config"
	"github.com/muzaffarov/splitbill/internal/db"
	"github.com/muzaffarov/splitbill/internal/session"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Pick the session store: Postgres when configured, in-memory otherwise
	var store session.Store
	if cfg.DatabaseURL != "" {
		database, err := db.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.RunMigrations(context.Background()); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		store = session.NewPostgresStore(database)
	} else {
		log.Println("DATABASE_URL is not set, bills are kept in memory")
		store = session.NewMemoryStore()
	}

	manager := session.NewManager(store)

	// Sweep expired webapp tokens in the background
	janitor := session.NewTokenJanitor(manager)
	janitor.Start()
	defer janitor.Stop()

	// Initialize Discord bot
	discordBot, err := bot.New(cfg, manager)
	if err != nil {
		log.Fatalf("Failed to create discord bot: %v", err)
	}

	// Initialize API server
	apiServer := api.New(cfg, manager, discordBot.Session())

	// Start Discord bot
	if err := discordBot.Start(); err != nil {
		log.Fatalf("Failed to start discord bot: %v", err)
	}
	defer discordBot.Stop()

	// Start API server
	go func() {
		if err := apiServer.Start(); err != nil {
			log.Printf("API server error: %v", err)
		}
	}()

	// Wait for signal to stop
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
}
