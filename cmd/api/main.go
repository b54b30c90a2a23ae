package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"blog-api/db"
	"blog-api/routes"
	"blog-api/store"
)

func main() {
	// Load configuration
	config, err := db.LoadDBConfig()
	if err != nil {
		log.Fatalf("Error loading database config: %v", err)
	}

	envCheck()

	// Migrate the database (also opens the connection pool)
	migrateCfg := db.MigrateConfig{
		DBURL: config.DBURL,
	}

	if err := db.Migrate(migrateCfg); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		log.Fatalf("Error initializing Redis: %v", err)
	}

	// Postgres behind a Redis read-through cache; mutations invalidate.
	postStore := store.NewCached(store.NewPostgres(db.DB), db.RedisClient, store.DefaultCacheTime)

	handler := routes.SetupRoutes(postStore)

	srv := &http.Server{
		Addr:           ":" + listenPort(),
		Handler:        handler,
		ReadTimeout:    100 * time.Second,
		WriteTimeout:   100 * time.Second,
		MaxHeaderBytes: 7500,
		IdleTimeout:    120 * time.Second,
	}

	// Use a wait group to manage graceful shutdown
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()
	log.Printf("Server started on %s", srv.Addr)

	// Wait for interrupt signal to gracefully shut down the server
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	// Create a context with a timeout for shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %+v", err)
	}

	wg.Wait() // Wait for all goroutines to finish before exiting
	log.Println("Server exited gracefully")
}

func listenPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func envCheck() {
	// Check Redis configuration
	if _, err := db.LoadRedisConfig(); err != nil {
		log.Fatalf("Error loading Redis config: %v", err)
	} else {
		log.Println("Redis configuration environment variable is set.")
	}
}
