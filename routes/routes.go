package routes

import (
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/gorilla/mux"

	"blog-api/controllers"
	"blog-api/middlewares"
	"blog-api/store"
)

// SetupRoutes sets up the application routes and middlewares.
func SetupRoutes(postStore store.PostStore) http.Handler {
	router := mux.NewRouter()

	// Apply global middlewares
	router.Use(middlewares.CorsMiddleware(&middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
	}))
	router.Use(middlewares.LoggingMiddleware)

	// Initialize rate limiter and apply to all routes
	rateLimiter := middlewares.NewRateLimiter(120, time.Minute, 2*time.Minute)
	router.Use(rateLimiter.Limit)

	controllers.SetupRootRoute(router)

	postHandler := &controllers.PostHandler{Store: postStore}
	postHandler.SetupPostRoutes(router)

	// Register pprof routes to enable profiling
	router.HandleFunc("/debug/pprof/", pprof.Index)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
