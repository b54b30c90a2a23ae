package controllers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// rootHandler answers liveness checks on the root path
func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("Blog API is up")); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// SetupRootRoute sets up routes for the application
func SetupRootRoute(router *mux.Router) {
	router.HandleFunc("/", rootHandler).Methods("GET")
}
