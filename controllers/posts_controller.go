package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"blog-api/middlewares"
	"blog-api/models"
	"blog-api/store"
	"blog-api/validation"
)

// PostHandler serves the five post operations over a PostStore.
type PostHandler struct {
	Store store.PostStore
}

func (h *PostHandler) SetupPostRoutes(r *mux.Router) {
	postsRouter := r.PathPrefix("/posts").Subrouter()
	postsRouter.HandleFunc("", h.GetPosts).Methods("GET")
	postsRouter.HandleFunc("", h.CreatePost).Methods("POST")
	postsRouter.HandleFunc("/{id}", h.GetPost).Methods("GET")
	postsRouter.HandleFunc("/{id}", h.UpdatePost).Methods("PUT")
	postsRouter.HandleFunc("/{id}", h.DeletePost).Methods("DELETE")
}

func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Store.List(r.Context())
	if err != nil {
		middlewares.HttpError(w, "Failed to fetch posts", http.StatusInternalServerError, err)
		return
	}

	// An empty collection is a 200 with an empty array, never null.
	if posts == nil {
		posts = []models.Post{}
	}

	middlewares.RespondJSON(w, posts, http.StatusOK)
}

func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		middlewares.HttpError(w, "Invalid post ID", http.StatusBadRequest, err)
		return
	}

	post, err := h.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middlewares.HttpError(w, "Post not found", http.StatusNotFound, err)
			return
		}
		middlewares.HttpError(w, "Failed to fetch post", http.StatusInternalServerError, err)
		return
	}

	middlewares.RespondJSON(w, post, http.StatusOK)
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in models.CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		middlewares.HttpError(w, "Invalid JSON payload", http.StatusBadRequest, err)
		return
	}

	if err := validation.ValidateCreatePost(&in); err != nil {
		middlewares.HttpError(w, err.Error(), http.StatusBadRequest, err)
		return
	}

	post, err := h.Store.Create(r.Context(), in)
	if err != nil {
		middlewares.HttpError(w, "Failed to create post", http.StatusInternalServerError, err)
		return
	}

	middlewares.RespondJSON(w, post, http.StatusCreated)
}

func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		middlewares.HttpError(w, "Invalid post ID", http.StatusBadRequest, err)
		return
	}

	var in models.UpdatePostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		middlewares.HttpError(w, "Invalid JSON payload", http.StatusBadRequest, err)
		return
	}

	if err := validation.ValidateUpdatePost(&in); err != nil {
		middlewares.HttpError(w, err.Error(), http.StatusBadRequest, err)
		return
	}

	post, err := h.Store.Update(r.Context(), id, in)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middlewares.HttpError(w, "Post not found", http.StatusNotFound, err)
			return
		}
		middlewares.HttpError(w, "Failed to update post", http.StatusInternalServerError, err)
		return
	}

	middlewares.RespondJSON(w, post, http.StatusOK)
}

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		middlewares.HttpError(w, "Invalid post ID", http.StatusBadRequest, err)
		return
	}

	// Delete is idempotent: removing an absent post still succeeds.
	if err := h.Store.Delete(r.Context(), id); err != nil {
		middlewares.HttpError(w, "Failed to delete post", http.StatusInternalServerError, err)
		return
	}

	middlewares.RespondJSON(w, nil, http.StatusNoContent)
}
