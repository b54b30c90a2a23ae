package tui

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"blog-api/client"
	"blog-api/models"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func updated(t *testing.T, m tea.Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func somePosts() []models.Post {
	return []models.Post{
		{ID: uuid.New(), Title: "newest", Content: "n", CreatedAt: time.Now()},
		{ID: uuid.New(), Title: "older", Content: "o", CreatedAt: time.Now().Add(-time.Hour)},
	}
}

func TestInitialRefreshTransitions(t *testing.T) {
	m := NewModel(client.New("http://localhost:0"))
	if !m.loading {
		t.Fatal("model must start loading")
	}

	m, _ = updated(t, m, postsLoadedMsg{posts: somePosts()})
	if m.loading {
		t.Error("loading must clear after posts arrive")
	}
	if len(m.posts) != 2 {
		t.Errorf("expected 2 posts, got %d", len(m.posts))
	}
	if m.modal.kind != modalNone {
		t.Error("successful refresh must not raise a modal")
	}
}

func TestRefreshEmptyListIsNotAnError(t *testing.T) {
	m := NewModel(client.New("http://localhost:0"))

	m, _ = updated(t, m, postsLoadedMsg{posts: nil})
	if m.loading {
		t.Error("loading must clear")
	}
	if m.errMsg != "" {
		t.Errorf("empty list is not an error, got %q", m.errMsg)
	}
}

func TestRefreshFailureSurfacesModal(t *testing.T) {
	m := NewModel(client.New("http://localhost:0"))

	m, _ = updated(t, m, refreshFailedMsg{err: errors.New("backend unreachable")})
	if m.loading {
		t.Error("loading must clear on failure")
	}
	if m.errMsg != "backend unreachable" {
		t.Errorf("expected error recorded, got %q", m.errMsg)
	}
	if m.modal.kind != modalInfo {
		t.Error("failure must surface via the modal channel")
	}
}

func TestSubmitValidatesBeforeNetwork(t *testing.T) {
	m := NewModel(client.New("http://localhost:0"))
	m.loading = false
	m.focus = focusTitle
	m.title.SetValue("   ")
	m.content.SetValue("")

	m, cmd := updated(t, m, keyMsg("enter"))
	if cmd != nil {
		t.Error("invalid form must not produce a network command")
	}
	if m.modal.kind != modalInfo {
		t.Error("expected a validation modal")
	}
	if m.loading {
		t.Error("no request should be in flight")
	}
}

func TestSubmitCreatesWhenNotEditing(t *testing.T) {
	var receivedMethod, receivedPath string
	var receivedBody models.CreatePostInput

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedMethod = r.Method
		receivedPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&receivedBody)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Post{ID: uuid.New(), Title: receivedBody.Title, Content: receivedBody.Content, CreatedAt: time.Now()})
	}))
	defer server.Close()

	m := NewModel(client.New(server.URL))
	m.loading = false
	m.focus = focusContent
	m.title.SetValue("  T  ")
	m.content.SetValue("C")

	m, cmd := updated(t, m, keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a network command")
	}
	if !m.loading {
		t.Error("a request must be marked in flight")
	}

	msg := cmd()
	if _, ok := msg.(mutationDoneMsg); !ok {
		t.Fatalf("expected mutationDoneMsg, got %T: %v", msg, msg)
	}
	if receivedMethod != "POST" || receivedPath != "/posts" {
		t.Errorf("expected POST /posts, got %s %s", receivedMethod, receivedPath)
	}
	if receivedBody.Title != "T" || receivedBody.Content != "C" {
		t.Errorf("expected trimmed T/C, got %q/%q", receivedBody.Title, receivedBody.Content)
	}

	// Success clears the form and triggers a refresh.
	m, cmd = updated(t, m, msg)
	if m.title.Value() != "" || m.content.Value() != "" {
		t.Error("form must clear after a successful submit")
	}
	if m.editing != nil {
		t.Error("edit target must clear")
	}
	if m.modal.kind != modalInfo {
		t.Error("expected a success message")
	}
	if !m.loading || cmd == nil {
		t.Error("expected a refresh to start")
	}
}

func TestSubmitUpdatesEditedPost(t *testing.T) {
	target := models.Post{ID: uuid.New(), Title: "old title", Content: "body", CreatedAt: time.Now()}

	var receivedMethod, receivedPath string
	var receivedBody models.UpdatePostInput

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedMethod = r.Method
		receivedPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&receivedBody)
		_ = json.NewEncoder(w).Encode(models.Post{ID: target.ID, Title: "new title", Content: "body", CreatedAt: target.CreatedAt})
	}))
	defer server.Close()

	m := NewModel(client.New(server.URL))
	m.loading = false
	m.posts = []models.Post{target}

	// Begin editing the selected post: form prefills, no network call.
	m, _ = updated(t, m, keyMsg("e"))
	if m.editing == nil || m.editing.ID != target.ID {
		t.Fatal("expected edit target set")
	}
	if m.title.Value() != "old title" || m.content.Value() != "body" {
		t.Errorf("form not prefilled: %q/%q", m.title.Value(), m.content.Value())
	}

	m.title.SetValue("new title")
	m, cmd := updated(t, m, keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected a network command")
	}

	msg := cmd()
	if _, ok := msg.(mutationDoneMsg); !ok {
		t.Fatalf("expected mutationDoneMsg, got %T: %v", msg, msg)
	}
	if receivedMethod != "PUT" || receivedPath != "/posts/"+target.ID.String() {
		t.Errorf("expected PUT /posts/%s, got %s %s", target.ID, receivedMethod, receivedPath)
	}
	if receivedBody.Title == nil || *receivedBody.Title != "new title" {
		t.Error("expected new title in payload")
	}

	m, cmd = updated(t, m, msg)
	if m.editing != nil {
		t.Error("edit target must clear after success")
	}
	if m.title.Value() != "" {
		t.Error("form must clear after success")
	}
	if cmd == nil {
		t.Error("expected a refresh to start")
	}
}

func TestSubmitIgnoredWhileRequestInFlight(t *testing.T) {
	m := NewModel(client.New("http://localhost:0"))
	m.loading = true
	m.focus = focusTitle
	m.title.SetValue("T")
	m.content.SetValue("C")

	_, cmd := updated(t, m, keyMsg("enter"))
	if cmd != nil {
		t.Error("submit must be ignored while a request is outstanding")
	}
}

func TestSubmitFailureKeepsForm(t *testing.T) {
	m := NewModel(client.New("http://localhost:0"))
	m.loading = true
	m.focus = focusTitle
	m.title.SetValue("T")
	m.content.SetValue("C")

	m, _ = updated(t, m, mutationFailedMsg{err: errors.New("server returned 500: boom")})
	if m.loading {
		t.Error("loading must clear")
	}
	if m.title.Value() != "T" || m.content.Value() != "C" {
		t.Error("form must stay intact so the user can retry")
	}
	if m.modal.kind != modalInfo {
		t.Error("failure must surface via modal")
	}
}

func TestCancelEditClearsForm(t *testing.T) {
	m := NewModel(client.New("http://localhost:0"))
	m.loading = false
	m.posts = somePosts()

	m, _ = updated(t, m, keyMsg("e"))
	m, cmd := updated(t, m, keyMsg("esc"))
	if cmd != nil {
		t.Error("cancel must not contact the API")
	}
	if m.editing != nil || m.title.Value() != "" || m.content.Value() != "" {
		t.Error("cancel must clear the form and edit target")
	}
	if m.focus != focusList {
		t.Error("focus must return to the list")
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	var receivedMethod, receivedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedMethod = r.Method
		receivedPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	m := NewModel(client.New(server.URL))
	m.loading = false
	m.posts = somePosts()
	target := m.posts[0]

	// Request-delete surfaces a confirmation, no network call yet.
	m, cmd := updated(t, m, keyMsg("d"))
	if cmd != nil {
		t.Error("delete must wait for confirmation")
	}
	if m.modal.kind != modalConfirm || m.modal.deleteID != target.ID {
		t.Fatal("expected a confirm modal for the selected post")
	}

	// Affirm: the DELETE goes out, then a refresh follows.
	m, cmd = updated(t, m, keyMsg("y"))
	if cmd == nil {
		t.Fatal("expected a delete command")
	}
	if m.modal.kind != modalNone {
		t.Error("confirm modal must dismiss")
	}

	msg := cmd()
	if _, ok := msg.(mutationDoneMsg); !ok {
		t.Fatalf("expected mutationDoneMsg, got %T: %v", msg, msg)
	}
	if receivedMethod != "DELETE" || receivedPath != "/posts/"+target.ID.String() {
		t.Errorf("expected DELETE /posts/%s, got %s %s", target.ID, receivedMethod, receivedPath)
	}

	m, cmd = updated(t, m, msg)
	if m.modal.kind != modalInfo {
		t.Error("expected a success message")
	}
	if !m.loading || cmd == nil {
		t.Error("expected a refresh to start")
	}
}

func TestDeleteDeclineDoesNothing(t *testing.T) {
	m := NewModel(client.New("http://localhost:0"))
	m.loading = false
	m.posts = somePosts()

	m, _ = updated(t, m, keyMsg("d"))
	m, cmd := updated(t, m, keyMsg("n"))
	if cmd != nil {
		t.Error("decline must not contact the API")
	}
	if m.modal.kind != modalNone {
		t.Error("confirm modal must dismiss on decline")
	}
	if len(m.posts) != 2 {
		t.Error("declining must leave the list untouched")
	}
}

func TestInfoModalDismissesOnAnyKey(t *testing.T) {
	m := NewModel(client.New("http://localhost:0"))
	m.loading = false
	m.modal = modal{kind: modalInfo, text: "done"}

	m, _ = updated(t, m, keyMsg("x"))
	if m.modal.kind != modalNone {
		t.Error("info modal must dismiss")
	}
}
