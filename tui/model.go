// Package tui is the interactive terminal client for the blog API.
// It keeps the post list, form fields, and modal state in one bubbletea
// model; every mutation re-fetches the list so the view never drifts from
// the store.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"blog-api/client"
	"blog-api/models"
)

// focusArea tracks which part of the screen receives keystrokes.
type focusArea int

const (
	focusList focusArea = iota
	focusTitle
	focusContent
)

// modalKind tags the modal variant: nothing, an informational message, or a
// pending delete confirmation.
type modalKind int

const (
	modalNone modalKind = iota
	modalInfo
	modalConfirm
)

type modal struct {
	kind     modalKind
	text     string
	deleteID uuid.UUID
}

// postsLoadedMsg carries the result of a successful list fetch.
type postsLoadedMsg struct {
	posts []models.Post
}

// refreshFailedMsg carries a failed list fetch.
type refreshFailedMsg struct {
	err error
}

// mutationDoneMsg reports a successful create, update, or delete.
type mutationDoneMsg struct {
	info string
}

// mutationFailedMsg reports a failed create, update, or delete.
type mutationFailedMsg struct {
	err error
}

// Model is the client state: the post list, the form, the edit target, and
// the modal channel. Update is the only place state transitions happen.
type Model struct {
	api      *client.Client
	posts    []models.Post
	loading  bool
	errMsg   string
	title    textinput.Model
	content  textinput.Model
	focus    focusArea
	editing  *models.Post
	modal    modal
	spinner  spinner.Model
	cursor   int
	quitting bool
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// NewModel creates the client model. The first refresh starts in Init.
func NewModel(api *client.Client) Model {
	title := textinput.New()
	title.Placeholder = "Post title"
	title.Width = 50
	title.CharLimit = 200

	content := textinput.New()
	content.Placeholder = "Post content"
	content.Width = 50

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		api:     api,
		title:   title,
		content: content,
		spinner: s,
		focus:   focusList,
		loading: true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.modal.kind != modalNone {
			return m.updateModal(msg)
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)

	case postsLoadedMsg:
		m.posts = msg.posts
		m.loading = false
		if m.cursor >= len(m.posts) {
			m.cursor = 0
		}
		return m, nil

	case refreshFailedMsg:
		m.loading = false
		m.errMsg = msg.err.Error()
		m.modal = modal{kind: modalInfo, text: msg.err.Error()}
		return m, nil

	case mutationDoneMsg:
		// The mutation succeeded: clear the form, drop the edit target,
		// and resync the list from the store.
		m.title.Reset()
		m.content.Reset()
		m.title.Blur()
		m.content.Blur()
		m.editing = nil
		m.focus = focusList
		m.modal = modal{kind: modalInfo, text: msg.info}
		m.loading = true
		m.errMsg = ""
		return m, m.refreshCmd()

	case mutationFailedMsg:
		// Leave the form untouched so the user can retry.
		m.loading = false
		m.errMsg = msg.err.Error()
		m.modal = modal{kind: modalInfo, text: msg.err.Error()}
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.posts)-1 {
			m.cursor++
		}

	case "n":
		m.focus = focusTitle
		cmd := m.title.Focus()
		return m, cmd

	case "e", "enter":
		if len(m.posts) == 0 {
			return m, nil
		}
		return m.beginEdit(m.posts[m.cursor])

	case "d":
		if len(m.posts) == 0 || m.loading {
			return m, nil
		}
		post := m.posts[m.cursor]
		m.modal = modal{
			kind:     modalConfirm,
			text:     fmt.Sprintf("Delete %q? (y/n)", post.Title),
			deleteID: post.ID,
		}

	case "r":
		if !m.loading {
			m.loading = true
			m.errMsg = ""
			return m, m.refreshCmd()
		}
	}

	return m, nil
}

// beginEdit copies the post's fields into the form and marks it as the edit
// target. No network call happens here.
func (m Model) beginEdit(post models.Post) (tea.Model, tea.Cmd) {
	m.editing = &post
	m.title.SetValue(post.Title)
	m.content.SetValue(post.Content)
	m.content.Blur()
	m.focus = focusTitle
	cmd := m.title.Focus()
	return m, cmd
}

// cancelEdit clears the form and edit target. No network call happens here.
func (m Model) cancelEdit() Model {
	m.title.Reset()
	m.content.Reset()
	m.title.Blur()
	m.content.Blur()
	m.editing = nil
	m.focus = focusList
	return m
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		return m.cancelEdit(), nil

	case tea.KeyTab, tea.KeyShiftTab:
		if m.focus == focusTitle {
			m.focus = focusContent
			m.title.Blur()
			cmd := m.content.Focus()
			return m, cmd
		}
		m.focus = focusTitle
		m.content.Blur()
		cmd := m.title.Focus()
		return m, cmd

	case tea.KeyEnter:
		return m.submit()
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

// submit validates the form and dispatches a create, or an update when an
// edit target is set. Submissions are ignored while a request is in flight.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	title := strings.TrimSpace(m.title.Value())
	content := strings.TrimSpace(m.content.Value())
	if title == "" || content == "" {
		m.modal = modal{kind: modalInfo, text: "Title and content are both required."}
		return m, nil
	}

	m.loading = true
	m.errMsg = ""
	api := m.api

	if m.editing != nil {
		id := m.editing.ID
		return m, func() tea.Msg {
			_, err := api.Update(context.Background(), id, models.UpdatePostInput{Title: &title, Content: &content})
			if err != nil {
				return mutationFailedMsg{err: err}
			}
			return mutationDoneMsg{info: "Post updated."}
		}
	}

	return m, func() tea.Msg {
		_, err := api.Create(context.Background(), models.CreatePostInput{Title: title, Content: content})
		if err != nil {
			return mutationFailedMsg{err: err}
		}
		return mutationDoneMsg{info: "Post created."}
	}
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal.kind == modalInfo {
		// Any key dismisses an informational modal.
		m.modal = modal{}
		return m, nil
	}

	switch msg.String() {
	case "y", "enter":
		id := m.modal.deleteID
		m.modal = modal{}
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		api := m.api
		return m, func() tea.Msg {
			if err := api.Delete(context.Background(), id); err != nil {
				return mutationFailedMsg{err: err}
			}
			return mutationDoneMsg{info: "Post deleted."}
		}

	case "n", "esc":
		m.modal = modal{}
	}

	return m, nil
}

func (m Model) refreshCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		posts, err := api.List(context.Background())
		if err != nil {
			return refreshFailedMsg{err: err}
		}
		return postsLoadedMsg{posts: posts}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  Blog"))
	if m.loading {
		b.WriteString("  " + m.spinner.View() + dimStyle.Render("loading..."))
	}
	b.WriteString("\n\n")

	if len(m.posts) == 0 && !m.loading {
		b.WriteString(dimStyle.Render("  No posts yet. Press n to write one."))
		b.WriteString("\n")
	}
	for i, post := range m.posts {
		line := fmt.Sprintf("%s  %s", post.CreatedAt.Format("2006-01-02 15:04"), post.Title)
		if i == m.cursor && m.focus == focusList {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.focus != focusList || m.editing != nil {
		if m.editing != nil {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  Editing %q", m.editing.Title)))
		} else {
			b.WriteString(dimStyle.Render("  New post"))
		}
		b.WriteString("\n")
		b.WriteString("  " + m.title.View() + "\n")
		b.WriteString("  " + m.content.View() + "\n\n")
	}

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("  " + m.errMsg))
		b.WriteString("\n")
	}

	switch m.modal.kind {
	case modalInfo:
		b.WriteString(modalStyle.Render(infoStyle.Render(m.modal.text)))
		b.WriteString("\n")
	case modalConfirm:
		b.WriteString(modalStyle.Render(m.modal.text))
		b.WriteString("\n")
	}

	if m.focus == focusList {
		b.WriteString(dimStyle.Render("\n  n new · e edit · d delete · r refresh · q quit"))
	} else {
		b.WriteString(dimStyle.Render("\n  enter save · tab next field · esc cancel"))
	}
	b.WriteString("\n")

	return b.String()
}
