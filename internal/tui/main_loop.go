package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/setayeshnri/to-do-app-pern-main/internal/service"
	"github.com/setayeshnri/to-do-app-pern-main/models"
)

type loopMode int

const (
	modeList loopMode = iota
	modeForm
	modeConfirmDelete
)

const dateLayout = "2006-01-02"

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	todos   []models.Todo
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string

	mode       loopMode
	editingID  string
	formInputs []textinput.Model
	formFocus  int
	saving     bool

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		user:     user,
		loading:  true,
		spinner:  s,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadTodos())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.todos = msg.todos
		if m.idx >= len(m.todos) {
			m.idx = len(m.todos) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case todoSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		if m.editingID == "" {
			m.status = "Todo created"
		} else {
			m.status = "Todo updated"
		}
		m.mode = modeList
		m.loading = true
		return m, m.cmdLoadTodos()

	case todoDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			m.mode = modeList
			return m, nil
		}
		m.errMsg = ""
		m.status = "Todo deleted"
		m.mode = modeList
		m.loading = true
		return m, m.cmdLoadTodos()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.todos)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.refresh):
		m.status = ""
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadTodos())
	case key.Matches(msg, keys.newItem):
		m.openForm(models.Todo{})
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		if len(m.todos) > 0 {
			m.openForm(m.todos[m.idx])
			return m, textinput.Blink
		}
	case key.Matches(msg, keys.delete):
		if len(m.todos) > 0 {
			m.mode = modeConfirmDelete
		}
	}

	return m, nil
}

func (m *mainLoopModel) openForm(todo models.Todo) {
	titleInput := textinput.New()
	titleInput.Placeholder = "title"
	titleInput.CharLimit = 255
	titleInput.Width = 40
	titleInput.SetValue(todo.Title)
	titleInput.Focus()

	progressInput := textinput.New()
	progressInput.Placeholder = "0-100"
	progressInput.CharLimit = 3
	progressInput.Width = 10
	if todo.ID != "" {
		progressInput.SetValue(strconv.Itoa(todo.Progress))
	}

	dateInput := textinput.New()
	dateInput.Placeholder = dateLayout
	dateInput.CharLimit = 10
	dateInput.Width = 14
	if !todo.Date.IsZero() {
		dateInput.SetValue(todo.Date.Format(dateLayout))
	}

	m.editingID = todo.ID
	m.formInputs = []textinput.Model{titleInput, progressInput, dateInput}
	m.formFocus = 0
	m.errMsg = ""
	m.status = ""
	m.mode = modeForm
}

func (m mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.tab):
		m.formInputs[m.formFocus].Blur()
		m.formFocus = (m.formFocus + 1) % len(m.formInputs)
		m.formInputs[m.formFocus].Focus()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.formInputs[m.formFocus].Blur()
		m.formFocus = (m.formFocus - 1 + len(m.formInputs)) % len(m.formInputs)
		m.formInputs[m.formFocus].Focus()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.saving {
			return m, nil
		}

		input, err := m.parseForm()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}

		m.errMsg = ""
		m.saving = true
		return m, m.cmdSaveTodo(m.editingID, input)
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) parseForm() (models.TodoInput, error) {
	title := strings.TrimSpace(m.formInputs[0].Value())
	if title == "" {
		return models.TodoInput{}, fmt.Errorf("title is required")
	}

	progress := 0
	if raw := strings.TrimSpace(m.formInputs[1].Value()); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 100 {
			return models.TodoInput{}, fmt.Errorf("progress must be a number between 0 and 100")
		}
		progress = parsed
	}

	var date time.Time
	if raw := strings.TrimSpace(m.formInputs[2].Value()); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return models.TodoInput{}, fmt.Errorf("date must look like %s", dateLayout)
		}
		date = parsed
	}

	return models.TodoInput{Title: title, Progress: progress, Date: date}, nil
}

func (m mainLoopModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		return m, m.cmdDeleteTodo(m.todos[m.idx].ID)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.mode = modeList
	}
	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeForm:
		return m.viewForm()
	case modeConfirmDelete:
		return m.viewConfirmDelete()
	default:
		return m.viewList()
	}
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" loading todos...\n")
		return renderPage("MY TODOS", strings.TrimRight(b.String(), "\n"), "")
	}

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString("Error: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n\n")
	}

	if len(m.todos) == 0 {
		b.WriteString("No todos yet. Press n to create one.\n")
	} else {
		b.WriteString(fmt.Sprintf("    %-40s │ %8s │ %s\n", "Title", "Progress", "Date"))
		b.WriteString(strings.Repeat("─", 72))
		b.WriteString("\n")

		for i, todo := range m.todos {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}

			title := fitText(todo.Title, 40)
			if todo.Progress == 100 {
				title = doneStyle.Render(title)
			}

			b.WriteString(fmt.Sprintf("%s  %-40s │ %7d%% │ %s\n",
				cursor, title, todo.Progress, todo.Date.Format(dateLayout)))
		}
	}

	hotKeys := "n: new │ e: edit │ d: delete │ r: refresh │ l: log out │ q: quit"
	return renderPage("MY TODOS ("+m.user.Username+")", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) viewForm() string {
	var b strings.Builder

	title := "NEW TODO"
	if m.editingID != "" {
		title = "EDIT TODO"
	}

	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Title     │ [")
	b.WriteString(m.formInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Progress  │ [")
	b.WriteString(m.formInputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Date      │ [")
	b.WriteString(m.formInputs[2].View())
	b.WriteString("]\n")

	if m.saving {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: cancel │ tab: next field │ enter: save")
}

func (m mainLoopModel) viewConfirmDelete() string {
	todo := m.todos[m.idx]
	data := fmt.Sprintf("Delete %q?", fitText(todo.Title, 40))
	return renderPage("CONFIRM DELETE", data, "y: delete │ n/esc: cancel")
}

func (m mainLoopModel) cmdLoadTodos() tea.Cmd {
	ctx := m.ctx
	todoSvc := m.services.TodoService
	userID := m.user.ID

	return func() tea.Msg {
		todos, err := todoSvc.GetAll(ctx, userID)
		return listLoadedMsg{todos: todos, err: err}
	}
}

func (m mainLoopModel) cmdSaveTodo(todoID string, input models.TodoInput) tea.Cmd {
	ctx := m.ctx
	todoSvc := m.services.TodoService

	return func() tea.Msg {
		var err error
		if todoID == "" {
			_, err = todoSvc.Create(ctx, input)
		} else {
			_, err = todoSvc.Update(ctx, todoID, input)
		}
		return todoSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteTodo(todoID string) tea.Cmd {
	ctx := m.ctx
	todoSvc := m.services.TodoService

	return func() tea.Msg {
		return todoDeletedMsg{err: todoSvc.Delete(ctx, todoID)}
	}
}
