package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Exit tells the application loop why the notes page closed.
type Exit int

const (
	ExitQuit Exit = iota
	ExitLogout
	// ExitSessionEnded means the token was missing or rejected by the server.
	ExitSessionEnded
)

const contentColumnWidth = 40

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// NotesModel is the logged-in page: a category search box, a paginated
// table over the cached notes and a modal form for create and edit.
//
// The page re-lists on mount, on "r" and whenever the note cache signals an
// invalidation after a successful mutation.
type NotesModel struct {
	ctx   context.Context
	auth  service.ClientAuthService
	notes service.ClientNoteService
	cache *service.NoteCache

	table   table.Model
	pager   paginator.Model
	search  textinput.Model
	spinner spinner.Model

	visible   []models.Note
	page      int
	searching bool
	loading   bool
	saving    bool
	dark      bool

	form          *noteForm
	pendingDelete *models.Note

	status string
	errMsg string
	exit   Exit
}

func NewNotesModel(ctx context.Context, services *service.ClientServices) *NotesModel {
	search := textinput.New()
	search.Placeholder = "search by category"
	search.Prompt = "/ "
	search.Width = 30

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Title", Width: 24},
			{Title: "Content", Width: contentColumnWidth},
			{Title: "Category", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(service.NotesPageSize+1),
	)

	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.PerPage = service.NotesPageSize

	m := &NotesModel{
		ctx:     ctx,
		auth:    services.AuthService,
		notes:   services.NoteService,
		cache:   services.Cache,
		table:   t,
		pager:   pager,
		search:  search,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		loading: true,
	}
	m.table.SetStyles(themeFor(false).table)
	m.refreshTable()

	return m
}

func (m *NotesModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdList(), m.cmdWaitInvalidation())
}

func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if sessionEnded(msg.err) {
				return m.endSession()
			}
			m.errMsg = app.UIFetchFailed
			return m, nil
		}
		m.errMsg = ""
		m.refreshTable()
		return m, nil
	case notesInvalidatedMsg:
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdList(), m.cmdWaitInvalidation())
	case noteSavedMsg:
		m.saving = false
		if msg.err != nil {
			if sessionEnded(msg.err) {
				return m.endSession()
			}
			if m.form != nil {
				m.form.errMsg = saveMessage(msg.err, app.UISaveFailed)
			} else {
				m.errMsg = app.UISaveFailed
			}
			return m, nil
		}
		m.form = nil
		m.errMsg = ""
		if msg.created {
			m.status = app.UINoteAdded
		} else {
			m.status = app.UINoteUpdated
		}
		return m, nil
	case noteDeletedMsg:
		m.saving = false
		if msg.err != nil {
			if sessionEnded(msg.err) {
				return m.endSession()
			}
			m.errMsg = saveMessage(msg.err, app.UIDeleteFailed)
			return m, nil
		}
		m.errMsg = ""
		m.status = app.UINoteDeleted
		return m, nil
	case logoutDoneMsg:
		m.exit = ExitLogout
		return m, tea.Quit
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = app.UIClipboardFail
			return m, nil
		}
		m.status = app.UIClipboardCopy
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	switch {
	case m.form != nil:
		return m, m.form.update(msg)
	case m.searching:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *NotesModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.exit = ExitQuit
		return m, tea.Quit
	}

	switch {
	case m.form != nil:
		return m.updateForm(msg)
	case m.pendingDelete != nil:
		return m.updateConfirm(msg)
	case m.searching:
		return m.updateSearch(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.exit = ExitQuit
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.esc):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.page = 0
			m.refreshTable()
		}
		return m, nil
	case key.Matches(msg, keys.newNote):
		m.clearStatus()
		m.form = newNoteForm(nil)
		return m, textinput.Blink
	case key.Matches(msg, keys.edit):
		note, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.clearStatus()
		m.form = newNoteForm(&note)
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		note, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.clearStatus()
		m.pendingDelete = &note
		return m, nil
	case key.Matches(msg, keys.copy):
		note, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, cmdCopy(note.Content)
	case key.Matches(msg, keys.refresh):
		m.clearStatus()
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdList())
	case key.Matches(msg, keys.theme):
		m.dark = !m.dark
		m.table.SetStyles(themeFor(m.dark).table)
		return m, nil
	case key.Matches(msg, keys.prevPage):
		m.page--
		m.refreshTable()
		return m, nil
	case key.Matches(msg, keys.nextPage):
		m.page++
		m.refreshTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *NotesModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if !m.saving {
			m.form = nil
		}
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	case key.Matches(msg, keys.save):
		if m.saving {
			return m, nil
		}
		m.form.errMsg = ""
		m.saving = true
		return m, tea.Batch(m.spinner.Tick, m.cmdSave(m.form.noteID, m.form.draft()))
	}

	return m, m.form.update(msg)
}

func (m *NotesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		id := m.pendingDelete.ID
		m.pendingDelete = nil
		m.saving = true
		return m, tea.Batch(m.spinner.Tick, m.cmdDelete(id))
	case key.Matches(msg, keys.no):
		m.pendingDelete = nil
	}
	return m, nil
}

func (m *NotesModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.page = 0
	m.refreshTable()
	return m, cmd
}

func (m *NotesModel) View() string {
	th := themeFor(m.dark)

	if m.form != nil {
		return th.page.Render(m.form.view(m.saving))
	}

	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.pager.View())
	if m.busy() {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
		b.WriteString(" loading...")
	}
	b.WriteString("\n")

	if m.pendingDelete != nil {
		b.WriteString("\n")
		b.WriteString(overlayBoxStyle.Render(fmt.Sprintf("Delete note %q? (y/n)", m.pendingDelete.Title)))
		b.WriteString("\n")
	}

	writeStatus(&b, m.status, m.errMsg)

	hotKeys := "n: new │ e: edit │ d: delete │ c: copy │ /: search │ ←/→: page │ r: refresh │ t: theme │ l: logout │ q: quit"
	return th.page.Render(renderPage("NOTES", strings.TrimRight(b.String(), "\n"), hotKeys))
}

// Exit reports why the page was closed.
func (m *NotesModel) Exit() Exit {
	return m.exit
}

func (m *NotesModel) busy() bool {
	return m.loading || m.saving
}

func (m *NotesModel) clearStatus() {
	m.status = ""
	m.errMsg = ""
}

func (m *NotesModel) endSession() (tea.Model, tea.Cmd) {
	m.exit = ExitSessionEnded
	return m, tea.Quit
}

func (m *NotesModel) selected() (models.Note, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return models.Note{}, false
	}
	return m.visible[i], true
}

// refreshTable recomputes the visible page from the cache. The filter is
// never stored, so it cannot diverge from the cached list.
func (m *NotesModel) refreshTable() {
	items, current, total := m.cache.Page(m.search.Value(), m.page)
	m.page = current
	m.visible = items

	m.pager.TotalPages = total
	m.pager.Page = current

	rows := make([]table.Row, 0, len(items))
	for _, note := range items {
		rows = append(rows, table.Row{
			fitText(note.Title, 24),
			fitText(note.Content, contentColumnWidth),
			fitText(note.Category, 16),
		})
	}
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *NotesModel) cmdList() tea.Cmd {
	ctx := m.ctx
	notes := m.notes

	return func() tea.Msg {
		list, err := notes.List(ctx)
		return notesLoadedMsg{notes: list, err: err}
	}
}

// cmdWaitInvalidation blocks until the cache signals an invalidation or
// the page context ends. It is re-armed after every signal.
func (m *NotesModel) cmdWaitInvalidation() tea.Cmd {
	ctx := m.ctx
	ch := m.cache.Invalidations()

	return func() tea.Msg {
		select {
		case <-ch:
			return notesInvalidatedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m *NotesModel) cmdSave(id string, draft models.NoteDraft) tea.Cmd {
	ctx := m.ctx
	notes := m.notes

	return func() tea.Msg {
		if id == "" {
			return noteSavedMsg{created: true, err: notes.Create(ctx, draft)}
		}
		return noteSavedMsg{err: notes.Update(ctx, id, draft)}
	}
}

func (m *NotesModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	notes := m.notes

	return func() tea.Msg {
		return noteDeletedMsg{err: notes.Delete(ctx, id)}
	}
}

func (m *NotesModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func cmdCopy(content string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(content)}
	}
}
