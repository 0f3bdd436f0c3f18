package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formFieldTitle = iota
	formFieldContent
	formFieldCategory
	formFieldCount
)

// noteForm is the modal shared by create and edit. noteID is empty when
// creating.
type noteForm struct {
	noteID string

	title    textinput.Model
	content  textarea.Model
	category textinput.Model

	focus  int
	errMsg string
}

func newNoteForm(note *models.Note) *noteForm {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 0
	title.Width = 50

	content := textarea.New()
	content.Placeholder = "content"
	content.SetWidth(50)
	content.SetHeight(5)
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.MaxHeight = 0

	category := textinput.New()
	category.Placeholder = "category"
	category.CharLimit = 0
	category.Width = 50

	f := &noteForm{title: title, content: content, category: category}
	if note != nil {
		f.noteID = note.ID
		f.title.SetValue(note.Title)
		f.content.SetValue(note.Content)
		f.category.SetValue(note.Category)
	}
	f.setFocus(formFieldTitle)

	return f
}

func (f *noteForm) editing() bool {
	return f.noteID != ""
}

// draft returns the fields as typed. Blank checks belong to the validator.
func (f *noteForm) draft() models.NoteDraft {
	return models.NoteDraft{
		Title:    f.title.Value(),
		Content:  f.content.Value(),
		Category: f.category.Value(),
	}
}

func (f *noteForm) setFocus(i int) {
	f.title.Blur()
	f.content.Blur()
	f.category.Blur()

	f.focus = (i + formFieldCount) % formFieldCount
	switch f.focus {
	case formFieldTitle:
		f.title.Focus()
	case formFieldContent:
		f.content.Focus()
	case formFieldCategory:
		f.category.Focus()
	}
}

// update forwards msg to the focused field.
func (f *noteForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case formFieldTitle:
		f.title, cmd = f.title.Update(msg)
	case formFieldContent:
		f.content, cmd = f.content.Update(msg)
	case formFieldCategory:
		f.category, cmd = f.category.Update(msg)
	}
	return cmd
}

func (f *noteForm) view(saving bool) string {
	var b strings.Builder

	if f.editing() {
		b.WriteString(titleStyle.Render("Edit note"))
	} else {
		b.WriteString(titleStyle.Render("Add note"))
	}
	b.WriteString("\n\n")
	b.WriteString("Title\n")
	b.WriteString(f.title.View())
	b.WriteString("\n\nContent\n")
	b.WriteString(f.content.View())
	b.WriteString("\n\nCategory\n")
	b.WriteString(f.category.View())
	b.WriteString("\n")

	if saving {
		b.WriteString("\n[Saving...]\n")
	}
	writeStatus(&b, "", f.errMsg)

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab: next field │ ctrl+s: save │ esc: cancel"))

	return overlayBoxStyle.Render(b.String())
}
