package service

import (
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-note-keeper/models"
)

// NotesPageSize is the number of notes shown per page.
const NotesPageSize = 5

// NoteCache is the in-memory copy of the server's note list.
//
// The list is only ever replaced as a whole. Each fetch takes a ticket from
// Begin before its request is sent; Replace drops a response whose ticket
// is not newer than the last applied one, so a slow stale fetch cannot
// overwrite a fresher list.
//
// Successful mutations call Invalidate; the view listens on Invalidations
// and re-fetches.
type NoteCache struct {
	mu      sync.RWMutex
	notes   []models.Note
	issued  uint64
	applied uint64

	invalidations chan struct{}
}

func NewNoteCache() *NoteCache {
	return &NoteCache{invalidations: make(chan struct{}, 1)}
}

// Begin reserves a ticket for a fetch about to be sent.
func (c *NoteCache) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.issued++
	return c.issued
}

// Replace installs notes fetched under ticket and reports whether they were
// applied.
func (c *NoteCache) Replace(ticket uint64, notes []models.Note) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ticket <= c.applied {
		return false
	}

	c.applied = ticket
	c.notes = slices.Clone(notes)
	if c.notes == nil {
		c.notes = []models.Note{}
	}

	return true
}

// Notes returns a copy of the cached list in server order.
func (c *NoteCache) Notes() []models.Note {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.notes)
}

// Filter returns the cached notes whose category contains term, ignoring
// case. An empty term returns the whole list.
func (c *NoteCache) Filter(term string) []models.Note {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return filterByCategory(c.notes, term)
}

// Page returns one page of the filtered list. page is zero-based and is
// clamped into range; the clamped page and the page count are returned.
// An empty list has one empty page.
func (c *NoteCache) Page(term string, page int) (notes []models.Note, current, total int) {
	return Paginate(c.Filter(term), page)
}

// Invalidate signals that the cached list is stale. Signals coalesce: at
// most one is pending at a time and Invalidate never blocks.
func (c *NoteCache) Invalidate() {
	select {
	case c.invalidations <- struct{}{}:
	default:
	}
}

// Invalidations delivers one value per pending invalidation.
func (c *NoteCache) Invalidations() <-chan struct{} {
	return c.invalidations
}

// Reset empties the cache and discards the responses of fetches still in
// flight. It is called when the session ends.
func (c *NoteCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notes = nil
	c.applied = c.issued
}

// Paginate splits notes into pages of [NotesPageSize].
func Paginate(notes []models.Note, page int) (items []models.Note, current, total int) {
	total = max(1, (len(notes)+NotesPageSize-1)/NotesPageSize)
	current = min(max(page, 0), total-1)

	start := current * NotesPageSize
	end := min(start+NotesPageSize, len(notes))

	return notes[start:end], current, total
}

func filterByCategory(notes []models.Note, term string) []models.Note {
	if term == "" {
		return slices.Clone(notes)
	}

	term = strings.ToLower(term)
	filtered := make([]models.Note, 0, len(notes))
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Category), term) {
			filtered = append(filtered, note)
		}
	}

	return filtered
}
