// File: overlay.go
// Title: Translation Overlay
// Description: Produces a locale-specific display variant of a task
//              record. A single-slot cache keyed on the task id and the
//              snapshot version avoids re-translating an unchanged
//              snapshot; cached fields are spliced into the current
//              record so untranslated fields (fresh attachments, status)
//              always stay current. The canonical record is never
//              mutated, only cloned.

package translate

import (
	"strings"

	"fieldtask/internal/task"
)

// noSnapshotSentinel keys records that have no snapshot version yet
const noSnapshotSentinel = "none"

// Fields holds the translated values of exactly the four translated
// fields. A cache slot is superseded wholesale, never partially updated.
type Fields struct {
	TaskName         string
	IssueDescription string
	TechNotes        string
	ActionItems      []task.ActionItem
}

// Overlay is the single-slot translation cache. It is owned by the view
// and only touched from the UI update loop.
type Overlay struct {
	cacheKey string
	cached   *Fields
}

// NewOverlay creates an empty overlay
func NewOverlay() *Overlay {
	return &Overlay{}
}

// CacheKey derives the cache key for a record: task id plus snapshot
// version, with a sentinel when the snapshot timestamp is absent.
func CacheKey(t *task.Task) string {
	version := t.SnapshotWrittenAt
	if strings.TrimSpace(version) == "" {
		version = noSnapshotSentinel
	}
	return t.TaskID + ":" + version
}

// SourceTexts assembles the ordered batch for one translation request:
// positions 0-2 are name, issue description and notes; the remainder are
// the action item texts in record order.
func SourceTexts(t *task.Task) []string {
	texts := make([]string, 0, 3+len(t.ActionItems))
	texts = append(texts, t.TaskName, t.IssueDescription, t.TechNotes)
	for _, item := range t.ActionItems {
		texts = append(texts, item.Text)
	}
	return texts
}

// Splice maps a translation response back onto a clone of the record by
// position. Wherever the response is short or blank for a non-empty
// source, the original text is kept; translated output never blanks a
// field.
func Splice(t *task.Task, results []string) *task.Task {
	clone := t.Clone()

	pick := func(index int, original string) string {
		if index < len(results) && strings.TrimSpace(results[index]) != "" {
			return results[index]
		}
		return original
	}

	clone.TaskName = pick(0, t.TaskName)
	clone.IssueDescription = pick(1, t.IssueDescription)
	clone.TechNotes = pick(2, t.TechNotes)
	for i := range clone.ActionItems {
		clone.ActionItems[i].Text = pick(3+i, t.ActionItems[i].Text)
	}
	return clone
}

// Lookup returns the display variant for the record if its key matches
// the cache slot: the cached translated fields spliced into the current
// record. The second return is false on a cache miss.
func (o *Overlay) Lookup(t *task.Task) (*task.Task, bool) {
	if t == nil || o.cached == nil || o.cacheKey != CacheKey(t) {
		return nil, false
	}

	clone := t.Clone()
	clone.TaskName = o.cached.TaskName
	clone.IssueDescription = o.cached.IssueDescription
	clone.TechNotes = o.cached.TechNotes
	if len(o.cached.ActionItems) == len(clone.ActionItems) {
		copy(clone.ActionItems, o.cached.ActionItems)
	}
	return clone, true
}

// Store splices the response into the record, fills the cache slot for
// the record's key, and returns the display variant. Failures are never
// stored; callers simply skip Store and fall back to the canonical
// record.
func (o *Overlay) Store(t *task.Task, results []string) *task.Task {
	display := Splice(t, results)

	items := make([]task.ActionItem, len(display.ActionItems))
	copy(items, display.ActionItems)

	o.cacheKey = CacheKey(t)
	o.cached = &Fields{
		TaskName:         display.TaskName,
		IssueDescription: display.IssueDescription,
		TechNotes:        display.TechNotes,
		ActionItems:      items,
	}
	return display
}

// Invalidate clears the cache slot
func (o *Overlay) Invalidate() {
	o.cacheKey = ""
	o.cached = nil
}
