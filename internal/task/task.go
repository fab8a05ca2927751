// File: task.go
// Title: Task Record
// Description: The canonical task record as delivered by the backend,
//              the technician-writable patch type, and the three merge
//              operations (replace on fetch, field merge on update,
//              append on upload). All merges run on the UI update loop,
//              so the record has a single writer.

package task

// CompletionStatus is the technician-facing tri-state status
type CompletionStatus string

const (
	StatusPending    CompletionStatus = "pending"
	StatusInProgress CompletionStatus = "in_progress"
	StatusCompleted  CompletionStatus = "completed"
)

// ActionItemType controls how an action item is rendered
type ActionItemType string

const (
	ActionItemBullet  ActionItemType = "bullet"
	ActionItemOrdered ActionItemType = "ordered"
	ActionItemPlain   ActionItemType = ""
)

// ActionItem is one line of the work order's action list
type ActionItem struct {
	Text string         `json:"text"`
	Type ActionItemType `json:"type"`
}

// Attachment is a stored file reference on the task
type Attachment struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Task is the canonical record for one maintenance task. Only the
// technician-writable fields (arrival, completion status, notes) are ever
// sent back to the backend; everything else is read-only here.
type Task struct {
	TaskID           string       `json:"task_id"`
	TaskName         string       `json:"task_name"`
	PropertyAddress  string       `json:"property_address"`
	IssueDescription string       `json:"issue_description"`
	ActionItems      []ActionItem `json:"action_items"`

	StartDateMS      string  `json:"start_date_ms"`
	StartBufferHours float64 `json:"start_buffer_hours"`

	TaskStatus    string `json:"task_status"`
	TranslateFlag bool   `json:"translate_flag"`

	Attachments []Attachment `json:"attachments"`

	// Technician-writable fields
	ArrivalDateISO   string           `json:"arrival_date_iso"`
	CompletionStatus CompletionStatus `json:"completion_status"`
	TechNotes        string           `json:"tech_notes"`

	LastUIUpdateAt    string `json:"last_ui_update_at,omitempty"`
	SnapshotWrittenAt string `json:"snapshot_written_at,omitempty"`
	CacheStale        bool   `json:"cache_stale"`
}

// UpdatePayload is the patch sent on save. Nil fields are omitted from the
// request body, so a payload carries exactly the fields being changed.
type UpdatePayload struct {
	ArrivalDateISO   *string `json:"arrival_date_iso,omitempty"`
	CompletionStatus *string `json:"completion_status,omitempty"`
	TechNotes        *string `json:"tech_notes,omitempty"`
	ClickUpStatus    *string `json:"clickup_status,omitempty"`
}

// IsEmpty returns true when the payload carries no fields
func (p UpdatePayload) IsEmpty() bool {
	return p.ArrivalDateISO == nil && p.CompletionStatus == nil &&
		p.TechNotes == nil && p.ClickUpStatus == nil
}

// ArrivalPatch builds a payload updating only the arrival timestamp
func ArrivalPatch(iso string) UpdatePayload {
	return UpdatePayload{ArrivalDateISO: &iso}
}

// NotesPatch builds a payload updating only the technician notes
func NotesPatch(notes string) UpdatePayload {
	return UpdatePayload{TechNotes: &notes}
}

// StatusPatch builds a payload updating the completion status together
// with its paired external-system status; the two always travel together.
func StatusPatch(option StatusOption) UpdatePayload {
	ui := string(option.UIValue)
	external := option.ClickUpValue
	return UpdatePayload{CompletionStatus: &ui, ClickUpStatus: &external}
}

// UpdateResult is the subset of fields the backend returns from a save;
// it is authoritative for exactly the fields it carries.
type UpdateResult struct {
	ArrivalDateISO    *string `json:"arrival_date_iso,omitempty"`
	CompletionStatus  *string `json:"completion_status,omitempty"`
	TechNotes         *string `json:"tech_notes,omitempty"`
	TaskStatus        *string `json:"task_status,omitempty"`
	LastUIUpdateAt    *string `json:"last_ui_update_at,omitempty"`
	SnapshotWrittenAt *string `json:"snapshot_written_at,omitempty"`
}

// MergeUpdate shallow-merges the returned fields into the record. Fields
// the server did not return are left untouched.
func (t *Task) MergeUpdate(result UpdateResult) {
	if result.ArrivalDateISO != nil {
		t.ArrivalDateISO = *result.ArrivalDateISO
	}
	if result.CompletionStatus != nil {
		t.CompletionStatus = CompletionStatus(*result.CompletionStatus)
	}
	if result.TechNotes != nil {
		t.TechNotes = *result.TechNotes
	}
	if result.TaskStatus != nil {
		t.TaskStatus = *result.TaskStatus
	}
	if result.LastUIUpdateAt != nil {
		t.LastUIUpdateAt = *result.LastUIUpdateAt
	}
	if result.SnapshotWrittenAt != nil {
		t.SnapshotWrittenAt = *result.SnapshotWrittenAt
	}
}

// AppendAttachment appends an uploaded attachment to the record. The list
// is append-only within a session; there is no delete or reorder.
func (t *Task) AppendAttachment(att Attachment) {
	t.Attachments = append(t.Attachments, att)
}

// Clone returns a deep copy of the record. The translation overlay works
// on clones so the canonical record is never mutated by display logic.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	clone := *t
	clone.ActionItems = make([]ActionItem, len(t.ActionItems))
	copy(clone.ActionItems, t.ActionItems)
	clone.Attachments = make([]Attachment, len(t.Attachments))
	copy(clone.Attachments, t.Attachments)
	return &clone
}
