// File: messages.go
// Title: Task View Message Types
// Description: Message types for async operations in the task detail
//              view. Fetch results carry the request generation so a
//              late response from a superseded fetch can be discarded.

package taskview

import (
	"fieldtask/internal/api"
	"fieldtask/internal/task"
)

// savedField identifies which technician field a save result belongs to
type savedField int

const (
	fieldArrival savedField = iota
	fieldStatus
	fieldNotes
)

// taskLoadedMsg is sent when a task fetch completes
type taskLoadedMsg struct {
	seq    int
	record *task.Task
	err    error
}

// saveResultMsg is sent when a field save completes
type saveResultMsg struct {
	field  savedField
	result task.UpdateResult
	err    error
}

// savedClearMsg clears the transient saved indicator
type savedClearMsg struct{}

// uploadStepMsg is sent after each file in an upload batch. The
// remaining paths drive the next step; the batch continues past a
// failed file.
type uploadStepMsg struct {
	uploaded  api.UploadedAttachment
	filename  string
	err       error
	remaining []string
}

// translatedMsg is sent when a translation batch completes. The key is
// the cache key of the record the batch was built from; a result for a
// superseded snapshot is discarded.
type translatedMsg struct {
	key     string
	results []string
	err     error
}

// pdfOpenedMsg is sent after attempting to open the work-order PDF
type pdfOpenedMsg struct {
	err error
}
