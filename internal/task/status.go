// File: status.go
// Title: Status Vocabulary
// Description: The fixed mapping between the technician-facing tri-state
//              completion status, the ClickUp workspace status names, and
//              the display label/color used by the status selector.

package task

// StatusOption maps one completion status to its external-system value
// and display attributes. LabelKey is an i18n string table key.
type StatusOption struct {
	UIValue      CompletionStatus
	ClickUpValue string
	LabelKey     string
	Color        string
}

// statusOptions is the fixed, ordered vocabulary. The ClickUp values must
// match the status names configured in the upstream workspace.
var statusOptions = []StatusOption{
	{UIValue: StatusPending, ClickUpValue: "open", LabelKey: "statusPending", Color: "#6B7280"},
	{UIValue: StatusInProgress, ClickUpValue: "in progress", LabelKey: "statusInProgress", Color: "#F59E0B"},
	{UIValue: StatusCompleted, ClickUpValue: "complete", LabelKey: "statusCompleted", Color: "#10B981"},
}

// StatusOptions returns the vocabulary in its fixed order
func StatusOptions() []StatusOption {
	options := make([]StatusOption, len(statusOptions))
	copy(options, statusOptions)
	return options
}

// StatusFor looks up the option for a completion status value. Unknown or
// empty input yields the first (pending) entry.
func StatusFor(value string) StatusOption {
	for _, option := range statusOptions {
		if string(option.UIValue) == value {
			return option
		}
	}
	return statusOptions[0]
}
