// File: task_test.go
// Title: Task Record Tests

package task

import (
	"encoding/json"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestUpdatePayloadCarriesOnlyChangedFields(t *testing.T) {
	payload := ArrivalPatch("2025-03-14T09:30:00Z")

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	if len(fields) != 1 {
		t.Errorf("arrival patch should serialize exactly one field, got %v", fields)
	}
	if fields["arrival_date_iso"] != "2025-03-14T09:30:00Z" {
		t.Errorf("arrival_date_iso = %v", fields["arrival_date_iso"])
	}
}

func TestStatusPatchPairsValues(t *testing.T) {
	payload := StatusPatch(StatusFor("completed"))

	data, _ := json.Marshal(payload)
	var fields map[string]interface{}
	json.Unmarshal(data, &fields)

	if fields["completion_status"] != "completed" {
		t.Errorf("completion_status = %v", fields["completion_status"])
	}
	if fields["clickup_status"] != "complete" {
		t.Errorf("clickup_status = %v", fields["clickup_status"])
	}
	if len(fields) != 2 {
		t.Errorf("status patch should serialize exactly two fields, got %v", fields)
	}
}

func TestMergeUpdate(t *testing.T) {
	record := &Task{
		TaskID:           "t1",
		TaskName:         "Fix boiler",
		ArrivalDateISO:   "",
		CompletionStatus: StatusPending,
		TechNotes:        "old notes",
	}

	record.MergeUpdate(UpdateResult{
		ArrivalDateISO:    strPtr("2025-03-14T09:30:00Z"),
		SnapshotWrittenAt: strPtr("2025-03-14T09:31:00Z"),
	})

	if record.ArrivalDateISO != "2025-03-14T09:30:00Z" {
		t.Errorf("ArrivalDateISO = %q", record.ArrivalDateISO)
	}
	if record.SnapshotWrittenAt != "2025-03-14T09:31:00Z" {
		t.Errorf("SnapshotWrittenAt = %q", record.SnapshotWrittenAt)
	}
	// Fields the server did not return stay untouched.
	if record.TechNotes != "old notes" {
		t.Errorf("TechNotes = %q, want unchanged", record.TechNotes)
	}
	if record.CompletionStatus != StatusPending {
		t.Errorf("CompletionStatus = %v, want unchanged", record.CompletionStatus)
	}
	if record.TaskName != "Fix boiler" {
		t.Errorf("TaskName = %q, want unchanged", record.TaskName)
	}
}

func TestAppendAttachment(t *testing.T) {
	record := &Task{
		Attachments: []Attachment{{ID: "a1", Name: "before.jpg"}},
	}

	record.AppendAttachment(Attachment{ID: "a2", Name: "photo.jpg", URL: "https://files/a2"})

	if len(record.Attachments) != 2 {
		t.Fatalf("len(Attachments) = %d, want 2", len(record.Attachments))
	}
	if record.Attachments[0].ID != "a1" {
		t.Error("existing attachment moved or changed")
	}
	if record.Attachments[1].ID != "a2" || record.Attachments[1].Name != "photo.jpg" {
		t.Errorf("appended attachment = %+v", record.Attachments[1])
	}
}

func TestClone(t *testing.T) {
	record := &Task{
		TaskID:      "t1",
		ActionItems: []ActionItem{{Text: "drain tank", Type: ActionItemBullet}},
		Attachments: []Attachment{{ID: "a1"}},
	}

	clone := record.Clone()
	clone.ActionItems[0].Text = "translated"
	clone.Attachments = append(clone.Attachments, Attachment{ID: "a2"})
	clone.TaskName = "changed"

	if record.ActionItems[0].Text != "drain tank" {
		t.Error("clone shares action item backing array with original")
	}
	if len(record.Attachments) != 1 {
		t.Error("clone shares attachment slice with original")
	}
	if record.TaskName != "" {
		t.Error("clone mutation leaked into original")
	}
}

func TestTaskWireShape(t *testing.T) {
	// Field names must match the backend contract exactly.
	raw := `{
		"task_id": "t1",
		"task_name": "Fix boiler",
		"property_address": "12 Harbor Rd",
		"issue_description": "No hot water",
		"action_items": [{"text": "drain tank", "type": "bullet"}, {"text": "check valve", "type": null}],
		"start_date_ms": "1741944600000",
		"start_buffer_hours": 2,
		"task_status": "open",
		"translate_flag": true,
		"attachments": [{"id": "a1", "name": "before.jpg", "url": "https://files/a1", "thumbnail": null}],
		"arrival_date_iso": "",
		"completion_status": "pending",
		"tech_notes": "",
		"last_ui_update_at": null,
		"snapshot_written_at": "2025-03-14T09:00:00Z",
		"cache_stale": false
	}`

	var record Task
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if record.TaskID != "t1" || record.StartDateMS != "1741944600000" {
		t.Errorf("decoded record = %+v", record)
	}
	if !record.TranslateFlag {
		t.Error("translate_flag not decoded")
	}
	if len(record.ActionItems) != 2 || record.ActionItems[1].Type != ActionItemPlain {
		t.Errorf("action items = %+v", record.ActionItems)
	}
	if record.SnapshotWrittenAt != "2025-03-14T09:00:00Z" {
		t.Errorf("snapshot_written_at = %q", record.SnapshotWrittenAt)
	}
}
