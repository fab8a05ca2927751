// File: client_test.go
// Title: Backend API Client Tests

package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	fterror "fieldtask/internal/core/error"
	"fieldtask/internal/task"
)

func testClient(serverURL string) *Client {
	return NewClient(Config{BaseURL: serverURL, Timeout: 5 * time.Second, UploadTimeout: 5 * time.Second})
}

func TestClient_GetTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/task/t1" {
			t.Errorf("Path = %v, want /task/t1", r.URL.Path)
		}
		if r.Method != "GET" {
			t.Errorf("Method = %v, want GET", r.Method)
		}

		json.NewEncoder(w).Encode(task.Task{
			TaskID:           "t1",
			TaskName:         "Fix boiler",
			CompletionStatus: task.StatusPending,
		})
	}))
	defer server.Close()

	record, err := testClient(server.URL).GetTask(context.Background(), "t1")
	if err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	if record.TaskID != "t1" || record.TaskName != "Fix boiler" {
		t.Errorf("record = %+v", record)
	}
}

func TestClient_GetTask_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Task t9 not found in ClickUp"})
	}))
	defer server.Close()

	_, err := testClient(server.URL).GetTask(context.Background(), "t9")
	if err == nil {
		t.Fatal("GetTask() should fail for 404")
	}

	structured, ok := err.(*fterror.Error)
	if !ok {
		t.Fatalf("error type = %T, want *fterror.Error", err)
	}
	if structured.Code() != fterror.CodeNotFound {
		t.Errorf("Code() = %v, want NOT_FOUND", structured.Code())
	}
	// The server-supplied message wins the display cascade.
	if got := fterror.UserMessage(err, "Unable to load task"); got != "Task t9 not found in ClickUp" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestClient_GetTask_EmptyID(t *testing.T) {
	if _, err := testClient("http://localhost:0").GetTask(context.Background(), "  "); err == nil {
		t.Error("GetTask() should reject an empty task id")
	}
}

func TestClient_UpdateTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" {
			t.Errorf("Method = %v, want PUT", r.Method)
		}

		var fields map[string]interface{}
		json.NewDecoder(r.Body).Decode(&fields)

		// The patch must carry exactly the changed field, nothing else.
		if len(fields) != 1 || fields["arrival_date_iso"] != "2025-03-14T09:30:00Z" {
			t.Errorf("request body = %v", fields)
		}

		json.NewEncoder(w).Encode(map[string]string{
			"arrival_date_iso":    "2025-03-14T09:30:00Z",
			"last_ui_update_at":   "2025-03-14T09:31:00Z",
			"snapshot_written_at": "2025-03-14T09:31:00Z",
		})
	}))
	defer server.Close()

	result, err := testClient(server.URL).UpdateTask(context.Background(), "t1",
		task.ArrivalPatch("2025-03-14T09:30:00Z"))
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	if result.ArrivalDateISO == nil || *result.ArrivalDateISO != "2025-03-14T09:30:00Z" {
		t.Errorf("result = %+v", result)
	}
	if result.SnapshotWrittenAt == nil {
		t.Error("snapshot_written_at missing from result")
	}
}

func TestClient_UpdateTask_EmptyPayload(t *testing.T) {
	if _, err := testClient("http://localhost:0").UpdateTask(context.Background(), "t1", task.UpdatePayload{}); err == nil {
		t.Error("UpdateTask() should reject an empty payload")
	}
}

func TestClient_UpdateTask_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "ClickUp rejected the status"})
	}))
	defer server.Close()

	_, err := testClient(server.URL).UpdateTask(context.Background(), "t1",
		task.NotesPatch("notes"))
	if err == nil {
		t.Fatal("UpdateTask() should fail for 500")
	}
	if got := fterror.UserMessage(err, "Failed to save"); got != "ClickUp rejected the status" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestClient_UploadAttachment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/task/t1/attachment" {
			t.Errorf("Path = %v", r.URL.Path)
		}

		var payload AttachmentUpload
		json.NewDecoder(r.Body).Decode(&payload)
		if payload.Filename != "photo.jpg" || payload.ContentType != "image/jpeg" {
			t.Errorf("payload = %+v", payload)
		}
		if _, err := base64.StdEncoding.DecodeString(payload.Data); err != nil {
			t.Errorf("data is not valid base64: %v", err)
		}

		json.NewEncoder(w).Encode(UploadedAttachment{
			AttachmentID: "a7",
			Name:         "photo.jpg",
			URL:          "https://files/a7",
		})
	}))
	defer server.Close()

	result, err := testClient(server.URL).UploadAttachment(context.Background(), "t1", AttachmentUpload{
		Filename:    "photo.jpg",
		ContentType: "image/jpeg",
		Data:        base64.StdEncoding.EncodeToString([]byte("jpeg bytes")),
	})
	if err != nil {
		t.Fatalf("UploadAttachment() error = %v", err)
	}
	if result.AttachmentID != "a7" || result.URL != "https://files/a7" {
		t.Errorf("result = %+v", result)
	}
}

func TestClient_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate" {
			t.Errorf("Path = %v, want /translate", r.URL.Path)
		}

		var req struct {
			Texts []string `json:"texts"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Texts) != 2 {
			t.Errorf("texts = %v", req.Texts)
		}

		json.NewEncoder(w).Encode(map[string][]string{
			"translations": {"维护任务", "没有热水"},
		})
	}))
	defer server.Close()

	results, err := testClient(server.URL).Translate(context.Background(), []string{"Maintenance Task", "No hot water"})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if len(results) != 2 || results[0] != "维护任务" {
		t.Errorf("results = %v", results)
	}
}

func TestClient_TransportError(t *testing.T) {
	// Point at a closed server to force a connection failure.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := testClient(server.URL).GetTask(context.Background(), "t1")
	if err == nil {
		t.Fatal("GetTask() should fail when the backend is unreachable")
	}
	structured, ok := err.(*fterror.Error)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if structured.Code() != fterror.CodeTransport {
		t.Errorf("Code() = %v, want TRANSPORT", structured.Code())
	}
}

func TestClient_PDFURL(t *testing.T) {
	client := NewClient(Config{BaseURL: "https://fieldtask.example.com/api/"})
	if got := client.PDFURL("t1"); got != "https://fieldtask.example.com/api/task/t1/pdf" {
		t.Errorf("PDFURL() = %q", got)
	}
}

func TestEncodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("jpeg bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	payload, err := EncodeFile(path)
	if err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}
	if payload.Filename != "photo.jpg" {
		t.Errorf("Filename = %q", payload.Filename)
	}
	if payload.ContentType != "image/jpeg" {
		t.Errorf("ContentType = %q, want image/jpeg", payload.ContentType)
	}
	decoded, err := base64.StdEncoding.DecodeString(payload.Data)
	if err != nil || string(decoded) != "jpeg bytes" {
		t.Errorf("Data did not round-trip: %v %q", err, decoded)
	}
}

func TestContentTypeForUnknownExtension(t *testing.T) {
	if got := ContentTypeFor("dump.fieldtaskbin"); got != "application/octet-stream" {
		t.Errorf("ContentTypeFor() = %q, want application/octet-stream", got)
	}
}
