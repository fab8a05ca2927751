// File: upload.go
// Title: Attachment Encoding
// Description: Wire types for attachment uploads and the file-to-payload
//              encoding step (base64 content, content type from the file
//              extension, generic binary type as fallback).

package api

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"

	fterror "fieldtask/internal/core/error"
	"fieldtask/internal/task"
)

// AttachmentUpload is the upload request body
type AttachmentUpload struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        string `json:"data"` // base64
}

// UploadedAttachment is the backend's stored attachment reference
type UploadedAttachment struct {
	AttachmentID string `json:"attachment_id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	Thumbnail    string `json:"thumbnail,omitempty"`
}

// ToAttachment converts the upload result to the record's attachment type
func (u UploadedAttachment) ToAttachment() task.Attachment {
	return task.Attachment{
		ID:        u.AttachmentID,
		Name:      u.Name,
		URL:       u.URL,
		Thumbnail: u.Thumbnail,
	}
}

// genericContentType is used when the extension gives no content type
const genericContentType = "application/octet-stream"

// EncodeFile reads a local file and builds the upload payload
func EncodeFile(path string) (AttachmentUpload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AttachmentUpload{}, fterror.Wrap(err, "failed to read file").
			WithCode(fterror.CodeEnvironmentError).
			WithOperation("api.EncodeFile").
			WithDetail("path", path)
	}

	return AttachmentUpload{
		Filename:    filepath.Base(path),
		ContentType: ContentTypeFor(path),
		Data:        base64.StdEncoding.EncodeToString(data),
	}, nil
}

// ContentTypeFor derives a content type from the file extension,
// defaulting to the generic binary type.
func ContentTypeFor(path string) string {
	if contentType := mime.TypeByExtension(filepath.Ext(path)); contentType != "" {
		return contentType
	}
	return genericContentType
}
