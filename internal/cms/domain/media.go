package domain

import "time"

// MediaFile is an uploaded binary stored inline in the database, base64
// encoded. Immutable once created; deletable.
type MediaFile struct {
	ID               string    `json:"id"`
	Filename         string    `json:"filename"` // server-generated, collision-resistant
	OriginalFilename string    `json:"original_filename"`
	FileType         string    `json:"file_type"` // MIME type as uploaded
	FileSize         int64     `json:"file_size"` // decoded size in bytes
	FileData         string    `json:"file_data"` // base64 payload
	UploadedAt       time.Time `json:"uploaded_at"`
}
