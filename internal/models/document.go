package models

import "time"

type FileType string

const (
	FileTypePDF     FileType = "PDF"
	FileTypeExcel   FileType = "Excel"
	FileTypePPT     FileType = "PPT"
	FileTypeWord    FileType = "Word"
	FileTypeUnknown FileType = "Unknown"
)

type Document struct {
	ID        int       `json:"id"`
	Filename  string    `json:"filename"`
	FileType  FileType  `json:"fileType"`
	OwnerID   int       `json:"ownerId"`
	TimeAgo   string    `json:"timeAgo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DocumentSharing records a grant of a document to a user. Duplicate grants
// for the same pair are suppressed at insert time.
type DocumentSharing struct {
	ID         int       `json:"id"`
	DocumentID int       `json:"documentId"`
	UserID     int       `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}
