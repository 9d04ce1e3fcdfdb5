package model

import "time"

// ContentType classifies downloadable learning content.
type ContentType string

var (
	ContentCourse  ContentType = "course"
	ContentArticle ContentType = "article"
	ContentGuide   ContentType = "guide"
	ContentVideo   ContentType = "video"
	ContentCode    ContentType = "code"
)

// Valid reports whether t is a known content type.
func (t ContentType) Valid() bool {
	switch t {
	case ContentCourse, ContentArticle, ContentGuide, ContentVideo, ContentCode:
		return true
	default:
		return false
	}
}

// DownloadedItem is one entry of the offline downloads registry. The JSON
// layout is shared with UIs that read the same storage key.
type DownloadedItem struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Type         ContentType `json:"type"`
	DownloadedAt time.Time   `json:"downloadedAt"`
	Size         string      `json:"size"`
}
