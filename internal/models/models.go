package models

import (
	"github.com/google/uuid"
)

// BrandingLookupResponse is the API view of a DeArrow branding lookup.
type BrandingLookupResponse struct {
	VideoID       string          `json:"video_id" example:"oBnCgu7bdQk"`
	Titles        []TitleItem     `json:"titles"`
	Thumbnails    []ThumbnailItem `json:"thumbnails"`
	RandomTime    uint64          `json:"random_time"`
	VideoDuration *uint64         `json:"video_duration"`
}

type TitleItem struct {
	Title    string    `json:"title"`
	Original bool      `json:"original"`
	Votes    uint64    `json:"votes"`
	Locked   bool      `json:"locked"`
	UUID     uuid.UUID `json:"uuid"`
}

type ThumbnailItem struct {
	Timestamp *uint64   `json:"timestamp"`
	Original  bool      `json:"original"`
	Votes     uint64    `json:"votes"`
	Locked    bool      `json:"locked"`
	UUID      uuid.UUID `json:"uuid"`
}

type WisdomResponse struct {
	Wisdom string `json:"wisdom"`
}

type ErrorResponse struct {
	Error     interface{} `json:"error"`
	RequestID string      `json:"request_id,omitempty"`
	Timestamp string      `json:"timestamp"`
}
