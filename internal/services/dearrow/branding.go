package dearrow

import (
	"github.com/google/uuid"

	"github.com/denisAlshanov/rustyreel/internal/services/youtube"
)

// BrandingRequest is the JSON body sent to the branding endpoint.
type BrandingRequest struct {
	VideoID      youtube.VideoID `json:"videoId"`
	Service      *string         `json:"service"`
	ReturnUserID bool            `json:"returnUserId"`
}

// NewBrandingRequest wraps id with the default service (none, meaning YouTube
// on the server side) and without user ids.
func NewBrandingRequest(id youtube.VideoID) BrandingRequest {
	return BrandingRequest{
		VideoID:      id,
		Service:      nil,
		ReturnUserID: false,
	}
}

// BrandingResponse holds the community submitted titles and thumbnails for a
// video. Slices keep the order returned by the server.
type BrandingResponse struct {
	Titles        []TitleRecord     `json:"titles"`
	Thumbnails    []ThumbnailRecord `json:"thumbnails"`
	RandomTime    uint64            `json:"randomTime"`
	VideoDuration *uint64           `json:"videoDuration"`
}

type TitleRecord struct {
	Title    string    `json:"title"`
	Original bool      `json:"original"`
	Votes    uint64    `json:"votes"`
	Locked   bool      `json:"locked"`
	UUID     uuid.UUID `json:"UUID"`
}

// ThumbnailRecord is a thumbnail submission. Timestamp is nil for the
// original thumbnail.
type ThumbnailRecord struct {
	Timestamp *uint64   `json:"timestamp"`
	Original  bool      `json:"original"`
	Votes     uint64    `json:"votes"`
	Locked    bool      `json:"locked"`
	UUID      uuid.UUID `json:"UUID"`
}
