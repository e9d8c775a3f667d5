package dearrow

import (
	"context"

	"github.com/denisAlshanov/rustyreel/internal/services/youtube"
)

// BrandingClient is what the command layers need from the DeArrow API.
type BrandingClient interface {
	// Lookup parses raw as a YouTube URL or video ID and fetches its branding.
	Lookup(ctx context.Context, raw string) (youtube.VideoID, *BrandingResponse, error)

	// GetBranding fetches branding for an already parsed video ID.
	GetBranding(ctx context.Context, id youtube.VideoID) (*BrandingResponse, error)
}
