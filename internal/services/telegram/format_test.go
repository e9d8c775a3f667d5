package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/denisAlshanov/rustyreel/internal/services/dearrow"
)

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func TestFormatBranding(t *testing.T) {
	res := &dearrow.BrandingResponse{
		Titles: []dearrow.TitleRecord{
			{Title: "The Real Title", Votes: 12, Locked: true},
			{Title: "Original Clickbait!!", Original: true, Votes: 1},
		},
		Thumbnails: []dearrow.ThumbnailRecord{
			{Timestamp: uint64Ptr(42), Votes: 3},
			{Original: true},
		},
		VideoDuration: uint64Ptr(3723),
	}

	want := `DeArrow branding for oBnCgu7bdQk

Titles:
1. The Real Title (12 votes, locked)
2. Original Clickbait!! (1 vote, original)

Thumbnails:
1. frame at 0:42 (3 votes)
2. original thumbnail (0 votes, original)

Video duration: 1:02:03

https://www.youtube.com/watch?v=oBnCgu7bdQk`

	assert.Equal(t, want, FormatBranding("oBnCgu7bdQk", res))
}

func TestFormatBrandingEmpty(t *testing.T) {
	got := FormatBranding("7sAxhu04SlM", &dearrow.BrandingResponse{})

	assert.Contains(t, got, "No community titles yet.")
	assert.Contains(t, got, "No community thumbnails yet.")
	assert.NotContains(t, got, "Video duration")
}

func TestFormatSeconds(t *testing.T) {
	testCases := map[uint64]string{
		0:    "0:00",
		9:    "0:09",
		61:   "1:01",
		3599: "59:59",
		3600: "1:00:00",
	}
	for in, want := range testCases {
		assert.Equal(t, want, formatSeconds(in))
	}
}
