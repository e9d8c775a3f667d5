package telegram

import (
	"fmt"
	"strings"

	"github.com/denisAlshanov/rustyreel/internal/services/dearrow"
	"github.com/denisAlshanov/rustyreel/internal/services/youtube"
)

// FormatBranding renders a branding response as a plain text chat reply.
// Titles and thumbnails keep the server order.
func FormatBranding(id youtube.VideoID, res *dearrow.BrandingResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "DeArrow branding for %s\n", id)

	b.WriteString("\nTitles:\n")
	if len(res.Titles) == 0 {
		b.WriteString("No community titles yet.\n")
	}
	for i, title := range res.Titles {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, title.Title, describe(title.Votes, title.Original, title.Locked))
	}

	b.WriteString("\nThumbnails:\n")
	if len(res.Thumbnails) == 0 {
		b.WriteString("No community thumbnails yet.\n")
	}
	for i, thumb := range res.Thumbnails {
		where := "original thumbnail"
		if thumb.Timestamp != nil {
			where = "frame at " + formatSeconds(*thumb.Timestamp)
		}
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, where, describe(thumb.Votes, thumb.Original, thumb.Locked))
	}

	if res.VideoDuration != nil {
		fmt.Fprintf(&b, "\nVideo duration: %s\n", formatSeconds(*res.VideoDuration))
	}

	b.WriteString("\nhttps://www.youtube.com/watch?v=" + id.String())
	return b.String()
}

func describe(votes uint64, original, locked bool) string {
	parts := []string{pluralize(votes, "vote")}
	if original {
		parts = append(parts, "original")
	}
	if locked {
		parts = append(parts, "locked")
	}
	return strings.Join(parts, ", ")
}

func pluralize(n uint64, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// formatSeconds renders s as m:ss, or h:mm:ss from one hour on.
func formatSeconds(s uint64) string {
	h, m, sec := s/3600, (s%3600)/60, s%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
