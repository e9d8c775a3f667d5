package youtube

import "fmt"

// VideoIDParseError reports input that is neither a supported YouTube URL
// nor a bare video ID. Wrong shape, wrong scheme and too-short input are not
// distinguished.
type VideoIDParseError struct {
	Input string
}

func (e *VideoIDParseError) Error() string {
	return fmt.Sprintf("`%s` is not a valid youtube url or video ID", e.Input)
}
