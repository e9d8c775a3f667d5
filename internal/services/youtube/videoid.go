package youtube

import (
	"strings"
	"unicode/utf8"

	"github.com/denisAlshanov/rustyreel/internal/utils"
)

// VideoIDLength is the length in bytes of every YouTube video ID.
const VideoIDLength = 11

const (
	fullHost    = "www.youtube.com"
	shortHost   = "youtu.be"
	watchPrefix = "watch?v="
)

// VideoID is an 11 character YouTube video identifier. Values are only
// produced by ParseVideoID; the character set is not checked.
type VideoID string

func (id VideoID) String() string {
	return string(id)
}

// ParseVideoID extracts a video ID from one of three accepted shapes:
//
//	http(s)://www.youtube.com/watch?v=<id>[anything]
//	http(s)://youtu.be/<id>[anything]
//	<id>
//
// Anything else yields a *VideoIDParseError carrying the original input.
func ParseVideoID(input string) (VideoID, error) {
	log := utils.ComponentLogger("youtube")

	segments := strings.FieldsFunc(input, func(r rune) bool { return r == '/' })
	log.WithField("segments", segments).Debug("Split url into segments")

	switch {
	case len(segments) == 3 && segments[1] == fullHost && strings.HasPrefix(segments[0], "http"):
		log.Debug("Parsing as full youtube url syntax")

		rest, ok := strings.CutPrefix(segments[2], watchPrefix)
		if !ok {
			break
		}
		if id, ok := leadingID(rest); ok {
			return id, nil
		}

	case len(segments) == 3 && segments[1] == shortHost && strings.HasPrefix(segments[0], "http"):
		log.Debug("Parsing as short youtube url syntax")

		if id, ok := leadingID(segments[2]); ok {
			return id, nil
		}

	case len(segments) == 1 && len(segments[0]) == VideoIDLength:
		log.Debug("Parsing as plain video id")

		return VideoID(segments[0]), nil
	}

	return "", &VideoIDParseError{Input: input}
}

// leadingID returns the first VideoIDLength bytes of s. The cut must fall on
// a UTF-8 character boundary.
func leadingID(s string) (VideoID, bool) {
	if len(s) < VideoIDLength {
		return "", false
	}
	if len(s) > VideoIDLength && !utf8.RuneStart(s[VideoIDLength]) {
		return "", false
	}
	return VideoID(s[:VideoIDLength]), true
}
