package m3u8

import "strings"

// AdFilter removes inserted advertisement segments and their signalling
// tags from a media playlist. Class and source values are compared
// without their quotes.
type AdFilter struct {
	TitlePrefixes     []string // drop segments whose title starts with one of these
	Classes           []string // drop DATERANGE entries with one of these CLASS values
	SourcePrefixes    []string // drop entries whose X-TV-TWITCH-STREAM-SOURCE starts with one of these
	DropTags          []string // drop unknown tags with one of these names
	DropDiscontinuity bool     // drop EXT-X-DISCONTINUITY entries
}

// twitchStreamSource is the DATERANGE attribute Twitch uses to mark the stream source.
const twitchStreamSource = "X-TV-TWITCH-STREAM-SOURCE"

// TwitchAdFilter returns a filter for ads stitched into Twitch live playlists.
func TwitchAdFilter() AdFilter {
	return AdFilter{
		TitlePrefixes:     []string{"Amazon"},
		Classes:           []string{"twitch-ad-quartile", "twitch-stitched-ad"},
		SourcePrefixes:    []string{"Amazon"},
		DropTags:          []string{"START"},
		DropDiscontinuity: true,
	}
}

// IsAdSegment reports whether s is an advertisement segment.
func (f AdFilter) IsAdSegment(s MediaSegment) bool {
	return hasAnyPrefix(s.Title, f.TitlePrefixes)
}

// IsAdEntry reports whether e signals or delimits an advertisement.
func (f AdFilter) IsAdEntry(e MediaExtEntry) bool {
	switch e.Kind {
	case MediaTagDiscontinuity:
		return f.DropDiscontinuity
	case MediaTagUnknown:
		for _, name := range f.DropTags {
			if e.Name == name {
				return true
			}
		}
	}
	if class, ok := e.Attributes.Get("CLASS"); ok {
		for _, c := range f.Classes {
			if DeQuote(class) == c {
				return true
			}
		}
	}
	if src, ok := e.Attributes.Get(twitchStreamSource); ok && hasAnyPrefix(DeQuote(src), f.SourcePrefixes) {
		return true
	}
	return false
}

// Apply removes ad segments and entries from p and reports how many of each were removed.
func (f AdFilter) Apply(p *MediaPlaylist) (segments, entries int) {
	nSeg, nExt := len(p.Segments), len(p.ExtEntries)
	p.FilterSegments(func(s MediaSegment) bool { return !f.IsAdSegment(s) })
	p.FilterExtEntries(func(e MediaExtEntry) bool { return !f.IsAdEntry(e) })
	return nSeg - len(p.Segments), nExt - len(p.ExtEntries)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
