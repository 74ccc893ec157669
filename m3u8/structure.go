package m3u8

/*
 This file defines data structures related to package.
*/

const (
	// extM3U is the document header every playlist must start with.
	extM3U = "#EXTM3U"

	// tagPrefix is the magic prefix of every tag line.
	tagPrefix = "#EXT"

	// extXMarker is stripped from raw tag names before they are matched.
	extXMarker = "-X-"

	// unknownKey holds the verbatim remainder of tags that carry no attribute list.
	unknownKey = "UNKNOWN"

	// uriKey is the synthetic attribute holding the line following EXT-X-STREAM-INF.
	uriKey = "URI"

	// unknownRendition is reported for EXT-X-MEDIA entries without a NAME.
	unknownRendition = "Unknown"
)

// TagKind identifies the tag of a master playlist entry.
type TagKind uint

const (
	TagUnknown   TagKind = iota // any tag not listed below, see MasterEntry.Name
	TagMedia                    // EXT-X-MEDIA
	TagStreamInf                // EXT-X-STREAM-INF
)

func (k TagKind) String() string {
	switch k {
	case TagMedia:
		return "MEDIA"
	case TagStreamInf:
		return "STREAM-INF"
	}
	return "Unknown"
}

// MediaTagKind identifies the tag of a media playlist line.
type MediaTagKind uint

const (
	MediaTagUnknown         MediaTagKind = iota // any tag not listed below, see MediaExtEntry.Name
	MediaTagVersion                             // EXT-X-VERSION
	MediaTagTargetDuration                      // EXT-X-TARGETDURATION
	MediaTagMediaSequence                       // EXT-X-MEDIA-SEQUENCE
	MediaTagDateRange                           // EXT-X-DATERANGE
	MediaTagDiscontinuity                       // EXT-X-DISCONTINUITY
	MediaTagInf                                 // EXTINF
	MediaTagProgramDateTime                     // EXT-X-PROGRAM-DATE-TIME
)

func (k MediaTagKind) String() string {
	switch k {
	case MediaTagVersion:
		return "VERSION"
	case MediaTagTargetDuration:
		return "TARGETDURATION"
	case MediaTagMediaSequence:
		return "MEDIA-SEQUENCE"
	case MediaTagDateRange:
		return "DATERANGE"
	case MediaTagDiscontinuity:
		return "DISCONTINUITY"
	case MediaTagInf:
		return "INF"
	case MediaTagProgramDateTime:
		return "PROGRAM-DATE-TIME"
	}
	return "Unknown"
}

// MasterEntry is one tag line of a master playlist.
// Name is the tag name with any leading "-X-" removed; for TagUnknown it is
// the only way to tell entries apart.
type MasterEntry struct {
	Kind       TagKind
	Name       string
	Attributes Attributes
}

// MasterPlaylist is the ordered list of tag entries of a master playlist.
// Every TagStreamInf entry followed by another line carries that line under
// the URI attribute.
type MasterPlaylist struct {
	Entries []MasterEntry
}

// MediaExtEntry is a structural media playlist tag that is neither a segment
// nor a header scalar. Unknown tags keep their remainder under the UNKNOWN
// key; discontinuities have no attributes.
type MediaExtEntry struct {
	Kind       MediaTagKind
	Name       string
	Attributes Attributes
}

// MediaSegment is an EXTINF tag paired with the URI line that follows it.
type MediaSegment struct {
	Duration        float64 // EXTINF first parameter. Duration in seconds.
	Title           string  // EXTINF second parameter. Empty means no title.
	URI             string  // URI is the line following the EXTINF tag.
	ProgramDateTime string  // EXT-X-PROGRAM-DATE-TIME preceding the segment, verbatim. Empty if absent.
}

// MediaPlaylist represents a parsed media playlist. Version, TargetDuration
// and MediaSequence hold the last occurrence of their tag, or zero.
type MediaPlaylist struct {
	Version        uint8           // EXT-X-VERSION
	TargetDuration uint8           // EXT-X-TARGETDURATION
	MediaSequence  uint32          // EXT-X-MEDIA-SEQUENCE
	Segments       []MediaSegment  // Segments in playlist order
	ExtEntries     []MediaExtEntry // Other tags in playlist order
}

// Internal state carried from one line of a media playlist to the next.
type mediaDecodingState struct {
	programDateTime string
}
