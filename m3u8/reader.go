package m3u8

/*
 This file defines functions related to playlist parsing.
*/

import (
	"io"
	"strconv"
	"strings"
)

// ParseMaster parses the text of a master playlist.
// The first error aborts the parse; no partial playlist is returned.
func ParseMaster(text string) (*MasterPlaylist, error) {
	body, err := stripHeader(text)
	if err != nil {
		return nil, err
	}
	p := new(MasterPlaylist)
	lr := newLineReader(body)
	for line, ok := lr.next(); ok; line, ok = lr.next() {
		if err = decodeLineOfMasterPlaylist(p, lr, line); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ParseMasterFrom reads r to the end and parses it as a master playlist.
func ParseMasterFrom(r io.Reader) (*MasterPlaylist, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ioError(err)
	}
	return ParseMaster(string(data))
}

// ParseMedia parses the text of a media playlist.
// The first error aborts the parse; no partial playlist is returned.
func ParseMedia(text string) (*MediaPlaylist, error) {
	body, err := stripHeader(text)
	if err != nil {
		return nil, err
	}
	p := new(MediaPlaylist)
	state := new(mediaDecodingState)
	lr := newLineReader(body)
	for line, ok := lr.next(); ok; line, ok = lr.next() {
		if err = decodeLineOfMediaPlaylist(p, state, lr, line); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ParseMediaFrom reads r to the end and parses it as a media playlist.
func ParseMediaFrom(r io.Reader) (*MediaPlaylist, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ioError(err)
	}
	return ParseMedia(string(data))
}

// stripHeader checks for the #EXTM3U line and returns what follows it.
func stripHeader(text string) (string, error) {
	for _, header := range []string{extM3U + "\n", extM3U + "\r\n"} {
		if body, ok := strings.CutPrefix(text, header); ok {
			return body, nil
		}
	}
	first, _, _ := strings.Cut(text, "\n")
	return "", malformed(first, ErrExtM3UAbsent)
}

// lineReader hands out the lines of a playlist body one at a time.
// Tags that pair with the following line take it with next as well.
type lineReader struct {
	lines []string
	pos   int
}

func newLineReader(body string) *lineReader {
	lines := strings.Split(body, "\n")
	// A trailing newline does not start another line.
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &lineReader{lines: lines}
}

func (r *lineReader) next() (string, bool) {
	if r.pos >= len(r.lines) {
		return "", false
	}
	line := r.lines[r.pos]
	r.pos++
	return line, true
}

// scanTagLine splits a tag line into the raw tag name and the remainder.
// The name ends at the first ':', which is dropped; bare tags have no remainder.
func scanTagLine(line string) (name, rest string, err error) {
	after, ok := strings.CutPrefix(line, tagPrefix)
	if !ok || after == "" {
		return "", "", malformed(line, ErrNotTagLine)
	}
	if colon := strings.IndexByte(after, ':'); colon > 0 {
		return after[:colon], after[colon+1:], nil
	}
	return after, "", nil
}

// trimExtX removes every leading "-X-" marker from a raw tag name.
func trimExtX(name string) string {
	for strings.HasPrefix(name, extXMarker) {
		name = name[len(extXMarker):]
	}
	return name
}

func masterTagKind(raw string) (TagKind, string) {
	name := trimExtX(raw)
	switch name {
	case "MEDIA":
		return TagMedia, name
	case "STREAM-INF":
		return TagStreamInf, name
	}
	return TagUnknown, name
}

func mediaTagKind(raw string) (MediaTagKind, string) {
	name := trimExtX(raw)
	switch name {
	case "VERSION":
		return MediaTagVersion, name
	case "TARGETDURATION":
		return MediaTagTargetDuration, name
	case "MEDIA-SEQUENCE":
		return MediaTagMediaSequence, name
	case "DATERANGE":
		return MediaTagDateRange, name
	case "DISCONTINUITY":
		return MediaTagDiscontinuity, name
	case "INF":
		return MediaTagInf, name
	case "PROGRAM-DATE-TIME":
		return MediaTagProgramDateTime, name
	}
	return MediaTagUnknown, name
}

// Parse one line of master playlist.
func decodeLineOfMasterPlaylist(p *MasterPlaylist, lr *lineReader, line string) error {
	raw, rest, err := scanTagLine(line)
	if err != nil {
		return err
	}
	kind, name := masterTagKind(raw)
	attrs, err := decodeAttributes(rest)
	if err != nil {
		if kind != TagUnknown {
			return err
		}
		// Tags such as EXT-X-VERSION carry a plain value.
		attrs = Attributes{{Key: unknownKey, Val: rest}}
	}
	if kind == TagStreamInf {
		if uri, ok := lr.next(); ok {
			attrs.Set(uriKey, uri)
		}
	}
	p.Entries = append(p.Entries, MasterEntry{Kind: kind, Name: name, Attributes: attrs})
	return nil
}

// Parse one line of media playlist.
func decodeLineOfMediaPlaylist(p *MediaPlaylist, state *mediaDecodingState, lr *lineReader, line string) error {
	raw, rest, err := scanTagLine(line)
	if err != nil {
		return err
	}
	kind, name := mediaTagKind(raw)

	switch kind {
	case MediaTagVersion:
		v, err := parseUint(line, rest, 8)
		if err != nil {
			return err
		}
		p.Version = uint8(v)
	case MediaTagTargetDuration:
		v, err := parseUint(line, rest, 8)
		if err != nil {
			return err
		}
		p.TargetDuration = uint8(v)
	case MediaTagMediaSequence:
		v, err := parseUint(line, rest, 32)
		if err != nil {
			return err
		}
		p.MediaSequence = uint32(v)
	case MediaTagDateRange:
		attrs, err := decodeAttributes(rest)
		if err != nil {
			return err
		}
		p.ExtEntries = append(p.ExtEntries, MediaExtEntry{Kind: kind, Name: name, Attributes: attrs})
	case MediaTagDiscontinuity:
		p.ExtEntries = append(p.ExtEntries, MediaExtEntry{Kind: kind, Name: name})
	case MediaTagProgramDateTime:
		if rest == "" {
			return malformed(line, ErrEmptyValue)
		}
		state.programDateTime = rest
	case MediaTagInf:
		durText, title, ok := strings.Cut(rest, ",")
		if !ok || durText == "" {
			return malformed(line, ErrMissingComma)
		}
		uri, ok := lr.next()
		if !ok {
			// dangling EXTINF at the end of the playlist
			return nil
		}
		duration, err := strconv.ParseFloat(durText, 64)
		if err != nil {
			return floatError(durText, err)
		}
		p.Segments = append(p.Segments, MediaSegment{
			Duration:        duration,
			Title:           title,
			URI:             uri,
			ProgramDateTime: state.programDateTime,
		})
		state.programDateTime = ""
	default:
		p.ExtEntries = append(p.ExtEntries, MediaExtEntry{
			Kind:       kind,
			Name:       name,
			Attributes: Attributes{{Key: unknownKey, Val: rest}},
		})
	}
	return nil
}

// parseUint parses the bare value of a header tag.
func parseUint(line, value string, bitSize int) (uint64, error) {
	if value == "" {
		return 0, malformed(line, ErrEmptyValue)
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(value, "+"), 10, bitSize)
	if err != nil {
		return 0, intError(value, err)
	}
	return v, nil
}
