package m3u8

/*
 This file defines functions related to playlist generation.
*/

import (
	"bytes"
	"io"
	"slices"
	"strconv"
)

// writePrecision is the number of decimals of EXTINF durations.
const writePrecision = 3

// Encode writes the playlist in canonical form to w.
//
// The header scalars are always written right after #EXTM3U, followed by the
// ext-entries in order and then the segments, each preceded by its
// EXT-X-PROGRAM-DATE-TIME if it has one.
func (p *MediaPlaylist) Encode(w io.Writer) error {
	var buf bytes.Buffer
	p.encode(&buf)
	n, err := w.Write(buf.Bytes())
	if err == nil && n < buf.Len() {
		err = io.ErrShortWrite
	}
	if err != nil {
		return ioError(err)
	}
	return nil
}

// String returns the canonical text of the playlist.
func (p *MediaPlaylist) String() string {
	var buf bytes.Buffer
	p.encode(&buf)
	return buf.String()
}

func (p *MediaPlaylist) encode(buf *bytes.Buffer) {
	buf.WriteString(extM3U)
	buf.WriteByte('\n')
	writeUintTag(buf, MediaTagVersion, uint64(p.Version))
	writeUintTag(buf, MediaTagTargetDuration, uint64(p.TargetDuration))
	writeUintTag(buf, MediaTagMediaSequence, uint64(p.MediaSequence))

	for i := range p.ExtEntries {
		writeExtEntry(buf, &p.ExtEntries[i])
	}

	for i := range p.Segments {
		writeSegment(buf, &p.Segments[i])
	}
}

// FilterSegments keeps the segments for which keep returns true.
func (p *MediaPlaylist) FilterSegments(keep func(MediaSegment) bool) {
	p.Segments = slices.DeleteFunc(p.Segments, func(s MediaSegment) bool {
		return !keep(s)
	})
}

// FilterExtEntries keeps the ext-entries for which keep returns true.
func (p *MediaPlaylist) FilterExtEntries(keep func(MediaExtEntry) bool) {
	p.ExtEntries = slices.DeleteFunc(p.ExtEntries, func(e MediaExtEntry) bool {
		return !keep(e)
	})
}

// TotalDuration returns the sum of all segment durations.
func (p *MediaPlaylist) TotalDuration() float64 {
	var total float64
	for _, s := range p.Segments {
		total += s.Duration
	}
	return total
}

func writeExtXTag(buf *bytes.Buffer, name string) {
	buf.WriteString(tagPrefix)
	buf.WriteString(extXMarker)
	buf.WriteString(name)
}

func writeUintTag(buf *bytes.Buffer, kind MediaTagKind, value uint64) {
	writeExtXTag(buf, kind.String())
	buf.WriteByte(':')
	buf.WriteString(strconv.FormatUint(value, 10))
	buf.WriteByte('\n')
}

func writeExtEntry(buf *bytes.Buffer, e *MediaExtEntry) {
	switch e.Kind {
	case MediaTagInf, MediaTagProgramDateTime:
		// written with their segment
		return
	case MediaTagDiscontinuity:
		writeExtXTag(buf, e.Kind.String())
		buf.WriteByte('\n')
		return
	}
	name := e.Name
	if e.Kind != MediaTagUnknown {
		name = e.Kind.String()
	}
	writeExtXTag(buf, name)
	if attrs := e.Attributes.String(); attrs != "" {
		buf.WriteByte(':')
		buf.WriteString(attrs)
	}
	buf.WriteByte('\n')
}

func writeSegment(buf *bytes.Buffer, s *MediaSegment) {
	if s.ProgramDateTime != "" {
		writeExtXTag(buf, MediaTagProgramDateTime.String())
		buf.WriteByte(':')
		buf.WriteString(s.ProgramDateTime)
		buf.WriteByte('\n')
	}
	buf.WriteString(tagPrefix)
	buf.WriteString(MediaTagInf.String())
	buf.WriteByte(':')
	buf.WriteString(strconv.FormatFloat(s.Duration, 'f', writePrecision, 64))
	buf.WriteByte(',')
	buf.WriteString(s.Title)
	buf.WriteByte('\n')
	buf.WriteString(s.URI)
	buf.WriteByte('\n')
}
