/*
Package m3u8 parses HLS playlists (m3u8 files) into a light, tag-oriented
structure and writes media playlists back out.

HLS (HTTP Live Streaming) is described in [IETF RFC8216][rfc8216] and its
successor drafts [rfc8216bis]. Unlike a full HLS model, this package keeps
tags close to the text: every tag line is split into a tag name and an
attribute list whose values are kept verbatim, quotes included. That makes
it suitable for tools that must rewrite playlists they do not fully
understand, such as removing stitched advertisements from a live stream.

## Structure and design of the code

There are two types of m3u8 playlists: MasterPlaylist and MediaPlaylist.

A MasterPlaylist is an ordered list of entries, one per tag line. An
EXT-X-STREAM-INF entry takes the line that follows it as its URI attribute.

A MediaPlaylist holds the EXT-X-VERSION, EXT-X-TARGETDURATION and
EXT-X-MEDIA-SEQUENCE values, the segments (EXTINF plus the following URI
line, with the preceding EXT-X-PROGRAM-DATE-TIME, if any) and all other tags
as ext-entries. Tags the package does not know are kept with their raw text.

Parsing is strict: the first error aborts it. Errors match one of
ErrMalformed, ErrParseInt, ErrParseFloat or ErrIO with errors.Is.

Example: strip ads from a live media playlist

	p, err := m3u8.ParseMedia(text)
	if err != nil {
		return err
	}
	m3u8.TwitchAdFilter().Apply(p)
	return p.Encode(os.Stdout)

Example: find the variant playing a rendition

	p, _ := m3u8.ParseMaster(text)
	uri, ok := p.RenditionURI(`"720p60"`)

[rfc8216]: https://tools.ietf.org/html/rfc8216
[rfc8216bis]: https://tools.ietf.org/html/draft-pantos-rfc8216bis
*/
package m3u8
