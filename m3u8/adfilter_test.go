package m3u8

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"
)

func TestTwitchAdFilterApply(t *testing.T) {
	is := is.New(t)
	data, err := os.ReadFile("sample-playlists/media-twitch-ads.m3u8")
	is.NoErr(err) // must read file
	p, err := ParseMedia(string(data))
	is.NoErr(err) // must decode playlist
	is.Equal(len(p.Segments), 4)
	is.Equal(len(p.ExtEntries), 12)

	segs, entries := TwitchAdFilter().Apply(p)
	is.Equal(segs, 2)    // two ad segments
	is.Equal(entries, 6) // stitched-ad, quartile, ad source, START, two discontinuities

	want, err := os.ReadFile("sample-playlists/media-ads-stripped.m3u8")
	is.NoErr(err)
	if diff := cmp.Diff(string(want), p.String()); diff != "" {
		t.Errorf("stripped playlist mismatch (-want +got):\n%s", diff)
	}
}

func TestAdFilterPredicates(t *testing.T) {
	is := is.New(t)
	f := TwitchAdFilter()

	is.True(f.IsAdSegment(MediaSegment{Title: "Amazon|123"}))
	is.True(!f.IsAdSegment(MediaSegment{Title: "live"}))
	is.True(!f.IsAdSegment(MediaSegment{}))

	is.True(f.IsAdEntry(MediaExtEntry{Kind: MediaTagDiscontinuity}))
	is.True(f.IsAdEntry(MediaExtEntry{Kind: MediaTagUnknown, Name: "START", Attributes: Attributes{{"UNKNOWN", "TIME-OFFSET=0"}}}))
	is.True(!f.IsAdEntry(MediaExtEntry{Kind: MediaTagUnknown, Name: "ENDLIST", Attributes: Attributes{{"UNKNOWN", ""}}}))
	is.True(f.IsAdEntry(MediaExtEntry{Kind: MediaTagDateRange, Attributes: Attributes{{"CLASS", `"twitch-stitched-ad"`}}}))
	is.True(f.IsAdEntry(MediaExtEntry{Kind: MediaTagDateRange, Attributes: Attributes{{"CLASS", `"twitch-ad-quartile"`}}}))
	is.True(!f.IsAdEntry(MediaExtEntry{Kind: MediaTagDateRange, Attributes: Attributes{{"CLASS", `"twitch-stream-source"`}}}))
	is.True(f.IsAdEntry(MediaExtEntry{Kind: MediaTagDateRange, Attributes: Attributes{{"X-TV-TWITCH-STREAM-SOURCE", `"Amazon|1"`}}}))
	is.True(!f.IsAdEntry(MediaExtEntry{Kind: MediaTagDateRange, Attributes: Attributes{{"X-TV-TWITCH-STREAM-SOURCE", `"live"`}}}))

	var none AdFilter
	is.True(!none.IsAdEntry(MediaExtEntry{Kind: MediaTagDiscontinuity})) // zero filter keeps everything
	is.True(!none.IsAdSegment(MediaSegment{Title: "Amazon"}))
}
