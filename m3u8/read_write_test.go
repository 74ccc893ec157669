package m3u8

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"
)

func TestReadWriteRoundTrip(t *testing.T) {
	files := []string{
		"sample-playlists/media-twitch.m3u8",
		"sample-playlists/media-twitch-ads.m3u8",
		"sample-playlists/media-ads-stripped.m3u8",
	}
	for _, name := range files {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			data, err := os.ReadFile(name)
			is.NoErr(err) // must read file
			first, err := ParseMedia(string(data))
			is.NoErr(err) // must decode playlist

			var out bytes.Buffer
			is.NoErr(first.Encode(&out)) // must encode playlist
			second, err := ParseMedia(out.String())
			is.NoErr(err) // encoded playlist must decode again

			if diff := cmp.Diff(first.Segments, second.Segments); diff != "" {
				t.Errorf("segments changed by round trip (-first +second):\n%s", diff)
			}
			is.Equal(first.Version, second.Version)
			is.Equal(first.TargetDuration, second.TargetDuration)
			is.Equal(first.MediaSequence, second.MediaSequence)
			is.Equal(out.String(), second.String()) // canonical form is stable
		})
	}
}

func TestReadWriteCanonicalFileUnchanged(t *testing.T) {
	is := is.New(t)
	data, err := os.ReadFile("sample-playlists/media-ads-stripped.m3u8")
	is.NoErr(err)
	p, err := ParseMedia(string(data))
	is.NoErr(err)
	if diff := cmp.Diff(string(data), p.String()); diff != "" {
		t.Errorf("canonical playlist changed (-file +encoded):\n%s", diff)
	}
}
