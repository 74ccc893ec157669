package m3u8

/*
 Playlist structures tests.
*/

import (
	"testing"

	"github.com/matryer/is"
)

func TestTagKindString(t *testing.T) {
	data := []struct {
		kind     TagKind
		expected string
	}{{TagUnknown, "Unknown"}, {TagMedia, "MEDIA"}, {TagStreamInf, "STREAM-INF"}}

	for _, d := range data {
		if d.kind.String() != d.expected {
			t.Fatalf("Expected %s, got %s", d.expected, d.kind.String())
		}
	}
}

func TestMediaTagKindString(t *testing.T) {
	data := []struct {
		kind     MediaTagKind
		expected string
	}{
		{MediaTagVersion, "VERSION"},
		{MediaTagTargetDuration, "TARGETDURATION"},
		{MediaTagMediaSequence, "MEDIA-SEQUENCE"},
		{MediaTagDateRange, "DATERANGE"},
		{MediaTagDiscontinuity, "DISCONTINUITY"},
		{MediaTagInf, "INF"},
		{MediaTagProgramDateTime, "PROGRAM-DATE-TIME"},
		{MediaTagUnknown, "Unknown"},
	}

	for _, d := range data {
		if d.kind.String() != d.expected {
			t.Fatalf("Expected %s, got %s", d.expected, d.kind.String())
		}
		if d.kind == MediaTagUnknown {
			continue
		}
		kind, _ := mediaTagKind("-X-" + d.expected)
		if kind != d.kind {
			t.Fatalf("String of %v does not parse back", d.kind)
		}
	}
}

func TestAttributesSetKeepsPosition(t *testing.T) {
	is := is.New(t)
	var a Attributes
	a.Set("A", "1")
	a.Set("B", "2")
	a.Set("A", "3")
	is.Equal(a.Keys(), []string{"A", "B"})
	is.Equal(a.Value("A"), "3")
	is.Equal(a.Value("C"), "")
	_, ok := a.Get("C")
	is.True(!ok)
}

func TestAttributesString(t *testing.T) {
	is := is.New(t)
	a := Attributes{
		{"TYPE", "VIDEO"},
		{"GROUP-ID", `"720p60"`},
		{"NAME", `"720p60"`},
		{"AUTOSELECT", "YES"},
		{"DEFAULT", "YES"},
	}
	is.Equal(a.String(), `TYPE=VIDEO,GROUP-ID="720p60",NAME="720p60",AUTOSELECT=YES,DEFAULT=YES`)
	is.Equal(Attributes{{"UNKNOWN", "33064.367"}}.String(), "33064.367") // raw value without key
	is.Equal(Attributes(nil).String(), "")
}

func TestDeQuote(t *testing.T) {
	is := is.New(t)
	is.Equal(DeQuote(`"live"`), "live")
	is.Equal(DeQuote(`""`), "")
	is.Equal(DeQuote(`"`), `"`)
	is.Equal(DeQuote("YES"), "YES")
}
