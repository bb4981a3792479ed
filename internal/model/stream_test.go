package model

import "testing"

func TestStreamEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Stream
		want bool
	}{
		{
			name: "same audio",
			a:    NewAudio("ac3", false, "", 2, "eng"),
			b:    NewAudio("ac3", false, "", 2, "eng"),
			want: true,
		},
		{
			name: "channel count differs",
			a:    NewAudio("ac3", false, "", 2, "eng"),
			b:    NewAudio("ac3", false, "", 6, "eng"),
			want: false,
		},
		{
			name: "default flag differs",
			a:    NewSubtitle("ass", true, "Full", "eng"),
			b:    NewSubtitle("ass", false, "Full", "eng"),
			want: false,
		},
		{
			name: "kind differs",
			a:    NewSubtitle("mjpeg", false, "", ""),
			b:    NewAttachment("mjpeg", false),
			want: false,
		},
		{
			name: "same video",
			a:    NewVideo("h264", true, 1920, 1080),
			b:    NewVideo("h264", true, 1920, 1080),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindLetter(t *testing.T) {
	want := map[Kind]string{KindVideo: "v", KindAudio: "a", KindSubtitle: "s", KindAttachment: "t"}
	for k, l := range want {
		if got := k.Letter(); got != l {
			t.Errorf("%v.Letter() = %q, want %q", k, got, l)
		}
	}
}

func TestStreamString(t *testing.T) {
	tests := []struct {
		s    Stream
		want string
	}{
		{NewVideo("h264", true, 1920, 1080), "Video h264 1920x1080 (source default)"},
		{NewVideo("h264", false, 1920, 1080), "Video h264 1920x1080"},
		{NewAudio("ac3", false, "Commentary", 2, "eng"), `Audio ac3 2ch [eng] "Commentary"`},
		{NewSubtitle("subrip", false, "", "rus"), "Subtitle subrip [rus]"},
		{NewAttachment("ttf", false), "Attachment ttf"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStreamString_DistinctForUnequal(t *testing.T) {
	a := NewSubtitle("ass", true, "Full", "eng")
	b := NewSubtitle("ass", false, "Full", "eng")
	if a.Equal(b) {
		t.Fatalf("streams unexpectedly equal")
	}
	if a.String() == b.String() {
		t.Errorf("unequal streams render alike: %q", a.String())
	}
}

func TestInputFileContains(t *testing.T) {
	f := InputFile{Path: "a.mkv", Streams: []Stream{NewVideo("h264", true, 1280, 720)}}
	if !f.Contains(NewVideo("h264", true, 1280, 720)) {
		t.Errorf("Contains() = false, want true")
	}
	if f.Contains(NewVideo("hevc", true, 1280, 720)) {
		t.Errorf("Contains() = true, want false")
	}
}
