package encoder

import (
	"testing"

	"filmcompressor/internal/codec"
)

func TestFieldsOrder(t *testing.T) {
	fs := Fields()
	if len(fs) != 9 {
		t.Fatalf("len(Fields()) = %d, want 9", len(fs))
	}
	for i, f := range fs {
		_, isChoice := f.(ChoiceField)
		_, isText := f.(TextField)
		if isChoice == isText {
			t.Errorf("field %d (%s): choice=%v text=%v, want exactly one", i, f.Label(), isChoice, isText)
		}
		if wantChoice := i < 4; isChoice != wantChoice {
			t.Errorf("field %d (%s): choice=%v, want %v", i, f.Label(), isChoice, wantChoice)
		}
	}
}

func TestChoiceField_Choose(t *testing.T) {
	s := DefaultSettings()
	f := Fields()[0].(ChoiceField)

	if got, want := f.Selected(s), codec.IndexOf(codec.AllVideo(), codec.VideoAV1VAAPI); got != want {
		t.Errorf("Selected() = %d, want %d", got, want)
	}
	f.Choose(&s, 1)
	if s.VideoCodec != codec.VideoLibx264 {
		t.Errorf("VideoCodec = %v, want libx264", s.VideoCodec)
	}
	f.Choose(&s, 99)
	if s.VideoCodec != codec.VideoLibx264 {
		t.Errorf("out-of-range Choose changed VideoCodec to %v", s.VideoCodec)
	}

	pf := Fields()[3].(ChoiceField)
	if opts := pf.Options(); opts[len(opts)-1] != "yuv420p10le" {
		t.Errorf("Options() = %v, want last yuv420p10le", opts)
	}
}

func TestTextField_Commit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		unset   bool
		wantErr bool
	}{
		{name: "empty", input: "", unset: true},
		{name: "whitespace", input: "  \t", unset: true},
		{name: "value", input: " 4M ", unset: false},
		{name: "not a bitrate", input: "fast", wantErr: true},
		{name: "milli prefix", input: "4m", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			s.VideoBitrate = strPtr("old")
			f := Fields()[4].(TextField)
			err := f.Commit(&s, tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Commit(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if s.VideoBitrate == nil || *s.VideoBitrate != "old" {
					t.Errorf("VideoBitrate = %v, want unchanged old", s.VideoBitrate)
				}
				return
			}
			if tt.unset {
				if s.VideoBitrate != nil {
					t.Errorf("VideoBitrate = %q, want nil", *s.VideoBitrate)
				}
				if got := s.Summary()[4]; got != "Video bitrate: auto" {
					t.Errorf("Summary()[4] = %q, want %q", got, "Video bitrate: auto")
				}
				return
			}
			if s.VideoBitrate == nil || *s.VideoBitrate != "4M" {
				t.Errorf("VideoBitrate = %v, want 4M", s.VideoBitrate)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	s := DefaultSettings()
	s.Scale = strPtr("1280:720")
	want := []string{
		"Video codec: av1_vaapi",
		"Audio codec: libopus",
		"Subtitle codec: ass",
		"Pixel format: yuv420p10le",
		"Video bitrate: auto",
		"Audio bitrate: auto",
		"Crop: auto",
		"Scale: 1280:720",
		"Other: none",
	}
	got := s.Summary()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Summary()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if f := Fields()[7].(TextField); f.Text(s) != "1280:720" {
		t.Errorf("Text() = %q, want seed 1280:720", f.Text(s))
	}
	if f := Fields()[6].(TextField); f.Text(s) != "" {
		t.Errorf("Text() of unset field = %q, want empty", f.Text(s))
	}
}
