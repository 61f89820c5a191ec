package media

import "testing"

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"movie.mp4", true},
		{"movie.MKV", true},
		{"clip.webm", true},
		{"subs.srt", false},
		{"subs.vtt", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsVideoFile(tt.path); got != tt.want {
			t.Errorf("IsVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIsSubtitleFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"subs.srt", true},
		{"subs.VTT", true},
		{"subs.ass", false},
		{"movie.mp4", false},
	}
	for _, tt := range tests {
		if got := IsSubtitleFile(tt.path); got != tt.want {
			t.Errorf("IsSubtitleFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestGetDurationMissingFile(t *testing.T) {
	if _, err := GetDuration("does-not-exist.mp4"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
