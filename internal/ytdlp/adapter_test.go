package ytdlp

import (
	"errors"
	"testing"

	"ydownloader/internal/errs"
)

func TestPercentOf(t *testing.T) {
	tests := []struct {
		downloaded float64
		total      float64
		expected   int
	}{
		{0, 0, 0},     // total unknown
		{500, 0, 0},   // total unknown
		{100, -1, 0},  // bogus total
		{0, 1000, 0},
		{250, 1000, 25},
		{1000, 1000, 100},
		{1500, 1000, 100}, // over-reporting clamps
	}

	for _, test := range tests {
		if got := percentOf(test.downloaded, test.total); got != test.expected {
			t.Errorf("percentOf(%v, %v) = %d, expected %d", test.downloaded, test.total, got, test.expected)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		message  string
		expected errs.Code
	}{
		{"ERROR: Video unavailable", errs.CodeContentUnavailable},
		{"this video is private", errs.CodeContentUnavailable},
		{"the uploader has removed this content", errs.CodeContentUnavailable},
		{"unable to download: network is down", errs.CodeTransportFailure},
		{"connection reset by peer", errs.CodeTransportFailure},
		{"request timed out", errs.CodeTransportFailure},
		{"could not resolve host", errs.CodeTransportFailure},
		{"something else entirely", errs.CodeGenericFailure},
	}

	for _, test := range tests {
		err := classify(errors.New(test.message))
		if got := errs.CodeOf(err); got != test.expected {
			t.Errorf("classify(%q) = %s, expected %s", test.message, got, test.expected)
		}
	}
}

func TestClassify_KeepsDiagnostic(t *testing.T) {
	cause := errors.New("connection reset by peer")
	err := classify(cause)
	if !errors.Is(err, cause) {
		t.Error("Expected the classified error to wrap the diagnostic")
	}
	if errs.UserMessage(err) == cause.Error() {
		t.Error("Expected a user message distinct from the diagnostic")
	}
}

func TestHostLabels(t *testing.T) {
	tests := []struct {
		host     string
		contains string
	}{
		{"www.youtube.com", "youtube"},
		{"YOUTUBE.COM", "youtube"},
		{"music.example.org:8080", "example"},
		{"vimeo.com", "vimeo"},
	}

	for _, test := range tests {
		labels := hostLabels(test.host)
		found := false
		for _, label := range labels {
			if label == test.contains {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("hostLabels(%q) = %v, expected to contain %q", test.host, labels, test.contains)
		}
	}
}

func TestSiteRegistry_Match(t *testing.T) {
	reg := NewSiteRegistry()
	// Consume the lazy load so the fixture list below is authoritative.
	reg.once.Do(func() {})
	reg.names = []string{"youtube", "vimeo", "soundcloud"}

	tests := []struct {
		url      string
		expected bool
	}{
		{"https://www.youtube.com/watch?v=abc", true},
		{"https://vimeo.com/12345", true},
		{"https://example.com/a", false},
	}

	for _, test := range tests {
		supported, err := reg.IsSupported(test.url)
		if err != nil {
			t.Fatalf("IsSupported(%q) returned error: %v", test.url, err)
		}
		if supported != test.expected {
			t.Errorf("IsSupported(%q) = %v, expected %v", test.url, supported, test.expected)
		}
	}
}

func TestSiteRegistry_Unavailable(t *testing.T) {
	reg := NewSiteRegistry()
	reg.once.Do(func() {})
	reg.err = errors.New("yt-dlp not installed")

	if _, err := reg.IsSupported("https://x.com/a"); err == nil {
		t.Error("Expected the unavailable registry to report its error")
	}
}
