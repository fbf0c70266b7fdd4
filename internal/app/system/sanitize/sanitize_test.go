package sanitize_test

import (
	"testing"

	"github.com/aivista/aivista/internal/app/system/sanitize"
)

func TestText_Plain(t *testing.T) {
	got := sanitize.Text("best running shoes 2025")
	if got != "best running shoes 2025" {
		t.Errorf("plain text changed: %q", got)
	}
}

func TestText_StripsMarkup(t *testing.T) {
	got := sanitize.Text(`<script>alert(1)</script>best <b>crm</b> software`)
	if got != "best crm software" {
		t.Errorf("expected markup stripped, got %q", got)
	}
}

func TestText_TrimsWhitespace(t *testing.T) {
	got := sanitize.Text("  cloud backup  ")
	if got != "cloud backup" {
		t.Errorf("expected trimmed text, got %q", got)
	}
}
