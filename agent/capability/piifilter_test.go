package capability

import (
	"strings"
	"testing"
)

func TestRedactEmail(t *testing.T) {
	t.Parallel()

	f := NewPIIFilter()
	got := f.Redact("Contact anda.w@example.co.th for details.")
	if strings.Contains(got, "example.co.th") {
		t.Fatalf("email survived redaction: %q", got)
	}
	if !strings.Contains(got, "[redacted]") {
		t.Fatalf("expected redaction mark: %q", got)
	}
}

func TestRedactPhoneNumber(t *testing.T) {
	t.Parallel()

	f := NewPIIFilter()
	for _, phone := range []string{"+66 2 123 4567", "02-123-4567 ext", "(555) 123-4567"} {
		got := f.Redact("Call " + phone + " now")
		if strings.Contains(got, "4567") {
			t.Fatalf("phone %q survived redaction: %q", phone, got)
		}
	}
}

func TestRedactNationalID(t *testing.T) {
	t.Parallel()

	f := NewPIIFilter()
	got := f.Redact("ID 1234567890123 on file")
	if strings.Contains(got, "1234567890123") {
		t.Fatalf("id survived redaction: %q", got)
	}
}

func TestRedactLeavesCleanTextAlone(t *testing.T) {
	t.Parallel()

	f := NewPIIFilter()
	in := "The benefits portal opens during enrollment."
	if got := f.Redact(in); got != in {
		t.Fatalf("clean text changed: %q", got)
	}
}
