package capability

import (
	"regexp"

	contractx "github.com/napatw/Sarabun-HR-Copilot/agent/contract"
)

const redactedMark = "[redacted]"

// RegexPIIFilter masks common identifier patterns in outbound text. It is
// deliberately conservative: better to redact a false positive than leak.
type RegexPIIFilter struct {
	patterns []*regexp.Regexp
}

var _ contractx.PIIFilter = (*RegexPIIFilter)(nil)

func NewPIIFilter() *RegexPIIFilter {
	return &RegexPIIFilter{
		patterns: []*regexp.Regexp{
			// email addresses
			regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`),
			// phone numbers with separators, 9+ digits
			regexp.MustCompile(`\+?\d[\d\s\-\(\)]{8,}\d`),
			// bare national-id style digit runs
			regexp.MustCompile(`\b\d{13}\b`),
		},
	}
}

func (f *RegexPIIFilter) Redact(text string) string {
	for _, pattern := range f.patterns {
		text = pattern.ReplaceAllString(text, redactedMark)
	}
	return text
}
