package triage

import (
	"regexp"
	"strings"

	"github.com/spinetrack/platform/pkg/common/models"
)

var (
	tagPattern   = regexp.MustCompile(`\[TRIAGE:(green|yellow|red)\]`)
	stripPattern = regexp.MustCompile(`\s*\[TRIAGE:(green|yellow|red)\]\s*`)
)

// ParseResponse extracts the triage tag the generator was instructed to
// append and strips every occurrence from the visible text. A missing or
// malformed tag defaults to green and is reported via tagged=false so
// callers can log the contract violation; the independent red-flag scan on
// the inbound message is what keeps that fail-open default safe.
func ParseResponse(raw string) (content string, level models.TriageLevel, tagged bool) {
	level = models.TriageGreen
	if m := tagPattern.FindStringSubmatch(raw); m != nil {
		level = models.TriageLevel(m[1])
		tagged = true
	}
	content = stripPattern.ReplaceAllString(raw, " ")
	content = strings.TrimSpace(content)
	return content, level, tagged
}
