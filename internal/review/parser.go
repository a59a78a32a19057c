package review

import (
	"regexp"
	"strconv"
	"strings"

	"lintora.co/server/common/id"
	"lintora.co/server/internal/model"
)

// defaultRecommendation fills findings the model never gave a fix for.
// Kept as the original product's wording; clients display it verbatim.
const defaultRecommendation = "Revizuiește și corectează."

var (
	sectionRe   = regexp.MustCompile(`^##\s+`)
	issueRe     = regexp.MustCompile(`^\*\*Issue:?\*\*:?\s*`)
	severityRe  = regexp.MustCompile(`(?i)severit(y|ate):`)
	lineRe      = regexp.MustCompile(`(?i)lin(e|ia)`)
	numberRe    = regexp.MustCompile(`\d+`)
	problemRe   = regexp.MustCompile(`(?i)^(problem|problema|description|descriere):`)
	fixRe       = regexp.MustCompile(`(?i)^(fix|rezolvare|recommendation|recomandare|💡):`)
	emojiPrefix = regexp.MustCompile(`^💡\s*`)
)

// severitySynonyms maps model output (including the Romanian variants the
// original prompts produced) to canonical severities. Unrecognized tokens
// fall back to medium.
var severitySynonyms = map[string]model.Severity{
	"critical": model.SeverityCritical,
	"critic":   model.SeverityCritical,
	"high":     model.SeverityHigh,
	"înalt":    model.SeverityHigh,
	"mare":     model.SeverityHigh,
	"medium":   model.SeverityMedium,
	"mediu":    model.SeverityMedium,
	"low":      model.SeverityLow,
	"scăzut":   model.SeverityLow,
	"info":     model.SeverityInfo,
}

// draft is a finding under construction. Zero value = no fields captured.
type draft struct {
	title          string
	severity       model.Severity
	description    string
	recommendation string
	lineStart      int
	lineEnd        int
}

// Parse scans the model's free-text reply line by line and extracts
// findings. It never fails: text that matches no pattern simply produces
// no finding, and a titled finding is never discarded however sparse.
//
// fallbackType is stamped on every finding; the reply format carries no
// per-finding category.
func Parse(reply string, fallbackType model.AnalysisType) []model.Finding {
	var findings []model.Finding
	var current *draft
	collectingDescription := false
	collectingRecommendation := false

	flush := func() {
		if current != nil && current.title != "" {
			findings = append(findings, current.finalize(fallbackType))
		}
	}

	for _, line := range strings.Split(reply, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		// A heading opens a new finding and flushes the previous one.
		case sectionRe.MatchString(trimmed) || issueRe.MatchString(trimmed):
			flush()
			title := sectionRe.ReplaceAllString(trimmed, "")
			title = issueRe.ReplaceAllString(title, "")
			current = &draft{title: strings.TrimSpace(title)}
			collectingDescription = false
			collectingRecommendation = false

		case severityRe.MatchString(trimmed):
			if current == nil {
				continue
			}
			parts := strings.Split(trimmed, ":")
			if len(parts) < 2 {
				continue
			}
			token := strings.ToLower(strings.TrimSpace(parts[1]))
			if token == "" {
				continue
			}
			sev, ok := severitySynonyms[token]
			if !ok {
				sev = model.SeverityMedium
			}
			current.severity = sev

		case lineRe.MatchString(trimmed):
			if current == nil {
				continue
			}
			nums := numberRe.FindAllString(trimmed, -1)
			if len(nums) == 0 {
				continue
			}
			current.lineStart = atoi(nums[0])
			if len(nums) > 1 {
				current.lineEnd = atoi(nums[1])
			} else {
				current.lineEnd = current.lineStart
			}

		case problemRe.MatchString(trimmed):
			if current == nil {
				continue
			}
			current.description = afterLabel(trimmed)
			collectingDescription = true
			collectingRecommendation = false

		case fixRe.MatchString(trimmed):
			if current == nil {
				continue
			}
			current.recommendation = emojiPrefix.ReplaceAllString(afterLabel(trimmed), "")
			collectingRecommendation = true
			collectingDescription = false

		case trimmed != "" && current != nil:
			// Untagged text continues whichever field is being collected;
			// the first substantial line otherwise becomes the description.
			switch {
			case collectingDescription && current.description != "":
				current.description += " " + trimmed
			case collectingRecommendation && current.recommendation != "":
				current.recommendation += " " + trimmed
			case current.description == "" && len(trimmed) > 10:
				current.description = trimmed
				collectingDescription = true
			}
		}
		// Blank lines are no-ops and do not reset collecting state.
	}

	flush()
	return findings
}

func (d *draft) finalize(t model.AnalysisType) model.Finding {
	severity := d.severity
	if severity == "" {
		severity = model.SeverityMedium
	}

	description := d.description
	if description == "" {
		description = d.title
	}

	recommendation := d.recommendation
	if recommendation == "" {
		recommendation = defaultRecommendation
	}

	return model.Finding{
		ID:               id.New(),
		Type:             t,
		Severity:         severity,
		Title:            d.title,
		Description:      description,
		LineStart:        d.lineStart,
		LineEnd:          d.lineEnd,
		Recommendation:   recommendation,
		AutoFixAvailable: false,
		EffortEstimate:   EstimateEffort(severity, t),
	}
}

// afterLabel returns the text after the first colon, rejoining any later
// colons the value itself contains.
func afterLabel(line string) string {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
