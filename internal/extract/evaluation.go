// Package extract pulls structured fields out of free-form model replies.
// Every function is total: missing or malformed sections degrade to fallback
// values instead of failing.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/actuallystonmai/stylesense-service/internal/domain"
)

const (
	DefaultScore        = 7.5
	MaxListItems        = 4
	FallbackEducational = "Great effort! Keep experimenting with different styles."

	labelStrengths    = "STRENGTHS"
	labelImprovements = "IMPROVEMENTS"
	labelSuggestions  = "SUGGESTIONS"
	labelEducational  = "EDUCATIONAL INSIGHT"
)

var (
	scorePattern = regexp.MustCompile(`(?i)SCORE:[\s*]*(-?\d+(?:\.\d+)?)`)
	// labels count only at line start, after optional markdown or numbering
	labelPattern = regexp.MustCompile(`(?im)^[ \t*#\d.]*(SCORE|STRENGTHS|IMPROVEMENTS|SUGGESTIONS|EDUCATIONAL[ \t]+INSIGHT)[ \t]*\**:`)
	spaceRun     = regexp.MustCompile(`\s+`)
)

type label struct {
	name       string
	start, end int
}

func findLabels(text string) []label {
	matches := labelPattern.FindAllStringSubmatchIndex(text, -1)
	labels := make([]label, 0, len(matches))
	for _, m := range matches {
		name := strings.ToUpper(spaceRun.ReplaceAllString(text[m[2]:m[3]], " "))
		labels = append(labels, label{name: name, start: m[0], end: m[1]})
	}
	return labels
}

// Evaluation parses an outfit evaluation reply.
func Evaluation(text string) domain.EvaluationResult {
	labels := findLabels(text)

	return domain.EvaluationResult{
		Score:        score(text),
		Strengths:    bullets(text, labels, labelStrengths),
		Improvements: bullets(text, labels, labelImprovements),
		Suggestions:  bullets(text, labels, labelSuggestions),
		Educational:  educational(text, labels),
	}
}

func score(text string) float64 {
	m := scorePattern.FindStringSubmatch(text)
	if m == nil {
		return DefaultScore
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return DefaultScore
	}
	return clamp(v, 0, 10)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// section returns the body after the first occurrence of name, up to the
// next recognized label or the end of text.
func section(text string, labels []label, name string) (string, bool) {
	for i, l := range labels {
		if l.name != name {
			continue
		}
		end := len(text)
		if i+1 < len(labels) {
			end = labels[i+1].start
		}
		return text[l.end:end], true
	}
	return "", false
}

func bullets(text string, labels []label, name string) []string {
	body, ok := section(text, labels, name)
	if !ok {
		return []string{}
	}

	items := make([]string, 0, MaxListItems)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") {
			continue
		}
		item := strings.TrimSpace(strings.TrimPrefix(line, "-"))
		if item == "" {
			continue
		}
		items = append(items, item)
		if len(items) == MaxListItems {
			break
		}
	}
	return items
}

func educational(text string, labels []label) string {
	for _, l := range labels {
		if l.name != labelEducational {
			continue
		}
		if body := strings.Trim(text[l.end:], " \t\r\n*"); body != "" {
			return body
		}
		break
	}
	return FallbackEducational
}
