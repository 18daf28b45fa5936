package extract

import (
	"regexp"
	"strings"

	"github.com/actuallystonmai/stylesense-service/internal/domain"
)

const (
	FallbackStyleDistribution = "Mix of casual and formal pieces"
	FallbackColorAnalysis     = "Good variety of colors"
	FallbackGap               = "Consider adding statement pieces"
	FallbackRecommendation    = "Add versatile basics"
)

// Labels count only at line start, after optional numbering or markdown.
var (
	styleDistributionPattern = regexp.MustCompile(`(?im)^[ \t*#>\d.)-]*Style Distribution:?([^\n]+)`)
	colorAnalysisPattern     = regexp.MustCompile(`(?im)^[ \t*#>\d.)-]*Color Analysis:?([^\n]+)`)
	gapPattern               = regexp.MustCompile(`(?im)^[ \t*#>\d.)-]*Gap Detected:?([^\n]+)`)
	recommendationPattern    = regexp.MustCompile(`(?im)^[ \t*#>\d.)-]*Recommendation:?([^\n]+)`)
)

// WardrobeAnalysis parses the four single-line fields of a wardrobe analysis reply.
func WardrobeAnalysis(text string) domain.WardrobeAnalysis {
	return domain.WardrobeAnalysis{
		StyleDistribution: line(text, styleDistributionPattern, FallbackStyleDistribution),
		ColorAnalysis:     line(text, colorAnalysisPattern, FallbackColorAnalysis),
		Gap:               line(text, gapPattern, FallbackGap),
		Recommendation:    line(text, recommendationPattern, FallbackRecommendation),
	}
}

func line(text string, re *regexp.Regexp, fallback string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return fallback
	}
	// models like to bold labels: "**Gap Detected:** ..."
	v := strings.Trim(m[1], " \t\r*:")
	if v == "" {
		return fallback
	}
	return v
}
