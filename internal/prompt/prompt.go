// Package prompt builds the conversation text sent to the completion provider.
package prompt

import (
	"fmt"
	"strings"

	"github.com/actuallystonmai/stylesense-service/internal/domain"
)

const System = `You are StyleSense, an expert fashion and style advisor. You provide personalized style recommendations, outfit suggestions, and fashion advice. Be friendly, specific, and helpful. Consider factors like:
- Current fashion trends
- Body type considerations
- Occasion appropriateness
- Color coordination
- Personal style preferences
- Season and weather
Keep responses concise but helpful.`

const DefaultInstruction = "Please provide style recommendations and suggestions."

// UserMessage frames an outfit description ahead of the question, or
// returns the question verbatim when there is no description.
func UserMessage(req domain.RecommendationRequest) string {
	if req.ImageDescription == "" {
		return req.Prompt
	}
	instruction := req.Prompt
	if strings.TrimSpace(instruction) == "" {
		instruction = DefaultInstruction
	}
	return fmt.Sprintf("Based on this outfit/clothing description: \"%s\". %s", req.ImageDescription, instruction)
}

func Evaluate(audience, occasion, description string) string {
	return fmt.Sprintf(`Evaluate this outfit for %s attending a %s occasion:

"%s"

Please provide a structured evaluation in this EXACT format:

SCORE: [Give a score out of 10]

STRENGTHS:
- [Strength 1]
- [Strength 2]
- [Strength 3]

IMPROVEMENTS:
- [Improvement 1]
- [Improvement 2]
- [Improvement 3]

SUGGESTIONS:
- [Specific suggestion 1]
- [Specific suggestion 2]
- [Specific suggestion 3]

EDUCATIONAL INSIGHT:
[One paragraph about fashion principles demonstrated or needed]

Be specific, constructive, and encouraging.`, audience, strings.ToLower(occasion), description)
}

func WardrobeAnalysis(audience string, items []domain.WardrobeItem) string {
	list := make([]string, 0, len(items))
	for _, i := range items {
		list = append(list, fmt.Sprintf("%s %s (%s)", i.Color, i.Name, i.Category))
	}

	return fmt.Sprintf(`Analyze this wardrobe for %s. Items: %s

Provide brief analysis (1-2 sentences each):
1. Style Distribution: What styles dominate?
2. Color Analysis: What colors are present?
3. Gap Detected: What's missing?
4. Recommendation: What should they add next?`, audience, strings.Join(list, ", "))
}

type OutfitSpec struct {
	Occasion    string
	Style       string
	Color       string
	Preferences []string
}

func GenerateOutfit(audience string, spec OutfitSpec) string {
	prefs := ""
	if len(spec.Preferences) > 0 {
		prefs = "User Style Preferences: " + strings.Join(spec.Preferences, ", ")
	}

	return fmt.Sprintf(`Generate a complete outfit recommendation for %s for the following:

Occasion: %s
Style: %s
Color Preference: %s
%s

Please provide:
1. **Complete Outfit** - List each clothing item (top, bottom, footwear, accessories)
2. **Color Coordination** - Explain the color palette
3. **Styling Tips** - 2-3 specific styling tips
4. **Where to Shop** - Suggest types of stores or brands
5. **Confidence Boost** - One line to make them feel great

Keep it practical, fashionable, and culturally appropriate.`, audience, spec.Occasion, spec.Style, spec.Color, prefs)
}

func OutfitIdeas(occasion, season, style string) string {
	var b strings.Builder
	b.WriteString("Give me 3 complete outfit ideas for a ")
	b.WriteString(strings.ToLower(occasion))
	if season != "" {
		b.WriteString(" in ")
		b.WriteString(strings.ToLower(season))
	}
	if style != "" {
		b.WriteString(". Style preference: ")
		b.WriteString(style)
	}
	b.WriteString(`.

For each outfit:
1. List specific clothing items (top, bottom, shoes, accessories)
2. Suggest colors that work well together
3. Add a styling tip

Keep it practical and fashionable.`)
	return b.String()
}

func Cultural(audience string, region domain.Region) string {
	return fmt.Sprintf(`Generate a traditional/cultural outfit recommendation from %s for %s.

Region: %s (%s)

Please provide:
1. **Traditional Outfit** - Specific regional attire with names
2. **Fabric & Colors** - Traditional fabrics and color significance
3. **Accessories** - Regional jewelry, footwear, headwear
4. **Occasions** - When to wear this outfit
5. **Modern Twist** - How to make it contemporary
6. **Cultural Significance** - Brief cultural context

Be specific about regional traditions and culturally appropriate.`, region.Name, audience, region.Name, region.Description)
}

func QuizAdvice(style string) string {
	return fmt.Sprintf(`Based on a style quiz, this person's dominant fashion style is "%s".
Give them 3-4 personalized shopping recommendations and specific items they should look for to enhance their wardrobe.
Be specific with item suggestions and brands if appropriate. Keep it concise and actionable.`, style)
}
