package domain

import "strings"

type RecommendationRequest struct {
	Prompt           string `json:"prompt,omitempty"`
	ImageDescription string `json:"imageDescription,omitempty"`
}

// Empty reports whether neither field carries any text.
func (r RecommendationRequest) Empty() bool {
	return strings.TrimSpace(r.Prompt) == "" && strings.TrimSpace(r.ImageDescription) == ""
}

type EvaluationResult struct {
	Score        float64  `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Suggestions  []string `json:"suggestions"`
	Educational  string   `json:"educational"`
}

type WardrobeAnalysis struct {
	StyleDistribution string `json:"styleDistribution"`
	ColorAnalysis     string `json:"colorAnalysis"`
	Gap               string `json:"gap"`
	Recommendation    string `json:"recommendation"`
}

type Region struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var Regions = []Region{
	{ID: "north", Name: "North India", Description: "Punjab, Delhi, UP styles"},
	{ID: "south", Name: "South India", Description: "Kerala, Tamil Nadu, Karnataka"},
	{ID: "west", Name: "West India", Description: "Gujarat, Rajasthan, Maharashtra"},
	{ID: "east", Name: "East India", Description: "Bengal, Odisha, Assam"},
	{ID: "northeast", Name: "Northeast", Description: "Seven Sisters states"},
	{ID: "fusion", Name: "Fusion", Description: "Modern Indo-Western"},
}

func FindRegion(id string) (Region, bool) {
	for _, r := range Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

var EvaluationOccasions = []string{"Casual", "Formal", "Wedding", "Festival", "Office", "Date Night", "Party"}
