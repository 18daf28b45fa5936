package domain

var Categories = []string{"Tops", "Bottoms", "Dresses", "Outerwear", "Shoes", "Accessories"}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type WardrobeItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

type SavedOutfit struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Occasion    string `json:"occasion"`
	SavedAt     string `json:"savedAt"`
	Style       string `json:"style"`
}

const AllOutfits = "All Outfits"

var Collections = []string{AllOutfits, "Festive", "Office Wear", "Casual", "Travel", "Wedding Guest"}

type StyleProfile struct {
	Preference      string `json:"preference"`
	ColorPalette    string `json:"colorPalette"`
	ComfortPriority string `json:"comfortPriority"`
	TrendAdoption   string `json:"trendAdoption"`
}

var styleProfiles = map[Gender]StyleProfile{
	GenderMale: {
		Preference:      "60% Fusion, 25% Traditional, 15% Western",
		ColorPalette:    "Earth tones (40%), Blues (30%), Neutrals (20%)",
		ComfortPriority: "High - prefers mobility and breathable fabrics",
		TrendAdoption:   "Adopts trends thoughtfully after they're established",
	},
	GenderFemale: {
		Preference:      "55% Traditional, 30% Fusion, 15% Western",
		ColorPalette:    "Jewel tones (35%), Pastels (30%), Neutrals (25%)",
		ComfortPriority: "Medium-High - balances style with comfort",
		TrendAdoption:   "Quickly adopts trends that match personal style",
	},
	GenderOther: {
		Preference:      "50% Fusion, 30% Minimalist, 20% Traditional",
		ColorPalette:    "Neutrals (45%), Earth tones (30%), Brights (15%)",
		ComfortPriority: "High - comfort is top priority",
		TrendAdoption:   "Focuses on timeless pieces with occasional trends",
	},
}

// StyleProfileFor falls back to the "other" profile for unknown genders.
func StyleProfileFor(g Gender) StyleProfile {
	if p, ok := styleProfiles[g]; ok {
		return p
	}
	return styleProfiles[GenderOther]
}
