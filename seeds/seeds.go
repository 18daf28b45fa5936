package seeds

import "github.com/actuallystonmai/stylesense-service/internal/domain"

// DemoOutfits is what a client sees in saved outfits before saving any.
func DemoOutfits() []domain.SavedOutfit {
	return []domain.SavedOutfit{
		{
			ID:          "1",
			Title:       "Diwali Celebration Look",
			Description: "Silk kurta with golden embroidery, matching churidar, and mojris",
			Occasion:    "Festive",
			SavedAt:     "2 days ago",
			Style:       "Traditional",
		},
		{
			ID:          "2",
			Title:       "Business Meeting Outfit",
			Description: "Navy blazer, white shirt, grey trousers, oxford shoes",
			Occasion:    "Office Wear",
			SavedAt:     "1 week ago",
			Style:       "Formal",
		},
		{
			ID:          "3",
			Title:       "Weekend Brunch",
			Description: "Linen shirt, chinos, white sneakers",
			Occasion:    "Casual",
			SavedAt:     "3 days ago",
			Style:       "Casual",
		},
	}
}
