package handler

import "github.com/actuallystonmai/stylesense-service/internal/domain"

type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type UserResponse struct {
	User *domain.User `json:"user"`
}

type WardrobeResponse struct {
	Items []domain.WardrobeItem `json:"items"`
}

type SavedOutfitsResponse struct {
	Collection string               `json:"collection"`
	Outfits    []domain.SavedOutfit `json:"outfits"`
}

type QuizResponse struct {
	Questions []domain.QuizQuestion `json:"questions"`
}

type RegionsResponse struct {
	Regions []domain.Region `json:"regions"`
}
