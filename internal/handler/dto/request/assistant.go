package request

type ChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type BookWithTextRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type RecommendationRequest struct {
	Preferences string `json:"preferences" binding:"required,max=2000"`
}
