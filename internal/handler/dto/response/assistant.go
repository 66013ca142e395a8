package response

type ChatResponse struct {
	Response string `json:"response"`
}

type RecommendationResponse struct {
	Recommendations string `json:"recommendations"`
}
