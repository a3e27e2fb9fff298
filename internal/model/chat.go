package model

// ChatRequest is the shared body for /api/chat and /api/quiz. The api_key
// is optional for chat (the server fallback applies) and required for quiz.
type ChatRequest struct {
	Topic            string `json:"topic"`
	Language         string `json:"language"`
	Model            string `json:"model"`
	Query            string `json:"query"`
	FamiliarityLevel string `json:"familiarity_level"`
	ConversationMode string `json:"conversation_mode"`
	APIKey           string `json:"api_key,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

type QuotaRequest struct {
	APIKey string `json:"api_key"`
}
