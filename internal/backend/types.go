package backend

import (
	"fmt"
	"strings"
)

// Conversation roles used by the backend's query contract.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Movie mirrors an entry of the /movies payload.
type Movie struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// ConversationTurn is one message in a question/answer transcript.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StatusResponse mirrors the payload returned by /status.
type StatusResponse struct {
	Status          string   `json:"status"`
	AvailableMovies []string `json:"available_movies"`
}

// Ready reports whether the backend considers itself up and serving.
func (s StatusResponse) Ready() bool {
	return s.Status == "running"
}

// QueryRequest is the /query payload. SelectedMovie carries a single-movie
// hint; History carries accumulated chat turns. The backend accepts either,
// and reel sends only the hint (see DESIGN.md).
type QueryRequest struct {
	Query         string             `json:"query"`
	SelectedMovie string             `json:"selected_movie,omitempty"`
	History       []ConversationTurn `json:"conversation_history,omitempty"`
}

// Validate rejects requests the backend would refuse anyway.
func (r QueryRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return fmt.Errorf("query is empty")
	}
	return nil
}

// QueryResponse mirrors the /query reply.
type QueryResponse struct {
	Answer string `json:"answer"`
}
