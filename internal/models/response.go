// ABOUTME: Response envelopes returned by the travel service facade
// ABOUTME: Callers always receive a well-formed envelope with a success flag
package models

// UserInputs echoes back the request parameters on recommendation responses.
type UserInputs struct {
	Interests            []string `json:"interests"`
	Budget               float64  `json:"budget"`
	PreviousDestinations []string `json:"previous_destinations,omitempty"`
}

// RecommendationsResult is the envelope for recommendation requests.
// On failure Success is false and Error carries the reason; the envelope
// itself is always well formed.
type RecommendationsResult struct {
	Success         bool                `json:"success"`
	Count           int                 `json:"count"`
	Recommendations []ScoredDestination `json:"recommendations"`
	UserInputs      UserInputs          `json:"user_inputs"`
	Error           string              `json:"error,omitempty"`
}

// SimilarResult is the envelope for similar-destination requests.
// An unknown destination name is a soft miss: Success stays true and
// SimilarDestinations is empty.
type SimilarResult struct {
	Success             bool                 `json:"success"`
	TargetDestination   string               `json:"target_destination"`
	SimilarDestinations []SimilarDestination `json:"similar_destinations"`
	Count               int                  `json:"count"`
	Error               string               `json:"error,omitempty"`
}
