package dto

// AddChallengeRequest defines the data needed to stage a new challenge.
// Whitespace-only titles pass binding and are rejected by the service,
// which trims before checking.
type AddChallengeRequest struct {
	Title string `json:"title" binding:"required"`
}

// ChallengeListResponse returns the staged (not yet persisted) challenge
// list after an edit, or the committed list after a commit.
type ChallengeListResponse struct {
	Index      int      `json:"index"`
	Challenges []string `json:"challenges"`
}
