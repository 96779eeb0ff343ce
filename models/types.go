package models

import "time"

// Score dimension bounds (inclusive)
const (
	MinScore = 1
	MaxScore = 5
)

// Request types

type CreatePositionRequest struct {
	Title string `json:"title"`
}

type CreateCandidateRequest struct {
	Name string `json:"name"`
}

// Pointers so a missing field can be told apart from zero
type SubmitScoreRequest struct {
	HandGestures *int `json:"hand_gestures"`
	StayedAwake  *int `json:"stayed_awake"`
}

type SetFeedbackRequest struct {
	StudentFeedback string `json:"student_feedback"`
}

// Response types

type SubmitScoreResponse struct {
	ScoreID string `json:"score_id"`
	Message string `json:"message"`
}

type PositionDetailResponse struct {
	Position   Position          `json:"position"`
	Candidates []RankedCandidate `json:"candidates"`
}

type CandidateDetailResponse struct {
	Candidate CandidateWithPosition `json:"candidate"`
	MyScore   *Score                `json:"my_score"`
	Stats     Statistics            `json:"stats"`
}

// Domain types

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

type Position struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// PositionSummary is a list row: position plus creator name and candidate count
type PositionSummary struct {
	Position
	CreatorName    string `json:"creator_name"`
	CandidateCount int    `json:"candidate_count"`
}

type Candidate struct {
	ID              string    `json:"id"`
	PositionID      string    `json:"position_id"`
	Name            string    `json:"name"`
	StudentFeedback string    `json:"student_feedback"`
	CreatedAt       time.Time `json:"created_at"`
}

type CandidateWithPosition struct {
	Candidate
	PositionTitle string `json:"position_title"`
}

type Score struct {
	ID            string    `json:"id"`
	CandidateID   string    `json:"candidate_id"`
	InterviewerID string    `json:"interviewer_id"`
	HandGestures  int       `json:"hand_gestures"`
	StayedAwake   int       `json:"stayed_awake"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Aggregate result types

// Averages are nil (JSON null) when NumScores is 0
type Statistics struct {
	NumScores       int      `json:"num_scores"`
	AvgHandGestures *float64 `json:"avg_hand_gestures"`
	AvgStayedAwake  *float64 `json:"avg_stayed_awake"`
	AvgTotal        *float64 `json:"avg_total"`
}

type RankedCandidate struct {
	Candidate Candidate  `json:"candidate"`
	Stats     Statistics `json:"stats"`
	Rank      int        `json:"rank"` // 1-indexed ranking
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
