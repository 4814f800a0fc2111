package models

import "time"

// QuizResult is an immutable record of one submitted quiz attempt. Answers
// holds the selected option index per question position; -1 marks a question
// left unanswered. Score is a percentage in [0, 100].
type QuizResult struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	QuizID      string    `json:"quizId"`
	Score       float64   `json:"score"`
	Answers     []int     `json:"answers"`
	SubmittedAt time.Time `json:"submittedAt"`
}
