package models

// Question is a multiple-choice question owned by exactly one quiz.
// CorrectAnswerIndex is an index into Options.
type Question struct {
	ID                 string   `json:"id"`
	Text               string   `json:"text" validate:"required"`
	Options            []string `json:"options" validate:"min=2,dive,required"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex" validate:"min=0"`
}

type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title" validate:"required"`
	Questions []Question `json:"questions" validate:"min=1"`
}

// QuestionByID returns the owned question with the given ID, or nil.
func (q *Quiz) QuestionByID(id string) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i]
		}
	}
	return nil
}
