package entity

import "quiz_backend/internal/shared/validation"

// Answer is one candidate answer to a question.
type Answer struct {
	Timestamped

	questionID uint
	text       string
	isCorrect  bool
}

// NewAnswer builds a transient answer to the question with questionID.
// The question must already be persisted.
func NewAnswer(questionID uint, text string, isCorrect bool) (Answer, error) {
	var a Answer
	if err := a.SetQuestionID(questionID); err != nil {
		return Answer{}, err
	}
	a.text = text
	a.isCorrect = isCorrect
	return a, nil
}

func (a Answer) QuestionID() uint { return a.questionID }
func (a Answer) Text() string     { return a.text }
func (a Answer) IsCorrect() bool  { return a.isCorrect }

func (a *Answer) SetQuestionID(id uint) error {
	if id == 0 {
		return validation.New(validation.FieldQuestionID, "answer requires a saved question")
	}
	a.questionID = id
	return nil
}

func (a *Answer) SetText(text string)      { a.text = text }
func (a *Answer) SetCorrect(isCorrect bool) { a.isCorrect = isCorrect }

func (a Answer) Equal(other Answer) bool {
	return a.ID() == other.ID() &&
		a.questionID == other.questionID &&
		a.text == other.text &&
		a.isCorrect == other.isCorrect
}
