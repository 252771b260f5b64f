package entity

import "quiz_backend/internal/shared/validation"

// Question is a catalog entry written by an optional author under a required category.
type Question struct {
	Timestamped

	userID     OptionalID
	categoryID uint
	text       string
	difficulty Difficulty
}

// NewQuestion builds a transient question from its author and category.
// A nil author, or one that was never saved, leaves the question without an author.
func NewQuestion(author *User, category Category, text string, difficulty Difficulty) (Question, error) {
	userID := NoID()
	if author != nil {
		userID = IDOf(author.ID())
	}
	return NewQuestionFromIDs(userID, category.ID(), text, difficulty)
}

// NewQuestionFromIDs builds a transient question from raw foreign keys.
func NewQuestionFromIDs(userID OptionalID, categoryID uint, text string, difficulty Difficulty) (Question, error) {
	q := Question{userID: userID, text: text}
	if err := q.SetCategoryID(categoryID); err != nil {
		return Question{}, err
	}
	if err := q.SetDifficulty(difficulty); err != nil {
		return Question{}, err
	}
	return q, nil
}

func (q Question) UserID() OptionalID     { return q.userID }
func (q Question) CategoryID() uint       { return q.categoryID }
func (q Question) Text() string           { return q.text }
func (q Question) Difficulty() Difficulty { return q.difficulty }

func (q *Question) SetUserID(id OptionalID) { q.userID = id }

func (q *Question) SetCategoryID(id uint) error {
	if id == 0 {
		return validation.New(validation.FieldCategoryID, "question requires a category")
	}
	q.categoryID = id
	return nil
}

func (q *Question) SetText(text string) { q.text = text }

// SetDifficulty rejects values outside easy..hard; the question is left unchanged on error.
func (q *Question) SetDifficulty(d Difficulty) error {
	if err := d.Validate(); err != nil {
		return err
	}
	q.difficulty = d
	return nil
}

// Equal reports whether both questions have the same id and fields. Timestamps are ignored.
func (q Question) Equal(other Question) bool {
	return q.ID() == other.ID() &&
		q.userID == other.userID &&
		q.categoryID == other.categoryID &&
		q.text == other.text &&
		q.difficulty == other.difficulty
}
