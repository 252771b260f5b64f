// Package adapters はcatalogフィーチャーのリポジトリ実装を提供します。
//
// Every repository issues fixed, hand-written SQL through db.Gateway. Camel-case identifiers are
// double-quoted so the same statements run on PostgreSQL and SQLite.
package adapters

import (
	"time"

	"quiz_backend/internal/feature/catalog/domain/entity"
)

// UserModel is the users table row.
type UserModel struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex"`
	Username     string    `gorm:"column:username;size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:passwordHash;size:44;not null"`
	Name         string    `gorm:"column:name;size:255;not null"`
	CreatedAt    time.Time `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `gorm:"column:updatedAt;not null;default:CURRENT_TIMESTAMP"`
}

func (UserModel) TableName() string { return "users" }

// CategoryModel is the categories table row.
type CategoryModel struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;size:255;not null"`
	CreatedAt time.Time `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"column:updatedAt;not null;default:CURRENT_TIMESTAMP"`
}

func (CategoryModel) TableName() string { return "categories" }

// QuestionModel is the questions table row. UserID is NULL for questions without an author.
type QuestionModel struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	UserID     *uint     `gorm:"column:userId;index"`
	CategoryID uint      `gorm:"column:categoryId;not null;index"`
	Text       string    `gorm:"column:text;type:text;not null"`
	Difficulty int       `gorm:"column:difficulty;not null;default:0"`
	CreatedAt  time.Time `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time `gorm:"column:updatedAt;not null;default:CURRENT_TIMESTAMP"`
}

func (QuestionModel) TableName() string { return "questions" }

// AnswerModel is the answers table row.
type AnswerModel struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	QuestionID uint      `gorm:"column:questionId;not null;index"`
	Text       string    `gorm:"column:text;type:text;not null"`
	IsCorrect  bool      `gorm:"column:isCorrect;not null;default:false"`
	CreatedAt  time.Time `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time `gorm:"column:updatedAt;not null;default:CURRENT_TIMESTAMP"`
}

func (AnswerModel) TableName() string { return "answers" }

// SetModel is the sets table row. The set's name lives in the column "set".
type SetModel struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	UserID      *uint     `gorm:"column:userId;index"`
	InterviewID *uint     `gorm:"column:interviewId"`
	Name        string    `gorm:"column:set;size:255;not null"`
	CreatedAt   time.Time `gorm:"column:createdAt;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `gorm:"column:updatedAt;not null;default:CURRENT_TIMESTAMP"`
}

func (SetModel) TableName() string { return "sets" }

// SetQuestionModel is a row of the sets_questions junction table.
type SetQuestionModel struct {
	SetID      uint `gorm:"column:setId;primaryKey;autoIncrement:false"`
	QuestionID uint `gorm:"column:questionId;primaryKey;autoIncrement:false;index"`
}

func (SetQuestionModel) TableName() string { return "sets_questions" }

// Models returns every table model, in dependency order, for db.Migrate.
func Models() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&QuestionModel{},
		&AnswerModel{},
		&SetModel{},
		&SetQuestionModel{},
	}
}

// nullable converts an optional foreign key into a statement argument; absent becomes SQL NULL.
func nullable(id entity.OptionalID) any {
	if v, ok := id.Get(); ok {
		return v
	}
	return nil
}

func optional(id *uint) entity.OptionalID {
	if id == nil {
		return entity.NoID()
	}
	return entity.IDOf(*id)
}

func toUser(m UserModel) (entity.User, error) {
	u, err := entity.RestoreUser(m.Email, m.Username, m.PasswordHash, m.Name)
	if err != nil {
		return entity.User{}, err
	}
	u.Stamp(m.ID, m.CreatedAt, m.UpdatedAt)
	return u, nil
}

func toUsers(ms []UserModel) ([]entity.User, error) {
	out := make([]entity.User, 0, len(ms))
	for _, m := range ms {
		u, err := toUser(m)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func toCategory(m CategoryModel) entity.Category {
	c := entity.NewCategory(m.Name)
	c.Stamp(m.ID, m.CreatedAt, m.UpdatedAt)
	return c
}

func toCategories(ms []CategoryModel) []entity.Category {
	out := make([]entity.Category, 0, len(ms))
	for _, m := range ms {
		out = append(out, toCategory(m))
	}
	return out
}

func toQuestion(m QuestionModel) (entity.Question, error) {
	q, err := entity.NewQuestionFromIDs(optional(m.UserID), m.CategoryID, m.Text, entity.Difficulty(m.Difficulty))
	if err != nil {
		return entity.Question{}, err
	}
	q.Stamp(m.ID, m.CreatedAt, m.UpdatedAt)
	return q, nil
}

func toQuestions(ms []QuestionModel) ([]entity.Question, error) {
	out := make([]entity.Question, 0, len(ms))
	for _, m := range ms {
		q, err := toQuestion(m)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

func toAnswer(m AnswerModel) (entity.Answer, error) {
	a, err := entity.NewAnswer(m.QuestionID, m.Text, m.IsCorrect)
	if err != nil {
		return entity.Answer{}, err
	}
	a.Stamp(m.ID, m.CreatedAt, m.UpdatedAt)
	return a, nil
}

func toAnswers(ms []AnswerModel) ([]entity.Answer, error) {
	out := make([]entity.Answer, 0, len(ms))
	for _, m := range ms {
		a, err := toAnswer(m)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func toSet(m SetModel) entity.Set {
	s := entity.NewSet(optional(m.UserID), optional(m.InterviewID), m.Name)
	s.Stamp(m.ID, m.CreatedAt, m.UpdatedAt)
	return s
}

func toSets(ms []SetModel) []entity.Set {
	out := make([]entity.Set, 0, len(ms))
	for _, m := range ms {
		out = append(out, toSet(m))
	}
	return out
}
