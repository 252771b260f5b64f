package entity

import "quiz_backend/internal/shared/validation"

// Difficulty grades a question.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Validate fails with a ValidationError unless d is one of the defined levels.
func (d Difficulty) Validate() error {
	if d < DifficultyEasy || d > DifficultyHard {
		return validation.New(validation.FieldDifficulty, "invalid difficulty value")
	}
	return nil
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty returns the level named by s, as produced by String.
func ParseDifficulty(s string) (Difficulty, error) {
	for d := DifficultyEasy; d <= DifficultyHard; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, validation.New(validation.FieldDifficulty, "invalid difficulty value")
}
