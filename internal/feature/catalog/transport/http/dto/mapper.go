package dto

import "quiz_backend/internal/feature/catalog/domain/entity"

func optionalPtr(id entity.OptionalID) *uint {
	if v, ok := id.Get(); ok {
		return &v
	}
	return nil
}

func NewUserRes(u entity.User) UserRes {
	return UserRes{ID: u.ID(), Email: u.Email(), Username: u.Username(), Name: u.Name()}
}

func NewQuestionRes(q entity.Question) QuestionRes {
	return QuestionRes{
		ID:         q.ID(),
		UserID:     optionalPtr(q.UserID()),
		CategoryID: q.CategoryID(),
		Text:       q.Text(),
		Difficulty: q.Difficulty().String(),
		CreatedAt:  q.CreatedAt(),
		UpdatedAt:  q.UpdatedAt(),
	}
}

func NewQuestionList(qs []entity.Question) []QuestionRes {
	out := make([]QuestionRes, 0, len(qs))
	for _, q := range qs {
		out = append(out, NewQuestionRes(q))
	}
	return out
}

func NewAnswerList(as []entity.Answer) []AnswerRes {
	out := make([]AnswerRes, 0, len(as))
	for _, a := range as {
		out = append(out, AnswerRes{ID: a.ID(), Text: a.Text(), IsCorrect: a.IsCorrect()})
	}
	return out
}

func NewCategoryRes(c entity.Category) CategoryRes {
	return CategoryRes{ID: c.ID(), Name: c.Name()}
}

func NewCategoryList(cs []entity.Category) []CategoryRes {
	out := make([]CategoryRes, 0, len(cs))
	for _, c := range cs {
		out = append(out, NewCategoryRes(c))
	}
	return out
}

func NewSetList(ss []entity.Set) []SetRes {
	out := make([]SetRes, 0, len(ss))
	for _, s := range ss {
		out = append(out, SetRes{
			ID:          s.ID(),
			UserID:      optionalPtr(s.UserID()),
			InterviewID: optionalPtr(s.InterviewID()),
			Name:        s.Name(),
		})
	}
	return out
}
