package dto

import "time"

// ListQuestionsQuery は問題一覧のページ指定です。sizeが省略された場合は全件を返します。
type ListQuestionsQuery struct {
	Offset int  `form:"offset"`
	Size   *int `form:"size"`
}

// IDUri はパスパラメータ:idを表します。
type IDUri struct {
	ID uint `uri:"id" binding:"required"`
}

// CreateQuestionReq はPOST /questionsのリクエストボディです。difficultyはeasy/medium/hardのいずれかです。
type CreateQuestionReq struct {
	CategoryID uint   `json:"categoryId" binding:"required"`
	Text       string `json:"text" binding:"required"`
	Difficulty string `json:"difficulty" binding:"required"`
}

// AddAnswerReq はPOST /questions/:id/answersのリクエストボディです。
type AddAnswerReq struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

// CreateCategoryReq はPOST /categoriesのリクエストボディです。
type CreateCategoryReq struct {
	Name string `json:"name" binding:"required"`
}

// QuestionRes は問題のレスポンスです。作者のいない問題ではuserIdがnullになります。
type QuestionRes struct {
	ID         uint      `json:"id"`
	UserID     *uint     `json:"userId"`
	CategoryID uint      `json:"categoryId"`
	Text       string    `json:"text"`
	Difficulty string    `json:"difficulty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// QuestionDetailRes は回答を含む問題のレスポンスです。
type QuestionDetailRes struct {
	QuestionRes
	Answers []AnswerRes `json:"answers"`
}

type AnswerRes struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type CategoryRes struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SetRes struct {
	ID          uint   `json:"id"`
	UserID      *uint  `json:"userId"`
	InterviewID *uint  `json:"interviewId"`
	Name        string `json:"name"`
}

// ErrorRes はエラーレスポンスです。入力検証エラーの場合はfieldに対象のフィールド名が入ります。
type ErrorRes struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// MessageRes は本文を持たない成功レスポンスです。
type MessageRes struct {
	Message string `json:"message"`
}
