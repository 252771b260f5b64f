package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"quiz_backend/internal/feature/catalog/domain/entity"
	"quiz_backend/internal/feature/catalog/transport/http/dto"
	"quiz_backend/internal/feature/catalog/usecase"
	jwtmw "quiz_backend/internal/platform/jwt"
)

// QuestionUsecase は問題操作のユースケースを定義します。
type QuestionUsecase interface {
	List(ctx context.Context, page *usecase.Page) ([]entity.Question, error)
	Get(ctx context.Context, id uint) (usecase.QuestionDetail, error)
	Create(ctx context.Context, in usecase.CreateQuestionInput) (entity.Question, error)
	AddAnswer(ctx context.Context, questionID uint, text string, isCorrect bool) ([]entity.Answer, error)
	Delete(ctx context.Context, requesterID, questionID uint) error
	Sets(ctx context.Context, questionID uint) ([]entity.Set, error)
}

// QuestionHandler は問題関連のHTTPリクエストを処理します。
type QuestionHandler struct {
	questions QuestionUsecase
}

// NewQuestionHandler はQuestionHandlerの新しいインスタンスを生成します。
func NewQuestionHandler(questions QuestionUsecase) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// List は GET /questions?offset=&size= を処理します。sizeを省略すると全件を返します。
func (h *QuestionHandler) List(c *gin.Context) {
	var q dto.ListQuestionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, "list questions", err)
		return
	}
	var page *usecase.Page
	if q.Size != nil {
		page = &usecase.Page{Offset: q.Offset, Size: *q.Size}
	}
	questions, err := h.questions.List(c.Request.Context(), page)
	if err != nil {
		respondError(c, "list questions", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuestionList(questions))
}

// Get は GET /questions/:id を処理し、回答を含む問題を返します。
func (h *QuestionHandler) Get(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		bindError(c, "get question", err)
		return
	}
	detail, err := h.questions.Get(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, "get question", err)
		return
	}
	c.JSON(http.StatusOK, dto.QuestionDetailRes{
		QuestionRes: dto.NewQuestionRes(detail.Question),
		Answers:     dto.NewAnswerList(detail.Answers),
	})
}

// Sets は GET /questions/:id/sets を処理します。
func (h *QuestionHandler) Sets(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		bindError(c, "question sets", err)
		return
	}
	sets, err := h.questions.Sets(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, "question sets", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSetList(sets))
}

// Create は POST /questions を処理します。作者はトークンのユーザーです。
func (h *QuestionHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthorized"})
		return
	}
	var req dto.CreateQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "create question", err)
		return
	}
	difficulty, err := entity.ParseDifficulty(req.Difficulty)
	if err != nil {
		respondError(c, "create question", err)
		return
	}
	q, err := h.questions.Create(c.Request.Context(), usecase.CreateQuestionInput{
		AuthorID:   userID,
		CategoryID: req.CategoryID,
		Text:       req.Text,
		Difficulty: difficulty,
	})
	if err != nil {
		respondError(c, "create question", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewQuestionRes(q))
}

// AddAnswer は POST /questions/:id/answers を処理し、追加後の回答一覧を返します。
func (h *QuestionHandler) AddAnswer(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		bindError(c, "add answer", err)
		return
	}
	var req dto.AddAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "add answer", err)
		return
	}
	answers, err := h.questions.AddAnswer(c.Request.Context(), uri.ID, req.Text, req.IsCorrect)
	if err != nil {
		respondError(c, "add answer", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewAnswerList(answers))
}

// Delete は DELETE /questions/:id を処理します。
func (h *QuestionHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthorized"})
		return
	}
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		bindError(c, "delete question", err)
		return
	}
	if err := h.questions.Delete(c.Request.Context(), userID, uri.ID); err != nil {
		respondError(c, "delete question", err)
		return
	}
	c.Status(http.StatusNoContent)
}
