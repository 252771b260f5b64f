// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"quiz_backend/internal/app/router"
	"quiz_backend/internal/feature/catalog/adapters"
	cataloghandler "quiz_backend/internal/feature/catalog/transport/handler"
	"quiz_backend/internal/feature/catalog/usecase"
	"quiz_backend/internal/platform/db"
	"quiz_backend/internal/platform/http/handler"
	jwtmw "quiz_backend/internal/platform/jwt"
)

// AuthSettings configures token issuance.
type AuthSettings struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// healthTimeout bounds the database ping behind /healthz.
const healthTimeout = 2 * time.Second

// NewCatalogHandlers builds repositories, usecases and handlers on top of gw.
func NewCatalogHandlers(gw *db.Gateway, auth AuthSettings) (router.Handlers, error) {
	gen, err := jwtmw.NewGenerator(auth.JWTSecret, auth.TokenTTL)
	if err != nil {
		return router.Handlers{}, err
	}

	// Repository
	users := adapters.NewUserRepository(gw)
	questions := adapters.NewQuestionRepository(gw)
	categories := adapters.NewCategoryRepository(gw)

	// Usecase
	authUC := usecase.NewAuthUsecase(users, gen)
	questionUC := usecase.NewQuestionUsecase(questions, categories, users)
	categoryUC := usecase.NewCategoryUsecase(categories)

	// Handler
	return router.Handlers{
		Health:     handler.NewHealthHandler(gw, healthTimeout),
		Auth:       cataloghandler.NewAuthHandler(authUC),
		Questions:  cataloghandler.NewQuestionHandler(questionUC),
		Categories: cataloghandler.NewCategoryHandler(categoryUC),
	}, nil
}
