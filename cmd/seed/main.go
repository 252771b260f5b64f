// Command seed loads a small fixture catalog into the configured database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"quiz_backend/internal/config"
	"quiz_backend/internal/feature/catalog/adapters"
	"quiz_backend/internal/feature/catalog/domain/entity"
	"quiz_backend/internal/feature/catalog/usecase"
	"quiz_backend/internal/platform/db"
	"quiz_backend/internal/platform/logging"
)

type fixtureAnswer struct {
	text    string
	correct bool
}

type fixtureQuestion struct {
	text       string
	difficulty entity.Difficulty
	answers    []fixtureAnswer
}

var fixtureQuestions = []fixtureQuestion{
	{
		text:       "What does the go statement start?",
		difficulty: entity.DifficultyEasy,
		answers: []fixtureAnswer{
			{"A goroutine", true},
			{"An OS process", false},
		},
	},
	{
		text:       "What happens when you send on a closed channel?",
		difficulty: entity.DifficultyMedium,
		answers: []fixtureAnswer{
			{"It panics", true},
			{"The value is dropped", false},
			{"It blocks forever", false},
		},
	},
	{
		text:       "When is a nil interface value not equal to nil?",
		difficulty: entity.DifficultyHard,
		answers: []fixtureAnswer{
			{"When it holds a typed nil pointer", true},
			{"Never", false},
		},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger, err := logging.New(os.Stdout, logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		slog.Error("failed to build logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)

	gdb, err := db.OpenDB(cfg.Database.DB(), logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gdb, adapters.Models()...); err != nil {
		logger.Error("failed to migrate", "error", err)
		os.Exit(1)
	}
	gw := db.NewGateway(gdb, db.WithAtomicSave(true))
	defer gw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := seed(ctx, gw); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
	logger.Info("seed ok")
}

func seed(ctx context.Context, gw *db.Gateway) error {
	users := adapters.NewUserRepository(gw)
	categories := adapters.NewCategoryRepository(gw)
	questions := adapters.NewQuestionRepository(gw)
	sets := adapters.NewSetRepository(gw)

	author, err := seedUser(ctx, users, "gopher")
	if err != nil {
		return err
	}

	cat := entity.NewCategory("Go fundamentals")
	if _, err := categories.Save(ctx, &cat); err != nil {
		return fmt.Errorf("save category: %w", err)
	}

	set := entity.NewSetFor(author, "Go screening")
	if _, err := sets.Save(ctx, &set); err != nil {
		return fmt.Errorf("save set: %w", err)
	}

	for _, fq := range fixtureQuestions {
		q, err := entity.NewQuestion(&author, cat, fq.text, fq.difficulty)
		if err != nil {
			return err
		}
		if _, err := questions.Save(ctx, &q); err != nil {
			return fmt.Errorf("save question: %w", err)
		}
		for _, fa := range fq.answers {
			if _, err := questions.AddAnswer(ctx, q, fa.text, fa.correct); err != nil {
				return fmt.Errorf("add answer: %w", err)
			}
		}
		if err := sets.AddQuestion(ctx, set, q); err != nil {
			return fmt.Errorf("add question to set: %w", err)
		}
	}
	return nil
}

// seedUser returns the existing user with username or creates one.
func seedUser(ctx context.Context, users usecase.UserRepository, username string) (entity.User, error) {
	u, ok, err := users.FindByUsername(ctx, username)
	if err != nil {
		return entity.User{}, err
	}
	if ok {
		return u, nil
	}

	u, err = entity.NewUserFromName(username)
	if err != nil {
		return entity.User{}, err
	}
	if _, err := users.Save(ctx, &u); err != nil {
		return entity.User{}, fmt.Errorf("save user: %w", err)
	}
	return u, nil
}
