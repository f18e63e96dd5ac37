package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/fsnd-projects/fsnd-api/internal/domain"
)

type QuizRepository interface {
	FindCategoryByID(ctx context.Context, id uint) (domain.Category, error)
	FindQuestionByID(ctx context.Context, id uint) (domain.Question, error)
	ListQuestionIDs(ctx context.Context, categoryID uint) ([]uint, error)
}

type QuizService struct {
	repo QuizRepository
	intn func(n int) int
}

// NewQuizService builds a selector drawing from intn. A nil intn falls back
// to the global math/rand source.
func NewQuizService(repo QuizRepository, intn func(n int) int) *QuizService {
	if intn == nil {
		intn = rand.Intn
	}

	return &QuizService{
		repo: repo,
		intn: intn,
	}
}

// NextQuestion picks a question uniformly at random from categoryID (0 means
// every category) that is not in previous. It returns nil, nil when no
// unseen question is left.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID uint, previous []uint) (*domain.Question, error) {
	if categoryID != 0 {
		if _, err := s.repo.FindCategoryByID(ctx, categoryID); err != nil {
			return nil, fmt.Errorf("s.repo.FindCategoryByID -> %w", err)
		}
	}

	candidates, err := s.repo.ListQuestionIDs(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListQuestionIDs -> %w", err)
	}

	// A candidate deleted after the listing is dropped and another one drawn.
	remaining := unseen(candidates, previous)
	for len(remaining) > 0 {
		i := s.intn(len(remaining))
		q, err := s.repo.FindQuestionByID(ctx, remaining[i])
		if err == nil {
			return &q, nil
		}
		if !errors.Is(err, ErrQuestionNotFound) {
			return nil, fmt.Errorf("s.repo.FindQuestionByID -> %w", err)
		}

		remaining[i] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}

	return nil, nil
}

func unseen(candidates, previous []uint) []uint {
	seen := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	remaining := make([]uint, 0, len(candidates))
	for _, id := range candidates {
		if _, ok := seen[id]; !ok {
			remaining = append(remaining, id)
		}
	}

	return remaining
}
