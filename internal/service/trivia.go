package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsnd-projects/fsnd-api/internal/domain"
	"github.com/fsnd-projects/fsnd-api/internal/repository"
)

var (
	ErrCategoryNotFound = repository.ErrCategoryNotFound
	ErrQuestionNotFound = repository.ErrQuestionNotFound
	ErrNoCategories     = errors.New("no categories")
	ErrInvalidPage      = errors.New("page must be a positive integer")
	ErrPageNotFound     = errors.New("page not found")
)

type TriviaRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	FindCategoryByID(ctx context.Context, id uint) (domain.Category, error)
	CountQuestions(ctx context.Context) (int64, error)
	ListQuestions(ctx context.Context, offset, limit int) ([]domain.Question, error)
	FindQuestionByID(ctx context.Context, id uint) (domain.Question, error)
	CreateQuestion(ctx context.Context, q domain.Question) (domain.Question, error)
	DeleteQuestion(ctx context.Context, id uint) error
	SearchQuestions(ctx context.Context, term string) ([]domain.Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID uint) ([]domain.Question, error)
}

type TriviaService struct {
	repo    TriviaRepository
	perPage int
}

func NewTriviaService(repo TriviaRepository, perPage int) *TriviaService {
	return &TriviaService{
		repo:    repo,
		perPage: perPage,
	}
}

func (s *TriviaService) GetCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCategories -> %w", err)
	}
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}

	return categories, nil
}

// GetQuestionsPage returns the 1-based page of questions ordered by id.
// A page past the last one is ErrPageNotFound.
func (s *TriviaService) GetQuestionsPage(ctx context.Context, page int) (domain.QuestionPage, error) {
	result, err := s.questionsPage(ctx, page)
	if err != nil {
		return domain.QuestionPage{}, err
	}
	if len(result.Questions) == 0 {
		return domain.QuestionPage{}, ErrPageNotFound
	}

	return result, nil
}

func (s *TriviaService) questionsPage(ctx context.Context, page int) (domain.QuestionPage, error) {
	if page < 1 {
		return domain.QuestionPage{}, ErrInvalidPage
	}

	total, err := s.repo.CountQuestions(ctx)
	if err != nil {
		return domain.QuestionPage{}, fmt.Errorf("s.repo.CountQuestions -> %w", err)
	}

	offset := (page - 1) * s.perPage
	if int64(offset) >= total {
		return domain.QuestionPage{Questions: []domain.Question{}, Total: total}, nil
	}

	questions, err := s.repo.ListQuestions(ctx, offset, s.perPage)
	if err != nil {
		return domain.QuestionPage{}, fmt.Errorf("s.repo.ListQuestions -> %w", err)
	}

	return domain.QuestionPage{Questions: questions, Total: total}, nil
}

// CreateQuestion stores q and returns it with the requested page of
// questions. An empty page is not an error here.
func (s *TriviaService) CreateQuestion(ctx context.Context, q domain.Question, page int) (domain.Question, domain.QuestionPage, error) {
	if _, err := s.repo.FindCategoryByID(ctx, q.Category); err != nil {
		return domain.Question{}, domain.QuestionPage{}, fmt.Errorf("s.repo.FindCategoryByID -> %w", err)
	}

	created, err := s.repo.CreateQuestion(ctx, q)
	if err != nil {
		return domain.Question{}, domain.QuestionPage{}, fmt.Errorf("s.repo.CreateQuestion -> %w", err)
	}

	result, err := s.questionsPage(ctx, page)
	if err != nil {
		return domain.Question{}, domain.QuestionPage{}, err
	}

	return created, result, nil
}

func (s *TriviaService) DeleteQuestion(ctx context.Context, id uint) error {
	if err := s.repo.DeleteQuestion(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteQuestion -> %w", err)
	}

	return nil
}

func (s *TriviaService) SearchQuestions(ctx context.Context, term string) ([]domain.Question, error) {
	questions, err := s.repo.SearchQuestions(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("s.repo.SearchQuestions -> %w", err)
	}

	return questions, nil
}

func (s *TriviaService) GetQuestionsByCategory(ctx context.Context, categoryID uint) (domain.Category, []domain.Question, error) {
	category, err := s.repo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return domain.Category{}, nil, fmt.Errorf("s.repo.FindCategoryByID -> %w", err)
	}

	questions, err := s.repo.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return domain.Category{}, nil, fmt.Errorf("s.repo.ListQuestionsByCategory -> %w", err)
	}

	return category, questions, nil
}
