package repository

import (
	"context"
	"fmt"

	"github.com/fsnd-projects/fsnd-api/internal/domain"
	"github.com/fsnd-projects/fsnd-api/internal/repository/dao"
)

var (
	ErrCategoryNotFound = dao.ErrCategoryNotFound
	ErrQuestionNotFound = dao.ErrQuestionNotFound
)

type TriviaDAO interface {
	ListCategories(ctx context.Context) ([]dao.Category, error)
	FindCategoryByID(ctx context.Context, id uint) (dao.Category, error)
	CountQuestions(ctx context.Context) (int64, error)
	ListQuestions(ctx context.Context, offset, limit int) ([]dao.Question, error)
	FindQuestionByID(ctx context.Context, id uint) (dao.Question, error)
	InsertQuestion(ctx context.Context, question dao.Question) (dao.Question, error)
	DeleteQuestion(ctx context.Context, id uint) error
	SearchQuestions(ctx context.Context, term string) ([]dao.Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID uint) ([]dao.Question, error)
	ListQuestionIDs(ctx context.Context, categoryID uint) ([]uint, error)
}

type TriviaRepository struct {
	dao TriviaDAO
}

func NewTriviaRepository(dao TriviaDAO) *TriviaRepository {
	return &TriviaRepository{
		dao: dao,
	}
}

func (r *TriviaRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	found, err := r.dao.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCategories -> %w", err)
	}

	categories := make([]domain.Category, len(found))
	for i, c := range found {
		categories[i] = categoryDaoToDomain(c)
	}

	return categories, nil
}

func (r *TriviaRepository) FindCategoryByID(ctx context.Context, id uint) (domain.Category, error) {
	found, err := r.dao.FindCategoryByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.FindCategoryByID -> %w", err)
	}

	return categoryDaoToDomain(found), nil
}

func (r *TriviaRepository) CountQuestions(ctx context.Context) (int64, error) {
	total, err := r.dao.CountQuestions(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountQuestions -> %w", err)
	}

	return total, nil
}

func (r *TriviaRepository) ListQuestions(ctx context.Context, offset, limit int) ([]domain.Question, error) {
	found, err := r.dao.ListQuestions(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListQuestions -> %w", err)
	}

	return questionsDaoToDomain(found), nil
}

func (r *TriviaRepository) FindQuestionByID(ctx context.Context, id uint) (domain.Question, error) {
	found, err := r.dao.FindQuestionByID(ctx, id)
	if err != nil {
		return domain.Question{}, fmt.Errorf("r.dao.FindQuestionByID -> %w", err)
	}

	return questionDaoToDomain(found), nil
}

func (r *TriviaRepository) CreateQuestion(ctx context.Context, q domain.Question) (domain.Question, error) {
	created, err := r.dao.InsertQuestion(ctx, dao.Question{
		Question:   q.Question,
		Answer:     q.Answer,
		CategoryID: q.Category,
		Difficulty: q.Difficulty,
	})
	if err != nil {
		return domain.Question{}, fmt.Errorf("r.dao.InsertQuestion -> %w", err)
	}

	return questionDaoToDomain(created), nil
}

func (r *TriviaRepository) DeleteQuestion(ctx context.Context, id uint) error {
	if err := r.dao.DeleteQuestion(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteQuestion -> %w", err)
	}

	return nil
}

func (r *TriviaRepository) SearchQuestions(ctx context.Context, term string) ([]domain.Question, error) {
	found, err := r.dao.SearchQuestions(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SearchQuestions -> %w", err)
	}

	return questionsDaoToDomain(found), nil
}

func (r *TriviaRepository) ListQuestionsByCategory(ctx context.Context, categoryID uint) ([]domain.Question, error) {
	found, err := r.dao.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListQuestionsByCategory -> %w", err)
	}

	return questionsDaoToDomain(found), nil
}

func (r *TriviaRepository) ListQuestionIDs(ctx context.Context, categoryID uint) ([]uint, error) {
	ids, err := r.dao.ListQuestionIDs(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListQuestionIDs -> %w", err)
	}

	return ids, nil
}

func categoryDaoToDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:   c.ID,
		Type: c.Type,
	}
}

func questionDaoToDomain(q dao.Question) domain.Question {
	return domain.Question{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

func questionsDaoToDomain(found []dao.Question) []domain.Question {
	questions := make([]domain.Question, len(found))
	for i, q := range found {
		questions[i] = questionDaoToDomain(q)
	}

	return questions
}
