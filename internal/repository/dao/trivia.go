package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrQuestionNotFound = errors.New("question not found")
)

type Category struct {
	ID        uint       `gorm:"primaryKey"`
	Type      string     `gorm:"unique;not null"`
	Questions []Question `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

type Question struct {
	ID         uint   `gorm:"primaryKey"`
	Question   string `gorm:"not null"`
	Answer     string `gorm:"not null"`
	CategoryID uint   `gorm:"column:category;not null;index"`
	Difficulty int    `gorm:"not null;default:1"`
}

type TriviaDAO struct {
	db *gorm.DB
}

func NewTriviaDAO(db *gorm.DB) *TriviaDAO {
	return &TriviaDAO{
		db: db,
	}
}

func (d *TriviaDAO) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category

	result := d.db.WithContext(ctx).Order("id").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *TriviaDAO) FindCategoryByID(ctx context.Context, id uint) (Category, error) {
	var category Category

	result := d.db.WithContext(ctx).First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Category{}, ErrCategoryNotFound
		}

		return Category{}, result.Error
	}

	return category, nil
}

func (d *TriviaDAO) CountQuestions(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Question{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *TriviaDAO) ListQuestions(ctx context.Context, offset, limit int) ([]Question, error) {
	var questions []Question

	result := d.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&questions)
	if result.Error != nil {
		return nil, result.Error
	}

	return questions, nil
}

func (d *TriviaDAO) FindQuestionByID(ctx context.Context, id uint) (Question, error) {
	var question Question

	result := d.db.WithContext(ctx).First(&question, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Question{}, ErrQuestionNotFound
		}

		return Question{}, result.Error
	}

	return question, nil
}

func (d *TriviaDAO) InsertQuestion(ctx context.Context, question Question) (Question, error) {
	result := d.db.WithContext(ctx).Create(&question)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return Question{}, ErrCategoryNotFound
		}

		return Question{}, result.Error
	}

	return question, nil
}

func (d *TriviaDAO) DeleteQuestion(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Question{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}

	return nil
}

func (d *TriviaDAO) SearchQuestions(ctx context.Context, term string) ([]Question, error) {
	var questions []Question

	result := d.db.WithContext(ctx).
		Where("LOWER(question) LIKE ? ESCAPE '\\'", likePattern(term)).
		Order("id").
		Find(&questions)
	if result.Error != nil {
		return nil, result.Error
	}

	return questions, nil
}

func (d *TriviaDAO) ListQuestionsByCategory(ctx context.Context, categoryID uint) ([]Question, error) {
	var questions []Question

	result := d.db.WithContext(ctx).Where("category = ?", categoryID).Order("id").Find(&questions)
	if result.Error != nil {
		return nil, result.Error
	}

	return questions, nil
}

// ListQuestionIDs returns the ids of every question in the category, or of
// every question at all when categoryID is 0.
func (d *TriviaDAO) ListQuestionIDs(ctx context.Context, categoryID uint) ([]uint, error) {
	var ids []uint

	query := d.db.WithContext(ctx).Model(&Question{})
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}

	result := query.Order("id").Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}
