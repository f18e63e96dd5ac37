package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// DefaultCategories are the trivia categories the frontend ships icons for.
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

// SeedTrivia inserts DefaultCategories when the categories table is empty and
// reports how many rows it created.
func SeedTrivia(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&Category{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count categories -> %w", err)
	}

	if count > 0 {
		return 0, nil
	}

	categories := make([]Category, len(DefaultCategories))
	for i, t := range DefaultCategories {
		categories[i] = Category{Type: t}
	}

	if err := db.WithContext(ctx).Create(&categories).Error; err != nil {
		return 0, fmt.Errorf("insert categories -> %w", err)
	}

	return len(categories), nil
}
