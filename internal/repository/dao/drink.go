package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrDrinkNotFound    = errors.New("drink not found")
	ErrDrinkTitleExists = errors.New("drink title already exists")
)

type Ingredient struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

type Drink struct {
	ID     uint         `gorm:"primaryKey"`
	Title  string       `gorm:"size:80;unique;not null"`
	Recipe []Ingredient `gorm:"serializer:json;type:text;not null"`
}

type Menu struct {
	ID    uint   `gorm:"primaryKey"`
	Title string `gorm:"size:80;not null"`
}

type DrinkDAO struct {
	db *gorm.DB
}

func NewDrinkDAO(db *gorm.DB) *DrinkDAO {
	return &DrinkDAO{
		db: db,
	}
}

func (d *DrinkDAO) List(ctx context.Context) ([]Drink, error) {
	var drinks []Drink

	result := d.db.WithContext(ctx).Order("id").Find(&drinks)
	if result.Error != nil {
		return nil, result.Error
	}

	return drinks, nil
}

func (d *DrinkDAO) FindByID(ctx context.Context, id uint) (Drink, error) {
	var drink Drink

	result := d.db.WithContext(ctx).First(&drink, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Drink{}, ErrDrinkNotFound
		}

		return Drink{}, result.Error
	}

	return drink, nil
}

func (d *DrinkDAO) Insert(ctx context.Context, drink Drink) (Drink, error) {
	result := d.db.WithContext(ctx).Create(&drink)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Drink{}, ErrDrinkTitleExists
		}

		return Drink{}, result.Error
	}

	return drink, nil
}

// Patch loads the drink, lets apply modify it and saves the result in one
// transaction.
func (d *DrinkDAO) Patch(ctx context.Context, id uint, apply func(*Drink)) (Drink, error) {
	var drink Drink

	err := inTransaction(ctx, d.db, func(tx *gorm.DB) error {
		if err := tx.First(&drink, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDrinkNotFound
			}

			return err
		}

		apply(&drink)

		return tx.Save(&drink).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return Drink{}, ErrDrinkTitleExists
		}

		return Drink{}, err
	}

	return drink, nil
}

func (d *DrinkDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Drink{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrDrinkNotFound
	}

	return nil
}

type MenuDAO struct {
	db *gorm.DB
}

func NewMenuDAO(db *gorm.DB) *MenuDAO {
	return &MenuDAO{
		db: db,
	}
}

func (d *MenuDAO) List(ctx context.Context) ([]Menu, error) {
	var menus []Menu

	result := d.db.WithContext(ctx).Order("id").Find(&menus)
	if result.Error != nil {
		return nil, result.Error
	}

	return menus, nil
}

func (d *MenuDAO) Insert(ctx context.Context, menu Menu) (Menu, error) {
	result := d.db.WithContext(ctx).Create(&menu)
	if result.Error != nil {
		return Menu{}, result.Error
	}

	return menu, nil
}
