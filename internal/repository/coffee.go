package repository

import (
	"context"
	"fmt"

	"github.com/fsnd-projects/fsnd-api/internal/domain"
	"github.com/fsnd-projects/fsnd-api/internal/repository/dao"
)

var (
	ErrDrinkNotFound    = dao.ErrDrinkNotFound
	ErrDrinkTitleExists = dao.ErrDrinkTitleExists
)

type DrinkDAO interface {
	List(ctx context.Context) ([]dao.Drink, error)
	Insert(ctx context.Context, drink dao.Drink) (dao.Drink, error)
	Patch(ctx context.Context, id uint, apply func(*dao.Drink)) (dao.Drink, error)
	Delete(ctx context.Context, id uint) error
}

type MenuDAO interface {
	List(ctx context.Context) ([]dao.Menu, error)
	Insert(ctx context.Context, menu dao.Menu) (dao.Menu, error)
}

type CoffeeRepository struct {
	drinks DrinkDAO
	menus  MenuDAO
}

func NewCoffeeRepository(drinks DrinkDAO, menus MenuDAO) *CoffeeRepository {
	return &CoffeeRepository{
		drinks: drinks,
		menus:  menus,
	}
}

func (r *CoffeeRepository) ListDrinks(ctx context.Context) ([]domain.Drink, error) {
	found, err := r.drinks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.drinks.List -> %w", err)
	}

	drinks := make([]domain.Drink, len(found))
	for i, d := range found {
		drinks[i] = drinkDaoToDomain(d)
	}

	return drinks, nil
}

func (r *CoffeeRepository) CreateDrink(ctx context.Context, drink domain.Drink) (domain.Drink, error) {
	created, err := r.drinks.Insert(ctx, dao.Drink{
		Title:  drink.Title,
		Recipe: ingredientsDomainToDao(drink.Recipe),
	})
	if err != nil {
		return domain.Drink{}, fmt.Errorf("r.drinks.Insert -> %w", err)
	}

	return drinkDaoToDomain(created), nil
}

// UpdateDrink replaces the title when title is non-nil and the recipe when
// recipe is non-nil.
func (r *CoffeeRepository) UpdateDrink(ctx context.Context, id uint, title *string, recipe []domain.Ingredient) (domain.Drink, error) {
	updated, err := r.drinks.Patch(ctx, id, func(d *dao.Drink) {
		if title != nil {
			d.Title = *title
		}
		if recipe != nil {
			d.Recipe = ingredientsDomainToDao(recipe)
		}
	})
	if err != nil {
		return domain.Drink{}, fmt.Errorf("r.drinks.Patch -> %w", err)
	}

	return drinkDaoToDomain(updated), nil
}

func (r *CoffeeRepository) DeleteDrink(ctx context.Context, id uint) error {
	if err := r.drinks.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.drinks.Delete -> %w", err)
	}

	return nil
}

func (r *CoffeeRepository) ListMenus(ctx context.Context) ([]domain.Menu, error) {
	found, err := r.menus.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.menus.List -> %w", err)
	}

	menus := make([]domain.Menu, len(found))
	for i, m := range found {
		menus[i] = domain.Menu{ID: m.ID, Title: m.Title}
	}

	return menus, nil
}

func (r *CoffeeRepository) CreateMenu(ctx context.Context, menu domain.Menu) (domain.Menu, error) {
	created, err := r.menus.Insert(ctx, dao.Menu{Title: menu.Title})
	if err != nil {
		return domain.Menu{}, fmt.Errorf("r.menus.Insert -> %w", err)
	}

	return domain.Menu{ID: created.ID, Title: created.Title}, nil
}

func drinkDaoToDomain(d dao.Drink) domain.Drink {
	recipe := make([]domain.Ingredient, len(d.Recipe))
	for i, ing := range d.Recipe {
		recipe[i] = domain.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts}
	}

	return domain.Drink{
		ID:     d.ID,
		Title:  d.Title,
		Recipe: recipe,
	}
}

func ingredientsDomainToDao(recipe []domain.Ingredient) []dao.Ingredient {
	out := make([]dao.Ingredient, len(recipe))
	for i, ing := range recipe {
		out[i] = dao.Ingredient{Name: ing.Name, Color: ing.Color, Parts: ing.Parts}
	}

	return out
}
