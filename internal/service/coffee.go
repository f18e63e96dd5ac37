package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsnd-projects/fsnd-api/internal/domain"
	"github.com/fsnd-projects/fsnd-api/internal/repository"
)

var (
	ErrDrinkNotFound    = repository.ErrDrinkNotFound
	ErrDrinkTitleExists = repository.ErrDrinkTitleExists
	ErrNothingToUpdate  = errors.New("nothing to update")
)

type CoffeeRepository interface {
	ListDrinks(ctx context.Context) ([]domain.Drink, error)
	CreateDrink(ctx context.Context, drink domain.Drink) (domain.Drink, error)
	UpdateDrink(ctx context.Context, id uint, title *string, recipe []domain.Ingredient) (domain.Drink, error)
	DeleteDrink(ctx context.Context, id uint) error
	ListMenus(ctx context.Context) ([]domain.Menu, error)
	CreateMenu(ctx context.Context, menu domain.Menu) (domain.Menu, error)
}

type CoffeeService struct {
	repo CoffeeRepository
}

func NewCoffeeService(repo CoffeeRepository) *CoffeeService {
	return &CoffeeService{
		repo: repo,
	}
}

func (s *CoffeeService) ListDrinks(ctx context.Context) ([]domain.Drink, error) {
	drinks, err := s.repo.ListDrinks(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListDrinks -> %w", err)
	}

	return drinks, nil
}

func (s *CoffeeService) CreateDrink(ctx context.Context, drink domain.Drink) (domain.Drink, error) {
	created, err := s.repo.CreateDrink(ctx, drink)
	if err != nil {
		return domain.Drink{}, fmt.Errorf("s.repo.CreateDrink -> %w", err)
	}

	return created, nil
}

// UpdateDrink changes whichever of title and recipe is non-nil.
func (s *CoffeeService) UpdateDrink(ctx context.Context, id uint, title *string, recipe []domain.Ingredient) (domain.Drink, error) {
	if title == nil && recipe == nil {
		return domain.Drink{}, ErrNothingToUpdate
	}

	updated, err := s.repo.UpdateDrink(ctx, id, title, recipe)
	if err != nil {
		return domain.Drink{}, fmt.Errorf("s.repo.UpdateDrink -> %w", err)
	}

	return updated, nil
}

func (s *CoffeeService) DeleteDrink(ctx context.Context, id uint) error {
	if err := s.repo.DeleteDrink(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteDrink -> %w", err)
	}

	return nil
}

func (s *CoffeeService) ListMenus(ctx context.Context) ([]domain.Menu, error) {
	menus, err := s.repo.ListMenus(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListMenus -> %w", err)
	}

	return menus, nil
}

// CreateMenu stores menu and returns every menu including the new one.
func (s *CoffeeService) CreateMenu(ctx context.Context, menu domain.Menu) ([]domain.Menu, error) {
	if _, err := s.repo.CreateMenu(ctx, menu); err != nil {
		return nil, fmt.Errorf("s.repo.CreateMenu -> %w", err)
	}

	return s.ListMenus(ctx)
}
