package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsnd-projects/fsnd-api/internal/domain"
	"github.com/fsnd-projects/fsnd-api/internal/repository"
	"github.com/fsnd-projects/fsnd-api/internal/repository/dao"
)

func newCoffeeService(t *testing.T) *CoffeeService {
	t.Helper()

	db := newTestDB(t)
	return NewCoffeeService(repository.NewCoffeeRepository(dao.NewDrinkDAO(db), dao.NewMenuDAO(db)))
}

func TestCoffeeService_Drinks(t *testing.T) {
	ctx := context.Background()
	svc := newCoffeeService(t)

	latte, err := svc.CreateDrink(ctx, domain.Drink{
		Title:  "Latte",
		Recipe: []domain.Ingredient{{Name: "espresso", Color: "brown", Parts: 1}, {Name: "milk", Color: "white", Parts: 3}},
	})
	require.NoError(t, err)
	assert.NotZero(t, latte.ID)

	_, err = svc.CreateDrink(ctx, domain.Drink{Title: "Latte", Recipe: []domain.Ingredient{{Name: "x", Color: "y", Parts: 1}}})
	assert.ErrorIs(t, err, ErrDrinkTitleExists)

	t.Run("update title only keeps recipe", func(t *testing.T) {
		title := "Flat White"
		updated, err := svc.UpdateDrink(ctx, latte.ID, &title, nil)
		require.NoError(t, err)
		assert.Equal(t, "Flat White", updated.Title)
		assert.Len(t, updated.Recipe, 2)
	})

	t.Run("update recipe only", func(t *testing.T) {
		updated, err := svc.UpdateDrink(ctx, latte.ID, nil, []domain.Ingredient{{Name: "espresso", Color: "brown", Parts: 2}})
		require.NoError(t, err)
		assert.Equal(t, "Flat White", updated.Title)
		assert.Equal(t, []domain.Ingredient{{Name: "espresso", Color: "brown", Parts: 2}}, updated.Recipe)
	})

	t.Run("update needs a field", func(t *testing.T) {
		_, err := svc.UpdateDrink(ctx, latte.ID, nil, nil)
		assert.ErrorIs(t, err, ErrNothingToUpdate)
	})

	t.Run("update missing drink", func(t *testing.T) {
		title := "Ghost"
		_, err := svc.UpdateDrink(ctx, 999, &title, nil)
		assert.ErrorIs(t, err, ErrDrinkNotFound)
	})

	t.Run("list and delete", func(t *testing.T) {
		drinks, err := svc.ListDrinks(ctx)
		require.NoError(t, err)
		assert.Len(t, drinks, 1)

		require.NoError(t, svc.DeleteDrink(ctx, latte.ID))
		assert.ErrorIs(t, svc.DeleteDrink(ctx, latte.ID), ErrDrinkNotFound)
	})
}

func TestCoffeeService_Menus(t *testing.T) {
	ctx := context.Background()
	svc := newCoffeeService(t)

	menus, err := svc.CreateMenu(ctx, domain.Menu{Title: "Breakfast"})
	require.NoError(t, err)
	require.Len(t, menus, 1)

	menus, err = svc.CreateMenu(ctx, domain.Menu{Title: "Lunch"})
	require.NoError(t, err)
	require.Len(t, menus, 2)
	assert.Equal(t, "Lunch", menus[1].Title)
}
