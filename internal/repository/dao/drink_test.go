package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrinkDAO(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := NewDrinkDAO(db)

	water, err := d.Insert(ctx, Drink{Title: "Water", Recipe: []Ingredient{{Name: "water", Color: "blue", Parts: 1}}})
	require.NoError(t, err)
	assert.NotZero(t, water.ID)

	t.Run("recipe round trips as json", func(t *testing.T) {
		got, err := d.FindByID(ctx, water.ID)
		require.NoError(t, err)
		assert.Equal(t, []Ingredient{{Name: "water", Color: "blue", Parts: 1}}, got.Recipe)
	})

	t.Run("duplicate title", func(t *testing.T) {
		_, err := d.Insert(ctx, Drink{Title: "Water", Recipe: []Ingredient{}})
		assert.ErrorIs(t, err, ErrDrinkTitleExists)
	})

	t.Run("patch", func(t *testing.T) {
		patched, err := d.Patch(ctx, water.ID, func(drink *Drink) {
			drink.Title = "Sparkling Water"
		})
		require.NoError(t, err)
		assert.Equal(t, "Sparkling Water", patched.Title)
		assert.Len(t, patched.Recipe, 1)

		_, err = d.Patch(ctx, 999, func(*Drink) {})
		assert.ErrorIs(t, err, ErrDrinkNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, d.Delete(ctx, water.ID))
		assert.ErrorIs(t, d.Delete(ctx, water.ID), ErrDrinkNotFound)

		list, err := d.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestMenuDAO(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := NewMenuDAO(db)

	_, err := d.Insert(ctx, Menu{Title: "Breakfast"})
	require.NoError(t, err)
	_, err = d.Insert(ctx, Menu{Title: "Lunch"})
	require.NoError(t, err)

	menus, err := d.List(ctx)
	require.NoError(t, err)
	require.Len(t, menus, 2)
	assert.Equal(t, "Breakfast", menus[0].Title)
}

func TestUserDAO(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	d := NewUserDAO(db)

	created, err := d.Insert(ctx, User{Email: "barista@example.com", Password: "hash", Name: "Bea", Role: "barista"})
	require.NoError(t, err)

	_, err = d.Insert(ctx, User{Email: "barista@example.com", Password: "hash", Name: "Bea", Role: "barista"})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	found, err := d.FindByEmail(ctx, "barista@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = d.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = d.FindByID(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
