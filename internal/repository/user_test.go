package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fsnd-projects/fsnd-api/internal/domain"
	"github.com/fsnd-projects/fsnd-api/internal/repository/dao"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dao.InitTables(db))

	return db
}

func TestUserRepository_EmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(dao.NewUserDAO(newTestDB(t)))

	created, err := repo.Create(ctx, domain.User{
		Email:    "  Barista@Example.COM ",
		Password: "hash",
		Name:     "Bea",
		Role:     domain.RoleBarista,
	})
	require.NoError(t, err)
	assert.Equal(t, "barista@example.com", created.Email)

	found, err := repo.FindByEmail(ctx, "BARISTA@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, domain.RoleBarista, found.Role)

	_, err = repo.Create(ctx, domain.User{Email: "barista@EXAMPLE.com", Password: "hash", Name: "Bo", Role: domain.RoleManager})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	_, err = repo.FindByID(ctx, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCoffeeRepository_UpdateDrink(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCoffeeRepository(dao.NewDrinkDAO(db), dao.NewMenuDAO(db))

	drink, err := repo.CreateDrink(ctx, domain.Drink{
		Title:  "Latte",
		Recipe: []domain.Ingredient{{Name: "milk", Color: "white", Parts: 2}},
	})
	require.NoError(t, err)

	title := "Flat White"
	updated, err := repo.UpdateDrink(ctx, drink.ID, &title, nil)
	require.NoError(t, err)
	assert.Equal(t, "Flat White", updated.Title)
	assert.Equal(t, drink.Recipe, updated.Recipe)

	recipe := []domain.Ingredient{{Name: "espresso", Color: "brown", Parts: 1}}
	updated, err = repo.UpdateDrink(ctx, drink.ID, nil, recipe)
	require.NoError(t, err)
	assert.Equal(t, "Flat White", updated.Title)
	assert.Equal(t, recipe, updated.Recipe)

	_, err = repo.UpdateDrink(ctx, drink.ID+1, &title, nil)
	assert.ErrorIs(t, err, ErrDrinkNotFound)
}
