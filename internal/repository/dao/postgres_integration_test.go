//go:build integration

package dao

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var pgDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not construct pool: %s", err)
	}

	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("could not connect to docker: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_USER=fsnd",
			"POSTGRES_DB=fsnd",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start resource: %s", err)
	}
	_ = resource.Expire(120)

	dsn := fmt.Sprintf("host=localhost port=%s user=fsnd password=secret dbname=fsnd sslmode=disable",
		resource.GetPort("5432/tcp"))

	pool.MaxWait = 60 * time.Second
	if err = pool.Retry(func() error {
		pgDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err != nil {
			return err
		}
		sqlDB, err := pgDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}); err != nil {
		log.Fatalf("could not connect to postgres: %s", err)
	}

	if err = InitTables(pgDB); err != nil {
		log.Fatalf("could not migrate: %s", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Fatalf("could not purge resource: %s", err)
	}

	os.Exit(code)
}

func TestPostgres_UniqueViolations(t *testing.T) {
	ctx := context.Background()

	users := NewUserDAO(pgDB)
	_, err := users.Insert(ctx, User{Email: "pg@example.com", Password: "x", Name: "pg", Role: "manager"})
	require.NoError(t, err)
	_, err = users.Insert(ctx, User{Email: "pg@example.com", Password: "x", Name: "pg", Role: "manager"})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	drinks := NewDrinkDAO(pgDB)
	_, err = drinks.Insert(ctx, Drink{Title: "Matcha", Recipe: []Ingredient{{Name: "matcha", Color: "green", Parts: 1}}})
	require.NoError(t, err)
	_, err = drinks.Insert(ctx, Drink{Title: "Matcha", Recipe: []Ingredient{}})
	assert.ErrorIs(t, err, ErrDrinkTitleExists)
}

func TestPostgres_QuestionForeignKey(t *testing.T) {
	ctx := context.Background()

	_, err := SeedTrivia(ctx, pgDB)
	require.NoError(t, err)

	trivia := NewTriviaDAO(pgDB)
	_, err = trivia.InsertQuestion(ctx, Question{Question: "q", Answer: "a", CategoryID: 4242, Difficulty: 1})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	found, err := trivia.SearchQuestions(ctx, "Q")
	require.NoError(t, err)
	assert.Empty(t, found)
}
