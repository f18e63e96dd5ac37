package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fsnd-projects/fsnd-api/internal/config"
	"github.com/fsnd-projects/fsnd-api/internal/repository/dao"
)

func newTestServer(t *testing.T) *Server {
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
	_, err = dao.SeedTrivia(context.Background(), db)
	require.NoError(t, err)

	conf := &config.AppConfig{
		API: &config.APIConfig{
			BaseURL:            "localhost:8080",
			Port:               "8080",
			AllowedCORSDomains: []string{"*"},
			JWTSigningKey:      "a-very-long-signing-key",
			JWTIssuer:          "fsnd-api",
			JWTTTL:             time.Hour,
		},
		Gin:      &config.GinConfig{Mode: "test"},
		Postgres: &config.PostgresConfig{},
		Trivia:   &config.TriviaConfig{QuestionsPerPage: 10},
	}

	return NewServer(conf, db)
}

type call struct {
	method string
	path   string
	body   any
	token  string
}

func (s *Server) do(t *testing.T, c call) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var body *bytes.Reader
	if c.body != nil {
		b, err := json.Marshal(c.body)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(c.method, c.path, body)
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	var out map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &out)

	return rec, out
}

func (s *Server) login(t *testing.T, email, role string) string {
	t.Helper()

	rec, _ := s.do(t, call{method: http.MethodPost, path: "/auth/signup", body: map[string]string{
		"email":            email,
		"password":         "password1",
		"confirm_password": "password1",
		"name":             role,
		"role":             role,
	}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, out := s.do(t, call{method: http.MethodPost, path: "/auth/login", body: map[string]string{
		"email":    email,
		"password": "password1",
	}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	return out["token"].(string)
}

func TestServer_Envelopes(t *testing.T) {
	s := newTestServer(t)

	rec, out := s.do(t, call{method: http.MethodGet, path: "/"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", out["status"])

	rec, out = s.do(t, call{method: http.MethodGet, path: "/nowhere"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, float64(404), out["error"])
	assert.Equal(t, "resource not found", out["message"])

	rec, out = s.do(t, call{method: http.MethodPut, path: "/categories"})
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method not allowed", out["message"])

	rec, _ = s.do(t, call{method: http.MethodGet, path: "/capstone/"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello", rec.Body.String())

	rec, _ = s.do(t, call{method: http.MethodGet, path: "/capstone/hi"})
	assert.Equal(t, "hi", rec.Body.String())
}

func TestServer_Trivia(t *testing.T) {
	s := newTestServer(t)

	rec, out := s.do(t, call{method: http.MethodGet, path: "/categories"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(6), out["total_categories"])

	rec, _ = s.do(t, call{method: http.MethodGet, path: "/questions"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(t, call{method: http.MethodGet, path: "/questions?page=0"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, out = s.do(t, call{method: http.MethodPost, path: "/questions", body: map[string]any{
		"question":   "What is the largest planet?",
		"answer":     "Jupiter",
		"category":   1,
		"difficulty": 2,
	}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	createdID := out["created_id"].(float64)
	assert.Equal(t, float64(1), out["total_questions"])

	rec, _ = s.do(t, call{method: http.MethodPost, path: "/questions", body: map[string]any{
		"question": "Orphan?",
		"answer":   "yes",
		"category": 99,
	}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, out = s.do(t, call{method: http.MethodGet, path: "/questions?page=1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, out["questions"], 1)
	assert.Nil(t, out["current_category"])

	rec, out = s.do(t, call{method: http.MethodPost, path: "/questions/search", body: map[string]string{"searchTerm": "PLANET"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), out["total_questions"])

	rec, out = s.do(t, call{method: http.MethodGet, path: "/categories/1/questions"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Science", out["current_category"])

	rec, _ = s.do(t, call{method: http.MethodGet, path: "/categories/42/questions"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, out = s.do(t, call{method: http.MethodPost, path: "/quizzes", body: map[string]any{
		"previous_questions": []any{},
		"quiz_category":      map[string]any{"type": "Science", "id": "1"},
	}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	question := out["question"].(map[string]any)
	assert.Equal(t, createdID, question["id"])

	rec, out = s.do(t, call{method: http.MethodPost, path: "/quizzes", body: map[string]any{
		"previous_questions": []any{createdID},
		"quiz_category":      map[string]any{"id": 1},
	}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["success"])
	assert.Nil(t, out["question"])

	rec, out = s.do(t, call{method: http.MethodGet, path: "/quizzes?category=1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, createdID, out["question"].(map[string]any)["id"])

	rec, _ = s.do(t, call{method: http.MethodPost, path: "/quizzes?category=42"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(t, call{method: http.MethodPost, path: "/quizzes?prevQuestions=1,abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, out = s.do(t, call{method: http.MethodDelete, path: "/questions/1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), out["deleted_question_id"])

	rec, _ = s.do(t, call{method: http.MethodDelete, path: "/questions/1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Fyyur(t *testing.T) {
	s := newTestServer(t)

	rec, out := s.do(t, call{method: http.MethodPost, path: "/venues/create", body: map[string]any{
		"name":    "The Musical Hop",
		"city":    "San Francisco",
		"state":   "CA",
		"address": "1015 Folsom Street",
		"genres":  []string{"Jazz"},
	}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Venue The Musical Hop was successfully listed!", out["message"])

	rec, _ = s.do(t, call{method: http.MethodPost, path: "/artists/create", body: map[string]any{
		"name":   "Guns N Petals",
		"city":   "San Francisco",
		"state":  "CA",
		"genres": []string{"Rock n Roll"},
	}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, _ = s.do(t, call{method: http.MethodPost, path: "/shows/create", body: map[string]any{
		"artist_id":  1,
		"venue_id":   1,
		"start_time": "2035-05-21 21:30:00",
	}})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, _ = s.do(t, call{method: http.MethodPost, path: "/shows/create", body: map[string]any{
		"artist_id":  1,
		"venue_id":   9,
		"start_time": "2035-05-21 21:30:00",
	}})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(t, call{method: http.MethodGet, path: "/venues"})
	require.Equal(t, http.StatusOK, rec.Code)
	var areas []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &areas))
	require.Len(t, areas, 1)
	assert.Equal(t, "San Francisco", areas[0]["city"])

	rec, out = s.do(t, call{method: http.MethodPost, path: "/artists/search", body: map[string]string{"search_term": "petal"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), out["count"])

	rec, out = s.do(t, call{method: http.MethodGet, path: "/venues/1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), out["upcoming_shows_count"])

	rec, _ = s.do(t, call{method: http.MethodGet, path: "/artists/5"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(t, call{method: http.MethodDelete, path: "/venues/1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, call{method: http.MethodGet, path: "/shows"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestServer_Coffee(t *testing.T) {
	s := newTestServer(t)

	manager := s.login(t, "manager@example.com", "manager")
	barista := s.login(t, "barista@example.com", "barista")

	drink := map[string]any{
		"title":  "Water",
		"recipe": map[string]any{"name": "water", "color": "blue", "parts": 1},
	}

	rec, out := s.do(t, call{method: http.MethodPost, path: "/drinks", body: drink})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authorization_header_missing", out["message"])

	rec, out = s.do(t, call{method: http.MethodPost, path: "/drinks", body: drink, token: barista})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "unauthorized", out["message"])

	rec, out = s.do(t, call{method: http.MethodPost, path: "/drinks", body: drink, token: manager})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, out["drinks"], 1)

	rec, _ = s.do(t, call{method: http.MethodPost, path: "/drinks", body: drink, token: manager})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, out = s.do(t, call{method: http.MethodGet, path: "/drinks"})
	require.Equal(t, http.StatusOK, rec.Code)
	short := out["drinks"].([]any)[0].(map[string]any)["recipe"].([]any)[0].(map[string]any)
	assert.NotContains(t, short, "name")

	rec, out = s.do(t, call{method: http.MethodGet, path: "/drinks-detail", token: barista})
	require.Equal(t, http.StatusOK, rec.Code)
	long := out["drinks"].([]any)[0].(map[string]any)["recipe"].([]any)[0].(map[string]any)
	assert.Equal(t, "water", long["name"])

	rec, _ = s.do(t, call{method: http.MethodPatch, path: "/drinks/1", body: map[string]any{}, token: manager})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, out = s.do(t, call{method: http.MethodPatch, path: "/drinks/1", body: map[string]any{"title": "Sparkling"}, token: manager})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Sparkling", out["drinks"].([]any)[0].(map[string]any)["title"])

	rec, _ = s.do(t, call{method: http.MethodPatch, path: "/drinks/9", body: map[string]any{"title": "Ghost"}, token: manager})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, out = s.do(t, call{method: http.MethodDelete, path: "/drinks/1", token: manager})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), out["delete"])

	rec, out = s.do(t, call{method: http.MethodPost, path: "/menus", body: map[string]string{"title": "Summer"}, token: manager})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, out["menus"], 1)

	rec, out = s.do(t, call{method: http.MethodGet, path: "/menus"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, out["menus"], 1)
}

func TestServer_Users(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "user@example.com", "barista")

	rec, _ := s.do(t, call{method: http.MethodGet, path: "/users/1"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, out := s.do(t, call{method: http.MethodGet, path: "/users/1", token: token})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user@example.com", out["email"])
	assert.NotContains(t, out, "password")
}
