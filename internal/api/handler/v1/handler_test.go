package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fsnd-projects/fsnd-api/internal/domain"
	"github.com/fsnd-projects/fsnd-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockQuizService struct {
	mock.Mock
}

func (m *mockQuizService) NextQuestion(ctx context.Context, categoryID uint, previous []uint) (*domain.Question, error) {
	args := m.Called(ctx, categoryID, previous)
	q, _ := args.Get(0).(*domain.Question)

	return q, args.Error(1)
}

// samePrevious matches previous IDs, treating nil and empty as equal.
func samePrevious(want []uint) interface{} {
	return mock.MatchedBy(func(got []uint) bool {
		if len(want) == 0 {
			return len(got) == 0
		}

		return assert.ObjectsAreEqual(want, got)
	})
}

func serve(engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	return rec
}

func TestHandleNextQuestion(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		body       string
		category   uint
		previous   []uint
		question   *domain.Question
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "body with string ids",
			target:     "/quizzes",
			body:       `{"previous_questions":["3",4],"quiz_category":{"type":"Art","id":"2"}}`,
			category:   2,
			previous:   []uint{3, 4},
			question:   &domain.Question{ID: 5, Question: "q", Answer: "a", Category: 2, Difficulty: 1},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"question":{"id":5,"question":"q","answer":"a","category":2,"difficulty":1}}`,
		},
		{
			name:       "query exhausted",
			target:     "/quizzes?category=0&prevQuestions=1,2",
			previous:   []uint{1, 2},
			wantStatus: http.StatusOK,
			wantBody:   `{"success":true,"question":null}`,
		},
		{
			name:       "unknown category",
			target:     "/quizzes?category=9",
			category:   9,
			err:        service.ErrCategoryNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "storage failure",
			target:     "/quizzes",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockQuizService{}
			svc.On("NextQuestion", mock.Anything, tt.category, samePrevious(tt.previous)).Return(tt.question, tt.err)

			engine := gin.New()
			engine.POST("/quizzes", NewQuizHandler(svc).HandleNextQuestion)

			rec := serve(engine, http.MethodPost, tt.target, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleNextQuestion_BadInput(t *testing.T) {
	svc := &mockQuizService{}
	engine := gin.New()
	engine.POST("/quizzes", NewQuizHandler(svc).HandleNextQuestion)

	for _, target := range []string{"/quizzes?prevQuestions=1,x", "/quizzes?category=-1"} {
		rec := serve(engine, http.MethodPost, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}

	rec := serve(engine, http.MethodPost, "/quizzes", `{"previous_questions":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.AssertNotCalled(t, "NextQuestion", mock.Anything, mock.Anything, mock.Anything)
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{query: "", want: 1},
		{query: "?page=3", want: 3},
		{query: "?page=0", wantErr: true},
		{query: "?page=two", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ctx.Request = httptest.NewRequest(http.MethodGet, "/questions"+tt.query, nil)

			page, respErr := parsePage(ctx)
			if tt.wantErr {
				require.NotNil(t, respErr)
				assert.Equal(t, http.StatusBadRequest, respErr.HTTPStatusCode)
				return
			}
			require.Nil(t, respErr)
			assert.Equal(t, tt.want, page)
		})
	}
}

func TestParseIDParam(t *testing.T) {
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	ctx.Params = gin.Params{{Key: "drinkID", Value: "12"}}
	id, respErr := parseIDParam(ctx, "drinkID")
	require.Nil(t, respErr)
	assert.Equal(t, uint(12), id)

	for _, v := range []string{"0", "-1", "abc", ""} {
		ctx.Params = gin.Params{{Key: "drinkID", Value: v}}
		_, respErr = parseIDParam(ctx, "drinkID")
		assert.NotNil(t, respErr, v)
	}
}

func TestHandleNextQuestion_GetQueryForm(t *testing.T) {
	svc := &mockQuizService{}
	svc.On("NextQuestion", mock.Anything, uint(3), samePrevious([]uint{7})).Return(nil, nil)

	engine := gin.New()
	h := NewQuizHandler(svc)
	engine.GET("/quizzes", h.HandleNextQuestion)

	rec := serve(engine, http.MethodGet, "/quizzes?category=3&prevQuestions=7", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"success":true,"question":null}`, rec.Body.String())
	svc.AssertExpectations(t)
}
