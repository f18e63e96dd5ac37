package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsnd-projects/fsnd-api/internal/api/handler/v1/request"
	"github.com/fsnd-projects/fsnd-api/internal/api/handler/v1/response"
	"github.com/fsnd-projects/fsnd-api/internal/domain"
	"github.com/fsnd-projects/fsnd-api/internal/service"
)

type TriviaService interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetQuestionsPage(ctx context.Context, page int) (domain.QuestionPage, error)
	CreateQuestion(ctx context.Context, q domain.Question, page int) (domain.Question, domain.QuestionPage, error)
	DeleteQuestion(ctx context.Context, id uint) error
	SearchQuestions(ctx context.Context, term string) ([]domain.Question, error)
	GetQuestionsByCategory(ctx context.Context, categoryID uint) (domain.Category, []domain.Question, error)
}

type TriviaHandler struct {
	svc TriviaService
}

func NewTriviaHandler(svc TriviaService) *TriviaHandler {
	return &TriviaHandler{
		svc: svc,
	}
}

// HandleGetCategories godoc
// @Summary      List trivia categories
// @Tags         trivia
// @Produce      json
// @Success      200      {object}   response.CategoriesResponse
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /categories [get]
func (h *TriviaHandler) HandleGetCategories(ctx *gin.Context) {
	categories, err := h.svc.GetCategories(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoCategories) {
			response.RenderErr(ctx, response.ErrNotFound("category", "id", "any"))
			return
		}

		err = fmt.Errorf("v1.HandleGetCategories -> h.svc.GetCategories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CategoriesResponse{
		Success:         true,
		Categories:      domain.CategoryMap(categories),
		TotalCategories: len(categories),
	})
}

// HandleGetQuestions godoc
// @Summary      List a page of questions
// @Tags         trivia
// @Produce      json
// @Param        page     query     int  false  "1-based page"
// @Success      200      {object}   response.QuestionsResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /questions [get]
func (h *TriviaHandler) HandleGetQuestions(ctx *gin.Context) {
	page, respErr := parsePage(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	result, err := h.svc.GetQuestionsPage(ctx.Request.Context(), page)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("questions page", "number", page))
			return
		}

		err = fmt.Errorf("v1.HandleGetQuestions -> h.svc.GetQuestionsPage -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	categories, err := h.svc.GetCategories(ctx.Request.Context())
	if err != nil && !errors.Is(err, service.ErrNoCategories) {
		err = fmt.Errorf("v1.HandleGetQuestions -> h.svc.GetCategories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.QuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.Total,
		Categories:      domain.CategoryMap(categories),
		CurrentCategory: nil,
	})
}

// HandleDeleteQuestion godoc
// @Summary      Delete a question
// @Tags         trivia
// @Produce      json
// @Param        questionID   path      int  true  "question ID"
// @Success      200      {object}   response.QuestionDeletedResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /questions/{questionID} [delete]
func (h *TriviaHandler) HandleDeleteQuestion(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "questionID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("question", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteQuestion -> h.svc.DeleteQuestion -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.QuestionDeletedResponse{
		Success:           true,
		DeletedQuestionID: id,
	})
}

// HandleCreateQuestion godoc
// @Summary      Create a question
// @Tags         trivia
// @Produce      json
// @Param        request   body      request.CreateQuestionRequest true "request body"
// @Param        page     query     int  false  "page of questions to return"
// @Success      200      {object}   response.QuestionCreatedResponse
// @Failure      400      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /questions [post]
func (h *TriviaHandler) HandleCreateQuestion(ctx *gin.Context) {
	page, respErr := parsePage(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrUnprocessable(err))
		return
	}

	created, result, err := h.svc.CreateQuestion(ctx.Request.Context(), domain.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.CategoryID(),
		Difficulty: req.Difficulty,
	}, page)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrUnprocessable(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateQuestion -> h.svc.CreateQuestion -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.QuestionCreatedResponse{
		Success:        true,
		CreatedID:      created.ID,
		Questions:      result.Questions,
		TotalQuestions: result.Total,
	})
}

// HandleSearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring match on question text. The term comes from ?term or the searchTerm body field.
// @Tags         trivia
// @Produce      json
// @Param        term     query     string  false  "search term"
// @Param        request   body      request.SearchQuestionsRequest false "request body"
// @Success      200      {object}   response.SearchQuestionsResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /questions/search [post]
func (h *TriviaHandler) HandleSearchQuestions(ctx *gin.Context) {
	term, ok := ctx.GetQuery("term")
	if !ok && ctx.Request.ContentLength != 0 {
		var req request.SearchQuestionsRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		term = req.SearchTerm
	}

	questions, err := h.svc.SearchQuestions(ctx.Request.Context(), term)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchQuestions -> h.svc.SearchQuestions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.SearchQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: nil,
	})
}

// HandleGetCategoryQuestions godoc
// @Summary      List the questions of a category
// @Tags         trivia
// @Produce      json
// @Param        categoryID   path      int  true  "category ID"
// @Success      200      {object}   response.CategoryQuestionsResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /categories/{categoryID}/questions [get]
func (h *TriviaHandler) HandleGetCategoryQuestions(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "categoryID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	category, questions, err := h.svc.GetQuestionsByCategory(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetCategoryQuestions -> h.svc.GetQuestionsByCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CategoryQuestionsResponse{
		Success:         true,
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: category.Type,
	})
}
