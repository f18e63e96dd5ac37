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

type QuizService interface {
	NextQuestion(ctx context.Context, categoryID uint, previous []uint) (*domain.Question, error)
}

type QuizHandler struct {
	svc QuizService
}

func NewQuizHandler(svc QuizService) *QuizHandler {
	return &QuizHandler{
		svc: svc,
	}
}

// HandleNextQuestion godoc
// @Summary      Draw the next quiz question
// @Description  Picks a random question of the category that is not among previous_questions. question is null once none is left.
// @Tags         trivia
// @Produce      json
// @Param        request   body      request.QuizRequest false "request body"
// @Param        category       query     int     false  "category id, 0 for all"
// @Param        prevQuestions  query     string  false  "comma separated question ids"
// @Success      200      {object}   response.QuizResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /quizzes [get]
// @Router       /quizzes [post]
func (h *QuizHandler) HandleNextQuestion(ctx *gin.Context) {
	var (
		category uint
		previous []uint
		err      error
	)

	if ctx.Request.ContentLength != 0 {
		var req request.QuizRequest
		if err = ctx.ShouldBindJSON(&req); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		category, previous, err = req.Parse()
	} else {
		category, previous, err = request.ParseQuizQuery(ctx.Query("category"), ctx.Query("prevQuestions"))
	}
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	question, err := h.svc.NextQuestion(ctx.Request.Context(), category, previous)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "id", category))
			return
		}

		err = fmt.Errorf("v1.HandleNextQuestion -> h.svc.NextQuestion -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.QuizResponse{
		Success:  true,
		Question: question,
	})
}
