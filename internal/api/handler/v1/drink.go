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

type CoffeeService interface {
	ListDrinks(ctx context.Context) ([]domain.Drink, error)
	CreateDrink(ctx context.Context, drink domain.Drink) (domain.Drink, error)
	UpdateDrink(ctx context.Context, id uint, title *string, recipe []domain.Ingredient) (domain.Drink, error)
	DeleteDrink(ctx context.Context, id uint) error
	ListMenus(ctx context.Context) ([]domain.Menu, error)
	CreateMenu(ctx context.Context, menu domain.Menu) ([]domain.Menu, error)
}

type CoffeeHandler struct {
	svc CoffeeService
}

func NewCoffeeHandler(svc CoffeeService) *CoffeeHandler {
	return &CoffeeHandler{
		svc: svc,
	}
}

// HandleGetDrinks godoc
// @Summary      List drinks with ingredient names hidden
// @Tags         coffee
// @Produce      json
// @Success      200      {object}   response.ShortDrinksResponse
// @Failure      500      {object}   response.Err
// @Router       /drinks [get]
func (h *CoffeeHandler) HandleGetDrinks(ctx *gin.Context) {
	drinks, err := h.svc.ListDrinks(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDrinks -> h.svc.ListDrinks -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ShortDrinksResponse{
		Success: true,
		Drinks:  response.NewShortDrinks(drinks),
	})
}

// HandleGetDrinksDetail godoc
// @Summary      List drinks with full recipes
// @Tags         coffee
// @Produce      json
// @Success      200      {object}   response.DrinksResponse
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /drinks-detail [get]
// @Security BearerAuth
func (h *CoffeeHandler) HandleGetDrinksDetail(ctx *gin.Context) {
	drinks, err := h.svc.ListDrinks(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetDrinksDetail -> h.svc.ListDrinks -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DrinksResponse{
		Success: true,
		Drinks:  drinks,
	})
}

// HandleCreateDrink godoc
// @Summary      Create a drink
// @Tags         coffee
// @Produce      json
// @Param        request   body      request.CreateDrinkRequest true "request body"
// @Success      200      {object}   response.DrinksResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /drinks [post]
// @Security BearerAuth
func (h *CoffeeHandler) HandleCreateDrink(ctx *gin.Context) {
	var req request.CreateDrinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrUnprocessable(err))
		return
	}

	drink, err := h.svc.CreateDrink(ctx.Request.Context(), domain.Drink{
		Title:  req.Title,
		Recipe: req.Recipe,
	})
	if err != nil {
		if errors.Is(err, service.ErrDrinkTitleExists) {
			response.RenderErr(ctx, response.ErrUnprocessable(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateDrink -> h.svc.CreateDrink -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DrinksResponse{
		Success: true,
		Drinks:  []domain.Drink{drink},
	})
}

// HandleUpdateDrink godoc
// @Summary      Update the title and/or recipe of a drink
// @Tags         coffee
// @Produce      json
// @Param        drinkID   path      int  true  "drink ID"
// @Param        request   body      request.UpdateDrinkRequest true "request body"
// @Success      200      {object}   response.DrinksResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /drinks/{drinkID} [patch]
// @Security BearerAuth
func (h *CoffeeHandler) HandleUpdateDrink(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "drinkID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateDrinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrUnprocessable(err))
		return
	}

	drink, err := h.svc.UpdateDrink(ctx.Request.Context(), id, req.Title, req.RecipeOrNil())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNothingToUpdate), errors.Is(err, service.ErrDrinkTitleExists):
			response.RenderErr(ctx, response.ErrUnprocessable(err))
		case errors.Is(err, service.ErrDrinkNotFound):
			response.RenderErr(ctx, response.ErrNotFound("drink", "id", id))
		default:
			err = fmt.Errorf("v1.HandleUpdateDrink -> h.svc.UpdateDrink -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.DrinksResponse{
		Success: true,
		Drinks:  []domain.Drink{drink},
	})
}

// HandleDeleteDrink godoc
// @Summary      Delete a drink
// @Tags         coffee
// @Produce      json
// @Param        drinkID   path      int  true  "drink ID"
// @Success      200      {object}   response.DrinkDeletedResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /drinks/{drinkID} [delete]
// @Security BearerAuth
func (h *CoffeeHandler) HandleDeleteDrink(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "drinkID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteDrink(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDrinkNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("drink", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteDrink -> h.svc.DeleteDrink -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DrinkDeletedResponse{
		Success: true,
		Delete:  id,
	})
}
