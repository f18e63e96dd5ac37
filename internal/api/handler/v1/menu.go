package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsnd-projects/fsnd-api/internal/api/handler/v1/request"
	"github.com/fsnd-projects/fsnd-api/internal/api/handler/v1/response"
	"github.com/fsnd-projects/fsnd-api/internal/domain"
)

// HandleGetMenus godoc
// @Summary      List menus
// @Tags         coffee
// @Produce      json
// @Success      200      {object}   response.MenusResponse
// @Failure      500      {object}   response.Err
// @Router       /menus [get]
func (h *CoffeeHandler) HandleGetMenus(ctx *gin.Context) {
	menus, err := h.svc.ListMenus(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMenus -> h.svc.ListMenus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MenusResponse{Success: true, Menus: menus})
}

// HandleCreateMenu godoc
// @Summary      Create a menu
// @Tags         coffee
// @Produce      json
// @Param        request   body      request.CreateMenuRequest true "request body"
// @Success      200      {object}   response.MenusResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /menus [post]
// @Security BearerAuth
func (h *CoffeeHandler) HandleCreateMenu(ctx *gin.Context) {
	var req request.CreateMenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrUnprocessable(err))
		return
	}

	menus, err := h.svc.CreateMenu(ctx.Request.Context(), domain.Menu{Title: req.Title})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateMenu -> h.svc.CreateMenu -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.MenusResponse{Success: true, Menus: menus})
}
