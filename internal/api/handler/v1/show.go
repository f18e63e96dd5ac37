package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsnd-projects/fsnd-api/internal/api/handler/v1/request"
	"github.com/fsnd-projects/fsnd-api/internal/api/handler/v1/response"
	"github.com/fsnd-projects/fsnd-api/internal/service"
)

// HandleGetShows godoc
// @Summary      List every show
// @Tags         fyyur
// @Produce      json
// @Success      200      {array}    response.Show
// @Failure      500      {object}   response.Err
// @Router       /shows [get]
func (h *FyyurHandler) HandleGetShows(ctx *gin.Context) {
	shows, err := h.svc.ListShows(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetShows -> h.svc.ListShows -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewShows(shows))
}

// HandleCreateShow godoc
// @Summary      Book a show
// @Tags         fyyur
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request   body      request.ShowForm true "request body"
// @Success      201      {object}   response.ShowCreatedResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /shows/create [post]
func (h *FyyurHandler) HandleCreateShow(ctx *gin.Context) {
	var form request.ShowForm
	if err := ctx.ShouldBind(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := form.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	show, err := form.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateShow(ctx.Request.Context(), show)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArtistNotFound):
			response.RenderErr(ctx, response.ErrNotFound("artist", "id", show.ArtistID))
		case errors.Is(err, service.ErrVenueNotFound):
			response.RenderErr(ctx, response.ErrNotFound("venue", "id", show.VenueID))
		case errors.Is(err, service.ErrShowReferenceNotFound):
			response.RenderErr(ctx, response.ErrNotFound("artist or venue", "id", fmt.Sprintf("%d/%d", show.ArtistID, show.VenueID)))
		default:
			err = fmt.Errorf("v1.HandleCreateShow -> h.svc.CreateShow -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.ShowCreatedResponse{
		Success: true,
		Message: "Show was successfully listed!",
		Show:    created,
	})
}
