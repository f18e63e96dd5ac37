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

// HandleGetArtists godoc
// @Summary      List artists
// @Tags         fyyur
// @Produce      json
// @Success      200      {array}    response.ArtistSummary
// @Failure      500      {object}   response.Err
// @Router       /artists [get]
func (h *FyyurHandler) HandleGetArtists(ctx *gin.Context) {
	artists, err := h.svc.ListArtists(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetArtists -> h.svc.ListArtists -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewArtistSummaries(artists))
}

// HandleSearchArtists godoc
// @Summary      Search artists by name
// @Tags         fyyur
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request   body      request.SearchRequest true "request body"
// @Success      200      {object}   response.ArtistSearchResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /artists/search [post]
func (h *FyyurHandler) HandleSearchArtists(ctx *gin.Context) {
	var req request.SearchRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	artists, err := h.svc.SearchArtists(ctx.Request.Context(), req.SearchTerm)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchArtists -> h.svc.SearchArtists -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ArtistSearchResponse{
		Count:      len(artists),
		Data:       response.NewArtistSummaries(artists),
		SearchTerm: req.SearchTerm,
	})
}

// HandleGetArtist godoc
// @Summary      Show an artist with past and upcoming shows
// @Tags         fyyur
// @Produce      json
// @Param        artistID   path      int  true  "artist ID"
// @Success      200      {object}   response.ArtistDetail
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /artists/{artistID} [get]
func (h *FyyurHandler) HandleGetArtist(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "artistID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	detail, err := h.svc.GetArtistDetail(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("artist", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetArtist -> h.svc.GetArtistDetail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewArtistDetail(detail))
}

// HandleCreateArtist godoc
// @Summary      List a new artist
// @Tags         fyyur
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request   body      request.ArtistForm true "request body"
// @Success      201      {object}   response.ArtistSavedResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /artists/create [post]
func (h *FyyurHandler) HandleCreateArtist(ctx *gin.Context) {
	var form request.ArtistForm
	if err := ctx.ShouldBind(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := form.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	artist, err := h.svc.CreateArtist(ctx.Request.Context(), form.ToDomain(0))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateArtist -> h.svc.CreateArtist -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.ArtistSavedResponse{
		Success: true,
		Message: fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
		Artist:  artist,
	})
}

// HandleGetArtistForm godoc
// @Summary      Current values of the artist edit form
// @Tags         fyyur
// @Produce      json
// @Param        artistID   path      int  true  "artist ID"
// @Success      200      {object}   request.ArtistForm
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /artists/{artistID}/edit [get]
func (h *FyyurHandler) HandleGetArtistForm(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "artistID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	artist, err := h.svc.GetArtist(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("artist", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetArtistForm -> h.svc.GetArtist -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, request.ArtistFormFromDomain(artist))
}

// HandleUpdateArtist godoc
// @Summary      Edit an artist
// @Tags         fyyur
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        artistID   path      int  true  "artist ID"
// @Param        request   body      request.ArtistForm true "request body"
// @Success      200      {object}   response.ArtistSavedResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /artists/{artistID}/edit [post]
func (h *FyyurHandler) HandleUpdateArtist(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "artistID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var form request.ArtistForm
	if err := ctx.ShouldBind(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := form.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	artist, err := h.svc.UpdateArtist(ctx.Request.Context(), form.ToDomain(id))
	if err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("artist", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateArtist -> h.svc.UpdateArtist -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ArtistSavedResponse{
		Success: true,
		Message: fmt.Sprintf("Artist %s was successfully updated!", artist.Name),
		Artist:  artist,
	})
}

// HandleDeleteArtist godoc
// @Summary      Delete an artist and their shows
// @Tags         fyyur
// @Produce      json
// @Param        artistID   path      int  true  "artist ID"
// @Success      200      {object}   response.DeletedResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /artists/{artistID} [delete]
func (h *FyyurHandler) HandleDeleteArtist(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "artistID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteArtist(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrArtistNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("artist", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteArtist -> h.svc.DeleteArtist -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DeletedResponse{Success: true, Deleted: id})
}
