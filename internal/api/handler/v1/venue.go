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

// HandleGetVenues godoc
// @Summary      List venues grouped by city and state
// @Tags         fyyur
// @Produce      json
// @Success      200      {array}    response.Area
// @Failure      500      {object}   response.Err
// @Router       /venues [get]
func (h *FyyurHandler) HandleGetVenues(ctx *gin.Context) {
	areas, err := h.svc.ListAreas(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetVenues -> h.svc.ListAreas -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewAreas(areas))
}

// HandleSearchVenues godoc
// @Summary      Search venues by name
// @Tags         fyyur
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request   body      request.SearchRequest true "request body"
// @Success      200      {object}   response.VenueSearchResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /venues/search [post]
func (h *FyyurHandler) HandleSearchVenues(ctx *gin.Context) {
	var req request.SearchRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	venues, err := h.svc.SearchVenues(ctx.Request.Context(), req.SearchTerm)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchVenues -> h.svc.SearchVenues -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.VenueSearchResponse{
		Count:      len(venues),
		Data:       response.NewVenueSummaries(venues),
		SearchTerm: req.SearchTerm,
	})
}

// HandleGetVenue godoc
// @Summary      Show a venue with its past and upcoming shows
// @Tags         fyyur
// @Produce      json
// @Param        venueID   path      int  true  "venue ID"
// @Success      200      {object}   response.VenueDetail
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /venues/{venueID} [get]
func (h *FyyurHandler) HandleGetVenue(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "venueID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	detail, err := h.svc.GetVenueDetail(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venue", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetVenue -> h.svc.GetVenueDetail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewVenueDetail(detail))
}

// HandleCreateVenue godoc
// @Summary      List a new venue
// @Tags         fyyur
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request   body      request.VenueForm true "request body"
// @Success      201      {object}   response.VenueSavedResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /venues/create [post]
func (h *FyyurHandler) HandleCreateVenue(ctx *gin.Context) {
	var form request.VenueForm
	if err := ctx.ShouldBind(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := form.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	venue, err := h.svc.CreateVenue(ctx.Request.Context(), form.ToDomain(0))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateVenue -> h.svc.CreateVenue -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.VenueSavedResponse{
		Success: true,
		Message: fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
		Venue:   venue,
	})
}

// HandleGetVenueForm godoc
// @Summary      Current values of the venue edit form
// @Tags         fyyur
// @Produce      json
// @Param        venueID   path      int  true  "venue ID"
// @Success      200      {object}   request.VenueForm
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /venues/{venueID}/edit [get]
func (h *FyyurHandler) HandleGetVenueForm(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "venueID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	venue, err := h.svc.GetVenue(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venue", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetVenueForm -> h.svc.GetVenue -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, request.VenueFormFromDomain(venue))
}

// HandleUpdateVenue godoc
// @Summary      Edit a venue
// @Tags         fyyur
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        venueID   path      int  true  "venue ID"
// @Param        request   body      request.VenueForm true "request body"
// @Success      200      {object}   response.VenueSavedResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /venues/{venueID}/edit [post]
func (h *FyyurHandler) HandleUpdateVenue(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "venueID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var form request.VenueForm
	if err := ctx.ShouldBind(&form); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := form.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	venue, err := h.svc.UpdateVenue(ctx.Request.Context(), form.ToDomain(id))
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venue", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateVenue -> h.svc.UpdateVenue -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.VenueSavedResponse{
		Success: true,
		Message: fmt.Sprintf("Venue %s was successfully updated!", venue.Name),
		Venue:   venue,
	})
}

// HandleDeleteVenue godoc
// @Summary      Delete a venue and its shows
// @Tags         fyyur
// @Produce      json
// @Param        venueID   path      int  true  "venue ID"
// @Success      200      {object}   response.DeletedResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /venues/{venueID} [delete]
func (h *FyyurHandler) HandleDeleteVenue(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "venueID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteVenue(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venue", "id", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteVenue -> h.svc.DeleteVenue -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DeletedResponse{Success: true, Deleted: id})
}
