package v1

import (
	"context"

	"github.com/fsnd-projects/fsnd-api/internal/domain"
)

type FyyurService interface {
	ListAreas(ctx context.Context) ([]domain.Area, error)
	SearchVenues(ctx context.Context, term string) ([]domain.VenueSummary, error)
	GetVenue(ctx context.Context, id uint) (domain.Venue, error)
	GetVenueDetail(ctx context.Context, id uint) (domain.VenueDetail, error)
	CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	UpdateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	DeleteVenue(ctx context.Context, id uint) error

	ListArtists(ctx context.Context) ([]domain.ArtistSummary, error)
	SearchArtists(ctx context.Context, term string) ([]domain.ArtistSummary, error)
	GetArtist(ctx context.Context, id uint) (domain.Artist, error)
	GetArtistDetail(ctx context.Context, id uint) (domain.ArtistDetail, error)
	CreateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	UpdateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	DeleteArtist(ctx context.Context, id uint) error

	ListShows(ctx context.Context) ([]domain.ShowListing, error)
	CreateShow(ctx context.Context, show domain.Show) (domain.Show, error)
}

// FyyurHandler serves the venue, artist and show pages as JSON.
type FyyurHandler struct {
	svc FyyurService
}

func NewFyyurHandler(svc FyyurService) *FyyurHandler {
	return &FyyurHandler{
		svc: svc,
	}
}
