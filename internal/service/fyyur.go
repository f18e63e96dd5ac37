package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnd-projects/fsnd-api/internal/domain"
	"github.com/fsnd-projects/fsnd-api/internal/repository"
)

var (
	ErrVenueNotFound  = repository.ErrVenueNotFound
	ErrArtistNotFound = repository.ErrArtistNotFound

	ErrShowReferenceNotFound = repository.ErrShowReferenceNotFound
)

type FyyurRepository interface {
	ListVenues(ctx context.Context) ([]domain.Venue, error)
	SearchVenues(ctx context.Context, term string) ([]domain.Venue, error)
	FindVenueByID(ctx context.Context, id uint) (domain.Venue, error)
	CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	UpdateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	DeleteVenue(ctx context.Context, id uint) error

	ListArtists(ctx context.Context) ([]domain.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]domain.Artist, error)
	FindArtistByID(ctx context.Context, id uint) (domain.Artist, error)
	CreateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	UpdateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error)
	DeleteArtist(ctx context.Context, id uint) error

	CreateShow(ctx context.Context, show domain.Show) (domain.Show, error)
	ListShows(ctx context.Context) ([]domain.ShowListing, error)
	ListShowsByVenue(ctx context.Context, venueID uint) ([]domain.ShowListing, error)
	ListShowsByArtist(ctx context.Context, artistID uint) ([]domain.ShowListing, error)
	CountUpcomingShowsByVenue(ctx context.Context, after time.Time) (map[uint]int, error)
	CountUpcomingShowsByArtist(ctx context.Context, after time.Time) (map[uint]int, error)
}

type FyyurService struct {
	repo FyyurRepository
	now  func() time.Time
}

func NewFyyurService(repo FyyurRepository) *FyyurService {
	return &FyyurService{
		repo: repo,
		now:  time.Now,
	}
}

// ListAreas groups venues by city and state. Venues arrive ordered by state
// and city so each area is a contiguous run.
func (s *FyyurService) ListAreas(ctx context.Context) ([]domain.Area, error) {
	venues, err := s.repo.ListVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListVenues -> %w", err)
	}

	counts, err := s.repo.CountUpcomingShowsByVenue(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("s.repo.CountUpcomingShowsByVenue -> %w", err)
	}

	areas := []domain.Area{}
	for _, v := range venues {
		n := len(areas)
		if n == 0 || areas[n-1].City != v.City || areas[n-1].State != v.State {
			areas = append(areas, domain.Area{City: v.City, State: v.State})
			n++
		}
		areas[n-1].Venues = append(areas[n-1].Venues, domain.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}

	return areas, nil
}

func (s *FyyurService) SearchVenues(ctx context.Context, term string) ([]domain.VenueSummary, error) {
	venues, err := s.repo.SearchVenues(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("s.repo.SearchVenues -> %w", err)
	}

	counts, err := s.repo.CountUpcomingShowsByVenue(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("s.repo.CountUpcomingShowsByVenue -> %w", err)
	}

	summaries := make([]domain.VenueSummary, len(venues))
	for i, v := range venues {
		summaries[i] = domain.VenueSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]}
	}

	return summaries, nil
}

func (s *FyyurService) GetVenue(ctx context.Context, id uint) (domain.Venue, error) {
	venue, err := s.repo.FindVenueByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.FindVenueByID -> %w", err)
	}

	return venue, nil
}

func (s *FyyurService) GetVenueDetail(ctx context.Context, id uint) (domain.VenueDetail, error) {
	venue, err := s.GetVenue(ctx, id)
	if err != nil {
		return domain.VenueDetail{}, err
	}

	shows, err := s.repo.ListShowsByVenue(ctx, id)
	if err != nil {
		return domain.VenueDetail{}, fmt.Errorf("s.repo.ListShowsByVenue -> %w", err)
	}

	past, upcoming := domain.SplitShows(shows, s.now())

	return domain.VenueDetail{Venue: venue, PastShows: past, UpcomingShows: upcoming}, nil
}

func (s *FyyurService) CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	if !venue.SeekingTalent {
		venue.SeekingDescription = ""
	}

	created, err := s.repo.CreateVenue(ctx, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.CreateVenue -> %w", err)
	}

	return created, nil
}

func (s *FyyurService) UpdateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	if !venue.SeekingTalent {
		venue.SeekingDescription = ""
	}

	updated, err := s.repo.UpdateVenue(ctx, venue)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.repo.UpdateVenue -> %w", err)
	}

	return updated, nil
}

func (s *FyyurService) DeleteVenue(ctx context.Context, id uint) error {
	if err := s.repo.DeleteVenue(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteVenue -> %w", err)
	}

	return nil
}

func (s *FyyurService) ListArtists(ctx context.Context) ([]domain.ArtistSummary, error) {
	artists, err := s.repo.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListArtists -> %w", err)
	}

	return s.artistSummaries(ctx, artists)
}

func (s *FyyurService) SearchArtists(ctx context.Context, term string) ([]domain.ArtistSummary, error) {
	artists, err := s.repo.SearchArtists(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("s.repo.SearchArtists -> %w", err)
	}

	return s.artistSummaries(ctx, artists)
}

func (s *FyyurService) artistSummaries(ctx context.Context, artists []domain.Artist) ([]domain.ArtistSummary, error) {
	counts, err := s.repo.CountUpcomingShowsByArtist(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("s.repo.CountUpcomingShowsByArtist -> %w", err)
	}

	summaries := make([]domain.ArtistSummary, len(artists))
	for i, a := range artists {
		summaries[i] = domain.ArtistSummary{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]}
	}

	return summaries, nil
}

func (s *FyyurService) GetArtist(ctx context.Context, id uint) (domain.Artist, error) {
	artist, err := s.repo.FindArtistByID(ctx, id)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("s.repo.FindArtistByID -> %w", err)
	}

	return artist, nil
}

func (s *FyyurService) GetArtistDetail(ctx context.Context, id uint) (domain.ArtistDetail, error) {
	artist, err := s.GetArtist(ctx, id)
	if err != nil {
		return domain.ArtistDetail{}, err
	}

	shows, err := s.repo.ListShowsByArtist(ctx, id)
	if err != nil {
		return domain.ArtistDetail{}, fmt.Errorf("s.repo.ListShowsByArtist -> %w", err)
	}

	past, upcoming := domain.SplitShows(shows, s.now())

	return domain.ArtistDetail{Artist: artist, PastShows: past, UpcomingShows: upcoming}, nil
}

func (s *FyyurService) CreateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	if !artist.SeekingVenue {
		artist.SeekingDescription = ""
	}

	created, err := s.repo.CreateArtist(ctx, artist)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("s.repo.CreateArtist -> %w", err)
	}

	return created, nil
}

func (s *FyyurService) UpdateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	if !artist.SeekingVenue {
		artist.SeekingDescription = ""
	}

	updated, err := s.repo.UpdateArtist(ctx, artist)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("s.repo.UpdateArtist -> %w", err)
	}

	return updated, nil
}

func (s *FyyurService) DeleteArtist(ctx context.Context, id uint) error {
	if err := s.repo.DeleteArtist(ctx, id); err != nil {
		return fmt.Errorf("s.repo.DeleteArtist -> %w", err)
	}

	return nil
}

func (s *FyyurService) ListShows(ctx context.Context) ([]domain.ShowListing, error) {
	shows, err := s.repo.ListShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListShows -> %w", err)
	}

	return shows, nil
}

func (s *FyyurService) CreateShow(ctx context.Context, show domain.Show) (domain.Show, error) {
	show.StartTime = show.StartTime.UTC()

	created, err := s.repo.CreateShow(ctx, show)
	if err != nil {
		return domain.Show{}, fmt.Errorf("s.repo.CreateShow -> %w", err)
	}

	return created, nil
}
