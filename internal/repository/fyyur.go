package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnd-projects/fsnd-api/internal/domain"
	"github.com/fsnd-projects/fsnd-api/internal/repository/dao"
)

var (
	ErrVenueNotFound         = dao.ErrVenueNotFound
	ErrArtistNotFound        = dao.ErrArtistNotFound
	ErrShowReferenceNotFound = dao.ErrShowReferenceNotFound
)

type VenueDAO interface {
	List(ctx context.Context) ([]dao.Venue, error)
	SearchByName(ctx context.Context, term string) ([]dao.Venue, error)
	FindByID(ctx context.Context, id uint) (dao.Venue, error)
	Insert(ctx context.Context, venue dao.Venue) (dao.Venue, error)
	Update(ctx context.Context, venue dao.Venue) (dao.Venue, error)
	Delete(ctx context.Context, id uint) error
}

type ArtistDAO interface {
	List(ctx context.Context) ([]dao.Artist, error)
	SearchByName(ctx context.Context, term string) ([]dao.Artist, error)
	FindByID(ctx context.Context, id uint) (dao.Artist, error)
	Insert(ctx context.Context, artist dao.Artist) (dao.Artist, error)
	Update(ctx context.Context, artist dao.Artist) (dao.Artist, error)
	Delete(ctx context.Context, id uint) error
}

type ShowDAO interface {
	Insert(ctx context.Context, show dao.Show) (dao.Show, error)
	List(ctx context.Context) ([]dao.Show, error)
	ListByVenue(ctx context.Context, venueID uint) ([]dao.Show, error)
	ListByArtist(ctx context.Context, artistID uint) ([]dao.Show, error)
	CountUpcomingByVenue(ctx context.Context, after time.Time) ([]dao.UpcomingCount, error)
	CountUpcomingByArtist(ctx context.Context, after time.Time) ([]dao.UpcomingCount, error)
}

type FyyurRepository struct {
	venues  VenueDAO
	artists ArtistDAO
	shows   ShowDAO
}

func NewFyyurRepository(venues VenueDAO, artists ArtistDAO, shows ShowDAO) *FyyurRepository {
	return &FyyurRepository{
		venues:  venues,
		artists: artists,
		shows:   shows,
	}
}

func (r *FyyurRepository) ListVenues(ctx context.Context) ([]domain.Venue, error) {
	found, err := r.venues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.venues.List -> %w", err)
	}

	return venuesDaoToDomain(found), nil
}

func (r *FyyurRepository) SearchVenues(ctx context.Context, term string) ([]domain.Venue, error) {
	found, err := r.venues.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("r.venues.SearchByName -> %w", err)
	}

	return venuesDaoToDomain(found), nil
}

func (r *FyyurRepository) FindVenueByID(ctx context.Context, id uint) (domain.Venue, error) {
	found, err := r.venues.FindByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.venues.FindByID -> %w", err)
	}

	return venueDaoToDomain(found), nil
}

func (r *FyyurRepository) CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	created, err := r.venues.Insert(ctx, venueDomainToDao(venue))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.venues.Insert -> %w", err)
	}

	return venueDaoToDomain(created), nil
}

func (r *FyyurRepository) UpdateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	updated, err := r.venues.Update(ctx, venueDomainToDao(venue))
	if err != nil {
		return domain.Venue{}, fmt.Errorf("r.venues.Update -> %w", err)
	}

	return venueDaoToDomain(updated), nil
}

func (r *FyyurRepository) DeleteVenue(ctx context.Context, id uint) error {
	if err := r.venues.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.venues.Delete -> %w", err)
	}

	return nil
}

func (r *FyyurRepository) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	found, err := r.artists.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.artists.List -> %w", err)
	}

	return artistsDaoToDomain(found), nil
}

func (r *FyyurRepository) SearchArtists(ctx context.Context, term string) ([]domain.Artist, error) {
	found, err := r.artists.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("r.artists.SearchByName -> %w", err)
	}

	return artistsDaoToDomain(found), nil
}

func (r *FyyurRepository) FindArtistByID(ctx context.Context, id uint) (domain.Artist, error) {
	found, err := r.artists.FindByID(ctx, id)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("r.artists.FindByID -> %w", err)
	}

	return artistDaoToDomain(found), nil
}

func (r *FyyurRepository) CreateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	created, err := r.artists.Insert(ctx, artistDomainToDao(artist))
	if err != nil {
		return domain.Artist{}, fmt.Errorf("r.artists.Insert -> %w", err)
	}

	return artistDaoToDomain(created), nil
}

func (r *FyyurRepository) UpdateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	updated, err := r.artists.Update(ctx, artistDomainToDao(artist))
	if err != nil {
		return domain.Artist{}, fmt.Errorf("r.artists.Update -> %w", err)
	}

	return artistDaoToDomain(updated), nil
}

func (r *FyyurRepository) DeleteArtist(ctx context.Context, id uint) error {
	if err := r.artists.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.artists.Delete -> %w", err)
	}

	return nil
}

func (r *FyyurRepository) CreateShow(ctx context.Context, show domain.Show) (domain.Show, error) {
	created, err := r.shows.Insert(ctx, dao.Show{
		StartTime: show.StartTime,
		ArtistID:  show.ArtistID,
		VenueID:   show.VenueID,
	})
	if err != nil {
		return domain.Show{}, fmt.Errorf("r.shows.Insert -> %w", err)
	}

	return domain.Show{
		ID:        created.ID,
		StartTime: created.StartTime,
		ArtistID:  created.ArtistID,
		VenueID:   created.VenueID,
	}, nil
}

func (r *FyyurRepository) ListShows(ctx context.Context) ([]domain.ShowListing, error) {
	found, err := r.shows.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.shows.List -> %w", err)
	}

	return showsDaoToDomain(found), nil
}

func (r *FyyurRepository) ListShowsByVenue(ctx context.Context, venueID uint) ([]domain.ShowListing, error) {
	found, err := r.shows.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("r.shows.ListByVenue -> %w", err)
	}

	return showsDaoToDomain(found), nil
}

func (r *FyyurRepository) ListShowsByArtist(ctx context.Context, artistID uint) ([]domain.ShowListing, error) {
	found, err := r.shows.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("r.shows.ListByArtist -> %w", err)
	}

	return showsDaoToDomain(found), nil
}

func (r *FyyurRepository) CountUpcomingShowsByVenue(ctx context.Context, after time.Time) (map[uint]int, error) {
	counts, err := r.shows.CountUpcomingByVenue(ctx, after)
	if err != nil {
		return nil, fmt.Errorf("r.shows.CountUpcomingByVenue -> %w", err)
	}

	return upcomingCountsToMap(counts), nil
}

func (r *FyyurRepository) CountUpcomingShowsByArtist(ctx context.Context, after time.Time) (map[uint]int, error) {
	counts, err := r.shows.CountUpcomingByArtist(ctx, after)
	if err != nil {
		return nil, fmt.Errorf("r.shows.CountUpcomingByArtist -> %w", err)
	}

	return upcomingCountsToMap(counts), nil
}

func upcomingCountsToMap(counts []dao.UpcomingCount) map[uint]int {
	m := make(map[uint]int, len(counts))
	for _, c := range counts {
		m[c.OwnerID] = c.Count
	}

	return m
}

func venueDomainToDao(v domain.Venue) dao.Venue {
	return dao.Venue{
		ID:                 v.ID,
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             domain.JoinGenres(v.Genres),
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		FacebookLink:       v.FacebookLink,
	}
}

func venueDaoToDomain(v dao.Venue) domain.Venue {
	return domain.Venue{
		ID:                 v.ID,
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             domain.SplitGenres(v.Genres),
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		FacebookLink:       v.FacebookLink,
	}
}

func venuesDaoToDomain(found []dao.Venue) []domain.Venue {
	venues := make([]domain.Venue, len(found))
	for i, v := range found {
		venues[i] = venueDaoToDomain(v)
	}

	return venues
}

func artistDomainToDao(a domain.Artist) dao.Artist {
	return dao.Artist{
		ID:                 a.ID,
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             domain.JoinGenres(a.Genres),
		Website:            a.Website,
		ImageLink:          a.ImageLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		FacebookLink:       a.FacebookLink,
	}
}

func artistDaoToDomain(a dao.Artist) domain.Artist {
	return domain.Artist{
		ID:                 a.ID,
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             domain.SplitGenres(a.Genres),
		Website:            a.Website,
		ImageLink:          a.ImageLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		FacebookLink:       a.FacebookLink,
	}
}

func artistsDaoToDomain(found []dao.Artist) []domain.Artist {
	artists := make([]domain.Artist, len(found))
	for i, a := range found {
		artists[i] = artistDaoToDomain(a)
	}

	return artists
}

func showsDaoToDomain(found []dao.Show) []domain.ShowListing {
	shows := make([]domain.ShowListing, len(found))
	for i, s := range found {
		shows[i] = domain.ShowListing{
			Show: domain.Show{
				ID:        s.ID,
				StartTime: s.StartTime,
				ArtistID:  s.ArtistID,
				VenueID:   s.VenueID,
			},
			ArtistName:      s.Artist.Name,
			ArtistImageLink: s.Artist.ImageLink,
			VenueName:       s.Venue.Name,
			VenueImageLink:  s.Venue.ImageLink,
		}
	}

	return shows
}
