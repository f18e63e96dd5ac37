package response

import (
	"time"

	"github.com/fsnd-projects/fsnd-api/internal/domain"
)

type VenueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

type ArtistSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type VenueSearchResponse struct {
	Count      int            `json:"count"`
	Data       []VenueSummary `json:"data"`
	SearchTerm string         `json:"search_term"`
}

type ArtistSearchResponse struct {
	Count      int             `json:"count"`
	Data       []ArtistSummary `json:"data"`
	SearchTerm string          `json:"search_term"`
}

// VenueShow is a show as listed on a venue page.
type VenueShow struct {
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// ArtistShow is a show as listed on an artist page.
type ArtistShow struct {
	VenueID        uint   `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueDetail struct {
	domain.Venue
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	domain.Artist
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

type Show struct {
	VenueID         uint   `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        uint   `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type VenueSavedResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Venue   domain.Venue `json:"venue"`
}

type ArtistSavedResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Artist  domain.Artist `json:"artist"`
}

type ShowCreatedResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Show    domain.Show `json:"show"`
}

type DeletedResponse struct {
	Success bool `json:"success"`
	Deleted uint `json:"deleted"`
}

func FormatShowTime(t time.Time) string {
	return t.UTC().Format(domain.ShowTimeLayout)
}

func NewAreas(areas []domain.Area) []Area {
	out := make([]Area, len(areas))
	for i, a := range areas {
		out[i] = Area{City: a.City, State: a.State, Venues: NewVenueSummaries(a.Venues)}
	}

	return out
}

func NewVenueSummaries(venues []domain.VenueSummary) []VenueSummary {
	out := make([]VenueSummary, len(venues))
	for i, v := range venues {
		out[i] = VenueSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: v.NumUpcomingShows}
	}

	return out
}

func NewArtistSummaries(artists []domain.ArtistSummary) []ArtistSummary {
	out := make([]ArtistSummary, len(artists))
	for i, a := range artists {
		out[i] = ArtistSummary{ID: a.ID, Name: a.Name, NumUpcomingShows: a.NumUpcomingShows}
	}

	return out
}

func NewVenueDetail(d domain.VenueDetail) VenueDetail {
	return VenueDetail{
		Venue:              d.Venue,
		PastShows:          venueShows(d.PastShows),
		UpcomingShows:      venueShows(d.UpcomingShows),
		PastShowsCount:     len(d.PastShows),
		UpcomingShowsCount: len(d.UpcomingShows),
	}
}

func NewArtistDetail(d domain.ArtistDetail) ArtistDetail {
	return ArtistDetail{
		Artist:             d.Artist,
		PastShows:          artistShows(d.PastShows),
		UpcomingShows:      artistShows(d.UpcomingShows),
		PastShowsCount:     len(d.PastShows),
		UpcomingShowsCount: len(d.UpcomingShows),
	}
}

func NewShows(shows []domain.ShowListing) []Show {
	out := make([]Show, len(shows))
	for i, s := range shows {
		out[i] = Show{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       FormatShowTime(s.StartTime),
		}
	}

	return out
}

func venueShows(shows []domain.ShowListing) []VenueShow {
	out := make([]VenueShow, len(shows))
	for i, s := range shows {
		out[i] = VenueShow{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       FormatShowTime(s.StartTime),
		}
	}

	return out
}

func artistShows(shows []domain.ShowListing) []ArtistShow {
	out := make([]ArtistShow, len(shows))
	for i, s := range shows {
		out[i] = ArtistShow{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      FormatShowTime(s.StartTime),
		}
	}

	return out
}
