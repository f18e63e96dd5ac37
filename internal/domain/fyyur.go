package domain

import (
	"strings"
	"time"
)

// ShowTimeLayout is how show start times are rendered on venue, artist and
// show pages.
const ShowTimeLayout = "02/01/2006, 15:04"

type Venue struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	Genres             []string `json:"genres"`
	Website            string   `json:"website"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	FacebookLink       string   `json:"facebook_link"`
}

type Artist struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	Website            string   `json:"website"`
	ImageLink          string   `json:"image_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	FacebookLink       string   `json:"facebook_link"`
}

type Show struct {
	ID        uint      `json:"id"`
	StartTime time.Time `json:"start_time"`
	ArtistID  uint      `json:"artist_id"`
	VenueID   uint      `json:"venue_id"`
}

// ShowListing is a show joined with the names and images of both sides.
type ShowListing struct {
	Show
	ArtistName      string
	ArtistImageLink string
	VenueName       string
	VenueImageLink  string
}

func (s ShowListing) IsUpcoming(now time.Time) bool {
	return s.StartTime.After(now)
}

// SplitShows partitions listings into past and upcoming relative to now,
// keeping the input order inside each half.
func SplitShows(shows []ShowListing, now time.Time) (past, upcoming []ShowListing) {
	past = []ShowListing{}
	upcoming = []ShowListing{}
	for _, s := range shows {
		if s.IsUpcoming(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}

	return past, upcoming
}

// JoinGenres flattens genres into the comma-joined column format.
func JoinGenres(genres []string) string {
	cleaned := make([]string, 0, len(genres))
	for _, g := range genres {
		if g = strings.TrimSpace(g); g != "" {
			cleaned = append(cleaned, g)
		}
	}

	return strings.Join(cleaned, ",")
}

// SplitGenres parses the genres column. Values written by postgres array
// literals ("{Jazz,Folk}") are accepted as well.
func SplitGenres(s string) []string {
	s = strings.Trim(strings.TrimSpace(s), "{}")
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Trim(strings.TrimSpace(p), `"`); p != "" {
			genres = append(genres, p)
		}
	}

	return genres
}

// Area groups venues that share a city and state.
type Area struct {
	City   string
	State  string
	Venues []VenueSummary
}

type VenueSummary struct {
	ID               uint
	Name             string
	NumUpcomingShows int
}

type ArtistSummary struct {
	ID               uint
	Name             string
	NumUpcomingShows int
}

// VenueDetail is a venue together with its shows split around the request time.
type VenueDetail struct {
	Venue
	PastShows     []ShowListing
	UpcomingShows []ShowListing
}

type ArtistDetail struct {
	Artist
	PastShows     []ShowListing
	UpcomingShows []ShowListing
}
