package request

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/fsnd-projects/fsnd-api/internal/domain"
)

// States are the choices of the state select on the venue and artist forms.
var States = []interface{}{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI", "ID", "IL", "IN",
	"IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI", "SC", "SD", "TN", "TX", "UT",
	"VT", "VA", "WA", "WV", "WI", "WY",
}

// Genres are the choices of the genres multi-select.
var Genres = []interface{}{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk", "Funk", "Hip-Hop",
	"Heavy Metal", "Instrumental", "Jazz", "Musical Theatre", "Pop", "Punk", "R&B", "Reggae",
	"Rock n Roll", "Soul", "Other",
}

var (
	phoneExp = regexp.MustCompile(`^\(?[0-9]{3}\)?[-. ]?[0-9]{3}[-. ]?[0-9]{4}$`)

	errInvalidShowTime = errors.New("must be a date time like 2006-01-02 15:04:05")
)

type SearchRequest struct {
	SearchTerm string `form:"search_term" json:"search_term"`
}

type VenueForm struct {
	Name               string   `form:"name" json:"name"`
	City               string   `form:"city" json:"city"`
	State              string   `form:"state" json:"state"`
	Address            string   `form:"address" json:"address"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	Genres             []string `form:"genres" json:"genres"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	Website            string   `form:"website" json:"website"`
	SeekingTalent      bool     `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f *VenueForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&f.City, validation.Required, validation.Length(1, 120)),
		validation.Field(&f.State, validation.Required, validation.In(States...)),
		validation.Field(&f.Address, validation.Required, validation.Length(1, 120)),
		validation.Field(&f.Phone, validation.Match(phoneExp)),
		validation.Field(&f.ImageLink, is.URL, validation.Length(0, 500)),
		validation.Field(&f.Genres, validation.By(validGenres)),
		validation.Field(&f.FacebookLink, is.URL),
		validation.Field(&f.Website, is.URL),
		validation.Field(&f.SeekingDescription, validation.Length(0, 500)),
	)
}

func (f *VenueForm) ToDomain(id uint) domain.Venue {
	return domain.Venue{
		ID:                 id,
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              f.State,
		Address:            strings.TrimSpace(f.Address),
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Genres:             f.Genres,
		Website:            f.Website,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
		FacebookLink:       f.FacebookLink,
	}
}

func VenueFormFromDomain(v domain.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             v.Genres,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

type ArtistForm struct {
	Name               string   `form:"name" json:"name"`
	City               string   `form:"city" json:"city"`
	State              string   `form:"state" json:"state"`
	Phone              string   `form:"phone" json:"phone"`
	ImageLink          string   `form:"image_link" json:"image_link"`
	Genres             []string `form:"genres" json:"genres"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link"`
	Website            string   `form:"website" json:"website"`
	SeekingVenue       bool     `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description"`
}

func (f *ArtistForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&f.City, validation.Required, validation.Length(1, 120)),
		validation.Field(&f.State, validation.Required, validation.In(States...)),
		validation.Field(&f.Phone, validation.Match(phoneExp)),
		validation.Field(&f.ImageLink, is.URL, validation.Length(0, 500)),
		validation.Field(&f.Genres, validation.Required, validation.By(validGenres)),
		validation.Field(&f.FacebookLink, is.URL),
		validation.Field(&f.Website, is.URL),
		validation.Field(&f.SeekingDescription, validation.Length(0, 500)),
	)
}

func (f *ArtistForm) ToDomain(id uint) domain.Artist {
	return domain.Artist{
		ID:                 id,
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres,
		Website:            f.Website,
		ImageLink:          f.ImageLink,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
		FacebookLink:       f.FacebookLink,
	}
}

func ArtistFormFromDomain(a domain.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             a.Genres,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

// ShowTimeLayouts are accepted for start_time, most specific first.
var ShowTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

type ShowForm struct {
	ArtistID  uint   `form:"artist_id" json:"artist_id"`
	VenueID   uint   `form:"venue_id" json:"venue_id"`
	StartTime string `form:"start_time" json:"start_time"`
}

func (f *ShowForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.ArtistID, validation.Required),
		validation.Field(&f.VenueID, validation.Required),
		validation.Field(&f.StartTime, validation.Required, validation.By(func(value interface{}) error {
			_, err := parseShowTime(value.(string))
			return err
		})),
	)
}

// ToDomain converts the form into a show. Times without a zone are UTC.
func (f *ShowForm) ToDomain() (domain.Show, error) {
	start, err := parseShowTime(f.StartTime)
	if err != nil {
		return domain.Show{}, err
	}

	return domain.Show{ArtistID: f.ArtistID, VenueID: f.VenueID, StartTime: start.UTC()}, nil
}

func parseShowTime(s string) (time.Time, error) {
	var err error
	for _, layout := range ShowTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errInvalidShowTime
}

func validGenres(value interface{}) error {
	genres, _ := value.([]string)
	for _, g := range genres {
		if err := validation.Validate(g, validation.In(Genres...)); err != nil {
			return fmt.Errorf("%q %v", g, err)
		}
	}

	return nil
}
