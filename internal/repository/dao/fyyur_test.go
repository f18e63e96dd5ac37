package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueArtistShowDAO(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	venues := NewVenueDAO(db)
	artists := NewArtistDAO(db)
	shows := NewShowDAO(db)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	hop, err := venues.Insert(ctx, Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: "Jazz,Reggae"})
	require.NoError(t, err)
	dueling, err := venues.Insert(ctx, Venue{Name: "The Dueling Pianos Bar", City: "New York", State: "NY", Genres: "Classical"})
	require.NoError(t, err)
	guns, err := artists.Insert(ctx, Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA", Genres: "Rock n Roll"})
	require.NoError(t, err)
	quevedo, err := artists.Insert(ctx, Artist{Name: "Matt Quevedo", City: "New York", State: "NY", Genres: "Jazz"})
	require.NoError(t, err)

	_, err = shows.Insert(ctx, Show{ArtistID: guns.ID, VenueID: hop.ID, StartTime: now.Add(-48 * time.Hour)})
	require.NoError(t, err)
	_, err = shows.Insert(ctx, Show{ArtistID: guns.ID, VenueID: hop.ID, StartTime: now.Add(48 * time.Hour)})
	require.NoError(t, err)
	_, err = shows.Insert(ctx, Show{ArtistID: quevedo.ID, VenueID: dueling.ID, StartTime: now.Add(24 * time.Hour)})
	require.NoError(t, err)

	t.Run("venues ordered by state then city", func(t *testing.T) {
		list, err := venues.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "CA", list[0].State)
		assert.Equal(t, "NY", list[1].State)
	})

	t.Run("search by name", func(t *testing.T) {
		found, err := venues.SearchByName(ctx, "hop")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, hop.ID, found[0].ID)

		foundArtists, err := artists.SearchByName(ctx, "A")
		require.NoError(t, err)
		assert.Len(t, foundArtists, 2)
	})

	t.Run("show insert checks references", func(t *testing.T) {
		_, err := shows.Insert(ctx, Show{ArtistID: 999, VenueID: hop.ID, StartTime: now})
		assert.ErrorIs(t, err, ErrArtistNotFound)

		_, err = shows.Insert(ctx, Show{ArtistID: guns.ID, VenueID: 999, StartTime: now})
		assert.ErrorIs(t, err, ErrVenueNotFound)
	})

	t.Run("show listings preload both sides", func(t *testing.T) {
		all, err := shows.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Guns N Petals", all[0].Artist.Name)
		assert.Equal(t, "The Musical Hop", all[0].Venue.Name)

		atHop, err := shows.ListByVenue(ctx, hop.ID)
		require.NoError(t, err)
		assert.Len(t, atHop, 2)

		byQuevedo, err := shows.ListByArtist(ctx, quevedo.ID)
		require.NoError(t, err)
		require.Len(t, byQuevedo, 1)
		assert.Equal(t, "The Dueling Pianos Bar", byQuevedo[0].Venue.Name)
	})

	t.Run("upcoming counts", func(t *testing.T) {
		counts, err := shows.CountUpcomingByVenue(ctx, now)
		require.NoError(t, err)
		assert.ElementsMatch(t, []UpcomingCount{{OwnerID: hop.ID, Count: 1}, {OwnerID: dueling.ID, Count: 1}}, counts)

		counts, err = shows.CountUpcomingByArtist(ctx, now)
		require.NoError(t, err)
		assert.ElementsMatch(t, []UpcomingCount{{OwnerID: guns.ID, Count: 1}, {OwnerID: quevedo.ID, Count: 1}}, counts)
	})

	t.Run("update overwrites zero values", func(t *testing.T) {
		hop.SeekingTalent = true
		hop.SeekingDescription = "Looking for jazz"
		_, err := venues.Update(ctx, hop)
		require.NoError(t, err)

		hop.SeekingTalent = false
		hop.SeekingDescription = ""
		_, err = venues.Update(ctx, hop)
		require.NoError(t, err)

		got, err := venues.FindByID(ctx, hop.ID)
		require.NoError(t, err)
		assert.False(t, got.SeekingTalent)
		assert.Empty(t, got.SeekingDescription)

		_, err = artists.Update(ctx, Artist{ID: 999, Name: "ghost"})
		assert.ErrorIs(t, err, ErrArtistNotFound)
	})

	t.Run("delete removes shows", func(t *testing.T) {
		require.NoError(t, venues.Delete(ctx, hop.ID))

		_, err := venues.FindByID(ctx, hop.ID)
		assert.ErrorIs(t, err, ErrVenueNotFound)

		all, err := shows.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		assert.ErrorIs(t, venues.Delete(ctx, hop.ID), ErrVenueNotFound)

		require.NoError(t, artists.Delete(ctx, quevedo.ID))
		all, err = shows.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
