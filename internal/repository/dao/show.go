package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrShowReferenceNotFound = errors.New("show artist or venue not found")
)

type Show struct {
	ID        uint      `gorm:"primaryKey"`
	StartTime time.Time `gorm:"not null;index"`
	ArtistID  uint      `gorm:"not null;index"`
	Artist    Artist    `gorm:"foreignKey:ArtistID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	VenueID   uint      `gorm:"not null;index"`
	Venue     Venue     `gorm:"foreignKey:VenueID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// UpcomingCount is the number of future shows attached to one artist or venue.
type UpcomingCount struct {
	OwnerID uint
	Count   int
}

type ShowDAO struct {
	db *gorm.DB
}

func NewShowDAO(db *gorm.DB) *ShowDAO {
	return &ShowDAO{
		db: db,
	}
}

func (d *ShowDAO) Insert(ctx context.Context, show Show) (Show, error) {
	err := inTransaction(ctx, d.db, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Artist{}).Where("id = ?", show.ArtistID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrArtistNotFound
		}

		if err := tx.Model(&Venue{}).Where("id = ?", show.VenueID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrVenueNotFound
		}

		return tx.Omit("Artist", "Venue").Create(&show).Error
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return Show{}, ErrShowReferenceNotFound
		}

		return Show{}, err
	}

	return show, nil
}

func (d *ShowDAO) List(ctx context.Context) ([]Show, error) {
	var shows []Show

	result := d.db.WithContext(ctx).Preload("Artist").Preload("Venue").Order("start_time").Order("id").Find(&shows)
	if result.Error != nil {
		return nil, result.Error
	}

	return shows, nil
}

func (d *ShowDAO) ListByVenue(ctx context.Context, venueID uint) ([]Show, error) {
	var shows []Show

	result := d.db.WithContext(ctx).Preload("Artist").
		Where("venue_id = ?", venueID).
		Order("start_time").Order("id").
		Find(&shows)
	if result.Error != nil {
		return nil, result.Error
	}

	return shows, nil
}

func (d *ShowDAO) ListByArtist(ctx context.Context, artistID uint) ([]Show, error) {
	var shows []Show

	result := d.db.WithContext(ctx).Preload("Venue").
		Where("artist_id = ?", artistID).
		Order("start_time").Order("id").
		Find(&shows)
	if result.Error != nil {
		return nil, result.Error
	}

	return shows, nil
}

func (d *ShowDAO) CountUpcomingByVenue(ctx context.Context, after time.Time) ([]UpcomingCount, error) {
	return d.countUpcoming(ctx, "venue_id", after)
}

func (d *ShowDAO) CountUpcomingByArtist(ctx context.Context, after time.Time) ([]UpcomingCount, error) {
	return d.countUpcoming(ctx, "artist_id", after)
}

func (d *ShowDAO) countUpcoming(ctx context.Context, column string, after time.Time) ([]UpcomingCount, error) {
	var counts []UpcomingCount

	result := d.db.WithContext(ctx).Model(&Show{}).
		Select(column+" AS owner_id, COUNT(*) AS count").
		Where("start_time > ?", after).
		Group(column).
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}

	return counts, nil
}
