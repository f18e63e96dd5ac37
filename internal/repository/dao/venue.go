package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrVenueNotFound = errors.New("venue not found")
)

type Venue struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"not null"`
	City               string `gorm:"size:120"`
	State              string `gorm:"size:120"`
	Address            string `gorm:"size:120"`
	Phone              string `gorm:"size:120"`
	ImageLink          string `gorm:"size:500"`
	Genres             string
	Website            string `gorm:"size:120"`
	SeekingTalent      bool   `gorm:"not null;default:false"`
	SeekingDescription string `gorm:"size:500"`
	FacebookLink       string `gorm:"size:120"`
}

type VenueDAO struct {
	db *gorm.DB
}

func NewVenueDAO(db *gorm.DB) *VenueDAO {
	return &VenueDAO{
		db: db,
	}
}

func (d *VenueDAO) List(ctx context.Context) ([]Venue, error) {
	var venues []Venue

	result := d.db.WithContext(ctx).Order("state").Order("city").Order("id").Find(&venues)
	if result.Error != nil {
		return nil, result.Error
	}

	return venues, nil
}

func (d *VenueDAO) SearchByName(ctx context.Context, term string) ([]Venue, error) {
	var venues []Venue

	result := d.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '\\'", likePattern(term)).
		Order("id").
		Find(&venues)
	if result.Error != nil {
		return nil, result.Error
	}

	return venues, nil
}

func (d *VenueDAO) FindByID(ctx context.Context, id uint) (Venue, error) {
	var venue Venue

	result := d.db.WithContext(ctx).First(&venue, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Venue{}, ErrVenueNotFound
		}

		return Venue{}, result.Error
	}

	return venue, nil
}

func (d *VenueDAO) Insert(ctx context.Context, venue Venue) (Venue, error) {
	result := d.db.WithContext(ctx).Create(&venue)
	if result.Error != nil {
		return Venue{}, result.Error
	}

	return venue, nil
}

// Update overwrites every column of the venue row, zero values included.
func (d *VenueDAO) Update(ctx context.Context, venue Venue) (Venue, error) {
	result := d.db.WithContext(ctx).Model(&Venue{ID: venue.ID}).Select("*").Omit("id").Updates(&venue)
	if result.Error != nil {
		return Venue{}, result.Error
	}

	if result.RowsAffected == 0 {
		return Venue{}, ErrVenueNotFound
	}

	return venue, nil
}

// Delete removes the venue and every show booked at it.
func (d *VenueDAO) Delete(ctx context.Context, id uint) error {
	return inTransaction(ctx, d.db, func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&Show{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Venue{}, id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrVenueNotFound
		}

		return nil
	})
}
