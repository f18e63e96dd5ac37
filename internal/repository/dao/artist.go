package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrArtistNotFound = errors.New("artist not found")
)

type Artist struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"not null"`
	City               string `gorm:"size:120"`
	State              string `gorm:"size:120"`
	Phone              string `gorm:"size:120"`
	Genres             string
	Website            string `gorm:"size:120"`
	ImageLink          string `gorm:"size:500"`
	SeekingVenue       bool   `gorm:"not null;default:false"`
	SeekingDescription string `gorm:"size:500"`
	FacebookLink       string `gorm:"size:120"`
}

type ArtistDAO struct {
	db *gorm.DB
}

func NewArtistDAO(db *gorm.DB) *ArtistDAO {
	return &ArtistDAO{
		db: db,
	}
}

func (d *ArtistDAO) List(ctx context.Context) ([]Artist, error) {
	var artists []Artist

	result := d.db.WithContext(ctx).Order("id").Find(&artists)
	if result.Error != nil {
		return nil, result.Error
	}

	return artists, nil
}

func (d *ArtistDAO) SearchByName(ctx context.Context, term string) ([]Artist, error) {
	var artists []Artist

	result := d.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '\\'", likePattern(term)).
		Order("id").
		Find(&artists)
	if result.Error != nil {
		return nil, result.Error
	}

	return artists, nil
}

func (d *ArtistDAO) FindByID(ctx context.Context, id uint) (Artist, error) {
	var artist Artist

	result := d.db.WithContext(ctx).First(&artist, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Artist{}, ErrArtistNotFound
		}

		return Artist{}, result.Error
	}

	return artist, nil
}

func (d *ArtistDAO) Insert(ctx context.Context, artist Artist) (Artist, error) {
	result := d.db.WithContext(ctx).Create(&artist)
	if result.Error != nil {
		return Artist{}, result.Error
	}

	return artist, nil
}

func (d *ArtistDAO) Update(ctx context.Context, artist Artist) (Artist, error) {
	result := d.db.WithContext(ctx).Model(&Artist{ID: artist.ID}).Select("*").Omit("id").Updates(&artist)
	if result.Error != nil {
		return Artist{}, result.Error
	}

	if result.RowsAffected == 0 {
		return Artist{}, ErrArtistNotFound
	}

	return artist, nil
}

// Delete removes the artist and every show the artist plays.
func (d *ArtistDAO) Delete(ctx context.Context, id uint) error {
	return inTransaction(ctx, d.db, func(tx *gorm.DB) error {
		if err := tx.Where("artist_id = ?", id).Delete(&Show{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Artist{}, id)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return ErrArtistNotFound
		}

		return nil
	})
}
