package persistent

import (
	"errors"

	"festmap/internal/entity"
	"festmap/internal/model"

	"gorm.io/gorm"
)

type LocationRepository interface {
	List() ([]*entity.Location, error)
	GetByID(id uint) (*entity.Location, error)
	Exists(id uint) (bool, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

type locationRow struct {
	ID          uint
	Name        string
	Latitude    float64
	Longitude   float64
	Description string
	PostCount   int64
}

func (row *locationRow) toEntity() *entity.Location {
	return &entity.Location{
		ID:          row.ID,
		Name:        row.Name,
		Latitude:    row.Latitude,
		Longitude:   row.Longitude,
		Description: row.Description,
		PostCount:   row.PostCount,
	}
}

func (r *locationRepository) List() ([]*entity.Location, error) {
	var rows []locationRow

	err := r.db.Table("locations").
		Select("locations.id, locations.name, locations.latitude, locations.longitude, locations.description, COUNT(posts.id) AS post_count").
		Joins("LEFT JOIN posts ON posts.location_id = locations.id").
		Group("locations.id, locations.name, locations.latitude, locations.longitude, locations.description").
		Order("locations.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	locations := make([]*entity.Location, 0, len(rows))
	for i := range rows {
		locations = append(locations, rows[i].toEntity())
	}

	return locations, nil
}

func (r *locationRepository) GetByID(id uint) (*entity.Location, error) {
	var row locationRow

	res := r.db.Table("locations").
		Select("locations.id, locations.name, locations.latitude, locations.longitude, locations.description, COUNT(posts.id) AS post_count").
		Joins("LEFT JOIN posts ON posts.location_id = locations.id").
		Where("locations.id = ?", id).
		Group("locations.id, locations.name, locations.latitude, locations.longitude, locations.description").
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, entity.ErrNotFound
	}

	return row.toEntity(), nil
}

func (r *locationRepository) Exists(id uint) (bool, error) {
	var m model.LocationModel
	err := r.db.Select("id").First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
