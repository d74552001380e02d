package usecase

import (
	"festmap/internal/entity"
	"festmap/internal/repo/persistent"
)

type LocationUseCase interface {
	ListLocations() ([]*entity.Location, error)
	GetLocation(id uint) (*entity.Location, error)
	// PostsAt lists the posts pinned to a location, newest first. An unknown
	// location reads as an empty page.
	PostsAt(locationID uint, limit, offset int) ([]*entity.Post, error)
}

type locationUseCase struct {
	locationRepo persistent.LocationRepository
	postRepo     persistent.PostRepository
}

func NewLocationUseCase(locationRepo persistent.LocationRepository, postRepo persistent.PostRepository) LocationUseCase {
	return &locationUseCase{
		locationRepo: locationRepo,
		postRepo:     postRepo,
	}
}

func (uc *locationUseCase) ListLocations() ([]*entity.Location, error) {
	return uc.locationRepo.List()
}

func (uc *locationUseCase) GetLocation(id uint) (*entity.Location, error) {
	return uc.locationRepo.GetByID(id)
}

func (uc *locationUseCase) PostsAt(locationID uint, limit, offset int) ([]*entity.Post, error) {
	return uc.postRepo.List(limit, offset, locationID)
}
