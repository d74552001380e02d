package usecase

import (
	"context"
	"fmt"
	"strings"

	"festmap/internal/entity"
	"festmap/internal/repo/persistent"
	"festmap/pkg/logger"

	"github.com/redis/go-redis/v9"
)

type PostUseCase interface {
	ListPosts(limit, offset int, locationID uint) ([]*entity.Post, error)
	GetPost(id uint) (*entity.Post, error)
	CreatePost(locationID uint, content, authorName, imageURL string) (*entity.Post, error)
	DeletePost(id uint) error
}

type postUseCase struct {
	postRepo     persistent.PostRepository
	locationRepo persistent.LocationRepository
	redisClient  *redis.Client
	logger       *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	locationRepo persistent.LocationRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:     postRepo,
		locationRepo: locationRepo,
		redisClient:  redisClient,
		logger:       logger,
	}
}

func (uc *postUseCase) ListPosts(limit, offset int, locationID uint) ([]*entity.Post, error) {
	return uc.postRepo.List(limit, offset, locationID)
}

func (uc *postUseCase) GetPost(id uint) (*entity.Post, error) {
	return uc.postRepo.GetByID(id)
}

func (uc *postUseCase) CreatePost(locationID uint, content, authorName, imageURL string) (*entity.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" || len(content) > entity.PostContentMaxLen {
		return nil, fmt.Errorf("%w: content must be between 1 and %d characters", entity.ErrInvalidArgument, entity.PostContentMaxLen)
	}

	authorName = strings.TrimSpace(authorName)
	if authorName == "" || len(authorName) > entity.AuthorNameMaxLen {
		return nil, fmt.Errorf("%w: author name must be between 1 and %d characters", entity.ErrInvalidArgument, entity.AuthorNameMaxLen)
	}

	exists, err := uc.locationRepo.Exists(locationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		// A bad location reference is a client mistake, not a missing
		// resource: the original contract answers 400 here.
		return nil, fmt.Errorf("%w: location does not exist", entity.ErrInvalidArgument)
	}

	post := &entity.Post{
		LocationID: locationID,
		Content:    content,
		AuthorName: authorName,
		ImageURL:   imageURL,
	}

	return uc.postRepo.Create(post)
}

func (uc *postUseCase) DeletePost(id uint) error {
	if err := uc.postRepo.Delete(id); err != nil {
		return err
	}

	if uc.redisClient != nil {
		key := fmt.Sprintf("post:likes:%d", id)
		if err := uc.redisClient.Del(context.Background(), key).Err(); err != nil {
			uc.logger.Warn("Failed to drop cached like count for post %d: %v", id, err)
		}
	}

	return nil
}
