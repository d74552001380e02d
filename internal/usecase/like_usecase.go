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

type LikeUseCase interface {
	// AddLike records that userIdentifier likes postID and returns the fresh
	// counter value. Re-liking is rejected with entity.ErrAlreadyExists, not
	// silently accepted.
	AddLike(postID uint, userIdentifier string) (int, error)
	// RemoveLike deletes the like and returns the fresh counter value.
	RemoveLike(postID uint, userIdentifier string) (int, error)
	// GetLikeCount is a pure query: row count plus the liking identifiers in
	// like order. A post with no likes (or no post at all) reads as zero.
	GetLikeCount(postID uint) (*entity.LikeSummary, error)
	GetLikedPosts(userIdentifier string, limit, offset int) ([]*entity.LikedPost, error)
}

type likeUseCase struct {
	likeRepo    persistent.LikeRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewLikeUseCase(likeRepo persistent.LikeRepository, redisClient *redis.Client, logger *logger.Logger) LikeUseCase {
	return &likeUseCase{
		likeRepo:    likeRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

func validateUserIdentifier(userIdentifier string) (string, error) {
	id := strings.TrimSpace(userIdentifier)
	if id == "" {
		return "", fmt.Errorf("%w: user identifier is required", entity.ErrInvalidArgument)
	}
	if len(id) > entity.UserIdentifierMaxLen {
		return "", fmt.Errorf("%w: user identifier must be at most %d characters", entity.ErrInvalidArgument, entity.UserIdentifierMaxLen)
	}
	return id, nil
}

func (uc *likeUseCase) AddLike(postID uint, userIdentifier string) (int, error) {
	id, err := validateUserIdentifier(userIdentifier)
	if err != nil {
		return 0, err
	}

	count, err := uc.likeRepo.AddLike(postID, id)
	if err != nil {
		return 0, err
	}

	uc.cacheLikeCount(postID, count)
	return count, nil
}

func (uc *likeUseCase) RemoveLike(postID uint, userIdentifier string) (int, error) {
	id, err := validateUserIdentifier(userIdentifier)
	if err != nil {
		return 0, err
	}

	count, err := uc.likeRepo.RemoveLike(postID, id)
	if err != nil {
		return 0, err
	}

	uc.cacheLikeCount(postID, count)
	return count, nil
}

func (uc *likeUseCase) GetLikeCount(postID uint) (*entity.LikeSummary, error) {
	count, err := uc.likeRepo.CountByPost(postID)
	if err != nil {
		return nil, err
	}

	users, err := uc.likeRepo.LikedUsers(postID)
	if err != nil {
		return nil, err
	}

	uc.cacheLikeCount(postID, int(count))

	return &entity.LikeSummary{
		PostID:     postID,
		LikeCount:  int(count),
		LikedUsers: users,
	}, nil
}

func (uc *likeUseCase) GetLikedPosts(userIdentifier string, limit, offset int) ([]*entity.LikedPost, error) {
	id, err := validateUserIdentifier(userIdentifier)
	if err != nil {
		return nil, err
	}

	return uc.likeRepo.LikedPosts(id, limit, offset)
}

// cacheLikeCount refreshes the read cache with the authoritative count taken
// from the database, never with a relative increment, so the cache cannot
// drift from the stored value.
func (uc *likeUseCase) cacheLikeCount(postID uint, count int) {
	if uc.redisClient == nil {
		return
	}

	key := fmt.Sprintf("post:likes:%d", postID)
	if err := uc.redisClient.Set(context.Background(), key, count, 0).Err(); err != nil {
		uc.logger.Warn("Failed to cache like count for post %d: %v", postID, err)
	}
}
