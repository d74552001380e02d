package usecase

import (
	"fmt"
	"strings"

	"festmap/internal/entity"
	"festmap/internal/repo/persistent"
	"festmap/pkg/logger"
)

type CommentUseCase interface {
	ListByPost(postID uint, limit, offset int) ([]*entity.Comment, error)
	CreateComment(postID uint, content, authorName string) (*entity.Comment, error)
	GetComment(id uint) (*entity.Comment, error)
	// DeleteComment removes the comment and reports which post it belonged to.
	DeleteComment(id uint) (postID uint, err error)
	CountByPost(postID uint) (int64, error)
	ListByAuthor(authorName string, limit, offset int) ([]*entity.Comment, error)
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) ListByPost(postID uint, limit, offset int) ([]*entity.Comment, error) {
	return uc.commentRepo.ListByPost(postID, limit, offset)
}

func (uc *commentUseCase) CreateComment(postID uint, content, authorName string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" || len(content) > entity.CommentContentMaxLen {
		return nil, fmt.Errorf("%w: content must be between 1 and %d characters", entity.ErrInvalidArgument, entity.CommentContentMaxLen)
	}

	authorName = strings.TrimSpace(authorName)
	if authorName == "" || len(authorName) > entity.AuthorNameMaxLen {
		return nil, fmt.Errorf("%w: author name must be between 1 and %d characters", entity.ErrInvalidArgument, entity.AuthorNameMaxLen)
	}

	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: post does not exist", entity.ErrNotFound)
	}

	comment := &entity.Comment{
		PostID:     postID,
		Content:    content,
		AuthorName: authorName,
	}

	return uc.commentRepo.Create(comment)
}

func (uc *commentUseCase) GetComment(id uint) (*entity.Comment, error) {
	return uc.commentRepo.GetByID(id)
}

func (uc *commentUseCase) DeleteComment(id uint) (uint, error) {
	return uc.commentRepo.Delete(id)
}

func (uc *commentUseCase) CountByPost(postID uint) (int64, error) {
	return uc.commentRepo.CountByPost(postID)
}

func (uc *commentUseCase) ListByAuthor(authorName string, limit, offset int) ([]*entity.Comment, error) {
	authorName = strings.TrimSpace(authorName)
	if authorName == "" {
		return nil, fmt.Errorf("%w: author name is required", entity.ErrInvalidArgument)
	}

	return uc.commentRepo.ListByAuthor(authorName, limit, offset)
}
