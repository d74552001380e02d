package persistent

import (
	"festmap/internal/entity"
	"festmap/internal/model"
)

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:         e.ID,
		LocationID: e.LocationID,
		Content:    e.Content,
		ImageURL:   e.ImageURL,
		AuthorName: e.AuthorName,
		LikesCount: e.LikesCount,
		CreatedAt:  e.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:         e.ID,
		PostID:     e.PostID,
		Content:    e.Content,
		AuthorName: e.AuthorName,
		CreatedAt:  e.CreatedAt,
	}
}
