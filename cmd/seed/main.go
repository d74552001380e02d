package main

import (
	"errors"
	"fmt"

	"festmap/internal/entity"
	"festmap/internal/model"
	"festmap/internal/repo/persistent"
	"festmap/pkg/config"
	"festmap/pkg/database"
	"festmap/pkg/logger"

	"gorm.io/gorm"
)

// Seeds a demo dataset: a few posts spread across the campus locations,
// with comments and likes. Likes go through the repository so the
// denormalized counter stays in step with the like rows.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := database.Migrate(db); err != nil {
		log.Error("Failed to migrate database: %v", err)
		panic(err)
	}

	if err := database.SeedLocations(db); err != nil {
		log.Error("Failed to seed locations: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	var postCount int64
	if err := db.Model(&model.PostModel{}).Count(&postCount).Error; err != nil {
		return fmt.Errorf("failed to count posts: %w", err)
	}
	if postCount > 0 {
		log.Info("Posts already exist, skipping demo seed")
		return nil
	}

	var locations []model.LocationModel
	if err := db.Order("id ASC").Find(&locations).Error; err != nil {
		return fmt.Errorf("failed to load locations: %w", err)
	}
	if len(locations) == 0 {
		return fmt.Errorf("no locations to attach posts to")
	}

	demoPosts := []struct {
		content string
		author  string
	}{
		{"The takoyaki stand here is amazing, ten minute line but worth it", "alice"},
		{"Live band just started on the main stage!", "bob"},
		{"Quiet corner with free coffee, perfect break spot", "charlie"},
		{"Robot demo at 2pm, they let you drive one", "diana"},
		{"Found the best photo spot on campus, golden hour here is unreal", "eve"},
		{"Haunted house queue is already an hour long, go early", "alice"},
	}

	demoComments := []struct {
		content string
		author  string
	}{
		{"Thanks for the tip, heading there now", "bob"},
		{"Can confirm, just tried it", "charlie"},
		{"Is it still going?", "diana"},
	}

	likers := []string{"alice", "bob", "charlie", "diana", "eve"}

	commentRepo := persistent.NewCommentRepository(db)
	likeRepo := persistent.NewLikeRepository(db)

	for i, data := range demoPosts {
		loc := locations[i%len(locations)]
		post := model.PostModel{
			LocationID: loc.ID,
			Content:    data.content,
			AuthorName: data.author,
		}
		if err := db.Create(&post).Error; err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		log.Info("Created post %d at %s", post.ID, loc.Name)

		for j := 0; j <= i%len(demoComments); j++ {
			comment := demoComments[j]
			if comment.author == data.author {
				continue
			}
			_, err := commentRepo.Create(&entity.Comment{
				PostID:     post.ID,
				Content:    comment.content,
				AuthorName: comment.author,
			})
			if err != nil {
				log.Error("Failed to create comment on post %d: %v", post.ID, err)
			}
		}

		for j := 0; j <= i%len(likers); j++ {
			liker := likers[j]
			if liker == data.author {
				continue
			}
			if _, err := likeRepo.AddLike(post.ID, liker); err != nil {
				if errors.Is(err, entity.ErrAlreadyExists) {
					continue
				}
				log.Error("Failed to like post %d as %s: %v", post.ID, liker, err)
			}
		}
	}

	log.Info("Created %d demo posts", len(demoPosts))
	return nil
}
