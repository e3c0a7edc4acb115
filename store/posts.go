package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"instagram/models"
)

func (s *Store) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.WithContext(ctx).
		Preload("Media", orderByID).
		Preload("Comments", orderByID).
		Order("id").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// GetPost returns ErrNotFound when id matches no post.
func (s *Store) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var p models.Post
	err := s.db.WithContext(ctx).
		Preload("Media", orderByID).
		Preload("Comments", orderByID).
		First(&p, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// PostExists reports whether a post with id is stored.
func (s *Store) PostExists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count post: %w", err)
	}
	return n > 0, nil
}

func (s *Store) CreatePost(ctx context.Context, p *models.Post) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (s *Store) CreateMedia(ctx context.Context, m *models.Media) error {
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create media: %w", err)
	}
	return nil
}

func (s *Store) CreateComment(ctx context.Context, c *models.Comment) error {
	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// DeletePost removes the post with its media and comments.
func (s *Store) DeletePost(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.Post{}, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Media{}).Error; err != nil {
			return fmt.Errorf("delete media: %w", err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if err := tx.Delete(&models.Post{}, id).Error; err != nil {
			return fmt.Errorf("delete post: %w", err)
		}
		return nil
	})
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
