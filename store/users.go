package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"instagram/models"
)

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Preload("Following").
		Preload("Followers").
		Order("id").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser returns ErrNotFound when id matches no user.
func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).
		Preload("Following").
		Preload("Followers").
		First(&u, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// UserExists reports whether a user with id is stored.
func (s *Store) UserExists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count user: %w", err)
	}
	return n > 0, nil
}

// CreateUser inserts u. Duplicate usernames or emails fail on the unique indexes.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// DeleteUser removes the user together with its posts (and their media and
// comments), the comments it wrote and every follow edge touching it.
func (s *Store) DeleteUser(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&models.User{}, id).Error; err != nil {
			return notFound(err)
		}

		posts := tx.Model(&models.Post{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("post_id IN (?)", posts).Delete(&models.Media{}).Error; err != nil {
			return fmt.Errorf("delete media: %w", err)
		}
		if err := tx.Where("post_id IN (?) OR author_id = ?", posts, id).Delete(&models.Comment{}).Error; err != nil {
			return fmt.Errorf("delete comments: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return fmt.Errorf("delete posts: %w", err)
		}
		if err := tx.Where("user_from_id = ? OR user_to_id = ?", id, id).Delete(&models.Follower{}).Error; err != nil {
			return fmt.Errorf("delete follows: %w", err)
		}
		if err := tx.Delete(&models.User{}, id).Error; err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
}
