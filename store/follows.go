package store

import (
	"context"
	"fmt"

	"instagram/models"
)

// GetFollow returns the edge from -> to, or ErrNotFound.
func (s *Store) GetFollow(ctx context.Context, from, to uint) (*models.Follower, error) {
	var f models.Follower
	err := s.db.WithContext(ctx).
		Where("user_from_id = ? AND user_to_id = ?", from, to).
		First(&f).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &f, nil
}

func (s *Store) CreateFollow(ctx context.Context, f *models.Follower) error {
	if err := s.db.WithContext(ctx).Create(f).Error; err != nil {
		return fmt.Errorf("create follow: %w", err)
	}
	return nil
}

func (s *Store) DeleteFollow(ctx context.Context, f *models.Follower) error {
	if err := s.db.WithContext(ctx).Delete(f).Error; err != nil {
		return fmt.Errorf("delete follow: %w", err)
	}
	return nil
}

// CountFollows counts every follow edge.
func (s *Store) CountFollows(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Follower{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count follows: %w", err)
	}
	return n, nil
}
