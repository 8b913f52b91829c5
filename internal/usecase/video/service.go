// Package video provides use cases for tracking promotional videos and their
// view targets.
package video

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"promo-studio/internal/domain/entity"
	"promo-studio/internal/repository"
)

// ErrVideoNotFound indicates that the requested video was not found.
var ErrVideoNotFound = errors.New("video not found")

// AddInput represents the input parameters for registering a video.
type AddInput struct {
	Title       string
	ShopeeURL   string
	TargetViews int
}

// Service provides video tracking use cases.
type Service struct {
	Repo repository.VideoRepository
}

// List retrieves all videos, most recently updated first.
func (s *Service) List(ctx context.Context) ([]*entity.Video, error) {
	videos, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return videos, nil
}

// Add registers a new video. A target below one is coerced to one so the
// progress display never divides by zero.
func (s *Service) Add(ctx context.Context, in AddInput) (*entity.Video, error) {
	target := in.TargetViews
	if target < 1 {
		target = 1
	}
	v := &entity.Video{
		Title:       strings.TrimSpace(in.Title),
		ShopeeURL:   strings.TrimSpace(in.ShopeeURL),
		TargetViews: target,
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}
	return v, nil
}

// IncrementViews records one more posted view for the video.
func (s *Service) IncrementViews(ctx context.Context, id int64) error {
	if err := s.requireExists(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.IncrementViews(ctx, id); err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// ResetViews zeroes the view counter for the video.
func (s *Service) ResetViews(ctx context.Context, id int64) error {
	if err := s.requireExists(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.ResetViews(ctx, id); err != nil {
		return fmt.Errorf("reset views: %w", err)
	}
	return nil
}

// Delete removes a video by its ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	return nil
}

func (s *Service) requireExists(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	v, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get video: %w", err)
	}
	if v == nil {
		return ErrVideoNotFound
	}
	return nil
}
