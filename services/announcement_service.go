package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/NEMOzzzzzzzzzz/sms/internal/error/code"
	"github.com/NEMOzzzzzzzzzz/sms/models"
)

// InterfaceAnnouncementService defines the announcement service interface.
type InterfaceAnnouncementService interface {
	ListAnnouncements(ctx context.Context) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, draft *models.AnnouncementDraft) (*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id uint, draft *models.AnnouncementDraft) (*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id uint) error
}

// AnnouncementService persists announcements through GORM.
type AnnouncementService struct {
	DB    *gorm.DB
	Cache *CacheService
}

// NewAnnouncementService creates a new announcement service.
func NewAnnouncementService(db *gorm.DB, cache *CacheService) InterfaceAnnouncementService {
	return &AnnouncementService{DB: db, Cache: cache}
}

// ListAnnouncements returns all announcements in storage order, never nil.
func (s *AnnouncementService) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	announcements := []models.Announcement{}
	if s.Cache.GetList(ctx, CacheKeyAnnouncements, &announcements) {
		return announcements, nil
	}
	if err := s.DB.WithContext(ctx).Find(&announcements).Error; err != nil {
		return nil, code.StorageUnavailable(err)
	}
	s.Cache.SetList(ctx, CacheKeyAnnouncements, announcements)
	return announcements, nil
}

// CreateAnnouncement validates the draft and persists a new announcement,
// defaulting the author to "Admin" when absent.
func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, draft *models.AnnouncementDraft) (*models.Announcement, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	announcement := draft.Model()
	if err := s.DB.WithContext(ctx).Create(announcement).Error; err != nil {
		return nil, code.StorageUnavailable(err)
	}
	s.Cache.Invalidate(ctx, CacheKeyAnnouncements)
	return announcement, nil
}

// UpdateAnnouncement merges the provided fields into an existing
// announcement and returns the updated document.
func (s *AnnouncementService) UpdateAnnouncement(ctx context.Context, id uint, draft *models.AnnouncementDraft) (*models.Announcement, error) {
	announcement, err := s.getAnnouncement(ctx, id)
	if err != nil {
		return nil, err
	}
	updates, err := draft.Updates()
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(announcement).Updates(updates).Error; err != nil {
			return nil, code.StorageUnavailable(err)
		}
	}
	s.Cache.Invalidate(ctx, CacheKeyAnnouncements)
	return s.getAnnouncement(ctx, id)
}

// DeleteAnnouncement removes an announcement; a missing id fails with
// NotFound.
func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id uint) error {
	announcement, err := s.getAnnouncement(ctx, id)
	if err != nil {
		return err
	}
	if err := s.DB.WithContext(ctx).Delete(announcement).Error; err != nil {
		return code.StorageUnavailable(err)
	}
	s.Cache.Invalidate(ctx, CacheKeyAnnouncements)
	return nil
}

func (s *AnnouncementService) getAnnouncement(ctx context.Context, id uint) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := s.DB.WithContext(ctx).First(&announcement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound("announcement", id)
		}
		return nil, code.StorageUnavailable(err)
	}
	return &announcement, nil
}
