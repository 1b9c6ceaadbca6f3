package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/NEMOzzzzzzzzzz/sms/internal/error/code"
	"github.com/NEMOzzzzzzzzzz/sms/models"
)

// InterfaceResidentService defines the resident service interface.
type InterfaceResidentService interface {
	ListResidents(ctx context.Context) ([]models.Resident, error)
	CreateResident(ctx context.Context, draft *models.ResidentDraft) (*models.Resident, error)
	UpdateResident(ctx context.Context, id uint, draft *models.ResidentDraft) (*models.Resident, error)
	DeleteResident(ctx context.Context, id uint) error
}

// ResidentService persists residents through GORM, with an optional
// read-through list cache.
type ResidentService struct {
	DB    *gorm.DB
	Cache *CacheService
}

// NewResidentService creates a new resident service.
func NewResidentService(db *gorm.DB, cache *CacheService) InterfaceResidentService {
	return &ResidentService{DB: db, Cache: cache}
}

// ListResidents returns all residents in storage order. The result is never
// nil, so an empty table serializes as [] rather than null.
func (s *ResidentService) ListResidents(ctx context.Context) ([]models.Resident, error) {
	residents := []models.Resident{}
	if s.Cache.GetList(ctx, CacheKeyResidents, &residents) {
		return residents, nil
	}
	if err := s.DB.WithContext(ctx).Find(&residents).Error; err != nil {
		return nil, code.StorageUnavailable(err)
	}
	s.Cache.SetList(ctx, CacheKeyResidents, residents)
	return residents, nil
}

// CreateResident validates the draft and persists a new resident, returning
// the stored document with its assigned id.
func (s *ResidentService) CreateResident(ctx context.Context, draft *models.ResidentDraft) (*models.Resident, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	resident := draft.Model()
	if err := s.DB.WithContext(ctx).Create(resident).Error; err != nil {
		return nil, code.StorageUnavailable(err)
	}
	s.Cache.Invalidate(ctx, CacheKeyResidents)
	return resident, nil
}

// UpdateResident merges the provided fields into an existing resident and
// returns the updated document.
func (s *ResidentService) UpdateResident(ctx context.Context, id uint, draft *models.ResidentDraft) (*models.Resident, error) {
	resident, err := s.getResident(ctx, id)
	if err != nil {
		return nil, err
	}
	updates, err := draft.Updates()
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(resident).Updates(updates).Error; err != nil {
			return nil, code.StorageUnavailable(err)
		}
	}
	s.Cache.Invalidate(ctx, CacheKeyResidents)
	return s.getResident(ctx, id)
}

// DeleteResident removes a resident. Deleting an id that does not exist
// fails with NotFound; this policy is uniform across all entities.
func (s *ResidentService) DeleteResident(ctx context.Context, id uint) error {
	resident, err := s.getResident(ctx, id)
	if err != nil {
		return err
	}
	if err := s.DB.WithContext(ctx).Delete(resident).Error; err != nil {
		return code.StorageUnavailable(err)
	}
	s.Cache.Invalidate(ctx, CacheKeyResidents)
	return nil
}

func (s *ResidentService) getResident(ctx context.Context, id uint) (*models.Resident, error) {
	var resident models.Resident
	if err := s.DB.WithContext(ctx).First(&resident, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound("resident", id)
		}
		return nil, code.StorageUnavailable(err)
	}
	return &resident, nil
}
