package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/NEMOzzzzzzzzzz/sms/internal/error/code"
	"github.com/NEMOzzzzzzzzzz/sms/models"
)

// InterfacePaymentService defines the payment service interface.
type InterfacePaymentService interface {
	ListPayments(ctx context.Context) ([]models.Payment, error)
	CreatePayment(ctx context.Context, draft *models.PaymentDraft) (*models.Payment, error)
	UpdatePayment(ctx context.Context, id uint, draft *models.PaymentDraft) (*models.Payment, error)
	DeletePayment(ctx context.Context, id uint) error
}

// PaymentService persists payments through GORM. ResidentID on a payment is
// a plain reference; it is not checked against the residents table.
type PaymentService struct {
	DB    *gorm.DB
	Cache *CacheService
}

// NewPaymentService creates a new payment service.
func NewPaymentService(db *gorm.DB, cache *CacheService) InterfacePaymentService {
	return &PaymentService{DB: db, Cache: cache}
}

// ListPayments returns all payments in storage order, never nil.
func (s *PaymentService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	payments := []models.Payment{}
	if s.Cache.GetList(ctx, CacheKeyPayments, &payments) {
		return payments, nil
	}
	if err := s.DB.WithContext(ctx).Find(&payments).Error; err != nil {
		return nil, code.StorageUnavailable(err)
	}
	s.Cache.SetList(ctx, CacheKeyPayments, payments)
	return payments, nil
}

// CreatePayment validates the draft and persists a new payment.
func (s *PaymentService) CreatePayment(ctx context.Context, draft *models.PaymentDraft) (*models.Payment, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	payment := draft.Model()
	if err := s.DB.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, code.StorageUnavailable(err)
	}
	s.Cache.Invalidate(ctx, CacheKeyPayments)
	return payment, nil
}

// UpdatePayment merges the provided fields into an existing payment. The
// payments board uses this to flip status between pending, paid and overdue.
func (s *PaymentService) UpdatePayment(ctx context.Context, id uint, draft *models.PaymentDraft) (*models.Payment, error) {
	payment, err := s.getPayment(ctx, id)
	if err != nil {
		return nil, err
	}
	updates, err := draft.Updates()
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.DB.WithContext(ctx).Model(payment).Updates(updates).Error; err != nil {
			return nil, code.StorageUnavailable(err)
		}
	}
	s.Cache.Invalidate(ctx, CacheKeyPayments)
	return s.getPayment(ctx, id)
}

// DeletePayment removes a payment; a missing id fails with NotFound.
func (s *PaymentService) DeletePayment(ctx context.Context, id uint) error {
	payment, err := s.getPayment(ctx, id)
	if err != nil {
		return err
	}
	if err := s.DB.WithContext(ctx).Delete(payment).Error; err != nil {
		return code.StorageUnavailable(err)
	}
	s.Cache.Invalidate(ctx, CacheKeyPayments)
	return nil
}

func (s *PaymentService) getPayment(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.DB.WithContext(ctx).First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.NotFound("payment", id)
		}
		return nil, code.StorageUnavailable(err)
	}
	return &payment, nil
}
