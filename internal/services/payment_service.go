package services

import (
	"strings"
	"time"

	"github.com/velmariner/rentora/internal/db"
	"github.com/velmariner/rentora/internal/models"
	"gorm.io/gorm"
)

// Payments are informational only: nothing here recomputes lease or property
// state from a payment's status.
type PaymentService struct {
	database *gorm.DB
	payments *db.PaymentRepository
	access   *AccessPolicy
}

func NewPaymentService(database *gorm.DB, access *AccessPolicy) *PaymentService {
	return &PaymentService{database: database, payments: db.NewPaymentRepository(database), access: access}
}

type PaymentInput struct {
	LeaseID       uint
	Amount        float64
	DueDate       *time.Time
	PaidDate      *time.Time
	PaymentMethod string
	Status        string
}

func (service *PaymentService) Create(user models.User, input PaymentInput) (models.Payment, error) {
	if err := service.access.AuthorizeLease(user, input.LeaseID); err != nil {
		return models.Payment{}, err
	}

	payment := models.Payment{
		LeaseID:       input.LeaseID,
		Amount:        input.Amount,
		DueDate:       input.DueDate,
		PaidDate:      input.PaidDate,
		PaymentMethod: strings.TrimSpace(input.PaymentMethod),
		Status:        normalizePaymentStatus(input.Status),
		CreatedAt:     time.Now(),
	}
	if err := service.database.Create(&payment).Error; err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

func (service *PaymentService) Update(user models.User, paymentID uint, input PaymentInput) (models.Payment, error) {
	if err := service.access.AuthorizePayment(user, paymentID); err != nil {
		return models.Payment{}, err
	}

	var payment models.Payment
	if err := service.database.First(&payment, paymentID).Error; err != nil {
		return models.Payment{}, notFoundOr(err, "payment")
	}

	if input.LeaseID != payment.LeaseID {
		if err := service.access.AuthorizeLease(user, input.LeaseID); err != nil {
			return models.Payment{}, err
		}
	}

	payment.LeaseID = input.LeaseID
	payment.Amount = input.Amount
	payment.DueDate = input.DueDate
	payment.PaidDate = input.PaidDate
	payment.PaymentMethod = strings.TrimSpace(input.PaymentMethod)
	payment.Status = normalizePaymentStatus(input.Status)

	if err := service.database.Save(&payment).Error; err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

func (service *PaymentService) Delete(user models.User, paymentID uint) error {
	if err := service.access.AuthorizePayment(user, paymentID); err != nil {
		return err
	}
	return service.database.Delete(&models.Payment{}, paymentID).Error
}

func (service *PaymentService) Get(user models.User, paymentID uint) (models.Payment, error) {
	if err := service.access.AuthorizePayment(user, paymentID); err != nil {
		return models.Payment{}, err
	}

	payment, err := service.payments.FindByID(paymentID)
	if err != nil {
		return models.Payment{}, notFoundOr(err, "payment")
	}
	return payment, nil
}

func normalizePaymentStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case models.PaymentStatusPaid:
		return models.PaymentStatusPaid
	case models.PaymentStatusOverdue:
		return models.PaymentStatusOverdue
	default:
		return models.PaymentStatusPending
	}
}
