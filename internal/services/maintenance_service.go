package services

import (
	"strings"
	"time"

	"github.com/velmariner/rentora/internal/db"
	"github.com/velmariner/rentora/internal/models"
	"gorm.io/gorm"
)

type MaintenanceService struct {
	database *gorm.DB
	requests *db.MaintenanceRepository
	access   *AccessPolicy
}

func NewMaintenanceService(database *gorm.DB, access *AccessPolicy) *MaintenanceService {
	return &MaintenanceService{database: database, requests: db.NewMaintenanceRepository(database), access: access}
}

type MaintenanceInput struct {
	PropertyID      uint
	TenantID        uint
	AssignedStaffID *uint
	RequestType     string
	Description     string
	Priority        string
	Status          string
}

func (service *MaintenanceService) Create(user models.User, input MaintenanceInput) (models.MaintenanceRequest, error) {
	if err := service.access.AuthorizeProperty(user, input.PropertyID); err != nil {
		return models.MaintenanceRequest{}, err
	}
	if strings.TrimSpace(input.Description) == "" {
		return models.MaintenanceRequest{}, &ValidationError{Message: "Description is required."}
	}

	request := models.MaintenanceRequest{
		PropertyID:      input.PropertyID,
		TenantID:        input.TenantID,
		AssignedStaffID: input.AssignedStaffID,
		RequestType:     strings.TrimSpace(input.RequestType),
		Description:     input.Description,
		Priority:        normalizePriority(input.Priority),
		Status:          normalizeMaintenanceStatus(input.Status),
		CreatedAt:       time.Now(),
	}
	if err := service.database.Create(&request).Error; err != nil {
		return models.MaintenanceRequest{}, err
	}
	return request, nil
}

// Update stamps resolved_at exactly on the transition into resolved. Leaving
// resolved keeps the old stamp, and resolving again does not move it.
func (service *MaintenanceService) Update(user models.User, requestID uint, input MaintenanceInput) (models.MaintenanceRequest, error) {
	if err := service.access.AuthorizeMaintenanceRequest(user, requestID); err != nil {
		return models.MaintenanceRequest{}, err
	}

	var request models.MaintenanceRequest
	if err := service.database.First(&request, requestID).Error; err != nil {
		return models.MaintenanceRequest{}, notFoundOr(err, "maintenance request")
	}

	if input.PropertyID != request.PropertyID {
		if err := service.access.AuthorizeProperty(user, input.PropertyID); err != nil {
			return models.MaintenanceRequest{}, err
		}
	}

	previousStatus := request.Status
	request.PropertyID = input.PropertyID
	request.TenantID = input.TenantID
	request.RequestType = strings.TrimSpace(input.RequestType)
	request.Description = input.Description
	request.Priority = normalizePriority(input.Priority)
	request.Status = normalizeMaintenanceStatus(input.Status)
	if input.AssignedStaffID != nil {
		request.AssignedStaffID = input.AssignedStaffID
	}

	if previousStatus != models.MaintenanceStatusResolved && request.Status == models.MaintenanceStatusResolved {
		now := time.Now()
		request.ResolvedAt = &now
	}

	if err := service.database.Save(&request).Error; err != nil {
		return models.MaintenanceRequest{}, err
	}
	return request, nil
}

func (service *MaintenanceService) Delete(user models.User, requestID uint) error {
	if err := service.access.AuthorizeMaintenanceRequest(user, requestID); err != nil {
		return err
	}
	return service.database.Delete(&models.MaintenanceRequest{}, requestID).Error
}

func (service *MaintenanceService) Get(user models.User, requestID uint) (models.MaintenanceRequest, error) {
	if err := service.access.AuthorizeMaintenanceRequest(user, requestID); err != nil {
		return models.MaintenanceRequest{}, err
	}

	request, err := service.requests.FindByID(requestID)
	if err != nil {
		return models.MaintenanceRequest{}, notFoundOr(err, "maintenance request")
	}
	return request, nil
}

func normalizePriority(priority string) string {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case models.PriorityLow:
		return models.PriorityLow
	case models.PriorityHigh:
		return models.PriorityHigh
	default:
		return models.PriorityMedium
	}
}

func normalizeMaintenanceStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case models.MaintenanceStatusInProgress:
		return models.MaintenanceStatusInProgress
	case models.MaintenanceStatusResolved:
		return models.MaintenanceStatusResolved
	default:
		return models.MaintenanceStatusPending
	}
}
