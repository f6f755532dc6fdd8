package services

import (
	"log"
	"strings"
	"time"

	"github.com/velmariner/rentora/internal/db"
	"github.com/velmariner/rentora/internal/models"
	"github.com/velmariner/rentora/internal/storage"
	"gorm.io/gorm"
)

type PropertyService struct {
	database   *gorm.DB
	properties *db.PropertyRepository
	uploads    *storage.UploadStore
	access     *AccessPolicy
}

func NewPropertyService(database *gorm.DB, uploads *storage.UploadStore, access *AccessPolicy) *PropertyService {
	return &PropertyService{
		database:   database,
		properties: db.NewPropertyRepository(database),
		uploads:    uploads,
		access:     access,
	}
}

type PropertyInput struct {
	PropertyType       string
	Address            string
	City               string
	State              string
	RentAmount         float64
	AvailabilityStatus string
	Description        string
	Bedrooms           int
	Bathrooms          int
	AreaSqft           float64
}

func (service *PropertyService) Create(user models.User, input PropertyInput, imagePath string) (models.Property, error) {
	property := models.Property{
		OwnerID:            user.ID,
		PropertyType:       strings.TrimSpace(input.PropertyType),
		Address:            strings.TrimSpace(input.Address),
		City:               strings.TrimSpace(input.City),
		State:              strings.TrimSpace(input.State),
		RentAmount:         input.RentAmount,
		AvailabilityStatus: normalizeAvailability(input.AvailabilityStatus),
		Description:        input.Description,
		Bedrooms:           input.Bedrooms,
		Bathrooms:          input.Bathrooms,
		AreaSqft:           input.AreaSqft,
		ImagePath:          imagePath,
		CreatedAt:          time.Now(),
	}
	if property.Address == "" {
		return models.Property{}, &ValidationError{Message: "Address is required."}
	}

	if err := service.database.Create(&property).Error; err != nil {
		return models.Property{}, err
	}
	return property, nil
}

// Update replaces the property fields. When newImagePath is set, the previous
// stored file is removed only after the row update commits, so a failed
// update never loses the old attachment.
func (service *PropertyService) Update(user models.User, propertyID uint, input PropertyInput, newImagePath string) (models.Property, error) {
	if err := service.access.AuthorizeProperty(user, propertyID); err != nil {
		return models.Property{}, err
	}

	var property models.Property
	if err := service.database.First(&property, propertyID).Error; err != nil {
		return models.Property{}, notFoundOr(err, "property")
	}

	previousImage := ""
	if newImagePath != "" && property.ImagePath != newImagePath {
		previousImage = property.ImagePath
		property.ImagePath = newImagePath
	}

	property.PropertyType = strings.TrimSpace(input.PropertyType)
	property.Address = strings.TrimSpace(input.Address)
	property.City = strings.TrimSpace(input.City)
	property.State = strings.TrimSpace(input.State)
	property.RentAmount = input.RentAmount
	property.AvailabilityStatus = normalizeAvailability(input.AvailabilityStatus)
	property.Description = input.Description
	property.Bedrooms = input.Bedrooms
	property.Bathrooms = input.Bathrooms
	property.AreaSqft = input.AreaSqft

	if err := service.database.Save(&property).Error; err != nil {
		return models.Property{}, err
	}

	if previousImage != "" {
		if err := service.uploads.Remove(previousImage); err != nil {
			log.Printf("properties: remove replaced image %s: %v", previousImage, err)
		}
	}
	return property, nil
}

// Delete removes the stored image first and then the record; leases and their
// payments go with it through the schema cascades.
func (service *PropertyService) Delete(user models.User, propertyID uint) error {
	if err := service.access.AuthorizeProperty(user, propertyID); err != nil {
		return err
	}

	var property models.Property
	if err := service.database.First(&property, propertyID).Error; err != nil {
		return notFoundOr(err, "property")
	}

	if property.ImagePath != "" {
		if err := service.uploads.Remove(property.ImagePath); err != nil {
			return &StorageError{Op: "delete property image", Err: err}
		}
	}

	return service.database.Delete(&models.Property{}, propertyID).Error
}

func (service *PropertyService) Get(user models.User, propertyID uint) (models.Property, error) {
	if err := service.access.AuthorizeProperty(user, propertyID); err != nil {
		return models.Property{}, err
	}

	property, err := service.properties.FindByID(propertyID)
	if err != nil {
		return models.Property{}, notFoundOr(err, "property")
	}
	return property, nil
}

func normalizeAvailability(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case models.AvailabilityOccupied:
		return models.AvailabilityOccupied
	case models.AvailabilityMaintenance:
		return models.AvailabilityMaintenance
	default:
		return models.AvailabilityAvailable
	}
}
