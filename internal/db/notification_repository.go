package db

import (
	"github.com/velmariner/rentora/internal/models"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	database *gorm.DB
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{database: database}
}

func (repo *NotificationRepository) ListByUser(userID uint) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (repo *NotificationRepository) CountUnreadByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *NotificationRepository) Create(notification *models.Notification) error {
	return repo.database.Create(notification).Error
}

// MarkRead flips the read flag only when the notification belongs to the user.
func (repo *NotificationRepository) MarkRead(notificationID uint, userID uint) (int64, error) {
	result := repo.database.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}
