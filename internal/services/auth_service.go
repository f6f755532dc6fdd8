package services

import (
	"errors"
	"strings"
	"time"

	"github.com/velmariner/rentora/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	ExistsByUsername(username string) (bool, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	Role            string
}

func (service *AuthService) Register(input RegisterInput) (models.User, error) {
	username := strings.TrimSpace(input.Username)
	email := NormalizeEmail(input.Email)

	if username == "" || email == "" || input.Password == "" {
		return models.User{}, &ValidationError{Message: "Username, email and password are required."}
	}
	if input.Password != input.ConfirmPassword {
		return models.User{}, &ValidationError{Message: "Passwords do not match."}
	}

	emailTaken, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if emailTaken {
		return models.User{}, &ValidationError{Message: "Email already registered."}
	}

	usernameTaken, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if usernameTaken {
		return models.User{}, &ValidationError{Message: "Username already taken."}
	}

	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         normalizeRole(input.Role),
		Phone:        strings.TrimSpace(input.Phone),
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate deliberately reports the same message for an unknown email and
// a wrong password.
func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	invalidCredentials := &ValidationError{Message: "Invalid email or password."}

	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, invalidCredentials
		}
		return models.User{}, err
	}
	if !CheckPassword(user.PasswordHash, password) {
		return models.User{}, invalidCredentials
	}
	if !user.IsActive {
		return models.User{}, &ValidationError{Message: "Your account has been deactivated."}
	}
	return user, nil
}

type ProfileInput struct {
	Username        string
	Email           string
	Phone           string
	CurrentPassword string
	NewPassword     string
}

func (service *AuthService) UpdateProfile(userID uint, input ProfileInput) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, notFoundOr(err, "user")
	}

	user.Username = strings.TrimSpace(input.Username)
	user.Email = NormalizeEmail(input.Email)
	user.Phone = strings.TrimSpace(input.Phone)

	if input.NewPassword != "" {
		if !CheckPassword(user.PasswordHash, input.CurrentPassword) {
			return models.User{}, &ValidationError{Message: "Current password is incorrect."}
		}
		passwordHash, err := HashPassword(input.NewPassword)
		if err != nil {
			return models.User{}, err
		}
		user.PasswordHash = passwordHash
	}

	if err := service.users.Save(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// EnsureAdmin creates the seeded admin account when it does not exist. With
// resetExisting it also restores the password, role, and active flag of an
// existing account, which backs the create-admin command.
func (service *AuthService) EnsureAdmin(username string, email string, password string, resetExisting bool) (models.User, bool, error) {
	email = NormalizeEmail(email)

	existing, err := service.users.FindByNormalizedEmail(email)
	if err == nil {
		if !resetExisting {
			return existing, false, nil
		}
		passwordHash, hashErr := HashPassword(password)
		if hashErr != nil {
			return models.User{}, false, hashErr
		}
		existing.PasswordHash = passwordHash
		existing.Role = models.RoleAdmin
		existing.IsActive = true
		if err := service.users.Save(&existing); err != nil {
			return models.User{}, false, err
		}
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, false, err
	}

	passwordHash, err := HashPassword(password)
	if err != nil {
		return models.User{}, false, err
	}
	admin := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(&admin); err != nil {
		return models.User{}, false, err
	}
	return admin, true, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(passwordHash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case models.RoleAdmin:
		return models.RoleAdmin
	case models.RoleTenant:
		return models.RoleTenant
	default:
		return models.RoleOwner
	}
}
