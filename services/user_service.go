package services

import (
	"errors"
	"time"

	"github.com/ITECH-Group8/WellLog/models"
	"github.com/ITECH-Group8/WellLog/utils"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *UserService) Register(email, username, password string) (*models.User, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Username: username,
		Password: hashed,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ProfileInput carries the editable profile fields. Zero values leave
// the stored value untouched.
type ProfileInput struct {
	Username string `json:"username"`
	Age      *int   `json:"age"`
	Gender   string `json:"gender"`
}

func (s *UserService) UpdateProfile(email string, input ProfileInput) (*models.User, error) {
	user, err := s.FindByEmail(email)
	if err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Age != nil {
		user.Age = input.Age
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SetMFACode stores a fresh one-time login code on the account.
func (s *UserService) SetMFACode(user *models.User, code string) error {
	user.MFACode = code
	return s.db.Save(user).Error
}

// ClearMFACode wipes the code after a successful verification.
func (s *UserService) ClearMFACode(user *models.User) error {
	user.MFACode = ""
	return s.db.Save(user).Error
}

// SetResetToken stores a password-reset token valid for 15 minutes.
func (s *UserService) SetResetToken(user *models.User, token string) error {
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	return s.db.Save(user).Error
}

// ResetPassword consumes a valid reset token and stores the new
// password hash.
func (s *UserService) ResetPassword(token, newPassword string) error {
	var user models.User
	if err := s.db.Where("reset_token = ?", token).First(&user).Error; err != nil {
		return errors.New("invalid or expired token")
	}
	if user.ResetToken == "" || time.Now().After(user.ResetTokenExp) {
		return errors.New("invalid or expired token")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}
