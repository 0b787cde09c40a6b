package repo

import (
	"auto-vitrine-server/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindProfileByUserID(userID uint) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *UserRepository) SaveUser(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) SaveProfile(profile *model.Profile) error {
	return r.db.Save(profile).Error
}
