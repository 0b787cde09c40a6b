package repo

import "auto-vitrine-server/internal/model"

// UserStore 用户模块数据访问接口
type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindProfileByUserID(userID uint) (*model.Profile, error)
	SaveUser(user *model.User) error
	SaveProfile(profile *model.Profile) error
}
