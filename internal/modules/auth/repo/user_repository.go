package repo

import "auto-vitrine-server/internal/model"

// UserStore 认证模块的用户数据访问接口
type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	// CreateWithProfile 用户与扩展资料在同一事务内创建
	CreateWithProfile(user *model.User, profile *model.Profile) error
	Save(user *model.User) error
}
