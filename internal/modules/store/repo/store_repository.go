package repo

import "auto-vitrine-server/internal/model"

// StoreStore 门店数据访问接口
type StoreStore interface {
	FindByID(id uint) (*model.Store, error)
	FindWithListings(id uint) (*model.Store, error)
	ListPublic(cityID *uint) ([]model.Store, error)
	ListByUserID(userID uint) ([]model.Store, error)
	Create(store *model.Store) error
	Update(store *model.Store) error
	UpdateLogo(storeID uint, logo string) error
	UpdateQuota(storeID uint, quota *uint) error
	DeleteCascade(storeID uint) error

	CountUsers() (int64, error)
	CountStores() (int64, error)
	CountListings() (int64, error)
	SumListingViews() (int64, error)
}
