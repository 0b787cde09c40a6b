package repo

import (
	"errors"
	"fmt"

	"auto-vitrine-server/internal/model"
)

// ErrQuotaExceeded 门店车辆数已达配额，由仓储层在插入事务内判定
var ErrQuotaExceeded = errors.New("门店车辆配额已满")

// QuotaExceededError 携带判定时刻的在售数与生效配额，供调用方拼装提示
type QuotaExceededError struct {
	Used  int64
	Quota uint
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("门店车辆配额已满（%d/%d）", e.Used, e.Quota)
}

// Is 保持 errors.Is(err, ErrQuotaExceeded) 的判定方式可用
func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

// PhotoCapacityError 附加照片超出容量，Remaining 为当前还可追加的张数
type PhotoCapacityError struct {
	Remaining int
}

func (e *PhotoCapacityError) Error() string {
	return fmt.Sprintf("附加照片超出上限，还可追加 %d 张", e.Remaining)
}

// ListListingsParams 前台车辆筛选参数，零值字段表示不过滤
type ListListingsParams struct {
	BrandID  *uint
	CityID   *uint
	StoreID  *uint
	PriceMin *float64
	PriceMax *float64
	YearMin  *int
	YearMax  *int
	Busca    string
	Fuel     string
	Trans    string
	Doors    *uint8
	Featured *bool
	Offset   int
	Limit    int
}

// ListingStore 车辆数据访问接口
// 配额与照片容量判定必须与写入发生在同一事务内
type ListingStore interface {
	FindByID(id uint) (*model.Listing, error)
	FindDetail(id uint) (*model.Listing, error)
	List(params ListListingsParams) ([]model.Listing, int64, error)
	Latest(limit int) ([]model.Listing, error)
	CountByStore(storeID uint) (int64, error)

	CreateWithQuota(listing *model.Listing, extraPhotos []string, defaultQuota uint) error
	UpdateWithPhotos(listing *model.Listing, newExtras []string, maxExtra int) error
	AppendPhotos(listingID uint, images []string, maxExtra int) error
	DeleteCascade(listingID uint) error

	FindPhotoWithListing(photoID uint) (*model.Photo, error)
	DeletePhoto(photoID uint) error

	IncrementViews(listingID uint) error
}

// StoreStore 车辆模块需要的门店子集，由门店仓储实现
type StoreStore interface {
	FindByID(id uint) (*model.Store, error)
}

// CatalogStore 车辆模块需要的目录子集，由目录仓储实现
type CatalogStore interface {
	ListBrands() ([]model.Brand, error)
	FindBrandByID(id uint) (*model.Brand, error)
	FindModelByID(id uint) (*model.VehicleModel, error)
	FindTrimByID(id uint) (*model.Trim, error)
	FindCategoryByID(id uint) (*model.Category, error)
}
