package repo

import "auto-vitrine-server/internal/model"

// EngagementStore 收藏与浏览历史数据访问接口
type EngagementStore interface {
	// ToggleFavorite 切换收藏状态，返回切换后是否处于已收藏
	ToggleFavorite(userID uint, listingID uint) (bool, error)
	ListFavorites(userID uint) ([]model.Listing, error)

	// UpsertView 每个 (user, listing) 至多一行，重复浏览只刷新时间与 IP
	UpsertView(record *model.ViewRecord) error
	History(userID uint, limit int) ([]model.ViewRecord, error)
	ClearHistory(userID uint) error

	ListingExists(listingID uint) (bool, error)
}
