package dto

type CreateStoreRequest struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Whatsapp  string `json:"whatsapp"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Site      string `json:"site"`
	MapsURL   string `json:"maps_url"`
	CityID    *uint  `json:"city_id"`
}

type UpdateStoreRequest struct {
	Name      string  `json:"name"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
	Whatsapp  *string `json:"whatsapp"`
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
	Site      *string `json:"site"`
	MapsURL   *string `json:"maps_url"`
	CityID    *uint   `json:"city_id"`
}

// UpdateQuotaRequest Quota 为 null 时表示恢复跟随默认配额
type UpdateQuotaRequest struct {
	Quota *uint `json:"quota"`
}

type StatsResponse struct {
	Users    int64 `json:"users"`
	Stores   int64 `json:"stores"`
	Listings int64 `json:"listings"`
	Views    int64 `json:"views"`
}
