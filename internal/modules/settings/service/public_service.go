package service

import "auto-vitrine-server/internal/consts"

// DefaultListingQuota 商家默认车辆配额，配置缺失或非法时回退为 10
func (s *Service) DefaultListingQuota() uint {
	quota := s.GetInt(consts.ConfigDefaultListingQuota)
	if quota < 0 {
		return 10
	}
	if quota == 0 && s.GetString(consts.ConfigDefaultListingQuota) != "0" {
		return 10
	}
	return uint(quota)
}
