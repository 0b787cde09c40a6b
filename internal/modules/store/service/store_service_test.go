package service

import (
	"testing"

	"auto-vitrine-server/internal/model"
	moduledto "auto-vitrine-server/internal/modules/store/dto"
	platformservice "auto-vitrine-server/internal/platform/service"
)

func assertStoreServiceErrorCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError，实际为: %v", err)
	}
	if serviceErr.Code != code {
		t.Fatalf("期望错误码 %q，实际为 %q", code, serviceErr.Code)
	}
}

// 测试内容：验证创建门店归属当前用户且新店不设置独立配额。
func TestCreateStore_OwnedByCreatorWithoutQuota(t *testing.T) {
	gdb := setupTestDB(t)
	user := createTestUser(t, gdb, "dealer")

	store, err := testService.CreateStore(user.ID, moduledto.CreateStoreRequest{Name: " Loja Central "})
	if err != nil {
		t.Fatalf("CreateStore: %v", err)
	}
	if store.UserID != user.ID {
		t.Fatalf("期望门店归属 %d，实际为 %d", user.ID, store.UserID)
	}
	if store.Name != "Loja Central" {
		t.Fatalf("期望名称去除空白，实际为 %q", store.Name)
	}
	if store.ListingQuota != nil {
		t.Fatalf("期望新店跟随默认配额，实际为 %v", *store.ListingQuota)
	}
}

// 测试内容：验证非所有者无法读取或修改他人门店。
func TestGetOwnedStore_ForbiddenForOthers(t *testing.T) {
	gdb := setupTestDB(t)
	owner := createTestUser(t, gdb, "owner")
	other := createTestUser(t, gdb, "other")

	store, err := testService.CreateStore(owner.ID, moduledto.CreateStoreRequest{Name: "Loja"})
	if err != nil {
		t.Fatalf("CreateStore: %v", err)
	}

	_, err = testService.GetOwnedStore(store.ID, other.ID)
	assertStoreServiceErrorCode(t, err, platformservice.ErrorCodeForbidden)

	_, err = testService.UpdateStore(store.ID, other.ID, moduledto.UpdateStoreRequest{Name: "Hacked"})
	assertStoreServiceErrorCode(t, err, platformservice.ErrorCodeForbidden)
}

// 测试内容：验证编辑门店只修改提交的字段。
func TestUpdateStore_PartialPatch(t *testing.T) {
	gdb := setupTestDB(t)
	owner := createTestUser(t, gdb, "owner")

	store, err := testService.CreateStore(owner.ID, moduledto.CreateStoreRequest{
		Name:  "Loja",
		Phone: "4133334444",
	})
	if err != nil {
		t.Fatalf("CreateStore: %v", err)
	}

	newAddress := "Av. Brasil, 100"
	updated, err := testService.UpdateStore(store.ID, owner.ID, moduledto.UpdateStoreRequest{
		Address: &newAddress,
	})
	if err != nil {
		t.Fatalf("UpdateStore: %v", err)
	}
	if updated.Address != newAddress {
		t.Fatalf("期望地址更新，实际为 %q", updated.Address)
	}
	if updated.Phone != "4133334444" {
		t.Fatalf("期望电话保持不变，实际为 %q", updated.Phone)
	}
	if updated.Name != "Loja" {
		t.Fatalf("期望名称保持不变，实际为 %q", updated.Name)
	}
}

// 测试内容：验证后台设置与恢复门店配额。
func TestAdminSetQuota_SetAndReset(t *testing.T) {
	gdb := setupTestDB(t)
	owner := createTestUser(t, gdb, "owner")
	store, _ := testService.CreateStore(owner.ID, moduledto.CreateStoreRequest{Name: "Loja"})

	five := uint(5)
	if err := testService.AdminSetQuota(store.ID, &five); err != nil {
		t.Fatalf("AdminSetQuota: %v", err)
	}
	var got model.Store
	_ = gdb.First(&got, store.ID).Error
	if got.ListingQuota == nil || *got.ListingQuota != 5 {
		t.Fatalf("期望配额为 5，实际为 %v", got.ListingQuota)
	}

	// 传 nil 表示恢复跟随默认配额
	if err := testService.AdminSetQuota(store.ID, nil); err != nil {
		t.Fatalf("AdminSetQuota reset: %v", err)
	}
	_ = gdb.First(&got, store.ID).Error
	if got.ListingQuota != nil {
		t.Fatalf("期望配额恢复为默认，实际为 %v", *got.ListingQuota)
	}

	err := testService.AdminSetQuota(999, &five)
	assertStoreServiceErrorCode(t, err, platformservice.ErrorCodeNotFound)
}

// 测试内容：验证后台删除门店时级联删除名下车辆。
func TestAdminDeleteStore_CascadesListings(t *testing.T) {
	gdb := setupTestDB(t)
	owner := createTestUser(t, gdb, "owner")
	store, _ := testService.CreateStore(owner.ID, moduledto.CreateStoreRequest{Name: "Loja"})

	brand := model.Brand{Name: "Fiat"}
	_ = gdb.Create(&brand).Error
	listing := model.Listing{
		StoreID: store.ID, BrandID: brand.ID,
		Name: "Uno", Year: 2015, Price: 25000,
		PrincipalPhoto: "2024/01/01/uno.jpg",
	}
	_ = gdb.Create(&listing).Error

	if err := testService.AdminDeleteStore(store.ID); err != nil {
		t.Fatalf("AdminDeleteStore: %v", err)
	}

	var storeCount, listingCount int64
	_ = gdb.Model(&model.Store{}).Count(&storeCount).Error
	_ = gdb.Model(&model.Listing{}).Count(&listingCount).Error
	if storeCount != 0 || listingCount != 0 {
		t.Fatalf("期望门店与车辆均被删除，实际 stores=%d listings=%d", storeCount, listingCount)
	}
}

// 测试内容：验证平台统计汇总用户、门店、车辆与浏览量。
func TestAdminStats_Aggregates(t *testing.T) {
	gdb := setupTestDB(t)
	owner := createTestUser(t, gdb, "owner")
	store, _ := testService.CreateStore(owner.ID, moduledto.CreateStoreRequest{Name: "Loja"})

	brand := model.Brand{Name: "Fiat"}
	_ = gdb.Create(&brand).Error
	for i, views := range []int{3, 7} {
		listing := model.Listing{
			StoreID: store.ID, BrandID: brand.ID,
			Name: "Car", Year: 2015, Price: 25000,
			PrincipalPhoto: "p.jpg", Views: views,
		}
		if err := gdb.Create(&listing).Error; err != nil {
			t.Fatalf("create listing %d: %v", i, err)
		}
	}

	stats, err := testService.AdminStats()
	if err != nil {
		t.Fatalf("AdminStats: %v", err)
	}
	if stats.Users != 1 || stats.Stores != 1 || stats.Listings != 2 {
		t.Fatalf("期望 users=1 stores=1 listings=2，实际为 %+v", stats)
	}
	if stats.Views != 10 {
		t.Fatalf("期望总浏览量 10，实际为 %d", stats.Views)
	}
}
