package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"sync"
	"testing"

	"auto-vitrine-server/internal/consts"
	"auto-vitrine-server/internal/model"
	moduledto "auto-vitrine-server/internal/modules/listing/dto"
	"auto-vitrine-server/internal/modules/listing/repo"
	platformservice "auto-vitrine-server/internal/platform/service"
)

func assertListingServiceErrorCode(t *testing.T, err error, code platformservice.ErrorCode) *platformservice.ServiceError {
	t.Helper()
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError，实际为: %v", err)
	}
	if serviceErr.Code != code {
		t.Fatalf("期望错误码 %q，实际为 %q", code, serviceErr.Code)
	}
	return serviceErr
}

func validCreateForm(brandID uint) moduledto.ListingForm {
	return moduledto.ListingForm{
		Name:    "Corolla XEI",
		Year:    2021,
		Price:   98000,
		BrandID: brandID,
	}
}

// 测试内容：验证非门店所有者无法在该门店发布车辆。
func TestCreateListing_NotOwnerForbidden(t *testing.T) {
	gdb := setupTestDB(t)
	f := createFixture(t, gdb, nil)

	input := moduledto.CreateListingInput{Form: validCreateForm(f.Brand.ID)}
	_, err := testService.CreateListing(f.Store.ID, f.Other.ID, input)
	assertListingServiceErrorCode(t, err, platformservice.ErrorCodeForbidden)
}

// 测试内容：验证配额已满时发布被拒绝，提示包含当前数量与配额。
func TestCreateListing_QuotaFullForbidden(t *testing.T) {
	gdb := setupTestDB(t)
	one := uint(1)
	f := createFixture(t, gdb, &one)
	createListingRow(t, gdb, f, "existing")

	input := moduledto.CreateListingInput{Form: validCreateForm(f.Brand.ID)}
	_, err := testService.CreateListing(f.Store.ID, f.Owner.ID, input)
	serviceErr := assertListingServiceErrorCode(t, err, platformservice.ErrorCodeForbidden)
	if !strings.Contains(serviceErr.Message, "1/1") {
		t.Fatalf("期望提示包含 1/1，实际为 %q", serviceErr.Message)
	}
}

// 测试内容：验证不带主图的发布被拒绝。
func TestCreateListing_PrincipalRequired(t *testing.T) {
	gdb := setupTestDB(t)
	f := createFixture(t, gdb, nil)

	input := moduledto.CreateListingInput{Form: validCreateForm(f.Brand.ID)}
	_, err := testService.CreateListing(f.Store.ID, f.Owner.ID, input)
	serviceErr := assertListingServiceErrorCode(t, err, platformservice.ErrorCodeValidation)
	if !strings.Contains(serviceErr.Message, "主图") {
		t.Fatalf("期望提示必须上传主图，实际为 %q", serviceErr.Message)
	}
}

// 测试内容：验证车型必须属于所选品牌，版本必须先选车型。
func TestCreateListing_CatalogRefsValidated(t *testing.T) {
	gdb := setupTestDB(t)
	f := createFixture(t, gdb, nil)

	honda := model.Brand{Name: "Honda"}
	_ = gdb.Create(&honda).Error
	civic := model.VehicleModel{BrandID: honda.ID, Name: "Civic"}
	_ = gdb.Create(&civic).Error

	form := validCreateForm(f.Brand.ID)
	form.ModelID = &civic.ID
	_, err := testService.CreateListing(f.Store.ID, f.Owner.ID, moduledto.CreateListingInput{Form: form})
	assertListingServiceErrorCode(t, err, platformservice.ErrorCodeValidation)

	trim := model.Trim{ModelID: civic.ID, Name: "EXL"}
	_ = gdb.Create(&trim).Error
	form = validCreateForm(f.Brand.ID)
	form.TrimID = &trim.ID
	_, err = testService.CreateListing(f.Store.ID, f.Owner.ID, moduledto.CreateListingInput{Form: form})
	assertListingServiceErrorCode(t, err, platformservice.ErrorCodeValidation)
}

// 测试内容：验证表单字段校验（年份区间、价格、燃料类型）。
func TestCreateListing_FormValidation(t *testing.T) {
	gdb := setupTestDB(t)
	f := createFixture(t, gdb, nil)

	form := validCreateForm(f.Brand.ID)
	form.Year = 1890
	_, err := testService.CreateListing(f.Store.ID, f.Owner.ID, moduledto.CreateListingInput{Form: form})
	assertListingServiceErrorCode(t, err, platformservice.ErrorCodeValidation)

	form = validCreateForm(f.Brand.ID)
	form.Price = 0
	_, err = testService.CreateListing(f.Store.ID, f.Owner.ID, moduledto.CreateListingInput{Form: form})
	assertListingServiceErrorCode(t, err, platformservice.ErrorCodeValidation)

	form = validCreateForm(f.Brand.ID)
	form.Fuel = "plutonium"
	_, err = testService.CreateListing(f.Store.ID, f.Owner.ID, moduledto.CreateListingInput{Form: form})
	assertListingServiceErrorCode(t, err, platformservice.ErrorCodeValidation)
}

// 测试内容：验证不带任何图片的编辑保留现有照片并更新字段。
func TestUpdateListing_NoImagesKeepsPhotos(t *testing.T) {
	gdb := setupTestDB(t)
	f := createFixture(t, gdb, nil)
	listing := createListingRow(t, gdb, f, "corolla")
	_ = gdb.Create(&model.Photo{ListingID: listing.ID, Image: "2024/01/01/extra1.jpg"}).Error
	_ = gdb.Create(&model.Photo{ListingID: listing.ID, Image: "2024/01/01/extra2.jpg"}).Error

	newPrice := 72000.0
	input := moduledto.UpdateListingInput{Form: moduledto.ListingUpdateForm{Price: &newPrice}}
	updated, err := testService.UpdateListing(listing.ID, f.Owner.ID, input)
	if err != nil {
		t.Fatalf("UpdateListing: %v", err)
	}

	if updated.Price != newPrice {
		t.Fatalf("期望价格更新为 %v，实际为 %v", newPrice, updated.Price)
	}
	if updated.PrincipalPhoto != listing.PrincipalPhoto {
		t.Fatalf("期望主图不变，实际为 %q", updated.PrincipalPhoto)
	}
	var photoCount int64
	_ = gdb.Model(&model.Photo{}).Where("listing_id = ?", listing.ID).Count(&photoCount).Error
	if photoCount != 2 {
		t.Fatalf("期望附加照片保留 2 张，实际为 %d", photoCount)
	}
}

// 测试内容：验证追加照片超出剩余容量时整批拒绝。
func TestUpdateListing_ExtraPhotosOverCapacityRejected(t *testing.T) {
	gdb := setupTestDB(t)
	f := createFixture(t, gdb, nil)
	listing := createListingRow(t, gdb, f, "corolla")
	for i := 0; i < consts.MaxExtraPhotos-1; i++ {
		_ = gdb.Create(&model.Photo{ListingID: listing.ID, Image: "2024/01/01/e.jpg"}).Error
	}

	// 剩余 1 张容量，一次提交 2 张应整批拒绝
	input := moduledto.UpdateListingInput{
		Extras: []*multipart.FileHeader{
			{Filename: "a.jpg"},
			{Filename: "b.jpg"},
		},
	}
	_, err := testService.UpdateListing(listing.ID, f.Owner.ID, input)
	serviceErr := assertListingServiceErrorCode(t, err, platformservice.ErrorCodeValidation)
	if !strings.Contains(serviceErr.Message, "还可追加 1 张") {
		t.Fatalf("期望提示剩余容量，实际为 %q", serviceErr.Message)
	}
}

// 测试内容：验证非所有者无法编辑或删除车辆。
func TestListingOwnership_Enforced(t *testing.T) {
	gdb := setupTestDB(t)
	f := createFixture(t, gdb, nil)
	listing := createListingRow(t, gdb, f, "corolla")

	_, err := testService.UpdateListing(listing.ID, f.Other.ID, moduledto.UpdateListingInput{})
	assertListingServiceErrorCode(t, err, platformservice.ErrorCodeForbidden)

	err = testService.DeleteListing(listing.ID, f.Other.ID)
	assertListingServiceErrorCode(t, err, platformservice.ErrorCodeForbidden)
}

// 测试内容：验证删除车辆时级联删除照片、收藏与浏览记录。
func TestDeleteListing_CascadesRows(t *testing.T) {
	gdb := setupTestDB(t)
	f := createFixture(t, gdb, nil)
	listing := createListingRow(t, gdb, f, "corolla")
	_ = gdb.Create(&model.Photo{ListingID: listing.ID, Image: "2024/01/01/e.jpg"}).Error
	_ = gdb.Create(&model.Favorite{UserID: f.Other.ID, ListingID: listing.ID}).Error
	_ = gdb.Exec("INSERT INTO view_records (user_id, listing_id, viewed_at, client_ip) VALUES (?, ?, CURRENT_TIMESTAMP, '10.0.0.1')",
		f.Other.ID, listing.ID).Error

	if err := testService.DeleteListing(listing.ID, f.Owner.ID); err != nil {
		t.Fatalf("DeleteListing: %v", err)
	}

	var listingCount, photoCount, favoriteCount, viewCount int64
	_ = gdb.Model(&model.Listing{}).Count(&listingCount).Error
	_ = gdb.Model(&model.Photo{}).Count(&photoCount).Error
	_ = gdb.Model(&model.Favorite{}).Count(&favoriteCount).Error
	_ = gdb.Model(&model.ViewRecord{}).Count(&viewCount).Error
	if listingCount != 0 || photoCount != 0 || favoriteCount != 0 || viewCount != 0 {
		t.Fatalf("期望级联删除后无残留，实际 listings=%d photos=%d favorites=%d views=%d",
			listingCount, photoCount, favoriteCount, viewCount)
	}
}

// 测试内容：验证删除附加照片的归属校验与行删除。
func TestDeletePhoto_OwnershipAndRemoval(t *testing.T) {
	gdb := setupTestDB(t)
	f := createFixture(t, gdb, nil)
	listing := createListingRow(t, gdb, f, "corolla")
	photo := model.Photo{ListingID: listing.ID, Image: "2024/01/01/e.jpg"}
	_ = gdb.Create(&photo).Error

	err := testService.DeletePhoto(photo.ID, f.Other.ID)
	assertListingServiceErrorCode(t, err, platformservice.ErrorCodeForbidden)

	if err := testService.DeletePhoto(photo.ID, f.Owner.ID); err != nil {
		t.Fatalf("DeletePhoto: %v", err)
	}
	var count int64
	_ = gdb.Model(&model.Photo{}).Count(&count).Error
	if count != 0 {
		t.Fatalf("期望照片行被删除，实际为 %d", count)
	}

	err = testService.DeletePhoto(photo.ID, f.Owner.ID)
	assertListingServiceErrorCode(t, err, platformservice.ErrorCodeNotFound)
}

// 测试内容：验证仓储层在插入事务内强制配额，直插第二辆即被拒绝。
func TestCreateWithQuota_EnforcedInTransaction(t *testing.T) {
	gdb := setupTestDB(t)
	one := uint(1)
	f := createFixture(t, gdb, &one)

	first := model.Listing{
		StoreID: f.Store.ID, BrandID: f.Brand.ID,
		Name: "first", Year: 2020, Price: 50000,
		PrincipalPhoto: "2024/01/01/a.jpg",
	}
	if err := testStore.CreateWithQuota(&first, nil, 10); err != nil {
		t.Fatalf("first CreateWithQuota: %v", err)
	}

	second := model.Listing{
		StoreID: f.Store.ID, BrandID: f.Brand.ID,
		Name: "second", Year: 2020, Price: 50000,
		PrincipalPhoto: "2024/01/01/b.jpg",
	}
	err := testStore.CreateWithQuota(&second, nil, 10)
	if !errors.Is(err, repo.ErrQuotaExceeded) {
		t.Fatalf("期望 ErrQuotaExceeded，实际为: %v", err)
	}
	var quotaErr *repo.QuotaExceededError
	if !errors.As(err, &quotaErr) {
		t.Fatalf("期望 QuotaExceededError，实际为: %v", err)
	}
	if quotaErr.Used != 1 || quotaErr.Quota != 1 {
		t.Fatalf("期望错误携带 1/1，实际为 %d/%d", quotaErr.Used, quotaErr.Quota)
	}

	var count int64
	_ = gdb.Model(&model.Listing{}).Count(&count).Error
	if count != 1 {
		t.Fatalf("期望配额拒绝后只有 1 辆车，实际为 %d", count)
	}
}

// 测试内容：验证同店并发创建在配额 1 下恰好成功一次，其余全部被配额拒绝。
func TestCreateWithQuota_ConcurrentCreates(t *testing.T) {
	gdb := setupTestDB(t)
	one := uint(1)
	f := createFixture(t, gdb, &one)

	const workers = 8
	results := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			listing := model.Listing{
				StoreID: f.Store.ID, BrandID: f.Brand.ID,
				Name: fmt.Sprintf("car-%d", i), Year: 2020, Price: 50000,
				PrincipalPhoto: fmt.Sprintf("2024/01/01/%d.jpg", i),
			}
			results <- testStore.CreateWithQuota(&listing, nil, 10)
		}(i)
	}
	wg.Wait()
	close(results)

	succeeded, rejected := 0, 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, repo.ErrQuotaExceeded):
			rejected++
		default:
			t.Fatalf("并发创建出现意外错误: %v", err)
		}
	}
	if succeeded != 1 || rejected != workers-1 {
		t.Fatalf("期望 1 次成功 %d 次被拒，实际成功=%d 被拒=%d", workers-1, succeeded, rejected)
	}

	var count int64
	_ = gdb.Model(&model.Listing{}).Count(&count).Error
	if count != 1 {
		t.Fatalf("期望并发创建后只有 1 辆车，实际为 %d", count)
	}
}
