package service

import (
	"fmt"
	"testing"
	"time"

	"auto-vitrine-server/internal/model"
	platformservice "auto-vitrine-server/internal/platform/service"
)

// 测试内容：验证收藏切换互为逆操作且不产生重复行。
func TestToggleFavorite_SelfInverse(t *testing.T) {
	gdb := setupTestDB(t)
	listing := createTestListing(t, gdb, "civic")
	viewer := createTestViewer(t, gdb, "alice")

	favorited, err := testService.ToggleFavorite(viewer.ID, listing.ID)
	if err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if !favorited {
		t.Fatalf("期望第一次切换后为已收藏")
	}

	favorited, err = testService.ToggleFavorite(viewer.ID, listing.ID)
	if err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if favorited {
		t.Fatalf("期望第二次切换后为未收藏")
	}

	var count int64
	_ = gdb.Model(&model.Favorite{}).Count(&count).Error
	if count != 0 {
		t.Fatalf("期望收藏表为空，实际为 %d 行", count)
	}
}

// 测试内容：验证收藏不存在的车辆返回未找到错误。
func TestToggleFavorite_UnknownListingNotFound(t *testing.T) {
	gdb := setupTestDB(t)
	viewer := createTestViewer(t, gdb, "bob")

	_, err := testService.ToggleFavorite(viewer.ID, 999)
	serviceErr, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError，实际为: %v", err)
	}
	if serviceErr.Code != platformservice.ErrorCodeNotFound {
		t.Fatalf("期望错误码 not_found，实际为 %q", serviceErr.Code)
	}
}

// 测试内容：验证重复浏览同一车辆只保留一行并刷新时间与 IP。
func TestRecordView_UpsertKeepsSingleRow(t *testing.T) {
	gdb := setupTestDB(t)
	listing := createTestListing(t, gdb, "corolla")
	viewer := createTestViewer(t, gdb, "carol")

	if err := testService.RecordView(viewer.ID, listing.ID, "10.0.0.1"); err != nil {
		t.Fatalf("RecordView: %v", err)
	}
	var first model.ViewRecord
	if err := gdb.Where("user_id = ?", viewer.ID).First(&first).Error; err != nil {
		t.Fatalf("find view record: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if err := testService.RecordView(viewer.ID, listing.ID, "10.0.0.2"); err != nil {
		t.Fatalf("RecordView again: %v", err)
	}

	var count int64
	_ = gdb.Model(&model.ViewRecord{}).Where("user_id = ?", viewer.ID).Count(&count).Error
	if count != 1 {
		t.Fatalf("期望仅一行浏览记录，实际为 %d", count)
	}

	var second model.ViewRecord
	_ = gdb.Where("user_id = ?", viewer.ID).First(&second).Error
	if !second.ViewedAt.After(first.ViewedAt) {
		t.Fatalf("期望 viewed_at 被刷新：first=%v second=%v", first.ViewedAt, second.ViewedAt)
	}
	if second.ClientIP != "10.0.0.2" {
		t.Fatalf("期望 client_ip 被刷新，实际为 %q", second.ClientIP)
	}
}

// 测试内容：验证浏览历史按最近浏览排序且不超过上限。
func TestHistory_OrderedAndLimited(t *testing.T) {
	gdb := setupTestDB(t)
	viewer := createTestViewer(t, gdb, "dave")

	total := historyLimit + 5
	for i := 0; i < total; i++ {
		listing := createTestListing(t, gdb, fmt.Sprintf("car%02d", i))
		record := model.ViewRecord{
			UserID:    viewer.ID,
			ListingID: listing.ID,
			ViewedAt:  time.Now().Add(time.Duration(i) * time.Second),
			ClientIP:  "10.0.0.1",
		}
		if err := gdb.Create(&record).Error; err != nil {
			t.Fatalf("create view record: %v", err)
		}
	}

	records, err := testService.History(viewer.ID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(records) != historyLimit {
		t.Fatalf("期望 %d 条历史，实际为 %d", historyLimit, len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].ViewedAt.After(records[i-1].ViewedAt) {
			t.Fatalf("期望按 viewed_at 降序排列，第 %d 项乱序", i)
		}
	}
}

// 测试内容：验证清空历史只影响当前用户。
func TestClearHistory_OnlyCurrentUser(t *testing.T) {
	gdb := setupTestDB(t)
	listing := createTestListing(t, gdb, "hb20")
	alice := createTestViewer(t, gdb, "alice2")
	bob := createTestViewer(t, gdb, "bob2")

	_ = testService.RecordView(alice.ID, listing.ID, "10.0.0.1")
	_ = testService.RecordView(bob.ID, listing.ID, "10.0.0.2")

	if err := testService.ClearHistory(alice.ID); err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}

	var aliceCount, bobCount int64
	_ = gdb.Model(&model.ViewRecord{}).Where("user_id = ?", alice.ID).Count(&aliceCount).Error
	_ = gdb.Model(&model.ViewRecord{}).Where("user_id = ?", bob.ID).Count(&bobCount).Error
	if aliceCount != 0 {
		t.Fatalf("期望 alice 历史被清空，实际为 %d", aliceCount)
	}
	if bobCount != 1 {
		t.Fatalf("期望 bob 历史保留，实际为 %d", bobCount)
	}
}
