package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"auto-vitrine-server/internal/db"
	"auto-vitrine-server/internal/model"

	"github.com/gin-gonic/gin"
)

func getJSON(t *testing.T, r *gin.Engine, url string) map[string]json.RawMessage {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s 期望 200，实际为 %d body=%s", url, w.Code, w.Body.String())
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	return body
}

func optionCount(t *testing.T, raw json.RawMessage) int {
	t.Helper()
	var items []map[string]interface{}
	if err := json.Unmarshal(raw, &items); err != nil {
		t.Fatalf("unmarshal options: %v", err)
	}
	return len(items)
}

// 测试内容：验证级联下拉对缺失/非法参数返回 200 与空列表而不是报错。
func TestGetModels_LenientParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	brand := model.Brand{Name: "Toyota"}
	_ = db.DB.Create(&brand).Error
	_ = db.DB.Create(&model.VehicleModel{BrandID: brand.ID, Name: "Corolla"}).Error

	r := gin.New()
	r.GET("/models", testHandler.GetModels)

	body := getJSON(t, r, "/models")
	if got := optionCount(t, body["models"]); got != 0 {
		t.Fatalf("无参数期望空列表，实际为 %d", got)
	}

	body = getJSON(t, r, "/models?brand=abc")
	if got := optionCount(t, body["models"]); got != 0 {
		t.Fatalf("非法参数期望空列表，实际为 %d", got)
	}

	body = getJSON(t, r, "/models?brand=999")
	if got := optionCount(t, body["models"]); got != 0 {
		t.Fatalf("未知品牌期望空列表，实际为 %d", got)
	}

	body = getJSON(t, r, "/models?brand=1")
	if got := optionCount(t, body["models"]); got != 1 {
		t.Fatalf("期望命中 1 个车型，实际为 %d", got)
	}
}

// 测试内容：验证编辑场景下 ?listing= 回退到车辆已保存的品牌/车型。
func TestGetModelsAndTrims_ListingFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	user := model.User{Username: "owner", Password: "x", Email: "o@test.local"}
	_ = db.DB.Create(&user).Error
	store := model.Store{UserID: user.ID, Name: "Loja"}
	_ = db.DB.Create(&store).Error
	brand := model.Brand{Name: "Toyota"}
	_ = db.DB.Create(&brand).Error
	vm := model.VehicleModel{BrandID: brand.ID, Name: "Corolla"}
	_ = db.DB.Create(&vm).Error
	_ = db.DB.Create(&model.Trim{ModelID: vm.ID, Name: "XEI"}).Error
	listing := model.Listing{
		StoreID: store.ID, BrandID: brand.ID, ModelID: &vm.ID,
		Name: "Corolla XEI", Year: 2021, Price: 98000,
		PrincipalPhoto: "p.jpg",
	}
	_ = db.DB.Create(&listing).Error

	r := gin.New()
	r.GET("/models", testHandler.GetModels)
	r.GET("/trims", testHandler.GetTrims)

	body := getJSON(t, r, "/models?listing=1")
	if got := optionCount(t, body["models"]); got != 1 {
		t.Fatalf("期望回退到车辆品牌后命中 1 个车型，实际为 %d", got)
	}

	body = getJSON(t, r, "/trims?listing=1")
	if got := optionCount(t, body["trims"]); got != 1 {
		t.Fatalf("期望回退到车辆车型后命中 1 个版本，实际为 %d", got)
	}

	// 显式参数优先于回退：显式选择没有版本的车型应返回空列表
	other := model.VehicleModel{BrandID: brand.ID, Name: "Yaris"}
	_ = db.DB.Create(&other).Error
	body = getJSON(t, r, "/trims?model=2&listing=1")
	if got := optionCount(t, body["trims"]); got != 0 {
		t.Fatalf("期望显式车型优先且为空列表，实际为 %d", got)
	}
}
