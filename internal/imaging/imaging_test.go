package imaging

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func assertReason(t *testing.T, err error, reason Reason) {
	t.Helper()
	if err == nil {
		t.Fatalf("期望校验失败（%s），实际通过", reason)
	}
	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("期望 ValidationError，实际为: %v", err)
	}
	if ve.Reason != reason {
		t.Fatalf("期望拒绝类别 %q，实际为 %q", reason, ve.Reason)
	}
}

// 测试内容：验证正方形且达到最短边下限的图片通过校验。
func TestValidate_SquareAtMinimumPasses(t *testing.T) {
	if err := Validate(encodePNG(t, MinDimension, MinDimension)); err != nil {
		t.Fatalf("期望通过，实际为: %v", err)
	}
	if err := Validate(encodePNG(t, 1000, 1000)); err != nil {
		t.Fatalf("期望通过，实际为: %v", err)
	}
}

// 测试内容：验证宽高比达到 2:1 上限的全景图片仍然通过。
func TestValidate_PanoramicUpperBoundPasses(t *testing.T) {
	if err := Validate(encodePNG(t, 1700, 850)); err != nil {
		t.Fatalf("期望 2:1 通过，实际为: %v", err)
	}
	if err := Validate(encodePNG(t, 1600, 1000)); err != nil {
		t.Fatalf("期望 1.6:1 通过，实际为: %v", err)
	}
}

// 测试内容：验证最短边不足的图片被拒绝，即使另一边足够大。
func TestValidate_ShortSideBelowMinimumRejected(t *testing.T) {
	assertReason(t, Validate(encodePNG(t, 840, 1000)), ReasonTooSmall)
	assertReason(t, Validate(encodePNG(t, 2000, 849)), ReasonTooSmall)
}

// 测试内容：验证宽高比超出区间的图片被拒绝（过宽与竖图）。
func TestValidate_AspectRatioOutOfRangeRejected(t *testing.T) {
	assertReason(t, Validate(encodePNG(t, 1800, 850)), ReasonBadAspectRatio)
	assertReason(t, Validate(encodePNG(t, 850, 1700)), ReasonBadAspectRatio)
}

// 测试内容：验证无法解码的字节流被拒绝。
func TestValidate_UnreadableRejected(t *testing.T) {
	assertReason(t, Validate([]byte("definitely not an image")), ReasonUnreadable)
	assertReason(t, Validate(nil), ReasonUnreadable)
}

// 测试内容：验证尺寸校验发生在宽高比校验之前。
func TestValidate_TooSmallTakesPrecedenceOverAspect(t *testing.T) {
	// 300x100 同时违反两条规则，应报尺寸不足
	assertReason(t, Validate(encodePNG(t, 300, 100)), ReasonTooSmall)
}
