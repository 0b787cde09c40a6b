// Package imaging 提供上传图片的纯校验逻辑：尺寸下限与宽高比区间。
// 校验不产生任何副作用，必须在图片落盘/入库之前调用。
package imaging

import (
	"bytes"
	"fmt"
	"image"

	// 注册解码器，DecodeConfig 依赖 init 注册
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const (
	// MinDimension 最短边的像素下限
	MinDimension = 850

	// MinAspect / MaxAspect 宽高比（宽/高）允许区间：1:1（正方形）到 2:1（全景）
	MinAspect = 1.0
	MaxAspect = 2.0
)

// Reason 图片被拒绝的类别
type Reason string

const (
	ReasonUnreadable     Reason = "image_unreadable"
	ReasonTooSmall       Reason = "too_small"
	ReasonBadAspectRatio Reason = "bad_aspect_ratio"
)

// ValidationError 携带拒绝类别与面向用户的提示信息
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate 校验图片字节流：可解码、最短边 ≥ MinDimension、宽高比在区间内。
// 纯函数，结果只取决于输入。
func Validate(data []byte) error {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return &ValidationError{
			Reason:  ReasonUnreadable,
			Message: "无法识别图片内容，请上传有效的图片文件",
		}
	}

	width := cfg.Width
	height := cfg.Height
	if width <= 0 || height <= 0 {
		return &ValidationError{
			Reason:  ReasonUnreadable,
			Message: "无法识别图片尺寸，请上传有效的图片文件",
		}
	}

	minDimension := width
	if height < minDimension {
		minDimension = height
	}
	if minDimension < MinDimension {
		return &ValidationError{
			Reason: ReasonTooSmall,
			Message: fmt.Sprintf(
				"图片最短边至少需要 %d 像素，当前图片为 %dx%d（最短边 %d 像素）",
				MinDimension, width, height, minDimension),
		}
	}

	aspect := float64(width) / float64(height)
	if aspect < MinAspect || aspect > MaxAspect {
		return &ValidationError{
			Reason: ReasonBadAspectRatio,
			Message: fmt.Sprintf(
				"图片宽高比需在 1:1（正方形）到 2:1（全景）之间，当前为 %.2f:1（%dx%d）",
				aspect, width, height),
		}
	}

	return nil
}

// AsValidationError 提取校验错误，便于调用方按类别聚合提示
func AsValidationError(err error) (*ValidationError, bool) {
	ve, ok := err.(*ValidationError)
	return ve, ok
}
