package consts

const (
	// ApplicationName 应用名称
	ApplicationName = "Auto Vitrine Server"

	// ApplicationVersion 后端版本号
	ApplicationVersion = "1.2.0"
)

// MaxExtraPhotos 每辆车除主图外最多允许的附加照片数
const MaxExtraPhotos = 7
