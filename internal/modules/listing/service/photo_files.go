package service

import (
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"auto-vitrine-server/internal/config"
	"auto-vitrine-server/internal/consts"
	"auto-vitrine-server/internal/imaging"
	platformservice "auto-vitrine-server/internal/platform/service"
	"auto-vitrine-server/internal/utils"

	"github.com/google/uuid"
)

// validatedPhoto 通过校验、待落盘的图片内容
type validatedPhoto struct {
	data []byte
	ext  string
}

// validatePhotoBatch 校验一批上传图片（扩展名、可解码、尺寸、宽高比）。
// 逐张收集失败原因并聚合为一个 validation 错误：要么整批通过，要么一张不收。
func (s *Service) validatePhotoBatch(files []*multipart.FileHeader) ([]validatedPhoto, error) {
	photos := make([]validatedPhoto, 0, len(files))
	var failures []string

	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !s.extensionAllowed(ext) {
			failures = append(failures, file.Filename+": 不支持的文件类型 "+ext)
			continue
		}

		src, err := file.Open()
		if err != nil {
			failures = append(failures, file.Filename+": 无法读取上传文件")
			continue
		}
		data, err := io.ReadAll(src)
		_ = src.Close()
		if err != nil {
			failures = append(failures, file.Filename+": 无法读取上传文件")
			continue
		}

		if err := imaging.Validate(data); err != nil {
			failures = append(failures, file.Filename+": "+err.Error())
			continue
		}

		photos = append(photos, validatedPhoto{data: data, ext: ext})
	}

	if len(failures) > 0 {
		return nil, platformservice.NewValidationError(strings.Join(failures, "；"))
	}
	return photos, nil
}

// savePhotoFiles 将校验通过的图片写入磁盘，按日期分目录、uuid 命名。
// 返回相对路径列表；任何一张写入失败则删除本批已写入的文件。
func (s *Service) savePhotoFiles(photos []validatedPhoto) ([]string, error) {
	cfg := config.Get()
	photoRoot := cfg.Upload.PhotoPath
	if photoRoot == "" {
		photoRoot = "uploads/photos"
	}
	photoRootAbs, err := filepath.Abs(photoRoot)
	if err != nil {
		return nil, platformservice.NewInternalError("系统错误: 上传目录解析失败")
	}
	if err := utils.EnsurePathNotSymlink(photoRootAbs); err != nil {
		log.Printf("Photo root security check failed: %v", err)
		return nil, platformservice.NewInternalError("系统错误: 上传目录存在符号链接风险")
	}

	now := time.Now()
	datePath := filepath.Join(now.Format("2006"), now.Format("01"), now.Format("02"))
	fullDir, err := utils.SecureJoin(photoRootAbs, datePath)
	if err != nil {
		log.Printf("SecureJoin dir error: %v", err)
		return nil, platformservice.NewInternalError("系统错误: 非法存储目录")
	}
	if err := os.MkdirAll(fullDir, 0755); err != nil {
		log.Printf("MkdirAll error: %v", err)
		return nil, platformservice.NewInternalError("系统错误: 无法创建存储目录")
	}
	// 目录创建后再次检查链路，降低 TOCTOU 风险
	if err := utils.EnsureNoSymlinkBetween(photoRootAbs, fullDir); err != nil {
		log.Printf("Photo dir security check failed: %v", err)
		return nil, platformservice.NewInternalError("系统错误: 存储目录存在符号链接风险")
	}

	relPaths := make([]string, 0, len(photos))
	var written []string

	cleanup := func() {
		for _, p := range written {
			_ = os.Remove(p)
		}
	}

	for _, photo := range photos {
		newFilename := uuid.New().String() + photo.ext
		dst, err := utils.SecureJoin(fullDir, newFilename)
		if err != nil {
			cleanup()
			log.Printf("SecureJoin dst error: %v", err)
			return nil, platformservice.NewInternalError("系统错误: 非法文件路径")
		}
		if err := os.WriteFile(dst, photo.data, 0644); err != nil {
			cleanup()
			log.Printf("Write photo error: %v", err)
			return nil, platformservice.NewInternalError("文件保存失败")
		}
		written = append(written, dst)
		relPaths = append(relPaths, filepath.ToSlash(filepath.Join(datePath, newFilename)))
	}

	return relPaths, nil
}

// removePhotoFiles 按相对路径删除照片文件，删除前做路径安全校验
func removePhotoFiles(relPaths ...string) {
	cfg := config.Get()
	photoRoot := cfg.Upload.PhotoPath
	if photoRoot == "" {
		photoRoot = "uploads/photos"
	}
	photoRootAbs, err := filepath.Abs(photoRoot)
	if err != nil {
		return
	}
	for _, rel := range relPaths {
		if rel == "" {
			continue
		}
		abs, err := utils.SecureJoin(photoRootAbs, rel)
		if err != nil {
			log.Printf("Remove photo secure path error: %v", err)
			continue
		}
		if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
			log.Printf("Remove photo file error: %v", err)
		}
	}
}

// extensionAllowed 按运行时配置 allow_file_extensions 判断扩展名
func (s *Service) extensionAllowed(ext string) bool {
	if ext == "" {
		return false
	}
	allowed := s.GetString(consts.ConfigAllowFileExtensions)
	for _, item := range strings.Split(allowed, ",") {
		if strings.EqualFold(strings.TrimSpace(item), ext) {
			return true
		}
	}
	return false
}
