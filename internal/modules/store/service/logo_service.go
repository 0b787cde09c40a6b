package service

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"auto-vitrine-server/internal/config"
	"auto-vitrine-server/internal/consts"
	platformservice "auto-vitrine-server/internal/platform/service"
	"auto-vitrine-server/internal/utils"

	"github.com/google/uuid"
)

// UpdateStoreLogo 更新门店 Logo：校验归属与文件类型后落盘，再更新数据库。
// 数据库失败时回滚已写入的文件；成功后删除旧 Logo 文件。
func (s *Service) UpdateStoreLogo(storeID uint, userID uint, file *multipart.FileHeader) (string, error) {
	store, err := s.GetOwnedStore(storeID, userID)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !s.extensionAllowed(ext) {
		return "", platformservice.NewValidationError("不支持的文件类型: " + ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", platformservice.NewInternalError("无法读取上传文件")
	}
	defer func() { _ = src.Close() }()

	if ok, msg := utils.ValidateImageContent(src, ext); !ok {
		return "", platformservice.NewValidationError(msg)
	}

	cfg := config.Get()
	logoRoot := cfg.Upload.LogoPath
	if logoRoot == "" {
		logoRoot = "uploads/logos"
	}
	logoRootAbs, err := filepath.Abs(logoRoot)
	if err != nil {
		return "", platformservice.NewInternalError("系统错误: Logo 目录解析失败")
	}
	// 先检查 Logo 根目录节点本身不是符号链接
	if err := utils.EnsurePathNotSymlink(logoRootAbs); err != nil {
		log.Printf("Logo root security check failed: %v", err)
		return "", platformservice.NewInternalError("系统错误: Logo 目录存在符号链接风险")
	}

	storeIDStr := fmt.Sprintf("%v", store.ID)
	storageDir, err := utils.SecureJoin(logoRootAbs, storeIDStr)
	if err != nil {
		log.Printf("Logo storage dir error: %v", err)
		return "", platformservice.NewInternalError("系统错误: 非法 Logo 目录")
	}

	if err := os.MkdirAll(storageDir, 0755); err != nil {
		log.Printf("MkdirAll error: %v", err)
		return "", platformservice.NewInternalError("系统错误: 无法创建存储目录")
	}
	// 目录创建后再次检查链路，降低 TOCTOU 风险
	if err := utils.EnsureNoSymlinkBetween(logoRootAbs, storageDir); err != nil {
		log.Printf("Logo storage security check failed: %v", err)
		return "", platformservice.NewInternalError("系统错误: Logo 目录存在符号链接风险")
	}

	newFilename := uuid.New().String() + ext
	dstPath, err := utils.SecureJoin(storageDir, newFilename)
	if err != nil {
		log.Printf("Logo dst secure join error: %v", err)
		return "", platformservice.NewInternalError("系统错误: 非法 Logo 文件路径")
	}

	out, err := os.Create(dstPath)
	if err != nil {
		log.Printf("File create error: %v", err)
		return "", platformservice.NewInternalError("系统错误: 无法创建文件")
	}
	defer func() { _ = out.Close() }()

	if _, err = io.Copy(out, src); err != nil {
		log.Printf("File save error: %v", err)
		return "", platformservice.NewInternalError("文件保存失败")
	}

	oldLogo := store.Logo
	relativePath := filepath.ToSlash(filepath.Join(storeIDStr, newFilename))

	if err := s.storeStore.UpdateLogo(store.ID, relativePath); err != nil {
		_ = os.Remove(dstPath) // 回滚文件
		log.Printf("DB update logo error: %v", err)
		return "", platformservice.NewInternalError("系统错误: 数据库更新失败")
	}

	if oldLogo != "" {
		oldLogoPath, secureErr := utils.SecureJoin(logoRootAbs, oldLogo)
		if secureErr != nil {
			log.Printf("Old logo secure path error: %v", secureErr)
		} else {
			_ = os.Remove(oldLogoPath)
		}
	}

	return cfg.Upload.LogoURLPrefix + relativePath, nil
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
