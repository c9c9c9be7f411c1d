// Package storage lưu file upload (ảnh món ăn, media màn hình) xuống đĩa
// và build URL công khai cho chúng. Tên file dùng UUID để tránh đụng độ
// và không lộ tên file gốc của người upload.
package storage

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"menu_board/internal/common"
)

// MediaTypeImage, MediaTypeVideo là hai loại media được hỗ trợ cho màn hình.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// maxSniffBytes số byte đầu file dùng để detect MIME type.
const maxSniffBytes = 512

// SaveUploadedFile lưu file multipart vào uploadDir với tên UUID, giữ extension gốc.
// Trả về tên file đã lưu (không kèm thư mục).
func SaveUploadedFile(fileHeader *multipart.FileHeader, uploadDir string) (string, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", common.NewError(common.ErrCodeUpload, "Không thể tạo thư mục upload", common.StatusInternalServerError, err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", common.NewError(common.ErrCodeUpload, "Không thể đọc file upload", common.StatusBadRequest, err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	name := uuid.New().String() + ext
	dstPath := filepath.Join(uploadDir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", common.NewError(common.ErrCodeUpload, "Không thể ghi file upload", common.StatusInternalServerError, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", common.NewError(common.ErrCodeUpload, "Không thể ghi file upload", common.StatusInternalServerError, err)
	}

	return name, nil
}

// DetectMediaType sniff MIME type từ nội dung file (512 byte đầu) và phân loại image/video.
// Trả lỗi nếu file không phải ảnh hoặc video.
func DetectMediaType(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", common.NewError(common.ErrCodeUpload, "Không thể đọc file upload", common.StatusBadRequest, err)
	}
	defer src.Close()

	buf := make([]byte, maxSniffBytes)
	n, err := src.Read(buf)
	if err != nil && err != io.EOF {
		return "", common.NewError(common.ErrCodeUpload, "Không thể đọc file upload", common.StatusBadRequest, err)
	}

	contentType := detectContentType(buf[:n], fileHeader)
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return MediaTypeImage, nil
	case strings.HasPrefix(contentType, "video/"):
		return MediaTypeVideo, nil
	default:
		return "", common.NewError(common.ErrCodeUpload, "File phải là ảnh hoặc video, nhận được: "+contentType, common.StatusBadRequest, nil)
	}
}

// detectContentType ưu tiên sniff nội dung; mp4 và một số container video
// sniff ra application/octet-stream nên fallback về Content-Type của form part.
func detectContentType(head []byte, fileHeader *multipart.FileHeader) string {
	contentType := http.DetectContentType(head)
	if contentType == "application/octet-stream" {
		if declared := fileHeader.Header.Get("Content-Type"); declared != "" {
			return declared
		}
	}
	return contentType
}

// PublicURL build URL công khai cho một file đã upload.
func PublicURL(baseURL string, fileName string) string {
	return strings.TrimRight(baseURL, "/") + "/uploads/" + fileName
}

// RemoveByURL xóa file trên đĩa từ URL công khai của nó. Bỏ qua nếu URL không
// trỏ vào /uploads/ hoặc file không tồn tại (media có thể đã bị xóa tay).
func RemoveByURL(publicURL string, uploadDir string) {
	idx := strings.LastIndex(publicURL, "/uploads/")
	if idx < 0 {
		return
	}
	name := publicURL[idx+len("/uploads/"):]
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return
	}
	os.Remove(filepath.Join(uploadDir, name))
}
