// Package storage - Test build URL công khai, xóa file theo URL và detect loại media.
package storage

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/uploads/a.png", PublicURL("http://localhost:8080", "a.png"))
	// Trailing slash của baseURL không tạo ra double slash
	assert.Equal(t, "http://localhost:8080/uploads/a.png", PublicURL("http://localhost:8080/", "a.png"))
}

func TestRemoveByURL_XoaFileTonTai(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "media.png")
	assert.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	RemoveByURL("http://localhost:8080/uploads/media.png", dir)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file phải bị xóa")
}

func TestRemoveByURL_BoQuaURLNgoaiUploads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "media.png")
	assert.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	// URL không trỏ vào /uploads/: không làm gì
	RemoveByURL("http://localhost:8080/static/media.png", dir)

	_, err := os.Stat(path)
	assert.NoError(t, err, "file không được phép bị xóa")
}

func TestRemoveByURL_ChanPathTraversal(t *testing.T) {
	dir := t.TempDir()
	outside := filepath.Join(dir, "ngoai.txt")
	assert.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))
	uploadDir := filepath.Join(dir, "uploads")
	assert.NoError(t, os.MkdirAll(uploadDir, 0o755))

	// Tên file chứa ".." hoặc "/" phải bị bỏ qua
	RemoveByURL("http://localhost:8080/uploads/../ngoai.txt", uploadDir)

	_, err := os.Stat(outside)
	assert.NoError(t, err, "file ngoài thư mục upload không được phép bị xóa")
}

// makeFileHeader tạo multipart.FileHeader thật từ nội dung bytes để test detect.
func makeFileHeader(t *testing.T, filename string, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="media"; filename="`+filename+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	assert.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["media"]
	assert.Len(t, files, 1)
	return files[0]
}

// pngHeader 8 byte magic của file PNG, đủ để http.DetectContentType nhận ra image/png
var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestDetectMediaType_Anh(t *testing.T) {
	fh := makeFileHeader(t, "photo.png", "", pngHeader)

	mediaType, err := DetectMediaType(fh)
	assert.NoError(t, err)
	assert.Equal(t, MediaTypeImage, mediaType)
}

func TestDetectMediaType_VideoTheoContentTypeKhaiBao(t *testing.T) {
	// Nội dung mp4 sniff ra octet-stream, fallback về Content-Type của form part
	fh := makeFileHeader(t, "clip.mp4", "video/mp4", []byte{0x00, 0x01, 0x02, 0x03})

	mediaType, err := DetectMediaType(fh)
	assert.NoError(t, err)
	assert.Equal(t, MediaTypeVideo, mediaType)
}

func TestDetectMediaType_TuChoiFileKhac(t *testing.T) {
	fh := makeFileHeader(t, "doc.txt", "", []byte("chỉ là text thường"))

	_, err := DetectMediaType(fh)
	assert.Error(t, err)
}

func TestSaveUploadedFile_GiuExtension(t *testing.T) {
	dir := t.TempDir()
	fh := makeFileHeader(t, "Ảnh Món.PNG", "", pngHeader)

	name, err := SaveUploadedFile(fh, dir)
	assert.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(name), "extension phải được giữ và lowercase")

	data, err := os.ReadFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	assert.Equal(t, pngHeader, data)
}
