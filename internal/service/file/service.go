package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"math"
	"path"
	"strings"
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/storage"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/validator"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	ProofCheckIn  = "checkin"
	ProofCheckOut = "checkout"
)

type FileService interface {
	// UploadAttendanceProof stores a check-in/check-out photo and returns its storage reference
	UploadAttendanceProof(ctx context.Context, employeeID int64, kind string, at time.Time, raw []byte) (string, error)

	UploadAvatar(ctx context.Context, employeeID int64, raw []byte, format string) (string, error)

	DeleteFile(ctx context.Context, ref string) error
	GetFileURL(ctx context.Context, ref string) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadAttendanceProof compresses the photo to at most ~150KB of JPEG and stores it as
// {kind}/{YYYY-MM-DD}/employee_{id}_{YYYYmmdd_HHMMSS}_{suffix}.jpg
func (s *fileServiceImpl) UploadAttendanceProof(ctx context.Context, employeeID int64, kind string, at time.Time, raw []byte) (string, error) {
	if kind != ProofCheckIn && kind != ProofCheckOut {
		return "", fmt.Errorf("unknown proof kind %q", kind)
	}

	compressed, err := compressImage(raw, 150*1024)
	if err != nil {
		return "", fmt.Errorf("failed to compress image: %w", err)
	}

	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	filename := fmt.Sprintf("employee_%d_%s_%s.jpg", employeeID, at.Format("20060102_150405"), suffix)
	key := path.Join(kind, at.Format("2006-01-02"), filename)

	ref, err := s.storage.Upload(ctx, bytes.NewReader(compressed), key, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload attendance proof: %w", err)
	}
	return ref, nil
}

// UploadAvatar stores a profile picture as-is under avatars/{employeeID}/.
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, employeeID int64, raw []byte, format string) (string, error) {
	ext, contentType := ".jpg", "image/jpeg"
	if format == "png" {
		ext, contentType = ".png", "image/png"
	}

	key := path.Join("avatars", fmt.Sprint(employeeID), uuid.NewString()+ext)
	ref, err := s.storage.Upload(ctx, bytes.NewReader(raw), key, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}
	return ref, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, ref string) error {
	return s.storage.Delete(ctx, ref)
}

// GetFileURL resolves a storage reference to a loadable URL. Presigned URLs live for an hour.
func (s *fileServiceImpl) GetFileURL(ctx context.Context, ref string) (string, error) {
	return s.storage.GetURL(ctx, ref, time.Hour)
}

// compressImage re-encodes an image as JPEG of at most maxSize where it can,
// lowering quality first and downscaling after that.
func compressImage(buffer []byte, maxSize int) ([]byte, error) {
	if err := validator.CheckImageSize(buffer); err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if format == "jpeg" && len(buffer) <= maxSize {
		return buffer, nil
	}

	var compressed []byte
	for quality := 85; quality >= 50; quality -= 5 {
		compressed, err = encodeJPEG(img, quality)
		if err != nil {
			return nil, err
		}
		if len(compressed) <= maxSize {
			return compressed, nil
		}
	}

	// Still too large: shrink towards ~100KB, keeping the aspect ratio and at
	// least 600x400 unless the source is already smaller
	bounds := img.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	floor := math.Min(1, math.Max(600/w, 400/h))
	scale := math.Max(math.Sqrt(float64(100*1024)/float64(len(compressed))), floor)
	if scale >= 1 {
		return encodeJPEG(img, 70)
	}

	newWidth := max(int(math.Round(w*scale)), 1)
	newHeight := max(int(math.Round(h*scale)), 1)
	return encodeJPEG(resizeImage(img, newWidth, newHeight), 70)
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// resizeImage resizes an image to the specified dimensions using high-quality interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
