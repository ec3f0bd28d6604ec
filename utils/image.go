package utils

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// AllowedImageTypes defines the allowed image file extensions
var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ValidateImageFile checks if the uploaded file is a valid image
func ValidateImageFile(file *multipart.FileHeader) error {
	if file.Size > 5*1024*1024 {
		return fmt.Errorf("file size exceeds 5MB limit")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedImageTypes[ext] {
		return fmt.Errorf("invalid file type. Allowed types: jpg, jpeg, png")
	}

	return nil
}

// SaveImageWithOrientation saves an uploaded image under uploadDir, rewriting
// it upright when the EXIF orientation tag says the pixels are rotated. The
// stored filename is "<epoch-millis>_<original-name>" and is returned to the
// caller for later filename-keyed retrieval.
func SaveImageWithOrientation(file *multipart.FileHeader, uploadDir string) (string, error) {
	if file == nil || file.Size == 0 {
		return "", fmt.Errorf("empty upload")
	}

	if err := ValidateImageFile(file); err != nil {
		return "", err
	}

	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %v", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %v", err)
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(file.Filename))
	outPath := filepath.Join(uploadDir, filename)

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// Not a decodable image, store the raw bytes as-is
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return "", fmt.Errorf("failed to save file: %v", err)
		}
		return filename, nil
	}

	rotated := applyOrientation(img, readOrientation(data))

	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %v", err)
	}
	defer out.Close()

	if err := imaging.Encode(out, rotated, imaging.JPEG); err != nil {
		return "", fmt.Errorf("failed to encode image: %v", err)
	}

	return filename, nil
}

// readOrientation returns the EXIF orientation value, defaulting to 1
// (upright) when no EXIF data is present.
func readOrientation(data []byte) int {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return orientation
}

// applyOrientation rotates img upright. Only the three rotation-only EXIF
// values are handled, mirrored orientations pass through unchanged.
func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 3: // upside down
		return imaging.Rotate180(img)
	case 6: // rotated 90 CCW on disk, rotate 90 CW to correct
		return imaging.Rotate270(img)
	case 8: // rotated 90 CW on disk, rotate 90 CCW to correct
		return imaging.Rotate90(img)
	default:
		return img
	}
}

// ImagePath resolves a stored filename to its path under the upload directory
func ImagePath(uploadDir, filename string) string {
	return filepath.Join(uploadDir, filepath.Base(filename))
}

// DeleteFile deletes a file from the filesystem
func DeleteFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file: %v", err)
	}
	return nil
}
