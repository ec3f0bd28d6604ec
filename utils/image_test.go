package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildJPEG encodes a width x height image as JPEG
func buildJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 20), G: uint8(y * 10), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

// withOrientation splices a minimal EXIF APP1 segment carrying the given
// orientation value right after the SOI marker
func withOrientation(t *testing.T, jpegData []byte, orientation byte) []byte {
	t.Helper()
	require.True(t, len(jpegData) > 2 && jpegData[0] == 0xFF && jpegData[1] == 0xD8, "not a JPEG")

	// TIFF body, little endian: header, one-entry IFD0 with tag 0x0112
	// (orientation, type SHORT), zero next-IFD offset
	tiff := []byte{
		'I', 'I', 0x2A, 0x00, // byte order + magic
		0x08, 0x00, 0x00, 0x00, // offset of IFD0
		0x01, 0x00, // entry count
		0x12, 0x01, // tag 0x0112
		0x03, 0x00, // type SHORT
		0x01, 0x00, 0x00, 0x00, // count
		orientation, 0x00, 0x00, 0x00, // value
		0x00, 0x00, 0x00, 0x00, // next IFD offset
	}

	payload := append([]byte("Exif\x00\x00"), tiff...)
	length := len(payload) + 2

	segment := []byte{0xFF, 0xE1, byte(length >> 8), byte(length & 0xFF)}
	segment = append(segment, payload...)

	out := make([]byte, 0, len(jpegData)+len(segment))
	out = append(out, jpegData[:2]...)
	out = append(out, segment...)
	out = append(out, jpegData[2:]...)
	return out
}

// asFileHeader wraps raw bytes in a multipart.FileHeader the way an HTTP
// upload would deliver them
func asFileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func decodeSaved(t *testing.T, dir, filename string) image.Image {
	t.Helper()

	f, err := os.Open(filepath.Join(dir, filename))
	require.NoError(t, err)
	defer f.Close()

	img, _, err := image.Decode(f)
	require.NoError(t, err)
	return img
}

func TestSaveImageRotatesOrientation6(t *testing.T) {
	dir := t.TempDir()

	data := withOrientation(t, buildJPEG(t, 10, 20), 6)
	fh := asFileHeader(t, "photo.jpg", data)

	filename, err := SaveImageWithOrientation(fh, dir)
	require.NoError(t, err)
	require.Contains(t, filename, "photo.jpg")

	// Orientation 6 means the pixels are stored rotated, the saved image
	// must come out with width and height swapped
	img := decodeSaved(t, dir, filename)
	require.Equal(t, 20, img.Bounds().Dx())
	require.Equal(t, 10, img.Bounds().Dy())
}

func TestSaveImageKeepsUprightImage(t *testing.T) {
	dir := t.TempDir()

	fh := asFileHeader(t, "photo.jpg", buildJPEG(t, 10, 20))

	filename, err := SaveImageWithOrientation(fh, dir)
	require.NoError(t, err)

	img := decodeSaved(t, dir, filename)
	require.Equal(t, 10, img.Bounds().Dx())
	require.Equal(t, 20, img.Bounds().Dy())
}

func TestSaveImageRotatesOrientation3(t *testing.T) {
	dir := t.TempDir()

	data := withOrientation(t, buildJPEG(t, 10, 20), 3)
	fh := asFileHeader(t, "photo.jpg", data)

	filename, err := SaveImageWithOrientation(fh, dir)
	require.NoError(t, err)

	// A 180 degree flip keeps the dimensions
	img := decodeSaved(t, dir, filename)
	require.Equal(t, 10, img.Bounds().Dx())
	require.Equal(t, 20, img.Bounds().Dy())
}

func TestSaveImageRejectsWrongExtension(t *testing.T) {
	fh := asFileHeader(t, "payload.exe", []byte("not an image"))

	_, err := SaveImageWithOrientation(fh, t.TempDir())
	require.Error(t, err)
}

func TestSaveImageUndecodableBytesStoredRaw(t *testing.T) {
	dir := t.TempDir()

	raw := []byte("these are not image bytes")
	fh := asFileHeader(t, "broken.png", raw)

	filename, err := SaveImageWithOrientation(fh, dir)
	require.NoError(t, err)

	saved, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	require.Equal(t, raw, saved)
}
