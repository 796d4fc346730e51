package thumbnail

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage(w, h)))
	return buf.Bytes()
}

func TestResize_KeepsAspectRatio(t *testing.T) {
	out := Resize(testImage(1000, 500), 250)
	require.Equal(t, 250, out.Bounds().Dx())
	require.Equal(t, 125, out.Bounds().Dy())

	up := Resize(testImage(50, 100), 100)
	require.Equal(t, image.Rect(0, 0, 100, 200), up.Bounds())
}

func TestResize_MinimumHeight(t *testing.T) {
	out := Resize(testImage(1000, 1), 100)
	require.Equal(t, 1, out.Bounds().Dy())
}

func TestRender_FormatFollowsSource(t *testing.T) {
	out, err := Render(encodePNG(t, 600, 300), 100)
	require.NoError(t, err)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "png", format)
	require.Equal(t, 100, cfg.Width)
	require.Equal(t, 50, cfg.Height)

	var jb bytes.Buffer
	require.NoError(t, jpeg.Encode(&jb, testImage(400, 400), nil))
	out, err = Render(jb.Bytes(), 250)
	require.NoError(t, err)
	_, format, err = image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
}

func TestRender_Errors(t *testing.T) {
	_, err := Render([]byte("not an image"), 100)
	require.Error(t, err)

	_, err = Render(encodePNG(t, 10, 10), 0)
	require.Error(t, err)
}

// pngHeader is a PNG signature plus a valid IHDR and no pixel data.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8], ihdr[9] = 8, 6 // 8-bit RGBA

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestDecode_RejectsOversizedHeader(t *testing.T) {
	_, _, err := Decode(pngHeader(100_000, 100_000), 0)
	require.ErrorIs(t, err, ErrTooLarge)

	_, err = Render(pngHeader(1<<20, 1<<20), 100)
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestDecode_MaxPixelsBoundary(t *testing.T) {
	data := encodePNG(t, 10, 10)

	img, format, err := Decode(data, 100)
	require.NoError(t, err)
	require.Equal(t, "png", format)
	require.Equal(t, 10, img.Bounds().Dx())

	_, _, err = Decode(data, 99)
	require.ErrorIs(t, err, ErrTooLarge)
}
