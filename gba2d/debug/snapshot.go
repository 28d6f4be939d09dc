// Package debug saves captured frames as PNG images and text dumps.
package debug

import (
	"bufio"
	"crypto/md5"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/valerio/go-gba2d/gba2d/video"
)

// textRamp maps luminance to characters, darkest first.
const textRamp = " .:-=+*#%@"

// FrameImage converts a frame buffer into an image.
func FrameImage(frame *video.FrameBuffer) *image.RGBA {
	w, h := int(frame.Width()), int(frame.Height())
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, p := range frame.ToSlice() {
		img.Pix[i*4] = byte(p >> 24)
		img.Pix[i*4+1] = byte(p >> 16)
		img.Pix[i*4+2] = byte(p >> 8)
		img.Pix[i*4+3] = byte(p)
	}
	return img
}

// TakeSnapshot handles the snapshot key for backends, saving into the
// working directory.
func TakeSnapshot(frame *video.FrameBuffer) {
	if frame == nil {
		slog.Warn("No frame data available for snapshot")
		return
	}

	if _, err := SaveFramePNGToDir(frame, "gba2d_snapshot", ""); err != nil {
		slog.Error("Failed to save snapshot", "error", err)
	}
}

// SaveFramePNGToDir saves a framebuffer as PNG with timestamp to a specific
// directory, or the working directory if directory is empty. It returns the
// path written.
func SaveFramePNGToDir(frame *video.FrameBuffer, baseName, directory string) (string, error) {
	outputDir := directory
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		outputDir = cwd
	}

	timestamp := time.Now().Format("20060102_150405")
	filePath := filepath.Join(outputDir, fmt.Sprintf("%s_%s.png", baseName, timestamp))

	if err := SaveFramePNG(frame, filePath); err != nil {
		return "", err
	}

	slog.Info("Snapshot saved", "path", filePath, "size", fmt.Sprintf("%dx%d", frame.Width(), frame.Height()), "format", "PNG")
	return filePath, nil
}

// SaveFramePNG writes frame to path as a PNG.
func SaveFramePNG(frame *video.FrameBuffer, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, FrameImage(frame)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return file.Close()
}

// WriteTextSnapshot renders frame as text, one character per 2x2 block of
// pixels, brighter blocks drawn with denser characters.
func WriteTextSnapshot(w io.Writer, frame *video.FrameBuffer) error {
	bw := bufio.NewWriter(w)
	width, height := frame.Width(), frame.Height()

	for y := uint(0); y < height; y += 2 {
		for x := uint(0); x < width; x += 2 {
			var sum, n uint32
			for dy := uint(0); dy < 2 && y+dy < height; dy++ {
				for dx := uint(0); dx < 2 && x+dx < width; dx++ {
					sum += luminance(frame.GetPixel(x+dx, y+dy))
					n++
				}
			}
			bw.WriteByte(textRamp[(sum/n)*uint32(len(textRamp)-1)/255])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// luminance returns the Rec. 601 luma of an 0xRRGGBBAA pixel, 0-255.
func luminance(p uint32) uint32 {
	r, g, b := p>>24&0xFF, p>>16&0xFF, p>>8&0xFF
	return (299*r + 587*g + 114*b) / 1000
}

// FrameHash returns the MD5 of the frame contents, for golden comparisons.
func FrameHash(frame *video.FrameBuffer) string {
	h := md5.New()
	buf := make([]byte, 4)
	for _, p := range frame.ToSlice() {
		buf[0], buf[1], buf[2], buf[3] = byte(p>>24), byte(p>>16), byte(p>>8), byte(p)
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
