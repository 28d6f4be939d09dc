package window

import "fmt"

const bytesPerPixel = 4

// toRGBA converts 0xRRGGBBAA frame pixels to the RGBA byte stream
// ebiten.Image.WritePixels expects.
func toRGBA(frame []uint32, dst []byte) {
	for i, p := range frame {
		j := i * bytesPerPixel
		dst[j] = byte(p >> 24)
		dst[j+1] = byte(p >> 16)
		dst[j+2] = byte(p >> 8)
		dst[j+3] = byte(p)
	}
}

func statusText(frames uint64, fps float64) string {
	return fmt.Sprintf("frame %d  %.1f fps", frames, fps)
}
