package sdl2

const bytesPerPixel = 4

// toRGBA8888 converts 0xRRGGBBAA frame pixels to the byte order of an
// RGBA8888 texture on a little-endian host, which is ABGR.
func toRGBA8888(frame []uint32, dst []byte) {
	for i, p := range frame {
		j := i * bytesPerPixel
		dst[j] = byte(p)
		dst[j+1] = byte(p >> 8)
		dst[j+2] = byte(p >> 16)
		dst[j+3] = byte(p >> 24)
	}
}
