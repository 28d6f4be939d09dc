package addr

// display registers
const (
	// Display control register (DISPCNT).
	DISPCNT uint32 = 0x04000000
	// Display status register (DISPSTAT).
	DISPSTAT uint32 = 0x04000004
	// Vertical counter (VCOUNT), readonly. Current scanline, 0-227.
	VCOUNT uint32 = 0x04000006
)

// input registers
const (
	// Keypad status (KEYINPUT), readonly. One bit per button, active-low.
	KEYINPUT uint32 = 0x04000130
)

// I/O block bounds.
const (
	IOStart uint32 = 0x04000000
	IOEnd   uint32 = 0x040003FF
	IOSize         = IOEnd - IOStart + 1
)

// Video RAM.
const (
	// VRAM is the base of video memory and of bitmap page 0.
	VRAM uint32 = 0x06000000
	// VRAMSize is the amount of video memory, 96KB.
	VRAMSize uint32 = 0x18000
	// PageSize is the distance between bitmap page 0 and page 1.
	PageSize uint32 = 0xA000
	// Page1 is the base of the second bitmap page (modes 4 and 5).
	Page1 = VRAM + PageSize
)

// DISPCNT bits
const (
	// VideoModeMask selects the BG mode field, bits 0-2.
	VideoModeMask uint16 = 0x0007
	// ShowFrame1 selects page 1 for scan-out in modes 4 and 5, bit 4.
	ShowFrame1 uint16 = 1 << 4
	// ForcedBlank blanks the screen, bit 7.
	ForcedBlank uint16 = 1 << 7
	ShowBG0     uint16 = 1 << 8
	ShowBG1     uint16 = 1 << 9
	ShowBG2     uint16 = 1 << 10
	ShowBG3     uint16 = 1 << 11
	ShowOBJ     uint16 = 1 << 12
)

// DISPSTAT bits
const (
	VBlankFlag   uint16 = 1 << 0
	HBlankFlag   uint16 = 1 << 1
	VCounterFlag uint16 = 1 << 2
)

// KeyMask covers the ten keypad bits of KEYINPUT.
const KeyMask uint16 = 0x03FF
