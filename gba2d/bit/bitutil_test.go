package bit

import (
	"testing"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		high, low uint8
		expected  uint16
	}{
		{0xAB, 0xCD, 0xABCD},
		{0x00, 0x00, 0x0000},
		{0xFF, 0xFF, 0xFFFF},
		{0x12, 0x34, 0x1234},
	}

	for _, tt := range tests {
		result := Combine(tt.high, tt.low)
		if result != tt.expected {
			t.Errorf("Combine(%X, %X) = %X; want %X", tt.high, tt.low, result, tt.expected)
		}
	}
}

func TestLowHigh(t *testing.T) {
	tests := []struct {
		value     uint16
		low, high uint8
	}{
		{0xABCD, 0xCD, 0xAB},
		{0x0000, 0x00, 0x00},
		{0x03FF, 0xFF, 0x03},
	}

	for _, tt := range tests {
		if got := Low(tt.value); got != tt.low {
			t.Errorf("Low(%X) = %X; want %X", tt.value, got, tt.low)
		}
		if got := High(tt.value); got != tt.high {
			t.Errorf("High(%X) = %X; want %X", tt.value, got, tt.high)
		}
		if got := Combine(High(tt.value), Low(tt.value)); got != tt.value {
			t.Errorf("Combine(High, Low) of %X = %X", tt.value, got)
		}
	}
}

func TestIsSet16(t *testing.T) {
	tests := []struct {
		value    uint16
		index    uint8
		expected bool
	}{
		{0b1010101010101010, 0, false},
		{0b1010101010101010, 1, true},
		{0b1010101010101010, 15, true},
		{0x03FF, 9, true},
		{0x03FF, 10, false},
		{0xFFFF, 16, false},
	}

	for _, tt := range tests {
		result := IsSet16(tt.index, tt.value)
		if result != tt.expected {
			t.Errorf("IsSet16(%d, %016b) = %v; want %v", tt.index, tt.value, result, tt.expected)
		}
	}
}

func TestSetClear16(t *testing.T) {
	tests := []struct {
		value   uint16
		index   uint8
		set     uint16
		cleared uint16
	}{
		{0x0000, 0, 0x0001, 0x0000},
		{0x03FF, 0, 0x03FF, 0x03FE},
		{0x03FF, 9, 0x03FF, 0x01FF},
		{0x0010, 4, 0x0010, 0x0000},
		{0x0000, 15, 0x8000, 0x0000},
	}

	for _, tt := range tests {
		if got := Set16(tt.index, tt.value); got != tt.set {
			t.Errorf("Set16(%d, %04X) = %04X; want %04X", tt.index, tt.value, got, tt.set)
		}
		if got := Clear16(tt.index, tt.value); got != tt.cleared {
			t.Errorf("Clear16(%d, %04X) = %04X; want %04X", tt.index, tt.value, got, tt.cleared)
		}
	}
}

func TestToggle16(t *testing.T) {
	value := uint16(0x0403)
	once := Toggle16(0x0010, value)
	if once != 0x0413 {
		t.Errorf("Toggle16 = %04X; want 0413", once)
	}
	if twice := Toggle16(0x0010, once); twice != value {
		t.Errorf("Toggle16 twice = %04X; want %04X", twice, value)
	}
}

func TestAnySet(t *testing.T) {
	if !AnySet(0x0001, 0x03FF) {
		t.Error("AnySet(0x0001, 0x03FF) = false; want true")
	}
	if AnySet(0x0001, 0x03FE) {
		t.Error("AnySet(0x0001, 0x03FE) = true; want false")
	}
}

func TestExtractBits16(t *testing.T) {
	tests := []struct {
		value    uint16
		high     uint8
		low      uint8
		expected uint16
	}{
		{0x0403, 2, 0, 3},
		{0x0405, 2, 0, 5},
		{0x0410, 4, 4, 1},
		{0xFFFF, 15, 0, 0xFFFF},
		{0b1101_0110, 6, 4, 0b101},
	}

	for _, tt := range tests {
		result := ExtractBits16(tt.value, tt.high, tt.low)
		if result != tt.expected {
			t.Errorf("ExtractBits16(%016b, %d, %d) = %b; want %b", tt.value, tt.high, tt.low, result, tt.expected)
		}
	}
}
