package bit

// Combine combines two 8 bit values into a single 16 bit value.
// The high byte will be the most significant one.
func Combine(high, low uint8) uint16 {
	return (uint16(high) << 8) | uint16(low)
}

// Low returns the low (LSB) part of a 16 bit number.
func Low(value uint16) uint8 {
	return uint8(value)
}

// High returns the high (MSB) part of a 16 bit number.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// IsSet16 will check if the bit at the specified index is set to 1 or not.
func IsSet16(index uint8, value uint16) bool {
	return ((value >> index) & 1) == 1
}

// Set16 will return the passed value with the bit at the specified index set to 1.
func Set16(index uint8, value uint16) uint16 {
	return value | (1 << index)
}

// Clear16 will return the passed value with the bit at the specified index set to 0.
func Clear16(index uint8, value uint16) uint16 {
	return value &^ (1 << index)
}

// Toggle16 flips every bit of value that is set in mask.
func Toggle16(mask, value uint16) uint16 {
	return value ^ mask
}

// AnySet reports whether any bit of mask is set in value.
func AnySet(mask, value uint16) bool {
	return value&mask != 0
}

// ExtractBits16 extracts bits from highBit to lowBit (inclusive)
// Example: ExtractBits16(0b0000_0100_0000_0101, 2, 0) -> 0b101
func ExtractBits16(value uint16, highBit, lowBit uint8) uint16 {
	shift := lowBit
	width := highBit - lowBit + 1
	mask := uint16((1 << width) - 1)
	return (value >> shift) & mask
}
