package bit

// Combine joins two bytes into a 16 bit value, high byte first.
func Combine(high, low uint8) uint16 {
	return (uint16(high) << 8) | uint16(low)
}

// High returns the most significant byte of a 16 bit value.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// Low returns the least significant byte of a 16 bit value.
func Low(value uint16) uint8 {
	return uint8(value & 0xFF)
}

// IsSet reports whether the bit at index is 1.
// Indexes past bit 7 are never set.
func IsSet(index, b uint8) bool {
	return ((b >> index) & 1) == 1
}

// Set returns b with the bit at index set to 1.
func Set(index, b uint8) uint8 {
	return b | (1 << index)
}

// Reset returns b with the bit at index set to 0.
func Reset(index, b uint8) uint8 {
	return b &^ (1 << index)
}

// SetTo returns b with the bit at index set to 1 when on is true, 0 otherwise.
func SetTo(index, b uint8, on bool) uint8 {
	if on {
		return Set(index, b)
	}

	return Reset(index, b)
}
