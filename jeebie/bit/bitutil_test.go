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
		{0x00, 0xFF, 0x00FF},
		{0xFF, 0x00, 0xFF00},
	}

	for _, tt := range tests {
		result := Combine(tt.high, tt.low)
		if result != tt.expected {
			t.Errorf("Combine(%X, %X) = %X; want %X", tt.high, tt.low, result, tt.expected)
		}
	}
}

func TestHighLow(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		value := uint16(v)
		if got := Combine(High(value), Low(value)); got != value {
			t.Fatalf("Combine(High(%04X), Low(%04X)) = %04X", value, value, got)
		}
	}

	if High(0xBEEF) != 0xBE {
		t.Errorf("High(0xBEEF) = %X; want BE", High(0xBEEF))
	}
	if Low(0xBEEF) != 0xEF {
		t.Errorf("Low(0xBEEF) = %X; want EF", Low(0xBEEF))
	}
}

func TestIsSet(t *testing.T) {
	tests := []struct {
		byte     uint8
		index    uint8
		expected bool
	}{
		{0b10101010, 0, false},
		{0b10101010, 1, true},
		{0b10101010, 2, false},
		{0b10101010, 7, true},
		{0b10101010, 8, false},
		{0b10101010, 255, false},
	}

	for _, tt := range tests {
		result := IsSet(tt.index, tt.byte)
		if result != tt.expected {
			t.Errorf("IsSet(%d, %08b) = %v; want %v", tt.index, tt.byte, result, tt.expected)
		}
	}
}

func TestSetReset(t *testing.T) {
	tests := []struct {
		byte  uint8
		index uint8
		set   uint8
		reset uint8
	}{
		{0b00000000, 0, 0b00000001, 0b00000000},
		{0b11111111, 7, 0b11111111, 0b01111111},
		{0b10101010, 4, 0b10111010, 0b10101010},
		{0b10111010, 4, 0b10111010, 0b10101010},
	}

	for _, tt := range tests {
		if got := Set(tt.index, tt.byte); got != tt.set {
			t.Errorf("Set(%d, %08b) = %08b; want %08b", tt.index, tt.byte, got, tt.set)
		}
		if got := Reset(tt.index, tt.byte); got != tt.reset {
			t.Errorf("Reset(%d, %08b) = %08b; want %08b", tt.index, tt.byte, got, tt.reset)
		}
		if got := SetTo(tt.index, tt.byte, true); got != tt.set {
			t.Errorf("SetTo(%d, %08b, true) = %08b; want %08b", tt.index, tt.byte, got, tt.set)
		}
		if got := SetTo(tt.index, tt.byte, false); got != tt.reset {
			t.Errorf("SetTo(%d, %08b, false) = %08b; want %08b", tt.index, tt.byte, got, tt.reset)
		}
	}
}
