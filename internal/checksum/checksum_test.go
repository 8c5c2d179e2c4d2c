package checksum

import "testing"

// Reference vectors over the standard CRC check string. These pin the exact
// bit order of each algorithm; any change here is a wire format break.
func TestSumReferenceVectors(t *testing.T) {
	data := []byte("123456789")
	if got := Sum8(data); got != 0xF7 {
		t.Fatalf("Sum8: got 0x%02X want 0xF7", got)
	}
	if got := Sum16(data); got != 0x29B1 {
		t.Fatalf("Sum16: got 0x%04X want 0x29B1", got)
	}
	if got := Sum32(data); got != 0xCBF43926 {
		t.Fatalf("Sum32: got 0x%08X want 0xCBF43926", got)
	}
}

func TestSumEmptyInputIsInitialRegister(t *testing.T) {
	if got := Sum8(nil); got != 0xFF {
		t.Fatalf("Sum8(nil): got 0x%02X", got)
	}
	if got := Sum16(nil); got != 0xFFFF {
		t.Fatalf("Sum16(nil): got 0x%04X", got)
	}
	if got := Sum32(nil); got != 0 {
		t.Fatalf("Sum32(nil): got 0x%08X", got)
	}
}

func TestSumIsDeterministic(t *testing.T) {
	data := []byte{0x00, 0x7C, 0x7D, 0x7E, 0xFF, 0x42}
	for i := 0; i < 3; i++ {
		if Sum8(data) != Sum8(data) || Sum16(data) != Sum16(data) || Sum32(data) != Sum32(data) {
			t.Fatalf("checksum differs across calls")
		}
	}
}

func TestSumSingleByteSensitivity(t *testing.T) {
	base := []byte("123456789")
	want8, want16, want32 := Sum8(base), Sum16(base), Sum32(base)
	for i := range base {
		mutated := append([]byte(nil), base...)
		mutated[i] ^= 0xFF
		if Sum8(mutated) == want8 {
			t.Fatalf("Sum8 unchanged after flipping byte %d", i)
		}
		if Sum16(mutated) == want16 {
			t.Fatalf("Sum16 unchanged after flipping byte %d", i)
		}
		if Sum32(mutated) == want32 {
			t.Fatalf("Sum32 unchanged after flipping byte %d", i)
		}
	}
}

func TestVerify16(t *testing.T) {
	data := []byte("123456789")
	if !Verify16(data, 0x29B1) {
		t.Fatalf("Verify16 rejected the reference checksum")
	}
	if Verify16(data, 0x29B0) {
		t.Fatalf("Verify16 accepted a wrong checksum")
	}
}
