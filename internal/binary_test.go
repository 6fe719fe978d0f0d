package internal

import (
	"math/rand"
	"testing"
)

func TestBitReaderBasic(t *testing.T) {
	// 0xA5 = 1010 0101, 0x3C = 0011 1100
	data := []byte{0xA5, 0x3C}
	br := NewBitReader(data)

	v, err := br.ReadBits(4)
	if err != nil || v != 0xA {
		t.Errorf("ReadBits(4) = %x, %v; want a", v, err)
	}
	v, err = br.ReadBits(8)
	if err != nil || v != 0x53 {
		t.Errorf("ReadBits(8) = %x, %v; want 53", v, err)
	}
	v, err = br.ReadBits(4)
	if err != nil || v != 0xC {
		t.Errorf("ReadBits(4) = %x, %v; want c", v, err)
	}
}

func TestBitReaderZeroBits(t *testing.T) {
	br := NewBitReader([]byte{0xFF})
	v, err := br.ReadBits(0)
	if err != nil || v != 0 {
		t.Errorf("ReadBits(0) = %d, %v; want 0, nil", v, err)
	}
	if br.Offset() != 0 {
		t.Errorf("offset advanced by zero-bit read")
	}
}

func TestBitReaderTooWide(t *testing.T) {
	br := NewBitReader(make([]byte, 8))
	if _, err := br.ReadBits(33); err == nil {
		t.Fatal("ReadBits(33) should fail")
	} else if _, ok := err.(*FieldTooWideError); !ok {
		t.Errorf("ReadBits(33) error = %T, want *FieldTooWideError", err)
	}
}

func TestBitReaderSignMagnitude(t *testing.T) {
	// Sign bit set, magnitude 5 in a 16-bit field.
	data := []byte{0x80, 0x05}
	br := NewBitReader(data)
	v, err := br.ReadSignMagnitude(16)
	if err != nil || v != -5 {
		t.Errorf("ReadSignMagnitude = %d, %v; want -5", v, err)
	}
}

func TestBitWriterPreservesSurroundingBits(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF}
	w := NewBitWriter(buf)
	if err := w.WriteBitsAt(0, 6, 9, false); err != nil {
		t.Fatal(err)
	}
	// Bits 6-14 cleared, everything else intact.
	want := []byte{0xFC, 0x01, 0xFF}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("byte %d = %02x, want %02x", i, buf[i], want[i])
		}
	}
}

func TestBitRoundTrip(t *testing.T) {
	// Write a random sequence of fields, then read them back at the
	// same offsets.
	rng := rand.New(rand.NewSource(1))
	buf := make([]byte, 256)
	w := NewBitWriter(buf)

	type field struct {
		val  uint32
		bits int
	}
	var fields []field
	total := 0
	for total < len(buf)*8-32 {
		bits := 1 + rng.Intn(32)
		val := rng.Uint32()
		if bits < 32 {
			val &= (1 << bits) - 1
		}
		if err := w.WriteBits(val, bits); err != nil {
			t.Fatal(err)
		}
		fields = append(fields, field{val, bits})
		total += bits
	}

	br := NewBitReader(buf)
	for i, f := range fields {
		got, err := br.ReadBits(f.bits)
		if err != nil {
			t.Fatal(err)
		}
		if got != f.val {
			t.Fatalf("field %d: read %d, wrote %d (%d bits)", i, got, f.val, f.bits)
		}
	}
}

func TestBitWriterAlign(t *testing.T) {
	w := NewBitWriter(make([]byte, 4))
	w.WriteBits(0x5, 3)
	w.Align()
	if w.Offset() != 8 {
		t.Errorf("offset after Align = %d, want 8", w.Offset())
	}
	w.Align()
	if w.Offset() != 8 {
		t.Errorf("Align on aligned offset moved to %d", w.Offset())
	}
}

func TestReaderSignMagnitudeInt16(t *testing.T) {
	r := NewReader([]byte{0x80, 0x0A, 0x00, 0x0A})
	v, _ := r.Int16()
	if v != -10 {
		t.Errorf("Int16 = %d, want -10", v)
	}
	v, _ = r.Int16()
	if v != 10 {
		t.Errorf("Int16 = %d, want 10", v)
	}
}

func TestScratchGrowsAndPreserves(t *testing.T) {
	var s Scratch
	b := s.Message(4)
	copy(b, "GRIB")
	b = s.Message(16)
	if string(b[:4]) != "GRIB" {
		t.Error("Message grow did not preserve contents")
	}
	if len(b) != 16 {
		t.Errorf("len = %d, want 16", len(b))
	}
	b2 := s.Message(8)
	if len(b2) != 8 {
		t.Errorf("shrink len = %d, want 8", len(b2))
	}
}
