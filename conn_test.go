package display

import (
	"bytes"
	"testing"
)

type testTinyGoBus struct {
	frames [][]byte
}

func (b *testTinyGoBus) Tx(addr uint16, w, r []byte) error {
	b.frames = append(b.frames, append([]byte{byte(addr)}, w...))
	return nil
}

func TestI2CConnFraming(t *testing.T) {
	bus := new(testTinyGoBus)
	c := NewTinyGoI2C(bus, 0x3c)

	if err := c.Command(0xAF); err != nil {
		t.Fatal(err)
	}
	if err := c.Data(0x01, 0x02, 0x03); err != nil {
		t.Fatal(err)
	}
	if err := c.Data(0xff); err != nil {
		t.Fatal(err)
	}
	if err := c.Data(); err != nil {
		t.Fatal(err)
	}

	want := [][]byte{
		{0x3c, 0x00, 0xAF},
		{0x3c, 0x40, 0x01, 0x02, 0x03},
		{0x3c, 0x40, 0xff},
		{0x3c, 0x40},
	}
	if len(bus.frames) != len(want) {
		t.Fatalf("expected %d frames, got %d", len(want), len(bus.frames))
	}
	for i := range want {
		if !bytes.Equal(bus.frames[i], want[i]) {
			t.Errorf("frame %d: expected %#02x, got %#02x", i, want[i], bus.frames[i])
		}
	}

	if err := c.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
}
