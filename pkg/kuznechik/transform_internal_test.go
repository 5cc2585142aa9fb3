package kuznechik

import "testing"

// Test all gfMul inputs against shift-and-add multiplication followed by
// reduction of the full 15-bit product.
func TestGFMul(t *testing.T) {
	t.Parallel()

	for a := range 256 {
		for b := range 256 {
			var p uint16

			for i := range 8 {
				if b&(1<<i) != 0 {
					p ^= uint16(a) << i
				}
			}

			for i := 14; i >= 8; i-- {
				if p&(1<<i) != 0 {
					p ^= (0x100 | polynomial) << (i - 8)
				}
			}

			if got := gfMul(byte(a), byte(b)); got != byte(p) {
				t.Fatalf("gfMul(%#x, %#x) = %#x, want %#x", a, b, got, p)
			}
		}
	}
}

func TestPiInverse(t *testing.T) {
	t.Parallel()

	for x := range 256 {
		if got := piInv[pi[x]]; got != byte(x) {
			t.Errorf("piInv[pi[%#x]] = %#x", x, got)
		}
	}
}

func TestRInverse(t *testing.T) {
	t.Parallel()

	b := Block{0x64, 0xa5, 0x94}

	for range 64 {
		if got := rInv(r(b)); got != b {
			t.Fatalf("rInv(r(%x)) = %x", b, got)
		}

		b = r(b)
	}
}

func TestConstants(t *testing.T) {
	t.Parallel()

	want := map[int]Block{
		0:  mustBlock("6ea276726c487ab85d27bd10dd849401"),
		7:  mustBlock("f6593616e6055689adfba18027aa2a08"),
		31: mustBlock("5ea7d8581e149b61f16ac1459ceda820"),
	}

	for i, c := range want {
		if constants[i] != c {
			t.Errorf("C%d = %x, want %x", i+1, constants[i], c)
		}
	}
}
