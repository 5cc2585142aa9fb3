package kuznechik_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"math/bits"
	"os"
	"sync"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/gokuz/pkg/kuznechik"
)

// Vector is a single known-answer case from testdata/vectors.yml.
type Vector struct {
	Key         string `yaml:"key"`
	Plaintext   string `yaml:"plaintext"`
	Ciphertext  string `yaml:"ciphertext"`
	Description string `yaml:"description,omitempty"`
}

// Group is a named collection of vectors.
type Group struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Cases       []Vector `yaml:"cases"`
}

func loadVectors(t *testing.T) []Group {
	t.Helper()

	data, err := os.ReadFile("testdata/vectors.yml")
	if err != nil {
		t.Fatalf("reading vectors: %v", err)
	}

	var groups []Group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		t.Fatalf("parsing vectors: %v", err)
	}

	if len(groups) == 0 {
		t.Fatal("no vector groups found")
	}

	return groups
}

func forEachVector(t *testing.T, fn func(t *testing.T, key, pt, ct []byte)) {
	t.Helper()

	for _, g := range loadVectors(t) {
		t.Run(g.Name, func(t *testing.T) {
			t.Parallel()

			for i, v := range g.Cases {
				desc := v.Description
				if desc == "" {
					desc = fmt.Sprintf("case_%d", i)
				}

				t.Run(desc, func(t *testing.T) {
					t.Parallel()

					fn(t, decode(t, v.Key), decode(t, v.Plaintext), decode(t, v.Ciphertext))
				})
			}
		})
	}
}

func decode(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decoding %q: %v", s, err)
	}

	return b
}

func TestEncryptKnownAnswers(t *testing.T) {
	t.Parallel()

	forEachVector(t, func(t *testing.T, key, pt, ct []byte) {
		t.Helper()

		got, err := kuznechik.Encrypt(pt, key)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}

		if !bytes.Equal(got, ct) {
			t.Errorf("Encrypt(%x) = %x, want %x", pt, got, ct)
		}
	})
}

func TestDecryptKnownAnswers(t *testing.T) {
	t.Parallel()

	forEachVector(t, func(t *testing.T, key, pt, ct []byte) {
		t.Helper()

		got, err := kuznechik.Decrypt(ct, key)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}

		if !bytes.Equal(got, pt) {
			t.Errorf("Decrypt(%x) = %x, want %x", ct, got, pt)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	var key kuznechik.Key

	for i := range key {
		key[i] = byte(i * 7)
	}

	for seed := range 64 {
		var b kuznechik.Block

		for i := range b {
			b[i] = byte(seed*31 + i*13)
		}

		ct := kuznechik.EncryptBlock(b, key)
		if ct == b {
			t.Errorf("seed %d: ciphertext equals plaintext", seed)
		}

		if got := kuznechik.DecryptBlock(ct, key); got != b {
			t.Errorf("seed %d: round trip = %x, want %x", seed, got, b)
		}

		key[seed%kuznechik.KeySize]++
	}
}

func TestDeterminism(t *testing.T) {
	t.Parallel()

	key := bytes.Repeat([]byte{0x5a}, kuznechik.KeySize)
	block := bytes.Repeat([]byte{0xa5}, kuznechik.BlockSize)

	first, err := kuznechik.Encrypt(block, key)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	for range 10 {
		got, err := kuznechik.Encrypt(block, key)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}

		if !bytes.Equal(got, first) {
			t.Fatalf("Encrypt is not deterministic: %x != %x", got, first)
		}
	}
}

func TestInvalidLength(t *testing.T) {
	t.Parallel()

	key := make([]byte, kuznechik.KeySize)
	block := make([]byte, kuznechik.BlockSize)

	tests := []struct {
		name  string
		block []byte
		key   []byte
	}{
		{"empty_block", nil, key},
		{"short_block", make([]byte, 15), key},
		{"long_block", make([]byte, 17), key},
		{"key_sized_block", make([]byte, 32), key},
		{"empty_key", block, nil},
		{"short_key", block, make([]byte, 31)},
		{"long_key", block, make([]byte, 33)},
		{"block_sized_key", block, make([]byte, 16)},
		{"both_wrong", make([]byte, 1), make([]byte, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if out, err := kuznechik.Encrypt(tc.block, tc.key); !errors.Is(err, kuznechik.ErrInvalidLength) {
				t.Errorf("Encrypt = %x, %v; want ErrInvalidLength", out, err)
			}

			if out, err := kuznechik.Decrypt(tc.block, tc.key); !errors.Is(err, kuznechik.ErrInvalidLength) {
				t.Errorf("Decrypt = %x, %v; want ErrInvalidLength", out, err)
			}
		})
	}
}

func TestAvalanche(t *testing.T) {
	t.Parallel()

	key := decode(t, "8899aabbccddeeff0011223344556677fedcba98765432100123456789abcdef")
	pt := decode(t, "1122334455667700ffeeddccbbaa9988")

	base, err := kuznechik.Encrypt(pt, key)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	for bit := range kuznechik.BlockSize * 8 {
		flipped := bytes.Clone(pt)
		flipped[bit/8] ^= 1 << (bit % 8)

		ct, err := kuznechik.Encrypt(flipped, key)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}

		var diff int
		for i := range ct {
			diff += bits.OnesCount8(ct[i] ^ base[i])
		}

		// A random permutation changes 64 bits on average.
		if diff < 24 {
			t.Errorf("flipping input bit %d changed only %d output bits", bit, diff)
		}
	}
}

func TestDeriveRoundKeys(t *testing.T) {
	t.Parallel()

	var key kuznechik.Key

	copy(key[:], decode(t, "8899aabbccddeeff0011223344556677fedcba98765432100123456789abcdef"))

	rk := kuznechik.DeriveRoundKeys(key)

	if len(rk) != kuznechik.Rounds {
		t.Fatalf("got %d round keys, want %d", len(rk), kuznechik.Rounds)
	}

	if got := hex.EncodeToString(rk[2][:]); got != "db31485315694343228d6aef8cc78c44" {
		t.Errorf("K3 = %s", got)
	}

	if got := hex.EncodeToString(rk[9][:]); got != "72e9dd7416bcf45b755dbaa88e4a4043" {
		t.Errorf("K10 = %s", got)
	}

	if again := kuznechik.DeriveRoundKeys(key); again != rk {
		t.Error("DeriveRoundKeys is not deterministic")
	}
}

func TestTransformInverse(t *testing.T) {
	t.Parallel()

	for v := range 256 {
		var b kuznechik.Block

		for i := range b {
			b[i] = byte(v + i*17)
		}

		if got := kuznechik.InverseTransform(kuznechik.Transform(b)); got != b {
			t.Errorf("InverseTransform(Transform(%x)) = %x", b, got)
		}

		if got := kuznechik.Transform(kuznechik.InverseTransform(b)); got != b {
			t.Errorf("Transform(InverseTransform(%x)) = %x", b, got)
		}
	}
}

func TestNewCipher(t *testing.T) {
	t.Parallel()

	key := decode(t, "8899aabbccddeeff0011223344556677fedcba98765432100123456789abcdef")
	pt := decode(t, "1122334455667700ffeeddccbbaa9988")
	want := decode(t, "7f679d90bebc24305a468d42b9d4edcd")

	c, err := kuznechik.NewCipher(key)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	if c.BlockSize() != kuznechik.BlockSize {
		t.Errorf("BlockSize() = %d", c.BlockSize())
	}

	dst := make([]byte, kuznechik.BlockSize)
	c.Encrypt(dst, pt)

	if !bytes.Equal(dst, want) {
		t.Errorf("Encrypt = %x, want %x", dst, want)
	}

	c.Decrypt(dst, dst)

	if !bytes.Equal(dst, pt) {
		t.Errorf("in-place Decrypt = %x, want %x", dst, pt)
	}

	if _, err := kuznechik.NewCipher(key[:31]); !errors.Is(err, kuznechik.ErrInvalidLength) {
		t.Errorf("NewCipher(31 bytes) error = %v", err)
	}
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()

	key := decode(t, "8899aabbccddeeff0011223344556677fedcba98765432100123456789abcdef")
	pt := decode(t, "1122334455667700ffeeddccbbaa9988")
	want := decode(t, "7f679d90bebc24305a468d42b9d4edcd")

	var wg sync.WaitGroup

	errs := make(chan error, 32)

	for range 32 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			got, err := kuznechik.Encrypt(pt, key)
			if err == nil && !bytes.Equal(got, want) {
				err = fmt.Errorf("got %x", got)
			}

			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Error(err)
		}
	}
}

func TestSelfTest(t *testing.T) {
	t.Parallel()

	if err := kuznechik.SelfTest(); err != nil {
		t.Fatal(err)
	}
}
