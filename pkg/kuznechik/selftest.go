package kuznechik

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrSelfTest is returned by SelfTest when a known-answer vector does not match.
var ErrSelfTest = errors.New("kuznechik: self test failed")

// Known-answer vectors from GOST R 34.12-2015 (RFC 7801, section 5).
//
//nolint:gochecknoglobals
var (
	vectorKey        = "8899aabbccddeeff0011223344556677fedcba98765432100123456789abcdef"
	vectorPlaintext  = "1122334455667700ffeeddccbbaa9988"
	vectorCiphertext = "7f679d90bebc24305a468d42b9d4edcd"

	vectorRoundKeys = [Rounds]string{
		"8899aabbccddeeff0011223344556677",
		"fedcba98765432100123456789abcdef",
		"db31485315694343228d6aef8cc78c44",
		"3d4553d8e9cfec6815ebadc40a9ffd04",
		"57646468c44a5e28d3e59246f429f1ac",
		"bd079435165c6432b532e82834da581b",
		"51e640757e8745de705727265a0098b1",
		"5a7925017b9fdd3ed72a91a22286f984",
		"bb44e25378c73123a5f32f73cdb6e517",
		"72e9dd7416bcf45b755dbaa88e4a4043",
	}

	vectorChains = []struct {
		name  string
		fn    func(Block) Block
		steps []string
	}{
		{"S", substitute, []string{
			"ffeeddccbbaa99881122334455667700",
			"b66cd8887d38e8d77765aeea0c9a7efc",
			"559d8dd7bd06cbfe7e7b262523280d39",
			"0c3322fed531e4630d80ef5c5a81c50b",
			"23ae65633f842d29c5df529c13f5acda",
		}},
		{"R", r, []string{
			"00000000000000000000000000000100",
			"94000000000000000000000000000001",
			"a5940000000000000000000000000000",
			"64a59400000000000000000000000000",
			"0d64a594000000000000000000000000",
		}},
		{"L", linear, []string{
			"64a59400000000000000000000000000",
			"d456584dd0e3e84cc3166e4b7fa2890d",
			"79d26221b87b584cd42fbc4ffea5de9a",
			"0e93691a0cfc60408b7b68f66b513c13",
			"e6a8094fee0aa204fd97bcb0b44b8580",
		}},
	}
)

// SelfTest checks the transforms, the key schedule and both cipher directions
// against the published test vectors.
func SelfTest() error {
	for _, chain := range vectorChains {
		for i := 1; i < len(chain.steps); i++ {
			in, want := mustBlock(chain.steps[i-1]), mustBlock(chain.steps[i])
			if got := chain.fn(in); got != want {
				return fmt.Errorf("%w: %s(%x) = %x, want %x", ErrSelfTest, chain.name, in, got, want)
			}
		}
	}

	var key Key

	copy(key[:], mustDecode(vectorKey))

	rk := DeriveRoundKeys(key)
	for i, want := range vectorRoundKeys {
		if got := rk[i]; got != mustBlock(want) {
			return fmt.Errorf("%w: K%d = %x, want %s", ErrSelfTest, i+1, got, want)
		}
	}

	pt, ct := mustBlock(vectorPlaintext), mustBlock(vectorCiphertext)

	if got := rk.Encrypt(pt); got != ct {
		return fmt.Errorf("%w: encrypt = %x, want %x", ErrSelfTest, got, ct)
	}

	if got := rk.Decrypt(ct); got != pt {
		return fmt.Errorf("%w: decrypt = %x, want %x", ErrSelfTest, got, pt)
	}

	return nil
}

func mustDecode(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}

	return b
}

func mustBlock(s string) Block {
	var b Block

	copy(b[:], mustDecode(s))

	return b
}
