package kuznechik

const feistelSteps = 32

// RoundKeys is the expanded key schedule, K1 through K10.
type RoundKeys [Rounds]Block

// constants holds C1..C32, the images under the linear step of the
// big-endian 128-bit encodings of the counter values 1..32.
var constants = func() (c [feistelSteps]Block) {
	for i := range c {
		var v Block

		v[BlockSize-1] = byte(i + 1)
		c[i] = linear(v)
	}

	return c
}()

// DeriveRoundKeys expands key into the ten round keys. The two key halves are
// used directly as K1 and K2; each following pair is the state of the Feistel
// network after another eight steps.
func DeriveRoundKeys(key Key) RoundKeys {
	var rk RoundKeys

	copy(rk[0][:], key[:BlockSize])
	copy(rk[1][:], key[BlockSize:])

	left, right := rk[0], rk[1]

	for i, c := range constants {
		left, right = xor(Transform(xor(left, c)), right), left

		if (i+1)%8 == 0 {
			pair := (i + 1) / 4
			rk[pair], rk[pair+1] = left, right
		}
	}

	return rk
}

// Encrypt runs the nine full rounds and the final key whitening over b.
func (rk *RoundKeys) Encrypt(b Block) Block {
	for i := range Rounds - 1 {
		b = Transform(xor(b, rk[i]))
	}

	return xor(b, rk[Rounds-1])
}

// Decrypt is the inverse of Encrypt: round keys are consumed from K10 down to
// K1 and InverseTransform takes the place of Transform.
func (rk *RoundKeys) Decrypt(b Block) Block {
	b = xor(b, rk[Rounds-1])

	for i := Rounds - 2; i >= 0; i-- {
		b = xor(InverseTransform(b), rk[i])
	}

	return b
}
