package kuznechik

// polynomial is x^8 + x^7 + x^6 + x + 1 without the x^8 term.
const polynomial = 0xc3

// lMul[i][x] holds x multiplied by lCoeffs[i] in GF(2^8).
var lMul = func() (table [BlockSize][256]byte) {
	for i, c := range lCoeffs {
		for x := range 256 {
			table[i][x] = gfMul(byte(x), c)
		}
	}

	return table
}()

// gfMul multiplies a and b in GF(2^8) reduced by polynomial.
func gfMul(a, b byte) byte {
	var p byte

	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}

		carry := a & 0x80
		a <<= 1

		if carry != 0 {
			a ^= polynomial
		}

		b >>= 1
	}

	return p
}

func xor(a, b Block) Block {
	for i := range a {
		a[i] ^= b[i]
	}

	return a
}

func substitute(b Block) Block {
	for i := range b {
		b[i] = pi[b[i]]
	}

	return b
}

func substituteInv(b Block) Block {
	for i := range b {
		b[i] = piInv[b[i]]
	}

	return b
}

// r is one step of the linear feedback register: the weighted sum of all bytes
// enters at byte 0 and byte 15 is shifted out.
func r(b Block) Block {
	var sum byte

	for i, v := range b {
		sum ^= lMul[i][v]
	}

	copy(b[1:], b[:BlockSize-1])
	b[0] = sum

	return b
}

func rInv(b Block) Block {
	sum := b[0]

	copy(b[:BlockSize-1], b[1:])

	for i := range BlockSize - 1 {
		sum ^= lMul[i][b[i]]
	}

	b[BlockSize-1] = sum

	return b
}

func linear(b Block) Block {
	for range BlockSize {
		b = r(b)
	}

	return b
}

func linearInv(b Block) Block {
	for range BlockSize {
		b = rInv(b)
	}

	return b
}

// Transform applies one round function: byte substitution followed by the
// linear diffusion step.
func Transform(b Block) Block {
	return linear(substitute(b))
}

// InverseTransform undoes Transform.
func InverseTransform(b Block) Block {
	return substituteInv(linearInv(b))
}
