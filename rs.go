package circls

// Reed-Solomon codec over GF(256), grounded on the Phil Karn / KA9Q
// rscode implementation the original FX.25 tooling wraps (init_rs_char,
// encode_rs_char, and the Berlekamp-Massey/Chien-search/Forney decoder).
// Unlike a general-purpose RS library, which supports several
// (nroots, fcr, prim) variants selected at runtime through a table of
// codec control blocks, this link only ever uses one fixed
// parameterization, so the tables are package-level constants computed
// once rather than per-instance state.

const (
	rsSymSize = 8          // bits per symbol
	rsNN      = 255        // 2^rsSymSize - 1: full codeword size
	rsGFPoly  = 0x11d      // field generator polynomial
	rsFCR     = 0          // first root of the generator polynomial, as alpha^0
	rsPrim    = 1          // primitive element used to generate roots

	// NPAR is the fixed number of Reed-Solomon parity bytes appended to
	// every codeword: corrects up to 2 symbol errors.
	NPAR = 4

	// MaxData is the largest number of data bytes a single codeword can
	// carry: rsNN - NPAR.
	MaxData = rsNN - NPAR
)

var (
	rsAlphaTo [rsNN + 1]byte
	rsIndexOf [rsNN + 1]byte
	rsGenPoly [NPAR + 1]byte
)

func init() {
	// Generate the Galois field log/antilog tables.
	rsIndexOf[0] = byte(rsNN) // log(0) is -infinity, represented as A0 = NN
	rsAlphaTo[rsNN] = 0
	sr := 1
	for i := 0; i < rsNN; i++ {
		rsIndexOf[sr] = byte(i)
		rsAlphaTo[i] = byte(sr)
		sr <<= 1
		if sr&(1<<rsSymSize) != 0 {
			sr ^= rsGFPoly
		}
		sr &= rsNN
	}
	if sr != 1 {
		panic("circls: rs generator polynomial is not primitive")
	}

	// Build the generator polynomial from its roots, alpha^(fcr+i*prim)
	// for i in [0, NPAR).
	rsGenPoly[0] = 1
	root := rsFCR * rsPrim
	for i := 0; i < NPAR; i++ {
		rsGenPoly[i+1] = 1
		for j := i; j > 0; j-- {
			if rsGenPoly[j] != 0 {
				rsGenPoly[j] = rsGenPoly[j-1] ^ rsAlphaTo[modNN(int(rsIndexOf[rsGenPoly[j]])+root)]
			} else {
				rsGenPoly[j] = rsGenPoly[j-1]
			}
		}
		rsGenPoly[0] = rsAlphaTo[modNN(int(rsIndexOf[rsGenPoly[0]])+root)]
		root += rsPrim
	}
	// Convert to index form for quicker encoding.
	for i := range rsGenPoly {
		rsGenPoly[i] = rsIndexOf[rsGenPoly[i]]
	}
}

func modNN(x int) int {
	for x >= rsNN {
		x -= rsNN
		x = (x >> rsSymSize) + (x & rsNN)
	}
	for x < 0 {
		x += rsNN
	}
	return x
}

// rsEncodeBlock computes the NPAR parity bytes for a data block of up to
// MaxData bytes, using the same shift-register-with-feedback construction
// as encode_rs_char.
func rsEncodeBlock(data []byte) [NPAR]byte {
	var parity [NPAR]byte
	for _, d := range data {
		feedback := rsIndexOf[d^parity[0]]
		if int(feedback) != rsNN {
			for j := 1; j < NPAR; j++ {
				parity[j] ^= rsAlphaTo[modNN(int(feedback)+int(rsGenPoly[NPAR-j]))]
			}
		}
		copy(parity[:], parity[1:])
		if int(feedback) != rsNN {
			parity[NPAR-1] = rsAlphaTo[modNN(int(feedback)+int(rsGenPoly[0]))]
		} else {
			parity[NPAR-1] = 0
		}
	}
	return parity
}

// RSEncode appends NPAR parity bytes to each codeword in data, chunked
// into pieces of at most MaxData bytes (the final chunk may be shorter,
// including empty, but always carries NPAR parity bytes). The returned
// slice has length len(data) + NPAR*ceil(max(len(data),1)/MaxData) when
// data is non-empty, or exactly NPAR when data is empty.
func RSEncode(data []byte) []byte {
	if len(data) == 0 {
		parity := rsEncodeBlock(nil)
		return parity[:]
	}

	nChunks := (len(data) + MaxData - 1) / MaxData
	out := make([]byte, 0, len(data)+NPAR*nChunks)
	for i := 0; i < nChunks; i++ {
		start := i * MaxData
		end := start + MaxData
		if end > len(data) {
			end = len(data)
		}
		chunk := data[start:end]
		parity := rsEncodeBlock(chunk)
		out = append(out, chunk...)
		out = append(out, parity[:]...)
	}
	return out
}

// rsDecodeBlock corrects up to NPAR/2 symbol errors in block in place and
// returns the number of errors corrected, or an error if the block has
// more errors than can be corrected. It implements syndrome computation,
// Berlekamp-Massey, Chien search and Forney error-value computation, the
// same structure as Phil Karn's decode_rs_char (without erasures, which
// this link never signals at its interfaces).
func rsDecodeBlock(block []byte) (int, error) {
	n := len(block)
	if n < NPAR {
		return 0, newErr(Truncated, "rs block shorter than %d parity bytes", NPAR)
	}

	// Treat block as the low-order n bytes of a full NN-symbol codeword;
	// the missing high-order bytes are implicitly zero and contribute no
	// syndrome terms, matching shortened-codeword RS decoding.
	var syn [NPAR]byte
	synError := byte(0)
	for i := 0; i < NPAR; i++ {
		var s byte
		for _, c := range block {
			if s == 0 {
				s = c
			} else {
				s = c ^ rsAlphaTo[modNN(int(rsIndexOf[s])+(rsFCR+i)*rsPrim)]
			}
		}
		synError |= s
		syn[i] = rsIndexOf[s]
	}
	if synError == 0 {
		return 0, nil // codeword already valid
	}

	const a0 = rsNN // log(0) sentinel, matches rsIndexOf[0]

	var lambda [NPAR + 1]byte
	lambda[0] = 1
	var b [NPAR + 1]byte
	for i := range b {
		b[i] = lambda[i]
		if b[i] != 0 {
			b[i] = rsIndexOf[b[i]]
		} else {
			b[i] = a0
		}
	}

	var t [NPAR + 1]byte
	el := 0
	for r := 1; r <= NPAR; r++ {
		var discrR byte
		for i := 0; i < r; i++ {
			if lambda[i] != 0 && syn[r-i-1] != a0 {
				discrR ^= rsAlphaTo[modNN(int(rsIndexOf[lambda[i]])+int(syn[r-i-1]))]
			}
		}
		discrRIdx := a0
		if discrR != 0 {
			discrRIdx = int(rsIndexOf[discrR])
		}
		if discrRIdx == a0 {
			copy(b[1:], b[:NPAR])
			b[0] = a0
		} else {
			t[0] = lambda[0]
			for i := 0; i < NPAR; i++ {
				if b[i] != a0 {
					t[i+1] = lambda[i+1] ^ rsAlphaTo[modNN(discrRIdx+int(b[i]))]
				} else {
					t[i+1] = lambda[i+1]
				}
			}
			if 2*el <= r-1 {
				el = r - el
				for i := 0; i <= NPAR; i++ {
					if lambda[i] == 0 {
						b[i] = a0
					} else {
						b[i] = byte(modNN(int(rsIndexOf[lambda[i]]) - discrRIdx + rsNN))
					}
				}
			} else {
				copy(b[1:], b[:NPAR])
				b[0] = a0
			}
			copy(lambda[:], t[:])
		}
	}

	degLambda := 0
	for i := 0; i <= NPAR; i++ {
		if lambda[i] != 0 {
			lambda[i] = rsIndexOf[lambda[i]]
		} else {
			lambda[i] = byte(a0)
		}
		if int(lambda[i]) != a0 {
			degLambda = i
		}
	}

	// Chien search over the (at most n) valid positions of a possibly
	// shortened codeword: error locations map to indices [0, n).
	var reg [NPAR + 1]byte
	copy(reg[1:], lambda[1:NPAR+1])
	var root, loc [NPAR]int
	count := 0
	iprim := modInvPrim()
	for i, k := 1, iprim-1; i <= rsNN; i, k = i+1, modNN(k+iprim) {
		q := byte(1)
		for j := degLambda; j > 0; j-- {
			if int(reg[j]) != a0 {
				reg[j] = byte(modNN(int(reg[j]) + j))
				q ^= rsAlphaTo[reg[j]]
			}
		}
		if q != 0 {
			continue
		}
		root[count] = i
		loc[count] = k
		count++
		if count == degLambda {
			break
		}
	}
	if degLambda != count {
		return 0, newErr(RsUncorrectable, "error locator has %d roots, expected degree %d", count, degLambda)
	}

	// Only locations inside the shortened codeword's actual symbol range
	// are meaningful; a root outside [0, n) indicates more errors than
	// this shortened block can correct.
	shift := rsNN - n
	for i := 0; i < count; i++ {
		if loc[i] < shift {
			return 0, newErr(RsUncorrectable, "error location outside codeword")
		}
	}

	// Error evaluator polynomial omega(x) = s(x)*lambda(x) mod x^NPAR.
	var omega [NPAR + 1]byte
	degOmega := 0
	for i := 0; i < NPAR; i++ {
		var tmp byte
		jLimit := degLambda
		if i < jLimit {
			jLimit = i
		}
		for j := jLimit; j >= 0; j-- {
			if int(syn[i-j]) != a0 && int(lambda[j]) != a0 {
				tmp ^= rsAlphaTo[modNN(int(syn[i-j])+int(lambda[j]))]
			}
		}
		if tmp != 0 {
			degOmega = i
		}
		if tmp != 0 {
			omega[i] = rsIndexOf[tmp]
		} else {
			omega[i] = byte(a0)
		}
	}

	for j := count - 1; j >= 0; j-- {
		var num1 byte
		for i := degOmega; i >= 0; i-- {
			if int(omega[i]) != a0 {
				num1 ^= rsAlphaTo[modNN(int(omega[i])+i*root[j])]
			}
		}
		num2 := rsAlphaTo[modNN(root[j]*(rsFCR-1)+rsNN)]
		var den byte
		dLimit := degLambda
		if NPAR-1 < dLimit {
			dLimit = NPAR - 1
		}
		for i := dLimit &^ 1; i >= 0; i -= 2 {
			if int(lambda[i+1]) != a0 {
				den ^= rsAlphaTo[modNN(int(lambda[i+1])+i*root[j])]
			}
		}
		if den == 0 {
			return 0, newErr(RsUncorrectable, "zero denominator in error-value computation")
		}
		if num1 != 0 {
			pos := loc[j] - shift
			block[pos] ^= rsAlphaTo[modNN(int(rsIndexOf[num1])+int(rsIndexOf[num2])+rsNN-int(rsIndexOf[den]))]
		}
	}
	return count, nil
}

// modInvPrim finds the multiplicative inverse of rsPrim modulo rsNN, the
// "iprim" constant used by the Chien search step size.
func modInvPrim() int {
	iprim := 1
	for (iprim % rsPrim) != 0 {
		iprim += rsNN
	}
	return iprim / rsPrim
}

// RSDecode corrects errors in place across the 255-byte (or shorter
// final) codewords in buf and returns the recovered data bytes of all
// chunks concatenated, with the parity bytes stripped from each chunk.
func RSDecode(buf []byte) ([]byte, error) {
	out := make([]byte, 0, len(buf))
	pos := 0
	for pos < len(buf) {
		remaining := len(buf) - pos
		chunkLen := remaining
		if chunkLen > rsNN {
			chunkLen = rsNN
		}
		if chunkLen < NPAR {
			return nil, newErr(Truncated, "final rs chunk shorter than %d bytes", NPAR)
		}
		block := buf[pos : pos+chunkLen]
		if _, err := rsDecodeBlock(block); err != nil {
			return nil, err
		}
		out = append(out, block[:chunkLen-NPAR]...)
		pos += chunkLen
	}
	return out, nil
}

// RSEncodedLen returns the number of bytes RSEncode produces for dataLen
// input bytes, i.e. the minimum buffer size a caller must provide.
func RSEncodedLen(dataLen int) int {
	if dataLen == 0 {
		return NPAR
	}
	nChunks := (dataLen + MaxData - 1) / MaxData
	return dataLen + NPAR*nChunks
}
