package rijndael

// The state is kept in input byte order: byte r+4c is row r, column c.
// Round keys use the same layout, so AddRoundKey is a flat XOR.
type state [BlockSize]byte

// encryptBlock transforms one block from src into dst. dst and src may alias.
func encryptBlock(ks *Schedule, dst, src []byte) {
	var s state
	copy(s[:], src[:BlockSize])

	s.addRoundKey(&ks[0])
	for r := 1; r < Rounds; r++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(&ks[r])
	}
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(&ks[Rounds])

	copy(dst[:BlockSize], s[:])
}

// decryptBlock is the inverse of encryptBlock, walking the schedule backwards.
func decryptBlock(ks *Schedule, dst, src []byte) {
	var s state
	copy(s[:], src[:BlockSize])

	s.addRoundKey(&ks[Rounds])
	for r := Rounds - 1; r > 0; r-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(&ks[r])
		s.invMixColumns()
	}
	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(&ks[0])

	copy(dst[:BlockSize], s[:])
}

func (s *state) addRoundKey(k *[BlockSize]byte) {
	for i := range s {
		s[i] ^= k[i]
	}
}

func (s *state) subBytes() {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func (s *state) invSubBytes() {
	for i := range s {
		s[i] = invSbox[s[i]]
	}
}

// shiftRows rotates row r left by r columns.
func (s *state) shiftRows() {
	s[1], s[5], s[9], s[13] = s[5], s[9], s[13], s[1]
	s[2], s[6], s[10], s[14] = s[10], s[14], s[2], s[6]
	s[3], s[7], s[11], s[15] = s[15], s[3], s[7], s[11]
}

// invShiftRows rotates row r right by r columns.
func (s *state) invShiftRows() {
	s[1], s[5], s[9], s[13] = s[13], s[1], s[5], s[9]
	s[2], s[6], s[10], s[14] = s[10], s[14], s[2], s[6]
	s[3], s[7], s[11], s[15] = s[7], s[11], s[15], s[3]
}

// mixColumns multiplies each column by {03}x^3 + {01}x^2 + {01}x + {02}.
func (s *state) mixColumns() {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := s[c], s[c+1], s[c+2], s[c+3]
		t := a0 ^ a1 ^ a2 ^ a3
		s[c+0] = a0 ^ t ^ xtime(a0^a1)
		s[c+1] = a1 ^ t ^ xtime(a1^a2)
		s[c+2] = a2 ^ t ^ xtime(a2^a3)
		s[c+3] = a3 ^ t ^ xtime(a3^a0)
	}
}

// invMixColumns first multiplies each column by {04}x^2 + {05}, after which
// the forward mix yields the inverse matrix {0b}x^3 + {0d}x^2 + {09}x + {0e}.
func (s *state) invMixColumns() {
	for c := 0; c < BlockSize; c += 4 {
		u := xtime(xtime(s[c] ^ s[c+2]))
		v := xtime(xtime(s[c+1] ^ s[c+3]))
		s[c+0] ^= u
		s[c+1] ^= v
		s[c+2] ^= u
		s[c+3] ^= v
	}
	s.mixColumns()
}

// xtime multiplies by x in GF(2^8) without branching on b.
func xtime(b byte) byte {
	return b<<1 ^ (b>>7)*0x1b
}
