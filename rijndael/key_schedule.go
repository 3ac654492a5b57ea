package rijndael

// Schedule is the expanded key: Rounds+1 round keys of one block each.
// Round key i is XORed into the state in round i.
type Schedule [Rounds + 1][BlockSize]byte

// ExpandKey derives the round key schedule for a 128-bit key (FIPS-197 §5.2).
func ExpandKey(key []byte) (*Schedule, error) {
	if len(key) != KeySize {
		return nil, keySizeError(len(key))
	}

	var w [(Rounds + 1) * BlockSize]byte
	copy(w[:], key)

	for i := KeySize; i < len(w); i += 4 {
		var t [4]byte
		copy(t[:], w[i-4:i])

		if i%KeySize == 0 {
			// RotWord, SubWord, then the round constant.
			t[0], t[1], t[2], t[3] = sbox[t[1]]^rcon[i/KeySize-1], sbox[t[2]], sbox[t[3]], sbox[t[0]]
		}

		w[i+0] = w[i-KeySize+0] ^ t[0]
		w[i+1] = w[i-KeySize+1] ^ t[1]
		w[i+2] = w[i-KeySize+2] ^ t[2]
		w[i+3] = w[i-KeySize+3] ^ t[3]
	}

	var s Schedule
	for r := range s {
		copy(s[r][:], w[r*BlockSize:])
	}
	return &s, nil
}

// RoundKey returns a copy of round key i, 0 <= i <= Rounds.
func (s *Schedule) RoundKey(i int) []byte {
	k := make([]byte, BlockSize)
	copy(k, s[i][:])
	return k
}
