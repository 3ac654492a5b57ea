package encryption

// CipherSuite represents the available cipher suites for encryption
type CipherSuite string

const (
	// RIJNDAEL128CBC represents Rijndael-128 (AES-128) in CBC mode.
	// The IV is written ahead of the ciphertext. Input must be block aligned.
	RIJNDAEL128CBC CipherSuite = "RIJNDAEL128CBC"

	// RIJNDAEL128ECB represents Rijndael-128 (AES-128) with every block
	// encrypted independently. Input must be block aligned.
	RIJNDAEL128ECB CipherSuite = "RIJNDAEL128ECB"
)

// IsValid checks if the cipher suite is supported
func (c CipherSuite) IsValid() bool {
	switch c {
	case RIJNDAEL128CBC, RIJNDAEL128ECB:
		return true
	default:
		return false
	}
}

// RequiresIV returns true if the cipher suite requires an explicit IV
func (c CipherSuite) RequiresIV() bool {
	return c == RIJNDAEL128CBC
}
