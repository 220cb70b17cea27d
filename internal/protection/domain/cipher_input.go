package domain

// CipherInput is a raw encrypt or decrypt request against the cipher pipeline.
type CipherInput struct {
	// Data is the plaintext for encryption or the ciphertext for decryption.
	Data []byte

	// Modifier is appended before encryption and verified after decryption.
	Modifier []byte

	IVType  IVType
	Purpose Purpose
}
