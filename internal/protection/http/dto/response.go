package dto

// TokenResponse contains a protected token.
type TokenResponse struct {
	Token string `json:"token"`
}

// PayloadResponse contains a verified payload, base64-encoded on the wire.
type PayloadResponse struct {
	Payload []byte `json:"payload"`
}

// StringResponse contains a verified string value.
type StringResponse struct {
	Value string `json:"value"`
}

// EncryptResponse contains the result of a raw encryption, base64-encoded on the wire.
type EncryptResponse struct {
	Ciphertext []byte `json:"ciphertext"`
}

// DecryptResponse contains the result of a raw decryption.
// SECURITY: The Plaintext field contains sensitive data and should be transmitted over HTTPS.
type DecryptResponse struct {
	Plaintext []byte `json:"plaintext"`
}
