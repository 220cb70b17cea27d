package domain

// ProtectorConfig is the resolved configuration a TokenProtector is built from.
type ProtectorConfig struct {
	// ValidationKey and DecryptionKey are raw key specs (hex or AutoGenerate[,IsolateApps]).
	ValidationKey string
	DecryptionKey string

	ValidationAlgorithm ValidationAlgorithm
	DecryptionAlgorithm DecryptionAlgorithm

	// IVType is the IV strategy used by Encode when confidentiality is enabled.
	IVType IVType

	// AppIsolationID binds key material to one logical application when non-empty.
	AppIsolationID string
}

// GeneratedDecryptionKeySize returns the decryption key length used for AutoGenerate.
// A TripleDES validation algorithm shares the decryption key, so the generated key
// must also be a valid 3DES key.
func (c ProtectorConfig) GeneratedDecryptionKeySize() int {
	if c.ValidationAlgorithm == ValidationTripleDES && c.DecryptionAlgorithm != DecryptionDES {
		return 24
	}
	return c.DecryptionAlgorithm.GeneratedKeySize()
}
