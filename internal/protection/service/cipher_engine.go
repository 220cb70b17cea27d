package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des" //nolint:gosec // DES and 3DES are supported legacy token ciphers.

	"github.com/allisson/tokenguard/internal/errors"
	"github.com/allisson/tokenguard/internal/protection/domain"
)

// SelectCipher resolves the content cipher for the configured decryption
// algorithm and key length.
func SelectCipher(alg domain.DecryptionAlgorithm, keyLen int) (domain.CipherAlgorithm, error) {
	var cipherAlg domain.CipherAlgorithm

	switch alg {
	case domain.DecryptionAuto:
		if keyLen == 8 {
			cipherAlg = domain.CipherDES
		} else {
			cipherAlg = domain.CipherAES
		}
	case domain.DecryptionDES:
		cipherAlg = domain.CipherDES
	case domain.DecryptionTripleDES:
		cipherAlg = domain.CipherTripleDES
	case domain.DecryptionAES:
		cipherAlg = domain.CipherAES
	default:
		return "", errors.Wrapf(domain.ErrUnsupportedAlgorithm, "decryption algorithm %q", alg)
	}

	if !cipherAlg.ValidKeySize(keyLen) {
		return "", errors.Wrapf(domain.ErrInvalidKeySize, "%s cannot use a %d-byte key", cipherAlg, keyLen)
	}
	return cipherAlg, nil
}

// cipherEngine encrypts and decrypts with one CBC block cipher and keeps a
// bounded pool of transforms per direction.
//
// cipher.Block is safe for concurrent use, so transforms are created without locking.
type cipherEngine struct {
	algorithm domain.CipherAlgorithm
	block     cipher.Block
	keySize   int
	zeroIV    []byte

	encryptors *transformPool
	decryptors *transformPool
}

// newCipherEngine builds an engine for alg. The block cipher keeps its own
// expanded copy of key; the caller may wipe key afterwards.
func newCipherEngine(alg domain.CipherAlgorithm, key []byte) (*cipherEngine, error) {
	if !alg.ValidKeySize(len(key)) {
		return nil, errors.Wrapf(domain.ErrInvalidKeySize, "%s cannot use a %d-byte key", alg, len(key))
	}

	block, err := newBlockCipher(alg, key)
	if err != nil {
		return nil, err
	}

	return &cipherEngine{
		algorithm:  alg,
		block:      block,
		keySize:    len(key),
		zeroIV:     make([]byte, block.BlockSize()),
		encryptors: newTransformPool(domain.PoolCapacity),
		decryptors: newTransformPool(domain.PoolCapacity),
	}, nil
}

func newBlockCipher(alg domain.CipherAlgorithm, key []byte) (cipher.Block, error) {
	var (
		block cipher.Block
		err   error
	)

	switch alg {
	case domain.CipherDES:
		block, err = des.NewCipher(key) //nolint:gosec
	case domain.CipherTripleDES:
		k := key
		if len(key) == 16 {
			// Two-key 3DES is expanded to k1 k2 k1.
			k = make([]byte, 24)
			copy(k, key)
			copy(k[16:], key[:8])
			defer domain.Zero(k)
		}
		block, err = des.NewTripleDESCipher(k) //nolint:gosec
	case domain.CipherAES:
		block, err = aes.NewCipher(key)
	default:
		return nil, errors.Wrapf(domain.ErrUnsupportedAlgorithm, "cipher %q", alg)
	}

	if err != nil {
		return nil, errors.Wrap(domain.ErrConfiguration, err.Error())
	}
	return block, nil
}

// ivSize returns the IV length used with this engine's key.
func (e *cipherEngine) ivSize() int {
	return ivLength(e.keySize * 8)
}

func (e *cipherEngine) pool(direction domain.Direction) *transformPool {
	if direction == domain.DirectionDecrypt {
		return e.decryptors
	}
	return e.encryptors
}

func (e *cipherEngine) newMode(direction domain.Direction) cipher.BlockMode {
	if direction == domain.DirectionDecrypt {
		return cipher.NewCBCDecrypter(e.block, e.zeroIV)
	}
	return cipher.NewCBCEncrypter(e.block, e.zeroIV)
}

// acquire pops an idle transform or creates a fresh one.
func (e *cipherEngine) acquire(direction domain.Direction) *transform {
	if t := e.pool(direction).get(); t != nil {
		return t
	}
	return &transform{mode: e.newMode(direction)}
}

// release resets the transform chaining state and returns it to the pool.
// Transforms beyond pool capacity are dropped.
func (e *cipherEngine) release(direction domain.Direction, t *transform) {
	if r, ok := t.mode.(ivResetter); ok {
		r.SetIV(e.zeroIV)
	} else {
		t.mode = e.newMode(direction)
	}
	e.pool(direction).put(t)
}

// encrypt pads plaintext with PKCS#7 and encrypts it in CBC mode.
func (e *cipherEngine) encrypt(plaintext []byte) []byte {
	padded := pkcs7Pad(plaintext, e.block.BlockSize())
	defer domain.Zero(padded)

	out := make([]byte, len(padded))

	t := e.acquire(domain.DirectionEncrypt)
	defer e.release(domain.DirectionEncrypt, t)
	t.mode.CryptBlocks(out, padded)

	return out
}

// decrypt decrypts ciphertext in CBC mode and strips PKCS#7 padding.
// Misaligned input and invalid padding are reported as tampering.
func (e *cipherEngine) decrypt(ciphertext []byte) ([]byte, error) {
	blockSize := e.block.BlockSize()
	if len(ciphertext) == 0 || len(ciphertext)%blockSize != 0 {
		return nil, domain.ErrTamperDetected
	}

	out := make([]byte, len(ciphertext))

	t := e.acquire(domain.DirectionDecrypt)
	defer e.release(domain.DirectionDecrypt, t)
	t.mode.CryptBlocks(out, ciphertext)

	n, ok := pkcs7PadLength(out, blockSize)
	if !ok {
		domain.Zero(out)
		return nil, domain.ErrTamperDetected
	}
	return out[:len(out)-n], nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// pkcs7PadLength validates the trailing padding of data and returns its length.
func pkcs7PadLength(data []byte, blockSize int) (int, bool) {
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return 0, false
	}

	var diff byte
	for _, b := range data[len(data)-n:] {
		diff |= b ^ byte(n)
	}
	return n, diff == 0
}
