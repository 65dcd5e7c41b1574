package registry

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"

	"officeorder/internal/pkg/errs"
)

const (
	saltLength = 16
	keyLength  = 32

	// scrypt cost parameters: interactive profile.
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// Envelope encrypts and decrypts the opaque payload blobs exchanged with the
// registry backend. AES-256-GCM with a key derived from the shared secret
// via scrypt; each blob carries its own salt and nonce:
//
//	blob = base64(salt || nonce || ciphertext)
//
// Decryption failures are never swallowed; the caller gets a CryptoError to
// surface verbatim.
type Envelope struct {
	secret []byte
}

// NewEnvelope creates an envelope over the shared secret.
func NewEnvelope(secret string) (*Envelope, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("envelope secret")
	}

	return &Envelope{secret: []byte(secret)}, nil
}

// Encrypt seals the plaintext into an opaque blob.
func (e *Envelope) Encrypt(plaintext []byte) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", errs.NewCryptoError("encrypt", err)
	}

	gcm, err := e.aead(salt)
	if err != nil {
		return "", errs.NewCryptoError("encrypt", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errs.NewCryptoError("encrypt", err)
	}

	sealed := gcm.Seal(nil, nonce, plaintext, nil)

	blob := make([]byte, 0, len(salt)+len(nonce)+len(sealed))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, sealed...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt opens a blob produced by Encrypt (or by the backend's matching
// implementation) and returns the plaintext.
func (e *Envelope) Decrypt(blob string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, errs.NewCryptoError("decrypt", err)
	}
	if len(raw) < saltLength {
		return nil, errs.NewCryptoError("decrypt", errors.New("blob too short"))
	}

	salt, rest := raw[:saltLength], raw[saltLength:]

	gcm, err := e.aead(salt)
	if err != nil {
		return nil, errs.NewCryptoError("decrypt", err)
	}
	if len(rest) < gcm.NonceSize() {
		return nil, errs.NewCryptoError("decrypt", errors.New("blob too short"))
	}

	nonce, sealed := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, errs.NewCryptoError("decrypt", err)
	}
	return plaintext, nil
}

func (e *Envelope) aead(salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(e.secret, salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	return cipher.NewGCM(block)
}
