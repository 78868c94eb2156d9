package crypto

import (
	"crypto/rand"
	"errors"
	"io"
	"os"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"

	"docvault/shared/constants"
)

const saltSize = 16

var ErrDecrypt = errors.New("unable to decrypt stored token")

// ReadCLIKey returns the value of the DOCVAULT_CLI_KEY environment variable,
// which, when set, is used to seal the locally stored auth token.
func ReadCLIKey() []byte {
	return []byte(os.Getenv(constants.CLIKeyEnvVar))
}

// DeriveKey derives a secretbox key from a password and salt. The salt can be
// left nil in order to randomly generate one.
func DeriveKey(password []byte, salt []byte) ([constants.KeySize]byte, []byte, error) {
	if salt == nil {
		salt = make([]byte, saltSize)
		if _, err := rand.Read(salt); err != nil {
			return [constants.KeySize]byte{}, nil, err
		}
	}

	key, err := scrypt.Key(password, salt, 32768, 8, 1, constants.KeySize)
	if err != nil {
		return [constants.KeySize]byte{}, nil, err
	}

	return [constants.KeySize]byte(key), salt, nil
}

// EncryptChunk seals data with the key, prefixing the random nonce.
func EncryptChunk(key [constants.KeySize]byte, data []byte) ([]byte, error) {
	var nonce [constants.NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, err
	}

	return secretbox.Seal(nonce[:], data, &nonce, &key), nil
}

func DecryptChunk(key [constants.KeySize]byte, chunk []byte) ([]byte, error) {
	if len(chunk) < constants.NonceSize+secretbox.Overhead {
		return nil, ErrDecrypt
	}

	var nonce [constants.NonceSize]byte
	copy(nonce[:], chunk[:constants.NonceSize])

	decrypted, ok := secretbox.Open(nil, chunk[constants.NonceSize:], &nonce, &key)
	if !ok {
		return nil, ErrDecrypt
	}

	return decrypted, nil
}

// SealToken encrypts a token with a key derived from password. The output is
// salt || nonce || box.
func SealToken(password []byte, token string) ([]byte, error) {
	key, salt, err := DeriveKey(password, nil)
	if err != nil {
		return nil, err
	}

	sealed, err := EncryptChunk(key, []byte(token))
	if err != nil {
		return nil, err
	}

	return append(salt, sealed...), nil
}

func OpenToken(password []byte, sealed []byte) (string, error) {
	if len(sealed) < saltSize {
		return "", ErrDecrypt
	}

	key, _, err := DeriveKey(password, sealed[:saltSize])
	if err != nil {
		return "", err
	}

	token, err := DecryptChunk(key, sealed[saltSize:])
	if err != nil {
		return "", err
	}

	return string(token), nil
}
