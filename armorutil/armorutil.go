// Package armorutil wraps and unwraps ASCII-armored OpenPGP public keys.
// It goes no deeper than the armor layer: the key material inside is
// passed through untouched.
package armorutil

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"strings"

	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"
)

// EncodePublicKey wraps raw public key material in a PGP PUBLIC KEY BLOCK.
func EncodePublicKey(data []byte) (string, error) {
	buffer := bytes.NewBuffer(nil)

	armorWriteCloser, err := armor.Encode(buffer, openpgp.PublicKeyType, nil)
	if err != nil {
		return "", fmt.Errorf("error making armor encoder: %v", err)
	}
	if _, err := armorWriteCloser.Write(data); err != nil {
		return "", err
	}
	if err := armorWriteCloser.Close(); err != nil {
		return "", err
	}
	return buffer.String(), nil
}

// DecodePublicKey unwraps an armored PGP PUBLIC KEY BLOCK and returns the
// raw key material, verifying the armor checksum along the way.
func DecodePublicKey(armoredKey string) ([]byte, error) {
	block, err := armor.Decode(strings.NewReader(armoredKey))
	if err != nil {
		return nil, fmt.Errorf("error decoding armor: %v", err)
	}
	if block.Type != openpgp.PublicKeyType {
		return nil, fmt.Errorf(
			"expected '%s', got '%s'", openpgp.PublicKeyType, block.Type)
	}

	data, err := ioutil.ReadAll(block.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading armor body: %v", err)
	}
	return data, nil
}

// CheckPublicKey reports whether armoredKey holds a well-formed armored
// public key block.
func CheckPublicKey(armoredKey string) error {
	_, err := DecodePublicKey(armoredKey)
	return err
}
