// Copyright (c) 2026 Lazyprop Team
// Lazyprop - secure properties environment manager
// This source code is licensed under the MIT license found in the LICENSE file.

package transform

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/blowfish"

	"github.com/lazyprop/lazyprop/internal/env"
)

// NativeGateway encrypts in process. The key string is used as raw key
// bytes. With random IVs a fresh IV is prepended to the ciphertext,
// otherwise the IV is the first block of the key (zero padded), which makes
// the output deterministic and reuses key material as the IV. CBC and ECB
// use PKCS#5 padding. Output is standard base64.
type NativeGateway struct {
	rand io.Reader
}

func NewNativeGateway() *NativeGateway {
	return &NativeGateway{rand: rand.Reader}
}

func (g *NativeGateway) Transform(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	block, err := newBlock(req.Algorithm, []byte(req.Key))
	if err != nil {
		return "", &Error{Diagnostic: err.Error()}
	}

	var out string
	switch req.Op {
	case Encrypt:
		out, err = g.encrypt(block, req)
	case Decrypt:
		out, err = g.decrypt(block, req)
	default:
		err = fmt.Errorf("unknown operation %q", req.Op)
	}
	if err != nil {
		return "", &Error{Diagnostic: err.Error()}
	}
	return out, nil
}

func newBlock(alg env.Algorithm, key []byte) (cipher.Block, error) {
	switch alg {
	case env.AES:
		switch len(key) {
		case 16, 24, 32:
			return aes.NewCipher(key)
		}
		return nil, fmt.Errorf("AES requires a 16, 24 or 32 byte key, got %d", len(key))
	case env.DES:
		if len(key) != 8 {
			return nil, fmt.Errorf("DES requires an 8 byte key, got %d", len(key))
		}
		return des.NewCipher(key)
	case env.DESede:
		switch len(key) {
		case 16:
			return des.NewTripleDESCipher(append(bytes.Clone(key), key[:8]...))
		case 24:
			return des.NewTripleDESCipher(key)
		}
		return nil, fmt.Errorf("DESede requires a 16 or 24 byte key, got %d", len(key))
	case env.Blowfish:
		if len(key) < 1 || len(key) > 56 {
			return nil, fmt.Errorf("Blowfish requires a key of 1 to 56 bytes, got %d", len(key))
		}
		return blowfish.NewCipher(key)
	}
	return nil, fmt.Errorf("algorithm %s is not supported by the native engine", alg)
}

// fixedIV returns the IV used when random IVs are off: the first size bytes
// of the key itself, zero padded. The key doubles as the IV, so equal
// plaintexts give equal ciphertexts and the first block leaks structure.
// Random IVs should stay on unless deterministic output is required.
func fixedIV(key []byte, size int) []byte {
	iv := make([]byte, size)
	copy(iv, key)
	return iv
}

func (g *NativeGateway) encrypt(block cipher.Block, req Request) (string, error) {
	bs := block.BlockSize()
	plain := []byte(req.Input)

	var iv []byte
	if req.UseRandomIVs {
		iv = make([]byte, bs)
		if _, err := io.ReadFull(g.rand, iv); err != nil {
			return "", fmt.Errorf("could not generate IV: %w", err)
		}
	} else {
		iv = fixedIV([]byte(req.Key), bs)
	}

	var ct []byte
	switch req.Mode {
	case env.CBC:
		ct = pad(plain, bs)
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, ct)
	case env.ECB:
		ct = pad(plain, bs)
		for i := 0; i < len(ct); i += bs {
			block.Encrypt(ct[i:i+bs], ct[i:i+bs])
		}
	case env.CFB:
		ct = make([]byte, len(plain))
		cipher.NewCFBEncrypter(block, iv).XORKeyStream(ct, plain)
	case env.OFB:
		ct = make([]byte, len(plain))
		cipher.NewOFB(block, iv).XORKeyStream(ct, plain)
	default:
		return "", fmt.Errorf("unknown mode %s", req.Mode)
	}

	if req.UseRandomIVs {
		ct = append(iv, ct...)
	}
	return base64.StdEncoding.EncodeToString(ct), nil
}

func (g *NativeGateway) decrypt(block cipher.Block, req Request) (string, error) {
	bs := block.BlockSize()
	data, err := base64.StdEncoding.DecodeString(req.Input)
	if err != nil {
		return "", fmt.Errorf("input is not valid base64: %w", err)
	}

	var iv []byte
	if req.UseRandomIVs {
		if len(data) < bs {
			return "", fmt.Errorf("ciphertext too short")
		}
		iv, data = data[:bs], data[bs:]
	} else {
		iv = fixedIV([]byte(req.Key), bs)
	}

	out := make([]byte, len(data))
	switch req.Mode {
	case env.CBC, env.ECB:
		if len(data) == 0 || len(data)%bs != 0 {
			return "", fmt.Errorf("ciphertext is not a multiple of the block size")
		}
		if req.Mode == env.CBC {
			cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, data)
		} else {
			for i := 0; i < len(data); i += bs {
				block.Decrypt(out[i:i+bs], data[i:i+bs])
			}
		}
		if out, err = unpad(out, bs); err != nil {
			return "", err
		}
	case env.CFB:
		cipher.NewCFBDecrypter(block, iv).XORKeyStream(out, data)
	case env.OFB:
		cipher.NewOFB(block, iv).XORKeyStream(out, data)
	default:
		return "", fmt.Errorf("unknown mode %s", req.Mode)
	}
	return string(out), nil
}

func pad(b []byte, bs int) []byte {
	n := bs - len(b)%bs
	return append(bytes.Clone(b), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte, bs int) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("invalid padding")
	}
	n := int(b[len(b)-1])
	if n == 0 || n > bs || n > len(b) {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return b[:len(b)-n], nil
}

var _ Gateway = (*NativeGateway)(nil)
