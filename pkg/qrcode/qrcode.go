package qrcode

import (
	"encoding/base64"
	"fmt"

	goqrcode "github.com/skip2/go-qrcode"
)

const dataURIPrefix = "data:image/png;base64,"

// Encoder renders payloads as PNG QR codes.
type Encoder struct {
	Size  int
	Level goqrcode.RecoveryLevel
}

func NewEncoder(size int) *Encoder {
	if size <= 0 {
		size = 256
	}
	return &Encoder{Size: size, Level: goqrcode.Medium}
}

func (e *Encoder) PNG(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("qr payload is empty")
	}
	png, err := goqrcode.Encode(string(payload), e.Level, e.Size)
	if err != nil {
		return nil, fmt.Errorf("encode qr png: %w", err)
	}
	return png, nil
}

// Encode returns the QR code as a data URI the browser can show in an <img>.
func (e *Encoder) Encode(payload []byte) (string, error) {
	png, err := e.PNG(payload)
	if err != nil {
		return "", err
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(png), nil
}
