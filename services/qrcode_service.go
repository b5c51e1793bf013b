// Package services holds helpers the page handlers share.
// File: services/qrcode_service.go
package services

import (
	"errors"
	"strings"

	"github.com/skip2/go-qrcode"
)

// QRCodeEncoder matches qrcode.Encode so tests can substitute it.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// MaxQRCodeSize bounds the PNG edge length in pixels.
const MaxQRCodeSize = 1024

var (
	ErrInvalidQRCodeSize = errors.New("invalid size: must be between 1 and 1024 pixels")
	ErrEmptyQRCodeURL    = errors.New("event URL is empty")
)

// GenerateEventQRCode renders a PNG QR code pointing at an event page.
func GenerateEventQRCode(eventURL string, size int, encode QRCodeEncoder) ([]byte, error) {
	if size <= 0 || size > MaxQRCodeSize {
		return nil, ErrInvalidQRCodeSize
	}
	if strings.TrimSpace(eventURL) == "" {
		return nil, ErrEmptyQRCodeURL
	}
	if encode == nil {
		encode = qrcode.Encode
	}

	png, err := encode(eventURL, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}

// EventURL joins the public application URL and an event display ID.
func EventURL(applicationURL, displayID string) string {
	return strings.TrimRight(applicationURL, "/") + "/events/" + displayID
}
