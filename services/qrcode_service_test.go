// file: services/qrcode_service_test.go
package services

import (
	"bytes"
	"errors"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock encoder function (successful)
func mockQRCodeEncoderSuccess(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
	return []byte("mock_qr_code_data:" + content), nil
}

// Mock encoder function (failure)
func mockQRCodeEncoderFailure(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
	return nil, errors.New("QR code generation failed")
}

// Test: Generate QR Code Successfully
func TestGenerateEventQRCode_Success(t *testing.T) {
	data, err := GenerateEventQRCode("http://localhost:8080/events/e1", 200, mockQRCodeEncoderSuccess)

	assert.NoError(t, err)
	assert.Equal(t, "mock_qr_code_data:http://localhost:8080/events/e1", string(data))
}

// Test: Fail QR Code Generation Due to Invalid Size
func TestGenerateEventQRCode_InvalidSize(t *testing.T) {
	for _, size := range []int{-100, 0, MaxQRCodeSize + 1} {
		data, err := GenerateEventQRCode("http://x/events/e1", size, mockQRCodeEncoderSuccess)
		assert.ErrorIs(t, err, ErrInvalidQRCodeSize)
		assert.Nil(t, data)
	}
}

func TestGenerateEventQRCode_EmptyURL(t *testing.T) {
	_, err := GenerateEventQRCode("  ", 200, mockQRCodeEncoderSuccess)
	assert.ErrorIs(t, err, ErrEmptyQRCodeURL)
}

// Test: QR Code Generation Fails Due to Encoder Error
func TestGenerateEventQRCode_EncoderFails(t *testing.T) {
	data, err := GenerateEventQRCode("http://x/events/e1", 200, mockQRCodeEncoderFailure)

	assert.Error(t, err)
	assert.Nil(t, data)
	assert.Equal(t, "QR code generation failed", err.Error())
}

// Test: the real encoder produces a PNG
func TestGenerateEventQRCode_RealEncoder(t *testing.T) {
	data, err := GenerateEventQRCode("http://localhost:8080/events/backend-42", 128, nil)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")), "expected PNG signature")
}

func TestEventURL(t *testing.T) {
	assert.Equal(t, "https://tix.example.com/events/e2", EventURL("https://tix.example.com/", "e2"))
	assert.Equal(t, "http://localhost:8080/events/backend-3", EventURL("http://localhost:8080", "backend-3"))
}
