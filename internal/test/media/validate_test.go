package media_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ecom-admin-backend/internal/media"
)

func TestValidateImageData_AcceptsSupportedFormats(t *testing.T) {
	cfg := media.DefaultUploadConfig()

	for _, format := range []string{"jpeg", "jpg", "png", "webp"} {
		err := media.ValidateImageData("data:image/"+format+";base64,aGVsbG8=", cfg)
		assert.NoError(t, err, format)
	}
}

func TestValidateImageData_RejectsNonDataURI(t *testing.T) {
	cfg := media.DefaultUploadConfig()

	err := media.ValidateImageData("https://example.com/image.png", cfg)
	assert.Error(t, err)

	err = media.ValidateImageData("not an image at all", cfg)
	assert.Error(t, err)
}

func TestValidateImageData_RejectsDisallowedFormat(t *testing.T) {
	cfg := media.DefaultUploadConfig()

	err := media.ValidateImageData("data:image/gif;base64,aGVsbG8=", cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "format must be one of")
}

func TestValidateImageData_RejectsOversizedPayload(t *testing.T) {
	cfg := media.UploadConfig{MaxSizeMB: 1, AllowedFormats: media.DefaultFormats}

	// ~2MB of base64 decodes to ~1.5MB, past the 1MB limit.
	payload := "data:image/png;base64," + strings.Repeat("A", 2*1024*1024)
	err := media.ValidateImageData(payload, cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 1MB")
}

func TestValidateImageData_AllowsPayloadUnderLimit(t *testing.T) {
	cfg := media.UploadConfig{MaxSizeMB: 1, AllowedFormats: media.DefaultFormats}

	payload := "data:image/png;base64," + strings.Repeat("A", 512*1024)
	assert.NoError(t, media.ValidateImageData(payload, cfg))
}

func TestIsDataURI(t *testing.T) {
	assert.True(t, media.IsDataURI("data:image/png;base64,aGVsbG8="))
	assert.False(t, media.IsDataURI("https://example.com/image.png"))
	assert.False(t, media.IsDataURI(""))
}

func TestIsRemoteURL(t *testing.T) {
	assert.True(t, media.IsRemoteURL("https://example.com/image.png"))
	assert.True(t, media.IsRemoteURL("http://example.com/image.png"))
	assert.False(t, media.IsRemoteURL("data:image/png;base64,aGVsbG8="))
	assert.False(t, media.IsRemoteURL("ftp://example.com/image.png"))
}
