package media

import (
	"fmt"
	"strings"
)

const dataURIPrefix = "data:image/"

// DefaultFormats are the image formats accepted for upload.
var DefaultFormats = []string{"jpeg", "jpg", "png", "webp"}

// UploadConfig bounds what the validator accepts before any network call.
type UploadConfig struct {
	MaxSizeMB      int
	AllowedFormats []string
}

func DefaultUploadConfig() UploadConfig {
	return UploadConfig{
		MaxSizeMB:      5,
		AllowedFormats: DefaultFormats,
	}
}

// ValidateImageData checks a base64 data-URI image payload against the
// config: recognized image prefix, decoded size within the limit, declared
// format allowed. The size check is a conservative pre-check (base64 is
// ~33% larger than the binary); the media host enforces the authoritative
// limit.
func ValidateImageData(imageData string, cfg UploadConfig) error {
	if !strings.HasPrefix(imageData, dataURIPrefix) {
		return fmt.Errorf("invalid image format")
	}

	maxSize := float64(cfg.MaxSizeMB) * 1024 * 1024 * 1.33
	sizeInBytes := float64(len(imageData)) * 3 / 4
	if sizeInBytes > maxSize {
		return fmt.Errorf("image size exceeds %dMB", cfg.MaxSizeMB)
	}

	format := declaredFormat(imageData)
	for _, allowed := range cfg.AllowedFormats {
		if format == allowed {
			return nil
		}
	}

	return fmt.Errorf("image format must be one of: %s", strings.Join(cfg.AllowedFormats, ", "))
}

// declaredFormat extracts the format from the data-URI media type, e.g.
// "data:image/png;base64,..." -> "png".
func declaredFormat(imageData string) string {
	head, _, _ := strings.Cut(imageData, ";")
	_, format, _ := strings.Cut(head, "/")
	return format
}

// IsDataURI reports whether an image reference is a new payload to upload,
// as opposed to a URL of an already-hosted image.
func IsDataURI(ref string) bool {
	return strings.HasPrefix(ref, dataURIPrefix)
}

// IsRemoteURL reports whether an image reference points at an
// already-hosted image.
func IsRemoteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
