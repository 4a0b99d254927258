package media

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// UploadResult is what callers persist about an uploaded image.
type UploadResult struct {
	URL      string
	PublicID string
	FileName string
	Format   string
	Bytes    int
}

// Client wraps the Cloudinary SDK. Uploads are namespaced under
// <rootFolder>/stores/<storeID>/<category> so tenants cannot collide.
type Client struct {
	cld        *cloudinary.Cloudinary
	rootFolder string
	deliveryRe *regexp.Regexp
}

func NewClient(cloudinaryURL, rootFolder string) (*Client, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	cloudName := cld.Config.Cloud.CloudName
	re := regexp.MustCompile(`^https?://res\.cloudinary\.com/` + regexp.QuoteMeta(cloudName) + `/image/upload/`)

	return &Client{
		cld:        cld,
		rootFolder: rootFolder,
		deliveryRe: re,
	}, nil
}

func (c *Client) UploadImage(ctx context.Context, imageData string, storeID uuid.UUID, category string) (*UploadResult, error) {
	folder := fmt.Sprintf("%s/stores/%s/%s", c.rootFolder, storeID, category)

	result, err := c.cld.Upload.Upload(ctx, imageData, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload image: %s", result.Error.Message)
	}

	fileName := result.OriginalFilename
	if fileName == "" {
		fileName = path.Base(result.PublicID)
	}

	return &UploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		FileName: fileName,
		Format:   result.Format,
		Bytes:    result.Bytes,
	}, nil
}

// DeleteResources destroys a batch of assets by public id. Unknown or
// already-deleted ids are not errors; transport failures are collected and
// returned so callers can log them.
func (c *Client) DeleteResources(ctx context.Context, publicIDs []string) error {
	var errs []error
	for _, id := range publicIDs {
		if id == "" {
			continue
		}
		if _, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: id}); err != nil {
			errs = append(errs, fmt.Errorf("failed to destroy %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// ExtractPublicID recovers the public id from a delivery URL, for records
// that persisted only the URL. Returns "" when the URL is not one of this
// cloud's delivery URLs.
func (c *Client) ExtractPublicID(rawURL string) string {
	if !c.deliveryRe.MatchString(rawURL) {
		return ""
	}

	publicID := c.deliveryRe.ReplaceAllString(rawURL, "")
	publicID = versionRe.ReplaceAllString(publicID, "")

	if i := strings.LastIndex(publicID, "."); i > 0 {
		publicID = publicID[:i]
	}

	return publicID
}

var versionRe = regexp.MustCompile(`^v\d+/`)
