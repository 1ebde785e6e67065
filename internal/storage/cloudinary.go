// Package storage is the Cloudinary media store client. Uploads detect the
// resource kind (image vs. video) automatically; deletes are best-effort
// and derive the public ID and resource type from the stored URL.
package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	CloudName string
	APIKey    string
	APISecret string
}

type MediaStore struct {
	cld *cloudinary.Cloudinary
}

func New(cfg Config) (*MediaStore, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &MediaStore{cld: cld}, nil
}

// Upload sends a single file to Cloudinary and returns its secure URL.
func (m *MediaStore) Upload(ctx context.Context, r io.Reader) (string, error) {
	resp, err := m.cld.Upload.Upload(ctx, r, uploader.UploadParams{ResourceType: "auto"})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// UploadAll uploads a batch concurrently and returns the URLs in input
// order. The first failure aborts the batch; URLs already uploaded are not
// rolled back, the caller must discard the whole result.
func (m *MediaStore) UploadAll(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	urls := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			f, err := fh.Open()
			if err != nil {
				return fmt.Errorf("open %s: %w", fh.Filename, err)
			}
			defer f.Close()
			url, err := m.Upload(ctx, f)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

// Delete destroys the asset behind url. Failures are logged, never
// returned; destroying a missing asset must not break the caller.
func (m *MediaStore) Delete(ctx context.Context, url string) {
	publicID := PublicID(url)
	if publicID == "" {
		return
	}
	_, err := m.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: ResourceType(url),
	})
	if err != nil {
		log.Printf("cloudinary destroy %s: %v", publicID, err)
	}
}

// DeleteAll issues best-effort deletes for every URL concurrently and
// waits for all of them.
func (m *MediaStore) DeleteAll(ctx context.Context, urls []string) {
	var wg sync.WaitGroup
	for _, u := range urls {
		u := u
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Delete(ctx, u)
		}()
	}
	wg.Wait()
}

// PublicID extracts the Cloudinary public ID from an asset URL: the last
// path segment, cut at its first dot.
func PublicID(url string) string {
	segment := url[strings.LastIndex(url, "/")+1:]
	if i := strings.Index(segment, "."); i >= 0 {
		segment = segment[:i]
	}
	return segment
}

var videoExtensions = map[string]bool{
	"mp4": true,
	"mov": true,
	"avi": true,
}

// ResourceType maps the URL's file extension to the Cloudinary resource
// type: mp4/mov/avi are video, everything else is image.
func ResourceType(url string) string {
	ext := strings.ToLower(url[strings.LastIndex(url, ".")+1:])
	if videoExtensions[ext] {
		return "video"
	}
	return "image"
}
