package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	cache "github.com/patrickmn/go-cache"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	config "github.com/inference-gateway/coordpick/config"
	domain "github.com/inference-gateway/coordpick/internal/domain"
	logger "github.com/inference-gateway/coordpick/internal/logger"
)

// ImageService resolves submitted image references (remote URLs, data URLs and
// local files) into raw encoded bytes
type ImageService struct {
	client    *RetryableHTTPClient
	maxSize   int64
	userAgent string
	cache     *cache.Cache
}

// NewImageService creates a new image service
func NewImageService(cfg config.FetchConfig) *ImageService {
	s := &ImageService{
		client:    NewRetryableHTTPClient(time.Duration(cfg.Timeout)*time.Second, cfg.Retry),
		maxSize:   cfg.MaxSize,
		userAgent: cfg.UserAgent,
	}

	if cfg.Cache.Enabled && cfg.Cache.TTL > 0 {
		ttl := time.Duration(cfg.Cache.TTL) * time.Second
		s.cache = cache.New(ttl, 2*ttl)
	}

	return s
}

// ClassifyRef guesses the source kind of a submitted reference
func ClassifyRef(ref string) domain.SourceKind {
	lower := strings.ToLower(strings.TrimSpace(ref))
	switch {
	case strings.HasPrefix(lower, "data:"):
		return domain.SourceData
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return domain.SourceURL
	default:
		return domain.SourceFile
	}
}

// Resolve returns the encoded bytes a source refers to
func (s *ImageService) Resolve(ctx context.Context, src domain.Source) ([]byte, error) {
	if len(src.Data) > 0 {
		return src.Data, nil
	}

	switch src.Kind {
	case domain.SourceURL:
		return s.fetchURL(ctx, src.Ref)
	case domain.SourceData:
		data, _, err := DecodeDataURL(src.Ref)
		return data, err
	case domain.SourceFile:
		return s.readFile(src.Ref)
	default:
		return nil, fmt.Errorf("unsupported source kind %q", src.Kind)
	}
}

// DetectFormat reports the registered image format of encoded bytes
func (s *ImageService) DetectFormat(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to detect image format: %w", err)
	}
	return format, nil
}

// CreateDataURL creates a data URL from encoded bytes
func (s *ImageService) CreateDataURL(data []byte, mimeType string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

func (s *ImageService) fetchURL(ctx context.Context, targetURL string) ([]byte, error) {
	parsedURL, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL format: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("only HTTP and HTTPS URLs are allowed")
	}

	if s.cache != nil {
		if cached, found := s.cache.Get(targetURL); found {
			logger.Debug("Returning cached image", "url", targetURL)
			return cached.([]byte), nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "image/*")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("Failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	if resp.ContentLength > s.maxSize {
		return nil, fmt.Errorf("image too large: %d bytes (max: %d bytes)", resp.ContentLength, s.maxSize)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("image too large: more than %d bytes", s.maxSize)
	}

	if s.cache != nil {
		s.cache.SetDefault(targetURL, data)
	}

	logger.Debug("Fetched image", "url", targetURL, "size", len(data), "content_type", resp.Header.Get("Content-Type"))
	return data, nil
}

func (s *ImageService) readFile(path string) ([]byte, error) {
	path = normalizeFilePath(path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	if info.Size() > s.maxSize {
		return nil, fmt.Errorf("image too large: %d bytes (max: %d bytes)", info.Size(), s.maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	return data, nil
}

// normalizeFilePath converts file:// URLs to regular paths
func normalizeFilePath(filePath string) string {
	if strings.HasPrefix(filePath, "file://") {
		parsedURL, err := url.Parse(filePath)
		if err != nil {
			return filePath
		}
		return parsedURL.Path
	}
	return filePath
}

// IsImageFile checks if a file has a supported image extension
func IsImageFile(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(normalizeFilePath(filePath)))

	supportedExts := map[string]bool{
		".png":  true,
		".jpg":  true,
		".jpeg": true,
		".gif":  true,
		".webp": true,
		".bmp":  true,
		".tif":  true,
		".tiff": true,
	}

	return supportedExts[ext]
}

// DecodeDataURL parses an RFC 2397 data URL, returning its payload and media type
func DecodeDataURL(ref string) ([]byte, string, error) {
	if !strings.HasPrefix(strings.ToLower(ref), "data:") {
		return nil, "", fmt.Errorf("not a data URL")
	}

	header, payload, ok := strings.Cut(ref[len("data:"):], ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URL: missing ','")
	}

	mediaType := "text/plain"
	isBase64 := false
	for i, param := range strings.Split(header, ";") {
		switch {
		case i == 0 && param != "":
			mediaType = strings.ToLower(param)
		case strings.EqualFold(param, "base64"):
			isBase64 = true
		}
	}

	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			// some encoders drop the padding
			data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
			if err != nil {
				return nil, "", fmt.Errorf("malformed base64 payload: %w", err)
			}
		}
		return data, mediaType, nil
	}

	decoded, err := url.PathUnescape(payload)
	if err != nil {
		return nil, "", fmt.Errorf("malformed data URL payload: %w", err)
	}
	return []byte(decoded), mediaType, nil
}
