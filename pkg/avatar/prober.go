package avatar

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// HTTPProber checks images with HEAD requests against the host's web root
type HTTPProber struct {
	BaseURL string
	Client  *http.Client
	Retries int
}

// errNotRetryable marks answers a retry won't change
var errNotRetryable = errors.New("not retryable")

// NewHTTPProber makes a prober for the given base URL
func NewHTTPProber(baseURL string, timeout time.Duration) *HTTPProber {
	return &HTTPProber{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
		Retries: 3,
	}
}

// Exists returns true if HEAD on the image answers with 2xx.
// Network errors and 5xx are retried with backoff, other statuses are final.
func (p *HTTPProber) Exists(ctx context.Context, imgPath string) bool {
	target := p.BaseURL + "/" + strings.TrimPrefix(imgPath, "/")

	retries := p.Retries
	if retries < 1 {
		retries = 1
	}
	var found bool
	retrier := repeater.NewBackoff(retries, 50*time.Millisecond, repeater.WithMaxDelay(time.Second))
	err := retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, http.NoBody)
		if err != nil {
			return fmt.Errorf("make request: %w: %w", errNotRetryable, err)
		}
		resp, err := p.Client.Do(req)
		if err != nil {
			return fmt.Errorf("head %s: %w", target, err)
		}
		_ = resp.Body.Close()
		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			found = true
			return nil
		case resp.StatusCode >= 500:
			return fmt.Errorf("head %s: status %d", target, resp.StatusCode)
		default:
			return nil
		}
	}, errNotRetryable)
	if err != nil {
		log.Printf("[DEBUG] image check failed: %v", err)
		return false
	}
	return found
}

// DirProber checks images on the local filesystem under Root
type DirProber struct {
	Root string
}

// Exists returns true if path points to a regular file inside Root
func (p DirProber) Exists(_ context.Context, imgPath string) bool {
	unescaped, err := url.PathUnescape(imgPath)
	if err != nil {
		return false
	}
	clean := path.Clean("/" + unescaped)
	full := filepath.Join(p.Root, filepath.FromSlash(clean))
	rel, err := filepath.Rel(p.Root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	st, err := os.Stat(full)
	if err != nil {
		return false
	}
	return st.Mode().IsRegular()
}
