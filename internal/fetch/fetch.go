package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	cr "mediafetcher/internal/counting_reader"
	"mediafetcher/internal/manifest"
	"mediafetcher/internal/utils"
)

var (
	UA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

	Logging iLogger
)

type Fetcher struct {
	SizeLimit int64

	Client  *http.Client
	Headers map[string]string
}

func NewFetcher(sizelim int64) *Fetcher {
	return &Fetcher{
		SizeLimit: sizelim,
		Client:    http.DefaultClient,
	}
}

// Manifest fetches url and returns the parsed MPD. A watch page is
// resolved to the manifest url it embeds, which is then fetched in turn.
func (f *Fetcher) Manifest(ctx context.Context, url string) (mpd *manifest.MPD, err error) {
	body, ctype, err := f.get(ctx, url)
	if err != nil {
		return
	}

	if isHTML(ctype, body) {
		var mu string
		mu, err = manifest.ResolveManifestURL(string(body))
		if err != nil {
			return
		}
		if Logging != nil {
			Logging.Debugf("resolved manifest url: %s", mu)
		}

		body, _, err = f.get(ctx, mu)
		if err != nil {
			return
		}
	}

	return manifest.Load(body)
}

func (f *Fetcher) get(ctx context.Context, url string) (body []byte, ctype string, err error) {
	headers := map[string]string{
		"User-Agent": UA,
	}
	for k, v := range f.Headers {
		headers[k] = v
	}

	resp, err := utils.HTTPRequest(ctx, f.Client, http.MethodGet, url, headers, nil)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		err = fmt.Errorf("bad status code: %v", resp.StatusCode)
		return
	}

	rdr := cr.NewCountingReader(resp.Body, f.SizeLimit)
	body, err = io.ReadAll(rdr)
	if err != nil {
		return
	}

	ctype = resp.Header.Get("Content-Type")
	return
}

func isHTML(ctype string, body []byte) bool {
	if strings.Contains(ctype, "text/html") {
		return true
	}
	t := bytes.ToLower(bytes.TrimSpace(body))
	return bytes.HasPrefix(t, []byte("<!doctype html")) || bytes.HasPrefix(t, []byte("<html"))
}
