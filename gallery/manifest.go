package gallery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/text/unicode/norm"

	"galgen/config"
	"galgen/misc"
)

// ManifestName is the file name of the gallery listing at the gallery root.
const ManifestName = "list.json"

type (
	ManifestItem struct {
		ID         int    `json:"id"`
		Caption    string `json:"caption"`
		FullPC     string `json:"full_pc"`
		FullMobile string `json:"full_mobile"`
	}

	ManifestPage struct {
		Atlas string         `json:"atlas"`
		Items []ManifestItem `json:"items"`
	}

	// ManifestInfo describes the run which produced the listing.
	ManifestInfo struct {
		ID      string `json:"id"`
		Tool    string `json:"tool"`
		Version string `json:"version"`
		Date    string `json:"date"`
	}

	Manifest struct {
		Generated ManifestInfo   `json:"generated"`
		Pages     []ManifestPage `json:"pages"`
	}
)

// resolveBaseURL picks the URL prefix for all manifest references. Explicit
// base URL wins, then the GitHub Pages convention for the given user, then a
// relative fallback.
func resolveBaseURL(baseURL, user string) string {
	if len(baseURL) > 0 {
		return strings.TrimRight(baseURL, "/") + "/"
	}
	if len(user) > 0 {
		return fmt.Sprintf("https://%s.github.io/gallery/", user)
	}
	return "./gallery/"
}

// captionFor derives item caption from the file name stem. Stems coming from
// the file system may be in decomposed unicode form (macOS), captions are
// normalized to NFC so they compare and render predictably.
func captionFor(stem string, mode config.CaptionMode) string {
	switch mode {
	case config.CaptionModeFilename:
		return norm.NFC.String(stem)
	case config.CaptionModeSlug:
		return slug.Make(stem)
	default:
		return ""
	}
}

// buildManifest groups items into pages of the given capacity. Page p holds
// items [p*capacity, min((p+1)*capacity, total)), atlasNames must cover every
// resulting page.
func buildManifest(items []ManifestItem, atlasNames []string, capacity int, baseURL string) *Manifest {
	m := &Manifest{
		Generated: ManifestInfo{
			ID:      uuid.NewString(),
			Tool:    misc.GetAppName(),
			Version: misc.GetVersion(),
			Date:    time.Now().UTC().Format(time.RFC3339),
		},
		Pages: make([]ManifestPage, 0, len(atlasNames)),
	}
	for p, name := range atlasNames {
		start := p * capacity
		end := min((p+1)*capacity, len(items))
		if start >= end {
			break
		}
		m.Pages = append(m.Pages, ManifestPage{
			Atlas: baseURL + name,
			Items: items[start:end],
		})
	}
	return m
}

// Write serializes the manifest as pretty printed UTF-8 JSON with non-ASCII
// text preserved verbatim and lands it atomically: full temp file write, then
// rename over the final name.
func (m *Manifest) Write(path string) error {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("unable to serialize manifest: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("unable to create temporary manifest: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("unable to write manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to write manifest: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("unable to finalize manifest: %w", err)
	}
	return nil
}
