package gallery

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"galgen/config"
	"galgen/utils/images"
)

// Directory names inside the gallery root. Originals live in full_pc and are
// renamed in place, downscaled copies go to full_mobile, atlases and the
// manifest land at the root itself.
const (
	FullPCDir     = "full_pc"
	FullMobileDir = "full_mobile"
)

// pipeline carries state of one generation run. Assets are processed strictly
// one at a time: decode, mobile copy, thumbnail cell, next.
type pipeline struct {
	galleryDir string
	cfg        *config.GalleryConfig
	bg         color.NRGBA
	atlas      *AtlasBuilder
	items      []ManifestItem
	baseURL    string
	log        *zap.Logger
}

func newPipeline(galleryDir string, cfg *config.GalleryConfig, log *zap.Logger) (*pipeline, error) {
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return nil, err
	}
	return &pipeline{
		galleryDir: galleryDir,
		cfg:        cfg,
		bg:         bg,
		atlas:      NewAtlasBuilder(cfg.Cell, cfg.Grid, bg, cfg.Atlas.MaxPages),
		baseURL:    resolveBaseURL(cfg.Manifest.BaseURL, cfg.Manifest.User),
		log:        log,
	}, nil
}

// processAsset fully handles one sequenced source: decodes it, writes the
// mobile copy and accumulates the letterboxed thumbnail cell and manifest
// item. Transforms never touch the original.
func (p *pipeline) processAsset(a Asset) error {
	img, err := p.load(a)
	if err != nil {
		return err
	}

	mobileName := a.Stem + "." + p.cfg.Mobile.Format.Ext()
	if err := p.saveMobile(img, filepath.Join(p.galleryDir, FullMobileDir, mobileName)); err != nil {
		return err
	}

	p.atlas.Add(images.Letterbox(img, p.cfg.Cell.Width, p.cfg.Cell.Height, p.bg))

	if p.cfg.Manifest.Enable {
		p.items = append(p.items, ManifestItem{
			ID:         a.Index,
			Caption:    captionFor(a.Stem, p.cfg.Manifest.Caption),
			FullPC:     fmt.Sprintf("%s%s/%s.%s", p.baseURL, FullPCDir, a.Stem, a.Ext),
			FullMobile: fmt.Sprintf("%s%s/%s", p.baseURL, FullMobileDir, mobileName),
		})
	}

	p.log.Debug("Processed source image", zap.Int("id", a.Index), zap.Bool("placeholder", a.Placeholder))
	return nil
}

func (p *pipeline) load(a Asset) (image.Image, error) {
	if a.Ext == "svg" {
		data, err := os.ReadFile(a.Path)
		if err != nil {
			return nil, fmt.Errorf("unable to read %q: %w", a.Path, err)
		}
		img, err := images.RasterizeSVG(data, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("unable to rasterize %q: %w", a.Path, err)
		}
		return img, nil
	}
	img, _, err := images.Open(a.Path)
	return img, err
}

// saveMobile writes the downscaled copy. Only the long edge is constrained
// and images already within the limit are stored unscaled.
func (p *pipeline) saveMobile(img image.Image, path string) error {
	mobile := images.FitLongEdge(img, p.cfg.Mobile.LongEdgeLimit)
	if p.cfg.Mobile.Format == config.MobileFormatJpeg {
		return images.SaveJPEG(mobile, path, p.cfg.Mobile.JPEGQuality)
	}
	return images.SavePNG(mobile, path)
}

// writeAtlases renders accumulated pages to the gallery root and returns
// their file names in page order.
func (p *pipeline) writeAtlases() ([]string, error) {
	pages := p.atlas.Pages()
	names := make([]string, 0, len(pages))
	for i, page := range pages {
		name, err := expandAtlasName(p.cfg.Atlas.NameTemplate, i+1)
		if err != nil {
			return nil, err
		}
		if err := images.SaveJPEG(page, filepath.Join(p.galleryDir, name), p.cfg.Atlas.JPEGQuality); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if d := p.atlas.Dropped(); d > 0 {
		p.log.Warn("Atlas page limit reached, thumbnails dropped",
			zap.Int("max_pages", p.cfg.Atlas.MaxPages), zap.Int("dropped", d))
	}
	return names, nil
}

func (p *pipeline) writeManifest(atlasNames []string) error {
	m := buildManifest(p.items, atlasNames, p.atlas.Capacity(), p.baseURL)
	return m.Write(filepath.Join(p.galleryDir, ManifestName))
}
