package gallery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"galgen/config"
	"galgen/state"
)

// Run is the "generate" subcommand action: it applies command line overrides
// on top of loaded configuration and drives the whole pipeline.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	dir := cmd.Args().Get(0)
	if len(dir) == 0 {
		dir = "gallery"
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	env.GalleryDir = dir

	if err := applyOverrides(cmd, &env.Cfg.Gallery); err != nil {
		return err
	}

	log.Info("Generation starting", zap.String("gallery", dir))
	defer func(start time.Time) {
		log.Info("Generation completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	results, err := generate(ctx, env.GalleryDir, &env.Cfg.Gallery, log)
	if err != nil {
		return err
	}
	for _, name := range results {
		env.Rpt.Store("result-"+name, filepath.Join(env.GalleryDir, name))
	}
	return nil
}

// applyOverrides copies recognized command line flags into configuration.
// Malformed size or grid specifications are fatal - nothing is written when
// arguments cannot be understood.
func applyOverrides(cmd *cli.Command, cfg *config.GalleryConfig) error {
	if cmd.IsSet("cell") {
		w, h, err := parseDims(cmd.String("cell"))
		if err != nil {
			return fmt.Errorf("invalid --cell: %w", err)
		}
		cfg.Cell.Width, cfg.Cell.Height = w, h
	}
	if cmd.IsSet("grid") {
		c, r, err := parseDims(cmd.String("grid"))
		if err != nil {
			return fmt.Errorf("invalid --grid: %w", err)
		}
		cfg.Grid.Columns, cfg.Grid.Rows = c, r
	}
	if cmd.IsSet("mobile-max") {
		limit := int(cmd.Int("mobile-max"))
		if limit < 16 {
			return fmt.Errorf("invalid --mobile-max: %d", limit)
		}
		cfg.Mobile.LongEdgeLimit = limit
	}
	if cmd.IsSet("ext") {
		format, err := config.ParseMobileFormat(normalizeFormat(cmd.String("ext")))
		if err != nil {
			return fmt.Errorf("invalid --ext: %w", err)
		}
		cfg.Mobile.Format = format
	}
	if cmd.IsSet("caption") {
		mode, err := config.ParseCaptionMode(cmd.String("caption"))
		if err != nil {
			return fmt.Errorf("invalid --caption: %w", err)
		}
		cfg.Manifest.Caption = mode
	}
	if cmd.IsSet("user") {
		cfg.Manifest.User = cmd.String("user")
	}
	if cmd.IsSet("base-url") {
		cfg.Manifest.BaseURL = cmd.String("base-url")
	}
	if cmd.IsSet("pad") {
		cfg.Padding.Enable = cmd.Bool("pad")
	}
	if cmd.IsSet("bundle") {
		cfg.Bundle.Destination = cmd.String("bundle")
	}
	return nil
}

// parseDims understands "AxB" strings like "256x144" or "4x4".
func parseDims(s string) (int, int, error) {
	a, b, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		return 0, 0, fmt.Errorf("expected AxB, got %q", s)
	}
	first, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, fmt.Errorf("expected AxB, got %q: %w", s, err)
	}
	second, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, fmt.Errorf("expected AxB, got %q: %w", s, err)
	}
	if first <= 0 || second <= 0 {
		return 0, 0, fmt.Errorf("expected positive AxB, got %q", s)
	}
	return first, second, nil
}

// jpg and jpeg are the same thing on the command line.
func normalizeFormat(s string) string {
	if strings.EqualFold(s, "jpg") {
		return "jpeg"
	}
	return strings.ToLower(s)
}

// generate runs the pipeline: sequence originals, pad if requested, produce
// mobile copies and thumbnail cells one asset at a time, then write atlases,
// manifest and optional bundle. Returned names list artifacts written at the
// gallery root, in page order, manifest last.
func generate(ctx context.Context, dir string, cfg *config.GalleryConfig, log *zap.Logger) ([]string, error) {
	srcDir := filepath.Join(dir, FullPCDir)
	if fi, err := os.Stat(srcDir); err != nil {
		return nil, fmt.Errorf("source directory is not accessible: %w", err)
	} else if !fi.IsDir() {
		return nil, fmt.Errorf("source path is not a directory: %s", srcDir)
	}

	assets, err := NewSequencer(srcDir, cfg, log).Run()
	if err != nil {
		return nil, err
	}
	if len(assets) == 0 && !cfg.Padding.Enable {
		return nil, errors.New("no source images found, nothing to do")
	}
	log.Info("Sequenced source images", zap.Int("count", len(assets)))

	if cfg.Padding.Enable {
		if assets, err = padSequence(srcDir, assets, &cfg.Padding, cfg.SequenceDigits, log); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Join(dir, FullMobileDir), 0755); err != nil {
		return nil, fmt.Errorf("unable to create mobile directory: %w", err)
	}

	p, err := newPipeline(dir, cfg, log)
	if err != nil {
		return nil, err
	}
	for _, a := range assets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.processAsset(a); err != nil {
			return nil, fmt.Errorf("unable to process %q: %w", a.Path, err)
		}
	}

	atlasNames, err := p.writeAtlases()
	if err != nil {
		return nil, err
	}
	log.Info("Atlas pages written", zap.Int("pages", len(atlasNames)), zap.Int("mobile_copies", len(assets)))

	results := atlasNames
	if cfg.Manifest.Enable {
		if err := p.writeManifest(atlasNames); err != nil {
			return nil, err
		}
		log.Info("Manifest written", zap.String("file", filepath.Join(dir, ManifestName)))
		results = append(results, ManifestName)
	}

	if len(cfg.Bundle.Destination) > 0 {
		if err := writeBundle(cfg.Bundle.Destination, dir, atlasNames, cfg.Manifest.Enable, log); err != nil {
			return nil, err
		}
	}
	return results, nil
}
