package gallery

import (
	"fmt"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"galgen/config"
	"galgen/utils/images"
)

// padSequence brings the sequence to exactly cfg.TargetCount entries. Missing
// indices are filled with solid color placeholder images written next to the
// real sources. Oversupply is only trimmed from the returned slice - excess
// files stay on disk untouched.
func padSequence(dir string, assets []Asset, cfg *config.PaddingConfig, digits int, log *zap.Logger) ([]Asset, error) {
	if len(assets) > cfg.TargetCount {
		log.Warn("More source images than the configured target, ignoring excess",
			zap.Int("have", len(assets)), zap.Int("target", cfg.TargetCount))
		return assets[:cfg.TargetCount], nil
	}
	if len(assets) == cfg.TargetCount {
		return assets, nil
	}

	fill, err := config.ParseColor(cfg.Color)
	if err != nil {
		return nil, err
	}
	placeholder := imaging.New(cfg.Width, cfg.Height, fill)

	have := len(assets)
	for i := have + 1; i <= cfg.TargetCount; i++ {
		stem := fmt.Sprintf("%0*d", digits, i)
		path := filepath.Join(dir, stem+".png")
		if err := images.SavePNG(placeholder, path); err != nil {
			return nil, fmt.Errorf("unable to write placeholder %d: %w", i, err)
		}
		assets = append(assets, Asset{
			Index:       i,
			Path:        path,
			Stem:        stem,
			Ext:         "png",
			Placeholder: true,
		})
	}
	log.Info("Padded sequence with placeholders",
		zap.Int("target", cfg.TargetCount), zap.Int("added", cfg.TargetCount-have))
	return assets, nil
}
