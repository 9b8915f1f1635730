package gallery

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	"go.uber.org/zap"

	"galgen/config"
)

// Asset is one sequenced source image. Stem is the zero padded sequence index
// and doubles as the canonical identifier linking the original to its mobile
// and thumbnail derivatives.
type Asset struct {
	Index       int    // 1-based sequence index
	Path        string // absolute path of the renamed original
	Stem        string // file name without extension
	Ext         string // extension without the dot, lower case
	Placeholder bool   // synthesized by the padder, not a user image
}

// tempPrefix starts the staging name scheme of the two phase rename. The full
// prefix carries a per run token (see stagingPrefix), so staged names are
// disjoint from the digit padded final scheme, from originals and from staging
// leftovers of an interrupted earlier run.
const tempPrefix = "ren_tmp_"

// Sequencer collects source images and renames them into a contiguous
// zero padded sequence.
type Sequencer struct {
	dir    string
	exts   []string
	order  config.SortOrder
	digits int
	log    *zap.Logger
}

func NewSequencer(dir string, cfg *config.GalleryConfig, log *zap.Logger) *Sequencer {
	exts := make([]string, 0, len(cfg.SourceExtensions)+1)
	for _, e := range cfg.SourceExtensions {
		exts = append(exts, strings.ToLower(strings.TrimPrefix(e, ".")))
	}
	if cfg.RasterizeSVG && !slices.Contains(exts, "svg") {
		exts = append(exts, "svg")
	}
	return &Sequencer{
		dir:    dir,
		exts:   exts,
		order:  cfg.SortOrder,
		digits: cfg.SequenceDigits,
		log:    log,
	}
}

// Run scans the source directory and renames everything it accepted into the
// final sequence. Returned assets are ordered by index. Empty result is not an
// error - the caller decides whether an empty gallery makes sense.
func (s *Sequencer) Run() ([]Asset, error) {
	names, err := s.scan()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}
	return s.renumber(names)
}

// scan lists acceptable file names, deduplicated case-insensitively (first
// occurrence in sorted order wins) and sorted by original name.
func (s *Sequencer) scan() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read source directory %q: %w", s.dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
		if !slices.Contains(s.exts, ext) {
			continue
		}
		if ext != "svg" {
			ok, err := isRasterImage(filepath.Join(s.dir, name))
			if err != nil {
				return nil, err
			}
			if !ok {
				s.log.Warn("Skipping file, content does not look like an image", zap.String("file", name))
				continue
			}
		}
		names = append(names, name)
	}

	s.sortNames(names)

	// case-insensitive dedupe, first in sorted order wins
	seen := make(map[string]string, len(names))
	deduped := names[:0]
	for _, name := range names {
		key := strings.ToLower(name)
		if first, dup := seen[key]; dup {
			s.log.Warn("Skipping duplicate of already accepted file",
				zap.String("file", name), zap.String("accepted", first))
			continue
		}
		seen[key] = name
		deduped = append(deduped, name)
	}
	return deduped, nil
}

func (s *Sequencer) sortNames(names []string) {
	if s.order == config.SortOrderNatural {
		slices.SortFunc(names, func(a, b string) int {
			if a == b {
				return 0
			}
			if natural.Less(a, b) {
				return -1
			}
			return 1
		})
		return
	}
	slices.Sort(names)
}

// stagingPrefix picks the staging name prefix for this run and verifies no
// file in the source directory starts with it. A crash mid-rename leaves
// staged files behind, and a later run picks them up as ordinary sources - the
// fresh token guarantees they are never targets of current staging, so nothing
// is renamed over them.
func (s *Sequencer) stagingPrefix() (string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", fmt.Errorf("unable to read source directory %q: %w", s.dir, err)
	}
	for {
		prefix := fmt.Sprintf("%s%.8s_", tempPrefix, uuid.NewString())
		taken := false
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), prefix) {
				taken = true
				break
			}
		}
		if !taken {
			return prefix, nil
		}
	}
}

// renumber performs the two phase rename. A single phase rename can destroy
// data when a final name collides with a not yet processed source (renaming
// "5.png" to "005.png" while an unrelated "005.png" still awaits its turn), so
// every source is first staged under a name from a scheme disjoint from
// originals, finals and leftovers, then staged names are committed in order.
func (s *Sequencer) renumber(names []string) ([]Asset, error) {
	type staged struct {
		name string
		ext  string
	}

	prefix, err := s.stagingPrefix()
	if err != nil {
		return nil, err
	}

	// phase 1: move everything out of the way. Temp names are chosen so their
	// lexical order reproduces the established source order.
	stage := make([]staged, 0, len(names))
	for i, name := range names {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
		tmp := fmt.Sprintf("%s%07d.%s", prefix, i+1, ext)
		if err := os.Rename(filepath.Join(s.dir, name), filepath.Join(s.dir, tmp)); err != nil {
			return nil, fmt.Errorf("unable to stage %q: %w", name, err)
		}
		stage = append(stage, staged{name: tmp, ext: ext})
	}
	slices.SortFunc(stage, func(a, b staged) int { return strings.Compare(a.name, b.name) })

	// phase 2: commit to final zero padded names, deleting leftovers from
	// previous runs (last run wins, no backups).
	assets := make([]Asset, 0, len(stage))
	for i, st := range stage {
		stem := fmt.Sprintf("%0*d", s.digits, i+1)
		final := filepath.Join(s.dir, stem+"."+st.ext)
		if err := os.Remove(final); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("unable to delete stale %q: %w", final, err)
		}
		if err := os.Rename(filepath.Join(s.dir, st.name), final); err != nil {
			return nil, fmt.Errorf("unable to commit %q: %w", st.name, err)
		}
		assets = append(assets, Asset{
			Index: i + 1,
			Path:  final,
			Stem:  stem,
			Ext:   st.ext,
		})
	}
	return assets, nil
}

// isRasterImage sniffs file content, extension alone is not to be trusted.
func isRasterImage(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("unable to open %q: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, 261)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("unable to read %q: %w", path, err)
	}
	return filetype.IsImage(head[:n]), nil
}
