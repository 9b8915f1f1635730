package gallery

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"

	"galgen/utils/images"
)

// writeBundle packs generated artifacts (atlases, mobile copies and the
// manifest when present) into a single zip for manual deployment. Entries are
// stored in deterministic order so bundles of identical galleries compare
// equal byte for byte modulo timestamps.
func writeBundle(dst, galleryDir string, atlasNames []string, withManifest bool, log *zap.Logger) error {
	names := slices.Clone(atlasNames)
	slices.Sort(names)

	mobiles, err := os.ReadDir(filepath.Join(galleryDir, FullMobileDir))
	if err != nil {
		return fmt.Errorf("unable to list mobile directory: %w", err)
	}
	for _, e := range mobiles {
		if e.Type().IsRegular() {
			names = append(names, filepath.Join(FullMobileDir, e.Name()))
		}
	}
	if withManifest {
		names = append(names, ManifestName)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("unable to create bundle %q: %w", dst, err)
	}
	defer out.Close()

	zw := fixzip.NewWriter(out)
	defer zw.Close()

	for _, name := range names {
		if err := addBundleEntry(zw, galleryDir, name); err != nil {
			return err
		}
	}
	log.Info("Bundle written", zap.String("file", dst), zap.Int("entries", len(names)))
	return nil
}

func addBundleEntry(zw *fixzip.Writer, galleryDir, name string) error {
	f, err := os.Open(filepath.Join(galleryDir, name))
	if err != nil {
		return fmt.Errorf("unable to open bundle entry %q: %w", name, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("unable to stat bundle entry %q: %w", name, err)
	}

	method := uint16(fixzip.Deflate)
	if images.IsCompressedFormat(filepath.Ext(name)) {
		// already compressed, do not waste time deflating
		method = fixzip.Store
	}
	w, err := zw.CreateHeader(&fixzip.FileHeader{
		Name:     filepath.ToSlash(name),
		Method:   method,
		Modified: fi.ModTime().Truncate(time.Second),
	})
	if err != nil {
		return fmt.Errorf("unable to create bundle entry %q: %w", name, err)
	}
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("unable to write bundle entry %q: %w", name, err)
	}
	return nil
}
