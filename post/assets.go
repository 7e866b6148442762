package post

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"go.uber.org/multierr"
)

// CheckAssets verifies that every local image referenced by the post exists
// under baseDir and really is an image. Remote references (http, https,
// protocol-relative) are left alone. Every broken asset is reported.
func CheckAssets(p *Post, baseDir string) error {
	var errs error
	for _, src := range collectImageSources(p.Components) {
		if isRemote(src) {
			continue
		}
		if err := checkImageFile(filepath.Join(baseDir, filepath.FromSlash(src))); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("asset %q: %w", src, err))
		}
	}
	return errs
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") ||
		strings.HasPrefix(src, "https://") ||
		strings.HasPrefix(src, "//") ||
		strings.HasPrefix(src, "data:")
}

// collectImageSources gathers image references from the component tree.
func collectImageSources(comps []Component) []string {
	var srcs []string
	for i := range comps {
		c := &comps[i]
		switch {
		case c.Gallery != nil:
			for _, img := range c.Gallery.Images {
				srcs = append(srcs, img.Src)
			}
		case c.Tabs != nil:
			for _, s := range c.Tabs.Sections {
				srcs = append(srcs, collectImageSources(s.Body)...)
			}
		case c.Accordion != nil:
			for _, s := range c.Accordion.Sections {
				srcs = append(srcs, collectImageSources(s.Body)...)
			}
		case c.TwoColumn != nil:
			srcs = append(srcs, collectImageSources(c.TwoColumn.Left)...)
			srcs = append(srcs, collectImageSources(c.TwoColumn.Right)...)
		}
	}
	return srcs
}

func checkImageFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// filetype only needs the first few hundred bytes to sniff the format
	buf := make([]byte, 261)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return err
	}
	if !filetype.IsImage(buf[:n]) {
		return fmt.Errorf("not a recognized image format")
	}
	return nil
}
