package post

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

// minimal PNG signature, enough for format sniffing
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestCheckAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ok.png"), pngHeader, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fake.png"), []byte("just text"), 0644); err != nil {
		t.Fatal(err)
	}

	p := &Post{
		Title: "x",
		Components: []Component{
			{Gallery: &GallerySpec{Images: []ImageSpec{
				{Src: "ok.png"},
				{Src: "https://example.com/remote.png"},
			}}},
		},
	}
	if err := CheckAssets(p, dir); err != nil {
		t.Fatalf("valid assets rejected: %v", err)
	}

	p.Components = []Component{
		{Gallery: &GallerySpec{Images: []ImageSpec{
			{Src: "missing.png"},
			{Src: "fake.png"},
		}}},
	}
	err := CheckAssets(p, dir)
	if err == nil {
		t.Fatal("broken assets accepted")
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("expected 2 asset errors, got %d: %v", got, err)
	}
	if !strings.Contains(err.Error(), "missing.png") || !strings.Contains(err.Error(), "fake.png") {
		t.Errorf("error does not name broken assets: %v", err)
	}
}

func TestCheckAssetsNested(t *testing.T) {
	p := &Post{
		Title: "x",
		Components: []Component{
			{Tabs: &TabsSpec{Sections: []SectionSpec{
				{Label: "a", Body: []Component{
					{Gallery: &GallerySpec{Images: []ImageSpec{{Src: "nested.png"}}}},
				}},
			}}},
			{TwoColumn: &TwoColumnSpec{
				Left: []Component{
					{Gallery: &GallerySpec{Images: []ImageSpec{{Src: "left.png"}}}},
				},
			}},
		},
	}
	err := CheckAssets(p, t.TempDir())
	if err == nil {
		t.Fatal("missing nested assets accepted")
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("expected 2 asset errors, got %d: %v", got, err)
	}
}
