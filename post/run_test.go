package post

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"blogkit/config"
	"blogkit/state"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Cfg = cfg
	env.Log = zaptest.NewLogger(t)
	return ctx
}

func writeSpec(t *testing.T, dir, name, title string) string {
	t.Helper()
	spec := "title: " + title + "\ncomponents:\n  - text:\n      content: body of " + title + "\n"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(spec), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessSingleFile(t *testing.T) {
	ctx := testContext(t)
	srcDir, dstDir := t.TempDir(), t.TempDir()
	path := writeSpec(t, srcDir, "post.yaml", "My First Post")

	if err := process(ctx, path, dstDir, state.EnvFromContext(ctx).Log); err != nil {
		t.Fatal(err)
	}

	// default output name template slugs the title
	out := filepath.Join(dstDir, "my-first-post.html")
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<p>body of My First Post</p>") {
		t.Errorf("unexpected output:\n%s", data)
	}
}

func TestProcessDirectory(t *testing.T) {
	ctx := testContext(t)
	srcDir, dstDir := t.TempDir(), t.TempDir()
	writeSpec(t, srcDir, "10-late.yaml", "Late Post")
	writeSpec(t, srcDir, "2-early.yaml", "Early Post")
	if err := os.WriteFile(filepath.Join(srcDir, "notes.txt"), []byte("skip me"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := process(ctx, srcDir, dstDir, state.EnvFromContext(ctx).Log); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"late-post.html", "early-post.html"} {
		if _, err := os.Stat(filepath.Join(dstDir, name)); err != nil {
			t.Errorf("expected output %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dstDir, "notes.html")); err == nil {
		t.Error("non-specification file was processed")
	}
}

func TestProcessRefusesOverwrite(t *testing.T) {
	ctx := testContext(t)
	env := state.EnvFromContext(ctx)
	srcDir, dstDir := t.TempDir(), t.TempDir()
	path := writeSpec(t, srcDir, "post.yaml", "Same Post")

	if err := process(ctx, path, dstDir, env.Log); err != nil {
		t.Fatal(err)
	}
	if err := process(ctx, path, dstDir, env.Log); err == nil {
		t.Fatal("existing output silently overwritten")
	}

	env.Overwrite = true
	if err := process(ctx, path, dstDir, env.Log); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
}

func TestProcessChecksAssets(t *testing.T) {
	ctx := testContext(t)
	env := state.EnvFromContext(ctx)
	env.CheckAssets = true
	srcDir, dstDir := t.TempDir(), t.TempDir()

	spec := `
title: Broken Gallery
components:
  - gallery:
      images:
        - src: does-not-exist.png
`
	path := filepath.Join(srcDir, "post.yaml")
	if err := os.WriteFile(path, []byte(spec), 0644); err != nil {
		t.Fatal(err)
	}

	err := process(ctx, path, dstDir, env.Log)
	if err == nil || !strings.Contains(err.Error(), "does-not-exist.png") {
		t.Fatalf("missing asset not reported: %v", err)
	}
}

func TestProcessMissingSource(t *testing.T) {
	ctx := testContext(t)
	err := process(ctx, filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir(), state.EnvFromContext(ctx).Log)
	if err == nil {
		t.Fatal("missing source accepted")
	}
}
