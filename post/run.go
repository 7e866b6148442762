package post

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"blogkit/state"
)

// Run handles the render subcommand: a post specification file or a
// directory of them is turned into HTML include files under the destination
// directory.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")
	env.CheckAssets = env.Cfg.Document.CheckAssets || cmd.Bool("check-assets")

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process handles the core rendering logic independently of CLI framework.
// It determines the input type (directory or single specification) and
// processes accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.Mode().IsDir() {
		return processDir(ctx, src, dst, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}
	if !isSpecFile(src) {
		return fmt.Errorf("input was not recognized as post specification (%s)", src)
	}
	return processPost(ctx, src, filepath.Base(src), dst, log)
}

func isSpecFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// processDir renders every post specification under dir, in natural sort
// order so that numbered posts come out in reading order.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) error {
	count := 0
	defer func() {
		if count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	var specs []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() || !isSpecFile(path) {
			return nil
		}
		specs = append(specs, path)
		return nil
	})
	if err != nil {
		return err
	}

	sort.Sort(natural.StringSlice(specs))

	for _, path := range specs {
		if err := ctx.Err(); err != nil {
			return err
		}
		count++
		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processPost(ctx, path, src, dst, log); err != nil {
			log.Error("Unable to process post", zap.String("file", path), zap.Error(err))
		}
	}
	return nil
}

// processPost renders a single post specification. "src" is the part of the
// source path relative to the original input (including base file name),
// "dst" is the destination directory.
func processPost(ctx context.Context, path, src, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Rendering starting", zap.String("from", src))
	defer func(start time.Time) {
		log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
	}(time.Now())

	p, err := Load(path)
	if err != nil {
		return err
	}
	if err := p.EnsureID(log); err != nil {
		return err
	}

	if env.CheckAssets {
		if err := CheckAssets(p, filepath.Dir(path)); err != nil {
			return fmt.Errorf("asset check failed for %s: %w", src, err)
		}
	}

	body, err := NewRenderer(env.Cfg.Fragments, log).Render(p)
	if err != nil {
		return fmt.Errorf("unable to render post (%s): %w", src, err)
	}

	outputName = buildOutputPath(p, src, dst, env)

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, []byte(body), 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	// Store rendering result for debugging
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s%s", p.ID, filepath.Ext(outputName)), outputName)
	}

	return nil
}
