package gencmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/semaphore"

	"github.com/graphite-design/themegen/pkg/scsserrors"
	"github.com/graphite-design/themegen/pkg/scssgen"
	"github.com/graphite-design/themegen/pkg/tokens"
)

var (
	ErrGenerateWorkerFailed = errors.New("generate worker failed")
	ErrArtifactFailed       = errors.New("artifact generation failed")
)

// Generator orchestrates a single generation run. Each run is a pure function
// of the input documents; no state persists across runs.
type Generator struct {
	TokensPath   string
	ThemesPath   string
	MetadataPath string
	OutputPath   string
	// DefaultTheme overrides the themes document's default when set.
	DefaultTheme string
	Timeout      time.Duration
	subs         []func(any)
	mu           sync.RWMutex
}

func New(opts ...Opt) *Generator {
	g := &Generator{
		TokensPath:   "tokens.yaml",
		ThemesPath:   "themes.yaml",
		MetadataPath: "metadata.yaml",
		OutputPath:   filepath.Join("scss", "generated"),
		Timeout:      time.Minute,
		subs:         []func(any){},
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

type Opt func(*Generator)

func WithInputPaths(tokensPath, themesPath, metadataPath string) Opt {
	return func(g *Generator) {
		g.TokensPath = tokensPath
		g.ThemesPath = themesPath
		g.MetadataPath = metadataPath
	}
}

func WithOutputPath(path string) Opt {
	return func(g *Generator) {
		g.OutputPath = path
	}
}

func WithDefaultTheme(name string) Opt {
	return func(g *Generator) {
		g.DefaultTheme = name
	}
}

func WithTimeout(timeout time.Duration) Opt {
	return func(g *Generator) {
		g.Timeout = timeout
	}
}

// Subscribe registers a subscriber for generation events.
func (g *Generator) Subscribe(f func(any)) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.subs = append(g.subs, f)
}

func (g *Generator) broadcastEvent(evt any) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, f := range g.subs {
		f(evt)
	}
}

type artifact struct {
	emit func(io.Writer) error
	name string
}

// Generate loads the token, theme, and metadata documents and writes the
// three SCSS artifacts to the output directory. A metadata load failure is
// recovered by proceeding with empty metadata; any other failure aborts the
// run. Artifacts already written when a later one fails are not retracted.
func (g *Generator) Generate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()

	logger := slog.With(
		slog.String("cmd", "generate"),
	)

	list, err := tokens.LoadList(g.TokensPath)
	if err != nil {
		return fmt.Errorf("load token list: %w", err)
	}

	themes, err := tokens.LoadThemes(g.ThemesPath)
	if err != nil {
		return fmt.Errorf("load themes: %w", err)
	}

	md, err := tokens.LoadMetadata(g.MetadataPath)
	if err != nil {
		logger.Warn("proceeding without token metadata", slog.Any("error", err))

		md = &tokens.Metadata{}
	}

	if g.DefaultTheme != "" {
		themes.Default = g.DefaultTheme
	}
	if _, ok := themes.Get(themes.Default); !ok {
		return fmt.Errorf("%w: %q", scsserrors.ErrThemeNotFound, themes.Default)
	}

	logger.Debug("normalizing metadata",
		slog.Int("tokens", len(list.Colors)),
		slog.Int("entries", len(md.Tokens)),
	)
	scssgen.NormalizeMetadata(md, list.Colors)

	sg := &scssgen.Generator{
		Colors:   list.Colors,
		Themes:   themes,
		Metadata: md,
	}

	if err := os.MkdirAll(g.OutputPath, 0o750); err != nil {
		return fmt.Errorf("%w: %w", scsserrors.ErrWriteFile, err)
	}

	artifacts := []artifact{
		{name: scssgen.ThemeMapsFile, emit: sg.EmitThemeMaps},
		{name: scssgen.ThemeTokensFile, emit: sg.EmitTokenDecls},
		{name: scssgen.ThemeMixinsFile, emit: sg.EmitThemeMixins},
	}

	workerCount := int64(runtime.GOMAXPROCS(0))
	sem := semaphore.NewWeighted(workerCount)
	errChan := make(chan error, len(artifacts))

	g.broadcastEvent(EventSetArtifactTotal(len(artifacts)))

	for _, a := range artifacts {
		artifactLogger := logger.With(
			slog.String("artifact", a.name),
		)

		err := sem.Acquire(ctx, 1)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrGenerateWorkerFailed, err)
		}

		g.broadcastEvent(EventWritingArtifact(a.name))

		go func() {
			defer sem.Release(1)

			artifactLogger.Info("writing artifact")

			err := g.writeArtifact(a)
			if err != nil {
				g.broadcastEvent(EventWroteArtifact{Artifact: a.name, Err: err})

				errChan <- fmt.Errorf("%w %q: %w", ErrArtifactFailed, a.name, err)

				return
			}

			g.broadcastEvent(EventWroteArtifact{Artifact: a.name})

			artifactLogger.Info("finished writing artifact")
		}()
	}

	err = sem.Acquire(ctx, workerCount)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGenerateWorkerFailed, err)
	}

	close(errChan)

	var merr error
	for err := range errChan {
		merr = multierror.Append(merr, err)
	}
	if merr != nil {
		return merr
	}

	logger.Info("generation complete", slog.String("path", g.OutputPath))

	return nil
}

// writeArtifact emits one artifact into memory and writes it to its final
// path through a uniquely named temp file and a rename, so a failed write
// never leaves a partial artifact behind.
func (g *Generator) writeArtifact(a artifact) error {
	b := &bytes.Buffer{}
	if err := a.emit(b); err != nil {
		return err
	}

	tmp := filepath.Join(g.OutputPath, fmt.Sprintf(".%s.%s.tmp", a.name, uuid.NewString()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return fmt.Errorf("%w: %w", scsserrors.ErrWriteFile, err)
	}

	if _, err := f.Write(b.Bytes()); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)

		return fmt.Errorf("%w: %w", scsserrors.ErrWriteFile, err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)

		return fmt.Errorf("%w: %w", scsserrors.ErrWriteFile, err)
	}

	if err := os.Rename(tmp, filepath.Join(g.OutputPath, a.name)); err != nil {
		_ = os.Remove(tmp)

		return fmt.Errorf("%w: %w", scsserrors.ErrWriteFile, err)
	}

	return nil
}
