package fs

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/py2sec/internal/core/domain"
	"go.trai.ch/py2sec/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Assembler = (*Assembler)(nil)

// Assembler mirrors compiled artifacts and copied files into the result tree.
type Assembler struct {
	walker *Walker
	hasher ports.Hasher
	logger ports.Logger
}

// NewAssembler creates a new Assembler.
func NewAssembler(walker *Walker, hasher ports.Hasher, logger ports.Logger) *Assembler {
	return &Assembler{walker: walker, hasher: hasher, logger: logger}
}

// Assemble collects the artifacts under the build dir and places them according to opts.Mode.
// Every placed file is verified against its origin by content hash. Copies
// run with up to opts.Jobs workers and keep the classification order.
func (a *Assembler) Assemble(
	ctx context.Context, opts domain.BuildOptions, c domain.Classification,
) (*domain.BuildReport, error) {
	report := &domain.BuildReport{
		Mode:     opts.Mode,
		Root:     opts.Root,
		File:     opts.File,
		Platform: opts.Platform.Name,
	}

	inplace := opts.Mode == domain.ModeInplace && !opts.IsSingleFile()
	if !inplace {
		if err := os.MkdirAll(resultDir(opts), domain.DirPerm); err != nil {
			return nil, errors.Join(domain.ErrWorkspaceCreateFailed,
				zerr.With(zerr.Wrap(err, "mkdir"), "path", resultDir(opts)))
		}
	}

	if !inplace && !opts.IsSingleFile() {
		if err := mirrorDirs(opts, c.Dirs); err != nil {
			return nil, err
		}
	}

	if err := a.placeArtifacts(ctx, opts, c, inplace, report); err != nil {
		return nil, err
	}

	if opts.Mode == domain.ModeClassical && !opts.IsSingleFile() {
		if err := a.copyFiles(ctx, opts, c, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func (a *Assembler) placeArtifacts(
	ctx context.Context, opts domain.BuildOptions, c domain.Classification, inplace bool, report *domain.BuildReport,
) error {
	buildDir := domain.BuildDir(opts.WorkDir)
	native := domain.ExtensionsFilter(opts.Platform.NativeExtensions...)
	compiled := compiledSources(opts, c)

	if _, err := os.Stat(buildDir); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	for path, err := range a.walker.WalkFiles(buildDir, true, nil) {
		if err != nil {
			return walkFailed(err, buildDir)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !native.Matches(filepath.Base(path)) {
			continue
		}

		rel, err := filepath.Rel(buildDir, path)
		if err != nil {
			return errors.Join(domain.ErrWalkFailed, zerr.With(zerr.Wrap(err, "relative path"), "path", path))
		}
		target := domain.ArtifactTarget(rel)

		dest := filepath.Join(resultDir(opts), target)
		if inplace {
			dest = filepath.Join(opts.WorkDir, target)
		}

		hash, err := a.place(path, dest)
		if err != nil {
			return err
		}

		source := sourceOf(target, opts.Extensions, compiled)
		report.Artifacts = append(report.Artifacts, domain.Artifact{Path: target, Source: source, Hash: hash})

		if !inplace {
			continue
		}
		if source == "" {
			a.logger.Warn("no source found for artifact, keeping original: " + target)
			continue
		}
		sourcePath := filepath.Join(opts.WorkDir, source)
		if err := os.Remove(sourcePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.Join(domain.ErrRemoveSourceFailed, zerr.With(zerr.Wrap(err, "remove"), "path", sourcePath))
		}
		report.Removed = append(report.Removed, source)
	}
	return nil
}

func (a *Assembler) copyFiles(
	ctx context.Context, opts domain.BuildOptions, c domain.Classification, report *domain.BuildReport,
) error {
	root := opts.RootPath()
	prefix := opts.Prefix()

	copied := make([]domain.Artifact, len(c.Copy))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Jobs, 1))
	for i, rel := range c.Copy {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			target := filepath.Join(prefix, rel)
			hash, err := a.place(filepath.Join(root, rel), filepath.Join(resultDir(opts), target))
			if err != nil {
				return err
			}
			copied[i] = domain.Artifact{
				Path:   target,
				Source: filepath.Join(opts.Root, rel),
				Hash:   hash,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	report.Copied = append(report.Copied, copied...)
	return nil
}

// mirrorDirs recreates the directory skeleton of the root under the result
// tree, empty directories included.
func mirrorDirs(opts domain.BuildOptions, dirs []string) error {
	base := filepath.Join(resultDir(opts), opts.Prefix())
	for _, dir := range append([]string{"."}, dirs...) {
		path := filepath.Join(base, dir)
		if err := os.MkdirAll(path, domain.DirPerm); err != nil {
			return errors.Join(domain.ErrWorkspaceCreateFailed, zerr.With(zerr.Wrap(err, "mkdir"), "path", path))
		}
	}
	return nil
}

// place copies src to dst, creating parents, and verifies the copy.
func (a *Assembler) place(src, dst string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return "", errors.Join(domain.ErrCopyFailed, zerr.With(zerr.Wrap(err, "mkdir"), "path", dst))
	}
	if err := copyFile(src, dst); err != nil {
		return "", errors.Join(domain.ErrCopyFailed, zerr.With(zerr.With(err, "src", src), "dst", dst))
	}

	want, err := a.hasher.HashFile(src)
	if err != nil {
		return "", err
	}
	got, err := a.hasher.HashFile(dst)
	if err != nil {
		return "", err
	}
	if want != got {
		return "", errors.Join(domain.ErrCopyVerificationFailed,
			zerr.With(zerr.With(zerr.New("hash mismatch"), "src", src), "dst", dst))
	}
	return got, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.Wrap(err, "open source")
	}
	defer in.Close() //nolint:errcheck // Read-only handle

	info, err := in.Stat()
	if err != nil {
		return zerr.Wrap(err, "stat source")
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.Wrap(err, "create destination")
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, "write destination")
	}
	if err := out.Close(); err != nil {
		return zerr.Wrap(err, "close destination")
	}
	return nil
}

func resultDir(opts domain.BuildOptions) string {
	return domain.ResultDir(opts.WorkDir)
}

// compiledSources returns the work-dir relative paths handed to the compiler.
func compiledSources(opts domain.BuildOptions, c domain.Classification) map[string]struct{} {
	if opts.IsSingleFile() {
		return map[string]struct{}{filepath.Clean(opts.File): {}}
	}
	sources := make(map[string]struct{}, len(c.Compile))
	for _, rel := range c.Compile {
		sources[filepath.Join(opts.Root, rel)] = struct{}{}
	}
	return sources
}

func sourceOf(target string, exts []string, compiled map[string]struct{}) string {
	for _, ext := range exts {
		candidate := domain.SourceFor(target, ext)
		if _, ok := compiled[candidate]; ok {
			return candidate
		}
	}
	return ""
}
