package usecase

import (
	"context"

	"github.com/3-lines-studio/pagesmith/internal/adapters/fs"
	"github.com/3-lines-studio/pagesmith/internal/metrics"
)

// Source yields the raw documents pages are rendered from.
type Source interface {
	Site(ctx context.Context) ([]byte, error)
	Documents(ctx context.Context) ([][]byte, error)
	Document(ctx context.Context, id string) ([]byte, error)
}

// Assets lists and reads the static files copied next to generated pages.
type Assets interface {
	Files() ([]string, error)
	Open(name string) ([]byte, error)
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(emoji, msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)

	Printf(format string, args ...any)
	Errorf(format string, args ...any)
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
}

type FileSystem = fs.FileSystem

type Metrics = metrics.Recorder
