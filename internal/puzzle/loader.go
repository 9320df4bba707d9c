package puzzle

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/dgallion1/aoc2023/internal/samples"
)

// Loader reads puzzle inputs laid out as <Dir>/<day>/input.txt, with an
// optional puzzle.html or puzzle.md description next to each input.
// Inputs larger than MaxBytes are rejected; MaxBytes <= 0 means no cap.
type Loader struct {
	Dir      string
	MaxBytes int64
}

func NewLoader(dir string, maxBytes int64) *Loader {
	return &Loader{Dir: dir, MaxBytes: maxBytes}
}

// ErrInputTooLarge is returned when an input file exceeds the loader's cap.
var ErrInputTooLarge = errors.New("input exceeds max size")

// InputPath returns the conventional input path for day.
func (l *Loader) InputPath(day int) string {
	return filepath.Join(l.dayDir(day), "input.txt")
}

// Load returns the full contents of day's input file.
func (l *Loader) Load(day int) (string, error) {
	return l.ReadFile(l.InputPath(day))
}

// ReadFile returns the contents of an explicitly named input file.
func (l *Loader) ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if l.MaxBytes > 0 {
		r = io.LimitReader(f, l.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if l.MaxBytes > 0 && int64(len(data)) > l.MaxBytes {
		return "", fmt.Errorf("read %s: %w (%d bytes)", path, ErrInputTooLarge, l.MaxBytes)
	}
	return string(data), nil
}

var descriptionFiles = []string{"puzzle.html", "puzzle.md"}

// Sample returns the n-th (1-based) example block from day's description.
func (l *Loader) Sample(day, n int) (string, error) {
	for _, name := range descriptionFiles {
		path := filepath.Join(l.dayDir(day), name)
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		ex, err := samples.ForFile(name)
		if err != nil {
			return "", err
		}
		blocks, err := ex.Extract(f)
		if err != nil {
			return "", fmt.Errorf("extract samples from %s: %w", path, err)
		}
		if n < 1 || n > len(blocks) {
			return "", fmt.Errorf("%s: sample %d not found (%d available)", path, n, len(blocks))
		}
		return blocks[n-1], nil
	}
	return "", fmt.Errorf("no puzzle description for day %d in %s", day, l.dayDir(day))
}

func (l *Loader) dayDir(day int) string {
	return filepath.Join(l.Dir, strconv.Itoa(day))
}
