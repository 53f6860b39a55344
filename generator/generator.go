// Package generator samples ear training exercises and writes them to disk.
//
// A listening exercise is a set of pitches whose degrees above the root are
// pairwise distinct, heard after a progression establishing the key. Each
// attempt draws a root and then the pitches at random; if the resulting file
// name already exists the attempt is discarded and a new one is drawn, so a
// run never overwrites nor duplicates an exercise.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/earfet/fet"
	"github.com/earfet/fet/logging"
	"github.com/earfet/fet/theory"
)

type (
	// Source draws uniformly random integers in [0, n). *rand.Rand from
	// math/rand/v2 satisfies it; tests use a scripted source.
	Source interface {
		IntN(n int) int
	}

	// Encoder writes an exercise in some file format. The generator only
	// decides what goes into the exercise and where it is stored.
	Encoder interface {
		Encode(w io.Writer, ex *fet.Exercise) error
	}

	// Options configures a Generator. A MaxAttempts of zero or less allows an
	// unlimited number of colliding attempts.
	Options struct {
		Range       fet.PitchRange
		Prefix      string
		MaxAttempts int
		Logger      *slog.Logger
	}

	// Stats counts what a Generator has done so far.
	Stats struct {
		Written    int
		Skipped    int
		Collisions int
		Paths      []string
	}

	// Generator creates exercises. It is not safe for concurrent use; the
	// existence check before writing assumes a single generating process.
	Generator struct {
		fs      afero.Fs
		encoder Encoder
		rand    Source
		opts    Options
		log     *slog.Logger
		Stats   Stats
	}
)

// New returns a Generator writing through fs.
func New(fs afero.Fs, encoder Encoder, rand Source, opts Options) *Generator {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Generator{fs: fs, encoder: encoder, rand: rand, opts: opts, log: log}
}

// Listening generates and writes one listening exercise of the key type with
// the given number of distinct degrees. Attempts whose file already exists
// are retried from scratch with a new root and a full pitch pool.
func (g *Generator) Listening(ctx context.Context, keyType fet.KeyType, degrees, tempo int) (*fet.Exercise, error) {
	if degrees < 1 {
		return nil, fmt.Errorf("number of degrees should be positive, got %d", degrees)
	}
	roots := Roots(keyType)
	for attempt := 1; g.opts.MaxAttempts <= 0 || attempt <= g.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		root := roots[g.rand.IntN(len(roots))]
		g.log.Debug("generating listening exercise", "root", root.Name, "key_type", keyType.String(), "attempt", attempt)
		ex, ok, err := g.attempt(root, keyType, degrees, tempo)
		if err != nil {
			return nil, err
		}
		if ok {
			return ex, nil
		}
		g.Stats.Collisions++
	}
	return nil, fmt.Errorf("%w: %d attempts at a %d degree %v exercise", ErrAttemptsExhausted, g.opts.MaxAttempts, degrees, keyType)
}

// attempt runs one attempt on root. It returns ok == false with a nil error
// when the exercise it drew already exists.
func (g *Generator) attempt(root fet.Root, keyType fet.KeyType, degrees, tempo int) (*fet.Exercise, bool, error) {
	notes, ok := g.selectNotes(g.opts.Range.Pitches(), root.Pitch, degrees)
	if !ok {
		return nil, false, &PoolError{
			Root:      root,
			KeyType:   keyType,
			Range:     g.opts.Range,
			Requested: degrees,
			Selected:  len(notes),
		}
	}
	slices.Sort(notes)
	ex := &fet.Exercise{
		Root:        root,
		KeyType:     keyType,
		Tempo:       tempo,
		Notes:       notes,
		Progression: keyType.Progression().Transpose(root.Pitch),
		Path:        ListeningPath(g.opts.Prefix, root, keyType, notes),
	}
	ok, err := g.write(ex)
	if err != nil {
		return nil, false, err
	}
	return ex, ok, nil
}

// selectNotes draws n pitches from pool so that no two share a degree above
// rootPitch. Every draw removes the rest of its degree class from the pool.
// ok is false if the pool ran empty first; notes then holds what was drawn.
func (g *Generator) selectNotes(pool []int, rootPitch, n int) (notes []int, ok bool) {
	notes = make([]int, 0, n)
	for remaining := n; remaining > 0; remaining-- {
		if len(pool) == 0 {
			return notes, false
		}
		pitch := pool[g.rand.IntN(len(pool))]
		notes = append(notes, pitch)
		degree := fet.DegreeOf(pitch, rootPitch)
		pool = slices.DeleteFunc(pool, func(p int) bool { return fet.DegreeOf(p, rootPitch) == degree })
	}
	return notes, true
}

// write fills in the info line and stores ex at ex.Path. It returns false
// without error if a file already exists there.
func (g *Generator) write(ex *fet.Exercise) (bool, error) {
	exists, err := afero.Exists(g.fs, ex.Path)
	if err != nil {
		return false, fmt.Errorf("could not check whether %v exists: %w", ex.Path, err)
	}
	if exists {
		g.log.Debug("exercise already exists", "path", ex.Path)
		return false, nil
	}
	if ex.Info == "" {
		if ex.Info, err = Info(ex); err != nil {
			return false, err
		}
	}
	if err := g.fs.MkdirAll(filepath.Dir(ex.Path), 0o755); err != nil {
		return false, fmt.Errorf("could not create output directory for %v: %w", ex.Path, err)
	}
	// O_EXCL turns a file created after the existence check into a collision
	// instead of overwriting it.
	f, err := g.fs.OpenFile(ex.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		g.log.Debug("exercise already exists", "path", ex.Path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not create %v: %w", ex.Path, err)
	}
	if err := g.encoder.Encode(f, ex); err != nil {
		f.Close()
		g.fs.Remove(ex.Path)
		return false, fmt.Errorf("could not encode %v: %w", ex.Path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("could not write %v: %w", ex.Path, err)
	}
	g.Stats.Written++
	g.Stats.Paths = append(g.Stats.Paths, ex.Path)
	g.log.Debug("wrote exercise", "path", ex.Path, "degrees", ex.Labels(), "notes", ex.Notes)
	return true, nil
}

// Info describes the exercise in one line, the way it is embedded in the
// output file:
//
//	Key: C major Degrees: [1 b3] Notes: [48 63] Spelled: [C Eb]
func Info(ex *fet.Exercise) (string, error) {
	spelled := make([]string, len(ex.Notes))
	for i, d := range ex.Degrees() {
		name, err := theory.SpellDegree(ex.Root.Name, d)
		if err != nil {
			return "", fmt.Errorf("could not spell degree %v of %v %v: %w", d, ex.Root.Name, ex.KeyType, err)
		}
		spelled[i] = name
	}
	return fmt.Sprintf("Key: %s %v Degrees: [%s] Notes: %v Spelled: [%s]",
		ex.Root.Name, ex.KeyType, strings.Join(ex.Labels(), " "), ex.Notes, strings.Join(spelled, " ")), nil
}
