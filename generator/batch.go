package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/earfet/fet"
	"github.com/earfet/fet/theory"
)

// ListeningBatch writes exercises major and exercises minor listening
// exercises, alternating between the key types.
func (g *Generator) ListeningBatch(ctx context.Context, exercises, degrees, tempo int) error {
	for i := 0; i < exercises; i++ {
		for _, keyType := range fet.KeyTypes {
			if _, err := g.Listening(ctx, keyType, degrees, tempo); err != nil {
				return fmt.Errorf("exercise %d (%v): %w", i+1, keyType, err)
			}
		}
	}
	return nil
}

// AllSingleDegree writes, for every root of both key types, one listening
// exercise per degree. The pitch is the degree above the root, moved by
// octaves into the configured range. Exercises already on disk are skipped,
// so running it again only fills in what is missing.
func (g *Generator) AllSingleDegree(ctx context.Context, tempo int) error {
	for _, keyType := range fet.KeyTypes {
		for _, root := range Roots(keyType) {
			for d := 0; d < 12; d++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				pitch, ok := fitToRange(root.Pitch+d, g.opts.Range)
				if !ok {
					g.log.Warn("degree does not fit the pitch range", "root", root.Name, "key_type", keyType.String(), "degree", theory.Degree(d).String(), "range", g.opts.Range.String())
					continue
				}
				notes := []int{pitch}
				ex := &fet.Exercise{
					Root:        root,
					KeyType:     keyType,
					Tempo:       tempo,
					Notes:       notes,
					Progression: keyType.Progression().Transpose(root.Pitch),
					Path:        ListeningPath(g.opts.Prefix, root, keyType, notes),
				}
				if err := g.writeOrSkip(ex); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// SingleNotes writes one file per pitch of the range holding just that
// pitch, without a progression.
func (g *Generator) SingleNotes(ctx context.Context, tempo int) error {
	for _, pitch := range g.opts.Range.Pitches() {
		if err := ctx.Err(); err != nil {
			return err
		}
		ex := &fet.Exercise{
			Tempo: tempo,
			Notes: []int{pitch},
			Info:  fmt.Sprintf("Note: %s (%d)", PitchName(pitch), pitch),
			Path:  SingleNotePath(g.opts.Prefix, pitch),
		}
		if err := g.writeOrSkip(ex); err != nil {
			return err
		}
	}
	return nil
}

// Singing writes, for every root of both key types and every degree, the
// progression followed by pause of silence and then the degree above the
// root. The silence is where the student sings the degree before hearing it.
func (g *Generator) Singing(ctx context.Context, tempo int, pause time.Duration) error {
	for _, keyType := range fet.KeyTypes {
		for _, root := range Roots(keyType) {
			for d := 0; d < 12; d++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				pitch := root.Pitch + d
				ex := &fet.Exercise{
					Root:        root,
					KeyType:     keyType,
					Tempo:       tempo,
					Notes:       []int{pitch},
					Progression: keyType.Progression().Transpose(root.Pitch),
					Pause:       pause,
					Path:        SingingPath(g.opts.Prefix, root, keyType, pitch),
				}
				if err := g.writeOrSkip(ex); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (g *Generator) writeOrSkip(ex *fet.Exercise) error {
	ok, err := g.write(ex)
	if err != nil {
		return err
	}
	if !ok {
		g.Stats.Skipped++
	}
	return nil
}

// fitToRange moves pitch by whole octaves until it lies in r. It reports
// false if no octave of the pitch is inside r.
func fitToRange(pitch int, r fet.PitchRange) (int, bool) {
	for pitch < r.Low {
		pitch += 12
	}
	for pitch > r.High {
		pitch -= 12
	}
	return pitch, r.Contains(pitch)
}
