package generator_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"regexp"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/earfet/fet"
	"github.com/earfet/fet/generator"
)

// scriptedSource replays values, cycling, reduced modulo n.
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) IntN(n int) int {
	v := s.values[s.next%len(s.values)] % n
	s.next++
	return v
}

// recordingEncoder writes a marker and keeps every exercise it was given.
type recordingEncoder struct {
	exercises []*fet.Exercise
	err       error
}

func (e *recordingEncoder) Encode(w io.Writer, ex *fet.Exercise) error {
	if e.err != nil {
		return e.err
	}
	e.exercises = append(e.exercises, ex)
	_, err := io.WriteString(w, ex.Info)
	return err
}

var piano = fet.PitchRange{Low: 33, High: 96}

type GeneratorSuite struct {
	suite.Suite
	ctx context.Context
	fs  afero.Fs
	enc *recordingEncoder
}

func (s *GeneratorSuite) SetupTest() {
	s.ctx = context.Background()
	s.fs = afero.NewMemMapFs()
	s.enc = &recordingEncoder{}
}

func (s *GeneratorSuite) newGenerator(src generator.Source, opts generator.Options) *generator.Generator {
	if opts.Prefix == "" {
		opts.Prefix = "."
	}
	return generator.New(s.fs, s.enc, src, opts)
}

func (s *GeneratorSuite) TestListeningWritesExercise() {
	g := s.newGenerator(rand.New(rand.NewPCG(1, 2)), generator.Options{Range: piano})
	ex, err := g.Listening(s.ctx, fet.Major, 4, 120)
	s.Require().NoError(err)
	s.Len(ex.Notes, 4)
	s.True(isSorted(ex.Notes))
	s.Equal(120, ex.Tempo)
	exists, err := afero.Exists(s.fs, ex.Path)
	s.Require().NoError(err)
	s.True(exists)
	s.Equal(1, g.Stats.Written)
	s.Equal([]string{ex.Path}, g.Stats.Paths)
	s.Require().Len(s.enc.exercises, 1)
	s.Contains(s.enc.exercises[0].Info, "Key: "+ex.Root.Name+" major")
}

func (s *GeneratorSuite) TestProgressionIsTransposedToRoot() {
	// root index 5 of the major table is C (60)
	g := s.newGenerator(&scriptedSource{values: []int{5, 0}}, generator.Options{Range: piano})
	ex, err := g.Listening(s.ctx, fet.Major, 1, 120)
	s.Require().NoError(err)
	s.Equal(fet.Root{Name: "C", Pitch: 60}, ex.Root)
	s.Equal(fet.Chord{60, 64, 67}, ex.Progression[0])
	s.Equal(fet.Chord{59, 65, 67}, ex.Progression[2])
	s.Equal([]int{33}, ex.Notes)
	s.Equal("./listening/major/CM_6(33).mid", ex.Path)
}

func (s *GeneratorSuite) TestCollisionRetriesWithFreshAttempt() {
	narrow := fet.PitchRange{Low: 60, High: 60}
	src := &scriptedSource{values: []int{5, 0, 5, 0, 5, 0, 6, 0}}
	g := s.newGenerator(src, generator.Options{Range: narrow})

	first, err := g.Listening(s.ctx, fet.Major, 1, 120)
	s.Require().NoError(err)
	s.Equal("./listening/major/CM_1(60).mid", first.Path)
	s.Equal(0, g.Stats.Collisions)

	second, err := g.Listening(s.ctx, fet.Major, 1, 120)
	s.Require().NoError(err)
	s.Equal(2, g.Stats.Collisions, "the repeated C major draws must be retried")
	s.Equal("./listening/major/FM_5(60).mid", second.Path)
	s.NotEqual(first.Path, second.Path)
	s.Equal(2, g.Stats.Written)
}

func (s *GeneratorSuite) TestAttemptsExhausted() {
	narrow := fet.PitchRange{Low: 60, High: 60}
	g := s.newGenerator(&scriptedSource{values: []int{5, 0}}, generator.Options{Range: narrow, MaxAttempts: 3})
	_, err := g.Listening(s.ctx, fet.Major, 1, 120)
	s.Require().NoError(err)
	_, err = g.Listening(s.ctx, fet.Major, 1, 120)
	s.ErrorIs(err, generator.ErrAttemptsExhausted)
	s.Equal(3, g.Stats.Collisions)
}

func (s *GeneratorSuite) TestPoolExhaustedIsFatal() {
	seven := fet.PitchRange{Low: 60, High: 66}
	g := s.newGenerator(rand.New(rand.NewPCG(3, 4)), generator.Options{Range: seven})
	_, err := g.Listening(s.ctx, fet.Minor, 8, 120)
	s.Require().ErrorIs(err, generator.ErrPoolExhausted)
	var poolErr *generator.PoolError
	s.Require().ErrorAs(err, &poolErr)
	s.Equal(8, poolErr.Requested)
	s.Equal(7, poolErr.Selected)
	s.Equal(fet.Minor, poolErr.KeyType)
	s.Equal(seven, poolErr.Range)
	s.Contains(err.Error(), poolErr.Root.Name)
	s.Zero(g.Stats.Written)
	s.Zero(g.Stats.Collisions)
}

func (s *GeneratorSuite) TestTwelveDegreesExhaustPiano() {
	g := s.newGenerator(rand.New(rand.NewPCG(5, 6)), generator.Options{Range: piano})
	_, err := g.Listening(s.ctx, fet.Major, 13, 120)
	s.ErrorIs(err, generator.ErrPoolExhausted)
}

func (s *GeneratorSuite) TestNonPositiveDegrees() {
	g := s.newGenerator(rand.New(rand.NewPCG(5, 6)), generator.Options{Range: piano})
	_, err := g.Listening(s.ctx, fet.Major, 0, 120)
	s.Error(err)
}

func (s *GeneratorSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	g := s.newGenerator(rand.New(rand.NewPCG(5, 6)), generator.Options{Range: piano})
	_, err := g.Listening(ctx, fet.Major, 1, 120)
	s.ErrorIs(err, context.Canceled)
}

func (s *GeneratorSuite) TestEncoderFailureLeavesNoFile() {
	s.enc.err = errors.New("disk full")
	g := s.newGenerator(&scriptedSource{values: []int{5, 0}}, generator.Options{Range: piano})
	_, err := g.Listening(s.ctx, fet.Major, 1, 120)
	s.Require().Error(err)
	exists, err := afero.Exists(s.fs, "./listening/major/CM_6(33).mid")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *GeneratorSuite) TestListeningBatch() {
	g := s.newGenerator(rand.New(rand.NewPCG(7, 8)), generator.Options{Range: piano})
	s.Require().NoError(g.ListeningBatch(s.ctx, 5, 3, 90))
	s.Equal(10, g.Stats.Written)
	major, minor := 0, 0
	for _, ex := range s.enc.exercises {
		if ex.KeyType == fet.Major {
			major++
		} else {
			minor++
		}
	}
	s.Equal(5, major)
	s.Equal(5, minor)
}

func (s *GeneratorSuite) TestAllSingleDegreeIsIdempotent() {
	g := s.newGenerator(rand.New(rand.NewPCG(1, 1)), generator.Options{Range: piano})
	s.Require().NoError(g.AllSingleDegree(s.ctx, 120))
	s.Equal(2*12*12, g.Stats.Written)
	s.Zero(g.Stats.Skipped)
	for _, ex := range s.enc.exercises {
		s.Require().Len(ex.Notes, 1)
		s.True(piano.Contains(ex.Notes[0]))
	}

	again := s.newGenerator(rand.New(rand.NewPCG(1, 1)), generator.Options{Range: piano})
	s.Require().NoError(again.AllSingleDegree(s.ctx, 120))
	s.Zero(again.Stats.Written)
	s.Equal(2*12*12, again.Stats.Skipped)
}

func (s *GeneratorSuite) TestAllSingleDegreeSkipsDegreesOutsideRange() {
	// five semitones cannot hold all twelve degrees
	g := s.newGenerator(rand.New(rand.NewPCG(1, 1)), generator.Options{Range: fet.PitchRange{Low: 60, High: 64}})
	s.Require().NoError(g.AllSingleDegree(s.ctx, 120))
	s.Equal(2*12*5, g.Stats.Written)
}

func (s *GeneratorSuite) TestSingleNotes() {
	g := s.newGenerator(rand.New(rand.NewPCG(1, 1)), generator.Options{Range: fet.PitchRange{Low: 60, High: 62}})
	s.Require().NoError(g.SingleNotes(s.ctx, 100))
	s.Equal([]string{
		"./single_note_listening/C3(60).mid",
		"./single_note_listening/C#3(61).mid",
		"./single_note_listening/D3(62).mid",
	}, g.Stats.Paths)
	s.Empty(s.enc.exercises[0].Progression)
	s.Equal("Note: C3 (60)", s.enc.exercises[0].Info)
}

func (s *GeneratorSuite) TestSinging() {
	g := s.newGenerator(rand.New(rand.NewPCG(1, 1)), generator.Options{Range: piano, Prefix: "out"})
	s.Require().NoError(g.Singing(s.ctx, 80, 3*time.Second))
	s.Equal(2*12*12, g.Stats.Written)
	first := s.enc.exercises[0]
	s.Equal(3*time.Second, first.Pause)
	s.Equal("out/singing/major/BM_1(59).mid", first.Path)
	s.Len(first.Progression, 4)
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorSuite))
}

var pathPattern = regexp.MustCompile(`^\./listening/(major|minor)/([A-G][b#]?)(M|m)(_(1|b2|2|b3|3|4|b5|5|b6|6|b7|7)\(\d+\))+\.mid$`)

func TestListeningDegreesAreDisjoint(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		degrees := rapid.IntRange(1, 11).Draw(t, "degrees")
		keyType := rapid.SampledFrom(fet.KeyTypes).Draw(t, "keyType")
		g := generator.New(afero.NewMemMapFs(), &recordingEncoder{}, rand.New(rand.NewPCG(seed, seed)), generator.Options{Range: piano, Prefix: "."})

		ex, err := g.Listening(context.Background(), keyType, degrees, 120)
		require.NoError(t, err)
		require.Len(t, ex.Notes, degrees)
		require.True(t, isSorted(ex.Notes))
		seen := map[int]bool{}
		for _, n := range ex.Notes {
			require.True(t, piano.Contains(n))
			d := int(fet.DegreeOf(n, ex.Root.Pitch))
			require.False(t, seen[d], "degree %d chosen twice in %v", d, ex.Notes)
			seen[d] = true
		}
		require.Regexp(t, pathPattern, ex.Path)
	})
}

func TestSuccessiveExercisesNeverSharePath(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := generator.New(fs, &recordingEncoder{}, rand.New(rand.NewPCG(9, 9)), generator.Options{Range: fet.PitchRange{Low: 60, High: 71}, Prefix: "."})
	// one degree over one octave allows 12 roots x 12 pitches per key type
	paths := map[string]bool{}
	for i := 0; i < 100; i++ {
		ex, err := g.Listening(context.Background(), fet.Minor, 1, 120)
		require.NoError(t, err)
		require.False(t, paths[ex.Path], "duplicate %v", ex.Path)
		paths[ex.Path] = true
	}
	assert.Equal(t, 100, g.Stats.Written)
}

func TestListeningPath(t *testing.T) {
	c := fet.Root{Name: "C", Pitch: 60}
	assert.Equal(t, "./listening/major/CM_1(48)_b3(63).mid", generator.ListeningPath(".", c, fet.Major, []int{48, 63}))
	a := fet.Root{Name: "A", Pitch: 57}
	assert.Equal(t, "tmp/x/listening/minor/Am_b7(55)_1(57)_b6(65).mid", generator.ListeningPath("tmp/x/", a, fet.Minor, []int{55, 57, 65}))
	assert.Equal(t, "./singing/minor/Am_5(64).mid", generator.SingingPath("", a, fet.Minor, 64))
	assert.Equal(t, "./single_note_listening/A0(33).mid", generator.SingleNotePath(".", 33))
}

func TestRoots(t *testing.T) {
	require.Len(t, generator.MajorRoots, 12)
	require.Len(t, generator.MinorRoots, 12)
	c, ok := generator.FindRoot(fet.Major, "C")
	require.True(t, ok)
	assert.Equal(t, 60, c.Pitch)
	a, ok := generator.FindRoot(fet.Minor, "A")
	require.True(t, ok)
	assert.Equal(t, 57, a.Pitch)
	gs, ok := generator.FindRoot(fet.Minor, "G#")
	require.True(t, ok)
	assert.Equal(t, 56, gs.Pitch)
	_, ok = generator.FindRoot(fet.Major, "F#")
	assert.False(t, ok)
	for i, major := range generator.MajorRoots {
		assert.Equal(t, major.Pitch-3, generator.MinorRoots[i].Pitch, "relative minor of %v", major.Name)
	}
}

func TestInfo(t *testing.T) {
	ex := &fet.Exercise{
		Root:    fet.Root{Name: "D", Pitch: 62},
		KeyType: fet.Minor,
		Notes:   []int{53, 62, 66},
	}
	info, err := generator.Info(ex)
	require.NoError(t, err)
	assert.Equal(t, "Key: D minor Degrees: [b3 1 3] Notes: [53 62 66] Spelled: [F D F#]", info)
}

func TestPitchName(t *testing.T) {
	for pitch, want := range map[int]string{60: "C3", 33: "A0", 96: "C6", 61: "C#3", 59: "B2"} {
		assert.Equal(t, want, generator.PitchName(pitch), fmt.Sprint(pitch))
	}
}

func isSorted(notes []int) bool {
	for i := 1; i < len(notes); i++ {
		if notes[i-1] > notes[i] {
			return false
		}
	}
	return true
}
