// Package midifile encodes exercises as Standard MIDI Files.
//
// The file has a single track: the progression as block chords, one per
// beat, then a beat of rest (plus the exercise pause, if any), then all the
// exercise notes sounding together.
package midifile

import (
	"fmt"
	"io"
	"math"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/earfet/fet"
)

// Encoder writes exercises as format 0 MIDI files.
type Encoder struct {
	Resolution smf.MetricTicks // ticks per quarter note
	Channel    uint8
	Velocity   uint8
	ChordBeats int // length of each progression chord, in beats
	NoteBeats  int // length of the exercise notes, in beats
}

// New returns an Encoder with the defaults used by the fet command.
func New() *Encoder {
	return &Encoder{
		Resolution: smf.MetricTicks(96),
		Channel:    0,
		Velocity:   100,
		ChordBeats: 1,
		NoteBeats:  4,
	}
}

// Encode writes ex to w.
func (e *Encoder) Encode(w io.Writer, ex *fet.Exercise) error {
	if ex.Tempo <= 0 {
		return fmt.Errorf("tempo should be positive, got %d", ex.Tempo)
	}
	if err := checkPitches(ex); err != nil {
		return err
	}
	beat := e.Resolution.Ticks4th()
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("fet"))
	tr.Add(0, smf.MetaTempo(float64(ex.Tempo)))
	if ex.Info != "" {
		tr.Add(0, smf.MetaText(ex.Info))
	}
	var rest uint32
	for _, chord := range ex.Progression {
		e.addChord(&tr, chord, rest, uint32(e.ChordBeats)*beat)
		rest = 0
	}
	if len(ex.Progression) > 0 {
		rest = beat + e.pauseTicks(ex)
	}
	e.addChord(&tr, ex.Notes, rest, uint32(e.NoteBeats)*beat)
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = e.Resolution
	if err := s.Add(tr); err != nil {
		return fmt.Errorf("could not add track: %w", err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("could not write midi file: %w", err)
	}
	return nil
}

// addChord starts every pitch after delta ticks and stops them all length
// ticks later.
func (e *Encoder) addChord(tr *smf.Track, pitches []int, delta, length uint32) {
	for _, p := range pitches {
		tr.Add(delta, midi.NoteOn(e.Channel, uint8(p), e.Velocity))
		delta = 0
	}
	delta = length
	for _, p := range pitches {
		tr.Add(delta, midi.NoteOff(e.Channel, uint8(p)))
		delta = 0
	}
}

// pauseTicks converts the exercise pause to ticks at the exercise tempo.
func (e *Encoder) pauseTicks(ex *fet.Exercise) uint32 {
	beats := ex.Pause.Seconds() * float64(ex.Tempo) / 60
	return uint32(math.Round(beats * float64(e.Resolution.Ticks4th())))
}

func checkPitches(ex *fet.Exercise) error {
	chords := make(fet.Progression, 0, len(ex.Progression)+1)
	chords = append(chords, ex.Progression...)
	chords = append(chords, ex.Notes)
	for _, c := range chords {
		for _, p := range c {
			if p < 0 || p > 127 {
				return fmt.Errorf("pitch %d of %v is outside the midi range 0..127", p, ex.Path)
			}
		}
	}
	return nil
}
