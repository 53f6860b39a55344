package generator

import (
	"fmt"
	"strings"

	"github.com/earfet/fet"
)

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchName returns a sharp spelled name with octave for an absolute pitch,
// using the midilib numbering where 60 is C3.
func PitchName(pitch int) string {
	return fmt.Sprintf("%s%d", sharpNames[((pitch%12)+12)%12], pitch/12-2)
}

func cleanPrefix(prefix string) string {
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		return "."
	}
	return prefix
}

// exercisePath formats {prefix}/{kind}/{major|minor}/{Root}{M|m}_{label}({pitch})_....mid
// with the notes listed in the order given.
func exercisePath(prefix, kind string, root fet.Root, keyType fet.KeyType, notes []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/%s/%v/%s%s", cleanPrefix(prefix), kind, keyType, root.Name, keyType.Suffix())
	for _, n := range notes {
		fmt.Fprintf(&b, "_%v(%d)", fet.DegreeOf(n, root.Pitch), n)
	}
	b.WriteString(".mid")
	return b.String()
}

// ListeningPath is the output path of a listening exercise, e.g.
// ./listening/major/CM_1(48)_b3(63).mid. The notes must be sorted ascending.
func ListeningPath(prefix string, root fet.Root, keyType fet.KeyType, notes []int) string {
	return exercisePath(prefix, "listening", root, keyType, notes)
}

// SingingPath is the output path of a singing exercise, e.g.
// ./singing/minor/Am_5(64).mid.
func SingingPath(prefix string, root fet.Root, keyType fet.KeyType, pitch int) string {
	return exercisePath(prefix, "singing", root, keyType, []int{pitch})
}

// SingleNotePath is the output path of a single note exercise, e.g.
// ./single_note_listening/C3(60).mid.
func SingleNotePath(prefix string, pitch int) string {
	return fmt.Sprintf("%s/single_note_listening/%s(%d).mid", cleanPrefix(prefix), PitchName(pitch), pitch)
}
