package theory

import (
	"strings"
)

// Spelling is a note name split into its natural letter (A-G) and its
// accidental. The accidental is one of: empty, a run of '#', a single 'x'
// (double sharp) followed by zero or more '#', or a run of 'b'.
type Spelling struct {
	Letter     byte
	Accidental string
}

var semitonesFromC = [7]int{9, 11, 0, 2, 4, 5, 7} // A B C D E F G

// ParseSpelling splits name into letter and accidental, validating both.
func ParseSpelling(name string) (Spelling, error) {
	if len(name) == 0 || name[0] < 'A' || name[0] > 'G' || !validAccidental(name[1:]) {
		return Spelling{}, &NoteError{Name: name}
	}
	return Spelling{Letter: name[0], Accidental: name[1:]}, nil
}

func validAccidental(acc string) bool {
	switch {
	case acc == "":
		return true
	case acc[0] == 'b':
		return strings.Trim(acc, "b") == ""
	case acc[0] == 'x':
		return strings.Trim(acc[1:], "#") == ""
	case acc[0] == '#':
		return strings.Trim(acc, "#") == ""
	}
	return false
}

func (s Spelling) String() string {
	return string(s.Letter) + s.Accidental
}

// AccidentalValue is the number of semitones the accidental moves the natural
// letter: 'x' counts 2, '#' counts 1 and 'b' counts -1.
func (s Spelling) AccidentalValue() int {
	ret := 0
	for i := 0; i < len(s.Accidental); i++ {
		switch s.Accidental[i] {
		case 'x':
			ret += 2
		case '#':
			ret++
		case 'b':
			ret--
		}
	}
	return ret
}

// SemitoneClass returns the pitch class of the spelling, 0 (C) to 11 (B).
func (s Spelling) SemitoneClass() int {
	return ((semitonesFromC[s.Letter-'A']+s.AccidentalValue())%12 + 12) % 12
}

// Flatten lowers the spelling by a semitone without changing the letter:
//
//	Fx# -> Fx -> F# -> F -> Fb -> Fbb
func (s Spelling) Flatten() Spelling {
	acc := s.Accidental
	switch {
	case strings.HasPrefix(acc, "x") && len(acc) > 1:
		acc = acc[:len(acc)-1]
	case strings.HasPrefix(acc, "x"):
		acc = "#"
	case strings.HasPrefix(acc, "#"):
		acc = acc[1:]
	default:
		acc += "b"
	}
	return Spelling{Letter: s.Letter, Accidental: acc}
}

// Sharpen raises the spelling by a semitone without changing the letter:
//
//	Fbb -> Fb -> F -> F# -> Fx -> Fx#
func (s Spelling) Sharpen() Spelling {
	acc := s.Accidental
	switch {
	case strings.HasPrefix(acc, "b"):
		acc = acc[1:]
	case strings.HasPrefix(acc, "#"):
		acc = "x" + acc[1:]
	case strings.HasPrefix(acc, "x"):
		acc += "#"
	default:
		acc = "#"
	}
	return Spelling{Letter: s.Letter, Accidental: acc}
}

// SemitoneClass parses name and returns its pitch class.
func SemitoneClass(name string) (int, error) {
	s, err := ParseSpelling(name)
	if err != nil {
		return 0, err
	}
	return s.SemitoneClass(), nil
}

// Flatten parses name and returns it lowered by a semitone.
func Flatten(name string) (string, error) {
	s, err := ParseSpelling(name)
	if err != nil {
		return "", err
	}
	return s.Flatten().String(), nil
}

// Sharpen parses name and returns it raised by a semitone.
func Sharpen(name string) (string, error) {
	s, err := ParseSpelling(name)
	if err != nil {
		return "", err
	}
	return s.Sharpen().String(), nil
}
