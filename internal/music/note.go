// Package music maps MIDI note numbers to chromatic note names.
package music

import "strconv"

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName returns the chromatic name with octave for a MIDI note number,
// e.g. 43 -> "G2". Octave numbering follows the usual convention where
// middle C (60) is C4. Negative input is clamped to 0.
func NoteName(midi int) string {
	if midi < 0 {
		midi = 0
	}
	return noteNames[midi%12] + strconv.Itoa(midi/12-1)
}

// Octave returns the octave number for a MIDI note (C4 = 60 convention).
func Octave(midi int) int {
	if midi < 0 {
		midi = 0
	}
	return midi/12 - 1
}

// PitchClass returns the 0-based chromatic pitch class (0 = C).
func PitchClass(midi int) int {
	if midi < 0 {
		midi = 0
	}
	return midi % 12
}
