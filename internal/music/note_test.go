package music

import "testing"

func TestNoteName(t *testing.T) {
	cases := []struct {
		midi int
		want string
	}{
		{43, "G2"},
		{38, "D2"},
		{33, "A1"},
		{28, "E1"},
		{29, "F1"},
		{60, "C4"},
		{61, "C#4"},
		{0, "C-1"},
		{-5, "C-1"}, // clamped
	}
	for _, c := range cases {
		if got := NoteName(c.midi); got != c.want {
			t.Errorf("NoteName(%d)=%q want %q", c.midi, got, c.want)
		}
	}
}

func TestOctaveAndPitchClass(t *testing.T) {
	if Octave(60) != 4 {
		t.Errorf("Octave(60)=%d want 4", Octave(60))
	}
	if Octave(11) != -1 {
		t.Errorf("Octave(11)=%d want -1", Octave(11))
	}
	if PitchClass(43) != 7 {
		t.Errorf("PitchClass(43)=%d want 7", PitchClass(43))
	}
	if PitchClass(-1) != 0 {
		t.Errorf("PitchClass(-1)=%d want 0", PitchClass(-1))
	}
}
