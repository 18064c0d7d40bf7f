package edo

import "fmt"

var noteNames = [12]string{
	"C-",
	"C#",
	"D-",
	"D#",
	"E-",
	"F-",
	"F#",
	"G-",
	"G#",
	"A-",
	"A#",
	"B-",
}

// NoteName returns the conventional 12-EDO name of a semitone step
// relative to C, with the octave number appended: step 0 is "C-0",
// step 7 is "G-0", step 12 is "C-1". Steps outside one octave wrap,
// including negative steps ("B--1" for step -1).
func NoteName(step int) string {
	octave := step / 12

	note := step % 12
	if note < 0 {
		note += 12
		octave--
	}

	return fmt.Sprintf("%s%d", noteNames[note], octave)
}
