package audio

import (
	"math"
	"testing"

	"github.com/yarbel/yesodot/internal/elements"
)

func TestChordForOnePartialPerShell(t *testing.T) {
	iron, _ := elements.ByNumber(26)
	parts, _ := ChordFor(iron)

	if len(parts) != len(iron.Shells) {
		t.Fatalf("partials = %d, want one per shell (%d)", len(parts), len(iron.Shells))
	}

	// Z=26 is pitch class 2, two semitones above A2.
	wantRoot := 110.0 * math.Pow(2, 2.0/12)
	if math.Abs(parts[0].Freq-wantRoot) > 1e-9 {
		t.Errorf("root freq = %v, want %v", parts[0].Freq, wantRoot)
	}

	// Partials stack upward from the root.
	for i := 1; i < len(parts); i++ {
		if parts[i].Freq <= parts[i-1].Freq {
			t.Errorf("partial %d freq %v not above partial %d freq %v",
				i, parts[i].Freq, i-1, parts[i-1].Freq)
		}
	}

	for i, p := range parts {
		if p.Gain <= 0 || p.Gain > 1 {
			t.Errorf("partial %d gain = %v, want in (0, 1]", i, p.Gain)
		}
	}
}

func TestSetElementAppliesChord(t *testing.T) {
	e := &Engine{}
	iron, _ := elements.ByNumber(26)
	e.SetElement(iron)

	want, wantCutoff := ChordFor(iron)
	if len(e.partials) != len(want) {
		t.Fatalf("partials = %d, want %d", len(e.partials), len(want))
	}
	if e.cutoffTarget != wantCutoff {
		t.Errorf("cutoff target = %v, want %v", e.cutoffTarget, wantCutoff)
	}
}

func TestSetElementNilClears(t *testing.T) {
	e := &Engine{}
	iron, _ := elements.ByNumber(26)
	e.SetElement(iron)
	e.SetElement(nil)
	if len(e.partials) != 0 {
		t.Errorf("partials = %d after nil, want 0", len(e.partials))
	}
}

func TestCutoffTracksElectrons(t *testing.T) {
	hydrogen, _ := elements.ByNumber(1)
	_, low := ChordFor(hydrogen)

	uranium, _ := elements.ByNumber(92)
	_, high := ChordFor(uranium)

	if high <= low {
		t.Errorf("cutoff for U (%v) not above cutoff for H (%v)", high, low)
	}
	if high > 300+900 {
		t.Errorf("cutoff %v exceeds cap", high)
	}
}

func TestToggle(t *testing.T) {
	e := &Engine{}
	if e.Toggle() != true {
		t.Error("first Toggle should mute")
	}
	if e.Toggle() != false {
		t.Error("second Toggle should unmute")
	}
}

func TestProcessMutedWritesSilence(t *testing.T) {
	e := &Engine{muted: true}
	out := [][]float32{make([]float32, 64), make([]float32, 64)}
	out[0][3] = 0.5
	out[1][7] = -0.5

	e.process(out)

	for ch := range out {
		for i, s := range out[ch] {
			if s != 0 {
				t.Fatalf("channel %d sample %d = %v, want 0", ch, i, s)
			}
		}
	}
}

func TestProcessRendersAudio(t *testing.T) {
	delayLen := SampleRate / 2
	e := &Engine{
		complexBuf: make([]complex128, BufferSize),
		delayLine:  [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
		cutoff:     800,
	}
	helium, _ := elements.ByNumber(2)
	e.SetElement(helium)

	out := [][]float32{make([]float32, BufferSize), make([]float32, BufferSize)}
	e.process(out)

	var peak float32
	for _, s := range out[0] {
		if a := float32(math.Abs(float64(s))); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		t.Error("expected nonzero samples for an element chord")
	}
	if peak > 1 {
		t.Errorf("peak %v clips", peak)
	}

	bass, mid, high := e.Levels()
	if bass < 0 || mid < 0 || high < 0 {
		t.Errorf("levels went negative: %v %v %v", bass, mid, high)
	}
}

func TestTriangleRange(t *testing.T) {
	for p := -2.0; p <= 2.0; p += 0.01 {
		v := Triangle(p)
		if v < -1 || v > 1 {
			t.Fatalf("Triangle(%v) = %v, out of [-1, 1]", p, v)
		}
	}
	if Triangle(0.0) != 1.0 {
		t.Errorf("Triangle(0) = %v, want 1", Triangle(0.0))
	}
	if Triangle(0.5) != -1.0 {
		t.Errorf("Triangle(0.5) = %v, want -1", Triangle(0.5))
	}
}

func TestLPFConverges(t *testing.T) {
	state := 0.0
	var out float64
	for i := 0; i < 100000; i++ {
		out, state = lpf(1.0, 1000, 1.0/SampleRate, state)
	}
	if math.Abs(out-1.0) > 0.01 {
		t.Errorf("filter output %v, want near 1.0 on a DC input", out)
	}
}
