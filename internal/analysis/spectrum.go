package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"

	"github.com/yarbel/yesodot/internal/audio"
	"github.com/yarbel/yesodot/internal/elements"
)

// BlockSize is the number of samples rendered for analysis. Power of two,
// about 93 ms at the engine's sample rate.
const BlockSize = 4096

// ChordReport describes how an element sounds.
type ChordReport struct {
	Partials []audio.Partial
	Cutoff   float64 // low-pass target in Hz
	Spectrum []float64
	BinWidth float64 // Hz per spectrum bin
	Peak     float64 // strongest measured frequency in Hz
}

// Analyze renders one block of the chord an element would play and
// returns the partials together with the measured spectrum.
func Analyze(el *elements.Element, sampleRate float64) ChordReport {
	parts, cutoff := audio.ChordFor(el)
	spec := PowerSpectrum(RenderChord(el, sampleRate))
	binWidth := sampleRate / BlockSize

	return ChordReport{
		Partials: parts,
		Cutoff:   cutoff,
		Spectrum: spec,
		BinWidth: binWidth,
		Peak:     peakFrequency(spec, binWidth),
	}
}

// RenderChord synthesizes one mono block of an element's pad chord, the
// same triangle partials the engine mixes but without the filter and
// delay stages. A nil element renders silence.
func RenderChord(el *elements.Element, sampleRate float64) []float64 {
	block := make([]float64, BlockSize)
	parts, _ := audio.ChordFor(el)
	if len(parts) == 0 {
		return block
	}

	norm := 1.0 / float64(len(parts))
	for i := range block {
		t := float64(i) / sampleRate
		s := 0.0
		for _, p := range parts {
			s += audio.Triangle(t*p.Freq) * p.Gain
		}
		block[i] = s * norm
	}
	return block
}

// PowerSpectrum returns the magnitude per frequency bin of a sample
// block, Hann-windowed, up to the Nyquist bin.
func PowerSpectrum(block []float64) []float64 {
	buf := make([]float64, len(block))
	copy(buf, block)
	window.Apply(buf, window.Hann)

	spec := fft.FFTReal(buf)
	ps := make([]float64, len(spec)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spec[i])
	}
	return ps
}

func peakFrequency(ps []float64, binWidth float64) float64 {
	best := 0
	for i, m := range ps {
		if m > ps[best] {
			best = i
		}
	}
	if len(ps) == 0 || ps[best] == 0 {
		return 0
	}
	return float64(best) * binWidth
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName labels a frequency with the nearest equal-tempered note,
// A4 = 440 Hz.
func NoteName(freq float64) string {
	if freq <= 0 {
		return "-"
	}
	midi := int(math.Round(12*math.Log2(freq/440))) + 69
	if midi < 0 {
		midi = 0
	}
	return fmt.Sprintf("%s%d", noteNames[midi%12], midi/12-1)
}
