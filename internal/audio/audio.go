// Package audio turns the selected element into a slow ambient pad: the
// atomic number picks the root pitch, each electron shell contributes one
// partial, and the electron count opens a low-pass filter. Synthesis runs
// in the portaudio callback; the UI thread only swaps chord parameters.
package audio

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/mjibson/go-dsp/fft"

	"github.com/yarbel/yesodot/internal/elements"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

const rootA2 = 110.0

// Partial is one voice of an element's chord.
type Partial struct {
	Freq float64
	Gain float64
}

// ChordFor derives the pad chord for an element. The root pitch comes from
// the atomic number's pitch class, folded into the octave above A2; each
// occupied shell adds one partial stacked upward from the root, with gain
// from its occupancy. The second return is the low-pass cutoff in Hz,
// which opens with the electron count. A nil element yields silence.
func ChordFor(el *elements.Element) ([]Partial, float64) {
	if el == nil {
		return nil, 300
	}

	semitone := float64(el.Number % 12)
	root := rootA2 * math.Pow(2, semitone/12)

	total := float64(el.Electrons())
	if total == 0 {
		total = 1
	}
	parts := make([]Partial, 0, len(el.Shells))
	for s, count := range el.Shells {
		if count <= 0 {
			continue
		}
		parts = append(parts, Partial{
			Freq: root * (1 + float64(s)/2),
			Gain: math.Sqrt(float64(count)) / math.Sqrt(total),
		})
	}
	return parts, 300 + math.Min(float64(el.Electrons())*12, 900)
}

// Engine owns the output stream. All fields below mu are shared between
// the UI thread and the audio callback.
type Engine struct {
	stream *portaudio.Stream

	time        float64
	cutoff      float64
	filterState [2]float64
	delayLine   [2][]float64
	delayHead   int
	complexBuf  []complex128

	mu           sync.Mutex
	partials     []Partial
	cutoffTarget float64
	muted        bool

	bass, mid, high float64
}

// NewEngine opens the default output device and starts playing silence.
// Callers should Close when done; a nil engine from a failed New is safe
// to leave alone.
func NewEngine() (*Engine, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, err
	}

	delayLen := int(float64(SampleRate) * 0.6)
	e := &Engine{
		complexBuf:   make([]complex128, BufferSize),
		delayLine:    [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
		cutoffTarget: 300,
		cutoff:       300,
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, e.process)
	if err != nil {
		portaudio.Terminate()
		return nil, err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, err
	}
	e.stream = stream
	return e, nil
}

// Close stops the stream and releases the device.
func (e *Engine) Close() {
	if e.stream != nil {
		e.stream.Stop()
		e.stream.Close()
		e.stream = nil
	}
	portaudio.Terminate()
}

// SetElement retunes the pad for an element. Nil clears the chord.
func (e *Engine) SetElement(el *elements.Element) {
	parts, cutoff := ChordFor(el)

	e.mu.Lock()
	e.partials = parts
	e.cutoffTarget = cutoff
	e.mu.Unlock()
}

// SetMuted silences output without closing the device.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	e.muted = muted
	e.mu.Unlock()
}

// Toggle flips mute and reports the new muted state.
func (e *Engine) Toggle() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = !e.muted
	return e.muted
}

// Levels reports smoothed bass/mid/high energy of the playing pad, for
// meters. Values are in [0, 1].
func (e *Engine) Levels() (bass, mid, high float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bass, e.mid, e.high
}

// Triangle evaluates a unit triangle wave at the given phase in cycles.
// Smooth, flute-like, no harsh buzz.
func Triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// One-pole low pass filter.
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func (e *Engine) process(out [][]float32) {
	e.mu.Lock()
	parts := make([]Partial, len(e.partials))
	copy(parts, e.partials)
	muted := e.muted
	cutoffTarget := e.cutoffTarget
	e.mu.Unlock()

	if muted || len(parts) == 0 {
		for i := range out[0] {
			out[0][i] = 0
			out[1][i] = 0
		}
		return
	}

	dt := 1.0 / float64(SampleRate)
	vol := 0.25

	for i := 0; i < len(out[0]); i++ {
		// Filter glides toward its target instead of jumping.
		e.cutoff = e.cutoff*0.999 + cutoffTarget*0.001

		sampleL, sampleR := 0.0, 0.0
		for j, p := range parts {
			oscL := Triangle(e.time * (p.Freq * 0.999))
			oscR := Triangle(e.time * (p.Freq * 1.001))

			lfo := math.Sin(e.time*0.2 + float64(j))

			sampleL += oscL * p.Gain * (0.7 + 0.3*lfo)
			sampleR += oscR * p.Gain * (0.7 + 0.3*lfo)
		}
		norm := 1.0 / float64(len(parts))
		sampleL *= norm
		sampleR *= norm

		var outL, outR float64
		outL, e.filterState[0] = lpf(sampleL, e.cutoff, dt, e.filterState[0])
		outR, e.filterState[1] = lpf(sampleR, e.cutoff, dt, e.filterState[1])

		// Ping-pong delay: each side hears a little of the other's tail.
		delayL := e.delayLine[0][e.delayHead]
		delayR := e.delayLine[1][e.delayHead]

		mixL := outL + delayL*0.3 + delayR*0.1
		mixR := outR + delayR*0.3 + delayL*0.1

		e.delayLine[0][e.delayHead] = mixL * 0.7
		e.delayLine[1][e.delayHead] = mixR * 0.7

		e.delayHead = (e.delayHead + 1) % len(e.delayLine[0])

		out[0][i] = float32(mixL * vol)
		out[1][i] = float32(mixR * vol)

		e.time += dt

		if i < BufferSize {
			window := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(BufferSize-1)))
			e.complexBuf[i] = complex(mixL*window, 0)
		}
	}

	e.analyze()
}

// analyze buckets the rendered chunk's spectrum into three bands for the
// UI meter.
func (e *Engine) analyze() {
	spectrum := fft.FFT(e.complexBuf)

	bassSum, midSum, highSum := 0.0, 0.0, 0.0
	for i := 0; i < BufferSize/2; i++ {
		mag := cmplx.Abs(spectrum[i])
		if i < 5 {
			bassSum += mag
		} else if i < 46 {
			midSum += mag
		} else if i < 460 {
			highSum += mag
		}
	}

	e.mu.Lock()
	e.bass = e.bass*0.9 + math.Min(bassSum/40.0, 1.0)*0.1
	e.mid = e.mid*0.9 + math.Min(midSum/80.0, 1.0)*0.1
	e.high = e.high*0.9 + math.Min(highSum/120.0, 1.0)*0.1
	e.mu.Unlock()
}
