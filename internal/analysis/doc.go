// Package analysis previews element sonification without an audio device.
//
// The package renders the chord the audio engine would play for an
// element and measures it:
//
//   - [Analyze]: partials, filter cutoff and measured spectrum in one report
//   - [RenderChord]: one mono block of the pad chord
//   - [PowerSpectrum]: magnitude per frequency bin of a sample block
//   - [NoteName]: nearest equal-tempered note for a frequency
//
// # Spectrum Preview
//
// The strongest measured bin lands on the loudest partial:
//
//	report := analysis.Analyze(el, audio.SampleRate)
//	fmt.Printf("peak %.0f Hz (%s)\n", report.Peak, analysis.NoteName(report.Peak))
package analysis
