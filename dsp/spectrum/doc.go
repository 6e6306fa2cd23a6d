// Package spectrum computes magnitude spectra of short finite signals.
//
// [MagnitudeSpectrum] windows, zero-pads and transforms a real signal with
// algo-fft and returns the one-sided magnitude in bins 0..N/2. Bin k
// corresponds to k/N cycles per sample; see [BinFrequency].
package spectrum
