// Package eq implements multiband equalization of whole audio buffers.
//
// Waveforms are real-valued rank-3 slices indexed [batch][channel][sample]
// with one or two channels. Three frequency-domain strategies share that
// contract: a direct full-spectrum FFT gain mask (EqualizeDirect), a
// short-time Fourier transform with Gaussian band shaping (EqualizeSmooth),
// and the same STFT shaping followed by soft-knee compression of the bass
// region (EqualizeSmoothBassComp). Two time-domain Baxandall shelf
// equalizers complement them for gentle tone shaping.
//
// Every strategy validates its input up front, never mutates the input
// buffer, and peak-normalizes its output so the result stays within unit
// amplitude. All entry points are pure functions of their arguments and
// safe for concurrent use.
package eq
