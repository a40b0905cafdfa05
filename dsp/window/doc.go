// Package window generates the window functions used to taper windowed-sinc
// FIR designs and to prepare blocks for spectral measurement.
//
// Only symmetric, real-valued windows are provided. A symmetric window keeps
// a windowed-sinc lowpass linear phase, which is what the quarter-rate design
// relies on before its taps are rotated.
package window
