// Copyright 2026 The NumGrid Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package spectrum provides FFT frequency-axis helpers and thin wrappers
// around the FFT plans used with them.
package spectrum

import (
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// FFTFreq returns the discrete Fourier transform sample frequencies for a
// transform of length n with sample spacing d, in the standard signed
// layout: non-negative bins first, then the negative bins.
//
// For n=8, d=1: [0, 0.125, 0.25, 0.375, -0.5, -0.375, -0.25, -0.125].
func FFTFreq(n int, d float64) []float64 {
	if n <= 0 {
		return nil
	}

	freqs := make([]float64, n)
	val := 1.0 / (float64(n) * d)
	half := (n-1)/2 + 1
	for i := 0; i < half; i++ {
		freqs[i] = float64(i) * val
	}
	for i := half; i < n; i++ {
		freqs[i] = float64(i-n) * val
	}
	return freqs
}

// RFFTFreq returns the non-negative frequency bins for a real-valued FFT of
// length n with sample spacing d: the absolute values of the first n/2+1
// signed bins. The values are exact IEEE quotients, so this matches the
// native real-FFT frequency convention bit for bit.
func RFFTFreq(n int, d float64) []float64 {
	if n <= 0 {
		return nil
	}

	full := FFTFreq(n, d)
	out := full[:n/2+1]
	for i, f := range out {
		out[i] = math.Abs(f)
	}
	return out
}

// Forward computes the forward FFT of in. The length must be accepted by
// the FFT plan (powers of two always are); plan errors are propagated.
func Forward(in []complex128) ([]complex128, error) {
	plan, err := algofft.NewPlan64(len(in))
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, len(in))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}
	return out, nil
}

// Inverse computes the normalized inverse FFT of in.
func Inverse(in []complex128) ([]complex128, error) {
	plan, err := algofft.NewPlan64(len(in))
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, len(in))
	if err := plan.Inverse(out, in); err != nil {
		return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}
	return out, nil
}

// ForwardReal computes the forward FFT of a real signal.
func ForwardReal(in []float64) ([]complex128, error) {
	buf := make([]complex128, len(in))
	for i, v := range in {
		buf[i] = complex(v, 0)
	}
	return Forward(buf)
}

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin, using vectorized
// kernels where available. Scratch buffers are pooled, so in steady state
// this allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}
