package eq

import (
	"errors"
	"math"
	"testing"
)

func TestValidateInput(t *testing.T) {
	mono := [][][]float64{{make([]float64, 16)}}
	stereo := [][][]float64{{make([]float64, 16), make([]float64, 16)}}

	tests := []struct {
		name       string
		waveform   [][][]float64
		sampleRate float64
		wantErr    error
	}{
		{name: "nil waveform", waveform: nil, sampleRate: 44100, wantErr: ErrMissingInput},
		{name: "zero sample rate", waveform: mono, sampleRate: 0, wantErr: ErrMissingInput},
		{name: "negative sample rate", waveform: mono, sampleRate: -1, wantErr: ErrMissingInput},
		{name: "nan sample rate", waveform: mono, sampleRate: math.NaN(), wantErr: ErrMissingInput},
		{name: "empty batch", waveform: [][][]float64{}, sampleRate: 44100, wantErr: ErrInvalidShape},
		{name: "empty channels", waveform: [][][]float64{{}}, sampleRate: 44100, wantErr: ErrInvalidShape},
		{name: "empty samples", waveform: [][][]float64{{{}}}, sampleRate: 44100, wantErr: ErrInvalidShape},
		{
			name:       "ragged channels",
			waveform:   [][][]float64{{make([]float64, 16)}, {make([]float64, 16), make([]float64, 16)}},
			sampleRate: 44100,
			wantErr:    ErrInvalidShape,
		},
		{
			name:       "ragged samples",
			waveform:   [][][]float64{{make([]float64, 16), make([]float64, 8)}},
			sampleRate: 44100,
			wantErr:    ErrInvalidShape,
		},
		{
			name:       "three channels",
			waveform:   [][][]float64{{make([]float64, 16), make([]float64, 16), make([]float64, 16)}},
			sampleRate: 44100,
			wantErr:    ErrUnsupportedChannels,
		},
		{name: "valid mono", waveform: mono, sampleRate: 44100},
		{name: "valid stereo", waveform: stereo, sampleRate: 48000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dims, err := validateInput(tc.waveform, tc.sampleRate)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("got error %v, want %v", err, tc.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if dims.batch != len(tc.waveform) || dims.channels != len(tc.waveform[0]) || dims.samples != len(tc.waveform[0][0]) {
				t.Fatalf("shape %+v does not match input", dims)
			}
		})
	}
}
