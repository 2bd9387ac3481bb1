// Package wavio reads and writes mono integer PCM through WAV containers.
package wavio

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ErrInvalidWAV is returned when the input is not a readable PCM WAV stream.
var ErrInvalidWAV = errors.New("wavio: not a valid WAV file")

// wavFormatPCM is the WAVE_FORMAT_PCM tag.
const wavFormatPCM = 1

// Clip describes decoded audio.
type Clip struct {
	SampleRate int
	BitDepth   int
	Channels   int
	// Samples holds the first channel only.
	Samples []int32
}

// Read decodes r and keeps the first channel.
func Read(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidWAV
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decode PCM: %w", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidWAV, chans)
	}
	samples := make([]int32, len(buf.Data)/chans)
	for i := range samples {
		samples[i] = int32(buf.Data[i*chans])
	}
	return &Clip{
		SampleRate: int(dec.SampleRate),
		BitDepth:   int(dec.BitDepth),
		Channels:   chans,
		Samples:    samples,
	}, nil
}

// Write encodes samples as a mono PCM WAV stream of the given bit depth.
// Samples must already fit the bit depth.
func Write(w io.WriteSeeker, samples []int32, sampleRate, bitDepth int) error {
	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, wavFormatPCM)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode PCM: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize: %w", err)
	}
	return nil
}

// Normalize scales samples so the largest magnitude maps to fullScale,
// truncating toward zero. It mirrors how filtered audio is brought back
// to a playable 16-bit range.
func Normalize(samples []int32, fullScale int32) []int32 {
	out := make([]int32, len(samples))
	var peak int64
	for _, s := range samples {
		v := int64(s)
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}
	if peak == 0 {
		return out
	}
	for i, s := range samples {
		out[i] = int32(int64(s) * int64(fullScale) / peak)
	}
	return out
}
