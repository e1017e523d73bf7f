package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
)

// Track opens a fresh stream at the requested rate
type Track interface {
	Open(sr beep.SampleRate) (beep.Streamer, error)
}

// FileTrack decodes a WAV file, resampling when its rate differs
type FileTrack struct {
	Path string
}

func (t FileTrack) Open(sr beep.SampleRate) (beep.Streamer, error) {
	f, err := os.Open(t.Path)
	if err != nil {
		return nil, fmt.Errorf("open track: %w", err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode track %s: %w", t.Path, err)
	}

	var s beep.Streamer = streamer
	if format.SampleRate != sr {
		s = beep.Resample(4, format.SampleRate, sr, streamer)
	}
	// Release the file once playback drains
	return beep.Seq(s, beep.Callback(func() { streamer.Close() })), nil
}

// Chime is the built-in arpeggio used when no track file is configured
type Chime struct {
	Note   time.Duration
	Volume float64 // linear gain, zero means 0.25
}

func (c Chime) volume() float64 {
	if c.Volume == 0 {
		return 0.25
	}
	return c.Volume
}

// chimeNotes is C5 E5 G5 C6 E6
var chimeNotes = []float64{523.25, 659.25, 783.99, 1046.50, 1318.51}

func (c Chime) Open(sr beep.SampleRate) (beep.Streamer, error) {
	note := c.Note
	if note <= 0 {
		note = 280 * time.Millisecond
	}

	parts := make([]beep.Streamer, 0, len(chimeNotes))
	for _, freq := range chimeNotes {
		tone, err := generators.SineTone(sr, freq)
		if err != nil {
			return nil, fmt.Errorf("chime tone %.2fHz: %w", freq, err)
		}
		parts = append(parts, NewEnvelope(tone, note, 10*time.Millisecond, note/2, sr))
	}

	return newVolume(beep.Seq(parts...), c.volume()), nil
}
