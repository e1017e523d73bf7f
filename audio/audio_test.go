package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOutput records streams instead of touching a device
type fakeOutput struct {
	rate    beep.SampleRate
	fail    error
	played  []beep.Streamer
	cleared int
}

func (f *fakeOutput) SampleRate() beep.SampleRate { return f.rate }

func (f *fakeOutput) Play(s ...beep.Streamer) error {
	if f.fail != nil {
		return f.fail
	}
	f.played = append(f.played, s...)
	return nil
}

func (f *fakeOutput) Clear() { f.cleared++ }

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestChimeIsFiniteAndAudible(t *testing.T) {
	sr := beep.SampleRate(8000)
	s, err := Chime{Note: 100 * time.Millisecond}.Open(sr)
	require.NoError(t, err)

	n, peak := drain(t, s, sr.N(10*time.Second))
	assert.Equal(t, 5*sr.N(100*time.Millisecond), n)
	assert.Greater(t, peak, 0.0)
	assert.LessOrEqual(t, peak, 0.25+1e-9)
}

func TestFileTrackDecodesWav(t *testing.T) {
	sr := beep.SampleRate(8000)
	path := filepath.Join(t.TempDir(), "track.wav")

	tone, err := generators.SineTone(sr, 440)
	require.NoError(t, err)
	f, err := os.Create(path)
	require.NoError(t, err)
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Take(sr.N(200*time.Millisecond), tone), format))
	require.NoError(t, f.Close())

	s, err := FileTrack{Path: path}.Open(sr)
	require.NoError(t, err)
	n, peak := drain(t, s, sr.N(time.Second))
	assert.Equal(t, sr.N(200*time.Millisecond), n)
	assert.Greater(t, peak, 0.5)
}

func TestFileTrackMissing(t *testing.T) {
	_, err := FileTrack{Path: filepath.Join(t.TempDir(), "nope.wav")}.Open(8000)
	assert.Error(t, err)
}

func TestAutoplayStarted(t *testing.T) {
	out := &fakeOutput{rate: 8000}
	a := NewAutoplayer(out, Chime{})

	r := a.Start()
	assert.True(t, r.Started())
	assert.NoError(t, r.Err)
	assert.Len(t, out.played, 1)
	assert.True(t, a.Playing())

	assert.True(t, a.Start().Started())
	assert.Len(t, out.played, 1, "already playing, not restarted")

	a.Stop()
	assert.False(t, a.Playing())
	assert.Equal(t, 1, out.cleared)
}

func TestAutoplayBlockedByDevice(t *testing.T) {
	deviceErr := errors.New("no device")
	a := NewAutoplayer(&fakeOutput{rate: 8000, fail: deviceErr}, Chime{})

	r := a.Start()
	assert.Equal(t, StatusBlocked, r.Status)
	assert.ErrorIs(t, r.Err, deviceErr)
	assert.False(t, a.Playing())
}

func TestAutoplayWithoutOutput(t *testing.T) {
	r := NewAutoplayer(nil, Chime{}).Start()
	assert.Equal(t, StatusBlocked, r.Status)
	assert.ErrorIs(t, r.Err, errNoOutput)
}

type scriptedStarter struct {
	results []Result
	calls   int
}

func (s *scriptedStarter) Start() Result {
	r := s.results[min(s.calls, len(s.results)-1)]
	s.calls++
	return r
}

func TestGestureRetryFiresOnceAfterBlock(t *testing.T) {
	s := &scriptedStarter{results: []Result{{Status: StatusBlocked}, {Status: StatusStarted}}}
	g := NewGestureRetry(s)

	assert.False(t, g.Attempt().Started())
	assert.True(t, g.Armed())

	r, fired := g.OnGesture()
	assert.True(t, fired)
	assert.True(t, r.Started())

	_, fired = g.OnGesture()
	assert.False(t, fired, "retry is one-time")
	assert.Equal(t, 2, s.calls)
}

func TestGestureRetryNotArmedAfterStart(t *testing.T) {
	s := &scriptedStarter{results: []Result{{Status: StatusStarted}}}
	g := NewGestureRetry(s)

	assert.True(t, g.Attempt().Started())
	_, fired := g.OnGesture()
	assert.False(t, fired)
	assert.Equal(t, 1, s.calls)
}

func TestGestureRetryStaysDisarmedWhenRetryBlocked(t *testing.T) {
	s := &scriptedStarter{results: []Result{{Status: StatusBlocked}}}
	g := NewGestureRetry(s)

	g.Attempt()
	r, fired := g.OnGesture()
	assert.True(t, fired)
	assert.False(t, r.Started())
	assert.False(t, g.Armed())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "started", StatusStarted.String())
	assert.Equal(t, "blocked", StatusBlocked.String())
}
