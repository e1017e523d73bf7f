package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}

	diff := t2.Sub(t1)
	if diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	now := mock.Now()
	if !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now = mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(1 * time.Hour)
	mock.Advance(30 * time.Minute)
	expected := newTime.Add(90 * time.Minute)
	if now = mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after advances, got %v", expected, now)
	}
}

func TestMockTimeProviderDoesNotFireTimers(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	loop := NewLoop(clock)

	fired := 0
	loop.SetTimeout(time.Second, func() { fired++ })

	clock.Advance(2 * time.Second)
	if fired != 0 {
		t.Fatalf("Expected no callback before the loop runs, got %d", fired)
	}

	if ran := loop.RunDue(); ran != 1 || fired != 1 {
		t.Errorf("Expected overdue timer to run once, ran=%d fired=%d", ran, fired)
	}
}

func TestMockTimeProviderSetTimeBackwards(t *testing.T) {
	start := time.Unix(100, 0)
	mock := NewMockTimeProvider(start)

	mock.SetTime(start.Add(-time.Minute))
	if got := mock.Now(); !got.Equal(start.Add(-time.Minute)) {
		t.Errorf("Expected clock to move back, got %v", got)
	}
}
