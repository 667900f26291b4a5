package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingJob struct {
	runs atomic.Int32
}

func (j *countingJob) Run(context.Context) {
	j.runs.Add(1)
}

func TestNew_InvalidSpec(t *testing.T) {
	if _, err := New("not a cron", time.UTC, &countingJob{}); err == nil {
		t.Error("expected error for invalid cron spec")
	}
}

func TestNext_UsesLocation(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Skipf("zoneinfo unavailable: %v", err)
	}
	s, err := New("0 9 * * *", loc, &countingJob{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	next := s.Next().In(loc)
	if next.Hour() != 9 || next.Minute() != 0 {
		t.Errorf("next run at %s, want 09:00 IST", next)
	}
	if !next.After(time.Now()) {
		t.Errorf("next run %s is not in the future", next)
	}
}

func TestEntry_RunsJob(t *testing.T) {
	job := &countingJob{}
	s, err := New("0 9 * * 1-4", time.UTC, job)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.cron.Entry(s.entry).WrappedJob.Run()

	if got := job.runs.Load(); got != 1 {
		t.Errorf("job ran %d times, want 1", got)
	}
}

func TestStartStop(t *testing.T) {
	s, err := New("@every 1h", time.UTC, &countingJob{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Start()
	s.Stop()
}
