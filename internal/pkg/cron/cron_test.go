package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerRunsJobOnInterval(t *testing.T) {
	var runs int64
	s := New()
	s.Register(Job{
		Name:     "tick",
		Interval: 10 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			atomic.AddInt64(&runs, 1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	deadline := time.After(2 * time.Second)
	for atomic.LoadInt64(&runs) == 0 {
		select {
		case <-deadline:
			t.Fatal("job never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestRunTriggersByName(t *testing.T) {
	done := make(chan struct{})
	s := New()
	s.Register(Job{
		Name:     "manual",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			close(done)
			return nil
		},
	})

	if err := s.Run(context.Background(), "manual"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("manual run never executed")
	}
}

func TestRunUnknownJob(t *testing.T) {
	s := New()
	if err := s.Run(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for unknown job")
	}
}

func TestListReflectsJobOutcome(t *testing.T) {
	s := New()
	s.Register(Job{
		Name:     "failing",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			return errors.New("boom")
		},
	})

	if err := s.Run(context.Background(), "failing"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		items := s.List()
		if len(items) != 1 {
			t.Fatalf("List() returned %d items", len(items))
		}
		if items[0].Status == StatusReject {
			if items[0].Message != "boom" {
				t.Fatalf("Message = %q, want %q", items[0].Message, "boom")
			}
			return
		}
		select {
		case <-deadline:
			t.Fatalf("job status = %q, never rejected", items[0].Status)
		case <-time.After(5 * time.Millisecond):
		}
	}
}
