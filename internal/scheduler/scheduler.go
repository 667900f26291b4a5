package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is one pipeline pass.
type Job interface {
	Run(ctx context.Context)
}

// Scheduler runs a Job on a cron spec for hosts without an external
// scheduler. Weekday filtering stays in the job itself.
type Scheduler struct {
	cron  *cron.Cron
	spec  string
	loc   *time.Location
	entry cron.EntryID
}

func New(spec string, loc *time.Location, job Job) (*Scheduler, error) {
	if loc == nil {
		loc = time.Local
	}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.VerbosePrintfLogger(log.Default()))),
	)
	entry, err := c.AddFunc(spec, func() {
		job.Run(context.Background())
	})
	if err != nil {
		return nil, fmt.Errorf("invalid cron %q: %w", spec, err)
	}
	return &Scheduler{cron: c, spec: spec, loc: loc, entry: entry}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	log.Printf("scheduler: started with %q, next run %s", s.spec, s.Next().Format(time.RFC1123))
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("scheduler: stopped")
}

// Next is the next activation time. Before Start it is computed from now
// in the scheduler's location.
func (s *Scheduler) Next() time.Time {
	e := s.cron.Entry(s.entry)
	if !e.Next.IsZero() {
		return e.Next
	}
	return e.Schedule.Next(time.Now().In(s.loc))
}
