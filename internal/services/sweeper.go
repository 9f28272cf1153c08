package services

import (
	"context"
	"log"
	"sync"
	"time"
)

// Sweep is one named retention pass. Fn returns how many entries it dropped.
type Sweep struct {
	Name string
	Fn   func() int
}

// Sweeper runs retention passes over the in-memory session stores on a
// fixed interval.
type Sweeper struct {
	interval time.Duration
	sweeps   []Sweep
	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewSweeper(interval time.Duration, sweeps ...Sweep) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		interval: interval,
		sweeps:   sweeps,
		stopChan: make(chan struct{}),
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.loop(ctx)
	log.Println("✅ Session sweeper started successfully")
}

func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
	s.wg.Wait()
	log.Println("✅ Session sweeper stopped")
}

// RunOnce runs every sweep and returns the total dropped.
func (s *Sweeper) RunOnce() int {
	total := 0
	for _, sweep := range s.sweeps {
		if n := sweep.Fn(); n > 0 {
			log.Printf("🧹 Pruned %d %s", n, sweep.Name)
			total += n
		}
	}
	return total
}

func (s *Sweeper) loop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce()
		}
	}
}
