package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

type recordingService struct {
	mu   sync.Mutex
	jobs []ports.ExportJob
	done chan struct{}
	want int
}

func (s *recordingService) Process(ctx context.Context, job ports.ExportJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, job)
	if len(s.jobs) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcherDeliversAllJobs(t *testing.T) {
	svc := &recordingService{done: make(chan struct{}), want: 6}
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < 3; i++ {
		d.Enqueue(ports.ExportJob{PortfolioID: "p-alpha", RequestedBy: "u1"})
		d.Enqueue(ports.ExportJob{PortfolioID: "p-beta", RequestedBy: "u2"})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for jobs")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	counts := map[string]int{}
	for _, j := range svc.jobs {
		counts[j.PortfolioID]++
	}
	if counts["p-alpha"] != 3 || counts["p-beta"] != 3 {
		t.Fatalf("unexpected job counts: %v", counts)
	}
}

func TestShardIndexIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, &recordingService{done: make(chan struct{}), want: -1}, zerolog.Nop())

	first := d.shardIndex("portfolio-42")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("portfolio-42"); got != first {
			t.Fatalf("shard index changed: %d then %d", first, got)
		}
	}
}
