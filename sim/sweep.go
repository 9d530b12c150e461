package sim

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/SAI141003/VirtualMemoryManager/sim/trace"
)

// SweepPoint is the fault count of one policy at one capacity.
type SweepPoint struct {
	Capacity   int
	FaultCount int
	FaultRate  float64
}

// Anomaly marks a capacity where adding a frame increased the fault count
// (Belady's anomaly).
type Anomaly struct {
	Capacity       int // the larger capacity
	FaultCount     int
	PrevCapacity   int
	PrevFaultCount int
}

// Sweep simulates one policy at every capacity in [minCap, maxCap], running at
// most GOMAXPROCS simulations at once. Points are returned in ascending
// capacity order.
func Sweep(ctx context.Context, name string, refs []trace.PageID, minCap, maxCap int) ([]SweepPoint, error) {
	p, err := NewPolicy(name)
	if err != nil {
		return nil, err
	}
	if err := validateCapacity(minCap); err != nil {
		return nil, err
	}
	if maxCap < minCap {
		return nil, fmt.Errorf("%w: max capacity %d is below min capacity %d", ErrInvalidCapacity, maxCap, minCap)
	}

	points := make([]SweepPoint, maxCap-minCap+1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	// policies copy refs before use, so every goroutine can share it
	for c := minCap; c <= maxCap; c++ {
		c := c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := p.Simulate(refs, c)
			if err != nil {
				return err
			}
			stats := trace.Summarize(t)
			// each goroutine owns its own index
			points[c-minCap] = SweepPoint{Capacity: c, FaultCount: stats.FaultCount, FaultRate: stats.FaultRate}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logrus.Debugf("sweep: %s over capacities %d..%d", name, minCap, maxCap)
	return points, nil
}

// BeladyAnomalies returns every point whose fault count exceeds that of the
// preceding point. points must be in ascending capacity order.
func BeladyAnomalies(points []SweepPoint) []Anomaly {
	anomalies := make([]Anomaly, 0)
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		if cur.FaultCount > prev.FaultCount {
			anomalies = append(anomalies, Anomaly{
				Capacity:       cur.Capacity,
				FaultCount:     cur.FaultCount,
				PrevCapacity:   prev.Capacity,
				PrevFaultCount: prev.FaultCount,
			})
		}
	}
	return anomalies
}
