package services

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/yummy-app/analytics"
	"github.com/yeremiapane/yummy-app/kds"
)

// DashboardUpdate is the payload pushed to display clients on every tick.
type DashboardUpdate struct {
	Year             int                       `json:"year"`
	TotalProfit      float64                   `json:"total_profit"`
	CumulativeProfit []analytics.MonthlyProfit `json:"cumulative_profit"`
	TopSpenders      []int                     `json:"top_spenders"`
	GeneratedAt      time.Time                 `json:"generated_at"`
}

// DashboardMonitor periodically recomputes the current year's figures and
// broadcasts them through the kds hub.
type DashboardMonitor struct {
	Engine    *analytics.Engine
	StopChan  chan struct{}
	Interval  time.Duration
	Broadcast func(data interface{})
	Now       func() time.Time

	log      logrus.FieldLogger
	mu       sync.RWMutex
	last     *DashboardUpdate
	stopOnce sync.Once
}

func NewDashboardMonitor(engine *analytics.Engine, interval time.Duration, logger logrus.FieldLogger) *DashboardMonitor {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &DashboardMonitor{
		Engine:    engine,
		StopChan:  make(chan struct{}),
		Interval:  interval,
		Broadcast: kds.BroadcastDashboardUpdate,
		Now:       time.Now,
		log:       logger,
	}
}

func (dm *DashboardMonitor) Start() {
	go func() {
		ticker := time.NewTicker(dm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), dm.Interval)
				if _, err := dm.Refresh(ctx); err != nil {
					dm.log.WithError(err).Error("Dashboard refresh failed")
				}
				cancel()
			case <-dm.StopChan:
				return
			}
		}
	}()
}

func (dm *DashboardMonitor) Stop() {
	dm.stopOnce.Do(func() { close(dm.StopChan) })
}

// Refresh computes and broadcasts one update.
func (dm *DashboardMonitor) Refresh(ctx context.Context) (*DashboardUpdate, error) {
	now := dm.Now()
	report, err := dm.Engine.YearReport(ctx, now.Year())
	if err != nil {
		return nil, err
	}

	update := &DashboardUpdate{
		Year:             report.Year,
		TotalProfit:      report.TotalProfit,
		CumulativeProfit: report.CumulativeProfit,
		TopSpenders:      report.TopSpenders,
		GeneratedAt:      now,
	}

	dm.mu.Lock()
	dm.last = update
	dm.mu.Unlock()

	if dm.Broadcast != nil {
		dm.Broadcast(update)
	}
	dm.log.WithFields(logrus.Fields{
		"year":         update.Year,
		"total_profit": update.TotalProfit,
	}).Debug("Dashboard refreshed")
	return update, nil
}

// Last returns the most recent update, or nil before the first refresh.
func (dm *DashboardMonitor) Last() *DashboardUpdate {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return dm.last
}
