package stopwatch

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// Scheduler runs fn every period until fn returns Break.
type Scheduler interface {
	Every(period time.Duration, fn func() ControlFlow)
}

// Dispatcher runs fn on the thread that owns the timer, typically the UI thread.
// It must not return before fn has returned.
type Dispatcher func(fn func())

// Direct runs fn on the calling goroutine.
func Direct(fn func()) {
	fn()
}

// TickerScheduler drives every schedule from its own clock ticker and hands
// each firing to a Dispatcher.
type TickerScheduler struct {
	clock    clock.WithTicker
	dispatch Dispatcher
	log      logrus.FieldLogger
	active   atomic.Int64
	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewTickerScheduler creates a scheduler on the given clock. A nil dispatch runs
// callbacks on the ticker goroutine.
func NewTickerScheduler(clk clock.WithTicker, dispatch Dispatcher, log logrus.FieldLogger) *TickerScheduler {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if dispatch == nil {
		dispatch = Direct
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &TickerScheduler{
		clock:    clk,
		dispatch: dispatch,
		log:      log.WithField("component", "scheduler"),
		stopCh:   make(chan struct{}),
	}
}

// Every arms a repeating schedule. It is a no-op once the scheduler is stopped.
func (scheduler *TickerScheduler) Every(period time.Duration, fn func() ControlFlow) {
	if period <= 0 {
		period = DefaultTickInterval
	}
	select {
	case <-scheduler.stopCh:
		return
	default:
	}

	ticker := scheduler.clock.NewTicker(period)
	active := scheduler.active.Add(1)
	scheduler.log.WithFields(logrus.Fields{
		"period": period,
		"active": active,
	}).Debug("Schedule armed")

	go scheduler.run(ticker, fn)
}

// Active reports how many schedules are still armed.
func (scheduler *TickerScheduler) Active() int {
	return int(scheduler.active.Load())
}

// Stop ends every schedule. Callbacks already being dispatched run to completion.
func (scheduler *TickerScheduler) Stop() {
	scheduler.stopOnce.Do(func() {
		close(scheduler.stopCh)
	})
}

func (scheduler *TickerScheduler) run(ticker clock.Ticker, fn func() ControlFlow) {
	defer func() {
		ticker.Stop()
		active := scheduler.active.Add(-1)
		scheduler.log.WithField("active", active).Debug("Schedule finished")
	}()

	for {
		select {
		case <-scheduler.stopCh:
			return
		case <-ticker.C():
			flow := Continue
			scheduler.dispatch(func() {
				flow = fn()
			})
			if flow == Break {
				return
			}
		}
	}
}
