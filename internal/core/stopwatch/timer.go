package stopwatch

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"

	"thyme/internal/core/model"
)

// DefaultTickInterval is the period between two update notifications.
const DefaultTickInterval = 100 * time.Millisecond

// ErrNoReferenceInstant is raised when a tick fires before the timer ever started.
var ErrNoReferenceInstant = errors.New("timer is running, but no start instant is set")

// Options contains the collaborators of a Timer.
//
// A nil Scheduler defaults to a TickerScheduler with the Direct dispatcher, so
// observers run on the ticker goroutine. Hosts with a UI thread must inject a
// scheduler whose Dispatcher hops onto that thread.
type Options struct {
	Clock     clock.WithTicker
	Scheduler Scheduler
	Logger    logrus.FieldLogger
}

// Timer is a stopwatch that reports the time elapsed since its last Start.
//
// Pause only silences notifications. Elapsed time is always measured from
// the most recent Start, nothing accumulates across pauses.
type Timer struct {
	mu         sync.Mutex
	config     model.TimerConfig
	clock      clock.PassiveClock
	scheduler  Scheduler
	log        logrus.FieldLogger
	running    bool
	started    time.Time
	hasStarted bool
	generation uint64
	handlers   []updateHandler
	nextID     HandlerID
}

// New creates a stopped Timer.
func New(config model.TimerConfig, options Options) *Timer {
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	if options.Clock == nil {
		options.Clock = clock.RealClock{}
	}
	if options.Logger == nil {
		options.Logger = logrus.StandardLogger()
	}
	if options.Scheduler == nil {
		options.Scheduler = NewTickerScheduler(options.Clock, Direct, options.Logger)
	}

	return &Timer{
		config:    config,
		clock:     options.Clock,
		scheduler: options.Scheduler,
		log:       options.Logger.WithField("component", "stopwatch"),
	}
}

// ConnectUpdate registers an observer. Observers run in registration order,
// synchronously on the dispatching thread, once per tick.
func (timer *Timer) ConnectUpdate(fn UpdateFunc) HandlerID {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.nextID++
	timer.handlers = append(timer.handlers, updateHandler{id: timer.nextID, fn: fn})
	return timer.nextID
}

// DisconnectUpdate removes an observer. Unknown ids are ignored.
func (timer *Timer) DisconnectUpdate(id HandlerID) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	for i, handler := range timer.handlers {
		if handler.id == id {
			timer.handlers = append(timer.handlers[:i:i], timer.handlers[i+1:]...)
			return
		}
	}
}

// Start resets the reference instant to now and arms a fresh tick schedule.
// Schedules armed by an earlier Start end themselves on their next firing.
func (timer *Timer) Start() {
	timer.mu.Lock()
	restart := timer.running
	timer.running = true
	timer.started = timer.clock.Now()
	timer.hasStarted = true
	timer.generation++
	generation := timer.generation
	period := timer.config.TickInterval
	timer.mu.Unlock()

	timer.log.WithFields(logrus.Fields{
		"generation": generation,
		"restart":    restart,
	}).Debug("Stopwatch started")

	timer.scheduler.Every(period, func() ControlFlow {
		return timer.tick(generation)
	})
}

// Pause stops notifications. The reference instant is kept.
func (timer *Timer) Pause() {
	timer.mu.Lock()
	if !timer.running {
		timer.mu.Unlock()
		return
	}
	timer.running = false
	timer.mu.Unlock()

	timer.log.Debug("Stopwatch paused")
}

// UpdateConfig replaces the timer configuration. A new tick interval applies
// from the next Start.
func (timer *Timer) UpdateConfig(config model.TimerConfig) {
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	timer.mu.Lock()
	timer.config = config
	timer.mu.Unlock()
}

// Running reports whether the timer is emitting updates.
func (timer *Timer) Running() bool {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.running
}

// Elapsed returns the time since the last Start, or false if it never started.
func (timer *Timer) Elapsed() (time.Duration, bool) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if !timer.hasStarted {
		return 0, false
	}
	return timer.clock.Since(timer.started), true
}

func (timer *Timer) tick(generation uint64) ControlFlow {
	timer.mu.Lock()
	if !timer.running || generation != timer.generation {
		timer.mu.Unlock()
		return Break
	}
	if !timer.hasStarted {
		timer.mu.Unlock()
		panic(ErrNoReferenceInstant)
	}
	elapsed := timer.clock.Since(timer.started)
	handlers := append([]updateHandler(nil), timer.handlers...)
	timer.mu.Unlock()

	hours, minutes := HoursAndMinutes(elapsed)
	for _, handler := range handlers {
		handler.fn(timer, hours, minutes)
	}
	return Continue
}
