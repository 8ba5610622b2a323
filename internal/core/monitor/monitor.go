package monitor

import (
	"math/rand"
	"sync"
	"time"

	"mousemove/internal/core/model"
)

// Input reads idle time and nudges the pointer.
type Input interface {
	IdleSeconds() (uint32, error)
	Nudge(dx, dy int) error
}

// View receives monitor state. Calls are made on the UI thread.
type View interface {
	SetRunning(running bool)
	SetIdleSeconds(seconds uint32)
}

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Config contains runtime options for Monitor.
type Config struct {
	// Dispatch runs fn on the UI thread and returns once it has run.
	Dispatch  func(fn func())
	Random    Random
	NewTicker func(interval time.Duration) Ticker
}

// Monitor nudges the pointer whenever the user has been idle for a full interval.
type Monitor struct {
	mu          sync.Mutex
	input       Input
	view        View
	options     Config
	config      model.MonitorConfig
	state       State
	ticker      Ticker
	stopCh      chan struct{}
	idleSeconds uint32
	events      []chan Event
	closed      bool
}

// New creates a stopped Monitor.
func New(input Input, options Config) *Monitor {
	if options.Dispatch == nil {
		options.Dispatch = func(fn func()) { fn() }
	}
	if options.Random == nil {
		options.Random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if options.NewTicker == nil {
		options.NewTicker = newSystemTicker
	}

	return &Monitor{
		input:   input,
		options: options,
		config:  model.DefaultMonitorConfig(),
		state:   StateStopped,
	}
}

// SetView injects the view that displays monitor state.
func (monitor *Monitor) SetView(view View) {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	monitor.view = view
}

// Subscribe registers a new observer channel.
func (monitor *Monitor) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	monitor.mu.Lock()
	if monitor.closed {
		close(ch)
	} else {
		monitor.events = append(monitor.events, ch)
	}
	monitor.mu.Unlock()
	return ch
}

// Start schedules a tick every config.Interval, the first one a full interval from now.
// It returns false without changing anything when the monitor is already running.
func (monitor *Monitor) Start(config model.MonitorConfig) bool {
	if !config.Valid() {
		config = model.DefaultMonitorConfig()
	}

	monitor.mu.Lock()
	if monitor.ticker != nil || monitor.closed {
		monitor.mu.Unlock()
		return false
	}
	monitor.config = config
	monitor.state = StateRunning
	monitor.idleSeconds = 0
	monitor.ticker = monitor.options.NewTicker(config.Interval)
	monitor.stopCh = make(chan struct{})
	ticker, stopCh, view := monitor.ticker, monitor.stopCh, monitor.view
	monitor.emitLocked(Event{
		Type:     EventStateChange,
		State:    StateRunning,
		Interval: config.Interval,
		At:       time.Now(),
	})
	monitor.mu.Unlock()

	if view != nil {
		view.SetRunning(true)
	}

	go monitor.run(ticker, stopCh, config)
	return true
}

// Stop cancels future ticks and resets the reported idle time.
// Stopping a stopped monitor does nothing.
func (monitor *Monitor) Stop() {
	monitor.mu.Lock()
	if monitor.ticker == nil {
		monitor.mu.Unlock()
		return
	}
	monitor.ticker.Stop()
	monitor.ticker = nil
	close(monitor.stopCh)
	monitor.stopCh = nil
	monitor.state = StateStopped
	monitor.idleSeconds = 0
	view := monitor.view
	monitor.emitLocked(Event{
		Type:  EventStateChange,
		State: StateStopped,
		At:    time.Now(),
	})
	monitor.mu.Unlock()

	if view != nil {
		view.SetIdleSeconds(0)
		view.SetRunning(false)
	}
}

// Close stops the monitor and closes observers.
func (monitor *Monitor) Close() {
	monitor.Stop()

	monitor.mu.Lock()
	if monitor.closed {
		monitor.mu.Unlock()
		return
	}
	monitor.closed = true
	events := monitor.events
	monitor.events = nil
	monitor.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Running reports whether a ticker is active.
func (monitor *Monitor) Running() bool {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	return monitor.ticker != nil
}

// State returns the current mode.
func (monitor *Monitor) State() State {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	return monitor.state
}

// Config returns the configuration of the current or last run.
func (monitor *Monitor) Config() model.MonitorConfig {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	return monitor.config
}

// IdleSeconds returns the last reported idle time.
func (monitor *Monitor) IdleSeconds() uint32 {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	return monitor.idleSeconds
}

func (monitor *Monitor) run(ticker Ticker, stopCh chan struct{}, config model.MonitorConfig) {
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C():
			monitor.options.Dispatch(func() {
				monitor.tick(stopCh, config)
			})
		}
	}
}

// tick runs on the UI thread. Ticks scheduled by an earlier run are dropped.
func (monitor *Monitor) tick(stopCh chan struct{}, config model.MonitorConfig) {
	monitor.mu.Lock()
	if monitor.stopCh != stopCh {
		monitor.mu.Unlock()
		return
	}
	monitor.mu.Unlock()

	idleSeconds, err := monitor.input.IdleSeconds()
	if err != nil {
		idleSeconds = 0
	}

	monitor.mu.Lock()
	monitor.idleSeconds = idleSeconds
	view := monitor.view
	now := time.Now()
	monitor.emitLocked(Event{
		Type:        EventIdle,
		State:       StateRunning,
		IdleSeconds: idleSeconds,
		At:          now,
	})
	monitor.mu.Unlock()

	if view != nil {
		view.SetIdleSeconds(idleSeconds)
	}

	if idleSeconds < config.ThresholdSeconds() {
		return
	}

	dx, dy := nudgeOffsets(monitor.options.Random)
	_ = monitor.input.Nudge(dx, dy)

	monitor.emit(Event{
		Type:        EventNudge,
		State:       StateRunning,
		IdleSeconds: idleSeconds,
		DX:          dx,
		DY:          dy,
		At:          now,
	})
}

func (monitor *Monitor) emit(event Event) {
	monitor.mu.Lock()
	defer monitor.mu.Unlock()
	monitor.emitLocked(event)
}

func (monitor *Monitor) emitLocked(event Event) {
	for _, ch := range monitor.events {
		select {
		case ch <- event:
		default:
		}
	}
}

type systemTicker struct {
	ticker *time.Ticker
}

func newSystemTicker(interval time.Duration) Ticker {
	return systemTicker{ticker: time.NewTicker(interval)}
}

func (ticker systemTicker) C() <-chan time.Time {
	return ticker.ticker.C
}

func (ticker systemTicker) Stop() {
	ticker.ticker.Stop()
}
