package chrono

// Stopwatch accumulates run time across start/stop cycles with
// microsecond precision:
//
//	var sw chrono.Stopwatch
//	sw.Start()
//	// ... timed section ...
//	sw.Stop()
//	total := sw.ElapsedMillis()
//
// The zero value is a stopped stopwatch at zero. A stopwatch belongs to
// one goroutine; it takes no locks.
type Stopwatch struct {
	startUs int64
	totalUs int64
	running bool
}

// Start clears any accumulated time and starts counting from zero.
func (s *Stopwatch) Start() {
	s.totalUs = 0
	s.startUs = Micros64()
	s.running = true
}

// Stop halts counting and folds the current run into the total. No-op
// when already stopped.
func (s *Stopwatch) Stop() {
	if s.running {
		s.totalUs = SaturatingAdd(s.totalUs, MicrosSince(s.startUs))
		s.running = false
		s.startUs = 0
	}
}

// Resume continues counting without clearing accumulated time. No-op
// when already running.
func (s *Stopwatch) Resume() {
	if !s.running {
		s.startUs = Micros64()
		s.running = true
	}
}

// Reset clears accumulated time. A running stopwatch keeps running and
// restarts from zero.
func (s *Stopwatch) Reset() {
	s.totalUs = 0
	if s.running {
		s.startUs = Micros64()
	} else {
		s.startUs = 0
	}
}

// ElapsedMicros returns the accumulated microseconds, including the
// current run when running. Pure read; never mutates state.
func (s *Stopwatch) ElapsedMicros() int64 {
	acc := s.totalUs
	if s.running {
		acc = SaturatingAdd(acc, MicrosSince(s.startUs))
	}
	return acc
}

// ElapsedMillis returns the accumulated milliseconds.
func (s *Stopwatch) ElapsedMillis() int64 {
	return s.ElapsedMicros() / 1000
}

// ElapsedSeconds returns the accumulated seconds.
func (s *Stopwatch) ElapsedSeconds() int64 {
	return s.ElapsedMicros() / 1000000
}

// IsRunning reports whether the stopwatch is counting.
func (s *Stopwatch) IsRunning() bool {
	return s.running
}
