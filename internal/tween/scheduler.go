package tween

// Tween drives a value from 0 to 1 over Duration seconds after an optional Delay.
// OnUpdate receives the eased progress on every step; OnComplete runs once when the
// tween reaches the end. A tween replaced or killed before that never completes.
type Tween struct {
	Duration   float64
	Delay      float64
	Ease       Ease
	OnUpdate   func(eased float64)
	OnComplete func()

	elapsed float64
	done    bool
}

// Progress reports linear progress in [0,1].
func (t *Tween) Progress() float64 {
	if t.Duration <= 0 {
		if t.done {
			return 1
		}
		return 0
	}
	p := (t.elapsed - t.Delay) / t.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Done reports whether the tween ran to completion.
func (t *Tween) Done() bool { return t.done }

func (t *Tween) step(dt float64) {
	if t.done {
		return
	}
	t.elapsed += dt
	if t.elapsed < t.Delay {
		return
	}

	p := t.Progress()
	if t.Duration <= 0 {
		p = 1
	}
	if t.OnUpdate != nil {
		ease := t.Ease
		if ease == nil {
			ease = Linear
		}
		t.OnUpdate(ease(p))
	}
	if p >= 1 {
		t.done = true
		if t.OnComplete != nil {
			t.OnComplete()
		}
	}
}

// Scheduler keeps at most one tween per key. Setting a key replaces whatever was
// pending under it, so the latest request for a key always wins and superseded
// tweens are dropped rather than queued. It is not safe for concurrent use; step
// it from the frame loop.
type Scheduler struct {
	tweens map[string]*Tween
	order  []string
}

func NewScheduler() *Scheduler {
	return &Scheduler{tweens: make(map[string]*Tween)}
}

// Set installs t under key, discarding any tween already pending for that key.
func (s *Scheduler) Set(key string, t *Tween) {
	if _, exists := s.tweens[key]; !exists {
		s.order = append(s.order, key)
	}
	s.tweens[key] = t
}

// After runs fn once delay seconds from now, replacing any pending call for key.
func (s *Scheduler) After(key string, delay float64, fn func()) {
	s.Set(key, &Tween{Delay: delay, OnComplete: fn})
}

// Kill drops the tween pending under key without completing it.
func (s *Scheduler) Kill(key string) bool {
	if _, ok := s.tweens[key]; !ok {
		return false
	}
	s.remove(key)
	return true
}

// Get returns the tween pending under key.
func (s *Scheduler) Get(key string) (*Tween, bool) {
	t, ok := s.tweens[key]
	return t, ok
}

func (s *Scheduler) Active(key string) bool {
	_, ok := s.tweens[key]
	return ok
}

func (s *Scheduler) Len() int { return len(s.tweens) }

// Step advances every pending tween by dt seconds in insertion order. Callbacks may
// Set or Kill keys, including their own.
func (s *Scheduler) Step(dt float64) {
	keys := make([]string, len(s.order))
	copy(keys, s.order)

	for _, key := range keys {
		t, ok := s.tweens[key]
		if !ok {
			continue
		}
		t.step(dt)
		if t.done && s.tweens[key] == t {
			s.remove(key)
		}
	}
}

func (s *Scheduler) remove(key string) {
	delete(s.tweens, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
