package nav

import "sync"

// ScrollLock suppresses page scroll while any overlay holds it.
// Holders are counted; scroll comes back only when the last holder releases.
type ScrollLock struct {
	mu    sync.Mutex
	count int
}

// Acquire takes one hold on the lock. The returned release func gives it back;
// only its first call has an effect.
func (l *ScrollLock) Acquire() (release func()) {
	l.mu.Lock()
	l.count++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if l.count > 0 {
				l.count--
			}
		})
	}
}

// Locked reports whether page scroll is currently suppressed
func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count > 0
}

// Holders returns the number of outstanding holds
func (l *ScrollLock) Holders() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}
