package restore

type phase uint8

const (
	collecting phase = iota
	determined
)

// Target receives the before-images an ElementLog replays.
type Target[K comparable, V any] interface {
	// RestoreValue puts v back at k.
	RestoreValue(k K, v V)
	// RestoreEmpty removes whatever is stored at k.
	RestoreEmpty(k K)
}

// Sizer is implemented by targets whose size the log can restore.
type Sizer interface {
	RestoreSize(n int)
}

type entry[K comparable, V any] struct {
	key   K
	value V
	empty bool
}

// ElementLog is the undo log of one keyed container with snapshots of
// type S.
type ElementLog[K comparable, V any, S any] struct {
	phase    phase
	seen     map[K]struct{}
	entries  []entry[K, V]
	snapshot S
	size     int
	sized    bool
}

// NewElementLog creates an empty collecting log.
func NewElementLog[K comparable, V any, S any]() *ElementLog[K, V, S] {
	return &ElementLog[K, V, S]{seen: make(map[K]struct{})}
}

func (l *ElementLog[K, V, S]) first(k K) bool {
	if l.phase == determined {
		return false
	}
	if _, ok := l.seen[k]; ok {
		return false
	}
	l.seen[k] = struct{}{}
	return true
}

// EmptyElement records that nothing was stored at k.
func (l *ElementLog[K, V, S]) EmptyElement(k K) {
	if l.first(k) {
		l.entries = append(l.entries, entry[K, V]{key: k, empty: true})
	}
}

// ElementValue records that v was stored at k.
func (l *ElementLog[K, V, S]) ElementValue(k K, v V) {
	if l.first(k) {
		l.entries = append(l.entries, entry[K, V]{key: k, value: v})
	}
}

// Touched reports whether k already has a before-image or the log is
// determined.
func (l *ElementLog[K, V, S]) Touched(k K) bool {
	if l.phase == determined {
		return true
	}
	_, ok := l.seen[k]
	return ok
}

// CapacityOrSize records the container's size; only the first call counts.
func (l *ElementLog[K, V, S]) CapacityOrSize(n int) {
	if !l.sized {
		l.size, l.sized = n, true
	}
}

// Size returns the recorded size.
func (l *ElementLog[K, V, S]) Size() (int, bool) { return l.size, l.sized }

// FullSnapshot determines the log with s. The element entries collected so
// far are first replayed onto onto, which must be s's view, so that s holds
// the state from before the log started. A determined log ignores further
// snapshots.
func (l *ElementLog[K, V, S]) FullSnapshot(s S, onto Target[K, V]) {
	if l.phase == determined {
		return
	}
	l.replayEntries(onto)
	l.snapshot = s
	l.phase = determined
	l.entries = nil
	l.seen = nil
}

// Snapshot returns the snapshot of a determined log.
func (l *ElementLog[K, V, S]) Snapshot() (S, bool) {
	return l.snapshot, l.phase == determined
}

// Len returns the number of collected entries.
func (l *ElementLog[K, V, S]) Len() int { return len(l.entries) }

// IsEmpty reports whether the log holds nothing to undo.
func (l *ElementLog[K, V, S]) IsEmpty() bool {
	return l.phase == collecting && len(l.entries) == 0 && !l.sized
}

// Replay undoes a collecting log against t: entries in reverse order, then
// the size if t is a Sizer. A determined log replays nothing; the caller
// installs the snapshot.
func (l *ElementLog[K, V, S]) Replay(t Target[K, V]) {
	if l.phase == determined {
		return
	}
	l.replayEntries(t)
	if s, ok := t.(Sizer); ok && l.sized {
		s.RestoreSize(l.size)
	}
}

func (l *ElementLog[K, V, S]) replayEntries(t Target[K, V]) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if e.empty {
			t.RestoreEmpty(e.key)
		} else {
			t.RestoreValue(e.key, e.value)
		}
	}
}
