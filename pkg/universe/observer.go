package universe

// Observer is notified around every Tick. Hosts use it to attach timing or
// tracing without the engine knowing about either.
type Observer interface {
	// TickStarted is called before the generation gen is advanced.
	TickStarted(gen uint64)
	// TickFinished is called once gen+1 has been published.
	TickFinished(gen uint64)
}

// SetObserver installs o; nil removes any observer.
func (u *Universe) SetObserver(o Observer) { u.observer = o }
