package ports

// Predicate is an external environment query such as "prefers reduced motion"
// or "viewport is narrow". How the value is measured is up to the
// implementation.
type Predicate interface {
	// Name identifies the predicate in logs.
	Name() string
	// Matches reports the current value.
	Matches() (bool, error)
	// Watch registers onChange to receive every new value. The returned stop
	// function unregisters it and must be safe to call more than once.
	Watch(onChange func(bool)) (stop func(), err error)
}
