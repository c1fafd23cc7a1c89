package ui

// Cleanup undoes an effect. It runs before the effect re-runs and when the
// effect's scope is disposed.
type Cleanup func()

type phase int

const (
	phaseLayout phase = iota
	phaseCommit
)

type effect struct {
	owner     *Owner
	fn        func() Cleanup
	phase     phase
	cleanup   Cleanup
	scheduled bool
	disposed  bool
}

// LayoutEffect runs fn after the next layout pass, before anything is
// committed, so fn can measure elements and reposition them. It re-runs
// after layout whenever one of deps changes.
func LayoutEffect(o *Owner, fn func() Cleanup, deps ...Dependency) {
	newEffect(o, fn, phaseLayout, deps)
}

// Effect runs fn once layout has settled, and again whenever one of deps
// changes. With no deps it runs once per mount.
func Effect(o *Owner, fn func() Cleanup, deps ...Dependency) {
	newEffect(o, fn, phaseCommit, deps)
}

func newEffect(o *Owner, fn func() Cleanup, p phase, deps []Dependency) {
	e := &effect{owner: o, fn: fn, phase: p}
	for _, dep := range deps {
		unbind := dep.Watch(e.schedule)
		o.OnCleanup(func() { unbind() })
	}
	o.OnCleanup(e.dispose)
	e.schedule()
}

func (e *effect) schedule() {
	if e.scheduled || e.disposed {
		return
	}
	e.scheduled = true
	doc := e.owner.Document()
	if e.phase == phaseLayout {
		doc.AfterLayout(e.run)
	} else {
		doc.AfterCommit(e.run)
	}
}

func (e *effect) run() {
	e.scheduled = false
	if e.disposed {
		return
	}
	e.runCleanup()
	e.cleanup = e.fn()
}

func (e *effect) dispose() {
	e.disposed = true
	e.runCleanup()
}

func (e *effect) runCleanup() {
	if c := e.cleanup; c != nil {
		e.cleanup = nil
		c()
	}
}

