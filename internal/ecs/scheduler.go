package ecs

// System updates shared state once per tick. C is the context handed to every
// system, usually a pointer to a struct bundling the World with resources.
type System[C any] interface {
	Update(ctx C)
}

// SystemFunc adapts a plain function to System.
type SystemFunc[C any] func(ctx C)

func (f SystemFunc[C]) Update(ctx C) {
	f(ctx)
}

// Scheduler runs systems in registration order, synchronously.
type Scheduler[C any] struct {
	systems []System[C]
}

func NewScheduler[C any](systems ...System[C]) *Scheduler[C] {
	copied := append([]System[C](nil), systems...)
	return &Scheduler[C]{systems: copied}
}

func (s *Scheduler[C]) Add(system System[C]) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler[C]) Update(ctx C) {
	for _, system := range s.systems {
		system.Update(ctx)
	}
}

func (s *Scheduler[C]) Systems() []System[C] {
	systems := make([]System[C], 0, len(s.systems))
	return append(systems, s.systems...)
}
