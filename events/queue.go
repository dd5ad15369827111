package events

// Queue is an in-memory Source. Events pushed between drains are delivered
// on the next Drain, in push order.
type Queue struct {
	pending []Event
}

func NewQueue(evs ...Event) *Queue {
	q := &Queue{}
	q.Push(evs...)
	return q
}

func (q *Queue) Push(evs ...Event) {
	q.pending = append(q.pending, evs...)
}

func (q *Queue) Len() int {
	return len(q.pending)
}

func (q *Queue) Drain(dst []Event) []Event {
	dst = append(dst, q.pending...)
	q.pending = q.pending[:0]
	return dst
}

// Script is a Source that releases events on a given drain number, counted
// from zero. It drives headless runs and replays.
type Script struct {
	drains int
	steps  []ScriptStep
}

// ScriptStep is a batch of events released on drain Frame.
type ScriptStep struct {
	Frame  int
	Events []Event
}

// NewScript creates a script. Steps may be given in any order; steps that share
// a frame are delivered in the order given.
func NewScript(steps ...ScriptStep) *Script {
	s := &Script{}
	for _, st := range steps {
		s.At(st.Frame, st.Events...)
	}
	return s
}

// At schedules evs for drain frame.
func (s *Script) At(frame int, evs ...Event) *Script {
	s.steps = append(s.steps, ScriptStep{Frame: frame, Events: evs})
	return s
}

func (s *Script) Drain(dst []Event) []Event {
	for _, st := range s.steps {
		if st.Frame == s.drains {
			dst = append(dst, st.Events...)
		}
	}
	s.drains++
	return dst
}

// Done reports whether every scheduled step has been delivered.
func (s *Script) Done() bool {
	for _, st := range s.steps {
		if st.Frame >= s.drains {
			return false
		}
	}
	return true
}
