package diffeq

// State is the phase of a reveal sequence.
type State int

const (
	// StateIdle means no frames are pending.
	StateIdle State = iota
	// StateComputing means new coefficients were accepted but not evaluated yet.
	StateComputing
	// StateRevealing means frames are being emitted.
	StateRevealing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateComputing:
		return "computing"
	case StateRevealing:
		return "revealing"
	default:
		return "unknown"
	}
}

// Frame is one step of a reveal: samples 0..Index of both signals.
type Frame struct {
	Generation uint64
	Index      int
	X          []float64
	Y          []float64
}

// Len returns the number of samples in the frame.
func (f Frame) Len() int {
	return len(f.X)
}

// Final reports whether the frame carries the complete signals.
func (f Frame) Final() bool {
	return f.Len() == SignalLength
}

// RevealState is the value form of a reveal sequence.
type RevealState struct {
	Coefficients Coefficients
	Generation   uint64
	State        State
	Next         int // index of the next frame to emit
	Result       Result
}

// StartReveal abandons whatever prev was doing and begins a new sequence
// for c under the next generation.
func StartReveal(prev RevealState, c Coefficients) RevealState {
	return RevealState{
		Coefficients: c,
		Generation:   prev.Generation + 1,
		State:        StateComputing,
	}
}

// RevealNext emits the next prefix frame. The first call after StartReveal
// evaluates the coefficients. Once all SignalLength frames have been emitted
// the state is Idle and further calls return r unchanged and false.
func RevealNext(r RevealState) (RevealState, Frame, bool) {
	switch r.State {
	case StateIdle:
		return r, Frame{}, false
	case StateComputing:
		r = compute(r)
	}

	f := r.Result.Prefix(r.Next)
	f.Generation = r.Generation

	r.Next++
	if r.Next >= r.Result.Len() {
		r.State = StateIdle
	}
	return r, f, true
}

func compute(r RevealState) RevealState {
	r.Result = Evaluate(r.Coefficients)
	r.State = StateRevealing
	r.Next = 0
	return r
}

// Reveal drives one reveal sequence at a time for a frame-driven host.
// It is not safe for concurrent use.
type Reveal struct {
	st      RevealState
	current Frame
	emitted bool
}

// NewReveal returns an idle reveal at generation 0.
func NewReveal() *Reveal {
	return &Reveal{}
}

// Start begins revealing the evaluation of c and returns its generation.
// A sequence already in flight is abandoned: no frame of it is emitted again.
func (r *Reveal) Start(c Coefficients) uint64 {
	r.st = StartReveal(r.st, c)
	r.current = Frame{}
	r.emitted = false
	return r.st.Generation
}

// Next emits the next frame of the current sequence. It returns false once
// the sequence is complete, without changing any state.
func (r *Reveal) Next() (Frame, bool) {
	st, f, ok := RevealNext(r.st)
	if !ok {
		return Frame{}, false
	}
	r.st = st
	r.current = f
	r.emitted = true
	return f, true
}

// NextFor is Next guarded by a generation. A host that scheduled a frame
// callback under gen gets false once a newer Start has superseded it.
func (r *Reveal) NextFor(gen uint64) (Frame, bool) {
	if gen != r.st.Generation {
		return Frame{}, false
	}
	return r.Next()
}

// Accepts reports whether callbacks scheduled under gen may still run.
func (r *Reveal) Accepts(gen uint64) bool {
	return gen == r.st.Generation && r.st.State != StateIdle
}

// Current returns the last emitted frame of the current sequence and false
// if none has been emitted since the last Start.
func (r *Reveal) Current() (Frame, bool) {
	return r.current, r.emitted
}

// Result returns the full evaluation of the current sequence, computing it
// if the sequence is still in the Computing state.
func (r *Reveal) Result() Result {
	if r.st.State == StateComputing {
		r.st = compute(r.st)
	}
	return r.st.Result
}

// Coefficients returns the coefficients of the current sequence.
func (r *Reveal) Coefficients() Coefficients {
	return r.st.Coefficients
}

// State returns the phase of the current sequence.
func (r *Reveal) State() State {
	return r.st.State
}

// Generation returns the generation of the current sequence.
func (r *Reveal) Generation() uint64 {
	return r.st.Generation
}

// Done reports whether the current sequence has emitted every frame.
func (r *Reveal) Done() bool {
	return r.st.State == StateIdle
}

// Snapshot returns a copy of the value state.
func (r *Reveal) Snapshot() RevealState {
	return r.st
}
