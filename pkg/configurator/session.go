package configurator

// Status is the lifecycle of one configuration attempt.
type Status string

const (
	StatusUnstarted  Status = "unstarted"
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
)

// Session is the full state of a single shopper's configuration
// attempt: answers, quantity, the derived active flow and the current
// step. It is a value; the reducer returns updated copies so no handler
// ever mutates shared state.
type Session struct {
	ID           string            `json:"id,omitempty"`
	ProductID    string            `json:"productId,omitempty"`
	Selections   map[string]string `json:"selections"`
	Measurements map[string]int    `json:"measurements"`
	Quantity     int               `json:"quantity"`
	ActiveFlow   []string          `json:"activeFlow"`
	CurrentStep  string            `json:"currentStep,omitempty"`
	Status       Status            `json:"status"`

	// Extra carries whitelisted external URL parameters verbatim
	// (product handle, display image, color). Opaque to the engine.
	Extra map[string]string `json:"-"`
}

// Event is an input event applied to a session via Apply.
type Event interface{ isEvent() }

// SelectOption answers an options step.
type SelectOption struct {
	StepKey string
	Value   string
}

// SetMeasurement records one measurement field in millimeters.
type SetMeasurement struct {
	Field string
	Value int
}

// SetQuantity sets the order quantity (clamped to at least 1).
type SetQuantity struct {
	Quantity int
}

// Advance moves to the next step, gated by validation of the current
// one. Advancing past the last flow step completes the session.
type Advance struct{}

// Back navigates to the previous step without invalidating anything.
type Back struct{}

func (SelectOption) isEvent()   {}
func (SetMeasurement) isEvent() {}
func (SetQuantity) isEvent()    {}
func (Advance) isEvent()        {}
func (Back) isEvent()           {}

// NewSession creates an empty session positioned on the first step of
// the full declared flow.
func NewSession(cfg *Config) Session {
	s := Session{
		ProductID:    cfg.Product.ID,
		Selections:   map[string]string{},
		Measurements: map[string]int{},
		Quantity:     1,
		ActiveFlow:   InitialFlow(cfg),
		Status:       StatusUnstarted,
	}
	if len(s.ActiveFlow) > 0 {
		s.CurrentStep = s.ActiveFlow[0]
	}
	return s
}

// Apply is the reducer: (state, event) -> state. It never fails; an
// event that is not applicable (unknown step, invalid current step on
// Advance) leaves the state unchanged.
func Apply(cfg *Config, s Session, ev Event) Session {
	switch e := ev.(type) {
	case SelectOption:
		return applySelection(cfg, s, e)
	case SetMeasurement:
		return applyMeasurement(cfg, s, e)
	case SetQuantity:
		next := clone(s)
		if e.Quantity < 1 {
			e.Quantity = 1
		}
		next.Quantity = e.Quantity
		return touch(next)
	case Advance:
		return applyAdvance(cfg, s)
	case Back:
		next := clone(s)
		if prev, ok := PrevStepKey(s.ActiveFlow, s.CurrentStep); ok {
			next.CurrentStep = prev
		}
		if next.Status == StatusComplete {
			next.Status = StatusInProgress
		}
		return next
	}
	return s
}

func applySelection(cfg *Config, s Session, e SelectOption) Session {
	step := cfg.StepByKey(e.StepKey)
	if step == nil || step.Type != StepTypeOptions {
		return s
	}
	// Steps outside the active flow are inert: an answer for an
	// unreachable step must not be recorded, priced or encoded.
	if !InFlow(s.ActiveFlow, e.StepKey) {
		return s
	}
	opt := step.OptionByValue(e.Value)
	if opt == nil {
		return s
	}

	next := clone(s)
	next.Selections[e.StepKey] = e.Value

	// A branching option replaces the remaining flow and clears every
	// answer that the new flow no longer reaches. Switching the
	// top-level choice must not leak state from the abandoned branch.
	if opt.NextStepKeys != nil {
		next.ActiveFlow = branchFlow(e.StepKey, opt.NextStepKeys)
		for key := range next.Selections {
			if !InFlow(next.ActiveFlow, key) {
				delete(next.Selections, key)
			}
		}
		next.Measurements = map[string]int{}
		next.CurrentStep = e.StepKey
	}

	return touch(next)
}

func applyMeasurement(cfg *Config, s Session, e SetMeasurement) Session {
	if e.Field != FieldWidth && e.Field != FieldHeight {
		return s
	}
	if !measurementInFlow(cfg, s.ActiveFlow) {
		return s
	}
	next := clone(s)
	if e.Value == 0 {
		delete(next.Measurements, e.Field)
	} else {
		next.Measurements[e.Field] = e.Value
	}
	return touch(next)
}

func applyAdvance(cfg *Config, s Session) Session {
	step := cfg.StepByKey(s.CurrentStep)
	if !StepValid(step, s) {
		return s
	}

	next := clone(s)
	if key, ok := NextStepKey(s.ActiveFlow, s.CurrentStep); ok {
		next.CurrentStep = key
		next.Status = StatusInProgress
	} else {
		next.Status = StatusComplete
	}
	return next
}

// Rehydrate rebuilds the derived flow of a decoded session by replaying
// its selections in declared step order, then repositions the current
// step on the first unanswered flow step.
func Rehydrate(cfg *Config, s Session) Session {
	next := NewSession(cfg)
	next.ID = s.ID
	next.Quantity = s.Quantity
	next.Extra = s.Extra

	for _, step := range cfg.Steps {
		if value, ok := s.Selections[step.Key]; ok {
			next = Apply(cfg, next, SelectOption{StepKey: step.Key, Value: value})
		}
	}
	for field, value := range s.Measurements {
		next = Apply(cfg, next, SetMeasurement{Field: field, Value: value})
	}
	if s.Quantity >= 1 {
		next.Quantity = s.Quantity
	}

	for _, key := range next.ActiveFlow {
		next.CurrentStep = key
		if !StepValid(cfg.StepByKey(key), next) {
			break
		}
	}
	return next
}

// measurementInFlow reports whether the active flow still reaches a
// measurement step.
func measurementInFlow(cfg *Config, flow []string) bool {
	for _, key := range flow {
		if step := cfg.StepByKey(key); step != nil && step.Type == StepTypeMeasurement {
			return true
		}
	}
	return false
}

func touch(s Session) Session {
	if s.Status == StatusUnstarted {
		s.Status = StatusInProgress
	}
	return s
}

func clone(s Session) Session {
	next := s
	next.Selections = make(map[string]string, len(s.Selections))
	for k, v := range s.Selections {
		next.Selections[k] = v
	}
	next.Measurements = make(map[string]int, len(s.Measurements))
	for k, v := range s.Measurements {
		next.Measurements[k] = v
	}
	next.ActiveFlow = append([]string(nil), s.ActiveFlow...)
	if s.Extra != nil {
		next.Extra = make(map[string]string, len(s.Extra))
		for k, v := range s.Extra {
			next.Extra[k] = v
		}
	}
	return next
}
