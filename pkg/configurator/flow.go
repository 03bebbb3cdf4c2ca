package configurator

// InitialFlow returns all step keys in their declared order. This is
// the active flow before any branching selection was made.
func InitialFlow(cfg *Config) []string {
	flow := make([]string, len(cfg.Steps))
	for i, step := range cfg.Steps {
		flow[i] = step.Key
	}
	return flow
}

// NextStepKey returns the key following current in the active flow.
// ok is false when current is the last element or not part of the flow
// at all; both cases mean the flow is done and the summary renders.
func NextStepKey(flow []string, current string) (next string, ok bool) {
	idx := indexOf(flow, current)
	if idx == -1 || idx == len(flow)-1 {
		return "", false
	}
	return flow[idx+1], true
}

// PrevStepKey returns the key preceding current in the active flow.
func PrevStepKey(flow []string, current string) (prev string, ok bool) {
	idx := indexOf(flow, current)
	if idx <= 0 {
		return "", false
	}
	return flow[idx-1], true
}

// IsLastStep reports whether key is the final element of the flow. A
// key outside the flow counts as last: the step is inert and advancing
// from it completes the configuration.
func IsLastStep(flow []string, key string) bool {
	idx := indexOf(flow, key)
	return idx == -1 || idx == len(flow)-1
}

// InFlow reports whether key participates in the active flow. Steps
// outside the flow are excluded from summaries, pricing triggers and
// the completion check.
func InFlow(flow []string, key string) bool {
	return indexOf(flow, key) != -1
}

// branchFlow computes the replacement flow for a branching selection:
// the selecting step first, then exactly the option's next step keys in
// order.
func branchFlow(stepKey string, nextStepKeys []string) []string {
	flow := make([]string, 0, len(nextStepKeys)+1)
	flow = append(flow, stepKey)
	flow = append(flow, nextStepKeys...)
	return flow
}

func indexOf(flow []string, key string) int {
	for i, k := range flow {
		if k == key {
			return i
		}
	}
	return -1
}
