package services

import "strings"

// Command is a discrete symbol a free-form transcript can classify to.
type Command int

const (
	// CommandAcceptBest accepts the available job with the highest
	// payout-per-distance score, resolved at dispatch time.
	CommandAcceptBest Command = iota

	// CommandDeclineCurrent declines the focused job.
	CommandDeclineCurrent

	// CommandAdvance moves the focused job one step through its lifecycle.
	CommandAdvance

	// CommandCallCounterpart initiates a call to the focused job's counterpart.
	CommandCallCounterpart

	// CommandMessageCounterpart opens a message to the focused job's counterpart.
	CommandMessageCounterpart
)

// String returns the command's symbolic name.
func (c Command) String() string {
	switch c {
	case CommandAcceptBest:
		return "accept-best"
	case CommandDeclineCurrent:
		return "decline-current"
	case CommandAdvance:
		return "advance"
	case CommandCallCounterpart:
		return "call-counterpart"
	case CommandMessageCounterpart:
		return "message-counterpart"
	default:
		return "unknown"
	}
}

// triggerSet binds one command to the phrases that trigger it.
type triggerSet struct {
	command  Command
	triggers []string
}

// triggerTable is the fixed, priority-ordered phrase table. Matching is
// case-insensitive substring containment; the first set with a hit wins.
// The advance triggers merge the navigation, arrival, pickup, completion
// and next-step phrase classes, so "I'm here" or "got it" advance the
// lifecycle without any literal "advance" phrase existing.
//
// The ordering is load-bearing: keyword matching is ambiguous ("no thanks,
// call them back" contains both a decline and a call trigger) and priority
// is the documented tie-breaker. Do not reorder or "improve" the table.
var triggerTable = []triggerSet{
	{CommandAcceptBest, []string{"accept", "take", "yes"}},
	{CommandDeclineCurrent, []string{"decline", "no", "skip"}},
	{CommandAdvance, []string{
		"navigate", "direction", "go",
		"arrived", "here",
		"picked up", "pickup", "got it",
		"delivered", "complete", "done",
		"next", "continue",
	}},
	{CommandCallCounterpart, []string{"call", "phone"}},
	{CommandMessageCounterpart, []string{"message", "text"}},
}

// IntentClassifier maps finalized transcripts to command symbols.
// It is deliberately dumb: no tokenization, no scoring, just the ordered
// substring table above. Unmatched text yields no command and no error.
type IntentClassifier struct{}

// NewIntentClassifier creates a new IntentClassifier instance.
func NewIntentClassifier() IntentClassifier {
	return IntentClassifier{}
}

// Classify returns the first command whose trigger set matches the text.
// The second return value is false when nothing matches.
func (ic IntentClassifier) Classify(text string) (Command, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return 0, false
	}

	for _, set := range triggerTable {
		for _, trigger := range set.triggers {
			if strings.Contains(normalized, trigger) {
				return set.command, true
			}
		}
	}

	return 0, false
}
