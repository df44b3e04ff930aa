package orchestrator

import (
	"context"
	"time"

	"gigboard/internal/core/domain/model/job"
	"gigboard/internal/core/domain/services"
)

// HandleTranscript feeds one utterance from the external transcription
// source into the core. Non-final transcripts only update the live
// transcript shown to the driver; a final transcript is classified and,
// when it matches a command, dispatched through the same gated actions
// the rendered controls use.
//
// While voice is disabled transcripts are dropped entirely. Unmatched
// text is silently ignored: no command, no error. The live transcript
// clears on its own a fixed delay after each final utterance; a newer
// utterance supersedes a pending clear.
func (o *Orchestrator) HandleTranscript(ctx context.Context, text string, isFinal bool) error {
	o.mu.Lock()
	if !o.ui.VoiceEnabled {
		o.mu.Unlock()
		return nil
	}
	o.ui.LiveTranscript = text
	if !isFinal {
		o.mu.Unlock()
		return nil
	}
	o.scheduleTranscriptClearLocked(text)
	o.mu.Unlock()

	command, ok := o.classifier.Classify(text)
	if !ok {
		return nil
	}

	o.logger.InfoContext(ctx, "voice command recognized", "command", command.String(), "transcript", text)
	return o.dispatch(ctx, command)
}

// dispatch executes a classified command against the current state.
// accept-best resolves its target at dispatch time, not classification
// time, so the score ranking always sees the latest worklist.
func (o *Orchestrator) dispatch(ctx context.Context, command services.Command) error {
	switch command {
	case services.CommandAcceptBest:
		best, ok := o.ranker.BestAvailable(o.Worklist())
		if !ok {
			return nil
		}
		return o.Accept(ctx, best.ID())

	case services.CommandDeclineCurrent:
		focused, ok := o.Focused()
		if !ok || focused.Status() != job.Available {
			return nil
		}
		return o.Decline(ctx, focused.ID())

	case services.CommandAdvance:
		focused, ok := o.Focused()
		if !ok {
			return nil
		}
		return o.Advance(ctx, focused.ID())

	case services.CommandCallCounterpart:
		if focused, ok := o.Focused(); ok {
			// Placing the call belongs to the phone integration outside
			// the core; the core only acknowledges the command.
			o.logger.InfoContext(ctx, "calling counterpart", "job", focused.ID(), "counterpart", focused.Details().Counterpart)
		}
		return nil

	case services.CommandMessageCounterpart:
		if focused, ok := o.Focused(); ok {
			o.logger.InfoContext(ctx, "messaging counterpart", "job", focused.ID(), "counterpart", focused.Details().Counterpart)
		}
		return nil
	}
	return nil
}

// scheduleTranscriptClearLocked arms the clear timer for the transcript
// just recorded. Must be called with the mutex held. The timer only wipes
// the transcript it was armed for, so a newer utterance is never erased
// by an older timer firing late.
func (o *Orchestrator) scheduleTranscriptClearLocked(text string) {
	if o.clearTimer != nil {
		o.clearTimer.Stop()
	}
	o.clearTimer = time.AfterFunc(o.transcriptTTL, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.ui.LiveTranscript == text {
			o.ui.LiveTranscript = ""
		}
	})
}
