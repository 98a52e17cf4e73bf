package onboarding

import "github.com/rs/zerolog/log"

// ErrorSink receives workflow failures that are swallowed rather than
// surfaced to the requester. Integrators can inject their own to upgrade
// visibility without touching the workflow.
type ErrorSink interface {
	Report(stage string, err error)
}

type logSink struct{}

func (logSink) Report(stage string, err error) {
	log.Error().Err(err).Str("stage", stage).Msg("Onboarding step failed")
}
