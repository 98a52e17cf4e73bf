package onboarding

import (
	"context"

	"github.com/rs/zerolog/log"
)

// RunSweep prompts every workspace member that no user group claims. Prompts
// go out sequentially; a failure partway leaves the already-sent ones sent,
// so the sweep is at-least-once by design. Returns how many members were
// prompted.
func (w *Workflow) RunSweep(ctx context.Context) (int, error) {
	roster, err := w.roster.ActiveHumans(ctx)
	if err != nil {
		w.sink.Report("sweep_roster", err)
		return 0, err
	}

	assigned, err := w.groups.AssignedUsers(ctx)
	if err != nil {
		w.sink.Report("sweep_groups", err)
		return 0, err
	}

	prompted := 0
	for _, userID := range roster {
		if _, ok := assigned[userID]; ok {
			continue
		}

		if err := w.PromptSetTeam(ctx, userID); err != nil {
			return prompted, err
		}
		prompted++
	}

	log.Info().Int("roster", len(roster)).Int("assigned", len(assigned)).Int("prompted", prompted).Msg("Unassigned-user sweep finished")
	return prompted, nil
}
