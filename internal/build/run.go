package build

import (
	"context"
	"fmt"
)

// Report summarizes the dispatch of a spawn plan.
type Report struct {
	Requested int      `json:"requested"`
	Spawned   int      `json:"spawned"`
	Failed    int      `json:"failed"`
	Actors    []string `json:"actors,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

// Progress is called after each spawn dispatch with the number of
// spawns attempted so far and the plan size.
type Progress func(done, total int)

// Run dispatches every spawn in the plan. Individual failures are
// recorded and skipped so a partial structure still comes out; only
// context cancellation stops the run early.
func Run(ctx context.Context, s Sender, plan []Spawn) Report {
	return RunProgress(ctx, s, plan, nil)
}

// RunProgress is Run with a progress callback.
func RunProgress(ctx context.Context, s Sender, plan []Spawn, progress Progress) Report {
	rep := Report{Requested: len(plan)}
	for i, sp := range plan {
		if err := ctx.Err(); err != nil {
			rep.Errors = append(rep.Errors,
				fmt.Sprintf("%s: canceled: %v", sp.Name, err))
			rep.Failed = rep.Requested - rep.Spawned
			return rep
		}
		resp := s.Send(ctx, "spawn_actor", sp.params())
		if resp.IsError() {
			rep.Failed++
			rep.Errors = append(rep.Errors,
				fmt.Sprintf("%s: %s", sp.Name, resp.ErrorMessage()))
		} else {
			rep.Spawned++
			rep.Actors = append(rep.Actors, sp.Name)
		}
		if progress != nil {
			progress(i+1, len(plan))
		}
	}
	return rep
}
