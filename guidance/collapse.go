package guidance

import (
	"github.com/jacostam/guidance-core/geo"
	"github.com/jacostam/guidance-core/guidancecfg"
	"github.com/jacostam/guidance-core/model"
)

// collapse implements C5 (spec.md §4.5): a fixed-point local-rewrite pass
// over the step list. Each full scan tries every rule, in priority order,
// at the leftmost window it hasn't already consumed; the pass stops when a
// scan makes no change. Every rule strictly shrinks the step count, so the
// loop terminates.
func collapse(cfg *guidancecfg.Config, steps []*model.Step) []*model.Step {
	markImportant(steps)

	for {
		next, changed := collapseScan(cfg, steps)
		steps = next
		if !changed {
			return steps
		}
	}
}

// markImportant implements R7 (spec.md §4.5 rule 7): a step is exempt from
// the name-change suppression rules R4/R5 when its intersection view shows
// another allowed exit whose priority is at least as good as the one taken.
func markImportant(steps []*model.Step) {
	for _, s := range steps {
		if s.View == nil {
			continue
		}
		chosen := s.View.Out()
		if other, ok := s.View.HighestPriorityOtherThan(s.View.OutIdx); ok {
			if !chosen.Priority.Less(other.Priority) {
				s.Important = true
			}
		}
	}
}

// ruleFn attempts to match the rule at window start i, returning how many
// leading steps it consumed and their replacement when it matches.
type ruleFn func(cfg *guidancecfg.Config, steps []*model.Step, i int) ([]*model.Step, int, bool)

// rules runs in this exact priority order at every window (spec.md §4.5:
// "rules are tried in fixed numeric order at the leftmost applicable
// window").
var rules = []ruleFn{
	ruleSegregatedPairMerge, // R1 (R2 folded in: forced u-turn variant)
	ruleSliproadCollapse,    // R3
	ruleNameChangeSuppression, // R4
	ruleSilentNameChange,    // R5
	ruleUseLaneSuppression,  // R6
	ruleRampChain,           // R9
}

func collapseScan(cfg *guidancecfg.Config, steps []*model.Step) ([]*model.Step, bool) {
	result := make([]*model.Step, 0, len(steps))
	changed := false

	i := 0
	for i < len(steps) {
		matched := false
		for _, rule := range rules {
			replacement, consumed, ok := rule(cfg, steps, i)
			if !ok {
				continue
			}
			result = append(result, replacement...)
			i += consumed
			changed = true
			matched = true
			break
		}
		if matched {
			continue
		}
		result = append(result, steps[i])
		i++
	}

	return result, changed
}

func isVerySlight(m model.TurnModifier) bool {
	return m == model.Straight || m == model.SlightLeft || m == model.SlightRight
}

func oppositeSides(a, b model.TurnModifier) bool {
	return (a.IsRight() && b.IsLeft()) || (a.IsLeft() && b.IsRight())
}

func sameModeBoundary(a, b *model.Step) bool {
	return a.Mode == b.Mode
}

// netBearingChange estimates the overall direction change across a merged
// pair of steps from their recorded entry/arrival locations.
func netBearingChange(a, b *model.Step) float64 {
	inBearing := geo.Bearing(a.EntryLocation, a.ArrivalLocation)
	outBearing := geo.Bearing(b.EntryLocation, b.ArrivalLocation)
	return geo.TurnAngle(inBearing, outBearing)
}

// ruleSegregatedPairMerge implements R1, with R2's forced-u-turn variant
// folded into the decision of what the merged instruction becomes
// (spec.md §4.5 rules 1-2).
func ruleSegregatedPairMerge(cfg *guidancecfg.Config, steps []*model.Step, i int) ([]*model.Step, int, bool) {
	if i+1 >= len(steps) {
		return nil, 0, false
	}
	sk, sk1 := steps[i], steps[i+1]

	if !sameModeBoundary(sk, sk1) {
		return nil, 0, false
	}
	switch sk.Instruction.Type {
	case model.Turn, model.Fork, model.EndOfRoad, model.NewName:
	default:
		return nil, 0, false
	}
	if sk1.Instruction.Type != model.Turn && sk1.Instruction.Type != model.NewName {
		return nil, 0, false
	}
	if sk1.Distance >= cfg.SegregatedPairMaxMeters {
		return nil, 0, false
	}
	if sk.Name == "" || sk.Name != sk1.Name {
		return nil, 0, false
	}
	if !oppositeSides(sk.Instruction.Modifier, sk1.Instruction.Modifier) {
		return nil, 0, false
	}

	angle := netBearingChange(sk, sk1)
	merged := sk.Clone().MergeInto(sk1)

	// sk.Name == sk1.Name was already required above, so the destination
	// always lies on the same named road the pair shares; R2 only needs
	// the bearing check.
	if absFloat(angle) >= cfg.UTurnAntiParallelDeg {
		merged.Instruction = model.TurnInstruction{Type: model.Continue, Modifier: model.UTurn}
	} else {
		merged.Instruction = model.TurnInstruction{Type: model.Turn, Modifier: bearingToModifier(cfg, angle)}
		merged.Name = sk1.Name
	}

	return []*model.Step{merged}, 2, true
}

// ruleSliproadCollapse implements R3 (spec.md §4.5 rule 3): a short link
// step immediately followed by a step that rejoins the mainline collapses
// into a single Turn named for the cross street.
func ruleSliproadCollapse(cfg *guidancecfg.Config, steps []*model.Step, i int) ([]*model.Step, int, bool) {
	if i+1 >= len(steps) {
		return nil, 0, false
	}
	sk, sk1 := steps[i], steps[i+1]

	if !sameModeBoundary(sk, sk1) {
		return nil, 0, false
	}
	if !sk.IsLink || sk.Distance >= cfg.SliproadMaxMeters {
		return nil, 0, false
	}
	if sk1.IsLink {
		return nil, 0, false
	}

	merged := sk.Clone().MergeInto(sk1)
	merged.Instruction = model.TurnInstruction{Type: model.Turn, Modifier: sk1.Instruction.Modifier}
	merged.Name = sk1.Name
	merged.Ref = sk1.Ref
	merged.IsSliproad = true

	return []*model.Step{merged}, 2, true
}

// ruleNameChangeSuppression implements R4 (spec.md §4.5 rule 4): a
// near-straight, same-mode middle step (of any length) whose name is just a transient
// label (an unnamed gap between two matching-named roads, or a named
// segment like a bridge sandwiched between two unnamed ones) gets dropped
// rather than surfaced as its own maneuver.
func ruleNameChangeSuppression(cfg *guidancecfg.Config, steps []*model.Step, i int) ([]*model.Step, int, bool) {
	if i+2 >= len(steps) {
		return nil, 0, false
	}
	sk, sk1, sk2 := steps[i], steps[i+1], steps[i+2]

	if sk1.Important {
		return nil, 0, false
	}
	if sk.Name != sk2.Name || sk1.Name == sk.Name {
		return nil, 0, false
	}
	if !isVerySlight(sk1.Instruction.Modifier) {
		return nil, 0, false
	}
	if sk.Mode != sk1.Mode || sk1.Mode != sk2.Mode {
		return nil, 0, false
	}

	merged := sk.Clone().MergeInto(sk1).MergeInto(sk2)
	return []*model.Step{merged}, 3, true
}

// ruleSilentNameChange implements R5 (spec.md §4.5 rule 5): adjacent steps
// on the same named road with a no-op boundary between them merge.
func ruleSilentNameChange(cfg *guidancecfg.Config, steps []*model.Step, i int) ([]*model.Step, int, bool) {
	if i+1 >= len(steps) {
		return nil, 0, false
	}
	sk, sk1 := steps[i], steps[i+1]

	if sk1.Important {
		return nil, 0, false
	}
	if sk.Name != sk1.Name || sk.Ref != sk1.Ref || !sameModeBoundary(sk, sk1) {
		return nil, 0, false
	}
	straightBoundary := sk1.Instruction.Type == model.NoTurn ||
		(sk1.Instruction.Type == model.Turn && sk1.Instruction.Modifier == model.Straight)
	if !straightBoundary {
		return nil, 0, false
	}

	merged := sk.Clone().MergeInto(sk1)
	return []*model.Step{merged}, 2, true
}

// ruleUseLaneSuppression implements R6 (spec.md §4.5 rule 6): a UseLane
// step whose lane description did not actually change merges into its
// predecessor.
func ruleUseLaneSuppression(cfg *guidancecfg.Config, steps []*model.Step, i int) ([]*model.Step, int, bool) {
	if i+1 >= len(steps) {
		return nil, 0, false
	}
	sk, sk1 := steps[i], steps[i+1]

	if sk1.Instruction.Type != model.UseLane || sk1.LaneDescriptionChanged {
		return nil, 0, false
	}
	if !sameModeBoundary(sk, sk1) {
		return nil, 0, false
	}

	merged := sk.Clone().MergeInto(sk1)
	return []*model.Step{merged}, 2, true
}

// ruleRampChain implements R9 (spec.md §4.5 rule 9): an OnRamp immediately
// followed by a Merge onto the same mainline collapses to the Merge alone.
func ruleRampChain(cfg *guidancecfg.Config, steps []*model.Step, i int) ([]*model.Step, int, bool) {
	if i+1 >= len(steps) {
		return nil, 0, false
	}
	sk, sk1 := steps[i], steps[i+1]

	if sk.Instruction.Type != model.OnRamp || sk1.Instruction.Type != model.Merge {
		return nil, 0, false
	}
	if !sameModeBoundary(sk, sk1) {
		return nil, 0, false
	}

	merged := sk.Clone().MergeInto(sk1)
	merged.Instruction = sk1.Instruction
	merged.Name = sk1.Name
	merged.Ref = sk1.Ref
	return []*model.Step{merged}, 2, true
}
