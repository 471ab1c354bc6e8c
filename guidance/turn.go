package guidance

import (
	"github.com/jacostam/guidance-core/geo"
	"github.com/jacostam/guidance-core/guidancecfg"
	"github.com/jacostam/guidance-core/model"
)

// classifyTurn implements C3 (spec.md §4.3): given the intersection view at
// a traversed node and the edges the traversal actually used, it computes
// the structural TurnInstruction. Rules are applied in the order spec.md
// enumerates them; the first one that matches decides the result, except
// for the UseLane and Notification overlays, which can retag whatever base
// decision the earlier rules made.
func classifyTurn(cfg *guidancecfg.Config, view *model.IntersectionView, in, out *model.Edge, inBearing, outBearing float64) (model.TurnInstruction, bool) {
	angle := geo.TurnAngle(inBearing, outBearing)
	modifier := bearingToModifier(cfg, angle)

	exits := view.AllowedExits()

	instr := classifyStructural(cfg, view, exits, in, out, angle, modifier)
	instr, laneChanged := applyUseLane(instr, in, out)
	instr = applyModeNotification(instr, in, out, modifier)
	return instr, laneChanged
}

// classifyStructural runs rules 1-5 of spec.md §4.3. "Degree" is the
// count of physically distinct roads at the node besides the u-turn
// candidate (view.Degree()), which can exceed the count of legally
// enterable ones (len(exits)) when turn restrictions or one-ways prune
// some away. EndOfRoad is reserved for that pruned-real-junction case; a
// node where the only physical continuation IS the sole exit (an ordinary
// bend or name change along an otherwise unbranched road) is classified
// by the same-name/bearing checks rule 2 describes instead.
func classifyStructural(cfg *guidancecfg.Config, view *model.IntersectionView, exits []model.IncidentRoad, in, out *model.Edge, angle float64, modifier model.TurnModifier) model.TurnInstruction {
	degree := view.Degree()

	if len(exits) == 1 && degree >= 2 {
		// Rule 1: a real junction where restrictions/one-ways leave
		// exactly one legal continuation.
		return model.TurnInstruction{Type: model.EndOfRoad, Modifier: modifier}
	}

	if len(exits) == 1 && in != nil && out != nil {
		// Rule 2: through-node name/bearing check (the sole exit of a
		// node with no other physical continuation).
		sameName := in.HasSameRoad(out)
		absAngle := absFloat(angle)
		if sameName && absAngle <= cfg.StraightBearingToleranceDeg {
			return model.TurnInstruction{Type: model.NoTurn, Modifier: model.Straight}
		}
		if !sameName && absAngle <= cfg.NewNameBearingToleranceDeg {
			return model.TurnInstruction{Type: model.NewName, Modifier: modifier}
		}
	}

	if len(exits) == 2 && isFork(cfg, exits) {
		// Rule 3: fork, when the two exits are similar priority and
		// straddle straight ahead.
		return model.TurnInstruction{Type: model.Fork, Modifier: forkModifier(view, exits, out)}
	}

	// Rule 4: ramp transitions.
	if rampInstr, ok := classifyRamp(view, in, out, modifier); ok {
		return rampInstr
	}

	// Rule 5: otherwise, a plain turn binned from the bearing delta.
	return model.TurnInstruction{Type: model.Turn, Modifier: modifier}
}

// bearingToModifier bins a signed turn angle (clockwise positive) into a
// TurnModifier per spec.md §4.3 rule 5.
func bearingToModifier(cfg *guidancecfg.Config, angle float64) model.TurnModifier {
	abs := absFloat(angle)
	switch {
	case abs < cfg.SlightBearingDeg:
		return model.Straight
	case abs < cfg.RightBearingDeg:
		if angle > 0 {
			return model.SlightRight
		}
		return model.SlightLeft
	case abs < cfg.SharpBearingDeg:
		if angle > 0 {
			return model.Right
		}
		return model.Left
	case abs < cfg.UTurnBearingDeg:
		if angle > 0 {
			return model.SharpRight
		}
		return model.SharpLeft
	default:
		return model.UTurn
	}
}

// isFork reports whether the two candidate exits are similar-priority roads
// straddling straight ahead (spec.md §4.3 rule 3).
func isFork(cfg *guidancecfg.Config, exits []model.IncidentRoad) bool {
	if len(exits) != 2 {
		return false
	}
	a, b := exits[0], exits[1]
	if a.Priority.ClassRank != b.Priority.ClassRank || a.Priority.IsLink != b.Priority.IsLink {
		return false
	}
	devA, devB := a.Priority.BearingDeviation, b.Priority.BearingDeviation
	return devA <= cfg.ForkBearingDeg && devB <= cfg.ForkBearingDeg
}

// forkModifier picks the fork's side based on which exit was chosen.
func forkModifier(view *model.IntersectionView, exits []model.IncidentRoad, out *model.Edge) model.TurnModifier {
	if len(exits) != 2 || out == nil {
		return model.Straight
	}
	// The exit with the smaller signed angle from straight ahead (the one
	// encountered first going clockwise from the reverse of in, which is
	// view.Roads[0]) lies to the left; the other lies to the right.
	straight := view.UTurnCandidate().Bearing + 180
	left, right := exits[0], exits[1]
	if clockwiseFromStraight(left.Bearing-straight) > clockwiseFromStraight(right.Bearing-straight) {
		left, right = right, left
	}
	if out.ID == right.Edge {
		return model.SlightRight
	}
	if out.ID == left.Edge {
		return model.SlightLeft
	}
	return model.Straight
}

func clockwiseFromStraight(bearing float64) float64 {
	d := bearing
	for d > 180 {
		d -= 360
	}
	for d < -180 {
		d += 360
	}
	return d
}

// classifyRamp implements spec.md §4.3 rule 4.
func classifyRamp(view *model.IntersectionView, in, out *model.Edge, modifier model.TurnModifier) (model.TurnInstruction, bool) {
	if in == nil || out == nil {
		return model.TurnInstruction{}, false
	}

	outLink := out.IsLink || out.HighwayClass.IsLinkClass()
	inLink := in.IsLink || in.HighwayClass.IsLinkClass()

	switch {
	case outLink && !inLink:
		return model.TurnInstruction{Type: model.OffRamp, Modifier: modifier}, true
	case inLink && !outLink:
		if mainlineContinues(view, out) {
			return model.TurnInstruction{Type: model.Merge, Modifier: modifier}, true
		}
	case inLink && outLink:
		return model.TurnInstruction{Type: model.OnRamp, Modifier: modifier}, true
	}
	return model.TurnInstruction{}, false
}

// mainlineContinues reports whether some other allowed exit at the
// intersection (besides out) continues the mainline, i.e. is not itself a
// link road - the condition spec.md §4.3 rule 4 requires for Merge.
func mainlineContinues(view *model.IntersectionView, out *model.Edge) bool {
	for i, r := range view.Roads {
		if i == 0 || !r.EntryAllowed || r.Edge == out.ID {
			continue
		}
		if !r.Priority.IsLink {
			return true
		}
	}
	return false
}

// applyUseLane implements spec.md §4.3 rule 6: when both in and out carry
// turn-lane tagging and the base instruction is a straight-ish pass
// through, retag it UseLane and record whether the lane sets actually
// differ. The collapsing engine's R6 decides whether to keep the step.
func applyUseLane(instr model.TurnInstruction, in, out *model.Edge) (model.TurnInstruction, bool) {
	if in == nil || out == nil || len(in.TurnLanes) == 0 || len(out.TurnLanes) == 0 {
		return instr, false
	}
	if instr.Type != model.NoTurn && instr.Modifier != model.Straight {
		return instr, false
	}
	changed := lanesDiffer(in.TurnLanes, out.TurnLanes)
	instr.Type = model.UseLane
	if instr.Modifier == model.ModifierNone {
		instr.Modifier = model.Straight
	}
	return instr, changed
}

// lanesDiffer reports whether two ordered lane sets carry different
// indication sets, used by UseLane's lane_description_changed flag
// (spec.md §4.3 rule 6).
func lanesDiffer(a, b []model.Lane) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if len(a[i].Indications) != len(b[i].Indications) {
			return true
		}
		for j := range a[i].Indications {
			if a[i].Indications[j] != b[i].Indications[j] {
				return true
			}
		}
	}
	return false
}

// applyModeNotification implements the mode-boundary notification variant
// described at the end of spec.md §4.3 and required by invariant I5: a
// travel-mode change must never be silently dropped, so a would-be no-op
// maneuver is upgraded to Notification.
func applyModeNotification(instr model.TurnInstruction, in, out *model.Edge, modifier model.TurnModifier) model.TurnInstruction {
	if in == nil || out == nil || in.Mode == out.Mode {
		return instr
	}
	if instr.Type == model.NoTurn || (instr.Type == model.NewName && instr.Modifier == model.Straight) {
		return model.TurnInstruction{Type: model.Notification, Modifier: modifier}
	}
	return instr
}
