package model

// TurnType is the structural classification of a maneuver (spec.md §3).
type TurnType int8

const (
	NoTurn TurnType = iota
	Depart
	Arrive
	NewName
	Continue
	Turn
	Merge
	OnRamp
	OffRamp
	Fork
	EndOfRoad
	Notification
	RoundaboutEnter
	RoundaboutExit
	UseLane
	Suppressed
)

func (t TurnType) String() string {
	switch t {
	case NoTurn:
		return "no turn"
	case Depart:
		return "depart"
	case Arrive:
		return "arrive"
	case NewName:
		return "new name"
	case Continue:
		return "continue"
	case Turn:
		return "turn"
	case Merge:
		return "merge"
	case OnRamp:
		return "on ramp"
	case OffRamp:
		return "off ramp"
	case Fork:
		return "fork"
	case EndOfRoad:
		return "end of road"
	case Notification:
		return "notification"
	case RoundaboutEnter:
		return "roundabout"
	case RoundaboutExit:
		return "exit roundabout"
	case UseLane:
		return "use lane"
	case Suppressed:
		return "suppressed"
	default:
		return "unknown"
	}
}

// TurnModifier qualifies a TurnType with a geometric direction.
type TurnModifier int8

const (
	ModifierNone TurnModifier = iota
	UTurn
	SharpRight
	Right
	SlightRight
	Straight
	SlightLeft
	Left
	SharpLeft
)

func (m TurnModifier) String() string {
	switch m {
	case UTurn:
		return "uturn"
	case SharpRight:
		return "sharp right"
	case Right:
		return "right"
	case SlightRight:
		return "slight right"
	case Straight:
		return "straight"
	case SlightLeft:
		return "slight left"
	case Left:
		return "left"
	case SharpLeft:
		return "sharp left"
	default:
		return ""
	}
}

// IsRight reports whether the modifier leans to the right of straight.
func (m TurnModifier) IsRight() bool {
	switch m {
	case SlightRight, Right, SharpRight:
		return true
	default:
		return false
	}
}

// IsLeft reports whether the modifier leans to the left of straight.
func (m TurnModifier) IsLeft() bool {
	switch m {
	case SlightLeft, Left, SharpLeft:
		return true
	default:
		return false
	}
}

// rank orders modifiers by how sharp they are.
func (m TurnModifier) rank() int {
	switch m {
	case Straight:
		return 0
	case SlightRight, SlightLeft:
		return 1
	case Right, Left:
		return 2
	case SharpRight, SharpLeft:
		return 3
	case UTurn:
		return 4
	default:
		return 0
	}
}

// ModifierRank exposes TurnModifier.rank to the collapsing engine.
func ModifierRank(m TurnModifier) int { return m.rank() }

// TurnInstruction is the (type, modifier) pair emitted per traversed node
// (spec.md §3). Depart and Arrive never carry a meaningful modifier beyond
// entry/arrival side, which callers track separately on the Maneuver.
type TurnInstruction struct {
	Type     TurnType
	Modifier TurnModifier
}

// RoadPriority is the lexicographic rank computed by the road classifier
// (C1, spec.md §4.1): highway class first, then link status, then name
// identity with the arrival edge, then lane count, with bearing deviation
// from straight as the final tiebreaker.
type RoadPriority struct {
	ClassRank        HighwayClass
	IsLink           bool
	SameNameAsArrival bool
	Lanes            uint8
	BearingDeviation float64
}

// Less reports whether p is strictly higher priority than other (spec.md
// §4.1's lexicographic order: lower class rank wins, non-link beats link,
// same-name beats different, more lanes beats fewer, smaller bearing
// deviation from straight wins ties).
func (p RoadPriority) Less(other RoadPriority) bool {
	if p.ClassRank != other.ClassRank {
		return p.ClassRank < other.ClassRank
	}
	if p.IsLink != other.IsLink {
		return !p.IsLink
	}
	if p.SameNameAsArrival != other.SameNameAsArrival {
		return p.SameNameAsArrival
	}
	if p.Lanes != other.Lanes {
		return p.Lanes > other.Lanes
	}
	return p.BearingDeviation < other.BearingDeviation
}

// IncidentRoad is one entry in an IntersectionView: an incident edge, its
// bearing relative to the arrival edge, whether it may legally be entered,
// and its computed priority.
type IncidentRoad struct {
	Edge         EdgeRef
	Bearing      float64
	EntryAllowed bool
	Priority     RoadPriority
}

// IntersectionView is the ordered set of incident roads at a traversed
// node, sorted clockwise by bearing from the reverse of the arrival edge
// (spec.md §3). Roads[0] is always the reverse of the arrival edge.
type IntersectionView struct {
	Roads  []IncidentRoad
	OutIdx int
}

// Out returns the chosen departure road.
func (v *IntersectionView) Out() IncidentRoad {
	return v.Roads[v.OutIdx]
}

// UTurnCandidate returns the reverse-of-arrival road, always at index 0.
func (v *IntersectionView) UTurnCandidate() IncidentRoad {
	return v.Roads[0]
}

// Degree returns the number of incident roads excluding the reverse of the
// arrival edge, i.e. the number of roads a driver could continue onto.
func (v *IntersectionView) Degree() int {
	if len(v.Roads) == 0 {
		return 0
	}
	return len(v.Roads) - 1
}

// AllowedExits returns the incident roads, other than the arrival reverse,
// that may legally be entered.
func (v *IntersectionView) AllowedExits() []IncidentRoad {
	var out []IncidentRoad
	for i, r := range v.Roads {
		if i == 0 {
			continue
		}
		if r.EntryAllowed {
			out = append(out, r)
		}
	}
	return out
}

// HighestPriorityOtherThan returns the best-priority allowed exit other
// than the one at index idx, and whether one exists. It is used by R7 to
// decide whether a step is "important" (spec.md §4.5 rule 7).
func (v *IntersectionView) HighestPriorityOtherThan(idx int) (IncidentRoad, bool) {
	var best IncidentRoad
	found := false
	for i, r := range v.Roads {
		if i == 0 || i == idx || !r.EntryAllowed {
			continue
		}
		if !found || r.Priority.Less(best.Priority) {
			best = r
			found = true
		}
	}
	return best, found
}
