package guidance

import (
	"testing"

	"github.com/jacostam/guidance-core/guidancecfg"
	"github.com/jacostam/guidance-core/model"
)

func TestRuleUseLaneSuppressionDropsUnchangedLaneStep(t *testing.T) {
	cfg := guidancecfg.DefaultConfig()
	sk := &model.Step{Name: "Main Street", Distance: 500}
	sk1 := &model.Step{
		Name:                   "Main Street",
		Distance:               20,
		Instruction:            model.TurnInstruction{Type: model.UseLane, Modifier: model.Straight},
		LaneDescriptionChanged: false,
	}
	steps := []*model.Step{sk, sk1}

	replacement, consumed, ok := ruleUseLaneSuppression(cfg, steps, 0)
	if !ok {
		t.Fatal("expected the UseLane step to be suppressed")
	}
	if consumed != 2 {
		t.Fatalf("expected to consume 2 steps, got %d", consumed)
	}
	if len(replacement) != 1 {
		t.Fatalf("expected a single merged step, got %d", len(replacement))
	}
	if replacement[0].Distance != 520 {
		t.Errorf("expected merged distance 520, got %v", replacement[0].Distance)
	}
}

func TestRuleUseLaneSuppressionKeepsChangedLaneStep(t *testing.T) {
	cfg := guidancecfg.DefaultConfig()
	sk := &model.Step{Name: "Main Street"}
	sk1 := &model.Step{
		Name:                   "Main Street",
		Instruction:            model.TurnInstruction{Type: model.UseLane, Modifier: model.Straight},
		LaneDescriptionChanged: true,
	}
	steps := []*model.Step{sk, sk1}

	if _, _, ok := ruleUseLaneSuppression(cfg, steps, 0); ok {
		t.Fatal("a lane step whose description actually changed must not be suppressed")
	}
}

func TestRuleSilentNameChangeMergesStraightBoundary(t *testing.T) {
	cfg := guidancecfg.DefaultConfig()
	sk := &model.Step{Name: "Oak Street", Ref: "A1", Distance: 200}
	sk1 := &model.Step{
		Name:        "Oak Street",
		Ref:         "A1",
		Distance:    80,
		Instruction: model.TurnInstruction{Type: model.NoTurn, Modifier: model.Straight},
	}
	steps := []*model.Step{sk, sk1}

	replacement, consumed, ok := ruleSilentNameChange(cfg, steps, 0)
	if !ok {
		t.Fatal("expected a no-op boundary on the same named road to merge")
	}
	if consumed != 2 {
		t.Fatalf("expected to consume 2 steps, got %d", consumed)
	}
	if replacement[0].Distance != 280 {
		t.Errorf("expected merged distance 280, got %v", replacement[0].Distance)
	}
}

func TestRuleSilentNameChangeKeepsRightTurnBoundary(t *testing.T) {
	cfg := guidancecfg.DefaultConfig()
	sk := &model.Step{Name: "Oak Street"}
	sk1 := &model.Step{
		Name:        "Oak Street",
		Instruction: model.TurnInstruction{Type: model.Turn, Modifier: model.Right},
	}
	steps := []*model.Step{sk, sk1}

	// A real turn boundary is never "silent", regardless of name match.
	if _, _, ok := ruleSilentNameChange(cfg, steps, 0); ok {
		t.Fatal("a Turn+Right boundary must not be treated as a silent name change")
	}
}
