package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"STEP", ActionStep},
		{"step", ActionStep},
		{"Melee", ActionMelee},
		{"ZAP", ActionZap},
		{"pickup", ActionPickUp},
		{"MOVE", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	for name, action := range actionStringToCmd {
		if got := action.String(); got != name {
			t.Errorf("ActionType(%d).String() = %q, want %q", action, got, name)
		}
	}
	if got := ActionUnknown.String(); got != "UNKNOWN" {
		t.Errorf("ActionUnknown.String() = %q", got)
	}
}

func TestActionType_SpendsTurn(t *testing.T) {
	if ActionInit.SpendsTurn() {
		t.Error("INIT must not advance the world")
	}
	if !ActionIdle.SpendsTurn() {
		t.Error("IDLE must advance the world")
	}
}
