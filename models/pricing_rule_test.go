package models

import (
	"testing"
)

func TestDecodeActionDefaults(t *testing.T) {
	cases := []struct {
		name      string
		action    []byte
		wantType  string
		wantValue float64
	}{
		{"empty action", nil, ActionTypeDiscount, 0},
		{"malformed json", []byte("{oops"), ActionTypeDiscount, 0},
		{"missing value", []byte(`{"type":"surge"}`), ActionTypeSurge, 0},
		{"missing type", []byte(`{"value":15}`), ActionTypeDiscount, 15},
		{"complete", []byte(`{"type":"surge","value":20,"unit":"percent"}`), ActionTypeSurge, 20},
		{"unknown type passes through", []byte(`{"type":"teleport","value":5}`), "teleport", 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rule := PricingRule{Action: tc.action}
			action := rule.DecodeAction()
			if action.Type != tc.wantType {
				t.Errorf("Type = %q, want %q", action.Type, tc.wantType)
			}
			if action.Value != tc.wantValue {
				t.Errorf("Value = %v, want %v", action.Value, tc.wantValue)
			}
		})
	}
}

func TestDecodeConditions(t *testing.T) {
	rule := PricingRule{Conditions: []byte(`{"days_before_checkin":3,"gap_nights":1}`)}
	cond := rule.DecodeConditions()
	if cond.DaysBeforeCheckin != 3 {
		t.Errorf("DaysBeforeCheckin = %d, want 3", cond.DaysBeforeCheckin)
	}
	if cond.GapNights != 1 {
		t.Errorf("GapNights = %d, want 1", cond.GapNights)
	}

	// Conditions hỏng không làm lỗi, trả về zero value
	broken := PricingRule{Conditions: []byte("not json")}
	if broken.DecodeConditions() != (RuleConditions{}) {
		t.Error("expected zero conditions for malformed json")
	}
}

func TestValidateRuleType(t *testing.T) {
	valid := []string{
		RuleTypeLastMinute, RuleTypeLengthOfStay, RuleTypeWeekend, RuleTypeSeasonal,
		RuleTypeGapNight, RuleTypeOrphanDay, RuleTypeEventBased, RuleTypeCustom,
	}
	for _, ruleType := range valid {
		rule := PricingRule{RuleType: ruleType}
		if err := rule.ValidateRuleType(); err != nil {
			t.Errorf("ValidateRuleType(%q) = %v, want nil", ruleType, err)
		}
	}

	rule := PricingRule{RuleType: "flash_sale"}
	if err := rule.ValidateRuleType(); err == nil {
		t.Error("expected error for unknown rule type")
	}
}
