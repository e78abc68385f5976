package activity

import "github.com/specialistvlad/casegrid/internal/controlrule"

// PropertyKey is a key of the activity property bag.
type PropertyKey string

const (
	PropActivityType           PropertyKey = "activityType"
	PropDescription            PropertyKey = "description"
	PropDiscretionary          PropertyKey = "discretionary"
	PropRequiredRule           PropertyKey = "requiredRule"
	PropRepetitionRule         PropertyKey = "repetitionRule"
	PropManualActivationRule   PropertyKey = "manualActivationRule"
	PropAutoComplete           PropertyKey = "autoComplete"
	PropIsBlocking             PropertyKey = "isBlocking"
	PropRepeatOnStandardEvents PropertyKey = "repeatOnStandardEvents"
)

// PropertyKeys returns the closed set of property keys in a stable order.
func PropertyKeys() []PropertyKey {
	return []PropertyKey{
		PropActivityType, PropDescription, PropDiscretionary,
		PropRequiredRule, PropRepetitionRule, PropManualActivationRule,
		PropAutoComplete, PropIsBlocking, PropRepeatOnStandardEvents,
	}
}

// Property returns the value stored under key.
func (a *Activity) Property(key PropertyKey) (any, bool) {
	v, ok := a.properties[key]
	return v, ok
}

// SetProperty stores value under key.
func (a *Activity) SetProperty(key PropertyKey, value any) {
	a.properties[key] = value
}

func (a *Activity) stringProperty(key PropertyKey) string {
	s, _ := a.properties[key].(string)
	return s
}

func (a *Activity) boolProperty(key PropertyKey) bool {
	b, _ := a.properties[key].(bool)
	return b
}

func (a *Activity) ruleProperty(key PropertyKey) *controlrule.Rule {
	r, _ := a.properties[key].(*controlrule.Rule)
	return r
}

func (a *Activity) ActivityType() string  { return a.stringProperty(PropActivityType) }
func (a *Activity) Description() string   { return a.stringProperty(PropDescription) }
func (a *Activity) IsDiscretionary() bool { return a.boolProperty(PropDiscretionary) }
func (a *Activity) AutoComplete() bool    { return a.boolProperty(PropAutoComplete) }
func (a *Activity) IsBlocking() bool      { return a.boolProperty(PropIsBlocking) }

func (a *Activity) RequiredRule() *controlrule.Rule   { return a.ruleProperty(PropRequiredRule) }
func (a *Activity) RepetitionRule() *controlrule.Rule { return a.ruleProperty(PropRepetitionRule) }
func (a *Activity) ManualActivationRule() *controlrule.Rule {
	return a.ruleProperty(PropManualActivationRule)
}

// RepeatOnStandardEvents returns the events that trigger a repetition, or
// nil when the activity has no repetition rule.
func (a *Activity) RepeatOnStandardEvents() []string {
	events, _ := a.properties[PropRepeatOnStandardEvents].([]string)
	return events
}
