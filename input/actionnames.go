package input

import "sort"

// actionRegistry maps canonical action names to intents
// Used by the [keys] config section to resolve action strings to bindings
var actionRegistry map[string]Intent

func init() {
	actionRegistry = make(map[string]Intent, len(intentNames))
	for i, name := range intentNames {
		actionRegistry[name] = Intent(i)
	}
}

// ActionIntent resolves a canonical action name
// Returns IntentNone and false if name is unknown
func ActionIntent(name string) (Intent, bool) {
	intent, ok := actionRegistry[name]
	return intent, ok
}

// IsActionName returns true if name is a registered action
func IsActionName(name string) bool {
	_, ok := actionRegistry[name]
	return ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
