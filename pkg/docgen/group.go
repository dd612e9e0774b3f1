package docgen

// NurseryGroup is the group holding rules still under development. It is
// always rendered last and its rules are never marked recommended.
const NurseryGroup = "nursery"

type groupInfo struct {
	title       string
	description string
}

var groupTable = map[string]groupInfo{
	"a11y": {
		title:       "Accessibility",
		description: "Rules focused on preventing accessibility problems.",
	},
	"complexity": {
		title:       "Complexity",
		description: "Rules that focus on inspecting complex code that could be simplified.",
	},
	"correctness": {
		title:       "Correctness",
		description: "Rules that detect code that is guaranteed to be incorrect or useless.",
	},
	NurseryGroup: {
		title: "Nursery",
		description: "New rules that are still under development.\n\n" +
			"Nursery rules require explicit opt-in via configuration on stable versions because they may still have bugs or performance problems.\n" +
			"Their diagnostic severity may be set to either error or warning, depending on whether we intend for the rule to be recommended\n" +
			"or not when it eventually gets stabilized. Nursery rules get promoted to other groups once they become stable or may be removed.\n\n" +
			"Rules that belong to this group _are not subject to semantic version_.",
	},
	"performance": {
		title:       "Performance",
		description: "Rules catching ways your code could be written to run faster, or generally be more efficient.",
	},
	"security": {
		title:       "Security",
		description: "Rules that detect potential security flaws.",
	},
	"style": {
		title:       "Style",
		description: "Rules enforcing a consistent and idiomatic way of writing your code.",
	},
	"suspicious": {
		title:       "Suspicious",
		description: "Rules that detect code that is likely to be incorrect or useless.",
	},
}

// GroupMetadata returns the display title and description for a rule group.
// The second return is false for groups the generator does not know about.
func GroupMetadata(group string) (string, string, bool) {
	info, ok := groupTable[group]
	if !ok {
		return "", "", false
	}
	return info.title, info.description, true
}
