package builtin

import (
	"github.com/yaklabco/ruledoc/pkg/diag"
	"github.com/yaklabco/ruledoc/pkg/lang"
	"github.com/yaklabco/ruledoc/pkg/lang/jsonlang"
	"github.com/yaklabco/ruledoc/pkg/rules"
)

var noEmptyMemberNames = ruleDef{
	meta: rules.Metadata{
		Group:    "style",
		Name:     "noEmptyMemberNames",
		Version:  "1.1.0",
		Language: lang.VariantJSON,
		Docs: "Disallow empty member names in JSON objects.\n" +
			"\n" +
			"An empty key is valid JSON but almost always a mistake, and several\n" +
			"downstream tools cannot address such members at all.\n" +
			"\n" +
			"## Examples\n" +
			"\n" +
			"### Invalid\n" +
			"\n" +
			"```json,expect_diagnostic\n" +
			"{\n" +
			"  \"\": \"some value\"\n" +
			"}\n" +
			"```\n" +
			"\n" +
			"### Valid\n" +
			"\n" +
			"```json\n" +
			"{\n" +
			"  \"name\": \"some value\"\n" +
			"}\n" +
			"```\n",
	},
	severity: diag.SeverityWarning,
	check:    checkNoEmptyMemberNames,
}

func checkNoEmptyMemberNames(doc *jsonlang.Document, report func(lang.Signal) lang.Flow) error {
	stopped := false

	jsonlang.WalkObjects(doc.Root, func(obj *jsonlang.Value) {
		if stopped {
			return
		}

		for _, member := range obj.Members {
			if member.Key != "" {
				continue
			}

			flow := report(lang.Signal{
				Diagnostic: diag.Diagnostic{
					Category: "lint/style/noEmptyMemberNames",
					Message:  "The member name is empty.",
					Span:     member.KeySpan,
				},
			})
			if flow.Stopped() {
				stopped = true
				return
			}
		}
	})

	return nil
}
