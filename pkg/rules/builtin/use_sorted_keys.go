package builtin

import (
	"fmt"

	"github.com/yaklabco/ruledoc/pkg/diag"
	"github.com/yaklabco/ruledoc/pkg/lang"
	"github.com/yaklabco/ruledoc/pkg/lang/jsonlang"
	"github.com/yaklabco/ruledoc/pkg/rules"
)

var useSortedKeys = ruleDef{
	meta: rules.Metadata{
		Group:      "nursery",
		Name:       "useSortedKeys",
		Version:    "1.2.0",
		Language:   lang.VariantJSON,
		Sources:    []rules.SourceRef{{Linter: "eslint", Rule: "sort-keys"}},
		SourceKind: rules.SourceInspired,
		Docs: "Require JSON object members to be sorted by key.\n" +
			"\n" +
			"Sorted keys keep large configuration files diffable and make it easy\n" +
			"to spot a member at a glance. The first member that breaks the order\n" +
			"is reported.\n" +
			"\n" +
			"## Examples\n" +
			"\n" +
			"### Invalid\n" +
			"\n" +
			"```json,expect_diagnostic\n" +
			"{\n" +
			"  \"version\": 1,\n" +
			"  \"name\": \"example\"\n" +
			"}\n" +
			"```\n" +
			"\n" +
			"### Valid\n" +
			"\n" +
			"```json\n" +
			"{\n" +
			"  \"name\": \"example\",\n" +
			"  \"version\": 1\n" +
			"}\n" +
			"```\n",
	},
	severity: diag.SeverityInfo,
	check:    checkUseSortedKeys,
}

func checkUseSortedKeys(doc *jsonlang.Document, report func(lang.Signal) lang.Flow) error {
	stopped := false

	jsonlang.WalkObjects(doc.Root, func(obj *jsonlang.Value) {
		if stopped {
			return
		}

		// Only the first out-of-order member per object is reported; once
		// it is fixed the next offense, if any, surfaces on the next run.
		for i := 1; i < len(obj.Members); i++ {
			member := obj.Members[i]
			if member.Key >= obj.Members[i-1].Key {
				continue
			}

			flow := report(lang.Signal{
				Diagnostic: diag.Diagnostic{
					Category: "lint/nursery/useSortedKeys",
					Message:  fmt.Sprintf("The key %q is not in sorted order.", member.Key),
					Span:     member.KeySpan,
				},
			})
			if flow.Stopped() {
				stopped = true
			}
			return
		}
	})

	return nil
}
