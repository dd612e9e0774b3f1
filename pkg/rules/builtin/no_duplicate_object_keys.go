package builtin

import (
	"fmt"

	"github.com/yaklabco/ruledoc/pkg/diag"
	"github.com/yaklabco/ruledoc/pkg/fix"
	"github.com/yaklabco/ruledoc/pkg/lang"
	"github.com/yaklabco/ruledoc/pkg/lang/jsonlang"
	"github.com/yaklabco/ruledoc/pkg/rules"
)

var noDuplicateObjectKeys = ruleDef{
	meta: rules.Metadata{
		Group:       "suspicious",
		Name:        "noDuplicateObjectKeys",
		Version:     "1.0.0",
		Recommended: true,
		FixKind:     rules.FixUnsafe,
		Language:    lang.VariantJSON,
		Sources:     []rules.SourceRef{{Linter: "eslint", Rule: "no-dupe-keys"}},
		SourceKind:  rules.SourceSameLogic,
		Docs: "Disallow two keys with the same name inside a JSON object.\n" +
			"\n" +
			"When an object declares the same key twice, only the last value is kept\n" +
			"and every earlier one is silently dropped.\n" +
			"\n" +
			"## Examples\n" +
			"\n" +
			"### Invalid\n" +
			"\n" +
			"```json,expect_diagnostic\n" +
			"{\n" +
			"  \"title\": \"New title\",\n" +
			"  \"title\": \"Second title\"\n" +
			"}\n" +
			"```\n" +
			"\n" +
			"### Valid\n" +
			"\n" +
			"```json\n" +
			"{\n" +
			"  \"title\": \"New title\",\n" +
			"  \"subtitle\": \"Second title\"\n" +
			"}\n" +
			"```\n",
	},
	severity: diag.SeverityError,
	check:    checkNoDuplicateObjectKeys,
}

func checkNoDuplicateObjectKeys(doc *jsonlang.Document, report func(lang.Signal) lang.Flow) error {
	stopped := false

	jsonlang.WalkObjects(doc.Root, func(obj *jsonlang.Value) {
		if stopped {
			return
		}

		seen := make(map[string]bool, len(obj.Members))
		for i, member := range obj.Members {
			if !seen[member.Key] {
				seen[member.Key] = true
				continue
			}

			// A duplicate always has a predecessor, so the removal range
			// can extend back over the separating comma.
			prev := obj.Members[i-1]
			builder := fix.NewEditBuilder()
			builder.Delete(prev.Value.EndOffset, member.Value.EndOffset)

			flow := report(lang.Signal{
				Diagnostic: diag.Diagnostic{
					Category: "lint/suspicious/noDuplicateObjectKeys",
					Message:  fmt.Sprintf("The key %q was already declared.", member.Key),
					Span:     member.KeySpan,
				},
				Actions: []lang.Action{{
					Message: "Remove the duplicated member.",
					Edits:   builder.Edits,
				}},
			})
			if flow.Stopped() {
				stopped = true
				return
			}
		}
	})

	return nil
}
