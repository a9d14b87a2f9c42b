// Package export renders tiered explanation outlines into a plain-text
// document suitable for download. Layout beyond simple text is a consumer
// concern and out of scope here.
package export

import (
	"fmt"
	"strings"

	"github.com/phrazzld/scora-api/internal/domain"
)

const separator = "--------------------------------------------------"

// RenderText formats the question and its per-tier outlines as plain
// text. Tiers are emitted in ascending difficulty order; a missing tier
// is marked unavailable rather than omitted, so the document always
// accounts for all three.
func RenderText(question string, tiers map[domain.Tier]*domain.Outline) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Explanation outlines: %s\n", question)
	b.WriteString(separator + "\n")

	for _, tier := range domain.Tiers {
		fmt.Fprintf(&b, "\n[%s]\n", strings.ToUpper(string(tier)))

		o := tiers[tier]
		if o == nil {
			b.WriteString("(unavailable)\n")
			continue
		}

		if len(o.KeyTerms) > 0 {
			fmt.Fprintf(&b, "Key terms: %s\n", strings.Join(o.KeyTerms, ", "))
		}

		if len(o.NumberedSteps) > 0 {
			b.WriteString("Steps:\n")
			for i, step := range o.NumberedSteps {
				fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
			}
		}

		for _, section := range o.Sections {
			fmt.Fprintf(&b, "\n[%s]\n%s\n", section.Type, section.Content)
		}
	}

	return b.String()
}
