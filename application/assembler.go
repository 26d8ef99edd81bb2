package application

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/medgraph-assistant/domain/prompt"
	"github.com/felixgeelhaar/medgraph-assistant/domain/tool"
)

// BuildPrompt assembles the system prompt from the registered tools.
// The section order is fixed: prefix, tool catalogue, format
// instructions, suffix. Output is a pure function of the tool list, so
// identical inputs yield byte-identical prompts.
func BuildPrompt(tools []tool.Tool) string {
	lines := make([]string, len(tools))
	names := make([]string, len(tools))
	for i, t := range tools {
		lines[i] = renderToolLine(t)
		names[i] = t.Name()
	}

	sections := []string{
		prompt.Prefix,
		strings.Join(lines, "\n"),
		fmt.Sprintf(prompt.FormatInstructions, strings.Join(names, ", ")),
		prompt.Suffix,
	}
	return strings.Join(sections, "\n\n")
}

// renderToolLine renders one catalogue entry. The system prompt goes
// to the model verbatim, with no template pass in between, so the
// schema braces stay single. Only the stored prompt slices carry
// doubled braces, and those are collapsed by Render.
func renderToolLine(t tool.Tool) string {
	return fmt.Sprintf("%s: %s, args: %s", t.Name(), t.Description(), t.InputSchema().String())
}
