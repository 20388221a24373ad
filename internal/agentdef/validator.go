package agentdef

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"
)

// Issue is a single semantic validation failure. Location names the failing
// entity ("AgentCard", "AgentCard.Skill[2]", "ExtendedAgentCard.Skill[0]",
// "ServerConfig"); Message is human-readable.
type Issue struct {
	Location string
	Message  string
}

func (i Issue) String() string {
	return i.Location + ": " + i.Message
}

// ValidationResult holds all failures found by Validate, in canonical order.
type ValidationResult struct {
	Issues []Issue
}

// Valid reports whether no failures were found.
func (r *ValidationResult) Valid() bool {
	return len(r.Issues) == 0
}

// First returns the first failure in canonical order, or nil when valid.
// Callers wanting halt-on-first UX surface only this issue.
func (r *ValidationResult) First() *Issue {
	if len(r.Issues) == 0 {
		return nil
	}
	return &r.Issues[0]
}

// Validate runs the canonical semantic checks over a definition and returns
// every failure in order: agent card name, agent card url, each agent card
// skill (id then name), each extended card skill, executor class name, and
// the custom task store path. It is a pure check with no side effects.
func Validate(def *Definition) *ValidationResult {
	r := &ValidationResult{}

	if def.Agent.Name == "" {
		r.add("AgentCard", "name is required")
	}
	if def.Agent.URL == "" {
		r.add("AgentCard", "url is required")
	}

	for i, skill := range def.Agent.Skills {
		loc := fmt.Sprintf("AgentCard.Skill[%d]", i)
		if skill.ID == "" {
			r.add(loc, "id is required")
		}
		if skill.Name == "" {
			r.add(loc, "name is required")
		}
	}

	if def.Extended != nil {
		for i, skill := range def.Extended.Skills {
			loc := fmt.Sprintf("ExtendedAgentCard.Skill[%d]", i)
			if skill.ID == "" {
				r.add(loc, "id is required")
			}
			if skill.Name == "" {
				r.add(loc, "name is required")
			}
		}
	}

	if def.Server.AgentExecutor == "" {
		r.add("ServerConfig", "agent executor class name is required")
	}
	if def.Server.TaskStore.Kind == TaskStoreCustom && def.Server.TaskStore.Path == "" {
		r.add("ServerConfig", "custom task store path is required")
	}

	return r
}

func (r *ValidationResult) add(location, message string) {
	r.Issues = append(r.Issues, Issue{Location: location, Message: message})
}

// Lint returns non-blocking warnings about a definition: a version that does
// not parse as semver, skill ids repeated across the base and extended cards,
// and relationships missing a name or url. Warnings never abort generation.
func Lint(def *Definition) []string {
	var warnings []string

	if v := def.Agent.Version; v != "" {
		if _, err := semver.NewVersion(v); err != nil {
			warnings = append(warnings, fmt.Sprintf("AgentCard: version %q is not valid semver", v))
		}
	}
	if def.Extended != nil && def.Extended.Version != "" {
		if _, err := semver.NewVersion(def.Extended.Version); err != nil {
			warnings = append(warnings, fmt.Sprintf("ExtendedAgentCard: version %q is not valid semver", def.Extended.Version))
		}
	}

	ids := lo.Map(def.Agent.Skills, func(s Skill, _ int) string { return s.ID })
	if def.Extended != nil {
		for _, s := range def.Extended.Skills {
			ids = append(ids, s.ID)
		}
	}
	for _, id := range lo.FindDuplicates(ids) {
		if id != "" {
			warnings = append(warnings, fmt.Sprintf("skill id %q is declared more than once", id))
		}
	}

	for i, rel := range def.Relationships {
		if rel.Name == "" || rel.URL == "" {
			warnings = append(warnings, fmt.Sprintf("Relationship[%d]: name and url should both be set", i))
		}
	}

	return warnings
}
