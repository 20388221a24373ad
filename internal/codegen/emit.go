package codegen

import (
	"fmt"
	"strings"

	"github.com/a2agen-labs/a2agen/internal/agentdef"
)

// Emit renders the full server bootstrap source for a validated definition.
// Output is an ordered sequence of lines joined with newlines: imports first,
// then one section per concern, each introduced by a blank line and a comment
// header.
func Emit(def *agentdef.Definition) string {
	var lines []string
	lines = append(lines, importLines(def.Server.TaskStore)...)
	lines = append(lines, capabilitiesLines(def.Agent.Capabilities)...)
	lines = append(lines, skillListLines("agent_skills", "Main Agent Card Skills Definition", def.Agent.Skills)...)
	lines = append(lines, cardLines(&def.Agent)...)
	lines = append(lines, extendedCardLines(def.Extended)...)
	lines = append(lines, handlerLines(&def.Server)...)
	lines = append(lines, applicationLines()...)
	lines = append(lines, relationshipLines(def.Relationships)...)
	return strings.Join(lines, "\n")
}

// sectionHeader introduces a section: a blank separator line followed by the
// comment banner.
func sectionHeader(title string) []string {
	return []string{"", "# --- " + title + " ---"}
}

// importLines emits the fixed SDK imports plus, for a dotted custom task
// store path, the import of the custom store class.
func importLines(ts agentdef.TaskStore) []string {
	lines := []string{
		"from a2a.sdk.public_api.agent import AgentCard, AgentSkill, AgentCapabilities, ExtendedAgentCard",
		"from a2a.sdk.public_api.http import DefaultRequestHandler, A2AStarletteApplication",
		"from a2a.sdk.public_api.task_store.memory import InMemoryTaskStore",
	}
	if module, class, ok := splitStorePath(ts); ok {
		lines = append(lines, fmt.Sprintf("from %s import %s", module, class))
	}
	return lines
}

func capabilitiesLines(caps agentdef.Capabilities) []string {
	lines := sectionHeader("Agent Capabilities Definition")
	lines = append(lines,
		"agent_capabilities = AgentCapabilities(",
		"    streaming="+pyBool(caps.Streaming)+",",
		"    push_notifications="+pyBool(caps.PushNotifications)+",",
		")",
	)
	return lines
}

// skillListLines emits one AgentSkill constructor per skill, in input order,
// bound to varName. An empty list becomes an explicit empty assignment.
func skillListLines(varName, title string, skills []agentdef.Skill) []string {
	lines := sectionHeader(title)
	if len(skills) == 0 {
		return append(lines, varName+" = []")
	}

	lines = append(lines, varName+" = [")
	for _, skill := range skills {
		lines = append(lines, skillConstructorLines(skill)...)
	}
	return append(lines, "]")
}

func skillConstructorLines(skill agentdef.Skill) []string {
	return []string{
		"    AgentSkill(",
		"        id=" + pyString(skill.ID) + ",",
		"        name=" + pyString(skill.Name) + ",",
		"        description=" + pyString(skill.Description) + ",",
		"        tags=" + pyList(skill.Tags) + ",",
		"        examples=" + pyList(skill.Examples) + ",",
		"    ),",
	}
}

func cardLines(card *agentdef.AgentCard) []string {
	lines := sectionHeader("Main Agent Card Definition")
	lines = append(lines,
		"public_agent_card = AgentCard(",
		"    name="+pyString(card.Name)+",",
		"    description="+pyString(card.Description)+",",
		"    url="+pyString(card.URL)+",",
		"    version="+pyString(card.Version)+",",
		"    default_input_modes="+pyList(card.DefaultInputModes)+",",
		"    default_output_modes="+pyList(card.DefaultOutputModes)+",",
		"    capabilities=agent_capabilities,",
		"    skills=agent_skills,",
		")",
	)
	return lines
}

// extendedCardLines builds the override set from the non-empty extended card
// fields and emits a copy-with-overrides call; with nothing to override the
// extended card is explicitly bound to None.
func extendedCardLines(ext *agentdef.ExtendedCard) []string {
	lines := sectionHeader("Extended Agent Card Definition (if any overrides/additions)")

	if !ext.HasOverrides() {
		return append(lines,
			"# No extended agent card attributes or skills defined to override/add.",
			"extended_public_agent_card = None",
		)
	}

	var overrides []string
	if ext.Name != "" {
		overrides = append(overrides, "name="+pyString(ext.Name))
	}
	if ext.Description != "" {
		overrides = append(overrides, "description="+pyString(ext.Description))
	}
	if ext.Version != "" {
		overrides = append(overrides, "version="+pyString(ext.Version))
	}

	if len(ext.Skills) > 0 {
		lines = append(lines, "extended_agent_skills = [")
		for _, skill := range ext.Skills {
			lines = append(lines, skillConstructorLines(skill)...)
		}
		lines = append(lines, "]")
		overrides = append(overrides, "skills=extended_agent_skills")
	}

	call := fmt.Sprintf("extended_public_agent_card = ExtendedAgentCard.from_agent_card(public_agent_card, %s)",
		strings.Join(overrides, ", "))
	return append(lines, call)
}

func handlerLines(server *agentdef.ServerConfig) []string {
	lines := sectionHeader("Request Handler Definition")
	lines = append(lines,
		fmt.Sprintf("# TODO: Define your AgentExecutor class (e.g., %s)", server.AgentExecutor),
		"http_handler = DefaultRequestHandler(",
		fmt.Sprintf("    agent_executor=%s(), # Assuming it's instantiated here", server.AgentExecutor),
		"    task_store="+storeInstance(server.TaskStore)+",",
		")",
	)
	return lines
}

func applicationLines() []string {
	lines := sectionHeader("Server Application Definition")
	lines = append(lines,
		"app = A2AStarletteApplication(",
		"    agent_card=public_agent_card,",
		"    http_handler=http_handler,",
		"    extended_agent_card=extended_public_agent_card, # Will be None if not defined",
		")",
	)
	return lines
}

// relationshipLines documents peer agents as a commented-out mapping literal.
// This section is informational only; it has no executable counterpart.
func relationshipLines(rels []agentdef.Relationship) []string {
	lines := sectionHeader("Defined Agent Relationships (Informational)")
	if len(rels) == 0 {
		return append(lines, "# No agent relationships defined.")
	}

	lines = append(lines, "# {")
	for _, rel := range rels {
		lines = append(lines, fmt.Sprintf("#    '%s': '%s',", rel.Name, rel.URL))
	}
	return append(lines, "# }")
}

// storeInstance resolves the task-store construction expression. A custom
// path is instantiated by its final dotted segment; a path with no usable
// split (no dot, or an empty segment) is rendered verbatim, matching the
// permissive pass-through behavior of the original tool even though the
// resulting name may lack an import.
func storeInstance(ts agentdef.TaskStore) string {
	if ts.Kind != agentdef.TaskStoreCustom {
		return "InMemoryTaskStore()"
	}
	if _, class, ok := splitStorePath(ts); ok {
		return class + "()"
	}
	return ts.Path + "()"
}

// splitStorePath splits a custom task-store path at its last dot into module
// and class. It reports false for non-custom stores and for malformed paths
// (no dot, leading dot, or trailing dot).
func splitStorePath(ts agentdef.TaskStore) (module, class string, ok bool) {
	if ts.Kind != agentdef.TaskStoreCustom {
		return "", "", false
	}
	i := strings.LastIndex(ts.Path, ".")
	if i <= 0 || i == len(ts.Path)-1 {
		return "", "", false
	}
	return ts.Path[:i], ts.Path[i+1:], true
}
