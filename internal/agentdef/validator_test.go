package agentdef

import (
	"strings"
	"testing"
)

// validDefinition returns a definition that passes every semantic check.
func validDefinition() *Definition {
	return &Definition{
		Agent: AgentCard{
			Name: "Echo",
			URL:  "http://localhost:9000/",
			Skills: []Skill{
				{ID: "echo", Name: "Echo Skill"},
			},
		},
		Server: ServerConfig{
			AgentExecutor: "EchoExecutor",
			TaskStore:     TaskStore{Kind: TaskStoreInMemory},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	result := Validate(validDefinition())
	if !result.Valid() {
		t.Fatalf("expected valid, got issues: %v", result.Issues)
	}
	if result.First() != nil {
		t.Errorf("First() = %v, want nil", result.First())
	}
}

func TestValidate_CardFieldsFirst(t *testing.T) {
	def := validDefinition()
	def.Agent.Name = ""
	def.Agent.URL = ""
	def.Agent.Skills[0].ID = ""
	def.Server.AgentExecutor = ""

	result := Validate(def)
	if result.Valid() {
		t.Fatal("expected invalid")
	}

	// Card failures must precede every other check, name before url.
	if got := result.Issues[0]; got.Location != "AgentCard" || !strings.Contains(got.Message, "name") {
		t.Errorf("Issues[0] = %v, want AgentCard name failure", got)
	}
	if got := result.Issues[1]; got.Location != "AgentCard" || !strings.Contains(got.Message, "url") {
		t.Errorf("Issues[1] = %v, want AgentCard url failure", got)
	}
	if got := result.Issues[2]; got.Location != "AgentCard.Skill[0]" {
		t.Errorf("Issues[2] = %v, want skill failure next", got)
	}
	if got := result.Issues[3]; got.Location != "ServerConfig" {
		t.Errorf("Issues[3] = %v, want ServerConfig failure last", got)
	}

	if first := result.First(); first.Location != "AgentCard" {
		t.Errorf("First() = %v, want the AgentCard name failure", first)
	}
}

func TestValidate_SkillIndexTagging(t *testing.T) {
	def := validDefinition()
	def.Agent.Skills = []Skill{
		{ID: "ok", Name: "Fine"},
		{ID: "", Name: "Broken"},
		{ID: "also-ok", Name: ""},
	}

	result := Validate(def)
	if len(result.Issues) != 2 {
		t.Fatalf("got %d issues, want 2: %v", len(result.Issues), result.Issues)
	}
	if got := result.Issues[0]; got.Location != "AgentCard.Skill[1]" || !strings.Contains(got.Message, "id") {
		t.Errorf("Issues[0] = %v, want id failure at index 1", got)
	}
	if got := result.Issues[1]; got.Location != "AgentCard.Skill[2]" || !strings.Contains(got.Message, "name") {
		t.Errorf("Issues[1] = %v, want name failure at index 2", got)
	}
}

func TestValidate_ExtendedSkills(t *testing.T) {
	def := validDefinition()
	def.Extended = &ExtendedCard{
		Skills: []Skill{{ID: "", Name: "Private Skill"}},
	}

	result := Validate(def)
	if len(result.Issues) != 1 {
		t.Fatalf("got %d issues, want 1: %v", len(result.Issues), result.Issues)
	}
	if got := result.Issues[0]; got.Location != "ExtendedAgentCard.Skill[0]" {
		t.Errorf("Issues[0] = %v, want extended skill location", got)
	}

	// Extended card with overrides but no skills triggers no skill checks.
	def.Extended = &ExtendedCard{Version: "2.0"}
	if result := Validate(def); !result.Valid() {
		t.Errorf("expected valid, got %v", result.Issues)
	}
}

func TestValidate_ServerConfig(t *testing.T) {
	t.Run("empty executor", func(t *testing.T) {
		def := validDefinition()
		def.Server.AgentExecutor = ""
		result := Validate(def)
		if len(result.Issues) != 1 || result.Issues[0].Location != "ServerConfig" {
			t.Errorf("Issues = %v, want one ServerConfig failure", result.Issues)
		}
	})

	t.Run("custom store without path", func(t *testing.T) {
		def := validDefinition()
		def.Server.TaskStore = TaskStore{Kind: TaskStoreCustom}
		result := Validate(def)
		if len(result.Issues) != 1 || !strings.Contains(result.Issues[0].Message, "task store") {
			t.Errorf("Issues = %v, want custom task store failure", result.Issues)
		}
	})

	t.Run("custom store with dotless path passes", func(t *testing.T) {
		// Dotless paths are permitted; the emitter renders them verbatim.
		def := validDefinition()
		def.Server.TaskStore = TaskStore{Kind: TaskStoreCustom, Path: "MyStore"}
		if result := Validate(def); !result.Valid() {
			t.Errorf("expected valid, got %v", result.Issues)
		}
	})
}

func TestLint(t *testing.T) {
	t.Run("clean definition has no warnings", func(t *testing.T) {
		def := validDefinition()
		def.Agent.Version = "1.2.3"
		if warnings := Lint(def); len(warnings) != 0 {
			t.Errorf("warnings = %v, want none", warnings)
		}
	})

	t.Run("non-semver version", func(t *testing.T) {
		def := validDefinition()
		def.Agent.Version = "latest"
		warnings := Lint(def)
		if len(warnings) != 1 || !strings.Contains(warnings[0], "semver") {
			t.Errorf("warnings = %v, want semver warning", warnings)
		}
	})

	t.Run("duplicate skill ids across cards", func(t *testing.T) {
		def := validDefinition()
		def.Extended = &ExtendedCard{
			Skills: []Skill{{ID: "echo", Name: "Echo Again"}},
		}
		warnings := Lint(def)
		if len(warnings) != 1 || !strings.Contains(warnings[0], `"echo"`) {
			t.Errorf("warnings = %v, want duplicate id warning", warnings)
		}
	})

	t.Run("incomplete relationship", func(t *testing.T) {
		def := validDefinition()
		def.Relationships = []Relationship{{Name: "Peer"}}
		warnings := Lint(def)
		if len(warnings) != 1 || !strings.Contains(warnings[0], "Relationship[0]") {
			t.Errorf("warnings = %v, want relationship warning", warnings)
		}
	})
}
