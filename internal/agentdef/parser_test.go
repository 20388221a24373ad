package agentdef

import (
	"reflect"
	"testing"

	"go.yaml.in/yaml/v3"
)

func yamlUnmarshal(t *testing.T, s string, v any) error {
	t.Helper()
	return yaml.Unmarshal([]byte(s), v)
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"commas and newlines", "a, b\nc", []string{"a", "b", "c"}},
		{"whitespace only", "  ", []string{}},
		{"empty tokens dropped", "x,,y", []string{"x", "y"}},
		{"empty input", "", []string{}},
		{"single token", "one", []string{"one"}},
		{"order preserved", "z, a,m", []string{"z", "a", "m"}},
		{"inner spaces kept", "hello world, foo", []string{"hello world", "foo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseList(tt.raw)
			if got == nil {
				t.Fatal("ParseList returned nil, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParse_FullDefinition(t *testing.T) {
	data := []byte(`
agent:
  name: Echo
  url: http://localhost:9000/
  version: "1.0"
  description: Echoes messages back
  default_input_modes: "text, file"
  default_output_modes:
    - text
  capabilities:
    streaming: true
    push_notifications: false
  skills:
    - id: echo
      name: Echo Skill
      tags: "echo, demo"
      examples: |-
        say hi
        say bye
extended:
  version: "2.0"
server:
  agent_executor: EchoExecutor
  task_store: InMemoryTaskStore
relationships:
  - name: Weather Agent
    url: http://localhost:8001/
`)

	def, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if def.Agent.Name != "Echo" {
		t.Errorf("Agent.Name = %q, want %q", def.Agent.Name, "Echo")
	}
	if def.Agent.URL != "http://localhost:9000/" {
		t.Errorf("Agent.URL = %q", def.Agent.URL)
	}
	if want := []string{"text", "file"}; !reflect.DeepEqual([]string(def.Agent.DefaultInputModes), want) {
		t.Errorf("DefaultInputModes = %v, want %v (scalar form should be split)", def.Agent.DefaultInputModes, want)
	}
	if want := []string{"text"}; !reflect.DeepEqual([]string(def.Agent.DefaultOutputModes), want) {
		t.Errorf("DefaultOutputModes = %v, want %v", def.Agent.DefaultOutputModes, want)
	}
	if !def.Agent.Capabilities.Streaming || def.Agent.Capabilities.PushNotifications {
		t.Errorf("Capabilities = %+v", def.Agent.Capabilities)
	}

	if len(def.Agent.Skills) != 1 {
		t.Fatalf("len(Skills) = %d, want 1", len(def.Agent.Skills))
	}
	skill := def.Agent.Skills[0]
	if want := []string{"echo", "demo"}; !reflect.DeepEqual([]string(skill.Tags), want) {
		t.Errorf("Tags = %v, want %v", skill.Tags, want)
	}
	if want := []string{"say hi", "say bye"}; !reflect.DeepEqual([]string(skill.Examples), want) {
		t.Errorf("Examples = %v, want %v (newline-separated scalar should be split)", skill.Examples, want)
	}

	if def.Extended == nil || def.Extended.Version != "2.0" {
		t.Errorf("Extended = %+v, want version 2.0", def.Extended)
	}
	if def.Server.AgentExecutor != "EchoExecutor" {
		t.Errorf("AgentExecutor = %q", def.Server.AgentExecutor)
	}
	if def.Server.TaskStore.Kind != TaskStoreInMemory {
		t.Errorf("TaskStore.Kind = %q, want %q", def.Server.TaskStore.Kind, TaskStoreInMemory)
	}
	if len(def.Relationships) != 1 || def.Relationships[0].Name != "Weather Agent" {
		t.Errorf("Relationships = %+v", def.Relationships)
	}
}

func TestTaskStore_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want TaskStore
	}{
		{"sdk literal", `task_store: InMemoryTaskStore`, TaskStore{Kind: TaskStoreInMemory}},
		{"kind alias", `task_store: in-memory`, TaskStore{Kind: TaskStoreInMemory}},
		{"dotted custom scalar", `task_store: mypkg.mymodule.MyStore`, TaskStore{Kind: TaskStoreCustom, Path: "mypkg.mymodule.MyStore"}},
		{"mapping custom", "task_store:\n  kind: custom\n  path: db.PgStore", TaskStore{Kind: TaskStoreCustom, Path: "db.PgStore"}},
		{"mapping in-memory", "task_store:\n  kind: in-memory", TaskStore{Kind: TaskStoreInMemory}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var server ServerConfig
			if err := yamlUnmarshal(t, tt.yaml, &server); err != nil {
				t.Fatalf("unmarshal error: %v", err)
			}
			if server.TaskStore != tt.want {
				t.Errorf("TaskStore = %+v, want %+v", server.TaskStore, tt.want)
			}
		})
	}

	t.Run("omitted defaults to in-memory", func(t *testing.T) {
		var server ServerConfig
		if err := yamlUnmarshal(t, `agent_executor: X`, &server); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if server.TaskStore.Kind == TaskStoreCustom {
			t.Errorf("zero TaskStore should not be custom: %+v", server.TaskStore)
		}
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		var server ServerConfig
		if err := yamlUnmarshal(t, "task_store:\n  kind: redis", &server); err == nil {
			t.Error("expected error for unknown task store kind")
		}
	})
}

func TestLoad_NotFound(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("agent: [unclosed")); err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}
