package agentdef

// Definition is the root of an agent definition file. It is rebuilt from the
// file on every generate request; nothing persists across invocations.
type Definition struct {
	Agent         AgentCard      `yaml:"agent" json:"agent"`
	Extended      *ExtendedCard  `yaml:"extended,omitempty" json:"extended,omitempty"`
	Server        ServerConfig   `yaml:"server" json:"server"`
	Relationships []Relationship `yaml:"relationships,omitempty" json:"relationships,omitempty"`
}

// AgentCard describes the agent's public identity, capabilities, and skills.
type AgentCard struct {
	Name               string       `yaml:"name" json:"name"`
	URL                string       `yaml:"url" json:"url"`
	Version            string       `yaml:"version,omitempty" json:"version,omitempty"`
	Description        string       `yaml:"description,omitempty" json:"description,omitempty"`
	DefaultInputModes  StringList   `yaml:"default_input_modes,omitempty" json:"default_input_modes,omitempty"`
	DefaultOutputModes StringList   `yaml:"default_output_modes,omitempty" json:"default_output_modes,omitempty"`
	Capabilities       Capabilities `yaml:"capabilities,omitempty" json:"capabilities,omitempty"`
	Skills             []Skill      `yaml:"skills,omitempty" json:"skills,omitempty"`
}

// Capabilities holds the optional protocol capabilities advertised by the card.
type Capabilities struct {
	Streaming         bool `yaml:"streaming,omitempty" json:"streaming,omitempty"`
	PushNotifications bool `yaml:"push_notifications,omitempty" json:"push_notifications,omitempty"`
}

// Skill is one advertised capability entry. ID and Name are required; the
// rest is optional metadata. Order within a skills list is preserved all the
// way to the emitted output.
type Skill struct {
	ID          string     `yaml:"id" json:"id"`
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        StringList `yaml:"tags,omitempty" json:"tags,omitempty"`
	Examples    StringList `yaml:"examples,omitempty" json:"examples,omitempty"`
}

// ExtendedCard holds optional overrides applied on top of the base card.
// An empty field means "inherit from the agent card"; Skills are additive.
type ExtendedCard struct {
	Name        string  `yaml:"name,omitempty" json:"name,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string  `yaml:"version,omitempty" json:"version,omitempty"`
	Skills      []Skill `yaml:"skills,omitempty" json:"skills,omitempty"`
}

// HasOverrides reports whether the extended card carries any override or
// additional skill worth emitting.
func (e *ExtendedCard) HasOverrides() bool {
	if e == nil {
		return false
	}
	return e.Name != "" || e.Description != "" || e.Version != "" || len(e.Skills) > 0
}

// ServerConfig holds the request-handler wiring choices.
type ServerConfig struct {
	AgentExecutor string    `yaml:"agent_executor" json:"agent_executor"`
	TaskStore     TaskStore `yaml:"task_store,omitempty" json:"task_store,omitempty"`
}

// TaskStoreKind discriminates the task-store variant.
type TaskStoreKind string

const (
	// TaskStoreInMemory selects the SDK's built-in InMemoryTaskStore.
	TaskStoreInMemory TaskStoreKind = "in-memory"
	// TaskStoreCustom selects a user-supplied store, identified by a dotted
	// module.ClassName path.
	TaskStoreCustom TaskStoreKind = "custom"
)

// TaskStore is a tagged variant: either the default in-memory store or a
// custom store referenced by Path. The zero value is the in-memory store.
type TaskStore struct {
	Kind TaskStoreKind
	Path string
}

// Relationship is an informational link to a peer agent. Both fields are
// free-form and never validated.
type Relationship struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}
