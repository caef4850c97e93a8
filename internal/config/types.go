package config

import "time"

// PortalConfig represents the kubeportal configuration file structure
type PortalConfig struct {
	// DefaultNamespace is the namespace used when none is selected
	DefaultNamespace string `yaml:"defaultNamespace,omitempty" json:"defaultNamespace,omitempty"`

	// TailLines is the default number of log lines fetched per pod
	TailLines int `yaml:"tailLines,omitempty" json:"tailLines,omitempty"`

	// Assist configures the natural-language assistant collaborator
	Assist AssistConfig `yaml:"assist,omitempty" json:"assist,omitempty"`

	// Defaults contains default settings for operations
	Defaults DefaultsConfig `yaml:"defaults,omitempty" json:"defaults,omitempty"`
}

// AssistConfig configures the chat-completion collaborator.
// The portal only ever consumes it as a function returning text.
type AssistConfig struct {
	// Endpoint is the chat completion endpoint URL (empty disables assist)
	Endpoint string `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`

	// Model is the model identifier passed to the endpoint
	Model string `yaml:"model,omitempty" json:"model,omitempty"`
}

// DefaultsConfig contains default configuration values
type DefaultsConfig struct {
	// Timeout for external command execution
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`

	// OutputFormat is the default output format (table, json, yaml)
	OutputFormat string `yaml:"outputFormat,omitempty" json:"outputFormat,omitempty"`

	// NoColor disables colored output
	NoColor bool `yaml:"noColor,omitempty" json:"noColor,omitempty"`
}

// ClusterInfo represents one selectable context from the kubeconfig store.
// Immutable once listed; switching the active context selects a different
// entry, it never mutates the store.
type ClusterInfo struct {
	// Name is the cluster name from kubeconfig
	Name string `json:"name"`

	// Context is the context name
	Context string `json:"context"`

	// Server is the API server URL
	Server string `json:"server"`

	// Namespace is the default namespace
	Namespace string `json:"namespace"`

	// User is the credential reference used for authentication
	User string `json:"user"`

	// Source is the kubeconfig file path the context was loaded from
	Source string `json:"source,omitempty"`

	// Current indicates if this is the active context
	Current bool `json:"current"`
}
