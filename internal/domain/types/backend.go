package types

// BackendMeta is the public description a backend serves at /meta.
type BackendMeta struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
	HasCaptcha  bool   `json:"hasCaptcha"`
}
