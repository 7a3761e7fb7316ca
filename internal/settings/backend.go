package settings

// ToggleBackend turns the custom backend on (as an empty URL) or off.
// Turning it off drops the stored URL.
func ToggleBackend(url *string) *string {
	if url == nil {
		empty := ""
		return &empty
	}
	return nil
}

// BackendEditor issues custom backend edits through a Setter.
type BackendEditor struct {
	set Setter[*string]
}

// NewBackendEditor returns an editor bound to set.
func NewBackendEditor(set Setter[*string]) BackendEditor {
	return BackendEditor{set: set}
}

// Toggle switches the custom backend on or off.
func (e BackendEditor) Toggle() { e.set(Apply(ToggleBackend)) }

// Edit replaces the URL verbatim.
func (e BackendEditor) Edit(value string) { e.set(Set(&value)) }
