package mcp

// ListDisplaysInput is the input for the list_displays tool.
type ListDisplaysInput struct{}

// DisplayInfo describes one display and its current wallpaper state.
type DisplayInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	File        string `json:"file,omitempty"`
	Mode        string `json:"mode"`
	Command     string `json:"command,omitempty"`
}

// ListDisplaysOutput is the output for the list_displays tool.
type ListDisplaysOutput struct {
	Displays []DisplayInfo `json:"displays"`
}

// SetBackgroundInput is the input for the set_background tool.
type SetBackgroundInput struct {
	Display string `json:"display" jsonschema:"Output name as reported by list_displays (e.g. DP-1)"`
	Path    string `json:"path" jsonschema:"Absolute path of the image file"`
	Mode    string `json:"mode,omitempty" jsonschema:"Scaling mode: fit, fill, stretch, center or tile (default: the display's current mode)"`
}

// SetBackgroundOutput is the output for the set_background tool.
type SetBackgroundOutput struct {
	Command string `json:"command"`
}

// SetModeInput is the input for the set_mode tool.
type SetModeInput struct {
	Display string `json:"display" jsonschema:"Output name as reported by list_displays"`
	Mode    string `json:"mode" jsonschema:"Scaling mode: fit, fill, stretch, center or tile"`
}

// SetModeOutput is the output for the set_mode tool.
type SetModeOutput struct {
	// Applied is false when the display has no image yet; the mode is only recorded.
	Applied bool   `json:"applied"`
	Command string `json:"command,omitempty"`
}

// CommandLogInput is the input for the command_log tool.
type CommandLogInput struct{}

// CommandLogOutput is the output for the command_log tool.
type CommandLogOutput struct {
	Lines []string `json:"lines"`
}
