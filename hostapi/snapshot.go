// Package hostapi defines the borrowed, immutable snapshots and
// collaborator interfaces the bridge uses to reach into the host
// application's script registry and UI state, without owning any of it
// (§3 "Script (external, referenced here)").
package hostapi

import "github.com/scriptkit/scriptkit-bridge/schema"

// Script is an immutable, host-owned script description borrowed by the
// bridge for the duration of one request.
type Script struct {
	Name        string
	Path        string
	Extension   string
	Description string
	Schema      *schema.Schema
}

// HasSchema reports whether the script carries a parsed schema at all
// (the scripts:// resource's has_schema flag, §4.3).
func (s *Script) HasSchema() bool {
	return s.Schema != nil
}

// HasInputTool reports whether the script's schema would contribute a
// catalog tool (§4.2: only a non-empty input half does).
func (s *Script) HasInputTool() bool {
	return s.Schema.HasInput()
}

// Scriptlet is an immutable, host-owned scriptlet description (a
// lighter-weight, often single-step script variant) borrowed for the
// scriptlets:// resource (§4.3).
type Scriptlet struct {
	Name        string
	Tool        string
	Description string
	Group       string
	Expand      string
	Shortcut    string
}

// AppState is the host's current window/filter snapshot, serialized
// verbatim by the kit://state resource and the kit/state tool (§3).
type AppState struct {
	Visible        bool   `json:"visible"`
	Focused        bool   `json:"focused"`
	ScriptCount    int    `json:"script_count"`
	ScriptletCount int    `json:"scriptlet_count"`
	FilterText     string `json:"filter_text,omitempty"`
	SelectedIndex  *int   `json:"selected_index,omitempty"`
}
