package registry

import (
	"encoding/json"

	"github.com/scriptkit/scriptkit-bridge/hostapi"
	"github.com/scriptkit/scriptkit-bridge/protocol"
)

const (
	uriKitState   = "kit://state"
	uriScripts    = "scripts://"
	uriScriptlets = "scriptlets://"
	mimeJSON      = "application/json"
)

// resourceDefinitions returns the three fixed resources, always published
// in full regardless of authentication state or script count (§4.3).
func resourceDefinitions() []protocol.ResourceDefinition {
	return []protocol.ResourceDefinition{
		{URI: uriKitState, Name: "App State", Description: "Current app window and selection state", MimeType: mimeJSON},
		{URI: uriScripts, Name: "Scripts", Description: "Catalog of available scripts", MimeType: mimeJSON},
		{URI: uriScriptlets, Name: "Scriptlets", Description: "Catalog of available scriptlets", MimeType: mimeJSON},
	}
}

type scriptEntry struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Extension   string `json:"extension"`
	Description string `json:"description,omitempty"`
	HasSchema   bool   `json:"has_schema"`
}

type scriptletEntry struct {
	Name        string `json:"name"`
	Tool        string `json:"tool"`
	Description string `json:"description,omitempty"`
	Group       string `json:"group,omitempty"`
	Expand      string `json:"expand,omitempty"`
	Shortcut    string `json:"shortcut,omitempty"`
}

// readResource serializes the resource named by uri as pretty-printed
// JSON text (§4.3). An unknown uri is reported to the caller via ok=false
// so the protocol layer can surface a method-not-found error.
func readResource(uri string, scripts []*hostapi.Script, scriptlets []*hostapi.Scriptlet, appState hostapi.AppState) (protocol.ResourceContent, bool) {
	var payload interface{}

	switch uri {
	case uriKitState:
		payload = appState

	case uriScripts:
		entries := make([]scriptEntry, len(scripts))
		for i, s := range scripts {
			entries[i] = scriptEntry{
				Name:        s.Name,
				Path:        s.Path,
				Extension:   s.Extension,
				Description: s.Description,
				HasSchema:   s.HasSchema(),
			}
		}
		payload = entries

	case uriScriptlets:
		entries := make([]scriptletEntry, len(scriptlets))
		for i, sl := range scriptlets {
			entries[i] = scriptletEntry{
				Name:        sl.Name,
				Tool:        sl.Tool,
				Description: sl.Description,
				Group:       sl.Group,
				Expand:      sl.Expand,
				Shortcut:    sl.Shortcut,
			}
		}
		payload = entries

	default:
		return protocol.ResourceContent{}, false
	}

	text, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return protocol.ResourceContent{}, false
	}

	return protocol.ResourceContent{URI: uri, MimeType: mimeJSON, Text: string(text)}, true
}
