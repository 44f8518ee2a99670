package registry

import (
	"testing"

	"github.com/scriptkit/scriptkit-bridge/hostapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceDefinitionsAreTheThreeFixedURIs(t *testing.T) {
	defs := resourceDefinitions()
	require.Len(t, defs, 3)
	var uris []string
	for _, d := range defs {
		uris = append(uris, d.URI)
		assert.Equal(t, mimeJSON, d.MimeType)
	}
	assert.ElementsMatch(t, []string{uriKitState, uriScripts, uriScriptlets}, uris)
}

func TestReadResourceScriptletsSerializesSnapshot(t *testing.T) {
	scriptlets := []*hostapi.Scriptlet{{Name: "Quick Note", Tool: "note", Shortcut: "cmd+n"}}
	content, ok := readResource(uriScriptlets, nil, scriptlets, hostapi.AppState{})
	require.True(t, ok)
	assert.Contains(t, content.Text, `"name": "Quick Note"`)
	assert.Contains(t, content.Text, `"shortcut": "cmd+n"`)
}

func TestReadResourceKitStateDefaultsToZeroValue(t *testing.T) {
	content, ok := readResource(uriKitState, nil, nil, hostapi.AppState{})
	require.True(t, ok)
	assert.Contains(t, content.Text, `"visible": false`)
}
