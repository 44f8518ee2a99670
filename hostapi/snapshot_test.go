package hostapi

import (
	"testing"

	"github.com/scriptkit/scriptkit-bridge/schema"
	"github.com/stretchr/testify/assert"
)

func TestScriptHasInputToolRequiresNonEmptyInput(t *testing.T) {
	noSchema := &Script{Name: "a"}
	assert.False(t, noSchema.HasSchema())

	emptySchema := &Script{Name: "b", Schema: &schema.Schema{}}
	assert.True(t, emptySchema.HasSchema())
	assert.False(t, emptySchema.HasInputTool())

	withInput := &Script{Name: "c", Schema: &schema.Schema{
		Input: schema.Fields{"title": &schema.FieldDef{Type: schema.TypeString, Required: true}},
	}}
	assert.True(t, withInput.HasInputTool())
}

func TestNoopCollaboratorsSatisfyInterfaces(t *testing.T) {
	var wc WindowController = NoopWindowController{}
	var pe PendingExecutor = NoopPendingExecutor{}
	wc.Show()
	wc.Hide()
	assert.NoError(t, pe.Enqueue(PendingCall{ScriptPath: "x"}))
}
