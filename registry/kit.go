package registry

import (
	"fmt"

	"github.com/scriptkit/scriptkit-bridge/hostapi"
	"github.com/scriptkit/scriptkit-bridge/protocol"
	"github.com/scriptkit/scriptkit-bridge/util/response"
)

const (
	kitShow  = "kit/show"
	kitHide  = "kit/hide"
	kitState = "kit/state"
)

// kitTools returns the fixed three-entry kit namespace catalog, always
// published regardless of what scripts exist (§4.2).
func kitTools() []protocol.ToolDefinition {
	return []protocol.ToolDefinition{
		{Name: kitShow, Description: "Show the app window", InputSchema: protocol.EmptyObjectSchema()},
		{Name: kitHide, Description: "Hide the app window", InputSchema: protocol.EmptyObjectSchema()},
		{Name: kitState, Description: "Get current app state", InputSchema: protocol.EmptyObjectSchema()},
	}
}

// callKit dispatches a kit/* tool call. kit/show and kit/hide call the
// WindowController synchronously, before the acknowledgement text is
// built, and take no result back from it; any wait inside Show or Hide
// delays the response.
func callKit(name string, window hostapi.WindowController, appState hostapi.AppStateSource) protocol.ToolResult {
	switch name {
	case kitShow:
		window.Show()
		return response.Text("Window show requested")
	case kitHide:
		window.Hide()
		return response.Text("Window hide requested")
	case kitState:
		return response.JSON(appState.AppState())
	default:
		return response.Error(fmt.Sprintf("Unknown kit tool: %s", name))
	}
}
