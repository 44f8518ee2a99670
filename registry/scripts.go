package registry

import (
	"fmt"

	"github.com/scriptkit/scriptkit-bridge/hostapi"
	"github.com/scriptkit/scriptkit-bridge/protocol"
	"github.com/scriptkit/scriptkit-bridge/schema"
	"github.com/scriptkit/scriptkit-bridge/stream"
	"github.com/scriptkit/scriptkit-bridge/types"
	"github.com/scriptkit/scriptkit-bridge/util/response"
)

const scriptsPrefix = "scripts/"

// scriptTools emits one ToolDefinition per script whose schema has a
// non-empty input half (§4.2). Name collisions between two scripts that
// slugify the same are resolved first-wins, with a diagnostic Warn on the
// logger for the script that lost.
func scriptTools(scripts []*hostapi.Script, logger types.Logger) []protocol.ToolDefinition {
	tools := make([]protocol.ToolDefinition, 0, len(scripts))
	seen := make(map[string]string, len(scripts)) // slug -> winning script name

	for _, s := range scripts {
		if !s.HasInputTool() {
			continue
		}
		name := slug(s.Name)
		if winner, exists := seen[name]; exists {
			logger.Warn("tool name collision: %q and %q both slugify to %q; keeping %q", winner, s.Name, name, winner)
			continue
		}
		seen[name] = s.Name

		description := s.Description
		if description == "" {
			description = fmt.Sprintf("Run the %s script", s.Name)
		}

		tools = append(tools, protocol.ToolDefinition{
			Name:        scriptsPrefix + name,
			Description: description,
			InputSchema: buildInputSchema(s.Schema.Input),
		})
	}

	return tools
}

// callScript resolves a scripts/<slug> tool name against the script
// snapshot and enqueues a pending execution (§4.2). Call resolution is
// first-wins: if two scripts collide on the same slug, the one earlier in
// the snapshot's enumeration order is addressable; the rest are
// unreachable by name, matching the emission-time collision policy.
func callScript(name string, arguments map[string]interface{}, scripts []*hostapi.Script, executor hostapi.PendingExecutor, streams *stream.Hub) protocol.ToolResult {
	want := name[len(scriptsPrefix):]

	for _, s := range scripts {
		if !s.HasInputTool() || slug(s.Name) != want {
			continue
		}

		if arguments == nil {
			arguments = map[string]interface{}{}
		}
		if err := executor.Enqueue(hostapi.PendingCall{ScriptPath: s.Path, Arguments: arguments}); err != nil {
			return response.Error(fmt.Sprintf("Failed to enqueue script call: %s", err))
		}

		payload := map[string]interface{}{
			"status":      "pending",
			"script_path": s.Path,
			"arguments":   arguments,
			"message":     fmt.Sprintf("Queued %s for execution", s.Name),
		}
		if streams != nil {
			callID := streams.Open()
			streams.Publish(callID, stream.Event{Status: "pending", Data: payload})
			streams.Close(callID)
			payload["stream_uri"] = "/rpc/stream/" + callID
		}

		return response.JSON(payload)
	}

	return response.Error(fmt.Sprintf("Script tool not found: %s", name))
}

// findScriptInputFields resolves a scripts/<slug> tool name to the input
// fields of the script it addresses, for callers that validate arguments
// before dispatch (§9 open question).
func findScriptInputFields(name string, scripts []*hostapi.Script) (schema.Fields, bool) {
	if len(name) <= len(scriptsPrefix) || name[:len(scriptsPrefix)] != scriptsPrefix {
		return nil, false
	}
	want := name[len(scriptsPrefix):]

	for _, s := range scripts {
		if s.HasInputTool() && slug(s.Name) == want {
			return s.Schema.Input, true
		}
	}
	return nil, false
}
