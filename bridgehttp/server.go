// Package bridgehttp implements the bridge's loopback HTTP/1.1 listener:
// a raw TCP accept loop with manual request parsing, bearer-token
// authentication, the /health, / and /rpc endpoints, and the server.json
// discovery file lifecycle (§6 "Network").
package bridgehttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/scriptkit/scriptkit-bridge/auth"
	"github.com/scriptkit/scriptkit-bridge/rpc"
	"github.com/scriptkit/scriptkit-bridge/stream"
	"github.com/scriptkit/scriptkit-bridge/types"
)

// pollInterval is how long Serve pauses after an Accept error other than
// a deadline timeout; a timeout (no connection waiting within
// acceptDeadline) loops straight back to the next Accept.
const pollInterval = 10 * time.Millisecond

// acceptDeadline bounds each Accept call so Serve can observe Stop
// promptly instead of blocking indefinitely on a quiet listener.
const acceptDeadline = 200 * time.Millisecond

// DiscoveryCapabilities is the coarse, boolean capability flag set
// advertised outside the JSON-RPC envelope: the server.json discovery
// file and the GET / server-info body both carry this shape, distinct
// from the richer protocol.ServerCapabilities an `initialize` call
// returns (§4.5 "capabilities: {scripts, prompts, tools}").
type DiscoveryCapabilities struct {
	Scripts bool `json:"scripts"`
	Prompts bool `json:"prompts"`
	Tools   bool `json:"tools"`
}

// discoveryCapabilities is the bridge's fixed capability set: it always
// publishes the scripts and kit tool namespaces and never implements
// MCP prompts.
func discoveryCapabilities() DiscoveryCapabilities {
	return DiscoveryCapabilities{Scripts: true, Prompts: false, Tools: true}
}

// DiscoveryInfo is the content of the server.json discovery file (§6
// "<app-root>/server.json").
type DiscoveryInfo struct {
	URL          string                `json:"url"`
	Version      string                `json:"version"`
	Capabilities DiscoveryCapabilities `json:"capabilities"`
}

// ServerInfo is the GET / response body (§4.5 "server info JSON (name,
// version, capabilities)").
type ServerInfo struct {
	Name         string                `json:"name"`
	Version      string                `json:"version"`
	Capabilities DiscoveryCapabilities `json:"capabilities"`
}

// serverName is the fixed name reported by GET / and the initialize
// result's serverInfo (§4.4 "serverInfo: {name: \"script-kit\", ...}").
const serverName = "script-kit"

// Server is a thread-per-connection loopback HTTP server. Each accepted
// connection is handled on its own goroutine and closed after one
// request, matching the one-shot request/response shape of §6's
// endpoints; there is no keep-alive.
type Server struct {
	Handler       *rpc.Handler
	Validator     auth.TokenValidator
	Logger        types.Logger
	Version       string
	DiscoveryPath string

	// Streams, when non-nil, serves GET /rpc/stream/{callID} for the
	// SSE side-channel; nil leaves that path 404 like any other
	// unrouted path (§9 "SSE side-channel").
	Streams *stream.Hub

	listener net.Listener
	running  atomic.Bool
}

// Listen binds addr (e.g. "127.0.0.1:43210") without starting to accept.
func Listen(addr string) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("bridgehttp: listening on %s: %w", addr, err)
	}
	return &Server{listener: l}, nil
}

// Addr returns the listener's bound address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve runs the accept loop until ctx is canceled or Stop is called. It
// writes the discovery file before accepting and removes it on exit
// (§6 "server.json ... written on start, removed on stop").
func (s *Server) Serve(ctx context.Context) error {
	s.running.Store(true)

	if s.DiscoveryPath != "" {
		if err := s.writeDiscoveryFile(); err != nil {
			s.logWarn("failed to write discovery file: %s", err)
		}
		defer s.removeDiscoveryFile()
	}

	tcpListener, hasDeadline := s.listener.(*net.TCPListener)

	for s.running.Load() {
		select {
		case <-ctx.Done():
			s.running.Store(false)
			return nil
		default:
		}

		if hasDeadline {
			_ = tcpListener.SetDeadline(time.Now().Add(acceptDeadline))
		}

		conn, err := s.listener.Accept()
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				continue
			}
			if !s.running.Load() {
				return nil
			}
			time.Sleep(pollInterval)
			continue
		}

		go s.handleConnection(conn)
	}

	return nil
}

// Stop signals the accept loop to exit and closes the listener.
func (s *Server) Stop() error {
	s.running.Store(false)
	return s.listener.Close()
}

func (s *Server) writeDiscoveryFile() error {
	info := DiscoveryInfo{
		URL:          fmt.Sprintf("http://%s", s.listener.Addr().String()),
		Version:      s.Version,
		Capabilities: discoveryCapabilities(),
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.DiscoveryPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.DiscoveryPath, data, 0o600)
}

func (s *Server) removeDiscoveryFile() {
	if err := os.Remove(s.DiscoveryPath); err != nil && !os.IsNotExist(err) {
		s.logWarn("failed to remove discovery file: %s", err)
	}
}

func (s *Server) logWarn(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Warn(format, args...)
	}
}
