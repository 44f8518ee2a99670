package bridgehttp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/scriptkit/scriptkit-bridge/protocol"
)

var (
	errBadRequestLine   = errors.New("bridgehttp: malformed request line")
	errBadContentLength = errors.New("bridgehttp: malformed Content-Length header")
)

// connReadTimeout bounds how long a single connection may take to send
// its request line, headers, and body before the bridge gives up on it
// (§9 "a read timeout on the body... would harden the server").
const connReadTimeout = 10 * time.Second

// httpRequest is the minimal parsed shape of one HTTP/1.1 request: a
// request line plus case-insensitively looked-up headers and a raw body.
type httpRequest struct {
	method  string
	path    string
	headers map[string]string
	body    []byte
}

func (r *httpRequest) header(name string) string {
	return r.headers[strings.ToLower(name)]
}

// handleConnection services exactly one request on conn and closes it.
// There is no keep-alive: every response carries Connection: close
// (§6 endpoint table).
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(connReadTimeout))

	req, err := parseRequest(bufio.NewReader(conn))
	if err != nil {
		writeStatus(conn, 400, "Bad Request")
		return
	}

	switch {
	case req.method == "GET" && req.path == "/health":
		s.handleHealth(conn)

	case req.method == "GET" && req.path == "/":
		s.handleAuthenticated(conn, req, s.handleServerInfo)

	case req.method == "POST" && req.path == "/rpc":
		s.handleAuthenticated(conn, req, s.handleRPC)

	case req.method == "GET" && strings.HasPrefix(req.path, streamPathPrefix):
		s.handleAuthenticated(conn, req, s.handleStream)

	default:
		writeStatus(conn, 404, "Not Found")
	}
}

// parseRequest reads the request line, headers, and (if Content-Length is
// present) the body from r. It never attempts chunked transfer decoding;
// the bridge's own client always sends Content-Length (§6).
func parseRequest(r *bufio.Reader) (*httpRequest, error) {
	line, err := readLine(r)
	if err != nil {
		return nil, err
	}

	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return nil, errBadRequestLine
	}

	req := &httpRequest{method: parts[0], path: parts[1], headers: map[string]string{}}

	for {
		headerLine, err := readLine(r)
		if err != nil {
			return nil, err
		}
		if headerLine == "" {
			break
		}
		name, value, ok := strings.Cut(headerLine, ":")
		if !ok {
			continue
		}
		req.headers[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(value)
	}

	if cl := req.header("Content-Length"); cl != "" {
		n, err := strconv.Atoi(cl)
		if err != nil || n < 0 {
			return nil, errBadContentLength
		}
		if n > 0 {
			body := make([]byte, n)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, err
			}
			req.body = body
		}
	}

	return req, nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Server) handleHealth(conn net.Conn) {
	writeJSON(conn, 200, map[string]string{"status": "healthy"})
}

func (s *Server) handleServerInfo(conn net.Conn, _ *httpRequest) {
	writeJSON(conn, 200, ServerInfo{
		Name:         serverName,
		Version:      s.Version,
		Capabilities: discoveryCapabilities(),
	})
}

// handleRPC parses the body as a single JSON-RPC request. A missing or
// zero Content-Length body yields a 400 whose body is itself a
// well-formed JSON-RPC parse-error response with id = null (§4.5); any
// body that's present, however malformed, is handed to rpc.Handler so
// parse failures surface as a -32700 protocol response inside an HTTP
// 200 instead.
func (s *Server) handleRPC(conn net.Conn, req *httpRequest) {
	if len(req.body) == 0 {
		resp := protocol.NewError(nil, protocol.CodeParseError, "Parse error: missing request body", nil)
		writeJSON(conn, 400, resp)
		return
	}

	resp := s.Handler.Handle(context.Background(), req.body)
	writeJSON(conn, 200, resp)
}

// streamPathPrefix is the SSE side-channel path; the call ID follows it
// directly (e.g. "/rpc/stream/3fa8...").
const streamPathPrefix = "/rpc/stream/"

// handleStream drains whatever frames were queued for the call ID in the
// path and writes them as a text/event-stream body, then closes the
// connection. There is no long-lived push here: a scripts/* call queues
// its one status frame and closes its stream immediately on dispatch, so
// draining is always a bounded, single read (§9 "SSE side-channel").
func (s *Server) handleStream(conn net.Conn, req *httpRequest) {
	if s.Streams == nil {
		writeStatus(conn, 404, "Not Found")
		return
	}

	callID := strings.TrimPrefix(req.path, streamPathPrefix)
	frames, ok := s.Streams.Drain(callID)
	if !ok {
		writeStatus(conn, 404, "Not Found")
		return
	}

	var body strings.Builder
	for _, frame := range frames {
		body.WriteString(frame)
	}
	writeResponse(conn, 200, "text/event-stream", []byte(body.String()))
}

// handleAuthenticated checks the bearer token before delegating to next.
// Missing or invalid credentials never reach the handler; they are
// rejected as HTTP 401 with a plain-text "Invalid or missing token" body
// (§7 "Authentication failure on any authenticated endpoint: HTTP 401").
func (s *Server) handleAuthenticated(conn net.Conn, req *httpRequest, next func(net.Conn, *httpRequest)) {
	if s.Validator == nil {
		next(conn, req)
		return
	}

	token, ok := bearerToken(req.header("Authorization"))
	if !ok {
		writeStatus(conn, 401, "Invalid or missing token")
		return
	}

	if _, err := s.Validator.ValidateToken(context.Background(), token); err != nil {
		writeStatus(conn, 401, "Invalid or missing token")
		return
	}

	next(conn, req)
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}

func writeJSON(conn net.Conn, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		writeStatus(conn, 500, "Internal Server Error")
		return
	}
	writeResponse(conn, status, "application/json", body)
}

func writeStatus(conn net.Conn, status int, reason string) {
	writeResponse(conn, status, "text/plain", []byte(reason))
}

func writeResponse(conn net.Conn, status int, contentType string, body []byte) {
	statusLine := "HTTP/1.1 " + strconv.Itoa(status) + " " + statusText(status) + "\r\n"
	headers := "Content-Type: " + contentType + "\r\n" +
		"Content-Length: " + strconv.Itoa(len(body)) + "\r\n" +
		"Connection: close\r\n\r\n"

	conn.Write([]byte(statusLine))
	conn.Write([]byte(headers))
	conn.Write(body)
}

func statusText(status int) string {
	switch status {
	case 200:
		return "OK"
	case 400:
		return "Bad Request"
	case 401:
		return "Unauthorized"
	case 404:
		return "Not Found"
	case 500:
		return "Internal Server Error"
	default:
		return "Unknown"
	}
}
