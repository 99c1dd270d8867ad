// Package htmllint serves the HTML linter over HTTP and lints files of an fs.FS.
package htmllint

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"golang.org/x/net/html"

	"github.com/dpotapov/go-htmllint/lint"
	"github.com/dpotapov/go-htmllint/lint/rules"
	"github.com/dpotapov/go-htmllint/report"
)

// DefaultMaxBodySize limits the size of a document posted to the Handler.
const DefaultMaxBodySize = 10 << 20

// wsUpgrader is a Gorilla WebSocket instance, used to respond HTTP requests with WebSocket.
var wsUpgrader = websocket.Upgrader{}

// Handler lints HTML documents sent over HTTP and replies with a JSON report.
//
//   - POST with the document as the request body lints it.
//   - GET lints a file or the HTML files of a directory in FileSystem.
//   - A WebSocket upgrade lints every message as a separate document, replying with
//     one report per message.
//
// The query parameter "types" restricts the report to a comma-separated list of
// categories (structure, helper, fluff); "file" sets the label of posted documents.
type Handler struct {
	// FileSystem to lint files from on GET requests. GET is not allowed if it is nil.
	FileSystem fs.FS

	// Rules are the rule tables for linting. If not set, rules.Default() is used.
	Rules *rules.Rules

	// MaxBodySize limits the size of posted documents and WebSocket messages.
	// If not set, DefaultMaxBodySize is used.
	MaxBodySize int64

	// OnError is a callback that is called when an error occurs while serving a request.
	OnError func(*http.Request, error)

	// Logger configures logging for internal events.
	Logger *slog.Logger

	// init is used to initialize the handler only once.
	init sync.Once

	// logger is a private logger instance that is used to log internal events.
	logger *slog.Logger

	// initErr is set if Rules are unusable, failing every request.
	initErr error
}

// Response is the JSON body of a lint reply.
type Response struct {
	report.JSONOutput

	// Error is set when the document could not be linted to the end. Errors then holds
	// the records found up to that point.
	Error string `json:"error,omitempty"`
}

// ServeHTTP implements the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.init.Do(func() {
		h.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		if h.Logger != nil {
			h.logger = h.Logger
		}
		if h.MaxBodySize <= 0 {
			h.MaxBodySize = DefaultMaxBodySize
		}
		if _, err := h.newLinter(); err != nil {
			h.initErr = fmt.Errorf("compile rules: %w", err)
			h.logger.Error("Init handler", "error", err)
		}
	})

	err := h.initErr
	if err == nil {
		err = h.handleRequest(w, r)
	}
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		h.logger.Error("Serve HTTP request", "url", r.URL.Redacted(), "error", err)

		if h.OnError != nil {
			h.OnError(r, err)
		}
	}
}

func (h *Handler) handleRequest(w http.ResponseWriter, r *http.Request) error {
	categories, err := parseTypes(r.URL.Query().Get("types"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	l, err := h.newLinter(lint.WithFilter(categories...))
	if err != nil {
		return err
	}

	if websocket.IsWebSocketUpgrade(r) {
		return h.serveWebSocket(w, r, l)
	}

	switch r.Method {
	case http.MethodPost:
		return h.servePost(w, r, l)
	case http.MethodGet, http.MethodHead:
		if h.FileSystem != nil {
			return h.serveFS(w, r, l)
		}
	}

	w.Header().Set("Allow", h.allowed())
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	return nil
}

func (h *Handler) newLinter(opts ...lint.Option) (*lint.Linter, error) {
	opts = append(opts, lint.WithLogger(h.logger))
	if h.Rules != nil {
		opts = append(opts, lint.WithRules(h.Rules))
	}
	return lint.New(opts...)
}

func (h *Handler) allowed() string {
	if h.FileSystem != nil {
		return "GET, HEAD, POST"
	}
	return "POST"
}

func (h *Handler) servePost(w http.ResponseWriter, r *http.Request, l *lint.Linter) error {
	l.BeginDocument(r.URL.Query().Get("file"))
	body := http.MaxBytesReader(w, r.Body, h.MaxBodySize)

	status := http.StatusOK
	resp := Response{}
	if err := l.Parse(body); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr), errors.Is(err, html.ErrBufferExceeded):
			status = http.StatusRequestEntityTooLarge
		default:
			return fmt.Errorf("lint request body: %w", err)
		}
		resp.Error = err.Error()
	}
	resp.JSONOutput = report.NewJSONOutput(l.Errors())
	return writeJSON(w, status, resp)
}

func (h *Handler) serveFS(w http.ResponseWriter, r *http.Request, l *lint.Linter) error {
	name := strings.TrimPrefix(cleanPath(r.URL.Path), "/")
	name = strings.TrimSuffix(name, "/")
	if name == "" {
		name = "."
	}
	if _, err := fs.Stat(h.FileSystem, name); err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return nil
		}
		return err
	}

	resp := Response{}
	if err := LintFS(l, h.FileSystem, name); err != nil {
		h.logger.Warn("Lint files", "path", name, "error", err)
		resp.Error = err.Error()
	}
	resp.JSONOutput = report.NewJSONOutput(l.Errors())
	return writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) serveWebSocket(w http.ResponseWriter, r *http.Request, l *lint.Linter) error {
	ws, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer ws.Close()
	ws.SetReadLimit(h.MaxBodySize)

	file := r.URL.Query().Get("file")
	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("read websocket message: %w", err)
		}

		l.ClearErrors()
		l.BeginDocument(file)
		resp := Response{}
		if err := l.Parse(bytes.NewReader(msg)); err != nil {
			resp.Error = err.Error()
		}
		resp.JSONOutput = report.NewJSONOutput(l.Errors())

		mw, err := ws.NextWriter(websocket.TextMessage)
		if err != nil {
			return fmt.Errorf("get websocket writer: %w", err)
		}
		if err := json.NewEncoder(mw).Encode(resp); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if err := mw.Close(); err != nil {
			return fmt.Errorf("close websocket writer: %w", err)
		}
		h.logger.Debug("Lint websocket message", "file", file, "errors", l.Len())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// parseTypes parses the comma-separated category list of the "types" parameter.
func parseTypes(s string) ([]lint.Category, error) {
	var out []lint.Category
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		c, err := lint.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// cleanPath returns the canonical path for p, eliminating . and .. elements.
//
// Copied from net/http/server.go
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	// path.Clean removes trailing slash except for root;
	// put the trailing slash back if necessary.
	if p[len(p)-1] == '/' && np != "/" {
		// Fast path for common case of p being the string we want:
		if len(p) == len(np)+1 && strings.HasPrefix(p, np) {
			np = p
		} else {
			np += "/"
		}
	}
	return np
}
