package mcp

import (
	"context"
	"fmt"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/bgdrop/internal/background"
	"github.com/1broseidon/bgdrop/internal/platform"
	"github.com/1broseidon/bgdrop/internal/session"
)

const (
	ServerName    = "bgdrop"
	ServerVersion = "0.1.0"
)

// Server exposes the display table and background commands as MCP tools.
type Server struct {
	mcpServer *mcpsdk.Server
	displays  []platform.Display

	// The SDK runs handlers concurrently; mu serialises all session access.
	mu      sync.Mutex
	session *session.Session
}

// NewServer wraps an already-built session. displays must be the list it was built from.
func NewServer(displays []platform.Display, s *session.Session) *Server {
	srv := &Server{
		displays: displays,
		session:  s,
	}
	srv.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	srv.registerTools()
	return srv
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_displays",
		Description: "List connected displays left to right with geometry, the image last set on each and its scaling mode.",
	}, s.handleListDisplays)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_background",
		Description: "Set the background image of one display. Returns the exact command that was issued. The command's exit status is not checked.",
	}, s.handleSetBackground)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "set_mode",
		Description: "Change a display's scaling mode. If an image was already set on the display it is re-applied with the new mode.",
	}, s.handleSetMode)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "command_log",
		Description: "Return the most recent background command issued for each display, in display order.",
	}, s.handleCommandLog)
}

func (s *Server) handleListDisplays(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListDisplaysInput) (*mcpsdk.CallToolResult, ListDisplaysOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := ListDisplaysOutput{Displays: make([]DisplayInfo, 0, len(s.displays))}
	for _, d := range s.displays {
		st, _ := s.session.State(d.Name)
		out.Displays = append(out.Displays, DisplayInfo{
			Name:        d.Name,
			Description: d.Description,
			X:           d.Bounds.X,
			Y:           d.Bounds.Y,
			Width:       d.Bounds.Width,
			Height:      d.Bounds.Height,
			File:        st.File,
			Mode:        string(st.Mode),
			Command:     st.Command,
		})
	}
	return nil, out, nil
}

func (s *Server) handleSetBackground(_ context.Context, _ *mcpsdk.CallToolRequest, args SetBackgroundInput) (*mcpsdk.CallToolResult, SetBackgroundOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.session.State(args.Display)
	if !ok {
		return nil, SetBackgroundOutput{}, fmt.Errorf("%w %q", session.ErrUnknownDisplay, args.Display)
	}
	mode := st.Mode
	if args.Mode != "" {
		m, err := background.ParseMode(args.Mode)
		if err != nil {
			return nil, SetBackgroundOutput{}, err
		}
		mode = m
	}

	cmd, err := s.session.Set(args.Display, args.Path, mode)
	if err != nil {
		return nil, SetBackgroundOutput{}, err
	}
	return nil, SetBackgroundOutput{Command: cmd}, nil
}

func (s *Server) handleSetMode(_ context.Context, _ *mcpsdk.CallToolRequest, args SetModeInput) (*mcpsdk.CallToolResult, SetModeOutput, error) {
	mode, err := background.ParseMode(args.Mode)
	if err != nil {
		return nil, SetModeOutput{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.session.State(args.Display)
	if !ok {
		return nil, SetModeOutput{}, fmt.Errorf("%w %q", session.ErrUnknownDisplay, args.Display)
	}
	s.session.OnModeChange(args.Display, mode)
	if st.File == "" {
		return nil, SetModeOutput{Applied: false}, nil
	}
	after, _ := s.session.State(args.Display)
	return nil, SetModeOutput{Applied: true, Command: after.Command}, nil
}

func (s *Server) handleCommandLog(_ context.Context, _ *mcpsdk.CallToolRequest, _ CommandLogInput) (*mcpsdk.CallToolResult, CommandLogOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nil, CommandLogOutput{Lines: s.session.Log()}, nil
}
