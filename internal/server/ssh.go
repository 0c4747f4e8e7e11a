// Package server exposes the game over SSH: each session gets a PTY,
// streams frame snapshots from the loop, and feeds decoded input back.
package server

import (
	"fmt"
	"io"
	"log"
	"time"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"

	"github.com/jackmiller2708/bit-bound/internal/game"
	"github.com/jackmiller2708/bit-bound/internal/render"
)

// SSHServer wraps the SSH listener and game loop integration.
type SSHServer struct {
	loop    *game.Loop
	addr    string
	hostKey string
}

// NewSSHServer creates a server bound to the given address.
func NewSSHServer(addr, hostKey string, loop *game.Loop) *SSHServer {
	return &SSHServer{
		loop:    loop,
		addr:    addr,
		hostKey: hostKey,
	}
}

// Start begins listening for SSH connections. Blocks.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr: s.addr,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	_, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := sess.User()
	if username == "" {
		username = "anonymous"
	}
	sessionID := fmt.Sprintf("%s_%d", username, time.Now().UnixNano())

	frameCh := s.loop.Subscribe(sessionID)
	log.Printf("Player connected: %s", sessionID)
	defer func() {
		s.loop.Unsubscribe(sessionID)
		log.Printf("Player disconnected: %s", sessionID)
	}()

	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	inputCh := s.loop.InputChan()
	quitCh := make(chan struct{})

	// Read raw input off the session.
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				close(quitCh)
				return
			}
			for _, action := range ParseInput(buf[:n]) {
				if action == game.ActionQuit {
					close(quitCh)
					return
				}
				select {
				case inputCh <- game.InputEvent{PlayerID: sessionID, Action: action}:
				default:
				}
			}
		}
	}()

	presenter := render.NewPresenter()

	for {
		select {
		case <-quitCh:
			return
		case <-winCh:
			// Full repaint after a resize.
			io.WriteString(sess, render.ClearScreen())
			presenter.Invalidate()
		case frame, ok := <-frameCh:
			if !ok {
				return
			}
			if out := presenter.Present(frame); len(out) > 0 {
				io.WriteString(sess, out)
			}
		}
	}
}

// ParseInput converts raw session bytes into player actions. Handles WASD,
// arrow key escape sequences, B (debug overlay), Q, and Ctrl-C.
func ParseInput(data []byte) []game.Action {
	var actions []game.Action
	i := 0
	for i < len(data) {
		// Arrow key escape sequences.
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				actions = append(actions, game.ActionUp)
			case 'B':
				actions = append(actions, game.ActionDown)
			case 'C':
				actions = append(actions, game.ActionRight)
			case 'D':
				actions = append(actions, game.ActionLeft)
			}
			i += 3
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'w', 'W':
			actions = append(actions, game.ActionUp)
		case 's', 'S':
			actions = append(actions, game.ActionDown)
		case 'a', 'A':
			actions = append(actions, game.ActionLeft)
		case 'd', 'D':
			actions = append(actions, game.ActionRight)
		case 'b', 'B':
			actions = append(actions, game.ActionToggleDebug)
		case 'q', 'Q':
			actions = append(actions, game.ActionQuit)
		case 3: // Ctrl-C
			actions = append(actions, game.ActionQuit)
		}
		i += size
	}
	return actions
}
