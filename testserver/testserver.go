// Package testserver runs a gRPC server on a real TCP listener for
// integration tests.
//
// Unlike an in-memory transport, a TCP listener gives each test server a
// concrete host and port, so the same preflight probe and dial path used
// against an external backend can be exercised against a server owned by
// the test.
package testserver

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

// Server is a gRPC server listening on a local TCP socket.
type Server struct {
	*grpc.Server

	listener  net.Listener
	once      sync.Once
	serveErr  error
	serveDone chan struct{}
}

// NewServer creates a test gRPC server on 127.0.0.1 with an OS-assigned
// port. Services must be registered before calling [Server.Serve].
func NewServer(opts ...grpc.ServerOption) (*Server, error) {
	return NewServerOn("127.0.0.1:0", opts...)
}

// NewServerOn creates a test gRPC server bound to the given address. Use
// it when a scenario depends on a well-known port.
func NewServerOn(addr string, opts ...grpc.ServerOption) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return &Server{
		Server:    grpc.NewServer(opts...),
		listener:  l,
		serveDone: make(chan struct{}),
	}, nil
}

// Addr returns the server's host:port.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Port returns the TCP port the server is bound to.
func (s *Server) Port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Serve begins serving the gRPC server. Safe to call multiple times.
func (s *Server) Serve() {
	s.once.Do(func() {
		go func() {
			s.serveErr = s.Server.Serve(s.listener)
			close(s.serveDone)
		}()
	})
}

// Err blocks until [Server.Serve] completes and returns any error. Useful
// for detecting serve failures in tests.
//
// Example:
//
//	go func() {
//	    if err := s.Err(); err != nil && err != grpc.ErrServerStopped {
//	        t.Errorf("server error: %v", err)
//	    }
//	}()
func (s *Server) Err() error {
	<-s.serveDone
	return s.serveErr
}

// Close shuts down the server and closes the listener.
func (s *Server) Close() {
	s.Stop()
	s.listener.Close()
}

// CloseOnCleanup registers the server to be closed automatically when the
// test ends.
func (s *Server) CloseOnCleanup(t testing.TB) {
	t.Cleanup(s.Close)
}

// ClientConn returns a gRPC client connection to the test server.
//
// The connection dials the server's TCP address over a plaintext channel.
// Additional [grpc.DialOption]s may be provided.
func (s *Server) ClientConn(opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	return s.ClientConnContext(context.Background(), opts...)
}

// ClientConnContext returns a gRPC client connection to the test server.
//
// The connection dials the server's TCP address over a plaintext channel.
// Additional [grpc.DialOption]s may be provided.
func (s *Server) ClientConnContext(ctx context.Context, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(s.Addr(), opts...)
	if err != nil {
		return nil, err
	}

	// Drive the connection out of idle and wait until ready.
	conn.Connect()

	connCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return conn, nil
		}
		if !conn.WaitForStateChange(connCtx, state) {
			return nil, connCtx.Err()
		}
	}
}
