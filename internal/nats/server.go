// Package nats runs the embedded NATS server backing the session journal.
// The server listens on no ports and JetStream uses memory storage only:
// every event dies with the process, by contract.
package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/greenflowhq/greenflow/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const streamName = "greenflow_session"

// Event type tokens used as subject suffixes.
const (
	EventTypeProfile     = "profile"
	EventTypePlatform    = "platform"
	EventTypeFeature     = "feature"
	EventTypeSupport     = "support"
	EventTypeChannel     = "channel"
	EventTypeBalance     = "balance"
	EventTypeIntegration = "integration"
	EventTypeCheckout    = "checkout"
)

// SubjectForSession returns the wildcard subject matching all events of a
// session, e.g. "greenflow.signup.>".
func SubjectForSession(session string) string {
	return fmt.Sprintf("greenflow.%s.>", session)
}

// SubjectForEvent returns the subject for one event type in a session,
// e.g. "greenflow.signup.platform".
func SubjectForEvent(session, eventType string) string {
	return fmt.Sprintf("greenflow.%s.%s", session, eventType)
}

// StartEmbedded starts an in-process NATS server with JetStream enabled.
// StoreDir is deliberately unset and streams use memory storage, so the
// journal never touches disk.
func StartEmbedded() (*server.Server, error) {
	logger.Debug("Starting embedded NATS server (memory only)")

	opts := &server.Options{
		JetStream:  true,
		DontListen: true, // No network ports - in-process only
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		logger.Error("Failed to create NATS server: %v", err)
		return nil, err
	}

	go ns.Start()

	if !ns.ReadyForConnections(4 * time.Second) {
		logger.Error("NATS server failed to start within 4s timeout")
		return nil, errors.New("nats server failed to start within timeout")
	}

	logger.Debug("NATS server ready for connections")
	return ns, nil
}

// ConnectInProcess creates an in-process connection to the embedded server.
func ConnectInProcess(ns *server.Server) (*nats.Conn, error) {
	conn, err := nats.Connect("", nats.InProcessServer(ns))
	if err != nil {
		logger.Error("Failed to connect to NATS in-process: %v", err)
		return nil, err
	}
	return conn, nil
}

// SetupStream creates or updates the memory-backed stream for session
// events. Subject pattern greenflow.> matches every session and event type.
func SetupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{"greenflow.>"},
		Storage:  jetstream.MemoryStorage,
	})
}

// Shutdown gracefully drains the connection and stops the server.
func Shutdown(nc *nats.Conn, ns *server.Server) error {
	logger.Debug("Starting NATS shutdown")

	if nc != nil {
		drainDone := make(chan error, 1)
		go func() {
			drainDone <- nc.Drain()
		}()

		select {
		case err := <-drainDone:
			if err != nil {
				logger.Warn("NATS drain failed, forcing close: %v", err)
				nc.Close()
			}
		case <-time.After(2 * time.Second):
			logger.Warn("NATS drain timed out after 2s, forcing close")
			nc.Close()
		}
	}

	if ns != nil {
		ns.Shutdown()

		shutdownDone := make(chan struct{})
		go func() {
			ns.WaitForShutdown()
			close(shutdownDone)
		}()

		select {
		case <-shutdownDone:
			logger.Debug("NATS server shut down cleanly")
		case <-time.After(5 * time.Second):
			logger.Error("NATS server shutdown timed out after 5s")
			return errors.New("NATS server shutdown timed out")
		}
	}

	return nil
}
