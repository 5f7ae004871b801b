package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-clock/internal/config"
)

// frame stores an encoded snapshot and its metadata for HTTP caching.
type frame struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// SnapshotServer serves the most recent clock frame as a PNG on localhost.
type SnapshotServer struct {
	// latest is swapped whole on every Update so readers never see a
	// half-written frame.
	latest atomic.Pointer[frame]
	addr   atomic.Pointer[string]
	Port   string
}

// NewSnapshotServer creates a new instance of the server.
func NewSnapshotServer(port string) *SnapshotServer {
	return &SnapshotServer{
		Port: port,
	}
}

// Addr returns the bound listen address once Start is serving, or "".
func (s *SnapshotServer) Addr() string {
	if a := s.addr.Load(); a != nil {
		return *a
	}
	return ""
}

// Start binds the listener and blocks until the context is cancelled.
// Port "0" picks a free port; see Addr.
func (s *SnapshotServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", config.LocalhostBindAddr+config.AddrSeparator+s.Port)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
	addr := ln.Addr().String()
	s.addr.Store(&addr)
	defer s.addr.Store(nil)

	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.handleSnapshotRequest)

	srv := &http.Server{
		Handler:      mux,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyAddr, addr,
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update atomically replaces the served frame.
func (s *SnapshotServer) Update(png []byte) {
	hash := sha256.Sum256(png)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	s.latest.Store(&frame{
		data:         png,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	})

	slog.Debug(config.MsgSnapshotUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(png),
		config.LogKeyETag, etag,
	)
}

// handleSnapshotRequest serves the PNG frame with HTTP caching support.
func (s *SnapshotServer) handleSnapshotRequest(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != config.RouteRoot && r.URL.Path != config.RouteSnapshot {
		http.NotFound(w, r)
		return
	}

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	item := s.latest.Load()

	// No frame has been rendered yet.
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeImagePNG)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlNoCache)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}
