package app

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"go.trai.ch/flowpack/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const maxRequestLine = 1 << 20

// Request is one line of the host protocol: a module the host is about to load.
type Request struct {
	ID     int64  `json:"id"`
	Module string `json:"module"`
}

// Response answers a Request with substitute source, a fall-through, or an error.
type Response struct {
	ID          int64  `json:"id"`
	Source      string `json:"source,omitempty"`
	Fallthrough bool   `json:"fallthrough,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ServeOptions configures Serve.
type ServeOptions struct {
	// Watch reloads the session when dependencies change.
	Watch bool
	// Concurrency bounds the requests handled at once. Zero means GOMAXPROCS.
	Concurrency int
}

// Serve answers newline-delimited JSON requests from in until it reaches EOF,
// writing one response line per request to out. Responses may arrive out of
// order; hosts match them by id.
func (a *App) Serve(ctx context.Context, cfg *domain.Config, in io.Reader, out io.Writer, opts ServeOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var current atomic.Pointer[Session]
	initial := a.OpenSession(ctx, cfg)
	current.Store(initial)

	watchDone := make(chan error, 1)
	if opts.Watch {
		go func() {
			watchDone <- a.Watch(ctx, initial, func(s *Session) { current.Store(s) })
		}()
	} else {
		watchDone <- nil
	}

	err := a.handleRequests(ctx, in, out, &current, opts.Concurrency)
	cancel()
	return errors.Join(err, <-watchDone)
}

func (a *App) handleRequests(
	ctx context.Context,
	in io.Reader,
	out io.Writer,
	current *atomic.Pointer[Session],
	concurrency int,
) error {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	var mu sync.Mutex
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	write := func(resp Response) error {
		mu.Lock()
		defer mu.Unlock()
		return enc.Encode(resp)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestLine)

	for scanner.Scan() {
		if gctx.Err() != nil {
			break
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		req, err := decodeRequest(line)
		if err != nil {
			a.logger.Warn(err.Error())
			if err := write(Response{ID: req.ID, Error: err.Error()}); err != nil {
				_ = g.Wait()
				return err
			}
			continue
		}

		// The session is captured at dispatch so a reload never changes the
		// answer to a request already in flight.
		session := current.Load()
		g.Go(func() error {
			return write(respond(session, req))
		})
	}

	waitErr := g.Wait()
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return errors.Join(waitErr, zerr.With(zerr.Wrap(domain.ErrRequestTooLarge, "host protocol"), "limit", maxRequestLine))
		}
		return errors.Join(waitErr, zerr.Wrap(err, "failed to read host protocol input"))
	}
	return waitErr
}

func decodeRequest(line []byte) (Request, error) {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return req, zerr.Wrap(err, domain.ErrInvalidRequest.Error())
	}
	if req.Module == "" {
		return req, zerr.With(zerr.Wrap(domain.ErrMissingModuleID, domain.ErrInvalidRequest.Error()), "id", req.ID)
	}
	return req, nil
}

func respond(session *Session, req Request) Response {
	source, ok := session.Interceptor.TryRewrite(req.Module)
	if !ok {
		return Response{ID: req.ID, Fallthrough: true}
	}
	return Response{ID: req.ID, Source: source}
}
