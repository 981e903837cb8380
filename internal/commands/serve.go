package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/lifecycle"
)

// maxRequestSize bounds a single request line; state documents can be large.
const maxRequestSize = 16 << 20

// Request is one JSON-lines invocation from the host.
type Request struct {
	ID   json.RawMessage `json:"id,omitempty"`
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Response answers a Request. Exactly one of Result or Error is meaningful.
type Response struct {
	ID     json.RawMessage `json:"id,omitempty"`
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Serve reads one request per line from in and writes one response per line to out,
// handling requests strictly in order. It returns when in is exhausted or ctx is done,
// even while a read from in is still blocked.
func (r *Registry) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan []byte)
	scanErr := make(chan error, 1)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxRequestSize)
		for scanner.Scan() {
			// The scanner reuses its buffer between lines.
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return nil
			}
		}
		scanErr <- scanner.Err()
		return nil
	})

	encoder := json.NewEncoder(out)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return ctx.Err()
				}
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if len(line) == 0 {
				continue
			}

			resp := r.handle(ctx, line)
			if err := encoder.Encode(resp); err != nil {
				return fmt.Errorf("write response: %w", err)
			}
		}
	}
}

func (r *Registry) handle(ctx context.Context, line []byte) Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Response{Error: fmt.Sprintf("invalid request: %v", err)}
	}

	result, err := r.Invoke(ctx, req.Cmd, req.Args)
	if err != nil {
		return Response{ID: req.ID, Error: err.Error()}
	}

	// Encode here so a result JSON cannot represent (e.g. NaN) fails this
	// request only.
	data, err := json.Marshal(result)
	if err != nil {
		return Response{ID: req.ID, Error: fmt.Sprintf("encode result: %v", err)}
	}
	return Response{ID: req.ID, OK: true, Result: data}
}
