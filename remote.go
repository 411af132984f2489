package fractal

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// maxComputeFrame bounds the JSON frames exchanged per batch. A full
// 1920×1080 batch of float64 coordinates serialises well under this.
const maxComputeFrame = 1 << 27

// computeRequest and computeResponse are the wire messages of the remote
// compute protocol: one JSON request per batch, one JSON response back, in
// order, over a single websocket.
type computeRequest struct {
	Re            []float64 `json:"re"`
	Im            []float64 `json:"im"`
	MaxIterations uint32    `json:"maxIterations"`
	EscapeRadius  float64   `json:"escapeRadius"`
}

type computeResponse struct {
	Counts []uint32 `json:"counts,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// RemoteBackend is a ComputeBackend that forwards batches to a websocket
// peer serving BackendHandler. Calls are synchronous and must come from a
// single goroutine, matching the renderer's one-batch-per-exact-render use.
type RemoteBackend struct {
	conn *websocket.Conn
	ctx  context.Context
}

// DialBackend connects to a remote compute server, e.g.
// "ws://host:8080/compute". The context bounds the dial and every later
// call on the returned backend.
func DialBackend(ctx context.Context, url string) (*RemoteBackend, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial compute server: %w", err)
	}
	conn.SetReadLimit(maxComputeFrame)
	return &RemoteBackend{conn: conn, ctx: ctx}, nil
}

// Close shuts the connection down cleanly.
func (b *RemoteBackend) Close() error {
	return b.conn.Close(websocket.StatusNormalClosure, "")
}

// CalculatePoint implements ComputeBackend via a single-element batch.
func (b *RemoteBackend) CalculatePoint(re, im float64, maxIterations uint32, escapeRadius float64) (uint32, error) {
	counts, err := b.CalculateSet([]float64{re}, []float64{im}, maxIterations, escapeRadius)
	if err != nil {
		return 0, err
	}
	return counts[0], nil
}

// CalculateSet implements ComputeBackend. A failure reported by the server
// or the transport surfaces as an error; no partial counts are returned.
func (b *RemoteBackend) CalculateSet(re, im []float64, maxIterations uint32, escapeRadius float64) ([]uint32, error) {
	req := computeRequest{Re: re, Im: im, MaxIterations: maxIterations, EscapeRadius: escapeRadius}
	if err := wsjson.Write(b.ctx, b.conn, req); err != nil {
		return nil, fmt.Errorf("send compute request: %w", err)
	}
	var resp computeResponse
	if err := wsjson.Read(b.ctx, b.conn, &resp); err != nil {
		return nil, fmt.Errorf("read compute response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("remote backend: %s", resp.Error)
	}
	if resp.Counts == nil {
		resp.Counts = []uint32{}
	}
	return resp.Counts, nil
}

// BackendHandler serves the given backend to RemoteBackend clients: it
// accepts a websocket per request and answers compute batches until the
// client disconnects. Backend errors are reported in-band so the client's
// exact render fails cleanly instead of tearing the connection down.
func BackendHandler(backend ComputeBackend) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			return
		}
		defer conn.CloseNow()
		conn.SetReadLimit(maxComputeFrame)

		ctx := r.Context()
		for {
			var req computeRequest
			if err := wsjson.Read(ctx, conn, &req); err != nil {
				return
			}

			var resp computeResponse
			counts, err := backend.CalculateSet(req.Re, req.Im, req.MaxIterations, req.EscapeRadius)
			if err != nil {
				resp.Error = err.Error()
			} else {
				resp.Counts = counts
			}
			if err := wsjson.Write(ctx, conn, resp); err != nil {
				return
			}
		}
	})
}
