package export

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"profile-exporter/core/event"
	"profile-exporter/feature/profile/models"
	"profile-exporter/feature/profile/ordering"
)

// maxCaptureLine bounds one captured event; profile payloads run to several MB.
const maxCaptureLine = 64 << 20

// Dispatcher delivers captured events.
type Dispatcher interface {
	Dispatch(ctx context.Context, env event.Envelope) (event.Result, error)
}

// ReplayStats counts the outcomes of a replay.
type ReplayStats struct {
	Lines    int            `json:"lines"`
	Invalid  int            `json:"invalid"`
	Statuses map[string]int `json:"statuses"`
}

// Replay reads a capture of JSON encoded envelopes, one per line, and
// delivers them in order. Blank lines are skipped. Lines that are not
// envelopes, or whose payload fails to decode, are counted as invalid;
// they abort the replay unless skipInvalid is set.
func Replay(ctx context.Context, r io.Reader, d Dispatcher, skipInvalid bool) (ReplayStats, error) {
	stats := ReplayStats{Statuses: make(map[string]int)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1<<20), maxCaptureLine)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		stats.Lines++

		var env event.Envelope
		err := json.Unmarshal(line, &env)
		if err == nil && env.Command == "" {
			err = errors.New("command is required")
		}
		if err == nil {
			var res event.Result
			res, err = d.Dispatch(ctx, env)
			if errors.Is(err, event.ErrUnhandled) {
				err = nil
			}
			if err == nil {
				stats.Statuses[res.Status]++
				continue
			}
		}

		stats.Invalid++
		if !skipInvalid {
			return stats, fmt.Errorf("line %d: %w", stats.Lines, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read capture: %w", err)
	}
	return stats, nil
}

// SortProfile applies the canonical ordering to an encoded profile and
// returns it re-encoded the way exported files are written.
func SortProfile(data []byte) ([]byte, error) {
	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	out, err := models.MarshalIndent(ordering.Order(&p))
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}
	return out, nil
}
