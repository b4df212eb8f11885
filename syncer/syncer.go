// Package syncer mirrors blobs between two stores, typically the remote
// backend and a local backup directory.
package syncer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go-street-kiosk/database"
)

type Action string

const (
	ActionCopy Action = "copy"
	ActionSkip Action = "skip"
)

// Step is the decision for one key. DestTime is zero when the key is
// missing from the destination.
type Step struct {
	Key        string
	Action     Action
	Reason     string
	SourceTime time.Time
	DestTime   time.Time
}

// Plan compares last-modified times key by key. A key is copied when the
// destination lacks it or holds an older version with different bytes. A
// copy stamps the destination with its own write time, so comparing times
// alone would send the blob straight back on the next run the other way.
func Plan(ctx context.Context, src, dst database.BlobStore, prefix string) ([]Step, error) {
	keys, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list source: %w", err)
	}
	sort.Strings(keys)

	steps := make([]Step, 0, len(keys))
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		srcTime, err := src.Stat(ctx, key)
		if errors.Is(err, database.ErrNotFound) {
			// removed since List
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("stat source %s: %w", key, err)
		}
		step := Step{Key: key, SourceTime: srcTime}
		dstTime, err := dst.Stat(ctx, key)
		switch {
		case errors.Is(err, database.ErrNotFound):
			step.Action, step.Reason = ActionCopy, "missing"
		case err != nil:
			return nil, fmt.Errorf("stat destination %s: %w", key, err)
		case dstTime.Before(srcTime):
			step.DestTime = dstTime
			same, err := sameBytes(ctx, src, dst, key)
			if err != nil {
				return nil, err
			}
			if same {
				step.Action, step.Reason = ActionSkip, "identical"
			} else {
				step.Action, step.Reason = ActionCopy, "outdated"
			}
		default:
			step.Action, step.Reason, step.DestTime = ActionSkip, "up to date", dstTime
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func sameBytes(ctx context.Context, src, dst database.BlobStore, key string) (bool, error) {
	srcData, err := src.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read source %s: %w", key, err)
	}
	dstData, err := dst.Get(ctx, key)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read destination %s: %w", key, err)
	}
	return bytes.Equal(srcData, dstData), nil
}

// Apply copies every blob the plan marks for copying. It stops at the first
// failure and reports how many blobs were copied before it.
func Apply(ctx context.Context, src, dst database.BlobStore, steps []Step) (int, error) {
	copied := 0
	for _, step := range steps {
		if step.Action != ActionCopy {
			continue
		}
		data, err := src.Get(ctx, step.Key)
		if err != nil {
			return copied, fmt.Errorf("read %s: %w", step.Key, err)
		}
		if err := dst.Put(ctx, step.Key, data); err != nil {
			return copied, fmt.Errorf("write %s: %w", step.Key, err)
		}
		copied++
	}
	return copied, nil
}

// Pending counts the steps that would copy.
func Pending(steps []Step) int {
	n := 0
	for _, step := range steps {
		if step.Action == ActionCopy {
			n++
		}
	}
	return n
}
