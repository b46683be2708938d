package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

var (
	// ErrInputCancelled is returned when input is canceled by context.
	ErrInputCancelled = errors.New("input canceled")
	// ErrEmptyInput is returned when the reader holds no JSON document.
	ErrEmptyInput = errors.New("empty input")
	// ErrTrailingData is returned when anything but whitespace follows the JSON document.
	ErrTrailingData = errors.New("unexpected data after JSON document")
)

// ReadJSON decodes exactly one JSON document from r into v, respecting context cancellation.
// The read continues in the background after cancellation until r returns.
func ReadJSON(ctx context.Context, r io.Reader, v any) error {
	if r == nil {
		return ErrEmptyInput
	}

	resultCh := make(chan error, 1)

	go func() {
		br := bufio.NewReader(r)
		if _, err := br.Peek(1); err != nil {
			if errors.Is(err, io.EOF) {
				resultCh <- ErrEmptyInput
				return
			}
			resultCh <- err
			return
		}

		dec := json.NewDecoder(br)
		if err := dec.Decode(v); err != nil {
			resultCh <- fmt.Errorf("failed to decode JSON: %w", err)
			return
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			resultCh <- fmt.Errorf("failed to decode JSON: %w", ErrTrailingData)
			return
		}
		resultCh <- nil
	}()

	select {
	case <-ctx.Done():
		return ErrInputCancelled
	case err := <-resultCh:
		return err
	}
}
