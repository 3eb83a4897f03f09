// Package benchmark compares the goutil logging pipeline against
// go.uber.org/zap and log/slog with every framework writing to the
// same discarded sink.
package benchmark

import "github.com/dkovralev/goutil/log"

type noopDriver struct{}

func newNoopDriver() log.Driver {
	return &noopDriver{}
}

func (d *noopDriver) Submit(e *log.Entry) error {
	_ = len(e.Text)
	return nil
}

func (d *noopDriver) Close() error {
	return nil
}
