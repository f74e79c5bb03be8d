package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/p0sel0k/hw3/internal/infrastructure/mqtt"
)

// Banner precedes every report written to a console.
const Banner = "---------Home Report--------\n"

// filePermissions restricts report files to the owner.
const filePermissions = 0600

// ErrNoReport is returned by Snapshot.Latest before the first report.
var ErrNoReport = errors.New("report: no report generated yet")

// Sink is a destination for rendered reports.
type Sink interface {
	// Name identifies the sink in logs and errors.
	Name() string

	// Publish delivers a complete report.
	Publish(ctx context.Context, report string) error
}

// WriterSink writes reports to an io.Writer, preceded by Banner.
type WriterSink struct {
	name string
	w    io.Writer
	mu   sync.Mutex
}

// NewWriterSink creates a console-style sink.
func NewWriterSink(name string, w io.Writer) *WriterSink {
	return &WriterSink{name: name, w: w}
}

// Name implements Sink.
func (s *WriterSink) Name() string { return s.name }

// Publish implements Sink.
func (s *WriterSink) Publish(ctx context.Context, report string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.w, Banner+report); err != nil {
		return fmt.Errorf("writing report to %s: %w", s.name, err)
	}
	return nil
}

// FileSink replaces the contents of a file with each report.
type FileSink struct {
	path string
}

// NewFileSink creates a sink writing to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Name implements Sink.
func (s *FileSink) Name() string { return "file:" + s.path }

// Publish implements Sink.
func (s *FileSink) Publish(ctx context.Context, report string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(report), filePermissions); err != nil {
		return fmt.Errorf("writing report file: %w", err)
	}
	return nil
}

// Publisher is the subset of the MQTT client the MQTT sink needs.
type Publisher interface {
	PublishRetained(topic string, payload []byte) error
}

// MQTTSink publishes reports retained on the home's report topic.
type MQTTSink struct {
	client Publisher
	topic  string
}

// NewMQTTSink creates a sink publishing to smarthome/report/<home-slug>.
func NewMQTTSink(client Publisher, home string) *MQTTSink {
	return &MQTTSink{
		client: client,
		topic:  mqtt.Topics{}.Report(home),
	}
}

// Name implements Sink.
func (s *MQTTSink) Name() string { return "mqtt:" + s.topic }

// Topic returns the topic reports are published on.
func (s *MQTTSink) Topic() string { return s.topic }

// Publish implements Sink.
func (s *MQTTSink) Publish(ctx context.Context, report string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.client.PublishRetained(s.topic, []byte(report)); err != nil {
		return fmt.Errorf("publishing report: %w", err)
	}
	return nil
}

// Snapshot keeps the most recent report for concurrent readers.
type Snapshot struct {
	home string
	now  func() time.Time

	mu          sync.RWMutex
	report      string
	generatedAt time.Time
	ok          bool
}

// NewSnapshot creates an empty snapshot for the named home.
func NewSnapshot(home string) *Snapshot {
	return &Snapshot{home: home, now: time.Now}
}

// Name implements Sink.
func (s *Snapshot) Name() string { return "snapshot" }

// Home returns the home label the snapshot belongs to.
func (s *Snapshot) Home() string { return s.home }

// Publish implements Sink.
func (s *Snapshot) Publish(_ context.Context, report string) error {
	s.mu.Lock()
	s.report = report
	s.generatedAt = s.now().UTC()
	s.ok = true
	s.mu.Unlock()
	return nil
}

// Latest returns the last published report and when it was stored.
func (s *Snapshot) Latest() (string, time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ok {
		return "", time.Time{}, ErrNoReport
	}
	return s.report, s.generatedAt, nil
}
