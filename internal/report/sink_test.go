package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

const sampleReport = "Room first info\n>> Thermometer name is: t1\n>>>> Temperature is: 25\n"

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink("stdout", &buf)

	if err := sink.Publish(context.Background(), sampleReport); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if got, want := buf.String(), Banner+sampleReport; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if sink.Name() != "stdout" {
		t.Errorf("Name() = %q, want stdout", sink.Name())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterSink_WriteError(t *testing.T) {
	sink := NewWriterSink("broken", failingWriter{})
	if err := sink.Publish(context.Background(), sampleReport); err == nil {
		t.Error("Publish() expected error, got nil")
	}
}

func TestWriterSink_CancelledContext(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewWriterSink("stdout", &buf).Publish(ctx, sampleReport); !errors.Is(err, context.Canceled) {
		t.Errorf("Publish() error = %v, want context.Canceled", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want nothing written", buf.String())
	}
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	sink := NewFileSink(path)

	if err := sink.Publish(context.Background(), "old report\n"); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if err := sink.Publish(context.Background(), sampleReport); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != sampleReport {
		t.Errorf("file = %q, want %q", data, sampleReport)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if perm := info.Mode().Perm(); perm != filePermissions {
		t.Errorf("file mode = %o, want %o", perm, filePermissions)
	}
}

func TestFileSink_MissingDirectory(t *testing.T) {
	sink := NewFileSink(filepath.Join(t.TempDir(), "missing", "report.txt"))
	if err := sink.Publish(context.Background(), sampleReport); err == nil {
		t.Error("Publish() expected error for missing directory, got nil")
	}
}

type fakePublisher struct {
	topic   string
	payload []byte
	err     error
}

func (p *fakePublisher) PublishRetained(topic string, payload []byte) error {
	p.topic = topic
	p.payload = payload
	return p.err
}

func TestMQTTSink(t *testing.T) {
	pub := &fakePublisher{}
	sink := NewMQTTSink(pub, "My Home")

	if err := sink.Publish(context.Background(), sampleReport); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if pub.topic != "smarthome/report/my-home" {
		t.Errorf("topic = %q, want smarthome/report/my-home", pub.topic)
	}
	if string(pub.payload) != sampleReport {
		t.Errorf("payload = %q, want report without banner", pub.payload)
	}
	if sink.Name() != "mqtt:smarthome/report/my-home" {
		t.Errorf("Name() = %q", sink.Name())
	}
}

func TestMQTTSink_Error(t *testing.T) {
	brokerErr := errors.New("broker gone")
	sink := NewMQTTSink(&fakePublisher{err: brokerErr}, "home")

	if err := sink.Publish(context.Background(), sampleReport); !errors.Is(err, brokerErr) {
		t.Errorf("Publish() error = %v, want wrapped broker error", err)
	}
}

func TestSnapshot(t *testing.T) {
	snap := NewSnapshot("home")
	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	snap.now = func() time.Time { return fixed }

	if _, _, err := snap.Latest(); !errors.Is(err, ErrNoReport) {
		t.Fatalf("Latest() error = %v, want ErrNoReport", err)
	}

	if err := snap.Publish(context.Background(), sampleReport); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	got, at, err := snap.Latest()
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if got != sampleReport {
		t.Errorf("Latest() report = %q, want %q", got, sampleReport)
	}
	if !at.Equal(fixed) {
		t.Errorf("Latest() generatedAt = %v, want %v", at, fixed)
	}
	if snap.Home() != "home" {
		t.Errorf("Home() = %q, want home", snap.Home())
	}
}

func TestSnapshot_ConcurrentAccess(t *testing.T) {
	snap := NewSnapshot("home")
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = snap.Publish(context.Background(), sampleReport)
		}()
		go func() {
			defer wg.Done()
			_, _, _ = snap.Latest()
		}()
	}
	wg.Wait()

	if got, _, err := snap.Latest(); err != nil || got != sampleReport {
		t.Errorf("Latest() = %q, %v, want sample report", got, err)
	}
}
