package bridge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"

	"github.com/t3lang/t3lang-shell/internal/application/menu"
	"github.com/t3lang/t3lang-shell/internal/domain"
	"github.com/t3lang/t3lang-shell/internal/pkg/logger"
)

type emission struct {
	Name    domain.EventName
	Payload []interface{}
}

type recordingEmitter struct {
	mu    sync.Mutex
	sent  []emission
	err   error
	fired chan struct{}
}

func newRecordingEmitter() *recordingEmitter {
	return &recordingEmitter{fired: make(chan struct{}, 16)}
}

func (r *recordingEmitter) Emit(name domain.EventName, payload ...interface{}) error {
	r.mu.Lock()
	r.sent = append(r.sent, emission{Name: name, Payload: payload})
	r.mu.Unlock()
	r.fired <- struct{}{}
	return r.err
}

func (r *recordingEmitter) emissions() []emission {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]emission(nil), r.sent...)
}

func TestDispatchMapsEveryMenuAction(t *testing.T) {
	want := map[string]domain.EventName{
		domain.MenuIDOpenFile:     domain.EventOpenFile,
		domain.MenuIDOpenFolder:   domain.EventOpenFolder,
		domain.MenuIDSettings:     domain.EventSettings,
		domain.MenuIDInstallCLI:   domain.EventInstallCLI,
		domain.MenuIDUninstallCLI: domain.EventUninstallCLI,
	}

	for _, variant := range []domain.MenuVariant{domain.MenuVariantFull, domain.MenuVariantCompact} {
		tree, err := menu.NewBuilder("T3Lang").Build(variant)
		if err != nil {
			t.Fatal(err)
		}
		for _, id := range tree.ActionIDs() {
			emitter := newRecordingEmitter()
			New(emitter, nil).Dispatch(id)

			got := emitter.emissions()
			wantEmission := []emission{{Name: want[id]}}
			if diff := cmp.Diff(wantEmission, got); diff != "" {
				t.Errorf("%s/%s emissions mismatch (-want +got):\n%s", variant, id, diff)
			}
		}
	}
}

func TestDispatchIgnoresUnknownIdentifiers(t *testing.T) {
	emitter := newRecordingEmitter()
	b := New(emitter, nil)

	for _, id := range []string{"", "quit", "about", "open-file "} {
		b.Dispatch(id)
	}
	if got := emitter.emissions(); len(got) != 0 {
		t.Fatalf("expected no emissions, got %+v", got)
	}
}

func TestDispatchSwallowsEmitErrors(t *testing.T) {
	emitter := newRecordingEmitter()
	emitter.err = errors.New("no window")
	New(emitter, logger.NewStd(false)).Dispatch(domain.MenuIDSettings)

	if len(emitter.emissions()) != 1 {
		t.Fatal("expected a single attempt")
	}
}

func TestPathFromArgs(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		want   string
		wantOK bool
	}{
		{name: "no arguments", args: nil},
		{name: "flag", args: []string{"-v"}},
		{name: "long flag", args: []string{"--verbose", "/tmp/x.txt"}},
		{name: "macOS process serial number", args: []string{"-psn_0_12345"}},
		{name: "empty string", args: []string{""}},
		{name: "absolute path", args: []string{"/tmp/x.txt"}, want: "/tmp/x.txt", wantOK: true},
		{name: "relative path", args: []string{"docs/a.xlf", "extra"}, want: "docs/a.xlf", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PathFromArgs(tt.args)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("PathFromArgs(%q) = %q, %v; want %q, %v", tt.args, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestScheduleOpenPathFiresOnceAfterDelay(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	emitter := newRecordingEmitter()
	b := New(emitter, nil, WithClock(fake))

	pending := b.ScheduleOpenPath(context.Background(), "/tmp/x.txt")

	fake.Advance(499 * time.Millisecond)
	if got := emitter.emissions(); len(got) != 0 {
		t.Fatalf("emitted before the delay: %+v", got)
	}

	fake.Advance(time.Millisecond)
	<-pending.Done()

	fake.Advance(10 * time.Second)
	want := []emission{{Name: domain.EventOpenPath, Payload: []interface{}{"/tmp/x.txt"}}}
	if diff := cmp.Diff(want, emitter.emissions()); diff != "" {
		t.Fatalf("emissions mismatch (-want +got):\n%s", diff)
	}
	if !pending.Fired() {
		t.Fatal("Fired() = false after emission")
	}
}

func TestScheduleOpenPathCancel(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Time{})
	emitter := newRecordingEmitter()
	b := New(emitter, nil, WithClock(fake))

	pending := b.ScheduleOpenPath(context.Background(), "/tmp/x.txt")
	pending.Cancel()
	pending.Cancel()
	<-pending.Done()

	fake.Advance(time.Second)
	if got := emitter.emissions(); len(got) != 0 {
		t.Fatalf("cancelled emission fired: %+v", got)
	}
	if pending.Fired() {
		t.Fatal("Fired() = true after cancel")
	}
}

func TestScheduleOpenPathStopsWithContext(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.Time{})
	emitter := newRecordingEmitter()
	ctx, cancel := context.WithCancel(context.Background())

	pending := New(emitter, nil, WithClock(fake)).ScheduleOpenPath(ctx, "/tmp/x.txt")
	cancel()
	<-pending.Done()

	fake.Advance(time.Second)
	if got := emitter.emissions(); len(got) != 0 {
		t.Fatalf("emission after shutdown: %+v", got)
	}
}

func TestScheduleOpenPathWithoutPath(t *testing.T) {
	pending := New(newRecordingEmitter(), nil).ScheduleOpenPath(context.Background(), "")
	if pending != nil {
		t.Fatal("expected nil Pending for empty path")
	}
	pending.Cancel()
}

func TestLaunchArgumentEndToEnd(t *testing.T) {
	emitter := newRecordingEmitter()
	b := New(emitter, nil)

	path, ok := PathFromArgs([]string{"/Users/a/doc.t3"})
	if !ok {
		t.Fatal("expected launch path")
	}
	start := time.Now()
	pending := b.ScheduleOpenPath(context.Background(), path)

	select {
	case <-emitter.fired:
	case <-time.After(5 * time.Second):
		t.Fatal("open-path was never emitted")
	}
	if elapsed := time.Since(start); elapsed < 500*time.Millisecond {
		t.Fatalf("emitted after %v, want >= 500ms", elapsed)
	}
	<-pending.Done()

	select {
	case <-emitter.fired:
		t.Fatal("duplicate emission")
	case <-time.After(200 * time.Millisecond):
	}
	want := []emission{{Name: domain.EventOpenPath, Payload: []interface{}{"/Users/a/doc.t3"}}}
	if diff := cmp.Diff(want, emitter.emissions()); diff != "" {
		t.Fatalf("emissions mismatch (-want +got):\n%s", diff)
	}
}

func TestForwardPathEmitsImmediately(t *testing.T) {
	emitter := newRecordingEmitter()
	New(emitter, nil).ForwardPath("/tmp/second.xlf")

	want := []emission{{Name: domain.EventOpenPath, Payload: []interface{}{"/tmp/second.xlf"}}}
	if diff := cmp.Diff(want, emitter.emissions()); diff != "" {
		t.Fatalf("emissions mismatch (-want +got):\n%s", diff)
	}
}
