package runner

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib"
)

type fakeMatcher struct {
	running map[string]bool
	queries []string
}

func (m *fakeMatcher) IsRunning(executablePath string) bool {
	m.queries = append(m.queries, executablePath)
	return m.running[executablePath]
}

// fakeSpawner marks spawned paths as running on the shared matcher, the way
// a real process would show up in the table.
type fakeSpawner struct {
	matcher *fakeMatcher
	fail    map[string]error
	spawned []string
}

func (s *fakeSpawner) Spawn(executablePath string) error {
	if err := s.fail[executablePath]; err != nil {
		return err
	}
	s.spawned = append(s.spawned, executablePath)
	s.matcher.running[executablePath] = true
	return nil
}

type fakeTerminator struct {
	fail       map[string]error
	terminated []string
}

func (t *fakeTerminator) Terminate(executablePath string) (string, error) {
	if err := t.fail[executablePath]; err != nil {
		return "", err
	}
	t.terminated = append(t.terminated, executablePath)
	return fmt.Sprintf("SUCCESS: %s terminated\n", executablePath), nil
}

type sliceSink struct {
	lines []string
}

func (s *sliceSink) Append(line string) {
	s.lines = append(s.lines, line)
}

type fixture struct {
	matcher    *fakeMatcher
	spawner    *fakeSpawner
	terminator *fakeTerminator
	sink       *sliceSink
	runner     *Runner
}

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func newFixture(running ...string) *fixture {
	m := &fakeMatcher{running: map[string]bool{}}
	for _, p := range running {
		m.running[p] = true
	}
	f := &fixture{
		matcher:    m,
		spawner:    &fakeSpawner{matcher: m, fail: map[string]error{}},
		terminator: &fakeTerminator{fail: map[string]error{}},
		sink:       &sliceSink{},
	}
	f.runner = NewRunner(Config{
		Matcher:    f.matcher,
		Spawner:    f.spawner,
		Terminator: f.terminator,
		Sink:       f.sink,
		Now:        func() time.Time { return fixedNow },
	})
	return f
}

func entries(pairs ...string) []lib.ProgramEntry {
	var out []lib.ProgramEntry
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, lib.ProgramEntry{Name: pairs[i], ExecutablePath: pairs[i+1]})
	}
	return out
}

func TestStartNotRunningSpawns(t *testing.T) {
	f := newFixture()

	records := f.runner.Execute(lib.ActionRequest{Entries: entries("App1", "/bin/app1"), Action: lib.ActionStart})

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.ProgramName != "App1" || r.Status != lib.OutcomeStarted || r.Err != nil {
		t.Fatalf("unexpected record: %+v", r)
	}
	if !r.Timestamp.Equal(fixedNow) {
		t.Fatalf("unexpected timestamp: %v", r.Timestamp)
	}
	if len(f.spawner.spawned) != 1 || f.spawner.spawned[0] != "/bin/app1" {
		t.Fatalf("expected /bin/app1 to be spawned, got %v", f.spawner.spawned)
	}
	if len(f.sink.lines) != 1 || f.sink.lines[0] != "[09:30] Starting App1..." {
		t.Fatalf("unexpected log lines: %q", f.sink.lines)
	}
}

func TestStartAlreadyRunningDoesNotSpawn(t *testing.T) {
	f := newFixture("/bin/app1")

	records := f.runner.Execute(lib.ActionRequest{Entries: entries("App1", "/bin/app1"), Action: lib.ActionStart})

	if len(records) != 1 || records[0].Status != lib.OutcomeAlreadyRunning {
		t.Fatalf("expected one already running record, got %+v", records)
	}
	if records[0].Detail != "already running" {
		t.Fatalf("unexpected detail: %q", records[0].Detail)
	}
	if len(f.spawner.spawned) != 0 {
		t.Fatalf("expected no spawn, got %v", f.spawner.spawned)
	}
	if f.sink.lines[0] != "[09:30] App1 is already running" {
		t.Fatalf("unexpected log line: %q", f.sink.lines[0])
	}
}

func TestStartTwiceIsIdempotent(t *testing.T) {
	f := newFixture()
	req := lib.ActionRequest{Entries: entries("App1", "/bin/app1"), Action: lib.ActionStart}

	first := f.runner.Execute(req)
	second := f.runner.Execute(req)

	if first[0].Status != lib.OutcomeStarted {
		t.Fatalf("expected first call to start, got %v", first[0].Status)
	}
	if second[0].Status != lib.OutcomeAlreadyRunning {
		t.Fatalf("expected second call to report already running, got %v", second[0].Status)
	}
	if len(f.spawner.spawned) != 1 {
		t.Fatalf("expected exactly one spawn, got %v", f.spawner.spawned)
	}
}

func TestStartRecordsInRequestOrder(t *testing.T) {
	f := newFixture("/bin/b")
	req := lib.ActionRequest{
		Entries: entries("C", "/bin/c", "A", "/bin/a", "B", "/bin/b"),
		Action:  lib.ActionStart,
	}

	records := f.runner.Execute(req)

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, want := range []string{"C", "A", "B"} {
		if records[i].ProgramName != want {
			t.Fatalf("record %d: expected %s, got %s", i, want, records[i].ProgramName)
		}
	}
	if records[2].Status != lib.OutcomeAlreadyRunning {
		t.Fatalf("expected B to be already running, got %v", records[2].Status)
	}
}

func TestStartSpawnFailureDoesNotBlockBatch(t *testing.T) {
	f := newFixture()
	spawnErr := errors.New("fork/exec /missing/app: no such file or directory")
	f.spawner.fail["/missing/app"] = spawnErr
	req := lib.ActionRequest{
		Entries: entries("Missing", "/missing/app", "App2", "/bin/app2"),
		Action:  lib.ActionStart,
	}

	records := f.runner.Execute(req)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	failed := records[0]
	if failed.Status != lib.OutcomeStarted || !errors.Is(failed.Err, spawnErr) {
		t.Fatalf("unexpected failure record: %+v", failed)
	}
	if !strings.HasPrefix(failed.Detail, "failed to start: ") {
		t.Fatalf("unexpected failure detail: %q", failed.Detail)
	}
	if records[1].Status != lib.OutcomeStarted || records[1].Err != nil {
		t.Fatalf("expected App2 to start, got %+v", records[1])
	}
	if len(f.spawner.spawned) != 1 || f.spawner.spawned[0] != "/bin/app2" {
		t.Fatalf("unexpected spawns: %v", f.spawner.spawned)
	}
	if !strings.Contains(f.sink.lines[0], "Starting Missing... failed to start:") {
		t.Fatalf("unexpected log line: %q", f.sink.lines[0])
	}
}

func TestStopTerminatesOnlyRunning(t *testing.T) {
	f := newFixture("/bin/app1")
	req := lib.ActionRequest{
		Entries: entries("App1", "/bin/app1", "App2", "/bin/app2"),
		Action:  lib.ActionStop,
	}

	records := f.runner.Execute(req)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ProgramName != "App1" || records[0].Status != lib.OutcomeTerminated {
		t.Fatalf("unexpected record: %+v", records[0])
	}
	if records[0].Detail != "SUCCESS: /bin/app1 terminated\n" {
		t.Fatalf("expected command output as detail, got %q", records[0].Detail)
	}
	if len(f.terminator.terminated) != 1 {
		t.Fatalf("expected exactly one termination, got %v", f.terminator.terminated)
	}
	want := []string{"[09:30] Terminating App1...", "SUCCESS: /bin/app1 terminated"}
	if fmt.Sprint(f.sink.lines) != fmt.Sprint(want) {
		t.Fatalf("unexpected log lines: %q", f.sink.lines)
	}
}

func TestStopFailureContinues(t *testing.T) {
	f := newFixture("/bin/app1", "/bin/app2")
	f.terminator.fail["/bin/app1"] = errors.New("operation not permitted")
	req := lib.ActionRequest{
		Entries: entries("App1", "/bin/app1", "App2", "/bin/app2"),
		Action:  lib.ActionStop,
	}

	records := f.runner.Execute(req)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Status != lib.OutcomeTerminateFailed || records[0].Detail != "operation not permitted" {
		t.Fatalf("unexpected failure record: %+v", records[0])
	}
	if records[1].Status != lib.OutcomeTerminated {
		t.Fatalf("expected App2 to be terminated, got %+v", records[1])
	}
	if f.sink.lines[0] != "[09:30] Error terminating App1: operation not permitted" {
		t.Fatalf("unexpected log line: %q", f.sink.lines[0])
	}
}

func TestExecuteQueriesMatcherPerEntry(t *testing.T) {
	f := newFixture()
	req := lib.ActionRequest{Entries: entries("A", "/bin/a", "B", "/bin/b"), Action: lib.ActionStop}

	f.runner.Execute(req)

	if fmt.Sprint(f.matcher.queries) != fmt.Sprint([]string{"/bin/a", "/bin/b"}) {
		t.Fatalf("unexpected matcher queries: %v", f.matcher.queries)
	}
}

func TestExecuteEmptyAndUnspecified(t *testing.T) {
	f := newFixture()

	if records := f.runner.Execute(lib.ActionRequest{Action: lib.ActionStart}); len(records) != 0 {
		t.Fatalf("expected no records for empty request, got %v", records)
	}
	records := f.runner.Execute(lib.ActionRequest{Entries: entries("A", "/bin/a")})
	if len(records) != 0 {
		t.Fatalf("expected no records for unspecified action, got %v", records)
	}
	if len(f.spawner.spawned) != 0 || len(f.sink.lines) != 0 {
		t.Fatalf("expected no side effects")
	}
}

func TestNewRunnerWithoutSink(t *testing.T) {
	m := &fakeMatcher{running: map[string]bool{"/bin/a": true}}
	r := NewRunner(Config{Matcher: m, Spawner: &fakeSpawner{matcher: m}, Terminator: &fakeTerminator{}})

	records := r.Execute(lib.ActionRequest{Entries: entries("A", "/bin/a"), Action: lib.ActionStart})
	if len(records) != 1 || records[0].Status != lib.OutcomeAlreadyRunning {
		t.Fatalf("unexpected records: %+v", records)
	}
	if records[0].Timestamp.IsZero() {
		t.Fatalf("expected default clock to set the timestamp")
	}
}

func TestStartDetachedInvalidCommand(t *testing.T) {
	if _, err := StartDetached(""); err == nil {
		t.Fatalf("expected error starting with empty command")
	}
	if _, err := StartDetached("/definitely/not/here/app"); err == nil {
		t.Fatalf("expected error starting a missing executable")
	}
}
