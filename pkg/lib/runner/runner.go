package runner

import (
	"io"
	"log"
	"time"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib"
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/matcher"
)

var logger = log.New(io.Discard, "runner: ", log.LstdFlags)

// SetLogOutput redirects debug logging of the package.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Matcher reports whether a process with the executable's file name is running.
type Matcher interface {
	IsRunning(executablePath string) bool
}

// Spawner starts an executable without arguments and forgets about it.
type Spawner interface {
	Spawn(executablePath string) error
}

// Terminator forcibly kills every process named after the executable and
// returns the textual output of the operation.
type Terminator interface {
	Terminate(executablePath string) (string, error)
}

// Sink receives log lines while a batch is running.
type Sink interface {
	Append(line string)
}

// Config holds the collaborators of a Runner. All fields are optional.
type Config struct {
	Matcher    Matcher          // defaults to the system process table
	Spawner    Spawner          // defaults to a detached exec spawn
	Terminator Terminator       // defaults to a forced kill by name
	Sink       Sink             // records are only returned when nil
	Now        func() time.Time // defaults to time.Now
}

// Runner executes start/stop batches over program entries.
// It holds no lock: callers must not run two batches at the same time.
type Runner struct {
	matcher    Matcher
	spawner    Spawner
	terminator Terminator
	sink       Sink
	now        func() time.Time
}

// NewRunner creates a Runner, filling unset collaborators with system defaults.
func NewRunner(config Config) *Runner {
	runner := &Runner{
		matcher:    config.Matcher,
		spawner:    config.Spawner,
		terminator: config.Terminator,
		sink:       config.Sink,
		now:        config.Now,
	}

	var system *matcher.Matcher
	if runner.matcher == nil || runner.terminator == nil {
		system = matcher.New()
	}
	if runner.matcher == nil {
		runner.matcher = system
	}
	if runner.spawner == nil {
		runner.spawner = systemSpawner{}
	}
	if runner.terminator == nil {
		runner.terminator = newSystemTerminator(system)
	}
	if runner.now == nil {
		runner.now = time.Now
	}
	return runner
}

// Execute runs the request serially, one entry at a time in request order.
// START yields one record per entry. STOP yields a record only for entries
// that were running. Failures are reported in records and never stop the batch.
func (runner *Runner) Execute(request lib.ActionRequest) []lib.OutcomeRecord {
	if request.ID == "" {
		request.ID = lib.NewID()
	}
	logger.Printf("Batch %s: %s %d entries", request.ID, request.Action, len(request.Entries))

	records := make([]lib.OutcomeRecord, 0, len(request.Entries))
	for _, entry := range request.Entries {
		var (
			record lib.OutcomeRecord
			ok     bool
		)
		switch request.Action {
		case lib.ActionStart:
			record, ok = runner.start(entry), true
		case lib.ActionStop:
			record, ok = runner.stop(entry)
		default:
			logger.Printf("Batch %s: unsupported action %d", request.ID, request.Action)
			return records
		}
		if !ok {
			continue
		}
		runner.emit(record)
		records = append(records, record)
	}

	logger.Printf("Batch %s finished with %d records", request.ID, len(records))
	return records
}

func (runner *Runner) emit(record lib.OutcomeRecord) {
	if runner.sink == nil {
		return
	}
	for _, line := range record.Lines() {
		runner.sink.Append(line)
	}
}

func (runner *Runner) record(entry lib.ProgramEntry, status lib.OutcomeStatus, detail string, err error) lib.OutcomeRecord {
	return lib.OutcomeRecord{
		Timestamp:   runner.now(),
		ProgramName: entry.Name,
		Status:      status,
		Detail:      detail,
		Err:         err,
	}
}
