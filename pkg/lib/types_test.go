package lib

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestOutcomeRecordLines(t *testing.T) {
	ts := time.Date(2024, 1, 2, 7, 5, 0, 0, time.Local)
	cases := []struct {
		name   string
		record OutcomeRecord
		want   []string
	}{
		{
			name:   "already running",
			record: OutcomeRecord{Timestamp: ts, ProgramName: "App1", Status: OutcomeAlreadyRunning, Detail: "already running"},
			want:   []string{"[07:05] App1 is already running"},
		},
		{
			name:   "started",
			record: OutcomeRecord{Timestamp: ts, ProgramName: "App1", Status: OutcomeStarted, Detail: "starting..."},
			want:   []string{"[07:05] Starting App1..."},
		},
		{
			name: "start failed",
			record: OutcomeRecord{Timestamp: ts, ProgramName: "App1", Status: OutcomeStarted,
				Detail: "failed to start: boom", Err: errors.New("boom")},
			want: []string{"[07:05] Starting App1... failed to start: boom"},
		},
		{
			name: "terminated",
			record: OutcomeRecord{Timestamp: ts, ProgramName: "App1", Status: OutcomeTerminated,
				Detail: "SUCCESS: one\r\n\nSUCCESS: two\n"},
			want: []string{"[07:05] Terminating App1...", "SUCCESS: one", "SUCCESS: two"},
		},
		{
			name:   "terminate failed",
			record: OutcomeRecord{Timestamp: ts, ProgramName: "App1", Status: OutcomeTerminateFailed, Detail: "denied"},
			want:   []string{"[07:05] Error terminating App1: denied"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.record.Lines(); fmt.Sprint(got) != fmt.Sprint(tc.want) {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStrings(t *testing.T) {
	if ActionStart.String() != "start" || ActionStop.String() != "stop" || Action(9).String() != "unspecified" {
		t.Fatalf("unexpected action names")
	}
	if OutcomeTerminateFailed.String() != "terminate_failed" {
		t.Fatalf("unexpected status name: %s", OutcomeTerminateFailed)
	}
}

func TestBaseName(t *testing.T) {
	if got := BaseName("/usr/local/bin/app1"); got != "app1" {
		t.Fatalf("unexpected base name: %s", got)
	}
	if got := BaseName(""); got != "" {
		t.Fatalf("expected empty base name, got %q", got)
	}
}
