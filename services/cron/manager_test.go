package cron

import "testing"

func TestCronManagerStartStop(t *testing.T) {
	// No job fires during the test window, so the manager never touches
	// the database; this covers schedule registration and shutdown.
	manager := NewCronManager(nil)

	if err := manager.Start(); err != nil {
		t.Fatalf("failed to start cron manager: %v", err)
	}

	if entries := manager.cron.Entries(); len(entries) != 1 {
		t.Errorf("expected 1 registered job, got %d", len(entries))
	}

	manager.Stop()
}
