package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestSequenceFormats(t *testing.T) {
	svc := NewSequenceService(newMemCounterStore())
	year := time.Now().UTC().Year()

	regNo, err := svc.NextRegistrationNo(context.Background(), "tenant-a")
	if err != nil {
		t.Fatalf("next registration no: %v", err)
	}
	if want := fmt.Sprintf("SCH-%d-0001", year); regNo != want {
		t.Errorf("got %q, want %q", regNo, want)
	}

	empID, err := svc.NextEmployeeID(context.Background(), "tenant-a")
	if err != nil {
		t.Fatalf("next employee id: %v", err)
	}
	if want := fmt.Sprintf("EMP-%d-0001", year); empID != want {
		t.Errorf("got %q, want %q", empID, want)
	}
}

func TestSequencesDoNotShareCounters(t *testing.T) {
	svc := NewSequenceService(newMemCounterStore())
	ctx := context.Background()

	// Registration numbers and employee IDs advance independently.
	if _, err := svc.NextRegistrationNo(ctx, "tenant-a"); err != nil {
		t.Fatal(err)
	}
	empID, err := svc.NextEmployeeID(ctx, "tenant-a")
	if err != nil {
		t.Fatal(err)
	}
	year := time.Now().UTC().Year()
	if want := fmt.Sprintf("EMP-%d-0001", year); empID != want {
		t.Errorf("employee counter bled into registration counter: got %q", empID)
	}
}

func TestConcurrentSequenceNumbersUnique(t *testing.T) {
	svc := NewSequenceService(newMemCounterStore())

	const n = 100
	results := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			regNo, err := svc.NextRegistrationNo(context.Background(), "tenant-a")
			if err != nil {
				t.Errorf("next registration no: %v", err)
				return
			}
			results <- regNo
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool)
	for regNo := range results {
		if seen[regNo] {
			t.Fatalf("duplicate registration number issued: %q", regNo)
		}
		seen[regNo] = true
	}
	if len(seen) != n {
		t.Errorf("issued %d unique numbers, want %d", len(seen), n)
	}
}
