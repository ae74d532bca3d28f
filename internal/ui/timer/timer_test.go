package timer

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestManual_FiresInDueOrder(t *testing.T) {
	m := NewManual()
	var got []string

	m.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(5 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("nothing should fire yet, got %v", got)
	}

	m.Advance(25 * time.Millisecond)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestManual_StopPreventsFire(t *testing.T) {
	m := NewManual()
	fired := false
	tm := m.AfterFunc(time.Second, func() { fired = true })

	if !tm.Stop() {
		t.Fatalf("expected first Stop to succeed")
	}
	if tm.Stop() {
		t.Fatalf("expected second Stop to report false")
	}

	m.Advance(2 * time.Second)
	if fired || m.Pending() != 0 {
		t.Fatalf("stopped timer must not fire")
	}
}

func TestManual_CallbackCanSchedule(t *testing.T) {
	m := NewManual()
	n := 0
	m.AfterFunc(time.Millisecond, func() {
		n++
		m.AfterFunc(time.Millisecond, func() { n++ })
	})

	m.Advance(time.Millisecond)
	if n != 1 || m.Pending() != 1 {
		t.Fatalf("expected nested timer pending, n=%d pending=%d", n, m.Pending())
	}
	m.Advance(time.Millisecond)
	if n != 2 {
		t.Fatalf("expected nested timer to fire, n=%d", n)
	}
}

func TestReal_FiresAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	var wg sync.WaitGroup
	wg.Add(1)
	Real{}.AfterFunc(time.Millisecond, wg.Done)
	wg.Wait()

	tm := Real{}.AfterFunc(time.Hour, func() { t.Errorf("must not fire") })
	if !tm.Stop() {
		t.Fatalf("expected Stop on pending real timer")
	}
}
