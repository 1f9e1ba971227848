package ecs

import "testing"

func TestDeferredQueue(t *testing.T) {
	t.Run("refuses_double_schedule", func(t *testing.T) {
		var q DeferredQueue
		if !q.Schedule(DeferredRestart, 10, 0) {
			t.Fatal("first schedule should succeed")
		}
		if q.Schedule(DeferredRestart, 20, 0) {
			t.Fatal("second schedule of a pending kind should be refused")
		}
		if q.Len() != 1 {
			t.Fatalf("expected 1 pending event, got %d", q.Len())
		}
	})

	t.Run("pops_in_fire_order", func(t *testing.T) {
		var q DeferredQueue
		q.Schedule(DeferredRestart, 30, 0)
		q.Schedule(DeferredInvulnerabilityEnd, 10, 0)
		q.Schedule(DeferredExitPhase2, 10, 0)

		if due := q.PopDue(9); len(due) != 0 {
			t.Fatalf("nothing should be due at 9, got %v", due)
		}
		due := q.PopDue(10)
		if len(due) != 2 || due[0].Kind != DeferredInvulnerabilityEnd || due[1].Kind != DeferredExitPhase2 {
			t.Fatalf("unexpected due events %v", due)
		}
		if q.Pending(DeferredInvulnerabilityEnd) {
			t.Fatal("popped kind should no longer be pending")
		}
		if !q.Schedule(DeferredInvulnerabilityEnd, 40, 0) {
			t.Fatal("kind should be schedulable again after it fired")
		}
		due = q.PopDue(100)
		if len(due) != 2 || due[0].Kind != DeferredRestart {
			t.Fatalf("unexpected due events %v", due)
		}
	})

	t.Run("cancel", func(t *testing.T) {
		var q DeferredQueue
		q.Schedule(DeferredRestart, 5, 0)
		q.Schedule(DeferredExitPhase2, 6, 0)
		if !q.Cancel(DeferredRestart) {
			t.Fatal("cancel should report true for a pending kind")
		}
		if q.Cancel(DeferredRestart) {
			t.Fatal("cancel should report false once disarmed")
		}
		due := q.PopDue(10)
		if len(due) != 1 || due[0].Kind != DeferredExitPhase2 {
			t.Fatalf("unexpected due events %v", due)
		}
	})

	t.Run("closed_queue_is_inert", func(t *testing.T) {
		var q DeferredQueue
		q.Schedule(DeferredRestart, 1, 0)
		q.Close()
		if q.Schedule(DeferredExitPhase2, 2, 0) {
			t.Fatal("closed queue must refuse scheduling")
		}
		if due := q.PopDue(100); len(due) != 0 {
			t.Fatalf("closed queue must not fire, got %v", due)
		}
		if !q.Closed() {
			t.Fatal("expected Closed() to be true")
		}
	})
}
