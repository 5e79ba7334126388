package usecase

import (
	"context"
	"testing"
	"time"

	"todosplus/internal/task"
)

func TestListToday(t *testing.T) {
	uc := newTestUseCase(testNow)
	ctx := context.Background()

	seed := []task.QuickAddInput{
		{Text: "urgent thing today", Priority: 1},
		{Text: "casual thing today", Priority: 4},
		{Text: "early thing today at 9:00 am", Priority: 1},
		{Text: "other thing tomorrow"},
		{Text: "someday thing"},
	}
	for _, in := range seed {
		if _, err := uc.QuickAdd(ctx, testScope, in); err != nil {
			t.Fatalf("QuickAdd(%q): %v", in.Text, err)
		}
	}

	out, err := uc.ListToday(ctx, testScope)
	if err != nil {
		t.Fatalf("ListToday: %v", err)
	}

	if len(out.Tasks) != 3 {
		t.Fatalf("got %d tasks, want 3: %+v", len(out.Tasks), out.Tasks)
	}

	// Priority first, then due time: the 09:00 priority-1 task precedes
	// the 17:00 priority-1 task, the priority-4 task comes last.
	wantTitles := []string{"early thing", "urgent thing", "casual thing"}
	for i, want := range wantTitles {
		if out.Tasks[i].Title != want {
			t.Errorf("tasks[%d] = %q, want %q", i, out.Tasks[i].Title, want)
		}
	}

	if out.End-out.Start != 24*60*60*1000-1 {
		t.Errorf("window width = %dms, want one day minus 1ms", out.End-out.Start)
	}
}

func TestListTodayExcludesCompleted(t *testing.T) {
	uc := newTestUseCase(testNow)
	ctx := context.Background()

	created, err := uc.QuickAdd(ctx, testScope, task.QuickAddInput{Text: "done thing today"})
	if err != nil {
		t.Fatalf("QuickAdd: %v", err)
	}
	if _, err := uc.Complete(ctx, testScope, task.CompleteInput{ID: created.Task.ID}); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	out, err := uc.ListToday(ctx, testScope)
	if err != nil {
		t.Fatalf("ListToday: %v", err)
	}
	if len(out.Tasks) != 0 {
		t.Fatalf("completed task leaked into today view: %+v", out.Tasks)
	}
}

func TestListTodayEmptyTimezoneUsesDefault(t *testing.T) {
	uc := newTestUseCase(testNow)
	ctx := context.Background()

	sc := testScope
	sc.Timezone = ""

	if _, err := uc.QuickAdd(ctx, sc, task.QuickAddInput{Text: "thing today"}); err != nil {
		t.Fatalf("QuickAdd: %v", err)
	}

	out, err := uc.ListToday(ctx, sc)
	if err != nil {
		t.Fatalf("ListToday: %v", err)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(out.Tasks))
	}

	// The default zone is +05:00: the day starts at 19:00 UTC the
	// evening before.
	wantStart := time.Date(2024, time.March, 14, 19, 0, 0, 0, time.UTC).UnixMilli()
	if out.Start != wantStart {
		t.Fatalf("start = %d, want %d", out.Start, wantStart)
	}
}
