package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"ganttui/internal/models"
	"ganttui/internal/util"
	"github.com/stretchr/testify/require"
)

func seedProject(t *testing.T, s *Store, ctx context.Context) int64 {
	t.Helper()
	id, err := s.EnsureDefaultProject(ctx)
	require.NoError(t, err)
	return id
}

func TestAddAndGetTask(t *testing.T) {
	s, ctx := openTestStore(t)
	pid := seedProject(t, s, ctx)

	id, err := s.AddTask(ctx, pid, TaskSeed{
		Name:  "Design review",
		Start: date(2026, 4, 1),
		End:   date(2026, 4, 8),
	})
	require.NoError(t, err)

	task, err := s.GetTask(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Design review", task.Name)
	require.Equal(t, models.TaskStatusPending, task.Status)
	require.NotEmpty(t, task.UID)
	require.True(t, task.Start.Equal(date(2026, 4, 1)))
	require.True(t, task.End.Equal(date(2026, 4, 8)))
}

func TestAddTaskRejectsInvertedRange(t *testing.T) {
	s, ctx := openTestStore(t)
	pid := seedProject(t, s, ctx)

	_, err := s.AddTask(ctx, pid, TaskSeed{Name: "bad", Start: date(2026, 4, 8), End: date(2026, 4, 1)})
	require.Error(t, err)
}

func TestGetTasksOrderedByRank(t *testing.T) {
	s, ctx := openTestStore(t)
	pid := seedProject(t, s, ctx)

	for i, name := range []string{"third", "first", "second"} {
		rank := []int{3, 1, 2}[i]
		_, err := s.AddTask(ctx, pid, TaskSeed{
			Name: name, Rank: rank,
			Start: date(2026, 4, 1), End: date(2026, 4, 5),
		})
		require.NoError(t, err)
	}

	tasks, err := s.GetTasks(ctx, pid)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	require.Equal(t, []string{"first", "second", "third"},
		[]string{tasks[0].Name, tasks[1].Name, tasks[2].Name})
}

func TestUpdateTaskDatesSubDayPrecision(t *testing.T) {
	s, ctx := openTestStore(t)
	pid := seedProject(t, s, ctx)

	id, err := s.AddTask(ctx, pid, TaskSeed{Name: "t", Start: date(2026, 4, 1), End: date(2026, 4, 8)})
	require.NoError(t, err)

	// A quarter-day snap lands mid-day; the store must keep it.
	start := date(2026, 4, 2).Add(6 * time.Hour)
	end := date(2026, 4, 9).Add(6 * time.Hour)
	require.NoError(t, s.UpdateTaskDates(ctx, id, start, end))

	task, err := s.GetTask(ctx, id)
	require.NoError(t, err)
	require.True(t, task.Start.Equal(start), "start %v != %v", task.Start, start)
	require.True(t, task.End.Equal(end))
}

func TestUpdateTaskDatesMissing(t *testing.T) {
	s, ctx := openTestStore(t)

	err := s.UpdateTaskDates(ctx, 9999, date(2026, 4, 1), date(2026, 4, 2))
	require.ErrorIs(t, err, ErrTaskNotFound)

	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	require.Equal(t, "task", opErr.Resource)
}

func TestShiftSubtree(t *testing.T) {
	s, ctx := openTestStore(t)
	pid := seedProject(t, s, ctx)

	rootID, err := s.AddTask(ctx, pid, TaskSeed{Name: "root", Start: date(2026, 4, 1), End: date(2026, 4, 20)})
	require.NoError(t, err)
	childID, err := s.AddTask(ctx, pid, TaskSeed{Name: "child", ParentID: util.Ptr(rootID), Start: date(2026, 4, 2), End: date(2026, 4, 6)})
	require.NoError(t, err)
	grandID, err := s.AddTask(ctx, pid, TaskSeed{Name: "grand", ParentID: util.Ptr(childID), Start: date(2026, 4, 3), End: date(2026, 4, 4)})
	require.NoError(t, err)
	otherID, err := s.AddTask(ctx, pid, TaskSeed{Name: "other", Start: date(2026, 4, 10), End: date(2026, 4, 12)})
	require.NoError(t, err)

	require.NoError(t, s.ShiftSubtree(ctx, rootID, 2.25))

	for _, c := range []struct {
		id        int64
		wantStart time.Time
	}{
		{rootID, date(2026, 4, 1).Add(54 * time.Hour)},
		{childID, date(2026, 4, 2).Add(54 * time.Hour)},
		{grandID, date(2026, 4, 3).Add(54 * time.Hour)},
		{otherID, date(2026, 4, 10)},
	} {
		task, err := s.GetTask(ctx, c.id)
		require.NoError(t, err)
		require.True(t, task.Start.Equal(c.wantStart), "task %d start %v, want %v", c.id, task.Start, c.wantStart)
	}

	// Incremental deltas accumulate: shifting back restores the origin.
	require.NoError(t, s.ShiftSubtree(ctx, rootID, -2.25))
	task, err := s.GetTask(ctx, childID)
	require.NoError(t, err)
	require.True(t, task.Start.Equal(date(2026, 4, 2)))
}

func TestShiftSubtreeZeroDelta(t *testing.T) {
	s, ctx := openTestStore(t)
	pid := seedProject(t, s, ctx)
	id, err := s.AddTask(ctx, pid, TaskSeed{Name: "t", Start: date(2026, 4, 1), End: date(2026, 4, 2)})
	require.NoError(t, err)

	require.NoError(t, s.ShiftSubtree(ctx, id, 0))
	task, err := s.GetTask(ctx, id)
	require.NoError(t, err)
	require.True(t, task.Start.Equal(date(2026, 4, 1)))
}

func TestDeleteTaskRemovesSubtree(t *testing.T) {
	s, ctx := openTestStore(t)
	pid := seedProject(t, s, ctx)

	rootID, err := s.AddTask(ctx, pid, TaskSeed{Name: "root", Start: date(2026, 4, 1), End: date(2026, 4, 20)})
	require.NoError(t, err)
	childID, err := s.AddTask(ctx, pid, TaskSeed{Name: "child", ParentID: util.Ptr(rootID), Start: date(2026, 4, 2), End: date(2026, 4, 6)})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTask(ctx, rootID))

	for _, id := range []int64{rootID, childID} {
		exists, err := s.TaskExists(ctx, id)
		require.NoError(t, err)
		require.False(t, exists, "task %d should be gone", id)
	}
}

func TestCollapsedAndStatusFlags(t *testing.T) {
	s, ctx := openTestStore(t)
	pid := seedProject(t, s, ctx)
	id, err := s.AddTask(ctx, pid, TaskSeed{Name: "t", Start: date(2026, 4, 1), End: date(2026, 4, 2)})
	require.NoError(t, err)

	require.NoError(t, s.SetTaskCollapsed(ctx, id, true))
	require.NoError(t, s.SetTaskStatus(ctx, id, models.TaskStatusDone))
	require.NoError(t, s.RenameTask(ctx, id, "renamed"))

	task, err := s.GetTask(ctx, id)
	require.NoError(t, err)
	require.True(t, task.Collapsed)
	require.Equal(t, models.TaskStatusDone, task.Status)
	require.Equal(t, "renamed", task.Name)
}

func TestTaskUIDsAreUnique(t *testing.T) {
	s, ctx := openTestStore(t)
	pid := seedProject(t, s, ctx)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		id, err := s.AddTask(ctx, pid, TaskSeed{Name: "t", Start: date(2026, 4, 1), End: date(2026, 4, 2)})
		require.NoError(t, err)
		task, err := s.GetTask(ctx, id)
		require.NoError(t, err)
		require.False(t, seen[task.UID], "duplicate uid %s", task.UID)
		seen[task.UID] = true
	}
}
