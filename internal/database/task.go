package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ganttui/internal/models"
	"ganttui/internal/util"
	"github.com/oklog/ulid/v2"
)

// TaskSeed carries the caller-supplied fields of a new task.
type TaskSeed struct {
	Name     string
	Start    time.Time
	End      time.Time
	ParentID *int64
	Status   models.TaskStatus
	Rank     int
}

// AddTask inserts a task, minting its public UID, and returns the row id.
func (s *Store) AddTask(ctx context.Context, projectID int64, seed TaskSeed) (int64, error) {
	status := seed.Status
	if status == "" {
		status = models.TaskStatusPending
	}
	if !seed.Start.Before(seed.End) {
		return 0, wrapTaskErr("add", 0, fmt.Errorf("start %v is not before end %v", seed.Start, seed.End))
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (uid, project_id, parent_id, name, start_date, end_date, status, rank)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ulid.Make().String(), projectID, seed.ParentID, seed.Name,
		formatTime(seed.Start), formatTime(seed.End), string(status), seed.Rank)
	if err != nil {
		return 0, wrapTaskErr("add", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapTaskErr("add", 0, err)
	}
	return id, nil
}

// GetTasks returns all tasks of a project in stable rank order.
func (s *Store) GetTasks(ctx context.Context, projectID int64) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, uid, project_id, parent_id, name, start_date, end_date, status, rank, collapsed, created_at
		 FROM tasks WHERE project_id = ? ORDER BY rank, id`, projectID)
	if err != nil {
		return nil, wrapTaskErr("list", 0, err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, wrapTaskErr("list", 0, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, wrapTaskErr("list", 0, rows.Err())
}

// GetTask returns one task by row id.
func (s *Store) GetTask(ctx context.Context, id int64) (models.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, uid, project_id, parent_id, name, start_date, end_date, status, rank, collapsed, created_at
		 FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, wrapTaskErr("get", id, ErrTaskNotFound)
	}
	if err != nil {
		return models.Task{}, wrapTaskErr("get", id, err)
	}
	return task, nil
}

// TaskExists reports whether the task row is still present. Drag dispatch
// consults this to silently drop edits for vanished targets.
func (s *Store) TaskExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM tasks WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, wrapTaskErr("exists", id, err)
	}
	return true, nil
}

// UpdateTaskDates rewrites both endpoints of a task.
func (s *Store) UpdateTaskDates(ctx context.Context, id int64, start, end time.Time) error {
	if !start.Before(end) {
		return wrapTaskErr("update dates", id, fmt.Errorf("start %v is not before end %v", start, end))
	}
	res, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET start_date = ?, end_date = ? WHERE id = ?",
		formatTime(start), formatTime(end), id)
	if err != nil {
		return wrapTaskErr("update dates", id, err)
	}
	return s.requireRow(res, "update dates", id)
}

// ShiftSubtree moves a task and all of its descendants by a fractional
// day delta. Group-move dispatches its incremental deltas through here, so
// applying the same delta to every member is exactly the additive
// semantics the drag controller assumes.
func (s *Store) ShiftSubtree(ctx context.Context, id int64, deltaDays float64) error {
	seconds := int64(deltaDays * 86400)
	if seconds == 0 {
		return nil
	}
	modifier := fmt.Sprintf("%+d seconds", seconds)
	_, err := s.db.ExecContext(ctx, `
		WITH RECURSIVE subtree(id) AS (
			SELECT id FROM tasks WHERE id = ?
			UNION ALL
			SELECT t.id FROM tasks t JOIN subtree st ON t.parent_id = st.id
		)
		UPDATE tasks
		SET start_date = datetime(start_date, ?), end_date = datetime(end_date, ?)
		WHERE id IN (SELECT id FROM subtree)`,
		id, modifier, modifier)
	return wrapTaskErr("shift subtree", id, err)
}

// RenameTask updates the task name.
func (s *Store) RenameTask(ctx context.Context, id int64, name string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE tasks SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return wrapTaskErr("rename", id, err)
	}
	return s.requireRow(res, "rename", id)
}

// SetTaskStatus updates the lifecycle status.
func (s *Store) SetTaskStatus(ctx context.Context, id int64, status models.TaskStatus) error {
	res, err := s.db.ExecContext(ctx, "UPDATE tasks SET status = ? WHERE id = ?", string(status), id)
	if err != nil {
		return wrapTaskErr("set status", id, err)
	}
	return s.requireRow(res, "set status", id)
}

// SetTaskCollapsed persists the subtree collapse flag.
func (s *Store) SetTaskCollapsed(ctx context.Context, id int64, collapsed bool) error {
	res, err := s.db.ExecContext(ctx, "UPDATE tasks SET collapsed = ? WHERE id = ?", util.BoolToInt(collapsed), id)
	if err != nil {
		return wrapTaskErr("set collapsed", id, err)
	}
	return s.requireRow(res, "set collapsed", id)
}

// DeleteTask removes a task and its whole subtree.
func (s *Store) DeleteTask(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `
		WITH RECURSIVE subtree(id) AS (
			SELECT id FROM tasks WHERE id = ?
			UNION ALL
			SELECT t.id FROM tasks t JOIN subtree st ON t.parent_id = st.id
		)
		DELETE FROM tasks WHERE id IN (SELECT id FROM subtree)`, id)
	return wrapTaskErr("delete", id, err)
}

func (s *Store) requireRow(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return wrapTaskErr(op, id, err)
	}
	if n == 0 {
		return wrapTaskErr(op, id, ErrTaskNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		t          models.Task
		projectID  sql.NullInt64
		parentID   sql.NullInt64
		start, end string
		status     string
		collapsed  int
		createdAt  sql.NullString
	)
	err := row.Scan(&t.ID, &t.UID, &projectID, &parentID, &t.Name, &start, &end, &status, &t.Rank, &collapsed, &createdAt)
	if err != nil {
		return models.Task{}, err
	}
	if projectID.Valid {
		t.ProjectID = &projectID.Int64
	}
	if parentID.Valid {
		t.ParentID = &parentID.Int64
	}
	if t.Start, err = parseTime(start); err != nil {
		return models.Task{}, err
	}
	if t.End, err = parseTime(end); err != nil {
		return models.Task{}, err
	}
	t.Status = models.TaskStatus(status)
	t.Collapsed = util.IntToBool(collapsed)
	if createdAt.Valid {
		if created, err := parseTime(createdAt.String); err == nil {
			t.CreatedAt = created
		}
	}
	return t, nil
}
