package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ganttui/internal/config"
	"ganttui/internal/database"
	"ganttui/internal/models"
	"ganttui/internal/util"
	"gopkg.in/yaml.v3"
)

const exportTimeLayout = "2006-01-02 15:04"

// projectFile is the YAML exchange format. Tasks reference each other by
// public UID so imports survive database id churn.
type projectFile struct {
	Project  string            `yaml:"project"`
	Slug     string            `yaml:"slug,omitempty"`
	Exported time.Time         `yaml:"exported"`
	Tasks    []projectFileTask `yaml:"tasks"`
}

type projectFileTask struct {
	UID    string `yaml:"uid"`
	Parent string `yaml:"parent,omitempty"`
	Name   string `yaml:"name"`
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
	Status string `yaml:"status,omitempty"`
}

// MarshalProject renders a project and its tasks as YAML.
func MarshalProject(project models.Project, tasks []models.Task) ([]byte, error) {
	uidByID := make(map[int64]string, len(tasks))
	for _, t := range tasks {
		uidByID[t.ID] = t.UID
	}

	out := projectFile{
		Project:  project.Name,
		Slug:     project.Slug,
		Exported: time.Now().UTC(),
	}
	for _, t := range tasks {
		ft := projectFileTask{
			UID:    t.UID,
			Name:   t.Name,
			Start:  t.Start.Format(exportTimeLayout),
			End:    t.End.Format(exportTimeLayout),
			Status: string(t.Status),
		}
		if t.ParentID != nil {
			ft.Parent = uidByID[*t.ParentID]
		}
		out.Tasks = append(out.Tasks, ft)
	}
	return yaml.Marshal(out)
}

// ImportProject reads a YAML export and inserts its tasks into the given
// project, rebuilding parent links from UIDs. Returns the number of tasks
// created.
func ImportProject(ctx context.Context, repo database.Repository, projectID int64, data []byte) (int, error) {
	var file projectFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parse project file: %w", err)
	}

	idByUID := make(map[string]int64, len(file.Tasks))
	pending := file.Tasks
	created := 0

	// Parents must exist before children, so insert in passes until no
	// task can make progress.
	for len(pending) > 0 {
		var next []projectFileTask
		progressed := false
		for _, ft := range pending {
			var parentID *int64
			if ft.Parent != "" {
				id, ok := idByUID[ft.Parent]
				if !ok {
					next = append(next, ft)
					continue
				}
				parentID = &id
			}
			start, err := time.ParseInLocation(exportTimeLayout, ft.Start, time.UTC)
			if err != nil {
				return created, fmt.Errorf("task %q: bad start %q", ft.Name, ft.Start)
			}
			end, err := time.ParseInLocation(exportTimeLayout, ft.End, time.UTC)
			if err != nil {
				return created, fmt.Errorf("task %q: bad end %q", ft.Name, ft.End)
			}
			id, err := repo.AddTask(ctx, projectID, database.TaskSeed{
				Name:     ft.Name,
				Start:    start,
				End:      end,
				ParentID: parentID,
				Status:   models.TaskStatus(ft.Status),
				Rank:     created,
			})
			if err != nil {
				return created, err
			}
			idByUID[ft.UID] = id
			created++
			progressed = true
		}
		if !progressed {
			return created, fmt.Errorf("%d tasks reference unknown parents", len(next))
		}
		pending = next
	}
	return created, nil
}

// exportPath builds a timestamped file path under the exports directory,
// creating the directory on first use.
func exportPath(slug, ext string) (string, error) {
	dir := exportsDirOverride
	if dir == "" {
		dir = util.ExportsDir(config.AppName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if slug == "" {
		slug = "project"
	}
	name := fmt.Sprintf("%s-%s.%s", slug, time.Now().Format("20060102-150405"), ext)
	return filepath.Join(dir, name), nil
}

// exportsDirOverride redirects exports in tests.
var exportsDirOverride string

func (m ChartModel) exportYAML() (string, error) {
	data, err := MarshalProject(m.project, m.tasks)
	if err != nil {
		return "", err
	}
	path, err := exportPath(m.project.Slug, "yaml")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, data, 0o644)
}
