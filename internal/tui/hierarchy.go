package tui

import (
	"log"

	"ganttui/internal/models"
)

const (
	taskTreeWarnDepth       = 20
	taskTreeMaxDepthDefault = 100
)

// BuildHierarchy organizes a flat task list into a tree based on ParentID.
// Input order is preserved among siblings, so the store's rank ordering
// carries through to the chart rows.
func BuildHierarchy(flat []models.Task) []TaskView {
	index := make(map[int64]int, len(flat))
	for i, t := range flat {
		index[t.ID] = i
	}

	childIdx := make(map[int64][]int)
	var rootIdx []int
	for i, t := range flat {
		if t.ParentID != nil {
			if _, ok := index[*t.ParentID]; ok {
				childIdx[*t.ParentID] = append(childIdx[*t.ParentID], i)
				continue
			}
			// Parent missing from this list; show as a root.
		}
		rootIdx = append(rootIdx, i)
	}

	visited := make(map[int64]bool, len(flat))
	var build func(i int) TaskView
	build = func(i int) TaskView {
		v := TaskView{Task: flat[i]}
		visited[v.ID] = true
		for _, c := range childIdx[v.ID] {
			if visited[flat[c].ID] {
				continue
			}
			v.Children = append(v.Children, build(c))
		}
		return v
	}

	var roots []TaskView
	for _, i := range rootIdx {
		if !visited[flat[i].ID] {
			roots = append(roots, build(i))
		}
	}
	// A parent cycle leaves its members unreachable from any root; promote
	// one node per cycle so the tasks stay visible.
	for i := range flat {
		if !visited[flat[i].ID] {
			roots = append(roots, build(i))
		}
	}
	return roots
}

// Flatten converts the tree into the ordered row list the viewport engine
// consumes, respecting collapse state. A nil collapse map expands
// everything.
func Flatten(tasks []TaskView, level int, collapsed map[int64]bool, maxDepth int) []TaskView {
	if maxDepth <= 0 {
		maxDepth = taskTreeMaxDepthDefault
	}
	var warned, truncated bool
	return flatten(tasks, level, collapsed, maxDepth, &warned, &truncated)
}

func flatten(tasks []TaskView, level int, collapsed map[int64]bool, maxDepth int, warned, truncated *bool) []TaskView {
	var out []TaskView
	for _, v := range tasks {
		if level >= maxDepth {
			if !*truncated {
				log.Printf("task tree depth reached the limit of %d; truncating deeper nodes", maxDepth)
				*truncated = true
			}
			break
		}
		if level >= taskTreeWarnDepth && !*warned {
			log.Printf("task tree depth exceeds %d", taskTreeWarnDepth)
			*warned = true
		}
		v.Level = level
		if collapsed != nil {
			v.Expanded = !collapsed[v.ID]
		} else {
			v.Expanded = true
		}
		out = append(out, v)
		if v.Expanded && len(v.Children) > 0 {
			out = append(out, flatten(v.Children, level+1, collapsed, maxDepth, warned, truncated)...)
		}
	}
	return out
}
