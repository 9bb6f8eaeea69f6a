package study

import "github.com/vytor/lingoflash/internal/models"

// SubtreeIDs returns rootID plus the ids of every folder transitively
// under it. The hierarchy is a flat parent-pointer collection, so an
// adjacency map is built once and walked with an explicit stack to
// avoid recursion on pathological folder depth.
func SubtreeIDs(folders []models.Folder, rootID string) map[string]bool {
	children := make(map[string][]string, len(folders))
	for _, f := range folders {
		if f.ParentID != "" {
			children[f.ParentID] = append(children[f.ParentID], f.ID)
		}
	}

	ids := map[string]bool{rootID: true}
	stack := []string{rootID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range children[id] {
			if ids[child] {
				continue
			}
			ids[child] = true
			stack = append(stack, child)
		}
	}
	return ids
}
