// File: pkg/combine/tree.go
package combine

import (
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	children map[string]*treeNode
	isDir    bool
}

// RenderTree draws the relative paths as an indented tree under rootName.
// Directories come first, then files, each group sorted case-insensitively.
func RenderTree(rootName string, relPaths []string) string {
	root := &treeNode{name: rootName, isDir: true, children: map[string]*treeNode{}}
	for _, rel := range relPaths {
		node := root
		parts := strings.Split(rel, "/")
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part, children: map[string]*treeNode{}}
				node.children[part] = child
			}
			if i < len(parts)-1 {
				child.isDir = true
			}
			node = child
		}
	}

	var b strings.Builder
	b.WriteString(rootName + "/\n")
	writeTree(&b, root, "")
	return b.String()
}

func writeTree(b *strings.Builder, node *treeNode, prefix string) {
	entries := make([]*treeNode, 0, len(node.children))
	for _, child := range node.children {
		entries = append(entries, child)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		return strings.ToLower(entries[i].name) < strings.ToLower(entries[j].name)
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		name := entry.name
		if entry.isDir {
			name += "/"
		}
		b.WriteString(prefix + connector + name + "\n")
		if entry.isDir {
			writeTree(b, entry, prefix+extension)
		}
	}
}
