// File: pkg/bundle/tree.go
package bundle

import (
	"path/filepath"
	"sort"
	"strings"
)

// treeNode is one directory or file in the rendered tree. A node with
// children is a directory; a leaf is a file.
type treeNode struct {
	children map[string]*treeNode
}

func newTreeNode() *treeNode {
	return &treeNode{children: map[string]*treeNode{}}
}

func (n *treeNode) isDir() bool {
	return len(n.children) > 0
}

// RenderTree draws the selected files as a connector-style directory tree
// rooted at rootName. Only the given paths appear: the tree never
// advertises files the bundle does not contain.
func RenderTree(rootName string, paths []string) string {
	root := newTreeNode()
	for _, rel := range paths {
		node := root
		for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
			child, ok := node.children[part]
			if !ok {
				child = newTreeNode()
				node.children[part] = child
			}
			node = child
		}
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(rootName + "/\n")
	renderSubtree(&treeBuilder, root, "")
	return treeBuilder.String()
}

// renderSubtree appends node's children to the builder, directories first,
// alphabetically within each group.
func renderSubtree(treeBuilder *strings.Builder, node *treeNode, prefix string) {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		di := node.children[names[i]].isDir()
		dj := node.children[names[j]].isDir()
		if di != dj {
			return di
		}
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	for i, name := range names {
		connector := "├── "
		extension := "│   "
		if i == len(names)-1 {
			connector = "└── "
			extension = "    "
		}

		child := node.children[name]
		if child.isDir() {
			treeBuilder.WriteString(prefix + connector + name + "/\n")
			renderSubtree(treeBuilder, child, prefix+extension)
		} else {
			treeBuilder.WriteString(prefix + connector + name + "\n")
		}
	}
}
