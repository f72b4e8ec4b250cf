package completions

import (
	"slices"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

// CommandInfo represents a command extracted from the command tree.
type CommandInfo struct {
	Name        string
	Path        []string // identifiers from the root (e.g., ["config", "set"])
	Usage       string
	Subcommands []string
}

// ExtractCommands walks the roots in pre-order and extracts every command.
func ExtractCommands(roots []*dispatchers.Node) []CommandInfo {
	var commands []CommandInfo
	for _, root := range roots {
		extractNode(root, nil, &commands)
	}
	return commands
}

func extractNode(node *dispatchers.Node, parent []string, commands *[]CommandInfo) {
	if node == nil {
		return
	}

	path := append(slices.Clone(parent), node.PrimaryIdentifier())

	var subcommands []string
	for _, child := range node.Children {
		subcommands = append(subcommands, child.PrimaryIdentifier())
	}

	*commands = append(*commands, CommandInfo{
		Name:        node.Name,
		Path:        path,
		Usage:       node.Usage,
		Subcommands: subcommands,
	})

	for _, child := range node.Children {
		extractNode(child, path, commands)
	}
}

// FindCommand finds a command by its path.
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	for i := range commands {
		if slices.Equal(commands[i].Path, path) {
			return &commands[i]
		}
	}
	return nil
}

// Complete returns the identifiers that can follow words. The last word is
// the prefix being completed; the ones before it select the parent command
// through any of its identifiers. Only commands visible to sender are
// offered.
func Complete(roots []*dispatchers.Node, sender dispatchers.Sender, words []string) []string {
	prefix := ""
	if len(words) > 0 {
		prefix = words[len(words)-1]
		words = words[:len(words)-1]
	}

	level := roots
	for _, word := range words {
		next := findByIdentifier(level, word)
		if next == nil {
			return nil
		}
		level = next.Children
	}

	var out []string
	for _, node := range level {
		if !dispatchers.DefaultVisibility(sender, node) {
			continue
		}
		for _, id := range node.Identifiers() {
			if strings.HasPrefix(id, prefix) && !slices.Contains(out, id) {
				out = append(out, id)
			}
		}
	}
	slices.Sort(out)
	return out
}

func findByIdentifier(nodes []*dispatchers.Node, identifier string) *dispatchers.Node {
	for _, node := range nodes {
		if node.IsIdentifier(identifier) {
			return node
		}
	}
	return nil
}
