package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable representation of a node to w
func Print(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeList, NodeTypeProgram:
		if tok := n.Token(); tok != nil {
			fmt.Fprintf(w, "(%v)\n", tok)
		} else {
			fmt.Fprintf(w, "\n")
		}
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case NodeTypeNumber, NodeTypeSymbol:
		fmt.Fprintf(w, "%#v (%v)\n", n.Value(), n.Token())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its text representation
func Encode(n *Node) []byte {
	return encodeNodeLevel(n, 0)
}

func encodeNodeLevel(n *Node, level int) []byte {
	if n == nil {
		return []byte(":nil")
	}
	switch n.Type() {
	case NodeTypeList, NodeTypeProgram:
		nodes := []string{}
		for i := range n.List() {
			nodes = append(nodes, string(encodeNodeLevel(n.List()[i], level+1)))
		}
		if n.Is(NodeTypeProgram) {
			return []byte(strings.Join(nodes, " "))
		}
		return []byte(fmt.Sprintf("(%s)", strings.Join(nodes, " ")))

	case NodeTypeNumber, NodeTypeSymbol:
		return []byte(n.Encode())

	default:
		panic("unknown node type")
	}
}
