package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeValue  NodeType = 128
	nodeTypeVector NodeType = 256

	NodeTypeNumber = nodeTypeValue | 1
	NodeTypeSymbol = nodeTypeValue | 2

	NodeTypeList    = nodeTypeVector | 1
	NodeTypeProgram = nodeTypeVector | 2
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeNumber:  "number",
	NodeTypeSymbol:  "symbol",
	NodeTypeList:    "list",
	NodeTypeProgram: "program",
}
