package parser

import (
	"strconv"
	"strings"

	"github.com/goccy/go-yaml/ast"
	yamlparser "github.com/goccy/go-yaml/parser"

	"github.com/refdocs/refcheck/pkg/logger"
)

var locationLog = logger.New("parser:location")

// Location is a 1-based position in a YAML document. Found is false when
// the instance path could not be resolved against the source.
type Location struct {
	Line   int
	Column int
	Found  bool
}

// LocateInstancePath maps a JSON pointer (as reported in a schema
// violation) to the source position of the named value in the YAML text.
// Mapping entries resolve to the position of their key, sequence entries
// to the position of the element. Resolution failures return a zero
// Location; callers fall back to line 1.
func LocateInstancePath(content []byte, pointer string) Location {
	file, err := yamlparser.ParseBytes(content, 0)
	if err != nil || len(file.Docs) == 0 || file.Docs[0].Body == nil {
		locationLog.Printf("Cannot locate %q: unparsable document", pointer)
		return Location{}
	}

	node := ast.Node(file.Docs[0].Body)
	if pointer == "" || pointer == "/" {
		return nodeLocation(node)
	}

	var keyNode ast.Node
	for _, segment := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		segment = decodePointerSegment(segment)

		if key, value := mappingChild(node, segment); value != nil {
			keyNode = key
			node = value
			continue
		}
		if index, err := strconv.Atoi(segment); err == nil {
			if element := sequenceElement(node, index); element != nil {
				keyNode = nil
				node = element
				continue
			}
		}
		locationLog.Printf("Cannot locate %q: segment %q not found", pointer, segment)
		return Location{}
	}

	if keyNode != nil {
		return nodeLocation(keyNode)
	}
	return nodeLocation(node)
}

func nodeLocation(node ast.Node) Location {
	token := node.GetToken()
	if token == nil || token.Position == nil {
		return Location{}
	}
	return Location{Line: token.Position.Line, Column: token.Position.Column, Found: true}
}

// mappingChild finds the entry with the given key in a mapping node and
// returns its key and value nodes.
func mappingChild(node ast.Node, key string) (ast.Node, ast.Node) {
	switch n := node.(type) {
	case *ast.MappingNode:
		for _, entry := range n.Values {
			if mappingKeyString(entry.Key) == key {
				return entry.Key, entry.Value
			}
		}
	case *ast.MappingValueNode:
		if mappingKeyString(n.Key) == key {
			return n.Key, n.Value
		}
	}
	return nil, nil
}

func sequenceElement(node ast.Node, index int) ast.Node {
	sequence, ok := node.(*ast.SequenceNode)
	if !ok || index < 0 || index >= len(sequence.Values) {
		return nil
	}
	return sequence.Values[index]
}

func mappingKeyString(key ast.MapKeyNode) string {
	token := key.GetToken()
	if token == nil {
		return ""
	}
	return token.Value
}

// decodePointerSegment undoes RFC 6901 escaping.
func decodePointerSegment(segment string) string {
	segment = strings.ReplaceAll(segment, "~1", "/")
	return strings.ReplaceAll(segment, "~0", "~")
}
