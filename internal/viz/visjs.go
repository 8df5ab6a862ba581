package viz

import (
	"encoding/json"
	"fmt"

	"github.com/healcde/cdegraph/internal/graph"
)

// VisNode is one node in vis-network's data format.
type VisNode struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Group string  `json:"group"`
	Color string  `json:"color"`
	Shape string  `json:"shape"`
	Size  float64 `json:"size"`
}

// VisEdge is one edge in vis-network's data format. Edges carry no styling
// of their own; color is inherited from the endpoints at render time.
type VisEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ToVisNodesJSON converts the graph's nodes to a vis-network node array,
// preserving builder order.
func ToVisNodesJSON(g *graph.Graph) (string, error) {
	nodes := make([]VisNode, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes = append(nodes, VisNode{
			ID:    n.Label,
			Label: n.Label,
			Group: string(n.Category),
			Color: n.Color,
			Shape: n.Shape,
			Size:  n.Size,
		})
	}

	data, err := json.Marshal(nodes)
	if err != nil {
		return "", fmt.Errorf("marshaling nodes: %w", err)
	}
	return string(data), nil
}

// ToVisEdgesJSON converts the graph's edges to a vis-network edge array.
func ToVisEdgesJSON(g *graph.Graph) (string, error) {
	edges := make([]VisEdge, 0, len(g.Edges))
	for _, e := range g.Edges {
		edges = append(edges, VisEdge{From: e.From, To: e.To})
	}

	data, err := json.Marshal(edges)
	if err != nil {
		return "", fmt.Errorf("marshaling edges: %w", err)
	}
	return string(data), nil
}

// optionsJSON renders the vis-network options block with the physics
// tunables spliced in.
func optionsJSON(p Physics) (string, error) {
	options := map[string]any{
		"nodes": map[string]any{
			"borderWidth":         1,
			"borderWidthSelected": 2,
			"font": map[string]any{
				"size":  14,
				"color": "white",
			},
		},
		"edges": map[string]any{
			"color": map[string]any{
				"inherit": true,
			},
			"smooth": map[string]any{
				"type": "continuous",
			},
		},
		"physics": map[string]any{
			"enabled": true,
			"stabilization": map[string]any{
				"enabled":        true,
				"iterations":     p.StabilizationIterations,
				"updateInterval": 100,
			},
			"barnesHut": map[string]any{
				"gravitationalConstant": p.GravitationalConstant,
				"centralGravity":        p.CentralGravity,
				"springLength":          p.SpringLength,
				"springConstant":        p.SpringConstant,
				"springStrength":        p.SpringStrength,
				"damping":               p.Damping,
			},
		},
		"interaction": map[string]any{
			"navigationButtons": true,
			"keyboard":          true,
		},
	}

	data, err := json.Marshal(options)
	if err != nil {
		return "", fmt.Errorf("marshaling options: %w", err)
	}
	return string(data), nil
}
