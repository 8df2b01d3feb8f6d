package model

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// EncodePlantsYAML renders plants as a YAML document for export.
// Each entry carries its due date and status as of today.
// Fields are emitted in a fixed order and empty images are omitted.
func EncodePlantsYAML(plants []Plant, today time.Time) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	addDateField(doc, "generated", today)

	statsNode := &yaml.Node{Kind: yaml.MappingNode}
	stats := ComputeStats(plants, today)
	addIntField(statsNode, "total", stats.Total)
	addIntField(statsNode, "overdue", stats.Overdue)
	addIntField(statsNode, "due_today", stats.DueToday)
	addIntField(statsNode, "healthy", stats.Healthy)
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "stats"},
		statsNode,
	)

	if len(plants) > 0 {
		plantsNode := &yaml.Node{Kind: yaml.SequenceNode}
		for i := range plants {
			plantsNode.Content = append(plantsNode.Content, buildPlantNode(&plants[i], today))
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "plants"},
			plantsNode,
		)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plants: %w", err)
	}
	return data, nil
}

// buildPlantNode creates a yaml.Node for a Plant.
func buildPlantNode(p *Plant, today time.Time) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}

	addStringField(node, "id", p.ID)
	addStringField(node, "name", p.Name)
	addIntField(node, "water", p.WaterIntervalDays)
	addStringField(node, "sun", string(p.Sunlight))
	if p.ImagePath != "" {
		addStringField(node, "image", p.ImagePath)
	}
	addDateField(node, "last_watered", p.LastWatered)
	addDateField(node, "due", DueDate(p))
	addStringField(node, "status", string(ComputeStatus(p, today)))

	return node
}

// Helper functions for building yaml.Node

func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str"},
	)
}

func addIntField(node *yaml.Node, key string, value int) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%d", value), Tag: "!!int"},
	)
}

func addDateField(node *yaml.Node, key string, t time.Time) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: Day(t).Format(DateLayout)},
	)
}
