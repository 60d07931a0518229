package artifact

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"workoutgen/internal/program"
)

// EncodeYAML renders p as a YAML mapping with the same ordered, quoted keys
// as the JSON form. Multi-line entries use literal block scalars.
func EncodeYAML(p program.Program) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for i, week := range p.Weeks {
		days := &yaml.Node{Kind: yaml.MappingNode}
		for _, day := range program.Days() {
			text := string(week.Entry(day))
			if !utf8.ValidString(text) {
				return nil, wrap(ErrSerialization, "encode yaml", "",
					fmt.Errorf("week %d %s: invalid UTF-8", i+1, day))
			}
			days.Content = append(days.Content, keyNode(day.Key()), textNode(text))
		}
		root.Content = append(root.Content, keyNode(program.WeekKey(i+1)), days)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, wrap(ErrSerialization, "encode yaml", "", err)
	}
	if err := enc.Close(); err != nil {
		return nil, wrap(ErrSerialization, "encode yaml", "", err)
	}
	return buf.Bytes(), nil
}

func keyNode(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key, Style: yaml.DoubleQuotedStyle}
}

func textNode(text string) *yaml.Node {
	style := yaml.DoubleQuotedStyle
	if strings.Contains(text, "\n") {
		style = yaml.LiteralStyle
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: text, Style: style}
}

// DecodeYAML parses a YAML artifact under the same structural rules as
// DecodeJSON.
func DecodeYAML(data []byte) (program.Program, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return program.Program{}, wrap(ErrSerialization, "decode yaml", "", err)
	}
	p, err := decodeYAMLDocument(&doc)
	if err != nil {
		return program.Program{}, wrap(ErrSerialization, "decode yaml", "", err)
	}
	return p, nil
}

func decodeYAMLDocument(doc *yaml.Node) (program.Program, error) {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return program.Program{}, fmt.Errorf("expected a single document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return program.Program{}, fmt.Errorf("top level must be a mapping")
	}
	weeks := map[int]program.WeekPlan{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		n, err := program.ParseWeekKey(key.Value)
		if err != nil {
			return program.Program{}, fmt.Errorf("line %d: %w", key.Line, err)
		}
		if _, dup := weeks[n]; dup {
			return program.Program{}, fmt.Errorf("line %d: duplicate week %q", key.Line, key.Value)
		}
		week, err := decodeYAMLWeek(value, n)
		if err != nil {
			return program.Program{}, err
		}
		weeks[n] = week
	}
	return assemble(weeks)
}

func decodeYAMLWeek(node *yaml.Node, n int) (program.WeekPlan, error) {
	var week program.WeekPlan
	if node.Kind != yaml.MappingNode {
		return week, fmt.Errorf("line %d: week %d must be a mapping", node.Line, n)
	}
	days := dayTracker{week: n}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		day, err := days.add(key.Value)
		if err != nil {
			return week, fmt.Errorf("line %d: %w", key.Line, err)
		}
		if value.Kind != yaml.ScalarNode || value.Tag != "!!str" {
			return week, fmt.Errorf("line %d: week %d day %s must be a string", value.Line, n, key.Value)
		}
		week = week.With(day, program.DayEntry(value.Value))
	}
	return week, days.complete()
}
