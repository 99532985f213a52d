package rules

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

var validOperators = map[Operator]bool{
	OpEquals:        true,
	OpIncludes:      true,
	OpStartsWith:    true,
	OpNotEquals:     true,
	OpNotIncludes:   true,
	OpNotStartsWith: true,
}

// Load reads and validates a rule document from disk. YAML and JSON inputs
// are both accepted; the file extension does not matter.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read specs file: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid specs %s: %w", path, err)
	}

	slog.Debug("Specs loaded", "path", path,
		"criteria", len(doc.Accept), "actions", len(doc.PostProcess))

	return doc, nil
}

// Parse decodes rule document data and builds the typed document in a
// single validating pass. Anything not conforming to the expected shape is
// rejected; there is no partial repair.
func Parse(data []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse specs: %w", err)
	}

	return buildDocument(raw)
}

func buildDocument(raw any) (*Document, error) {
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("specs root must be an object")
	}

	acceptRaw, ok := root["accept"]
	if !ok {
		return nil, fmt.Errorf("missing 'accept' section")
	}
	acceptList, ok := acceptRaw.([]any)
	if !ok {
		return nil, fmt.Errorf("'accept' must be a list")
	}

	doc := &Document{
		Accept: make([]Criterion, 0, len(acceptList)),
	}

	for i, criterionRaw := range acceptList {
		criterion, err := buildCriterion(criterionRaw)
		if err != nil {
			return nil, fmt.Errorf("accept entry %d: %w", i, err)
		}
		doc.Accept = append(doc.Accept, *criterion)
	}

	if postRaw, ok := root["postProcess"]; ok {
		postList, ok := postRaw.([]any)
		if !ok {
			return nil, fmt.Errorf("'postProcess' must be a list")
		}
		for i, actionRaw := range postList {
			action, err := buildAction(actionRaw)
			if err != nil {
				return nil, fmt.Errorf("postProcess entry %d: %w", i, err)
			}
			doc.PostProcess = append(doc.PostProcess, *action)
		}
	}

	return doc, nil
}

func buildCriterion(raw any) (*Criterion, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("must be an object")
	}

	filtersRaw, ok := obj["filters"]
	if !ok {
		return nil, fmt.Errorf("missing 'filters' list")
	}
	filtersList, ok := filtersRaw.([]any)
	if !ok {
		return nil, fmt.Errorf("'filters' must be a list")
	}

	criterion := &Criterion{
		Filters: make([]Filter, 0, len(filtersList)),
	}

	for i, filterRaw := range filtersList {
		filter, err := buildFilter(filterRaw)
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}
		criterion.Filters = append(criterion.Filters, *filter)
	}

	return criterion, nil
}

func buildFilter(raw any) (*Filter, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("must be an object")
	}

	attribute, ok := obj["attribute"].(string)
	if !ok {
		return nil, fmt.Errorf("missing 'attribute'")
	}

	operatorStr, ok := obj["operator"].(string)
	if !ok {
		return nil, fmt.Errorf("missing 'operator'")
	}
	operator := Operator(operatorStr)
	if !validOperators[operator] {
		return nil, fmt.Errorf("unknown operator '%s'", operatorStr)
	}

	valuesRaw, ok := obj["values"]
	if !ok {
		return nil, fmt.Errorf("missing 'values'")
	}
	valuesList, ok := valuesRaw.([]any)
	if !ok {
		return nil, fmt.Errorf("'values' must be a list")
	}

	values := make([]string, 0, len(valuesList))
	for _, v := range valuesList {
		// Scalar values are compared as text, so numbers and booleans
		// are stringified rather than rejected.
		values = append(values, fmt.Sprint(v))
	}

	return &Filter{
		Attribute: attribute,
		Operator:  operator,
		Values:    values,
	}, nil
}

func buildAction(raw any) (*Action, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("must be an object")
	}

	kindStr, ok := obj["action"].(string)
	if !ok {
		return nil, fmt.Errorf("missing 'action'")
	}

	switch ActionKind(kindStr) {
	case ActionDeduplicate:
		by, ok := obj["by"].(string)
		if !ok {
			return nil, fmt.Errorf("deduplicate requires 'by'")
		}
		return &Action{Kind: ActionDeduplicate, By: by}, nil

	case ActionSort:
		by, ok := obj["by"].(string)
		if !ok {
			return nil, fmt.Errorf("sort requires 'by'")
		}
		order := OrderAsc
		if orderRaw, present := obj["order"]; present {
			orderStr, ok := orderRaw.(string)
			if !ok || (Order(orderStr) != OrderAsc && Order(orderStr) != OrderDesc) {
				return nil, fmt.Errorf("sort order must be 'asc' or 'desc'")
			}
			order = Order(orderStr)
		}
		return &Action{Kind: ActionSort, By: by, Order: order}, nil

	default:
		return nil, fmt.Errorf("unknown action '%s'", kindStr)
	}
}
