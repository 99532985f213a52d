package rules

// Operator is the comparison applied between an entry attribute and a
// candidate value. Comparisons are case-insensitive.
type Operator string

const (
	OpEquals        Operator = "equals"
	OpIncludes      Operator = "includes"
	OpStartsWith    Operator = "starts-with"
	OpNotEquals     Operator = "not-equals"
	OpNotIncludes   Operator = "not-includes"
	OpNotStartsWith Operator = "not-starts-with"
)

// ActionKind names a post-processing step.
type ActionKind string

const (
	ActionDeduplicate ActionKind = "deduplicate"
	ActionSort        ActionKind = "sort"
)

// Order is the sort direction, ascending unless stated otherwise.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Filter tests one attribute against a list of candidate values. It passes
// as soon as any single value satisfies the operator. That holds for the
// negative operators too: not-equals with several values passes once the
// attribute differs from any one of them.
type Filter struct {
	Attribute string
	Operator  Operator
	Values    []string
}

// Criterion is a conjunction: an entry satisfies it only when every filter
// passes.
type Criterion struct {
	Filters []Filter
}

// Action is one post-processing step. By names the attribute the action
// keys on; Order applies to sort actions only.
type Action struct {
	Kind  ActionKind
	By    string
	Order Order
}

// Document is a validated rule document. An entry is accepted when it
// satisfies at least one criterion; actions then run in listed order.
type Document struct {
	Accept      []Criterion
	PostProcess []Action
}
