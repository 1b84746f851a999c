package abi

import (
	"fmt"
	"regexp"
	"strings"
)

// Human-readable ABI grammar, matching the source's regex-driven parser
// (human.go) but built directly against Type/Function/Event rather than
// going through a JSON intermediate.
var (
	functionRegex = regexp.MustCompile(`^function\s+(\w+)\s*\(([^)]*)\)\s*(?:payable|view|pure)?\s*(?:returns\s*\(([^)]*)\))?$`)
	eventRegex    = regexp.MustCompile(`^event\s+(\w+)\s*\(([^)]*)\)\s*(anonymous)?$`)
	paramRegex    = regexp.MustCompile(`^(\S+)(?:\s+(indexed))?(?:\s+\w+)?$`)
)

// ParseHumanReadableFunction parses a single "function name(args) returns
// (outs)" line into a Function bound to hash.
func ParseHumanReadableFunction(line string, hash HashFunc) (*Function, error) {
	line = strings.TrimSpace(line)
	m := functionRegex.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("abi: unrecognized function signature: %q", line)
	}
	name, inputsStr, outputsStr := m[1], m[2], m[3]

	inputs, err := parseParamTuple(inputsStr)
	if err != nil {
		return nil, fmt.Errorf("abi: function %s inputs: %w", name, err)
	}
	var outputs *Type
	if strings.TrimSpace(outputsStr) != "" {
		outputs, err = parseParamTuple(outputsStr)
		if err != nil {
			return nil, fmt.Errorf("abi: function %s outputs: %w", name, err)
		}
	}
	return NewFunction(name, inputs, outputs, hash)
}

// ParseHumanReadableEvent parses a single "event name(args)" line, where
// each argument may carry an "indexed" marker, into an Event bound to
// hash.
func ParseHumanReadableEvent(line string, hash HashFunc) (*Event, error) {
	line = strings.TrimSpace(line)
	m := eventRegex.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("abi: unrecognized event signature: %q", line)
	}
	name, paramsStr, anon := m[1], m[2], m[3] != ""

	params := splitTopLevel(paramsStr)
	var typeStrs []string
	var indexed []bool
	for _, p := range params {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		pm := paramRegex.FindStringSubmatch(p)
		if pm == nil {
			return nil, fmt.Errorf("abi: unrecognized event parameter: %q", p)
		}
		typeStrs = append(typeStrs, pm[1])
		indexed = append(indexed, pm[2] == "indexed")
	}

	inputs, err := ParseTupleType("(" + strings.Join(typeStrs, ",") + ")")
	if err != nil {
		return nil, fmt.Errorf("abi: event %s: %w", name, err)
	}
	return NewEvent(name, inputs, indexed, anon, hash)
}

// parseParamTuple parses a comma-separated, unparenthesized parameter list
// into a tuple Type, keeping each parameter's type and dropping any
// "indexed" marker and parameter name.
func parseParamTuple(paramsStr string) (*Type, error) {
	params := splitTopLevel(paramsStr)
	var typeStrs []string
	for _, p := range params {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		pm := paramRegex.FindStringSubmatch(p)
		if pm == nil {
			return nil, fmt.Errorf("unrecognized parameter: %q", p)
		}
		typeStrs = append(typeStrs, pm[1])
	}
	return ParseTupleType("(" + strings.Join(typeStrs, ",") + ")")
}

// splitTopLevel splits a comma-separated list while respecting nested
// parentheses, so tuple-typed parameters like "(uint256,bool) a" are not
// split on their internal comma.
func splitTopLevel(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	if start <= len(s) {
		out = append(out, s[start:])
	}
	return out
}
