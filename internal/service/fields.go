package service

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Input is a raw JSON request body. The mobile and web clients disagree
// on casing and spelling for several fields, so values are pulled out
// through per-field alias lists instead of fixed struct tags.
type Input map[string]any

// fieldAliases maps each logical field to the external keys it may
// arrive under, in lookup order. This table is the single place that
// knows about the upstream naming drift.
type fieldAliases map[string][]string

var deductionFields = fieldAliases{
	"regNo":          {"regNo", "registrationNo", "regno"},
	"route":          {"route"},
	"supplierName":   {"supplierName", "dealerName", "dealer"},
	"leafType":       {"leafType", "leaf_type"},
	"bagWeight":      {"bagWeight", "bag_weight"},
	"water":          {"water"},
	"coarse":         {"coarse", "coarce", "coarseLeaf", "coarse_leaf"},
	"rejected":       {"rejected", "reject"},
	"boiled":         {"boiled", "boild"},
	"spd":            {"spd"},
	"routeDeduct":    {"routeDeduct", "route_deduct"},
	"excessLeaf":     {"excessLeaf", "excess_leaf", "excess"},
	"transfer":       {"transfer"},
	"routeDeductPre": {"routeDeductPre", "route_deduct_pre"},
	"userName":       {"userName", "user"},
	"month":          {"month", "monthName"},
	"date":           {"date", "day"},
	"pcName":         {"pcName", "hostName"},
}

var leafCountFields = fieldAliases{
	"date":      {"date", "day"},
	"month":     {"month", "monthName"},
	"route":     {"route"},
	"bestLeaf":  {"bestLeaf", "best_leaf", "best"},
	"belowBest": {"bellowBest", "belowBest", "below_best"},
	"poor":      {"poor"},
	"userName":  {"userName", "user"},
	"pcName":    {"pcName", "hostName"},
}

// value returns the first present value, trying the alias keys exactly
// first and falling back to a case-insensitive match over the input.
// When several present keys fold-match the same alias, the smallest one
// wins so resolution does not depend on map iteration order.
func (in Input) value(keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := in[k]; ok {
			return v, true
		}
	}
	for _, k := range keys {
		match := ""
		for present := range in {
			if strings.EqualFold(present, k) && (match == "" || present < match) {
				match = present
			}
		}
		if match != "" {
			return in[match], true
		}
	}
	return nil, false
}

// str resolves a trimmed string field; absent fields yield "".
func (in Input) str(keys []string) string {
	v, ok := in.value(keys)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// integer resolves an integer field that may arrive as a JSON number,
// a json.Number, or a numeric string.
func (in Input) integer(keys []string) (int, bool) {
	v, ok := in.value(keys)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// amount resolves a decimal weight field; absent or malformed values
// yield zero, matching the tolerant upstream contract.
func (in Input) amount(keys []string) decimal.Decimal {
	v, ok := in.value(keys)
	if !ok {
		return decimal.Zero
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		return d
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	return decimal.Zero
}
