// Package model defines the plain data types the dashboard renders:
// transactions, stations, insights, KPI cards and the weekly series.
package model

import (
	"fmt"
	"strings"
)

// RiskLevel classifies a fueling transaction by anomaly severity.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Valid reports whether the level is one of the known severities.
func (r RiskLevel) Valid() bool {
	return r == RiskLow || r == RiskMedium || r == RiskHigh
}

// ParseRiskLevel converts user input to a RiskLevel, case-insensitively.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow, nil
	case "medium":
		return RiskMedium, nil
	case "high":
		return RiskHigh, nil
	default:
		return "", fmt.Errorf("unknown risk level: %q", s)
	}
}
