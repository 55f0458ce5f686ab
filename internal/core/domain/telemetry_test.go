package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/py2sec/internal/core/domain"
)

func TestStageStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.StageStatus
		isTerminal bool
	}{
		{"Pending", domain.StageStatusPending, false},
		{"Running", domain.StageStatusRunning, false},
		{"Completed", domain.StageStatusCompleted, true},
		{"Failed", domain.StageStatusFailed, true},
		{"Skipped", domain.StageStatusSkipped, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isTerminal, tt.status.IsTerminal())
		})
	}
}

func TestNormalizeStageStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.StageStatus
	}{
		{"pending", domain.StageStatusPending},
		{"PENDING", domain.StageStatusPending},
		{"running", domain.StageStatusRunning},
		{"completed", domain.StageStatusCompleted},
		{"failed", domain.StageStatusFailed},
		{"skipped", domain.StageStatusSkipped},
		{"cached", domain.StageStatusPending},
		{"", domain.StageStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.NormalizeStageStatus(tt.input))
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    domain.LogLevel
		expected string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(999), "INFO"}, // Default case
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}
