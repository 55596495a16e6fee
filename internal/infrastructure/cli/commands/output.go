package commands

import (
	"github.com/fatih/color"

	"github.com/t3lang/t3lang-shell/internal/domain"
)

var (
	colorOK    = color.New(color.FgGreen)
	colorWarn  = color.New(color.FgYellow)
	colorError = color.New(color.FgRed, color.Bold)
	colorLabel = color.New(color.Bold)
	colorDim   = color.New(color.FgCyan)
)

func outcomeColor(kind domain.OutcomeKind) *color.Color {
	switch kind {
	case domain.OutcomeInstalled, domain.OutcomeUninstalled:
		return colorOK
	case domain.OutcomeCancelled:
		return colorWarn
	default:
		return colorError
	}
}

func healthColor(status domain.HealthStatus) *color.Color {
	switch status {
	case domain.HealthOK:
		return colorOK
	case domain.HealthWarn:
		return colorWarn
	default:
		return colorError
	}
}
