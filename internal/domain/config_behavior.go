package domain

import (
	"errors"
	"fmt"
	"time"
)

// OpenDelay returns the deferral applied to the startup open-path event.
func (c Config) OpenDelay() time.Duration {
	if c.Launch.OpenDelayMS <= 0 {
		return DefaultOpenPathDelay
	}
	return time.Duration(c.Launch.OpenDelayMS) * time.Millisecond
}

// StrategyOrDefault returns the configured provisioning strategy, symlink when unset.
func (c Config) StrategyOrDefault() Strategy {
	if c.Provisioning.Strategy == "" {
		return StrategySymlink
	}
	return c.Provisioning.Strategy
}

// VariantOrDefault returns the configured menu variant, full when unset.
func (c Config) VariantOrDefault() MenuVariant {
	if c.Menu.Variant == "" {
		return MenuVariantFull
	}
	return c.Menu.Variant
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	switch c.StrategyOrDefault() {
	case StrategySymlink, StrategyScript:
	default:
		errs = append(errs, fmt.Errorf("provisioning.strategy: unknown strategy %q", c.Provisioning.Strategy))
	}
	switch c.VariantOrDefault() {
	case MenuVariantFull, MenuVariantCompact:
	default:
		errs = append(errs, fmt.Errorf("menu.variant: unknown variant %q", c.Menu.Variant))
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window: size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Launch.OpenDelayMS < 0 {
		errs = append(errs, fmt.Errorf("launch.open_delay_ms: must be >= 0, got %d", c.Launch.OpenDelayMS))
	}
	return errors.Join(errs...)
}
