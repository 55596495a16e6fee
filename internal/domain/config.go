package domain

// Config mirrors ~/.t3lang/config.yaml.
type Config struct {
	ConfigFormatVersion string               `yaml:"config_format_version"`
	Provisioning        ProvisioningSettings `yaml:"provisioning"`
	Menu                MenuSettings         `yaml:"menu"`
	Window              WindowSettings       `yaml:"window"`
	Launch              LaunchSettings       `yaml:"launch"`
}

// ProvisioningSettings controls how the command-line launcher is installed.
type ProvisioningSettings struct {
	Strategy Strategy `yaml:"strategy"`
	Journal  bool     `yaml:"journal"`
}

// MenuSettings selects the menu layout.
type MenuSettings struct {
	Variant MenuVariant `yaml:"variant"`
}

// WindowSettings configures the main window.
type WindowSettings struct {
	Title          string `yaml:"title"`
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	SingleInstance bool   `yaml:"single_instance"`
}

// LaunchSettings tunes startup argument handoff.
type LaunchSettings struct {
	OpenDelayMS int `yaml:"open_delay_ms"`
}
