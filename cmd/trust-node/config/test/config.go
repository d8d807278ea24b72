package configtest

import "github.com/vanet-dev/trust-node/cmd/trust-node/config"

// FromFile returns config read from the file at path.
func FromFile(path string) *config.Config {
	var p config.Prm

	return config.New(p,
		config.WithConfigFile(path),
	)
}

// EmptyConfig returns config without any values and sections.
func EmptyConfig() *config.Config {
	var p config.Prm

	return config.New(p)
}
