package config

import "errors"

var (
	// ErrNoKeySource is returned when no key material was provided.
	ErrNoKeySource = errors.New("a key is required: use --key, --key-file, --passphrase or --prompt")
	// ErrManyKeySources is returned when key material arrives through more than one flag.
	ErrManyKeySources = errors.New("--key, --key-file, --passphrase and --prompt are mutually exclusive")
)

// ValidateKeySource enforces that the key material comes from exactly
// one source. Called by the commands that transform pixels; inspection
// commands skip it.
func (c Config) ValidateKeySource() error {
	sources := 0

	for _, set := range []bool{c.Key != "", c.KeyFile != "", c.Passphrase != "", c.Prompt} {
		if set {
			sources++
		}
	}

	switch {
	case sources == 0:
		return ErrNoKeySource
	case sources > 1:
		return ErrManyKeySources
	}

	return nil
}
