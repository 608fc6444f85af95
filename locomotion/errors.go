package locomotion

import "errors"

var ErrConfiguration = errors.New("locomotion: configuration error")

// ConfigurationError is returned by New when a required collaborator is not
// bound. The controller it accompanies is inert.
type ConfigurationError struct {
	Missing string
}

func (e *ConfigurationError) Error() string {
	return "locomotion: " + e.Missing + " not bound, controller is inert"
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
