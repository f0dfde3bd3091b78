package instance

import "github.com/angelmondragon/skt-storefront/pkg/env"

// GetID returns the process instance identifier used in startup logs.
// SKT_INSTANCE_ID wins over the platform-provided DYNO.
func GetID() string {
	if id := env.Get("SKT_INSTANCE_ID", ""); id != "" {
		return id
	}
	return env.Get("DYNO", "local")
}
