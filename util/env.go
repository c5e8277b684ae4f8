package util

import (
	"fmt"
	"os"

	"github.com/openshift/managed-upgrade-prechecks/config"
)

// GetClusterName retrieves the target cluster name from the running environment or errors if unavailable
func GetClusterName() (string, error) {
	name, found := os.LookupEnv(config.EnvClusterName)
	if !found || name == "" {
		return "", fmt.Errorf("%s must be set", config.EnvClusterName)
	}
	return name, nil
}

// GetConfigPath returns the configuration file path from the running environment, or an
// empty string when none is configured.
func GetConfigPath() string {
	return os.Getenv(config.EnvConfigPath)
}

// GetStatePath returns the cluster state snapshot path from the running environment, or an
// empty string when none is configured.
func GetStatePath() string {
	return os.Getenv(config.EnvStatePath)
}
