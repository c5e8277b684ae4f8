package main

import (
	"github.com/openshift/managed-upgrade-prechecks/pkg/configmanager"
	"github.com/openshift/managed-upgrade-prechecks/pkg/prereq"
	"github.com/openshift/managed-upgrade-prechecks/util"
)

// loadConfig reads the checker configuration from the --config flag, falling back to the
// environment. Without either the defaults are used.
func (o *rootOptions) loadConfig() (*prereq.Config, error) {
	path := o.configPath
	if path == "" {
		path = util.GetConfigPath()
	}
	cfg := &prereq.Config{}
	if err := configmanager.NewBuilder().New(path).Into(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
