package config

const (
	// AppName is the name of the prerequisite checker
	AppName string = "prereq-checker"
	// MetricsSubsystem is the namespace of exported Prometheus metrics
	MetricsSubsystem string = "prereqchecker"
	// EnvClusterName names the cluster to check when none is given on the command line
	EnvClusterName string = "PREREQ_CLUSTER_NAME"
	// EnvConfigPath is the path of the YAML configuration file when none is given on the command line
	EnvConfigPath string = "PREREQ_CHECKER_CONFIG"
	// EnvStatePath is the path of the cluster state snapshot when none is given on the command line
	EnvStatePath string = "PREREQ_CLUSTER_STATE"
)
