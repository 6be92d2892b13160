package orchestrator

import "github.com/ugv-telemetry/uvt/internal/options"

// Option configures ReadBag or ReadMCAP.
type Option = options.Option[*config]

// config holds the orchestrator's tunables: which topics carry the map and
// trajectory messages, and how many goroutines parse message bodies
// concurrently.
type config struct {
	mapTopic    string
	trajTopic   string
	workerCount int
}

func defaultConfig() *config {
	return &config{
		mapTopic:    "/map",
		trajTopic:   "/odom",
		workerCount: 4,
	}
}

// WithMapTopic overrides the topic ReadBag/ReadMCAP treat as the map
// source. Default "/map".
func WithMapTopic(topic string) Option {
	return options.NoError(func(c *config) { c.mapTopic = topic })
}

// WithTrajTopic overrides the topic ReadBag/ReadMCAP treat as the
// trajectory source. Default "/odom".
func WithTrajTopic(topic string) Option {
	return options.NoError(func(c *config) { c.trajTopic = topic })
}

// WithWorkerCount overrides the number of goroutines used to parse message
// bodies concurrently. Values less than 1 are treated as 1.
func WithWorkerCount(n int) Option {
	return options.NoError(func(c *config) {
		if n < 1 {
			n = 1
		}
		c.workerCount = n
	})
}
