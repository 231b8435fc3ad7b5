package shake

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LogEnv is the environment variable holding the initial level of Logger.
const LogEnv = "LOG"

var (
	log    = logrus.New()
	Logger = log
)

func init() {
	if x, exists := os.LookupEnv(LogEnv); exists {
		if level, exists := lookupLevel(x); exists {
			Logger.SetLevel(level)
		}
	}
}

// SetLogLevel sets the level of Logger by name, e.g. "debug" or "warning".
func SetLogLevel(name string) error {
	level, exists := lookupLevel(name)
	if !exists {
		return errors.Errorf("unknown log level %q", name)
	}
	Logger.SetLevel(level)
	return nil
}

func lookupLevel(name string) (logrus.Level, bool) {
	name = strings.ToLower(name)
	for _, l := range logrus.AllLevels {
		if l.String() == name {
			return l, true
		}
	}
	return 0, false
}
