// wlaninfo/modules/wlan/exec.go
package wlan

import (
	"bytes"
	"os/exec"

	"go.uber.org/zap"
)

// Runner executes external tools. The collectors only ever talk to
// commands through this interface so tests can feed them canned output.
type Runner interface {
	Run(name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}

type execRunner struct {
	log *zap.Logger
}

// NewRunner returns a Runner backed by os/exec.
func NewRunner(log *zap.Logger) Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &execRunner{log: log}
}

func (r *execRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	r.log.Debug("ran command",
		zap.String("cmd", name),
		zap.Strings("args", args),
		zap.Error(err))
	return out.String(), err
}

func (r *execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
