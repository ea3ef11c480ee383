package commands

import (
	"github.com/dotvar/dotvar/pkg/envdetect"
	"github.com/dotvar/dotvar/pkg/types"
)

// Detect probes the running desktop environment. It needs no
// repository.
func Detect() types.EnvironmentFingerprint {
	return envdetect.New().Detect()
}
