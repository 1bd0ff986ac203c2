package collector

import (
	"fmt"
	"os"
	"strings"

	"wgtui/model"
)

// ConfExt is the filename suffix marking an interface configuration file.
const ConfExt = ".conf"

// MergeConfigured folds configured-but-down interfaces into ifaces: every
// *.conf entry in dir whose stripped base name is not already a key gets a
// default disabled record. Live entries are never overwritten. A directory
// read failure fails the whole refresh, since the down interfaces would
// otherwise silently vanish from the listing.
func MergeConfigured(ifaces map[string]model.Interface, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading config dir: %w", err)
	}
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ConfExt)
		if !ok || name == "" {
			continue
		}
		if _, up := ifaces[name]; up {
			continue
		}
		ifaces[name] = model.Down(name)
	}
	return nil
}
