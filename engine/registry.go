package engine

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"wgtui/collector"
	"wgtui/model"
)

// Registry is the shared snapshot of all known WireGuard interfaces. One
// instance is created by the entry point and handed to the presentation
// layer; access follows a reader/writer discipline on a single lock.
// Refresh, Activate, selection, and the visibility toggle are writers;
// everything else is a reader.
type Registry struct {
	mu      sync.RWMutex
	runner  collector.Runner
	confDir string

	interfaces  map[string]model.Interface
	current     string
	showPrivate bool
}

// NewRegistry creates an empty registry. The first Refresh populates it.
func NewRegistry(runner collector.Runner, confDir string) *Registry {
	return &Registry{
		runner:     runner,
		confDir:    confDir,
		interfaces: make(map[string]model.Interface),
	}
}

// Refresh recaptures the status dump, reparses it, folds in the
// configured-but-down interfaces, and replaces the stored map wholesale.
// On any failure the prior map is left untouched and the error returned.
// The whole cycle runs under the write lock; a hung external command
// blocks the registry, matching the tool it fronts.
func (r *Registry) Refresh() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := r.runner.Dump()
	if err != nil {
		return err
	}
	ifaces, err := collector.ParseDump(raw)
	if err != nil {
		return err
	}
	if err := collector.MergeConfigured(ifaces, r.confDir); err != nil {
		return err
	}
	r.interfaces = ifaces
	return nil
}

// Names returns all interface names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.interfaces))
	for name := range r.interfaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a copy of the named interface record.
func (r *Registry) Get(name string) (model.Interface, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	iface, ok := r.interfaces[name]
	return iface, ok
}

// Snapshot returns a copy of the whole interface map. Private keys are
// blanked unless the reveal flag is set: the flag gates every surface a
// key can leave the registry through, not just rendering.
func (r *Registry) Snapshot() map[string]model.Interface {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]model.Interface, len(r.interfaces))
	for name, iface := range r.interfaces {
		iface.Peers = append([]model.Peer(nil), iface.Peers...)
		if !r.showPrivate {
			iface.PrivateKey = ""
		}
		out[name] = iface
	}
	return out
}

// Render returns the presentation text for a named interface. Requesting a
// name that did not come from Names is a bug in the caller.
func (r *Registry) Render(name string) (string, error) {
	return r.RenderAt(name, uint64(time.Now().Unix()))
}

// RenderAt is Render with an explicit clock, in epoch seconds.
func (r *Registry) RenderAt(name string, now uint64) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	iface, ok := r.interfaces[name]
	if !ok {
		return "", fmt.Errorf("unknown interface %q", name)
	}
	return RenderInterface(iface, r.showPrivate, now), nil
}

// ToggleShowPrivate flips the global private-key visibility flag. Stored
// records are never mutated; the flag only affects rendering.
func (r *Registry) ToggleShowPrivate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.showPrivate = !r.showPrivate
}

// ShowPrivate reports whether private keys are rendered in the clear.
func (r *Registry) ShowPrivate() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.showPrivate
}

// Select records the interface currently chosen for detail viewing and
// activation.
func (r *Registry) Select(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = name
}

// Current returns the selected interface name, empty when none.
func (r *Registry) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Activate asks wg-quick to bring the named interface up or down and relays
// the tool's stderr diagnostics verbatim. The stored map is not touched;
// callers refresh afterwards to observe the new truth. Like Refresh, the
// external invocation runs under the write lock.
func (r *Registry) Activate(name string, up bool) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.interfaces[name]; !ok {
		return "", fmt.Errorf("unknown interface %q", name)
	}
	return r.runner.Activate(name, up)
}
