package collector

import (
	"os"
	"path/filepath"
	"testing"

	"wgtui/model"
)

func writeConf(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("[Interface]\n"), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestMergeConfigured(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, "wg0.conf")
	writeConf(t, dir, "wg1.conf")
	writeConf(t, dir, "notes.txt") // not a config, ignored

	ifaces := map[string]model.Interface{
		"wg0": {Name: "wg0", Enabled: true, PrivateKey: "PRIV0", ListenPort: 51820},
	}
	if err := MergeConfigured(ifaces, dir); err != nil {
		t.Fatalf("MergeConfigured: %v", err)
	}

	if len(ifaces) != 2 {
		t.Fatalf("got %d interfaces, want 2", len(ifaces))
	}

	wg0 := ifaces["wg0"]
	if !wg0.Enabled || wg0.PrivateKey != "PRIV0" {
		t.Errorf("live wg0 was overwritten: %+v", wg0)
	}

	wg1, ok := ifaces["wg1"]
	if !ok {
		t.Fatal("configured-but-down wg1 missing")
	}
	if wg1.Enabled {
		t.Error("wg1 should be disabled")
	}
	if wg1.Name != "wg1" {
		t.Errorf("wg1 name = %q", wg1.Name)
	}
	if wg1.PrivateKey != "" || wg1.PublicKey != "" || wg1.ListenPort != 0 ||
		wg1.Fwmark != "" || len(wg1.Peers) != 0 {
		t.Errorf("down wg1 carries non-default fields: %+v", wg1)
	}
}

func TestMergeConfiguredBareSuffix(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, ".conf") // no base name, ignored

	ifaces := map[string]model.Interface{}
	if err := MergeConfigured(ifaces, dir); err != nil {
		t.Fatalf("MergeConfigured: %v", err)
	}
	if len(ifaces) != 0 {
		t.Errorf("got %d interfaces, want 0", len(ifaces))
	}
}

func TestMergeConfiguredUnreadableDir(t *testing.T) {
	ifaces := map[string]model.Interface{}
	err := MergeConfigured(ifaces, filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("MergeConfigured succeeded on missing dir, want error")
	}
	if len(ifaces) != 0 {
		t.Errorf("map mutated on failure: %v", ifaces)
	}
}
