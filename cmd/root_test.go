package cmd

import (
	"bytes"
	"strings"
	"testing"

	"wgtui/engine"
)

type fakeRunner struct {
	dump string
}

func (f *fakeRunner) Dump() (string, error) { return f.dump, nil }

func (f *fakeRunner) Activate(name string, up bool) (string, error) {
	return "", nil
}

const testDump = "wg0\tPRIV0\tPUB0\t51820\toff\n" +
	"wg1\tPRIV1\tPUB1\t51821\toff\n"

func TestWriteJSONRedactsByDefault(t *testing.T) {
	reg := engine.NewRegistry(&fakeRunner{dump: testDump}, t.TempDir())
	if err := reg.Refresh(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeJSON(reg, &buf); err != nil {
		t.Fatalf("writeJSON: %v", err)
	}

	out := buf.String()
	for _, key := range []string{"PRIV0", "PRIV1"} {
		if strings.Contains(out, key) {
			t.Errorf("JSON output contains private key %s with reveal off", key)
		}
	}
	if !strings.Contains(out, "PUB0") {
		t.Errorf("JSON output missing public key:\n%s", out)
	}
}

func TestWriteJSONRevealed(t *testing.T) {
	reg := engine.NewRegistry(&fakeRunner{dump: testDump}, t.TempDir())
	if err := reg.Refresh(); err != nil {
		t.Fatal(err)
	}
	reg.ToggleShowPrivate()

	var buf bytes.Buffer
	if err := writeJSON(reg, &buf); err != nil {
		t.Fatalf("writeJSON: %v", err)
	}
	if !strings.Contains(buf.String(), "PRIV0") {
		t.Error("JSON output missing private key with reveal on")
	}
}
