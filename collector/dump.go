package collector

import (
	"fmt"
	"strconv"
	"strings"

	"wgtui/model"
)

// Field counts in `wg show all dump` output. An interface header has
// exactly 5 tab-separated fields; a peer line has 9.
const (
	interfaceFieldCount = 5
	peerFieldCount      = 9
)

// ParseDump turns the raw output of `wg show all dump` into a map from
// interface name to record. Peers are the contiguous run of lines following
// their interface header whose leading field carries the same name. Any
// malformed field fails the whole parse; no partial map is ever returned.
func ParseDump(raw string) (map[string]model.Interface, error) {
	lines := strings.Split(raw, "\n")
	// wg terminates its output with a trailing newline, so the final split
	// element is an empty artifact.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	ifaces := make(map[string]model.Interface)
	for i, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) != interfaceFieldCount {
			continue
		}
		iface, err := parseInterfaceLine(fields)
		if err != nil {
			return nil, err
		}
		for _, next := range lines[i+1:] {
			peer := strings.Split(next, "\t")
			if peer[0] != iface.Name || len(peer) == interfaceFieldCount {
				break
			}
			p, err := parsePeerLine(peer)
			if err != nil {
				return nil, err
			}
			iface.Peers = append(iface.Peers, p)
		}
		ifaces[iface.Name] = iface
	}
	return ifaces, nil
}

func parseInterfaceLine(fields []string) (model.Interface, error) {
	name := fields[0]
	port, err := strconv.ParseUint(fields[3], 10, 16)
	if err != nil {
		return model.Interface{}, fmt.Errorf("interface %s: listen port %q: %w", name, fields[3], err)
	}
	fwmark := fields[4]
	if fwmark == "off" {
		fwmark = ""
	}
	return model.Interface{
		Name:       name,
		Enabled:    true,
		PrivateKey: fields[1],
		PublicKey:  fields[2],
		ListenPort: uint16(port),
		Fwmark:     fwmark,
	}, nil
}

func parsePeerLine(fields []string) (model.Peer, error) {
	iface := fields[0]
	if len(fields) != peerFieldCount {
		return model.Peer{}, fmt.Errorf("interface %s: peer line has %d fields, want %d",
			iface, len(fields), peerFieldCount)
	}
	handshake, err := strconv.ParseUint(fields[5], 10, 64)
	if err != nil {
		return model.Peer{}, fmt.Errorf("interface %s: latest handshake %q: %w", iface, fields[5], err)
	}
	rx, err := strconv.ParseUint(fields[6], 10, 64)
	if err != nil {
		return model.Peer{}, fmt.Errorf("interface %s: transfer rx %q: %w", iface, fields[6], err)
	}
	tx, err := strconv.ParseUint(fields[7], 10, 64)
	if err != nil {
		return model.Peer{}, fmt.Errorf("interface %s: transfer tx %q: %w", iface, fields[7], err)
	}
	var keepalive bool
	switch fields[8] {
	case "on":
		keepalive = true
	case "off":
		keepalive = false
	default:
		return model.Peer{}, fmt.Errorf("interface %s: persistent keepalive %q: want on or off", iface, fields[8])
	}
	preshared := fields[2]
	if preshared == "(none)" {
		preshared = ""
	}
	return model.Peer{
		PublicKey:           fields[1],
		PresharedKey:        preshared,
		Endpoint:            fields[3],
		AllowedIPs:          fields[4],
		LatestHandshake:     handshake,
		TransferRx:          rx,
		TransferTx:          tx,
		PersistentKeepalive: keepalive,
	}, nil
}
