package model

// Interface holds the state of one local WireGuard interface as reported by
// the status dump. A disabled interface is configured on disk but not
// currently up; every other field is then zero.
type Interface struct {
	Name       string
	Enabled    bool
	PrivateKey string
	PublicKey  string
	ListenPort uint16
	Fwmark     string // empty when unset ("off" in the dump)
	Peers      []Peer // dump order
}

// Peer is one remote endpoint configured under an interface.
type Peer struct {
	PublicKey           string
	PresharedKey        string // empty when the dump reports "(none)"
	Endpoint            string // "host:port", empty if the peer never connected
	AllowedIPs          string // comma-separated CIDR list, kept opaque
	LatestHandshake     uint64 // epoch seconds, 0 = never
	TransferRx          uint64
	TransferTx          uint64
	PersistentKeepalive bool
}

// Down returns the default record for a configured-but-inactive interface.
func Down(name string) Interface {
	return Interface{Name: name}
}
