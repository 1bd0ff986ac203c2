package engine

import (
	"fmt"
	"strings"

	"wgtui/model"
	"wgtui/util"
)

const (
	// DownMessage is the entire rendering of a disabled interface.
	DownMessage = "Interface is down."

	hiddenKey    = "(hidden)"
	noPreshared  = "(none)"
	peersHeading = "----- Peers -----"
)

// RenderInterface produces the detail text for one interface. now is the
// current time in epoch seconds, used to compute handshake ages. A disabled
// interface renders as the fixed down message and nothing else, whatever
// stale fields the record may hold.
func RenderInterface(iface model.Interface, showPrivate bool, now uint64) string {
	if !iface.Enabled {
		return DownMessage
	}

	priv := hiddenKey
	if showPrivate {
		priv = iface.PrivateKey
	}
	fwmark := iface.Fwmark
	if fwmark == "" {
		fwmark = "off"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Private Key: %s\n", priv)
	fmt.Fprintf(&b, "Public Key: %s\n", iface.PublicKey)
	fmt.Fprintf(&b, "Listen Port: %d\n", iface.ListenPort)
	fmt.Fprintf(&b, "fwmark: %s\n", fwmark)
	b.WriteString(peersHeading + "\n")
	for _, peer := range iface.Peers {
		renderPeer(&b, peer, now)
		b.WriteString("\n")
	}
	return b.String()
}

func renderPeer(b *strings.Builder, peer model.Peer, now uint64) {
	preshared := peer.PresharedKey
	if preshared == "" {
		preshared = noPreshared
	}
	// A handshake timestamp ahead of the clock would underflow; clamp it.
	// A zero timestamp (never handshaked) deliberately formats as an
	// epoch-sized age rather than "never".
	age := uint64(0)
	if peer.LatestHandshake <= now {
		age = now - peer.LatestHandshake
	}

	fmt.Fprintf(b, "Public Key: %s\n", peer.PublicKey)
	fmt.Fprintf(b, "Preshared Key: %s\n", preshared)
	fmt.Fprintf(b, "Endpoint: %s\n", peer.Endpoint)
	fmt.Fprintf(b, "Allowed IPs: %s\n", peer.AllowedIPs)
	fmt.Fprintf(b, "Latest handshake: %s\n", util.TimeToEnglish(age))
	fmt.Fprintf(b, "Transfer: %d B received, %d B sent\n", peer.TransferRx, peer.TransferTx)
	fmt.Fprintf(b, "Persistent Keepalive: %t\n", peer.PersistentKeepalive)
}
