package sweep

import (
	"fmt"
	"net"

	"github.com/projectdiscovery/mapcidr"
)

// Hosts expands an IPv4 CIDR into its usable host addresses in address order.
// The network is normalized first, so host bits in the input are cleared
// (192.168.1.37/24 enumerates the whole /24).
//
// For prefixes of /30 and shorter the network and broadcast addresses are
// excluded. Degenerate prefixes keep every address: a /31 yields both
// addresses of the point-to-point pair (RFC 3021) and a /32 yields the single
// host.
func Hosts(cidr string) ([]net.IP, error) {
	_, network, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, fmt.Errorf("invalid network %q: %w (expected CIDR notation, e.g. 192.168.1.0/24)", cidr, err)
	}
	if network.IP.To4() == nil {
		return nil, fmt.Errorf("invalid network %q: only IPv4 networks are supported", cidr)
	}

	addresses, err := mapcidr.IPAddresses(network.String())
	if err != nil {
		return nil, fmt.Errorf("failed to expand network %s: %w", network, err)
	}

	ones, _ := network.Mask.Size()

	hosts := make([]net.IP, 0, len(addresses))
	for _, address := range addresses {
		ip := net.ParseIP(address)
		if ip == nil {
			continue
		}
		if ones <= 30 && isNetworkOrBroadcast(ip, network) {
			continue
		}
		hosts = append(hosts, ip)
	}
	return hosts, nil
}

// isNetworkOrBroadcast checks if an IP is the network or broadcast address of
// an IPv4 network.
func isNetworkOrBroadcast(ip net.IP, network *net.IPNet) bool {
	if ip.Equal(network.IP) {
		return true
	}

	ip4 := ip.To4()
	if ip4 == nil {
		return false
	}

	broadcast := make(net.IP, len(network.IP))
	copy(broadcast, network.IP)
	for i := range broadcast {
		broadcast[i] |= ^network.Mask[i]
	}
	return ip.Equal(broadcast)
}
