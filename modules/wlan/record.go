// wlaninfo/modules/wlan/record.go
package wlan

// NA marks a field that could not be determined.
const NA = "n/a"

// Report holds everything wlaninfo knows about one wireless interface.
// Every field starts as "n/a" and is filled in by the collectors; a
// collector that fails leaves its fields untouched.
type Report struct {
	Interface     string
	Phy           string
	State         string
	Vendor        string
	Model         string
	Bus           string
	Driver        string
	PowerMgmt     string
	MAC           string
	IPv4          string
	IPv6          string
	MTU           string
	Mode          string
	SSID          string
	BSSID         string
	Signal        string
	Channel       string
	Bitrate       string
	Standard      string
	Throughput    string
	ConnectedTime string
	TxPower       string
}

// NewReport returns a Report with every field defaulted to n/a.
func NewReport(iface string) Report {
	return Report{
		Interface:     iface,
		Phy:           NA,
		State:         NA,
		Vendor:        NA,
		Model:         NA,
		Bus:           NA,
		Driver:        NA,
		PowerMgmt:     NA,
		MAC:           NA,
		IPv4:          NA,
		IPv6:          NA,
		MTU:           NA,
		Mode:          NA,
		SSID:          NA,
		BSSID:         NA,
		Signal:        NA,
		Channel:       NA,
		Bitrate:       NA,
		Standard:      NA,
		Throughput:    NA,
		ConnectedTime: NA,
		TxPower:       NA,
	}
}

// Connected reports whether the interface is associated with an AP.
func (r Report) Connected() bool {
	return r.SSID != NA || r.BSSID != NA
}
