// wlaninfo/modules/wlan/geolocate.go
package wlan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type geoAccessPoint struct {
	MacAddress     string `json:"macAddress"`
	SignalStrength int    `json:"signalStrength"`
}

type geoRequest struct {
	ConsiderIP       bool             `json:"considerIp"`
	WifiAccessPoints []geoAccessPoint `json:"wifiAccessPoints"`
}

// GeoResult is the position estimate returned by the geolocation API.
type GeoResult struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	Accuracy float64 `json:"accuracy"`
}

const geolocateURL = "https://www.googleapis.com/geolocation/v1/geolocate?key=%s"

// Geolocate estimates the host position from surveyed access points.
// At most the eight strongest APs are submitted; the API wants at
// least two to produce a Wi-Fi-based fix.
func Geolocate(aps []AP, apiKey string) (*GeoResult, error) {
	if len(aps) < 2 {
		return nil, fmt.Errorf("need at least 2 access points for a fix, have %d", len(aps))
	}
	if len(aps) > 8 {
		aps = aps[:8]
	}
	req := geoRequest{ConsiderIP: false}
	for _, ap := range aps {
		req.WifiAccessPoints = append(req.WifiAccessPoints, geoAccessPoint{
			MacAddress:     ap.BSSID,
			SignalStrength: int(ap.Signal),
		})
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	resp, err := http.Post(fmt.Sprintf(geolocateURL, apiKey), "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation API returned %s", resp.Status)
	}
	var geo GeoResult
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		return nil, err
	}
	return &geo, nil
}
