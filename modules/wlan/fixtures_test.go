package wlan

// Captured tool output used across the parser tests.

const iwDevFixture = `phy#0
	Interface wlan0
		ifindex 3
		wdev 0x1
		addr aa:bb:cc:dd:ee:ff
		ssid HomeNet
		type managed
		channel 36 (5180 MHz), width: 80 MHz, center1: 5210 MHz
		txpower 22.00 dBm
phy#1
	Interface wlan1
		ifindex 5
		wdev 0x100000001
		addr 02:11:22:33:44:55
		type managed
`

const iwInfoFixture = `Interface wlan0
	ifindex 3
	wdev 0x1
	addr aa:bb:cc:dd:ee:ff
	ssid HomeNet
	type managed
	wiphy 0
	channel 36 (5180 MHz), width: 80 MHz, center1: 5210 MHz
	txpower 22.00 dBm
	multicast TXQ:
		qsz-byt	qsz-pkt	flows	drops	marks	overlmt	hashcol	tx-bytes	tx-packets
		0	0	0	0	0	0	0	0		0
`

const iwLinkFixture = `Connected to 11:22:33:44:55:66 (on wlan0)
	SSID: HomeNet
	freq: 5180
	RX: 123456789 bytes (123456 packets)
	TX: 23456789 bytes (23456 packets)
	signal: -52 dBm
	rx bitrate: 866.7 MBit/s VHT-MCS 9 80MHz short GI VHT-NSS 2
	tx bitrate: 780.0 MBit/s VHT-MCS 8 80MHz short GI VHT-NSS 2

	bss flags:	short-slot-time
	dtim period:	1
	beacon int:	100
`

const stationDumpFixture = `Station 11:22:33:44:55:66 (on wlan0)
	inactive time:	10 ms
	rx bytes:	123456789
	rx packets:	123456
	tx bytes:	23456789
	tx packets:	23456
	tx retries:	42
	tx failed:	1
	beacon loss:	0
	rx drop misc:	7
	signal:  	-52 [-55, -58] dBm
	signal avg:	-53 [-56, -58] dBm
	tx bitrate:	780.0 MBit/s VHT-MCS 8 80MHz short GI VHT-NSS 2
	rx bitrate:	866.7 MBit/s VHT-MCS 9 80MHz short GI VHT-NSS 2
	expected throughput:	390.489Mbps
	authorized:	yes
	authenticated:	yes
	associated:	yes
	preamble:	long
	WMM/WME:	yes
	MFP:		no
	TDLS peer:	no
	DTIM period:	1
	beacon interval:100
	short slot time:yes
	connected time:	2082 seconds
`

const iwconfigFixture = `wlan0     IEEE 802.11  ESSID:"HomeNet"
          Mode:Managed  Frequency:5.18 GHz  Access Point: 11:22:33:44:55:66
          Bit Rate=866.7 Mb/s   Tx-Power=22 dBm
          Retry short limit:7   RTS thr:off   Fragment thr:off
          Power Management:on
          Link Quality=64/70  Signal level=-46 dBm
          Rx invalid nwid:0  Rx invalid crypt:0  Rx invalid frag:0
          Tx excessive retries:0  Invalid misc:54   Missed beacon:0
`

const ipAddrFixture = `3: wlan0    inet 192.168.1.23/24 brd 192.168.1.255 scope global dynamic noprefixroute wlan0\       valid_lft 85049sec preferred_lft 85049sec
3: wlan0    inet6 fe80::1ff:fe23:4567:890a/64 scope link noprefixroute \       valid_lft forever preferred_lft forever
`

const ifconfigFixture = `wlan0: flags=4163<UP,BROADCAST,RUNNING,MULTICAST>  mtu 1500
        inet 192.168.1.23  netmask 255.255.255.0  broadcast 192.168.1.255
        inet6 fe80::1ff:fe23:4567:890a  prefixlen 64  scopeid 0x20<link>
        ether aa:bb:cc:dd:ee:ff  txqueuelen 1000  (Ethernet)
`

const lspciFixture = `00:14.3 Network controller [0280]: Intel Corporation Cannon Lake PCH CNVi WiFi [8086:9df0] (rev 30)
03:00.0 Network controller [0280]: Intel Corporation Wi-Fi 6 AX200 [8086:2723] (rev 1a)
04:00.0 Ethernet controller [0200]: Realtek Semiconductor Co., Ltd. RTL8111/8168/8411 [10ec:8168] (rev 15)
`

const lsusbFixture = `Bus 002 Device 003: ID 0bda:8812 Realtek Semiconductor Corp. RTL8812AU 802.11a/b/g/n/ac 2T2R DB WLAN Adapter
Bus 001 Device 002: ID 8087:0aaa Intel Corp. Bluetooth 9460/9560 Jefferson Peak (JfP)
Bus 001 Device 001: ID 1d6b:0002 Linux Foundation 2.0 root hub
`

const iwScanFixture = `BSS 11:22:33:44:55:66(on wlan0) -- associated
	TSF: 1234567890 usec (0d, 00:20:34)
	freq: 5180
	beacon interval: 100 TUs
	capability: ESS Privacy ShortSlotTime (0x0411)
	signal: -52.00 dBm
	last seen: 120 ms ago
	SSID: HomeNet
BSS aa:bb:cc:00:11:22(on wlan0)
	TSF: 987654321 usec (0d, 00:16:27)
	freq: 2437
	beacon interval: 100 TUs
	capability: ESS Privacy ShortSlotTime (0x0411)
	signal: -71.00 dBm
	last seen: 310 ms ago
	SSID: CoffeeShop
	DS Parameter set: channel 6
BSS de:ad:be:ef:00:01(on wlan0)
	freq: 2412
	signal: -80.00 dBm
	SSID:
`

const iwPhyFixture = `Wiphy phy0
	wiphy index: 0
	max # scan SSIDs: 20
	Supported interface modes:
		 * managed
		 * monitor
	Band 1:
		Capabilities: 0x19ef
			RX LDPC
			HT20/HT40
		HT TX/RX MCS rate indexes supported: 0-15
		HE Iftypes: managed
			HE MAC Capabilities (0x780112021040):
			HE PHY Capabilities: (0x0c3402000d01dfc2):
	Band 2:
		VHT Capabilities (0x339071b2):
			Max MPDU length: 11454
		HE Iftypes: managed
			HE MAC Capabilities (0x780112021040):
`
