package networkmanager

import (
	"fmt"
	"strings"
)

type flagName[T ~uint32] struct {
	bit  T
	name string
}

// flagString formats v as names joined by '|'. Bits without a name
// are kept, and printed as a trailing hex value.
func flagString[T ~uint32](v T, names []flagName[T]) string {
	if v == 0 {
		return "none"
	}
	var parts []string
	rest := v
	for _, n := range names {
		if v&n.bit == n.bit {
			parts = append(parts, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// DeviceCapabilities are general capabilities of a device.
type DeviceCapabilities uint32

const (
	DeviceCapNMSupported   DeviceCapabilities = 0x1
	DeviceCapCarrierDetect DeviceCapabilities = 0x2
	DeviceCapIsSoftware    DeviceCapabilities = 0x4
	DeviceCapSRIOV         DeviceCapabilities = 0x8
)

var deviceCapNames = []flagName[DeviceCapabilities]{
	{DeviceCapNMSupported, "nm-supported"},
	{DeviceCapCarrierDetect, "carrier-detect"},
	{DeviceCapIsSoftware, "is-software"},
	{DeviceCapSRIOV, "sriov"},
}

func (c DeviceCapabilities) Has(o DeviceCapabilities) bool { return c&o == o }
func (c DeviceCapabilities) String() string                { return flagString(c, deviceCapNames) }

// WirelessCapabilities are the capabilities of a Wi-Fi device.
type WirelessCapabilities uint32

const (
	WifiCapCipherWEP40  WirelessCapabilities = 0x1
	WifiCapCipherWEP104 WirelessCapabilities = 0x2
	WifiCapCipherTKIP   WirelessCapabilities = 0x4
	WifiCapCipherCCMP   WirelessCapabilities = 0x8
	WifiCapWPA          WirelessCapabilities = 0x10
	WifiCapRSN          WirelessCapabilities = 0x20
	WifiCapAP           WirelessCapabilities = 0x40
	WifiCapAdhoc        WirelessCapabilities = 0x80
	WifiCapFreqValid    WirelessCapabilities = 0x100
	WifiCapFreq2GHz     WirelessCapabilities = 0x200
	WifiCapFreq5GHz     WirelessCapabilities = 0x400
	WifiCapMesh         WirelessCapabilities = 0x1000
	WifiCapIBSSRSN      WirelessCapabilities = 0x2000
)

var wifiCapNames = []flagName[WirelessCapabilities]{
	{WifiCapCipherWEP40, "wep40"},
	{WifiCapCipherWEP104, "wep104"},
	{WifiCapCipherTKIP, "tkip"},
	{WifiCapCipherCCMP, "ccmp"},
	{WifiCapWPA, "wpa"},
	{WifiCapRSN, "rsn"},
	{WifiCapAP, "ap"},
	{WifiCapAdhoc, "adhoc"},
	{WifiCapFreqValid, "freq-valid"},
	{WifiCapFreq2GHz, "2ghz"},
	{WifiCapFreq5GHz, "5ghz"},
	{WifiCapMesh, "mesh"},
	{WifiCapIBSSRSN, "ibss-rsn"},
}

func (c WirelessCapabilities) Has(o WirelessCapabilities) bool { return c&o == o }
func (c WirelessCapabilities) String() string                  { return flagString(c, wifiCapNames) }

// AccessPointFlags are general capabilities of an access point.
type AccessPointFlags uint32

const (
	APFlagPrivacy AccessPointFlags = 0x1
	APFlagWPS     AccessPointFlags = 0x2
	APFlagWPSPBC  AccessPointFlags = 0x4
	APFlagWPSPIN  AccessPointFlags = 0x8
)

var apFlagNames = []flagName[AccessPointFlags]{
	{APFlagPrivacy, "privacy"},
	{APFlagWPS, "wps"},
	{APFlagWPSPBC, "wps-pbc"},
	{APFlagWPSPIN, "wps-pin"},
}

func (f AccessPointFlags) Has(o AccessPointFlags) bool { return f&o == o }
func (f AccessPointFlags) String() string              { return flagString(f, apFlagNames) }

// AccessPointSecurityFlags describe the WPA or RSN security
// capabilities of an access point.
type AccessPointSecurityFlags uint32

const (
	APSecPairWEP40           AccessPointSecurityFlags = 0x1
	APSecPairWEP104          AccessPointSecurityFlags = 0x2
	APSecPairTKIP            AccessPointSecurityFlags = 0x4
	APSecPairCCMP            AccessPointSecurityFlags = 0x8
	APSecGroupWEP40          AccessPointSecurityFlags = 0x10
	APSecGroupWEP104         AccessPointSecurityFlags = 0x20
	APSecGroupTKIP           AccessPointSecurityFlags = 0x40
	APSecGroupCCMP           AccessPointSecurityFlags = 0x80
	APSecKeyMgmtPSK          AccessPointSecurityFlags = 0x100
	APSecKeyMgmt8021X        AccessPointSecurityFlags = 0x200
	APSecKeyMgmtSAE          AccessPointSecurityFlags = 0x400
	APSecKeyMgmtOWE          AccessPointSecurityFlags = 0x800
	APSecKeyMgmtOWETM        AccessPointSecurityFlags = 0x1000
	APSecKeyMgmtEAPSuiteB192 AccessPointSecurityFlags = 0x2000
)

var apSecNames = []flagName[AccessPointSecurityFlags]{
	{APSecPairWEP40, "pair-wep40"},
	{APSecPairWEP104, "pair-wep104"},
	{APSecPairTKIP, "pair-tkip"},
	{APSecPairCCMP, "pair-ccmp"},
	{APSecGroupWEP40, "group-wep40"},
	{APSecGroupWEP104, "group-wep104"},
	{APSecGroupTKIP, "group-tkip"},
	{APSecGroupCCMP, "group-ccmp"},
	{APSecKeyMgmtPSK, "psk"},
	{APSecKeyMgmt8021X, "802.1x"},
	{APSecKeyMgmtSAE, "sae"},
	{APSecKeyMgmtOWE, "owe"},
	{APSecKeyMgmtOWETM, "owe-tm"},
	{APSecKeyMgmtEAPSuiteB192, "eap-suite-b-192"},
}

func (f AccessPointSecurityFlags) Has(o AccessPointSecurityFlags) bool { return f&o == o }
func (f AccessPointSecurityFlags) String() string                      { return flagString(f, apSecNames) }

// ConnectionFlags describe the state of a connection profile.
type ConnectionFlags uint32

const (
	ConnectionFlagUnsaved     ConnectionFlags = 0x1
	ConnectionFlagNMGenerated ConnectionFlags = 0x2
	ConnectionFlagVolatile    ConnectionFlags = 0x4
	ConnectionFlagExternal    ConnectionFlags = 0x8
)

var connectionFlagNames = []flagName[ConnectionFlags]{
	{ConnectionFlagUnsaved, "unsaved"},
	{ConnectionFlagNMGenerated, "nm-generated"},
	{ConnectionFlagVolatile, "volatile"},
	{ConnectionFlagExternal, "external"},
}

func (f ConnectionFlags) Has(o ConnectionFlags) bool { return f&o == o }
func (f ConnectionFlags) String() string             { return flagString(f, connectionFlagNames) }

// DeviceInterfaceFlags are the kernel link flags of a device.
type DeviceInterfaceFlags uint32

const (
	InterfaceFlagUp                DeviceInterfaceFlags = 0x1
	InterfaceFlagLowerUp           DeviceInterfaceFlags = 0x2
	InterfaceFlagPromisc           DeviceInterfaceFlags = 0x4
	InterfaceFlagCarrier           DeviceInterfaceFlags = 0x10000
	InterfaceFlagLLDPClientEnabled DeviceInterfaceFlags = 0x20000
)

var interfaceFlagNames = []flagName[DeviceInterfaceFlags]{
	{InterfaceFlagUp, "up"},
	{InterfaceFlagLowerUp, "lower-up"},
	{InterfaceFlagPromisc, "promisc"},
	{InterfaceFlagCarrier, "carrier"},
	{InterfaceFlagLLDPClientEnabled, "lldp-client-enabled"},
}

func (f DeviceInterfaceFlags) Has(o DeviceInterfaceFlags) bool { return f&o == o }
func (f DeviceInterfaceFlags) String() string                  { return flagString(f, interfaceFlagNames) }

// ReloadFlags select what [Client.Reload] reloads. Zero reloads
// everything.
type ReloadFlags uint32

const (
	ReloadAll     ReloadFlags = 0
	ReloadConf    ReloadFlags = 0x1
	ReloadDNSRC   ReloadFlags = 0x2
	ReloadDNSFull ReloadFlags = 0x4
)

var reloadFlagNames = []flagName[ReloadFlags]{
	{ReloadConf, "conf"},
	{ReloadDNSRC, "dns-rc"},
	{ReloadDNSFull, "dns-full"},
}

func (f ReloadFlags) String() string { return flagString(f, reloadFlagNames) }

// ParseReloadFlags parses the names printed by ReloadFlags.String.
func ParseReloadFlags(names ...string) (ReloadFlags, error) {
	var ret ReloadFlags
	for _, n := range names {
		found := false
		for _, f := range reloadFlagNames {
			if f.name == n {
				ret |= f.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown reload flag %q", n)
		}
	}
	return ret, nil
}

// ModemCapabilities are the radio technologies supported by a modem.
type ModemCapabilities uint32

const (
	ModemCapPOTS     ModemCapabilities = 0x1
	ModemCapCDMAEVDO ModemCapabilities = 0x2
	ModemCapGSMUMTS  ModemCapabilities = 0x4
	ModemCapLTE      ModemCapabilities = 0x8
	ModemCap5GNR     ModemCapabilities = 0x40
)

var modemCapNames = []flagName[ModemCapabilities]{
	{ModemCapPOTS, "pots"},
	{ModemCapCDMAEVDO, "cdma-evdo"},
	{ModemCapGSMUMTS, "gsm-umts"},
	{ModemCapLTE, "lte"},
	{ModemCap5GNR, "5gnr"},
}

func (c ModemCapabilities) Has(o ModemCapabilities) bool { return c&o == o }
func (c ModemCapabilities) String() string               { return flagString(c, modemCapNames) }

// UpdateFlags control how [Connection.Update2] stores changes.
type UpdateFlags uint32

const (
	UpdateToDisk           UpdateFlags = 0x1
	UpdateInMemory         UpdateFlags = 0x2
	UpdateInMemoryDetached UpdateFlags = 0x4
	UpdateInMemoryOnly     UpdateFlags = 0x8
	UpdateVolatile         UpdateFlags = 0x10
	UpdateBlockAutoconnect UpdateFlags = 0x20
	UpdateNoReapply        UpdateFlags = 0x40
)

var updateFlagNames = []flagName[UpdateFlags]{
	{UpdateToDisk, "to-disk"},
	{UpdateInMemory, "in-memory"},
	{UpdateInMemoryDetached, "in-memory-detached"},
	{UpdateInMemoryOnly, "in-memory-only"},
	{UpdateVolatile, "volatile"},
	{UpdateBlockAutoconnect, "block-autoconnect"},
	{UpdateNoReapply, "no-reapply"},
}

func (f UpdateFlags) String() string { return flagString(f, updateFlagNames) }
