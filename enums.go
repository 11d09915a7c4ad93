package networkmanager

import "fmt"

// decode maps a raw code to T, failing with an UnsupportedTypeError
// if the code is missing from names.
func decode[T ~uint32](typ string, names map[T]string, v uint32) (T, error) {
	if _, ok := names[T(v)]; !ok {
		return 0, UnsupportedTypeError{Type: typ, Value: v}
	}
	return T(v), nil
}

func enumString[T ~uint32](typ string, names map[T]string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("%s(%d)", typ, uint32(v))
}

// DeviceType is the kind of a network device.
type DeviceType uint32

const (
	DeviceTypeUnknown      DeviceType = 0
	DeviceTypeEthernet     DeviceType = 1
	DeviceTypeWifi         DeviceType = 2
	DeviceTypeUnused1      DeviceType = 3
	DeviceTypeUnused2      DeviceType = 4
	DeviceTypeBluetooth    DeviceType = 5
	DeviceTypeOLPCMesh     DeviceType = 6
	DeviceTypeWiMAX        DeviceType = 7
	DeviceTypeModem        DeviceType = 8
	DeviceTypeInfiniband   DeviceType = 9
	DeviceTypeBond         DeviceType = 10
	DeviceTypeVLAN         DeviceType = 11
	DeviceTypeADSL         DeviceType = 12
	DeviceTypeBridge       DeviceType = 13
	DeviceTypeGeneric      DeviceType = 14
	DeviceTypeTeam         DeviceType = 15
	DeviceTypeTUN          DeviceType = 16
	DeviceTypeIPTunnel     DeviceType = 17
	DeviceTypeMACVLAN      DeviceType = 18
	DeviceTypeVXLAN        DeviceType = 19
	DeviceTypeVeth         DeviceType = 20
	DeviceTypeMACsec       DeviceType = 21
	DeviceTypeDummy        DeviceType = 22
	DeviceTypePPP          DeviceType = 23
	DeviceTypeOVSInterface DeviceType = 24
	DeviceTypeOVSPort      DeviceType = 25
	DeviceTypeOVSBridge    DeviceType = 26
	DeviceTypeWPAN         DeviceType = 27
	DeviceType6LoWPAN      DeviceType = 28
	DeviceTypeWireGuard    DeviceType = 29
	DeviceTypeWifiP2P      DeviceType = 30
	DeviceTypeVRF          DeviceType = 31
	DeviceTypeLoopback     DeviceType = 32
	DeviceTypeHSR          DeviceType = 33
	DeviceTypeIPVLAN       DeviceType = 34
)

var deviceTypeNames = map[DeviceType]string{
	DeviceTypeUnknown:      "unknown",
	DeviceTypeEthernet:     "ethernet",
	DeviceTypeWifi:         "wifi",
	DeviceTypeUnused1:      "unused1",
	DeviceTypeUnused2:      "unused2",
	DeviceTypeBluetooth:    "bluetooth",
	DeviceTypeOLPCMesh:     "olpc-mesh",
	DeviceTypeWiMAX:        "wimax",
	DeviceTypeModem:        "modem",
	DeviceTypeInfiniband:   "infiniband",
	DeviceTypeBond:         "bond",
	DeviceTypeVLAN:         "vlan",
	DeviceTypeADSL:         "adsl",
	DeviceTypeBridge:       "bridge",
	DeviceTypeGeneric:      "generic",
	DeviceTypeTeam:         "team",
	DeviceTypeTUN:          "tun",
	DeviceTypeIPTunnel:     "ip-tunnel",
	DeviceTypeMACVLAN:      "macvlan",
	DeviceTypeVXLAN:        "vxlan",
	DeviceTypeVeth:         "veth",
	DeviceTypeMACsec:       "macsec",
	DeviceTypeDummy:        "dummy",
	DeviceTypePPP:          "ppp",
	DeviceTypeOVSInterface: "ovs-interface",
	DeviceTypeOVSPort:      "ovs-port",
	DeviceTypeOVSBridge:    "ovs-bridge",
	DeviceTypeWPAN:         "wpan",
	DeviceType6LoWPAN:      "6lowpan",
	DeviceTypeWireGuard:    "wireguard",
	DeviceTypeWifiP2P:      "wifi-p2p",
	DeviceTypeVRF:          "vrf",
	DeviceTypeLoopback:     "loopback",
	DeviceTypeHSR:          "hsr",
	DeviceTypeIPVLAN:       "ipvlan",
}

func (t DeviceType) String() string { return enumString("DeviceType", deviceTypeNames, t) }

// DeviceState is the operational state of a device.
type DeviceState uint32

const (
	DeviceStateUnknown      DeviceState = 0
	DeviceStateUnmanaged    DeviceState = 10
	DeviceStateUnavailable  DeviceState = 20
	DeviceStateDisconnected DeviceState = 30
	DeviceStatePrepare      DeviceState = 40
	DeviceStateConfig       DeviceState = 50
	DeviceStateNeedAuth     DeviceState = 60
	DeviceStateIPConfig     DeviceState = 70
	DeviceStateIPCheck      DeviceState = 80
	DeviceStateSecondaries  DeviceState = 90
	DeviceStateActivated    DeviceState = 100
	DeviceStateDeactivating DeviceState = 110
	DeviceStateFailed       DeviceState = 120
)

var deviceStateNames = map[DeviceState]string{
	DeviceStateUnknown:      "unknown",
	DeviceStateUnmanaged:    "unmanaged",
	DeviceStateUnavailable:  "unavailable",
	DeviceStateDisconnected: "disconnected",
	DeviceStatePrepare:      "prepare",
	DeviceStateConfig:       "config",
	DeviceStateNeedAuth:     "need-auth",
	DeviceStateIPConfig:     "ip-config",
	DeviceStateIPCheck:      "ip-check",
	DeviceStateSecondaries:  "secondaries",
	DeviceStateActivated:    "activated",
	DeviceStateDeactivating: "deactivating",
	DeviceStateFailed:       "failed",
}

func (s DeviceState) String() string { return enumString("DeviceState", deviceStateNames, s) }

// DeviceStateReason explains the most recent device state change.
type DeviceStateReason uint32

const (
	ReasonNone                      DeviceStateReason = 0
	ReasonUnknown                   DeviceStateReason = 1
	ReasonNowManaged                DeviceStateReason = 2
	ReasonNowUnmanaged              DeviceStateReason = 3
	ReasonConfigFailed              DeviceStateReason = 4
	ReasonIPConfigUnavailable       DeviceStateReason = 5
	ReasonIPConfigExpired           DeviceStateReason = 6
	ReasonNoSecrets                 DeviceStateReason = 7
	ReasonSupplicantDisconnect      DeviceStateReason = 8
	ReasonSupplicantConfigFailed    DeviceStateReason = 9
	ReasonSupplicantFailed          DeviceStateReason = 10
	ReasonSupplicantTimeout         DeviceStateReason = 11
	ReasonPPPStartFailed            DeviceStateReason = 12
	ReasonPPPDisconnect             DeviceStateReason = 13
	ReasonPPPFailed                 DeviceStateReason = 14
	ReasonDHCPStartFailed           DeviceStateReason = 15
	ReasonDHCPError                 DeviceStateReason = 16
	ReasonDHCPFailed                DeviceStateReason = 17
	ReasonSharedStartFailed         DeviceStateReason = 18
	ReasonSharedFailed              DeviceStateReason = 19
	ReasonAutoIPStartFailed         DeviceStateReason = 20
	ReasonAutoIPError               DeviceStateReason = 21
	ReasonAutoIPFailed              DeviceStateReason = 22
	ReasonModemBusy                 DeviceStateReason = 23
	ReasonModemNoDialTone           DeviceStateReason = 24
	ReasonModemNoCarrier            DeviceStateReason = 25
	ReasonModemDialTimeout          DeviceStateReason = 26
	ReasonModemDialFailed           DeviceStateReason = 27
	ReasonModemInitFailed           DeviceStateReason = 28
	ReasonGSMAPNFailed              DeviceStateReason = 29
	ReasonGSMRegistrationNotSearch  DeviceStateReason = 30
	ReasonGSMRegistrationDenied     DeviceStateReason = 31
	ReasonGSMRegistrationTimeout    DeviceStateReason = 32
	ReasonGSMRegistrationFailed     DeviceStateReason = 33
	ReasonGSMPINCheckFailed         DeviceStateReason = 34
	ReasonFirmwareMissing           DeviceStateReason = 35
	ReasonRemoved                   DeviceStateReason = 36
	ReasonSleeping                  DeviceStateReason = 37
	ReasonConnectionRemoved         DeviceStateReason = 38
	ReasonUserRequested             DeviceStateReason = 39
	ReasonCarrier                   DeviceStateReason = 40
	ReasonConnectionAssumed         DeviceStateReason = 41
	ReasonSupplicantAvailable       DeviceStateReason = 42
	ReasonModemNotFound             DeviceStateReason = 43
	ReasonBluetoothFailed           DeviceStateReason = 44
	ReasonGSMSIMNotInserted         DeviceStateReason = 45
	ReasonGSMSIMPINRequired         DeviceStateReason = 46
	ReasonGSMSIMPUKRequired         DeviceStateReason = 47
	ReasonGSMSIMWrong               DeviceStateReason = 48
	ReasonInfinibandMode            DeviceStateReason = 49
	ReasonDependencyFailed          DeviceStateReason = 50
	ReasonBR2684Failed              DeviceStateReason = 51
	ReasonModemManagerUnavailable   DeviceStateReason = 52
	ReasonSSIDNotFound              DeviceStateReason = 53
	ReasonSecondaryConnectionFailed DeviceStateReason = 54
	ReasonDCBFCoEFailed             DeviceStateReason = 55
	ReasonTeamdControlFailed        DeviceStateReason = 56
	ReasonModemFailed               DeviceStateReason = 57
	ReasonModemAvailable            DeviceStateReason = 58
	ReasonSIMPINIncorrect           DeviceStateReason = 59
	ReasonNewActivation             DeviceStateReason = 60
	ReasonParentChanged             DeviceStateReason = 61
	ReasonParentManagedChanged      DeviceStateReason = 62
	ReasonOVSDBFailed               DeviceStateReason = 63
	ReasonIPAddressDuplicate        DeviceStateReason = 64
	ReasonIPMethodUnsupported       DeviceStateReason = 65
	ReasonSRIOVConfigurationFailed  DeviceStateReason = 66
	ReasonPeerNotFound              DeviceStateReason = 67
	ReasonDeviceHandlerFailed       DeviceStateReason = 68
)

var deviceStateReasonNames = map[DeviceStateReason]string{
	ReasonNone:                      "none",
	ReasonUnknown:                   "unknown",
	ReasonNowManaged:                "now-managed",
	ReasonNowUnmanaged:              "now-unmanaged",
	ReasonConfigFailed:              "config-failed",
	ReasonIPConfigUnavailable:       "ip-config-unavailable",
	ReasonIPConfigExpired:           "ip-config-expired",
	ReasonNoSecrets:                 "no-secrets",
	ReasonSupplicantDisconnect:      "supplicant-disconnect",
	ReasonSupplicantConfigFailed:    "supplicant-config-failed",
	ReasonSupplicantFailed:          "supplicant-failed",
	ReasonSupplicantTimeout:         "supplicant-timeout",
	ReasonPPPStartFailed:            "ppp-start-failed",
	ReasonPPPDisconnect:             "ppp-disconnect",
	ReasonPPPFailed:                 "ppp-failed",
	ReasonDHCPStartFailed:           "dhcp-start-failed",
	ReasonDHCPError:                 "dhcp-error",
	ReasonDHCPFailed:                "dhcp-failed",
	ReasonSharedStartFailed:         "shared-start-failed",
	ReasonSharedFailed:              "shared-failed",
	ReasonAutoIPStartFailed:         "autoip-start-failed",
	ReasonAutoIPError:               "autoip-error",
	ReasonAutoIPFailed:              "autoip-failed",
	ReasonModemBusy:                 "modem-busy",
	ReasonModemNoDialTone:           "modem-no-dial-tone",
	ReasonModemNoCarrier:            "modem-no-carrier",
	ReasonModemDialTimeout:          "modem-dial-timeout",
	ReasonModemDialFailed:           "modem-dial-failed",
	ReasonModemInitFailed:           "modem-init-failed",
	ReasonGSMAPNFailed:              "gsm-apn-failed",
	ReasonGSMRegistrationNotSearch:  "gsm-registration-not-searching",
	ReasonGSMRegistrationDenied:     "gsm-registration-denied",
	ReasonGSMRegistrationTimeout:    "gsm-registration-timeout",
	ReasonGSMRegistrationFailed:     "gsm-registration-failed",
	ReasonGSMPINCheckFailed:         "gsm-pin-check-failed",
	ReasonFirmwareMissing:           "firmware-missing",
	ReasonRemoved:                   "removed",
	ReasonSleeping:                  "sleeping",
	ReasonConnectionRemoved:         "connection-removed",
	ReasonUserRequested:             "user-requested",
	ReasonCarrier:                   "carrier",
	ReasonConnectionAssumed:         "connection-assumed",
	ReasonSupplicantAvailable:       "supplicant-available",
	ReasonModemNotFound:             "modem-not-found",
	ReasonBluetoothFailed:           "bt-failed",
	ReasonGSMSIMNotInserted:         "gsm-sim-not-inserted",
	ReasonGSMSIMPINRequired:         "gsm-sim-pin-required",
	ReasonGSMSIMPUKRequired:         "gsm-sim-puk-required",
	ReasonGSMSIMWrong:               "gsm-sim-wrong",
	ReasonInfinibandMode:            "infiniband-mode",
	ReasonDependencyFailed:          "dependency-failed",
	ReasonBR2684Failed:              "br2684-failed",
	ReasonModemManagerUnavailable:   "modem-manager-unavailable",
	ReasonSSIDNotFound:              "ssid-not-found",
	ReasonSecondaryConnectionFailed: "secondary-connection-failed",
	ReasonDCBFCoEFailed:             "dcb-fcoe-failed",
	ReasonTeamdControlFailed:        "teamd-control-failed",
	ReasonModemFailed:               "modem-failed",
	ReasonModemAvailable:            "modem-available",
	ReasonSIMPINIncorrect:           "sim-pin-incorrect",
	ReasonNewActivation:             "new-activation",
	ReasonParentChanged:             "parent-changed",
	ReasonParentManagedChanged:      "parent-managed-changed",
	ReasonOVSDBFailed:               "ovsdb-failed",
	ReasonIPAddressDuplicate:        "ip-address-duplicate",
	ReasonIPMethodUnsupported:       "ip-method-unsupported",
	ReasonSRIOVConfigurationFailed:  "sriov-configuration-failed",
	ReasonPeerNotFound:              "peer-not-found",
	ReasonDeviceHandlerFailed:       "device-handler-failed",
}

func (r DeviceStateReason) String() string {
	return enumString("DeviceStateReason", deviceStateReasonNames, r)
}

// ConnectivityState is the result of NetworkManager's internet
// connectivity check.
type ConnectivityState uint32

const (
	ConnectivityUnknown ConnectivityState = 0
	ConnectivityNone    ConnectivityState = 1
	ConnectivityPortal  ConnectivityState = 2
	ConnectivityLimited ConnectivityState = 3
	ConnectivityFull    ConnectivityState = 4
)

var connectivityNames = map[ConnectivityState]string{
	ConnectivityUnknown: "unknown",
	ConnectivityNone:    "none",
	ConnectivityPortal:  "portal",
	ConnectivityLimited: "limited",
	ConnectivityFull:    "full",
}

func (c ConnectivityState) String() string {
	return enumString("ConnectivityState", connectivityNames, c)
}

// State is NetworkManager's overall networking state.
type State uint32

const (
	StateUnknown         State = 0
	StateAsleep          State = 10
	StateDisconnected    State = 20
	StateDisconnecting   State = 30
	StateConnecting      State = 40
	StateConnectedLocal  State = 50
	StateConnectedSite   State = 60
	StateConnectedGlobal State = 70
)

var stateNames = map[State]string{
	StateUnknown:         "unknown",
	StateAsleep:          "asleep",
	StateDisconnected:    "disconnected",
	StateDisconnecting:   "disconnecting",
	StateConnecting:      "connecting",
	StateConnectedLocal:  "connected-local",
	StateConnectedSite:   "connected-site",
	StateConnectedGlobal: "connected-global",
}

func (s State) String() string { return enumString("State", stateNames, s) }

// WifiMode is the operating mode of a Wi-Fi device or access point.
type WifiMode uint32

const (
	WifiModeUnknown        WifiMode = 0
	WifiModeAdhoc          WifiMode = 1
	WifiModeInfrastructure WifiMode = 2
	WifiModeAP             WifiMode = 3
	WifiModeMesh           WifiMode = 4
)

var wifiModeNames = map[WifiMode]string{
	WifiModeUnknown:        "unknown",
	WifiModeAdhoc:          "adhoc",
	WifiModeInfrastructure: "infrastructure",
	WifiModeAP:             "ap",
	WifiModeMesh:           "mesh",
}

func (m WifiMode) String() string { return enumString("WifiMode", wifiModeNames, m) }

// Metered is whether a connection is metered, and whether
// NetworkManager knows that for sure or guessed it.
type Metered uint32

const (
	MeteredUnknown  Metered = 0
	MeteredYes      Metered = 1
	MeteredNo       Metered = 2
	MeteredGuessYes Metered = 3
	MeteredGuessNo  Metered = 4
)

var meteredNames = map[Metered]string{
	MeteredUnknown:  "unknown",
	MeteredYes:      "yes",
	MeteredNo:       "no",
	MeteredGuessYes: "guess-yes",
	MeteredGuessNo:  "guess-no",
}

func (m Metered) String() string { return enumString("Metered", meteredNames, m) }

// IsMetered reports whether m is metered, known or guessed.
func (m Metered) IsMetered() bool {
	return m == MeteredYes || m == MeteredGuessYes
}
