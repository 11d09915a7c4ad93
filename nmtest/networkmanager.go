// Package nmtest provides an in-memory NetworkManager for tests.
//
// The fake models enough of NetworkManager's D-Bus API to exercise
// clients: devices and placeholder devices, Wi-Fi access points,
// applied connections with version checking, connection profiles
// with secrets, and IP and DHCP configuration objects. It implements
// bus.Transport for in-process use, and can also be exported on a
// real bus with [Service.Serve].
package nmtest

import (
	"fmt"
	"maps"
	"slices"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
)

// Bus name, object paths and interface names of the NetworkManager
// API.
const (
	BusName      = "org.freedesktop.NetworkManager"
	ManagerPath  = dbus.ObjectPath("/org/freedesktop/NetworkManager")
	SettingsPath = dbus.ObjectPath("/org/freedesktop/NetworkManager/Settings")

	ManagerInterface     = "org.freedesktop.NetworkManager"
	SettingsInterface    = "org.freedesktop.NetworkManager.Settings"
	ConnectionInterface  = "org.freedesktop.NetworkManager.Settings.Connection"
	DeviceInterface      = "org.freedesktop.NetworkManager.Device"
	WirelessInterface    = "org.freedesktop.NetworkManager.Device.Wireless"
	WiredInterface       = "org.freedesktop.NetworkManager.Device.Wired"
	GenericInterface     = "org.freedesktop.NetworkManager.Device.Generic"
	BridgeInterface      = "org.freedesktop.NetworkManager.Device.Bridge"
	VethInterface        = "org.freedesktop.NetworkManager.Device.Veth"
	TeamInterface        = "org.freedesktop.NetworkManager.Device.Team"
	ModemInterface       = "org.freedesktop.NetworkManager.Device.Modem"
	AccessPointInterface = "org.freedesktop.NetworkManager.AccessPoint"
	IP4ConfigInterface   = "org.freedesktop.NetworkManager.IP4Config"
	DHCP4ConfigInterface = "org.freedesktop.NetworkManager.DHCP4Config"
	DHCP6ConfigInterface = "org.freedesktop.NetworkManager.DHCP6Config"
)

// Error names specific to NetworkManager.
const (
	ErrVersionIDMismatch = "org.freedesktop.NetworkManager.Device.VersionIdMismatch"
	ErrNotActive         = "org.freedesktop.NetworkManager.Device.NotActive"
	ErrNotSoftware       = "org.freedesktop.NetworkManager.Device.NotSoftware"
	ErrUnknownDevice     = "org.freedesktop.NetworkManager.UnknownDevice"
	ErrAlreadyEnabled    = "org.freedesktop.NetworkManager.AlreadyEnabledOrDisabled"
	ErrAlreadyAsleep     = "org.freedesktop.NetworkManager.AlreadyAsleepOrAwake"
	ErrInvalidArguments  = "org.freedesktop.NetworkManager.InvalidArguments"
	ErrInvalidConnection = "org.freedesktop.NetworkManager.Settings.InvalidConnection"
	ErrInvalidSetting    = "org.freedesktop.NetworkManager.Settings.InvalidSetting"
	ErrPermissionDenied  = "org.freedesktop.NetworkManager.PermissionDenied"
)

// Device type codes used to pick the kind-specific interfaces of
// devices added with [NetworkManager.AddDevice].
const (
	TypeEthernet = 1
	TypeWifi     = 2
	TypeModem    = 8
	TypeBridge   = 13
	TypeGeneric  = 14
	TypeTeam     = 15
	TypeVeth     = 20
)

// Settings is a connection profile, in wire form.
type Settings = map[string]map[string]dbus.Variant

// NetworkManager is an in-memory NetworkManager service.
type NetworkManager struct {
	*Service

	// Per-object state that is not visible as properties. Guarded by
	// Service.mu.
	nextID   map[string]int
	applied  map[dbus.ObjectPath]*appliedState
	profiles map[dbus.ObjectPath]*profile
	allAPs   map[dbus.ObjectPath][]dbus.ObjectPath
	logLevel [2]string
	asleep   bool
}

type appliedState struct {
	settings Settings
	version  uint64
}

type profile struct {
	settings Settings
	secrets  Settings
}

type stateReason struct {
	State  uint32
	Reason uint32
}

// New returns a NetworkManager with no devices and no connection
// profiles. Networking and radios are enabled, and connectivity is
// full.
func New() *NetworkManager {
	nm := &NetworkManager{
		Service:  newService(BusName),
		nextID:   map[string]int{},
		applied:  map[dbus.ObjectPath]*appliedState{},
		profiles: map[dbus.ObjectPath]*profile{},
		allAPs:   map[dbus.ObjectPath][]dbus.ObjectPath{},
		logLevel: [2]string{"INFO", "PLATFORM,RFKILL,ETHER,WIFI"},
	}
	nm.mu.Lock()
	defer nm.mu.Unlock()
	nm.exportManagerLocked()
	nm.exportSettingsLocked()
	return nm
}

func (nm *NetworkManager) pathLocked(kind string) dbus.ObjectPath {
	nm.nextID[kind]++
	return dbus.ObjectPath(fmt.Sprintf("%s/%s/%d", ManagerPath, kind, nm.nextID[kind]))
}

func (nm *NetworkManager) exportManagerLocked() {
	nm.exportLocked(ManagerPath, ManagerInterface, map[string]any{
		"GetDevices": func() ([]dbus.ObjectPath, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			return nm.getLocked(ManagerPath, ManagerInterface, "Devices").([]dbus.ObjectPath), nil
		},
		"GetAllDevices": func() ([]dbus.ObjectPath, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			return nm.getLocked(ManagerPath, ManagerInterface, "AllDevices").([]dbus.ObjectPath), nil
		},
		"GetDeviceByIpIface": func(iface string) (dbus.ObjectPath, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			for _, dev := range nm.getLocked(ManagerPath, ManagerInterface, "Devices").([]dbus.ObjectPath) {
				if nm.getLocked(dev, DeviceInterface, "IpInterface").(string) == iface {
					return dev, nil
				}
			}
			return "", callErr(ErrUnknownDevice, "No device found for the requested iface.")
		},
		"Reload": func(flags uint32) *dbus.Error {
			if flags&^0x7 != 0 {
				return callErr(ErrInvalidArguments, "Invalid flags for reload")
			}
			return nil
		},
		"Enable": func(enable bool) *dbus.Error {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			if nm.getLocked(ManagerPath, ManagerInterface, "NetworkingEnabled").(bool) == enable {
				if enable {
					return callErr(ErrAlreadyEnabled, "Already enabled")
				}
				return callErr(ErrAlreadyEnabled, "Already disabled")
			}
			nm.setLocked(ManagerPath, ManagerInterface, "NetworkingEnabled", enable)
			if enable {
				nm.setLocked(ManagerPath, ManagerInterface, "State", uint32(70))
			} else {
				nm.setLocked(ManagerPath, ManagerInterface, "State", uint32(20))
			}
			return nil
		},
		"Sleep": func(sleep bool) *dbus.Error {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			if nm.asleep == sleep {
				if sleep {
					return callErr(ErrAlreadyAsleep, "Already asleep")
				}
				return callErr(ErrAlreadyAsleep, "Already awake")
			}
			nm.asleep = sleep
			if sleep {
				nm.setLocked(ManagerPath, ManagerInterface, "State", uint32(10))
			} else {
				nm.setLocked(ManagerPath, ManagerInterface, "State", uint32(70))
			}
			return nil
		},
		"CheckConnectivity": func() (uint32, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			return nm.getLocked(ManagerPath, ManagerInterface, "Connectivity").(uint32), nil
		},
		"state": func() (uint32, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			return nm.getLocked(ManagerPath, ManagerInterface, "State").(uint32), nil
		},
		"GetPermissions": func() (map[string]string, *dbus.Error) {
			return map[string]string{
				"org.freedesktop.NetworkManager.enable-disable-network": "yes",
				"org.freedesktop.NetworkManager.enable-disable-wifi":    "yes",
				"org.freedesktop.NetworkManager.reload":                 "auth",
			}, nil
		},
		"GetLogging": func() (string, string, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			return nm.logLevel[0], nm.logLevel[1], nil
		},
		"SetLogging": func(level, domains string) *dbus.Error {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			if level != "" {
				nm.logLevel[0] = level
			}
			if domains != "" {
				nm.logLevel[1] = domains
			}
			return nil
		},
	}, map[string]any{
		"Devices":                    []dbus.ObjectPath{},
		"AllDevices":                 []dbus.ObjectPath{},
		"ActiveConnections":          []dbus.ObjectPath{},
		"PrimaryConnection":          dbus.ObjectPath("/"),
		"PrimaryConnectionType":      "",
		"ActivatingConnection":       dbus.ObjectPath("/"),
		"NetworkingEnabled":          true,
		"WirelessEnabled":            true,
		"WirelessHardwareEnabled":    true,
		"WwanEnabled":                true,
		"WwanHardwareEnabled":        true,
		"Startup":                    false,
		"Version":                    "1.46.0",
		"Capabilities":               []uint32{},
		"State":                      uint32(70),
		"Connectivity":               uint32(4),
		"ConnectivityCheckAvailable": true,
		"ConnectivityCheckEnabled":   true,
		"Metered":                    uint32(0),
	}, "WirelessEnabled", "WwanEnabled", "ConnectivityCheckEnabled")
}

func (nm *NetworkManager) exportSettingsLocked() {
	nm.exportLocked(SettingsPath, SettingsInterface, map[string]any{
		"ListConnections": func() ([]dbus.ObjectPath, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			return nm.getLocked(SettingsPath, SettingsInterface, "Connections").([]dbus.ObjectPath), nil
		},
		"GetConnectionByUuid": func(id string) (dbus.ObjectPath, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			for _, p := range nm.getLocked(SettingsPath, SettingsInterface, "Connections").([]dbus.ObjectPath) {
				if settingString(nm.profiles[p].settings, "connection", "uuid") == id {
					return p, nil
				}
			}
			return "", callErr(ErrInvalidConnection, "No connection with the UUID was found.")
		},
		"AddConnection": func(settings Settings) (dbus.ObjectPath, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			return nm.addConnectionLocked(settings, nil, false)
		},
		"AddConnectionUnsaved": func(settings Settings) (dbus.ObjectPath, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			return nm.addConnectionLocked(settings, nil, true)
		},
		"ReloadConnections": func() (bool, *dbus.Error) {
			return true, nil
		},
		"SaveHostname": func(hostname string) *dbus.Error {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			if !nm.getLocked(SettingsPath, SettingsInterface, "CanModify").(bool) {
				return callErr(ErrPermissionDenied, "Not authorized to modify the hostname")
			}
			nm.setLocked(SettingsPath, SettingsInterface, "Hostname", hostname)
			return nil
		},
	}, map[string]any{
		"Connections": []dbus.ObjectPath{},
		"Hostname":    "localhost",
		"CanModify":   true,
	})
}

func settingString(s Settings, group, key string) string {
	v, ok := s[group][key]
	if !ok {
		return ""
	}
	ret, _ := v.Value().(string)
	return ret
}

func cloneSettings(s Settings) Settings {
	ret := make(Settings, len(s))
	for k, v := range s {
		ret[k] = maps.Clone(v)
	}
	return ret
}

func appendPath(s *Service, path dbus.ObjectPath, iface, name string, add dbus.ObjectPath) {
	cur := s.getLocked(path, iface, name).([]dbus.ObjectPath)
	s.setLocked(path, iface, name, append(slices.Clone(cur), add))
}

func removePath(s *Service, path dbus.ObjectPath, iface, name string, del dbus.ObjectPath) {
	cur := s.getLocked(path, iface, name).([]dbus.ObjectPath)
	s.setLocked(path, iface, name, slices.DeleteFunc(slices.Clone(cur), func(p dbus.ObjectPath) bool { return p == del }))
}

// AddDevice adds a realized device with the given interface name and
// device type code. Devices of a type listed in the Type constants
// also get the matching kind-specific interface.
func (nm *NetworkManager) AddDevice(name string, typ uint32) dbus.ObjectPath {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	path := nm.addDeviceLocked(name, typ, true)
	appendPath(nm.Service, ManagerPath, ManagerInterface, "Devices", path)
	return path
}

// AddPlaceholder adds a device that is not realized: it appears in
// GetAllDevices, but not in GetDevices.
func (nm *NetworkManager) AddPlaceholder(name string, typ uint32) dbus.ObjectPath {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	return nm.addDeviceLocked(name, typ, false)
}

func (nm *NetworkManager) addDeviceLocked(name string, typ uint32, real bool) dbus.ObjectPath {
	path := nm.pathLocked("Devices")
	appendPath(nm.Service, ManagerPath, ManagerInterface, "AllDevices", path)

	nm.exportLocked(path, DeviceInterface, map[string]any{
		"Reapply": func(settings Settings, versionID uint64, flags uint32) *dbus.Error {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			a := nm.applied[path]
			if a == nil {
				return callErr(ErrNotActive, "Device is not activated")
			}
			if versionID != 0 && versionID != a.version {
				return callErr(ErrVersionIDMismatch, "Reapply failed: version ID mismatch")
			}
			if len(settings) > 0 {
				a.settings = cloneSettings(settings)
			}
			a.version++
			return nil
		},
		"GetAppliedConnection": func(flags uint32) (Settings, uint64, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			a := nm.applied[path]
			if a == nil {
				return nil, 0, callErr(ErrNotActive, "Device is not activated")
			}
			return cloneSettings(a.settings), a.version, nil
		},
		"Disconnect": func() *dbus.Error {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			if nm.applied[path] == nil {
				return callErr(ErrNotActive, "This device is not active")
			}
			delete(nm.applied, path)
			nm.setLocked(path, DeviceInterface, "State", uint32(30))
			nm.setLocked(path, DeviceInterface, "StateReason", stateReason{30, 39})
			return nil
		},
		"Delete": func() *dbus.Error {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			if nm.getLocked(path, DeviceInterface, "Capabilities").(uint32)&0x4 == 0 {
				return callErr(ErrNotSoftware, "This device is not a software device")
			}
			nm.removeDeviceLocked(path)
			return nil
		},
	}, map[string]any{
		"Udi":                  "/sys/devices/virtual/net/" + name,
		"Path":                 "",
		"Interface":            name,
		"IpInterface":          name,
		"Driver":               "",
		"DriverVersion":        "",
		"FirmwareVersion":      "",
		"Capabilities":         uint32(0x3),
		"State":                uint32(30),
		"StateReason":          stateReason{30, 0},
		"ActiveConnection":     dbus.ObjectPath("/"),
		"Ip4Config":            dbus.ObjectPath("/"),
		"Dhcp4Config":          dbus.ObjectPath("/"),
		"Ip6Config":            dbus.ObjectPath("/"),
		"Dhcp6Config":          dbus.ObjectPath("/"),
		"Managed":              true,
		"Autoconnect":          true,
		"FirmwareMissing":      false,
		"NmPluginMissing":      false,
		"DeviceType":           typ,
		"AvailableConnections": []dbus.ObjectPath{},
		"PhysicalPortId":       "",
		"Mtu":                  uint32(1500),
		"Metered":              uint32(0),
		"LldpNeighbors":        []map[string]dbus.Variant{},
		"Real":                 real,
		"Ip4Connectivity":      uint32(0),
		"Ip6Connectivity":      uint32(0),
		"InterfaceFlags":       uint32(0),
		"HwAddress":            "00:00:00:00:00:00",
		"Ports":                []dbus.ObjectPath{},
	}, "Managed", "Autoconnect")

	switch typ {
	case TypeWifi:
		nm.exportWirelessLocked(path)
	case TypeEthernet:
		nm.exportLocked(path, WiredInterface, nil, map[string]any{
			"HwAddress":       "00:00:00:00:00:00",
			"PermHwAddress":   "00:00:00:00:00:00",
			"Speed":           uint32(1000),
			"S390Subchannels": []string{},
			"Carrier":         true,
		})
	case TypeGeneric:
		nm.exportLocked(path, GenericInterface, nil, map[string]any{
			"HwAddress":       "",
			"TypeDescription": "generic",
		})
	case TypeBridge:
		nm.exportLocked(path, BridgeInterface, nil, map[string]any{
			"HwAddress": "00:00:00:00:00:00",
			"Carrier":   true,
			"Slaves":    []dbus.ObjectPath{},
		})
	case TypeVeth:
		nm.exportLocked(path, VethInterface, nil, map[string]any{
			"Peer": dbus.ObjectPath("/"),
		})
	case TypeTeam:
		nm.exportLocked(path, TeamInterface, nil, map[string]any{
			"HwAddress": "00:00:00:00:00:00",
			"Carrier":   true,
			"Slaves":    []dbus.ObjectPath{},
			"Config":    "{}",
		})
	case TypeModem:
		nm.exportLocked(path, ModemInterface, nil, map[string]any{
			"ModemCapabilities":   uint32(0x4),
			"CurrentCapabilities": uint32(0x4),
			"DeviceId":            "",
			"OperatorCode":        "",
			"Apn":                 "",
		})
	}
	return path
}

func (nm *NetworkManager) exportWirelessLocked(path dbus.ObjectPath) {
	nm.exportLocked(path, WirelessInterface, map[string]any{
		"GetAccessPoints": func() ([]dbus.ObjectPath, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			return nm.getLocked(path, WirelessInterface, "AccessPoints").([]dbus.ObjectPath), nil
		},
		"GetAllAccessPoints": func() ([]dbus.ObjectPath, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			return slices.Clone(nm.allAPs[path]), nil
		},
		"RequestScan": func(options map[string]dbus.Variant) *dbus.Error {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			if v, ok := options["ssids"]; ok {
				if _, ok := v.Value().([][]byte); !ok {
					return callErr(ErrInvalidArguments, "Invalid 'ssid' scan option, expected aay")
				}
			}
			last := nm.getLocked(path, WirelessInterface, "LastScan").(int64)
			nm.setLocked(path, WirelessInterface, "LastScan", max(last, 0)+1000)
			return nil
		},
	}, map[string]any{
		"HwAddress":            "00:00:00:00:00:00",
		"PermHwAddress":        "00:00:00:00:00:00",
		"Mode":                 uint32(2),
		"Bitrate":              uint32(0),
		"AccessPoints":         []dbus.ObjectPath{},
		"ActiveAccessPoint":    dbus.ObjectPath("/"),
		"WirelessCapabilities": uint32(0),
		"LastScan":             int64(-1),
	})
}

func (nm *NetworkManager) removeDeviceLocked(path dbus.ObjectPath) {
	removePath(nm.Service, ManagerPath, ManagerInterface, "Devices", path)
	removePath(nm.Service, ManagerPath, ManagerInterface, "AllDevices", path)
	for _, ap := range nm.allAPs[path] {
		nm.removeLocked(ap)
	}
	delete(nm.allAPs, path)
	delete(nm.applied, path)
	nm.removeLocked(path)
}

// RemoveDevice removes a device and its access points.
func (nm *NetworkManager) RemoveDevice(path dbus.ObjectPath) {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	nm.removeDeviceLocked(path)
}

// Activate marks a device as activated with the given applied
// connection, and returns the applied connection's version.
func (nm *NetworkManager) Activate(dev dbus.ObjectPath, settings Settings) uint64 {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	a := nm.applied[dev]
	if a == nil {
		a = &appliedState{}
		nm.applied[dev] = a
	}
	a.settings = cloneSettings(settings)
	a.version++
	nm.setLocked(dev, DeviceInterface, "State", uint32(100))
	nm.setLocked(dev, DeviceInterface, "StateReason", stateReason{100, 0})
	return a.version
}

// SetState sets a device's state and state reason codes.
func (nm *NetworkManager) SetState(dev dbus.ObjectPath, state, reason uint32) {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	nm.setLocked(dev, DeviceInterface, "State", state)
	nm.setLocked(dev, DeviceInterface, "StateReason", stateReason{state, reason})
}

// Applied returns the applied connection of a device, and its
// version.
func (nm *NetworkManager) Applied(dev dbus.ObjectPath) (Settings, uint64, bool) {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	a := nm.applied[dev]
	if a == nil {
		return nil, 0, false
	}
	return cloneSettings(a.settings), a.version, true
}

// AccessPoint describes an access point for [NetworkManager.AddAccessPoint].
type AccessPoint struct {
	SSID       []byte
	BSSID      string
	Frequency  uint32
	Strength   uint8
	MaxBitrate uint32
	Flags      uint32
	WPAFlags   uint32
	RSNFlags   uint32
	Mode       uint32
	// LastSeen is in CLOCK_BOOTTIME seconds, -1 if never seen.
	LastSeen int32
}

// AddAccessPoint adds an access point visible to a Wi-Fi device.
// Access points with an empty SSID are hidden: they are only listed
// by GetAllAccessPoints.
func (nm *NetworkManager) AddAccessPoint(dev dbus.ObjectPath, ap AccessPoint) dbus.ObjectPath {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	path := nm.pathLocked("AccessPoint")
	ssid := ap.SSID
	if ssid == nil {
		ssid = []byte{}
	}
	nm.exportLocked(path, AccessPointInterface, nil, map[string]any{
		"Flags":      ap.Flags,
		"WpaFlags":   ap.WPAFlags,
		"RsnFlags":   ap.RSNFlags,
		"Ssid":       ssid,
		"Frequency":  ap.Frequency,
		"HwAddress":  ap.BSSID,
		"Mode":       ap.Mode,
		"MaxBitrate": ap.MaxBitrate,
		"Strength":   ap.Strength,
		"LastSeen":   ap.LastSeen,
	})
	nm.allAPs[dev] = append(nm.allAPs[dev], path)
	if len(ap.SSID) > 0 {
		appendPath(nm.Service, dev, WirelessInterface, "AccessPoints", path)
	}
	return path
}

// AddConnection adds a saved connection profile. A connection.uuid
// is generated if settings lacks one.
func (nm *NetworkManager) AddConnection(settings, secrets Settings) dbus.ObjectPath {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	path, err := nm.addConnectionLocked(settings, secrets, false)
	if err != nil {
		panic(fmt.Sprintf("nmtest: adding connection: %v", err.Body[0]))
	}
	return path
}

func (nm *NetworkManager) addConnectionLocked(settings, secrets Settings, unsaved bool) (dbus.ObjectPath, *dbus.Error) {
	settings = cloneSettings(settings)
	if _, ok := settings["connection"]; !ok {
		return "", callErr(ErrInvalidSetting, "connection: setting is required")
	}
	if settingString(settings, "connection", "type") == "" {
		return "", callErr(ErrInvalidSetting, "connection.type: property is missing")
	}
	if id := settingString(settings, "connection", "uuid"); id == "" {
		settings["connection"]["uuid"] = dbus.MakeVariant(uuid.NewString())
	} else if _, err := uuid.Parse(id); err != nil {
		return "", callErr(ErrInvalidSetting, "connection.uuid: connection.uuid is not a valid UUID")
	}

	path := nm.pathLocked("Settings")
	nm.profiles[path] = &profile{settings: settings, secrets: cloneSettings(secrets)}
	nm.exportConnectionLocked(path, unsaved)
	appendPath(nm.Service, SettingsPath, SettingsInterface, "Connections", path)
	return path, nil
}

func (nm *NetworkManager) setUnsavedLocked(path dbus.ObjectPath, unsaved bool) {
	nm.setLocked(path, ConnectionInterface, "Unsaved", unsaved)
	flags := nm.getLocked(path, ConnectionInterface, "Flags").(uint32)
	if unsaved {
		flags |= 0x1
	} else {
		flags &^= 0x1
	}
	nm.setLocked(path, ConnectionInterface, "Flags", flags)
}

func (nm *NetworkManager) exportConnectionLocked(path dbus.ObjectPath, unsaved bool) {
	flags := uint32(0)
	filename := fmt.Sprintf("/etc/NetworkManager/system-connections/%s.nmconnection", settingString(nm.profiles[path].settings, "connection", "id"))
	if unsaved {
		flags = 0x1
		filename = ""
	}
	update := func(settings Settings, unsaved bool) {
		if len(settings) > 0 {
			nm.profiles[path].settings = cloneSettings(settings)
		}
		nm.setUnsavedLocked(path, unsaved)
	}
	nm.exportLocked(path, ConnectionInterface, map[string]any{
		"GetSettings": func() (Settings, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			return cloneSettings(nm.profiles[path].settings), nil
		},
		"GetSecrets": func(settingName string) (Settings, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			p := nm.profiles[path]
			if settingName == "" {
				return cloneSettings(p.secrets), nil
			}
			if _, ok := p.settings[settingName]; !ok {
				return nil, callErr(ErrInvalidSetting, "Connection has no %q setting", settingName)
			}
			ret := Settings{}
			if s, ok := p.secrets[settingName]; ok {
				ret[settingName] = maps.Clone(s)
			}
			return ret, nil
		},
		"ClearSecrets": func() *dbus.Error {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			nm.profiles[path].secrets = Settings{}
			return nil
		},
		"Update": func(settings Settings) *dbus.Error {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			update(settings, false)
			return nil
		},
		"UpdateUnsaved": func(settings Settings) *dbus.Error {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			update(settings, true)
			return nil
		},
		"Update2": func(settings Settings, flags uint32, args map[string]dbus.Variant) (map[string]dbus.Variant, *dbus.Error) {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			switch {
			case flags&0x1 != 0:
				update(settings, false)
			case flags&(0x2|0x4|0x8) != 0:
				update(settings, true)
			default:
				update(settings, nm.getLocked(path, ConnectionInterface, "Unsaved").(bool))
			}
			return map[string]dbus.Variant{}, nil
		},
		"Save": func() *dbus.Error {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			nm.setUnsavedLocked(path, false)
			return nil
		},
		"Delete": func() *dbus.Error {
			nm.mu.Lock()
			defer nm.mu.Unlock()
			removePath(nm.Service, SettingsPath, SettingsInterface, "Connections", path)
			delete(nm.profiles, path)
			nm.removeLocked(path)
			return nil
		},
	}, map[string]any{
		"Unsaved":  unsaved,
		"Flags":    flags,
		"Filename": filename,
	})
}

// Profile returns a connection profile's settings and secrets.
func (nm *NetworkManager) Profile(path dbus.ObjectPath) (settings, secrets Settings, ok bool) {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	p := nm.profiles[path]
	if p == nil {
		return nil, nil, false
	}
	return cloneSettings(p.settings), cloneSettings(p.secrets), true
}

// IP4Config describes an IPv4 configuration for
// [NetworkManager.AddIP4Config].
type IP4Config struct {
	// Addresses are "address/prefix" strings.
	Addresses   []string
	Gateway     string
	Routes      []Route
	Nameservers []string
	Domains     []string
	Searches    []string
	DNSOptions  []string
	DNSPriority int32
	WINSServers []string
}

// Route is an IPv4 route.
type Route struct {
	Dest    string
	Prefix  uint32
	NextHop string
	Metric  uint32
}

// AddIP4Config attaches an IPv4 configuration to a device.
func (nm *NetworkManager) AddIP4Config(dev dbus.ObjectPath, cfg IP4Config) dbus.ObjectPath {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	path := nm.pathLocked("IP4Config")
	nm.exportLocked(path, IP4ConfigInterface, nil, ip4Props(cfg))
	nm.setLocked(dev, DeviceInterface, "Ip4Config", path)
	return path
}

// AddDHCP4Config attaches a DHCPv4 lease to a device.
func (nm *NetworkManager) AddDHCP4Config(dev dbus.ObjectPath, options map[string]string) dbus.ObjectPath {
	return nm.addDHCP(dev, "DHCP4Config", DHCP4ConfigInterface, "Dhcp4Config", options)
}

// AddDHCP6Config attaches a DHCPv6 lease to a device.
func (nm *NetworkManager) AddDHCP6Config(dev dbus.ObjectPath, options map[string]string) dbus.ObjectPath {
	return nm.addDHCP(dev, "DHCP6Config", DHCP6ConfigInterface, "Dhcp6Config", options)
}

func (nm *NetworkManager) addDHCP(dev dbus.ObjectPath, kind, iface, prop string, options map[string]string) dbus.ObjectPath {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	path := nm.pathLocked(kind)
	opts := make(map[string]dbus.Variant, len(options))
	for k, v := range options {
		opts[k] = dbus.MakeVariant(v)
	}
	nm.exportLocked(path, iface, nil, map[string]any{"Options": opts})
	nm.setLocked(dev, DeviceInterface, prop, path)
	return path
}
