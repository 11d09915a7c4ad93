package nmtest

import (
	"context"
	"encoding/xml"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

// Standard error names returned by the service.
const (
	ErrServiceUnknown   = "org.freedesktop.DBus.Error.ServiceUnknown"
	ErrUnknownObject    = "org.freedesktop.DBus.Error.UnknownObject"
	ErrUnknownInterface = "org.freedesktop.DBus.Error.UnknownInterface"
	ErrUnknownMethod    = "org.freedesktop.DBus.Error.UnknownMethod"
	ErrUnknownProperty  = "org.freedesktop.DBus.Error.UnknownProperty"
	ErrPropertyReadOnly = "org.freedesktop.DBus.Error.PropertyReadOnly"
	ErrInvalidArgs      = "org.freedesktop.DBus.Error.InvalidArgs"
)

const (
	ifaceProps      = "org.freedesktop.DBus.Properties"
	ifaceIntrospect = "org.freedesktop.DBus.Introspectable"
	ifacePeer       = "org.freedesktop.DBus.Peer"
)

// Call is a method call received by a [Service].
type Call struct {
	Path   dbus.ObjectPath
	Member string
	Args   []any
}

// Service is an in-memory bus peer that owns a single bus name, and
// exports objects implemented by Go method tables.
//
// Service implements bus.Transport, so it can stand in for a bus
// connection in tests. It can also be exported on a real bus with
// [Service.Serve].
type Service struct {
	name string

	mu      sync.Mutex
	objects map[dbus.ObjectPath]*object
	calls   []Call
	latency time.Duration
	conns   []*dbus.Conn
}

type object struct {
	ifaces map[string]*ifaceData
}

type ifaceData struct {
	methods map[string]any
	props   map[string]*propData
}

type propData struct {
	value    dbus.Variant
	writable bool
}

func newService(name string) *Service {
	return &Service{
		name:    name,
		objects: map[dbus.ObjectPath]*object{},
	}
}

// Name returns the bus name owned by the service.
func (s *Service) Name() string { return s.name }

// SetLatency makes every subsequent call take at least d to
// complete, unless the caller's context expires first.
func (s *Service) SetLatency(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latency = d
}

// Calls returns the method calls received so far, in order.
func (s *Service) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.calls)
}

// ResetCalls clears the call log.
func (s *Service) ResetCalls() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = nil
}

// Property returns the value of a property, for use in test
// assertions.
func (s *Service) Property(path dbus.ObjectPath, iface, name string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.propLocked(path, iface, name)
	if p == nil {
		return nil, false
	}
	return p.value.Value(), true
}

// SetProperty sets a property to value, creating it as a read-only
// property if it does not exist. The value must have the Go type
// that corresponds to the property's wire type, e.g. uint32 for "u".
func (s *Service) SetProperty(path dbus.ObjectPath, iface, name string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setPropLocked(path, iface, name, value)
}

// HasObject reports whether an object exists at path.
func (s *Service) HasObject(path dbus.ObjectPath) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[path]
	return ok
}

func (s *Service) propLocked(path dbus.ObjectPath, iface, name string) *propData {
	o := s.objects[path]
	if o == nil {
		return nil
	}
	f := o.ifaces[iface]
	if f == nil {
		return nil
	}
	return f.props[name]
}

func (s *Service) getLocked(path dbus.ObjectPath, iface, name string) any {
	p := s.propLocked(path, iface, name)
	if p == nil {
		panic(fmt.Sprintf("nmtest: no property %s.%s on %s", iface, name, path))
	}
	return p.value.Value()
}

func (s *Service) setLocked(path dbus.ObjectPath, iface, name string, value any) {
	p := s.propLocked(path, iface, name)
	if p == nil {
		panic(fmt.Sprintf("nmtest: no property %s.%s on %s", iface, name, path))
	}
	p.value = dbus.MakeVariant(value)
}

func (s *Service) setPropLocked(path dbus.ObjectPath, iface, name string, value any) {
	f := s.ifaceLocked(path, iface)
	if p := f.props[name]; p != nil {
		p.value = dbus.MakeVariant(value)
		return
	}
	f.props[name] = &propData{value: dbus.MakeVariant(value)}
}

// ifaceLocked returns the named interface of the object at path,
// creating both if necessary.
func (s *Service) ifaceLocked(path dbus.ObjectPath, iface string) *ifaceData {
	o := s.objects[path]
	if o == nil {
		o = &object{ifaces: map[string]*ifaceData{}}
		s.objects[path] = o
	}
	f := o.ifaces[iface]
	if f == nil {
		f = &ifaceData{
			methods: map[string]any{},
			props:   map[string]*propData{},
		}
		o.ifaces[iface] = f
		for _, c := range s.conns {
			c.ExportMethodTable(f.methods, path, iface)
		}
		if len(o.ifaces) == 1 {
			for _, c := range s.conns {
				s.exportStandard(c, path)
			}
		}
	}
	return f
}

// export adds an interface to the object at path. methods maps
// method names to funcs, whose final return value must be a
// *dbus.Error. props are the interface's initial property values,
// writable lists the names of properties that callers may set.
func (s *Service) exportLocked(path dbus.ObjectPath, iface string, methods map[string]any, props map[string]any, writable ...string) {
	f := s.ifaceLocked(path, iface)
	maps.Copy(f.methods, methods)
	for k, v := range props {
		f.props[k] = &propData{value: dbus.MakeVariant(v)}
	}
	for _, w := range writable {
		f.props[w].writable = true
	}
	for _, c := range s.conns {
		c.ExportMethodTable(f.methods, path, iface)
	}
}

func (s *Service) removeLocked(path dbus.ObjectPath) {
	o := s.objects[path]
	if o == nil {
		return
	}
	delete(s.objects, path)
	for _, c := range s.conns {
		for iface := range o.ifaces {
			c.Export(nil, path, iface)
		}
		c.Export(nil, path, ifaceProps)
		c.Export(nil, path, ifaceIntrospect)
	}
}

// Object implements bus.Transport.
func (s *Service) Object(dest string, path dbus.ObjectPath) dbus.BusObject {
	return &busObject{s: s, dest: dest, path: path}
}

type busObject struct {
	// Embedded only to satisfy dbus.BusObject. Signal matching and
	// asynchronous calls are not implemented and panic if used.
	dbus.BusObject

	s    *Service
	dest string
	path dbus.ObjectPath
}

func (o *busObject) Destination() string   { return o.dest }
func (o *busObject) Path() dbus.ObjectPath { return o.path }

func (o *busObject) Call(method string, flags dbus.Flags, args ...any) *dbus.Call {
	return o.CallWithContext(context.Background(), method, flags, args...)
}

func (o *busObject) CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...any) *dbus.Call {
	ret := &dbus.Call{
		Destination: o.dest,
		Path:        o.path,
		Method:      method,
		Args:        args,
	}

	o.s.mu.Lock()
	latency := o.s.latency
	o.s.mu.Unlock()
	if latency > 0 {
		t := time.NewTimer(latency)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			ret.Err = ctx.Err()
			return ret
		}
	}
	if err := ctx.Err(); err != nil {
		ret.Err = err
		return ret
	}

	body, err := o.s.dispatch(o.dest, o.path, method, args)
	if err != nil {
		ret.Err = *err
		return ret
	}
	ret.Body = body
	return ret
}

func callErr(name, msg string, args ...any) *dbus.Error {
	return &dbus.Error{Name: name, Body: []any{fmt.Sprintf(msg, args...)}}
}

func (s *Service) dispatch(dest string, path dbus.ObjectPath, method string, args []any) ([]any, *dbus.Error) {
	if dest != s.name {
		return nil, callErr(ErrServiceUnknown, "The name %s was not provided by any .service files", dest)
	}
	i := strings.LastIndexByte(method, '.')
	if i < 0 {
		return nil, callErr(ErrUnknownMethod, "No such method %q", method)
	}
	iface, member := method[:i], method[i+1:]

	s.mu.Lock()
	s.calls = append(s.calls, Call{Path: path, Member: method, Args: args})
	fn, derr := s.methodLocked(path, iface, member)
	s.mu.Unlock()
	if derr != nil {
		return nil, derr
	}

	return invoke(fn, method, args)
}

func (s *Service) methodLocked(path dbus.ObjectPath, iface, member string) (any, *dbus.Error) {
	if iface == ifaceIntrospect || iface == ifacePeer {
		if fn, ok := s.standardMethods(path)[iface][member]; ok {
			return fn, nil
		}
		return nil, callErr(ErrUnknownMethod, "No such method %q on interface %q", member, iface)
	}
	o := s.objects[path]
	if o == nil {
		return nil, callErr(ErrUnknownObject, "No such object path %q", path)
	}
	if iface == ifaceProps {
		return s.standardMethods(path)[iface][member], nil
	}
	f := o.ifaces[iface]
	if f == nil {
		return nil, callErr(ErrUnknownMethod, "No such interface %q on object at path %s", iface, path)
	}
	fn, ok := f.methods[member]
	if !ok {
		return nil, callErr(ErrUnknownMethod, "No such method %q on interface %q", member, iface)
	}
	return fn, nil
}

// invoke calls fn with args, converting them to fn's parameter types
// the same way godbus does for exported methods.
func invoke(fn any, method string, args []any) ([]any, *dbus.Error) {
	if fn == nil {
		return nil, callErr(ErrUnknownMethod, "No such method %q", method)
	}
	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.NumIn() != len(args) {
		return nil, callErr(ErrInvalidArgs, "%s takes %d arguments, got %d", method, t.NumIn(), len(args))
	}
	in := make([]reflect.Value, len(args))
	for i := range args {
		p := reflect.New(t.In(i))
		if err := dbus.Store([]any{args[i]}, p.Interface()); err != nil {
			return nil, callErr(ErrInvalidArgs, "argument %d of %s: %v", i, method, err)
		}
		in[i] = p.Elem()
	}

	out := v.Call(in)
	last := out[len(out)-1]
	if !last.IsNil() {
		return nil, last.Interface().(*dbus.Error)
	}
	ret := make([]any, 0, len(out)-1)
	for _, o := range out[:len(out)-1] {
		ret = append(ret, wireValue(o).Interface())
	}
	return ret, nil
}

// standardMethods returns the implementations of the standard bus
// interfaces for the object at path.
func (s *Service) standardMethods(path dbus.ObjectPath) map[string]map[string]any {
	return map[string]map[string]any{
		ifaceProps: {
			"Get": func(iface, name string) (dbus.Variant, *dbus.Error) {
				s.mu.Lock()
				defer s.mu.Unlock()
				p, err := s.lookupPropLocked(path, iface, name)
				if err != nil {
					return dbus.Variant{}, err
				}
				return p.value, nil
			},
			"Set": func(iface, name string, value dbus.Variant) *dbus.Error {
				s.mu.Lock()
				defer s.mu.Unlock()
				p, err := s.lookupPropLocked(path, iface, name)
				if err != nil {
					return err
				}
				if !p.writable {
					return callErr(ErrPropertyReadOnly, "Property %q is not writable", name)
				}
				if value.Signature() != p.value.Signature() {
					return callErr(ErrInvalidArgs, "Property %q has type %s, not %s", name, p.value.Signature(), value.Signature())
				}
				p.value = value
				return nil
			},
			"GetAll": func(iface string) (map[string]dbus.Variant, *dbus.Error) {
				s.mu.Lock()
				defer s.mu.Unlock()
				o := s.objects[path]
				if o == nil {
					return nil, callErr(ErrUnknownObject, "No such object path %q", path)
				}
				f := o.ifaces[iface]
				if f == nil {
					return nil, callErr(ErrUnknownInterface, "No such interface %q", iface)
				}
				ret := make(map[string]dbus.Variant, len(f.props))
				for k, p := range f.props {
					ret[k] = p.value
				}
				return ret, nil
			},
		},
		ifaceIntrospect: {
			"Introspect": func() (string, *dbus.Error) {
				s.mu.Lock()
				defer s.mu.Unlock()
				bs, err := xml.MarshalIndent(s.introspectLocked(path), "", "  ")
				if err != nil {
					return "", callErr("org.freedesktop.DBus.Error.Failed", "%v", err)
				}
				return introspect.IntrospectDeclarationString + string(bs), nil
			},
		},
		ifacePeer: {
			"Ping": func() *dbus.Error { return nil },
			"GetMachineId": func() (string, *dbus.Error) {
				return "00000000000000000000000000000000", nil
			},
		},
	}
}

func (s *Service) lookupPropLocked(path dbus.ObjectPath, iface, name string) (*propData, *dbus.Error) {
	o := s.objects[path]
	if o == nil {
		return nil, callErr(ErrUnknownObject, "No such object path %q", path)
	}
	f := o.ifaces[iface]
	if f == nil {
		return nil, callErr(ErrUnknownInterface, "No such interface %q", iface)
	}
	p := f.props[name]
	if p == nil {
		return nil, callErr(ErrUnknownProperty, "No such property %q", name)
	}
	return p, nil
}

func (s *Service) introspectLocked(path dbus.ObjectPath) *introspect.Node {
	ret := &introspect.Node{Name: string(path)}
	if o := s.objects[path]; o != nil {
		ret.Interfaces = append(ret.Interfaces, introspect.IntrospectData, propertiesData)
		for _, name := range slices.Sorted(maps.Keys(o.ifaces)) {
			ret.Interfaces = append(ret.Interfaces, describe(name, o.ifaces[name]))
		}
	}

	prefix := string(path) + "/"
	if path == "/" {
		prefix = "/"
	}
	children := map[string]bool{}
	for p := range s.objects {
		rest, ok := strings.CutPrefix(string(p), prefix)
		if !ok || rest == "" {
			continue
		}
		child, _, _ := strings.Cut(rest, "/")
		children[child] = true
	}
	for _, c := range slices.Sorted(maps.Keys(children)) {
		ret.Children = append(ret.Children, introspect.Node{Name: c})
	}
	return ret
}

var propertiesData = introspect.Interface{
	Name: ifaceProps,
	Methods: []introspect.Method{
		{Name: "Get", Args: []introspect.Arg{{Name: "interface_name", Type: "s", Direction: "in"}, {Name: "property_name", Type: "s", Direction: "in"}, {Name: "value", Type: "v", Direction: "out"}}},
		{Name: "GetAll", Args: []introspect.Arg{{Name: "interface_name", Type: "s", Direction: "in"}, {Name: "properties", Type: "a{sv}", Direction: "out"}}},
		{Name: "Set", Args: []introspect.Arg{{Name: "interface_name", Type: "s", Direction: "in"}, {Name: "property_name", Type: "s", Direction: "in"}, {Name: "value", Type: "v", Direction: "in"}}},
	},
}

var errorType = reflect.TypeFor[*dbus.Error]()

// describe builds introspection data for an interface from the Go
// types of its methods and properties.
func describe(name string, f *ifaceData) introspect.Interface {
	ret := introspect.Interface{Name: name}
	for _, m := range slices.Sorted(maps.Keys(f.methods)) {
		t := reflect.TypeOf(f.methods[m])
		desc := introspect.Method{Name: m}
		for i := range t.NumIn() {
			desc.Args = append(desc.Args, introspect.Arg{
				Name:      fmt.Sprintf("arg%d", i),
				Type:      dbus.SignatureOfType(t.In(i)).String(),
				Direction: "in",
			})
		}
		for i := range t.NumOut() {
			if t.Out(i) == errorType {
				continue
			}
			desc.Args = append(desc.Args, introspect.Arg{
				Name:      fmt.Sprintf("ret%d", i),
				Type:      dbus.SignatureOfType(t.Out(i)).String(),
				Direction: "out",
			})
		}
		ret.Methods = append(ret.Methods, desc)
	}
	for _, p := range slices.Sorted(maps.Keys(f.props)) {
		access := "read"
		if f.props[p].writable {
			access = "readwrite"
		}
		ret.Properties = append(ret.Properties, introspect.Property{
			Name:   p,
			Type:   f.props[p].value.Signature().String(),
			Access: access,
		})
	}
	return ret
}

// Serve exports the service's objects on conn, and requests
// ownership of the service's bus name. Objects added after Serve
// returns are exported as well.
func (s *Service) Serve(conn *dbus.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for path, o := range s.objects {
		for name, f := range o.ifaces {
			if err := conn.ExportMethodTable(f.methods, path, name); err != nil {
				return fmt.Errorf("exporting %s on %s: %w", name, path, err)
			}
		}
		if err := s.exportStandard(conn, path); err != nil {
			return err
		}
	}
	if err := conn.ExportMethodTable(s.standardMethods("/")[ifaceIntrospect], "/", ifaceIntrospect); err != nil {
		return fmt.Errorf("exporting introspection root: %w", err)
	}
	s.conns = append(s.conns, conn)

	reply, err := conn.RequestName(s.name, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("requesting name %s: %w", s.name, err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("requesting name %s: not primary owner (reply %d)", s.name, reply)
	}
	return nil
}

func (s *Service) exportStandard(conn *dbus.Conn, path dbus.ObjectPath) error {
	std := s.standardMethods(path)
	for _, name := range []string{ifaceProps, ifaceIntrospect} {
		if err := conn.ExportMethodTable(std[name], path, name); err != nil {
			return fmt.Errorf("exporting %s on %s: %w", name, path, err)
		}
	}
	return nil
}
