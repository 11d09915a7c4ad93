package main

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/creachadair/command"
	"github.com/creachadair/mds/heapq"
	"github.com/danderson/networkmanager"
	"github.com/danderson/networkmanager/bus"
	"github.com/danderson/networkmanager/internal/dbusgen"
	"github.com/godbus/dbus/v5/introspect"
)

var generateArgs struct {
	Package string `flag:"package,default=nmdbus,Package name to output"`
	Out     string `flag:"out,default=.,Output directory"`
}

// runGenerate writes one Go file per introspection XML file in dir.
func runGenerate(env *command.Env, dir string) error {
	xmls, err := filepath.Glob(filepath.Join(dir, "*.xml"))
	if err != nil {
		return err
	}
	if len(xmls) == 0 {
		return fmt.Errorf("no introspection files in %s", dir)
	}
	for _, path := range xmls {
		bs, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var node introspect.Node
		if err := xml.Unmarshal(bs, &node); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		if len(node.Interfaces) == 0 {
			return fmt.Errorf("%s describes no interfaces", path)
		}

		cfg := dbusgen.Config{
			Package: generateArgs.Package,
			Prefix:  "org.freedesktop.NetworkManager",
			Root:    "Manager",
			Source:  filepath.Base(path),
		}
		code, err := dbusgen.File(cfg, node.Interfaces...)
		if err != nil {
			return fmt.Errorf("generating code for %s: %w", path, err)
		}
		out := filepath.Join(generateArgs.Out, dbusgen.FileName(cfg.TypeName(node.Interfaces[0].Name)))
		if err := os.WriteFile(out, code, 0o644); err != nil {
			return fmt.Errorf("writing generated code: %w", err)
		}
		fmt.Printf("Wrote %s\n", out)
	}
	return nil
}

// walkObjects introspects root and every object below it, in path
// order.
func walkObjects(ctx context.Context, root bus.Object, fn func(bus.Object, *introspect.Node)) error {
	var errs []error
	objs := heapq.New(bus.Object.Compare)
	objs.Add(root)
	for !objs.IsEmpty() {
		obj, _ := objs.Pop()
		introCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		node, err := obj.Introspect(introCtx)
		cancel()
		if err != nil {
			errs = append(errs, fmt.Errorf("introspecting %s: %w", obj, err))
			continue
		}
		fn(obj, node)
		for _, child := range node.Children {
			objs.Add(obj.Child(child.Name))
		}
	}
	return errors.Join(errs...)
}

func runObjects(env *command.Env) error {
	return withClient(env, func(ctx context.Context, c networkmanager.Client, p *printer) error {
		p.Table("OBJECT", "INTERFACES")
		return walkObjects(ctx, c.Object(), func(obj bus.Object, node *introspect.Node) {
			var names []string
			for _, iface := range node.Interfaces {
				if strings.HasPrefix(iface.Name, "org.freedesktop.DBus.") {
					continue
				}
				names = append(names, iface.Name)
			}
			if len(names) == 0 {
				return
			}
			slices.Sort(names)
			p.Row(obj.Path(), strings.Join(names, ","))
		})
	})
}
