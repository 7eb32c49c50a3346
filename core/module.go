package core

import (
	"path"
	"strings"
)

// ModuleSeparator joins the segments of a display module path.
const ModuleSeparator = "::"

// ModulePath converts a runtime-qualified function name such as
// "github.com/acme/app/net/socket.(*Pool).Get" into the display module path
// "net::socket". The root module prefix is stripped for display brevity; a
// function defined in the root package itself maps to the last element of the
// root path. Functions without a resolvable package map to "".
func ModulePath(function, root string) string {
	pkg, _ := splitFunction(function)
	if pkg == "" {
		return ""
	}
	if root != "" {
		switch {
		case pkg == root:
			pkg = path.Base(root)
		case len(pkg) > len(root) && pkg[len(root)] == '/' && pkg[:len(root)] == root:
			pkg = pkg[len(root)+1:]
		}
	}
	return strings.ReplaceAll(pkg, "/", ModuleSeparator)
}

// ShortFuncName returns the bare function name of a runtime-qualified
// function name, without package qualifier or receiver type:
// "github.com/acme/app/db.(*Pool).Get" yields "Get".
func ShortFuncName(function string) string {
	_, name := splitFunction(function)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// splitFunction splits a runtime-qualified function name into package path
// and function part. The package ends at the first dot after the last slash.
func splitFunction(function string) (pkg, name string) {
	if function == "" {
		return "", ""
	}
	slash := strings.LastIndexByte(function, '/')
	dot := strings.IndexByte(function[slash+1:], '.')
	if dot < 0 {
		return "", function
	}
	dot += slash + 1
	return function[:dot], function[dot+1:]
}
