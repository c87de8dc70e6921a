package ports

// ModuleResolver resolves import specifiers to absolute file paths under one
// compiler configuration.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ModuleResolver interface {
	// Resolve maps specifier, as written in containingFile, to the absolute
	// path of the target file. The second return is false when the specifier
	// does not resolve to a local file (unresolvable, or inside an external
	// package boundary such as node_modules).
	Resolve(specifier, containingFile string) (string, bool)
}
