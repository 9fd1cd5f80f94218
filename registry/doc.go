// Package registry fetches package metadata from the npm registry.
//
// A lookup is a single GET of https://registry.npmjs.org/<name> (the name
// is path-escaped, so scoped packages such as @scope/pkg work). The decoded
// [Package] keeps only the fields the documentation formatter needs and
// resolves Version from the "latest" distribution tag.
//
// Failures that originate from the registry or the transport are returned
// as [*Error]; a missing package additionally matches [ErrNotFound] via
// errors.Is. Anything else (bad base URL, undecodable body) is a local
// fault and is returned as a plain wrapped error.
package registry
