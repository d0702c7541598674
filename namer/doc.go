// Package namer resolves stable, human-readable display names for component
// instances.
//
// Component types rarely carry an explicit name, so the Resolver walks an
// ordered fallback chain, first match wins:
//
//  1. the explicit name on the type descriptor
//  2. the legacy internal tag field
//  3. a previously cached name for this instance's identity
//  4. a name classified from the type's file-path hint
//  5. the literal "Root" for the tree root
//  6. a scan of the parent type's registered child components
//  7. the same scan over the application-wide registry
//  8. the literal "Anonymous Component"
//
// Results of the scan steps are memoized per instance UID so the linear scan
// runs at most once per instance. The cache is never evicted for the lifetime
// of the Resolver; callers that churn through very large numbers of instances
// should scope one Resolver per navigation rather than one per process.
//
// Resolve is idempotent: two calls on the same instance return the same
// string.
package namer
