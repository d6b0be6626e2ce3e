// Package routing adds guarded scopes on top of echo's router.
//
// Echo picks a route by method and path only. This package registers a single
// echo route per full path and keeps an ordered Table of candidates behind it.
// Each candidate carries an optional method plus the guards collected from its
// scope chain. A request is served by the first candidate whose method and
// guards all match. Candidates with more guards are tried first, and ties go
// to the earlier registration. That way a host-guarded "/" wins over the
// unguarded "/" no matter which was registered first.
//
// A path with no matching candidate answers 404, including when only the
// method differs.
package routing
