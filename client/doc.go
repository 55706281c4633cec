// Copyright (c) 2026 Ada Reyes.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client resolves data operations remote-first with a local
fallback.

Operations is the shared surface: the Remote HTTP client, the local
store, and the resolving Client all satisfy it. Application code holds an
Operations and never learns which path answered.

	remote := client.NewRemote("http://localhost:4400")
	ops := client.New(remote, localStore)

	page, err := ops.ListJobs(ctx, store.ListJobsOptions{Search: "engineer"})

Every call tries the remote API first. On any remote failure - a refused
connection, a timeout, or an error status - the same operation runs
against the local store instead, and the caller sees only the final
result. Errors from the local path (store.ErrNotFound included) surface
normally; the fallback hides remote unavailability, not missing data.
*/
package client
