// Package tracked augments a host framework's dependency-array effect
// primitive with change metadata: which named dependencies changed since
// the effect last ran, their previous values, a change count, and whether
// the current run is the first since mount.
//
// Instead of receiving raw dependency values, the effect callback receives
// a Summary describing exactly what changed:
//
//	tracked.Effect(host, func(s tracked.Summary) tracked.Cleanup {
//	    if s.Did["userID"].Changed {
//	        reload(s.Previous["userID"])
//	    }
//	    return nil
//	}, tracked.Deps{"userID": userID, "page": page})
//
// The host framework is abstracted behind the Host capability interface,
// so the change-detection logic is testable without a UI runtime. A real
// runtime is provided by package hooks.
package tracked
