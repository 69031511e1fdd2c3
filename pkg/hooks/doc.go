// Package hooks is a dependency-array hook runtime: the host side of the
// tracked package's capability contract.
//
// An Owner represents one mounted component instance. Render runs a
// component function with the owner ambient, giving hook calls (UseEffect,
// UseLayoutEffect, UseRef) stable call-site identity across renders via
// hook slots. Layout effects run synchronously at the end of Render;
// post-commit effects run when the runtime calls Flush.
//
//	owner := hooks.NewOwner(nil)
//	owner.Render(func() {
//	    hooks.UseEffect(func() hooks.Cleanup {
//	        fmt.Println("count is", count)
//	        return nil
//	    }, []any{count})
//	})
//	owner.Flush()
//
// Hook calls must be unconditional and in a stable order, and a call
// site's dependency list must keep the same length across renders.
package hooks
