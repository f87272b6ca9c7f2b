// © 2024 The UCUM Go Authors
//
// SPDX-License-Identifier: Apache-2.0

package exc

import "sync"

// Reporter accumulates exceptions raised during a parse. The lexer and
// parser report an exception and unwind by returning an absent value; the
// entry point then surfaces the first reported exception to the caller.
// Every code is fatal to the parse that reported it: the grammar never
// recovers into a partial result.
type Reporter interface {
	// Report adds the given exception to the set and returns it.
	Report(Exception) Exception
	// Reported returns the accumulated exceptions in report order.
	Reported() []Exception
}

// NewReporter returns a concurrent-safe Reporter implementation.
func NewReporter() Reporter {
	return &reporterLock{
		Reporter: &reporter{},
		lock:     &sync.Mutex{},
	}
}

type reporter struct {
	reported []Exception
}

func (r *reporter) Report(e Exception) Exception {
	r.reported = append(r.reported, e)
	return e
}

func (r *reporter) Reported() []Exception {
	return r.reported
}

type reporterLock struct {
	Reporter
	lock sync.Locker
}

func (r *reporterLock) Report(e Exception) Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.Report(e)
}

func (r *reporterLock) Reported() []Exception {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Reporter.Reported()
}
